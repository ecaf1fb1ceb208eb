package game

const (
	PassLeft   = "left"
	PassRight  = "right"
	PassAcross = "across"
	PassHold   = "hold"
)

var passDirections = []string{PassLeft, PassRight, PassAcross, PassHold}

type HeartsState struct {
	Hands         map[string][]Card `json:"hands"`
	Passes        map[string][]Card `json:"passes"`
	PassDirection string            `json:"passDirection"`
	Trick         []TrickPlay       `json:"trick"`
	LeadSuit      string            `json:"leadSuit,omitempty"`
	Taken         map[string][]Card `json:"taken"`
	HeartsBroken  bool              `json:"heartsBroken"`
	Scores        map[string]int    `json:"scores"`
	RoundScores   []map[string]int  `json:"roundScores"`
	Round         int               `json:"round"`
	TricksPlayed  int               `json:"tricksPlayed"`
}

func (h *HeartsState) clone() *HeartsState {
	out := *h
	out.Hands = cloneHands(h.Hands)
	out.Passes = cloneHands(h.Passes)
	out.Taken = cloneHands(h.Taken)
	out.Trick = append([]TrickPlay(nil), h.Trick...)
	out.Scores = make(map[string]int, len(h.Scores))
	for k, v := range h.Scores {
		out.Scores[k] = v
	}
	out.RoundScores = make([]map[string]int, len(h.RoundScores))
	for i, rs := range h.RoundScores {
		m := make(map[string]int, len(rs))
		for k, v := range rs {
			m[k] = v
		}
		out.RoundScores[i] = m
	}
	return &out
}

func (h *HeartsState) cards() []Card {
	var out []Card
	for _, m := range []map[string][]Card{h.Hands, h.Passes, h.Taken} {
		for _, cs := range m {
			out = append(out, cs...)
		}
	}
	return append(out, trickCards(h.Trick)...)
}

func passOffset(dir string) int {
	switch dir {
	case PassLeft:
		return 1
	case PassRight:
		return 3
	case PassAcross:
		return 2
	}
	return 0
}

// dealHearts starts round h.Round: 13 cards each, then passing unless the
// round is a hold round.
func (e *Engine) dealHearts(s *State) {
	h := s.Hearts
	hands, _ := deal(e.Shuffle(NewDeck()), len(s.Players), 13)
	h.Hands = make(map[string][]Card, len(s.Players))
	h.Taken = make(map[string][]Card, len(s.Players))
	for i, p := range s.Players {
		h.Hands[p] = hands[i]
		h.Taken[p] = []Card{}
	}
	h.Passes = map[string][]Card{}
	h.Trick = []TrickPlay{}
	h.LeadSuit = ""
	h.HeartsBroken = false
	h.TricksPlayed = 0
	h.PassDirection = passDirections[h.Round%len(passDirections)]
	if h.PassDirection == PassHold {
		startHeartsPlay(s)
		return
	}
	s.Phase = PhasePassing
	s.CurrentTurn = s.Players[0]
}

func startHeartsPlay(s *State) {
	s.Phase = PhasePlaying
	for _, p := range s.Players {
		if hasCard(s.Hearts.Hands[p], TwoOfClubs) {
			s.CurrentTurn = p
			return
		}
	}
}

func (e *Engine) applyHearts(s *State, m Move, actor string) error {
	switch s.Phase {
	case PhasePassing:
		if m.Kind != KindPassCards {
			return ErrWrongMoveKind
		}
		return passHearts(s, m.Data.Cards, actor)
	case PhasePlaying:
		if m.Kind != KindPlayCard {
			return ErrWrongMoveKind
		}
		return e.playHearts(s, m.Data.Card, actor)
	}
	return illegal("no moves in phase %s", s.Phase)
}

func passHearts(s *State, cards []Card, actor string) error {
	h := s.Hearts
	if len(cards) != 3 {
		return illegal("exactly 3 cards must be passed")
	}
	hand := h.Hands[actor]
	for i, c := range cards {
		for _, prev := range cards[:i] {
			if prev == c {
				return illegal("card %s passed twice", c)
			}
		}
		var ok bool
		if hand, ok = removeCard(hand, c); !ok {
			return illegal("card %s is not in your hand", c)
		}
	}
	h.Hands[actor] = hand
	h.Passes[actor] = append([]Card(nil), cards...)
	s.advanceTurn()
	if len(h.Passes) < len(s.Players) {
		return nil
	}

	off := passOffset(h.PassDirection)
	for i, p := range s.Players {
		to := s.Players[(i+off)%len(s.Players)]
		h.Hands[to] = append(h.Hands[to], h.Passes[p]...)
	}
	for _, p := range s.Players {
		SortHand(h.Hands[p])
	}
	h.Passes = map[string][]Card{}
	startHeartsPlay(s)
	return nil
}

func heartsMustLead(h *HeartsState) string {
	if h.TricksPlayed == 0 {
		return string(TwoOfClubs)
	}
	return ""
}

func heartsLeadBlock(h *HeartsState) string {
	if h.HeartsBroken {
		return ""
	}
	return SuitHearts
}

func (e *Engine) playHearts(s *State, card Card, actor string) error {
	h := s.Hearts
	hand := h.Hands[actor]
	if !hasCard(hand, card) {
		return illegal("card %s is not in your hand", card)
	}
	if e.rules.StrictCards {
		if err := checkFollow(hand, card, h.Trick, h.LeadSuit, heartsMustLead(h), heartsLeadBlock(h)); err != nil {
			return err
		}
	}
	h.Hands[actor], _ = removeCard(hand, card)
	if len(h.Trick) == 0 {
		h.LeadSuit = card.Suit()
	}
	h.Trick = append(h.Trick, TrickPlay{Player: actor, Card: card})
	if card.Suit() == SuitHearts {
		h.HeartsBroken = true
	}
	if len(h.Trick) < len(s.Players) {
		s.advanceTurn()
		return nil
	}

	winner := trickWinner(h.Trick, h.LeadSuit, "")
	h.Taken[winner] = append(h.Taken[winner], trickCards(h.Trick)...)
	h.Trick = []TrickPlay{}
	h.LeadSuit = ""
	h.TricksPlayed++
	s.CurrentTurn = winner
	if h.TricksPlayed == 13 {
		e.scoreHeartsRound(s)
	}
	return nil
}

func heartsPoints(cards []Card) int {
	pts := 0
	for _, c := range cards {
		switch {
		case c.Suit() == SuitHearts:
			pts++
		case c == QueenOfSpades:
			pts += 13
		}
	}
	return pts
}

func (e *Engine) scoreHeartsRound(s *State) {
	h := s.Hearts
	round := make(map[string]int, len(s.Players))
	moon := ""
	for _, p := range s.Players {
		round[p] = heartsPoints(h.Taken[p])
		if round[p] == 26 {
			moon = p
		}
	}
	if moon != "" {
		for _, p := range s.Players {
			round[p] = 26
		}
		round[moon] = 0
	}
	for _, p := range s.Players {
		h.Scores[p] += round[p]
	}
	h.RoundScores = append(h.RoundScores, round)
	if checkHeartsOutcome(s, e.rules.HeartsTarget) {
		return
	}
	h.Round++
	e.dealHearts(s)
}
