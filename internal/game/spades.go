package game

// spadesFloor ends the game for a team that sinks this low.
const spadesFloor = -200

// SpadesState tracks a partnership game: seats 0 and 2 against 1 and 3.
type SpadesState struct {
	Hands        map[string][]Card `json:"hands"`
	Bids         map[string]int    `json:"bids"`
	Trick        []TrickPlay       `json:"trick"`
	LeadSuit     string            `json:"leadSuit,omitempty"`
	TricksWon    map[string]int    `json:"tricksWon"`
	Taken        map[string][]Card `json:"taken"`
	SpadesBroken bool              `json:"spadesBroken"`
	TeamScores   [2]int            `json:"teamScores"`
	Bags         [2]int            `json:"bags"`
	Round        int               `json:"round"`
	Dealer       int               `json:"dealer"`
	TricksPlayed int               `json:"tricksPlayed"`
}

func (sp *SpadesState) clone() *SpadesState {
	out := *sp
	out.Hands = cloneHands(sp.Hands)
	out.Taken = cloneHands(sp.Taken)
	out.Trick = append([]TrickPlay(nil), sp.Trick...)
	out.Bids = make(map[string]int, len(sp.Bids))
	for k, v := range sp.Bids {
		out.Bids[k] = v
	}
	out.TricksWon = make(map[string]int, len(sp.TricksWon))
	for k, v := range sp.TricksWon {
		out.TricksWon[k] = v
	}
	return &out
}

func (sp *SpadesState) cards() []Card {
	var out []Card
	for _, m := range []map[string][]Card{sp.Hands, sp.Taken} {
		for _, cs := range m {
			out = append(out, cs...)
		}
	}
	return append(out, trickCards(sp.Trick)...)
}

// Team returns the partnership index of a seat.
func Team(seat int) int { return seat % 2 }

// dealSpades starts round sp.Round. The deal rotates so the seat left of the
// dealer bids and leads first; in round 0 that is seat 0.
func (e *Engine) dealSpades(s *State) {
	sp := s.Spades
	n := len(s.Players)
	hands, _ := deal(e.Shuffle(NewDeck()), n, 13)
	sp.Hands = make(map[string][]Card, n)
	sp.Taken = make(map[string][]Card, n)
	sp.TricksWon = make(map[string]int, n)
	for i, p := range s.Players {
		sp.Hands[p] = hands[i]
		sp.Taken[p] = []Card{}
		sp.TricksWon[p] = 0
	}
	sp.Bids = map[string]int{}
	sp.Trick = []TrickPlay{}
	sp.LeadSuit = ""
	sp.SpadesBroken = false
	sp.TricksPlayed = 0
	sp.Dealer = (n - 1 + sp.Round) % n
	s.Phase = PhaseBidding
	s.CurrentTurn = s.Players[(sp.Dealer+1)%n]
}

func (e *Engine) applySpades(s *State, m Move, actor string) error {
	switch s.Phase {
	case PhaseBidding:
		if m.Kind != KindBid {
			return ErrWrongMoveKind
		}
		return bidSpades(s, m.Data.Bid, actor)
	case PhasePlaying:
		if m.Kind != KindPlayCard {
			return ErrWrongMoveKind
		}
		return e.playSpades(s, m.Data.Card, actor)
	}
	return illegal("no moves in phase %s", s.Phase)
}

func bidSpades(s *State, bid *int, actor string) error {
	sp := s.Spades
	if bid == nil {
		return illegal("bid is required")
	}
	if *bid < 0 || *bid > 13 {
		return illegal("bid must be between 0 and 13")
	}
	sp.Bids[actor] = *bid
	s.advanceTurn()
	if len(sp.Bids) == len(s.Players) {
		s.Phase = PhasePlaying
		s.CurrentTurn = s.Players[(sp.Dealer+1)%len(s.Players)]
	}
	return nil
}

func spadesLeadBlock(sp *SpadesState) string {
	if sp.SpadesBroken {
		return ""
	}
	return SuitSpades
}

func (e *Engine) playSpades(s *State, card Card, actor string) error {
	sp := s.Spades
	hand := sp.Hands[actor]
	if !hasCard(hand, card) {
		return illegal("card %s is not in your hand", card)
	}
	if e.rules.StrictCards {
		if err := checkFollow(hand, card, sp.Trick, sp.LeadSuit, "", spadesLeadBlock(sp)); err != nil {
			return err
		}
	}
	sp.Hands[actor], _ = removeCard(hand, card)
	if len(sp.Trick) == 0 {
		sp.LeadSuit = card.Suit()
	}
	sp.Trick = append(sp.Trick, TrickPlay{Player: actor, Card: card})
	if card.Suit() == SuitSpades {
		sp.SpadesBroken = true
	}
	if len(sp.Trick) < len(s.Players) {
		s.advanceTurn()
		return nil
	}

	winner := trickWinner(sp.Trick, sp.LeadSuit, SuitSpades)
	sp.Taken[winner] = append(sp.Taken[winner], trickCards(sp.Trick)...)
	sp.TricksWon[winner]++
	sp.Trick = []TrickPlay{}
	sp.LeadSuit = ""
	sp.TricksPlayed++
	s.CurrentTurn = winner
	if sp.TricksPlayed == 13 {
		e.scoreSpadesRound(s)
	}
	return nil
}

func (e *Engine) scoreSpadesRound(s *State) {
	sp := s.Spades
	for team := 0; team < 2; team++ {
		contract, tricks, score := 0, 0, 0
		for seat := team; seat < len(s.Players); seat += 2 {
			p := s.Players[seat]
			tricks += sp.TricksWon[p]
			if sp.Bids[p] == 0 {
				if sp.TricksWon[p] == 0 {
					score += 100
				} else {
					score -= 100
				}
				continue
			}
			contract += sp.Bids[p]
		}
		if tricks >= contract {
			over := tricks - contract
			score += 10*contract + over
			sp.Bags[team] += over
			if sp.Bags[team] >= 10 {
				score -= 100
				sp.Bags[team] -= 10
			}
		} else {
			score -= 10 * contract
		}
		sp.TeamScores[team] += score
	}
	if checkSpadesOutcome(s, e.rules.SpadesTarget) {
		return
	}
	sp.Round++
	e.dealSpades(s)
}
