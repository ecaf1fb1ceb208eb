package game

type GoFishState struct {
	Hands    map[string][]Card `json:"hands"`
	DrawPile []Card            `json:"drawPile"`
	Books    map[string][]Card `json:"books"`
	Asks     []AskResult       `json:"asks"`
}

// AskResult describes one ask. Asks are public, so bots may read them.
type AskResult struct {
	Asker     string `json:"asker"`
	Target    string `json:"target"`
	Rank      string `json:"rank"`
	Received  int    `json:"received"`
	Fished    bool   `json:"fished"`
	DrewMatch bool   `json:"drewMatch"`
}

func (g *GoFishState) clone() *GoFishState {
	out := *g
	out.Hands = cloneHands(g.Hands)
	out.Books = cloneHands(g.Books)
	out.DrawPile = append([]Card(nil), g.DrawPile...)
	out.Asks = append([]AskResult(nil), g.Asks...)
	return &out
}

func (g *GoFishState) cards() []Card {
	var out []Card
	for _, m := range []map[string][]Card{g.Hands, g.Books} {
		for _, cs := range m {
			out = append(out, cs...)
		}
	}
	return append(out, g.DrawPile...)
}

// bookCount counts completed books; each book holds the four cards of a rank.
func bookCount(cards []Card) int { return len(cards) / len(Suits) }

func (e *Engine) dealGoFish(s *State) {
	size := 5
	if len(s.Players) <= 4 {
		size = 7
	}
	hands, rest := deal(e.Shuffle(NewDeck()), len(s.Players), size)
	g := &GoFishState{
		Hands:    make(map[string][]Card, len(s.Players)),
		Books:    make(map[string][]Card, len(s.Players)),
		DrawPile: rest,
		Asks:     []AskResult{},
	}
	for i, p := range s.Players {
		g.Hands[p] = hands[i]
		g.Books[p] = []Card{}
	}
	s.GoFish = g
	for _, p := range s.Players {
		collectBooks(g, p)
	}
}

// collectBooks moves every complete rank in p's hand to p's books.
func collectBooks(g *GoFishState, p string) {
	for _, r := range Ranks {
		if countRank(g.Hands[p], r) < len(Suits) {
			continue
		}
		var keep []Card
		for _, c := range g.Hands[p] {
			if c.Rank() == r {
				g.Books[p] = append(g.Books[p], c)
			} else {
				keep = append(keep, c)
			}
		}
		g.Hands[p] = keep
	}
}

func (g *GoFishState) draw(p string) (Card, bool) {
	if len(g.DrawPile) == 0 {
		return "", false
	}
	c := g.DrawPile[0]
	g.DrawPile = g.DrawPile[1:]
	g.Hands[p] = append(g.Hands[p], c)
	SortHand(g.Hands[p])
	return c, true
}

func (e *Engine) applyGoFish(s *State, m Move, actor string) error {
	if m.Kind != KindAskForCards {
		return ErrWrongMoveKind
	}
	g := s.GoFish
	target, rank := m.Data.TargetPlayer, m.Data.Rank
	if s.seatOf(target) < 0 {
		return illegal("unknown player %q", target)
	}
	if target == actor {
		return illegal("you cannot ask yourself")
	}
	if !validRank(rank) {
		return illegal("unknown rank %q", rank)
	}
	if e.rules.StrictCards && countRank(g.Hands[actor], rank) == 0 {
		return illegal("you must hold a %s to ask for it", rank)
	}

	res := AskResult{Asker: actor, Target: target, Rank: rank}
	keepTurn := false
	var rest []Card
	for _, c := range g.Hands[target] {
		if c.Rank() == rank {
			g.Hands[actor] = append(g.Hands[actor], c)
			res.Received++
		} else {
			rest = append(rest, c)
		}
	}
	if res.Received > 0 {
		g.Hands[target] = rest
		SortHand(g.Hands[actor])
		keepTurn = true
	} else {
		res.Fished = true
		if c, ok := g.draw(actor); ok && c.Rank() == rank {
			res.DrewMatch = true
			keepTurn = true
		}
	}
	g.Asks = append(g.Asks, res)
	collectBooks(g, actor)
	if checkGoFishOutcome(s) {
		return nil
	}
	if keepTurn && e.readyGoFish(s, actor) {
		return nil
	}
	e.advanceGoFish(s)
	return nil
}

// readyGoFish prepares p for a turn: an empty hand draws one card. It
// reports false when p has nothing to ask with.
func (e *Engine) readyGoFish(s *State, p string) bool {
	g := s.GoFish
	if len(g.Hands[p]) > 0 {
		return true
	}
	_, ok := g.draw(p)
	return ok
}

// advanceGoFish hands the turn to the next seat that can act.
func (e *Engine) advanceGoFish(s *State) {
	cur := s.CurrentTurn
	for range s.Players {
		cur = s.nextSeat(cur)
		if e.readyGoFish(s, cur) {
			s.CurrentTurn = cur
			return
		}
	}
	// Nobody holds a card and the pond is empty; every rank has been booked.
	checkGoFishOutcome(s)
}
