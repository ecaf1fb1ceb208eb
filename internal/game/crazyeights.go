package game

type CrazyEightsState struct {
	Hands       map[string][]Card `json:"hands"`
	DrawPile    []Card            `json:"drawPile"`
	DiscardPile []Card            `json:"discardPile"`
	CurrentSuit string            `json:"currentSuit"`
}

func (c *CrazyEightsState) clone() *CrazyEightsState {
	out := *c
	out.Hands = cloneHands(c.Hands)
	out.DrawPile = append([]Card(nil), c.DrawPile...)
	out.DiscardPile = append([]Card(nil), c.DiscardPile...)
	return &out
}

func (c *CrazyEightsState) cards() []Card {
	var out []Card
	for _, cs := range c.Hands {
		out = append(out, cs...)
	}
	out = append(out, c.DrawPile...)
	return append(out, c.DiscardPile...)
}

func (c *CrazyEightsState) top() Card {
	if len(c.DiscardPile) == 0 {
		return ""
	}
	return c.DiscardPile[len(c.DiscardPile)-1]
}

// matches reports whether card may be played on the current discard.
func (c *CrazyEightsState) matches(card Card) bool {
	return card.Rank() == "8" || card.Suit() == c.CurrentSuit || card.Rank() == c.top().Rank()
}

func (e *Engine) dealCrazyEights(s *State) {
	size := 5
	if len(s.Players) <= 2 {
		size = 7
	}
	hands, rest := deal(e.Shuffle(NewDeck()), len(s.Players), size)
	c := &CrazyEightsState{Hands: make(map[string][]Card, len(s.Players))}
	for i, p := range s.Players {
		c.Hands[p] = hands[i]
	}
	c.DiscardPile = []Card{rest[len(rest)-1]}
	c.DrawPile = rest[:len(rest)-1]
	c.CurrentSuit = c.DiscardPile[0].Suit()
	s.CrazyEights = c
}

func (e *Engine) applyCrazyEights(s *State, m Move, actor string) error {
	c := s.CrazyEights
	switch m.Kind {
	case KindPlayCard:
		hand := c.Hands[actor]
		card := m.Data.Card
		if !hasCard(hand, card) {
			return illegal("card %s is not in your hand", card)
		}
		if e.rules.StrictCards && !c.matches(card) {
			return illegal("%s does not match %s or %s", card, c.top().Rank(), c.CurrentSuit)
		}
		c.Hands[actor], _ = removeCard(hand, card)
		c.DiscardPile = append(c.DiscardPile, card)
		c.CurrentSuit = card.Suit()
		if card.Rank() == "8" && validSuit(m.Data.Suit) {
			c.CurrentSuit = m.Data.Suit
		}
		if len(c.Hands[actor]) == 0 {
			s.finish(actor, EndHandEmpty)
			return nil
		}
		s.advanceTurn()
		return nil
	case KindDrawCard:
		e.refillDrawPile(c)
		if len(c.DrawPile) > 0 {
			c.Hands[actor] = append(c.Hands[actor], c.DrawPile[0])
			c.DrawPile = c.DrawPile[1:]
			SortHand(c.Hands[actor])
		} else if crazyEightsBlocked(s) {
			s.finish(fewestCards(s), EndBlocked)
			return nil
		}
		s.advanceTurn()
		return nil
	}
	return ErrWrongMoveKind
}

// refillDrawPile reshuffles everything under the top discard into an empty
// draw pile.
func (e *Engine) refillDrawPile(c *CrazyEightsState) {
	if len(c.DrawPile) > 0 || len(c.DiscardPile) < 2 {
		return
	}
	top := c.top()
	c.DrawPile = e.Shuffle(c.DiscardPile[:len(c.DiscardPile)-1])
	c.DiscardPile = []Card{top}
}

func crazyEightsBlocked(s *State) bool {
	c := s.CrazyEights
	if len(c.DrawPile) > 0 || len(c.DiscardPile) > 1 {
		return false
	}
	for _, p := range s.Players {
		for _, card := range c.Hands[p] {
			if c.matches(card) {
				return false
			}
		}
	}
	return true
}

func fewestCards(s *State) string {
	best := s.Players[0]
	for _, p := range s.Players[1:] {
		if len(s.CrazyEights.Hands[p]) < len(s.CrazyEights.Hands[best]) {
			best = p
		}
	}
	return best
}
