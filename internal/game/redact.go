package game

// Hidden replaces a card the viewer is not allowed to see.
const Hidden Card = "??"

// Redacted returns a copy of s in which every hand except viewer's, the
// draw pile and pending passes are masked. Spectators pass "" and see no
// hand. Board games are returned as a plain copy.
func (s *State) Redacted(viewer string) *State {
	out := s.Clone()
	switch {
	case out.Hearts != nil:
		maskHands(out.Hearts.Hands, viewer)
		maskHands(out.Hearts.Passes, viewer)
	case out.Spades != nil:
		maskHands(out.Spades.Hands, viewer)
	case out.CrazyEights != nil:
		maskHands(out.CrazyEights.Hands, viewer)
		mask(out.CrazyEights.DrawPile)
	case out.GoFish != nil:
		maskHands(out.GoFish.Hands, viewer)
		mask(out.GoFish.DrawPile)
	}
	return out
}

func maskHands(hands map[string][]Card, viewer string) {
	for p, cs := range hands {
		if p != viewer {
			mask(cs)
		}
	}
}

func mask(cs []Card) {
	for i := range cs {
		cs[i] = Hidden
	}
}
