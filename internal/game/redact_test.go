package game

import "testing"

func TestRedactedHidesOtherHands(t *testing.T) {
	e := seeded(4)
	s, err := e.Initialize(CrazyEights, players(3))
	if err != nil {
		t.Fatal(err)
	}
	view := s.Redacted("p2")
	c := view.CrazyEights
	if !equalCards(c.Hands["p2"], s.CrazyEights.Hands["p2"]) {
		t.Errorf("viewer's own hand masked")
	}
	for _, p := range []string{"p1", "p3"} {
		if len(c.Hands[p]) != len(s.CrazyEights.Hands[p]) {
			t.Errorf("%s hand size changed", p)
		}
		for _, card := range c.Hands[p] {
			if card != Hidden {
				t.Errorf("%s card %s visible to p2", p, card)
			}
		}
	}
	for _, card := range c.DrawPile {
		if card != Hidden {
			t.Fatalf("draw pile visible")
		}
	}
	if c.top() != s.CrazyEights.top() {
		t.Errorf("discard top masked")
	}
	if s.CrazyEights.Hands["p1"][0] == Hidden {
		t.Errorf("Redacted modified the original state")
	}
}

func TestRedactedSpectator(t *testing.T) {
	s, _ := seeded(4).Initialize(Hearts, players(4))
	view := s.Redacted("")
	for p, hand := range view.Hearts.Hands {
		for _, card := range hand {
			if card != Hidden {
				t.Fatalf("spectator sees %s in %s's hand", card, p)
			}
		}
	}

	board, _ := seeded(4).Initialize(Chess, players(2))
	if board.Redacted("").Chess.Board != board.Chess.Board {
		t.Errorf("board game redaction changed the board")
	}
}
