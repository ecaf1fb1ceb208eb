package game

import (
	"math/rand"
	"testing"
)

func TestNewDeckHoldsEveryCardOnce(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("deck has %d cards, want 52", len(deck))
	}
	seen := map[Card]bool{}
	for _, c := range deck {
		if !c.Valid() {
			t.Errorf("invalid card %q", c)
		}
		if seen[c] {
			t.Errorf("duplicate card %q", c)
		}
		seen[c] = true
	}
}

func TestShuffleKeepsCardsAndInput(t *testing.T) {
	deck := NewDeck()
	shuffled := Shuffle(rand.New(rand.NewSource(7)), deck)

	if got := NewDeck(); !equalCards(deck, got) {
		t.Fatalf("input deck was modified")
	}
	if len(shuffled) != len(deck) {
		t.Fatalf("shuffled deck has %d cards, want %d", len(shuffled), len(deck))
	}
	counts := map[Card]int{}
	for _, c := range deck {
		counts[c]++
	}
	for _, c := range shuffled {
		counts[c]--
	}
	for c, n := range counts {
		if n != 0 {
			t.Errorf("card %q count off by %d", c, n)
		}
	}
	if equalCards(deck, shuffled) {
		t.Errorf("shuffle returned the deck in its original order")
	}
}

func TestCardParts(t *testing.T) {
	tests := []struct {
		card  Card
		rank  string
		suit  string
		value int
	}{
		{"A♠", "A", SuitSpades, 14},
		{"10♥", "10", SuitHearts, 10},
		{"2♣", "2", SuitClubs, 2},
		{"K♦", "K", SuitDiamonds, 13},
	}
	for _, tt := range tests {
		t.Run(string(tt.card), func(t *testing.T) {
			if got := tt.card.Rank(); got != tt.rank {
				t.Errorf("Rank() = %q, want %q", got, tt.rank)
			}
			if got := tt.card.Suit(); got != tt.suit {
				t.Errorf("Suit() = %q, want %q", got, tt.suit)
			}
			if got := trickValue(tt.card); got != tt.value {
				t.Errorf("trickValue() = %d, want %d", got, tt.value)
			}
		})
	}
	if Card("1♠").Valid() || Card("Q").Valid() || Card("").Valid() {
		t.Errorf("malformed cards reported valid")
	}
}

func TestSortHand(t *testing.T) {
	hand := []Card{"2♣", "A♠", "3♠", "K♥", "10♥"}
	SortHand(hand)
	want := []Card{"3♠", "A♠", "10♥", "K♥", "2♣"}
	if !equalCards(hand, want) {
		t.Errorf("SortHand = %v, want %v", hand, want)
	}
}

func equalCards(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
