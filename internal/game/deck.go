package game

import (
	"math/rand"
	"sort"
	"unicode/utf8"
)

// Card is a rank followed by a suit symbol, e.g. "10♥" or "Q♠".
type Card string

const (
	SuitSpades   = "♠"
	SuitHearts   = "♥"
	SuitDiamonds = "♦"
	SuitClubs    = "♣"
)

var (
	Suits = []string{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs}
	Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

const (
	TwoOfClubs    Card = "2♣"
	QueenOfSpades Card = "Q♠"
)

func NewCard(rank, suit string) Card { return Card(rank + suit) }

func (c Card) Suit() string {
	r, size := utf8.DecodeLastRuneInString(string(c))
	if r == utf8.RuneError || size == 0 {
		return ""
	}
	return string(c)[len(c)-size:]
}

func (c Card) Rank() string {
	_, size := utf8.DecodeLastRuneInString(string(c))
	return string(c)[:len(c)-size]
}

func (c Card) Valid() bool {
	return validRank(c.Rank()) && validSuit(c.Suit())
}

func validRank(rank string) bool { return rankIndex(rank) >= 0 }

func validSuit(suit string) bool {
	for _, s := range Suits {
		if s == suit {
			return true
		}
	}
	return false
}

func rankIndex(rank string) int {
	for i, r := range Ranks {
		if r == rank {
			return i
		}
	}
	return -1
}

// trickValue orders ranks for trick taking: 2 lowest, ace highest.
func trickValue(c Card) int {
	i := rankIndex(c.Rank())
	if i == 0 {
		return 14
	}
	return i + 1
}

// NewDeck returns the 52 cards in suit-major order.
func NewDeck() []Card {
	deck := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, NewCard(r, s))
		}
	}
	return deck
}

// Shuffle returns a shuffled copy of deck. The input is left untouched.
func Shuffle(r *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// SortHand orders a hand by suit and then by trick value.
func SortHand(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		si, sj := suitOrder(cards[i].Suit()), suitOrder(cards[j].Suit())
		if si != sj {
			return si < sj
		}
		return trickValue(cards[i]) < trickValue(cards[j])
	})
}

func suitOrder(suit string) int {
	for i, s := range Suits {
		if s == suit {
			return i
		}
	}
	return len(Suits)
}

func hasCard(hand []Card, c Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

// removeCard returns a new slice without the first occurrence of c.
func removeCard(hand []Card, c Card) ([]Card, bool) {
	for i, h := range hand {
		if h == c {
			out := make([]Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			return append(out, hand[i+1:]...), true
		}
	}
	return hand, false
}

func hasSuit(hand []Card, suit string) bool {
	for _, h := range hand {
		if h.Suit() == suit {
			return true
		}
	}
	return false
}

func onlySuit(hand []Card, suit string) bool {
	for _, h := range hand {
		if h.Suit() != suit {
			return false
		}
	}
	return true
}

func countRank(hand []Card, rank string) int {
	n := 0
	for _, h := range hand {
		if h.Rank() == rank {
			n++
		}
	}
	return n
}

// deal splits deck into n hands of size each and returns the remainder.
func deal(deck []Card, n, size int) ([][]Card, []Card) {
	hands := make([][]Card, n)
	for i := 0; i < n; i++ {
		hands[i] = append([]Card(nil), deck[i*size:(i+1)*size]...)
		SortHand(hands[i])
	}
	return hands, append([]Card(nil), deck[n*size:]...)
}

func cloneHands(h map[string][]Card) map[string][]Card {
	out := make(map[string][]Card, len(h))
	for k, v := range h {
		out[k] = append([]Card(nil), v...)
	}
	return out
}
