package game

import "sort"

// preferred marks the moves a medium bot picks from when any exist: captures
// on the boards, ducking in hearts, winning tricks in spades, saving eights
// and asking for the strongest rank in go fish.
func preferred(s *State, m Move) bool {
	switch s.Type {
	case Chess:
		t := s.Chess.Board.at(*m.Data.To)
		return t != Empty && pieceColor(t) != seatColor(s.TurnIndex())
	case Checkers:
		return abs(m.Data.To.Row-m.Data.From.Row) == 2
	case Hearts:
		h := s.Hearts
		if len(h.Trick) == 0 {
			return trickValue(m.Data.Card) < 8
		}
		return !wouldWin(h.Trick, m.Data.Card, h.LeadSuit, "")
	case Spades:
		sp := s.Spades
		if len(sp.Trick) == 0 {
			return m.Data.Card.Suit() != SuitSpades
		}
		return wouldWin(sp.Trick, m.Data.Card, sp.LeadSuit, SuitSpades)
	case CrazyEights:
		return m.Kind == KindPlayCard && m.Data.Card.Rank() != "8"
	case GoFish:
		hand := s.GoFish.Hands[s.CurrentTurn]
		return countRank(hand, m.Data.Rank) == strongestRankCount(hand)
	}
	return false
}

func wouldWin(trick []TrickPlay, c Card, lead, trump string) bool {
	probe := append(append([]TrickPlay(nil), trick...), TrickPlay{Player: "?", Card: c})
	return trickWinner(probe, lead, trump) == "?"
}

func strongestRankCount(hand []Card) int {
	best := 0
	for _, r := range Ranks {
		if n := countRank(hand, r); n > best {
			best = n
		}
	}
	return best
}

// HeuristicScore rates a candidate for a hard bot; higher is better.
func HeuristicScore(s *State, m Move) int {
	switch s.Type {
	case Chess:
		return chessScore(s, m)
	case Checkers:
		return checkersScore(s, m)
	case Hearts:
		return heartsScore(s, m)
	case Spades:
		return spadesScore(s, m)
	case CrazyEights:
		return crazyEightsScore(s, m)
	case GoFish:
		return goFishScore(s, m)
	}
	return 0
}

// goFishScore asks for the rank held most, from seats that recently asked
// for it themselves, and avoids repeating an ask that just failed.
func goFishScore(s *State, m Move) int {
	g := s.GoFish
	me, target, rank := s.CurrentTurn, m.Data.TargetPlayer, m.Data.Rank
	score := 10*countRank(g.Hands[me], rank) + len(g.Hands[target])
	oldest := len(g.Asks) - 2*len(s.Players)
	for i := len(g.Asks) - 1; i >= 0 && i >= oldest; i-- {
		a := g.Asks[i]
		if a.Rank != rank {
			continue
		}
		if a.Asker == target {
			score += 30
			break
		}
		if a.Asker == me && a.Target == target && a.Received == 0 {
			score -= 40
			break
		}
	}
	return score
}

// chessScore is 10 per capture minus the Manhattan distance of the target
// square from the centre, both doubled to stay in integers.
func chessScore(s *State, m Move) int {
	to := *m.Data.To
	score := -(abs(2*to.Row-7) + abs(2*to.Col-7))
	if t := s.Chess.Board.at(to); t != Empty {
		score += 20
	}
	return score
}

// checkersScore rewards the longest capture chain the step opens and then
// forward progress.
func checkersScore(s *State, m Move) int {
	from, to := *m.Data.From, *m.Data.To
	advance := to.Row - from.Row
	if s.TurnIndex() == 0 {
		advance = -advance
	}
	if abs(to.Row-from.Row) != 2 {
		return advance
	}
	scratch := s.Checkers.Board
	jumpOnBoard(&scratch, from, to)
	return 100*(1+longestChain(&scratch, to)) + advance
}

func jumpOnBoard(b *Board, from, to Square) {
	p := b.at(from)
	b.set(from, Empty)
	b.set(Square{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2}, Empty)
	b.set(to, p)
}

func longestChain(b *Board, at Square) int {
	_, jumps := pieceSteps(b, at)
	best := 0
	for _, j := range jumps {
		scratch := *b
		jumpOnBoard(&scratch, j.from, j.to)
		if n := 1 + longestChain(&scratch, j.to); n > best {
			best = n
		}
	}
	return best
}

// heartsScore avoids hearts and the queen of spades and, when following,
// avoids taking the trick.
func heartsScore(s *State, m Move) int {
	c := m.Data.Card
	score := 0
	if c.Suit() == SuitHearts {
		score -= 10
	}
	if c == QueenOfSpades {
		score -= 20
	}
	h := s.Hearts
	if len(h.Trick) > 0 && wouldWin(h.Trick, c, h.LeadSuit, "") {
		score--
	}
	return score
}

// spadesScore wins tricks as cheaply as possible, dumps the lowest card when
// it cannot win and leads high off-suit cards.
func spadesScore(s *State, m Move) int {
	sp := s.Spades
	c := m.Data.Card
	v := trickValue(c)
	if len(sp.Trick) == 0 {
		if c.Suit() == SuitSpades {
			return v - 20
		}
		return v
	}
	if wouldWin(sp.Trick, c, sp.LeadSuit, SuitSpades) {
		return 50 - v
	}
	return -v
}

// crazyEightsScore keeps the suit the hand is longest in and saves eights.
func crazyEightsScore(s *State, m Move) int {
	if m.Kind == KindDrawCard {
		return -100
	}
	c := m.Data.Card
	hand := s.CrazyEights.Hands[s.CurrentTurn]
	if c.Rank() == "8" {
		n := 0
		for _, h := range hand {
			if h.Suit() == m.Data.Suit && h != c {
				n++
			}
		}
		return n - 20
	}
	n := 0
	for _, h := range hand {
		if h.Suit() == c.Suit() {
			n++
		}
	}
	return 2*n + trickValue(c)/5
}

// SpadesBid counts spades and aces, kings and queens and halves the total.
func SpadesBid(hand []Card) int {
	n := 0
	for _, c := range hand {
		if c.Suit() == SuitSpades {
			n++
		}
		switch c.Rank() {
		case "A", "K", "Q":
			n++
		}
	}
	bid := n / 2
	if bid < 1 {
		bid = 1
	}
	if bid > 13 {
		bid = 13
	}
	return bid
}

func passDanger(c Card) int {
	switch {
	case c == QueenOfSpades:
		return 100
	case c.Suit() == SuitSpades && trickValue(c) > 12:
		return 80 + trickValue(c)
	case c.Suit() == SuitHearts:
		return 50 + trickValue(c)
	}
	return trickValue(c)
}

// heartsPassChoice picks the three most dangerous cards in hand.
func heartsPassChoice(hand []Card) []Card {
	sorted := append([]Card(nil), hand...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return passDanger(sorted[i]) > passDanger(sorted[j])
	})
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}
	return sorted
}
