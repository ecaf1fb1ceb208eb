package game

// LegalMoves enumerates every move the seat to move may make. Card games are
// enumerated under the strict rules whatever Rules.StrictCards says, so the
// list is also the bot's candidate set.
func (e *Engine) LegalMoves(s *State) []Move {
	if s == nil || s.GameOver {
		return nil
	}
	switch s.Type {
	case Chess:
		return chessMoves(s)
	case Checkers:
		return checkersMoves(s)
	case Hearts:
		return heartsMoves(s)
	case Spades:
		return spadesMoves(s)
	case CrazyEights:
		return crazyEightsMoves(s)
	case GoFish:
		return goFishMoves(s)
	}
	return nil
}

func boardMove(kind MoveKind, from, to Square) Move {
	return Move{Kind: kind, Data: MoveData{From: Sq(from.Row, from.Col), To: Sq(to.Row, to.Col)}}
}

func cardMove(c Card) Move {
	return Move{Kind: KindPlayCard, Data: MoveData{Card: c}}
}

func chessMoves(s *State) []Move {
	color := seatColor(s.TurnIndex())
	var out []Move
	for _, st := range legalChessSteps(&s.Chess.Board, color, false) {
		out = append(out, boardMove(KindChessMove, st.from, st.to))
	}
	return out
}

func checkersMoves(s *State) []Move {
	c := s.Checkers
	steps, _ := checkersSteps(&c.Board, s.TurnIndex(), c.ChainFrom)
	out := make([]Move, 0, len(steps))
	for _, st := range steps {
		out = append(out, boardMove(KindCheckersMove, st.from, st.to))
	}
	return out
}

func heartsMoves(s *State) []Move {
	h := s.Hearts
	hand := h.Hands[s.CurrentTurn]
	if s.Phase == PhasePassing {
		var out []Move
		for i := 0; i < len(hand); i++ {
			for j := i + 1; j < len(hand); j++ {
				for k := j + 1; k < len(hand); k++ {
					out = append(out, Move{Kind: KindPassCards, Data: MoveData{Cards: []Card{hand[i], hand[j], hand[k]}}})
				}
			}
		}
		return out
	}
	var out []Move
	for _, c := range followable(hand, h.Trick, h.LeadSuit, heartsMustLead(h), heartsLeadBlock(h)) {
		out = append(out, cardMove(c))
	}
	return out
}

func spadesMoves(s *State) []Move {
	sp := s.Spades
	if s.Phase == PhaseBidding {
		out := make([]Move, 0, 14)
		for b := 0; b <= 13; b++ {
			bid := b
			out = append(out, Move{Kind: KindBid, Data: MoveData{Bid: &bid}})
		}
		return out
	}
	var out []Move
	for _, c := range followable(sp.Hands[s.CurrentTurn], sp.Trick, sp.LeadSuit, "", spadesLeadBlock(sp)) {
		out = append(out, cardMove(c))
	}
	return out
}

// crazyEightsMoves offers an eight once per declarable suit and only offers
// a draw when nothing can be played.
func crazyEightsMoves(s *State) []Move {
	c := s.CrazyEights
	var out []Move
	for _, card := range c.Hands[s.CurrentTurn] {
		if !c.matches(card) {
			continue
		}
		if card.Rank() != "8" {
			out = append(out, cardMove(card))
			continue
		}
		for _, suit := range Suits {
			out = append(out, Move{Kind: KindPlayCard, Data: MoveData{Card: card, Suit: suit}})
		}
	}
	if len(out) == 0 {
		out = append(out, Move{Kind: KindDrawCard})
	}
	return out
}

func goFishMoves(s *State) []Move {
	g := s.GoFish
	me := s.CurrentTurn
	var targets []string
	for _, p := range s.Players {
		if p != me && len(g.Hands[p]) > 0 {
			targets = append(targets, p)
		}
	}
	if len(targets) == 0 {
		for _, p := range s.Players {
			if p != me {
				targets = append(targets, p)
			}
		}
	}
	var out []Move
	for _, r := range Ranks {
		if countRank(g.Hands[me], r) == 0 {
			continue
		}
		for _, t := range targets {
			out = append(out, Move{Kind: KindAskForCards, Data: MoveData{TargetPlayer: t, Rank: r}})
		}
	}
	return out
}
