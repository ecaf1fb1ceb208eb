package game

// SelectMove picks a move for the seat to move. It returns false when that
// seat has no legal move.
//
// Easy bots choose uniformly among the legal moves. Medium bots choose among
// the preferred moves when there are any. Hard bots take the highest
// HeuristicScore, keeping the first candidate on ties.
func (e *Engine) SelectMove(s *State, d Difficulty) (*Move, bool) {
	moves := e.LegalMoves(s)
	if len(moves) == 0 {
		return nil, false
	}

	switch {
	case s.Type == Spades && s.Phase == PhaseBidding:
		bid := SpadesBid(s.Spades.Hands[s.CurrentTurn])
		return &Move{Kind: KindBid, Data: MoveData{Bid: &bid}}, true
	case s.Type == Hearts && s.Phase == PhasePassing && d != Easy:
		cards := heartsPassChoice(s.Hearts.Hands[s.CurrentTurn])
		return &Move{Kind: KindPassCards, Data: MoveData{Cards: cards}}, true
	}

	var pick Move
	switch d {
	case Easy:
		pick = moves[e.intn(len(moves))]
	case Hard:
		pick = moves[0]
		best := HeuristicScore(s, pick)
		for _, m := range moves[1:] {
			if score := HeuristicScore(s, m); score > best {
				pick, best = m, score
			}
		}
	default:
		var pref []Move
		for _, m := range moves {
			if preferred(s, m) {
				pref = append(pref, m)
			}
		}
		if len(pref) == 0 {
			pref = moves
		}
		pick = pref[e.intn(len(pref))]
	}
	return &pick, true
}
