package game

// checkChessOutcome looks at the side that now has to move. It ends the game
// on checkmate, stalemate or bare kings and reports whether that side is in check.
func checkChessOutcome(s *State, mover string) bool {
	b := &s.Chess.Board
	color := seatColor(s.seatOf(s.CurrentTurn))
	check := inCheck(b, color)
	if len(legalChessSteps(b, color, true)) == 0 {
		if check {
			s.finish(mover, EndCheckmate)
		} else {
			s.finish(Draw, EndStalemate)
		}
		return check
	}
	if onlyKings(b) {
		s.finish(Draw, EndInsufficientMaterial)
	}
	return check
}

func onlyKings(b *Board) bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if p := b[r][c]; p != Empty && pieceKind(p) != 'K' {
				return false
			}
		}
	}
	return true
}

// checkCheckersOutcome ends the game when the side to move has no pieces or
// no moves left, or when too many quiet king moves have passed.
func checkCheckersOutcome(s *State, mover string) {
	c := s.Checkers
	seat := s.seatOf(s.CurrentTurn)
	if countCheckers(&c.Board, seat) == 0 {
		s.finish(mover, EndNoPieces)
		return
	}
	if steps, _ := checkersSteps(&c.Board, seat, nil); len(steps) == 0 {
		s.finish(mover, EndNoMoves)
		return
	}
	if c.QuietMoves >= checkersQuietLimit {
		s.finish(Draw, EndMoveLimit)
	}
}

// checkHeartsOutcome ends the game once any score reaches the target. The
// lowest score wins, earliest seat on ties.
func checkHeartsOutcome(s *State, target int) bool {
	h := s.Hearts
	over := false
	for _, p := range s.Players {
		if h.Scores[p] >= target {
			over = true
		}
	}
	if !over {
		return false
	}
	best := s.Players[0]
	for _, p := range s.Players[1:] {
		if h.Scores[p] < h.Scores[best] {
			best = p
		}
	}
	s.finish(best, EndScoreLimit)
	return true
}

// checkSpadesOutcome ends the game when a team reaches the target or falls
// to the floor with a strictly better or worse score than the other team.
func checkSpadesOutcome(s *State, target int) bool {
	sc := s.Spades.TeamScores
	reached := sc[0] >= target || sc[1] >= target || sc[0] <= spadesFloor || sc[1] <= spadesFloor
	if !reached || sc[0] == sc[1] {
		return false
	}
	winner := 0
	if sc[1] > sc[0] {
		winner = 1
	}
	s.finish(s.Players[winner], EndScoreLimit)
	return true
}

func checkGoFishOutcome(s *State) bool {
	g := s.GoFish
	total := 0
	for _, p := range s.Players {
		total += bookCount(g.Books[p])
	}
	if total < len(Ranks) {
		return false
	}
	best := s.Players[0]
	for _, p := range s.Players[1:] {
		if bookCount(g.Books[p]) > bookCount(g.Books[best]) {
			best = p
		}
	}
	s.finish(best, EndBooksComplete)
	return true
}
