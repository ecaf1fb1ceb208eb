package game

import "strings"

// checkersQuietLimit is the number of consecutive king moves without a
// capture after which the game is drawn.
const checkersQuietLimit = 80

type CheckersState struct {
	Board       Board            `json:"board"`
	Captured    CapturedPieces   `json:"capturedPieces"`
	ChainFrom   *Square          `json:"chainFrom,omitempty"`
	MoveHistory []CheckersRecord `json:"moveHistory"`
	QuietMoves  int              `json:"quietMoves"`
}

type CheckersRecord struct {
	Player   string `json:"player"`
	From     Square `json:"from"`
	To       Square `json:"to"`
	Captured Piece  `json:"captured,omitempty"`
	Crowned  bool   `json:"crowned,omitempty"`
}

// Seat 0 plays "r" from the bottom rows, seat 1 plays "b" from the top.
var checkersMen = [2]Piece{"r", "b"}

func newCheckersState() *CheckersState {
	var b Board
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if !darkSquare(r, c) {
				continue
			}
			switch {
			case r <= 2:
				b[r][c] = checkersMen[1]
			case r >= 5:
				b[r][c] = checkersMen[0]
			}
		}
	}
	return &CheckersState{
		Board:       b,
		Captured:    CapturedPieces{White: []Piece{}, Black: []Piece{}},
		MoveHistory: []CheckersRecord{},
	}
}

func darkSquare(r, c int) bool { return (r+c)%2 == 1 }

func checkersOwner(p Piece) int {
	switch p {
	case "r", "R":
		return 0
	case "b", "B":
		return 1
	}
	return -1
}

func isKing(p Piece) bool { return p == "R" || p == "B" }

func crown(p Piece) Piece { return Piece(strings.ToUpper(string(p))) }

func crownRow(seat int) int {
	if seat == 0 {
		return 0
	}
	return 7
}

func checkersDirs(p Piece) [][2]int {
	if isKing(p) {
		return [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	}
	if checkersOwner(p) == 0 {
		return [][2]int{{-1, -1}, {-1, 1}}
	}
	return [][2]int{{1, -1}, {1, 1}}
}

type checkersStep struct {
	from, to Square
	jumped   *Square
}

// pieceSteps lists the plain moves and the jumps of the piece on from.
func pieceSteps(b *Board, from Square) (moves, jumps []checkersStep) {
	p := b.at(from)
	owner := checkersOwner(p)
	if owner < 0 {
		return nil, nil
	}
	for _, d := range checkersDirs(p) {
		one := Square{Row: from.Row + d[0], Col: from.Col + d[1]}
		if !one.valid() {
			continue
		}
		switch t := b.at(one); {
		case t == Empty:
			moves = append(moves, checkersStep{from: from, to: one})
		case checkersOwner(t) != owner:
			two := Square{Row: one.Row + d[0], Col: one.Col + d[1]}
			if two.valid() && b.at(two) == Empty {
				mid := one
				jumps = append(jumps, checkersStep{from: from, to: two, jumped: &mid})
			}
		}
	}
	return moves, jumps
}

// checkersSteps lists the legal steps for seat. Captures are mandatory: if
// any jump exists only jumps are returned. chain restricts the search to a
// piece in the middle of a multi-jump.
func checkersSteps(b *Board, seat int, chain *Square) ([]checkersStep, bool) {
	if chain != nil {
		_, jumps := pieceSteps(b, *chain)
		return jumps, len(jumps) > 0
	}
	var moves, jumps []checkersStep
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if checkersOwner(b[r][c]) != seat {
				continue
			}
			m, j := pieceSteps(b, Square{Row: r, Col: c})
			moves = append(moves, m...)
			jumps = append(jumps, j...)
		}
	}
	if len(jumps) > 0 {
		return jumps, true
	}
	return moves, false
}

func countCheckers(b *Board, seat int) int {
	n := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if checkersOwner(b[r][c]) == seat {
				n++
			}
		}
	}
	return n
}

func checkersRejection(c *CheckersState, seat int, from, to Square, captures bool) error {
	if !from.valid() || !to.valid() {
		return illegal("square off the board")
	}
	if checkersOwner(c.Board.at(from)) != seat {
		return illegal("no piece of yours at %s", from)
	}
	if c.ChainFrom != nil && from != *c.ChainFrom {
		return illegal("must continue jumping with the piece at %s", *c.ChainFrom)
	}
	if captures {
		return illegal("a capture is available and must be taken")
	}
	return illegal("invalid move from %s to %s", from, to)
}

func applyCheckers(s *State, m Move, actor string) error {
	if m.Kind != KindCheckersMove {
		return ErrWrongMoveKind
	}
	if m.Data.From == nil || m.Data.To == nil {
		return illegal("from and to are required")
	}
	from, to := *m.Data.From, *m.Data.To
	c := s.Checkers
	seat := s.seatOf(actor)

	steps, captures := checkersSteps(&c.Board, seat, c.ChainFrom)
	var step *checkersStep
	for i := range steps {
		if steps[i].from == from && steps[i].to == to {
			step = &steps[i]
			break
		}
	}
	if step == nil {
		return checkersRejection(c, seat, from, to, captures)
	}

	piece := c.Board.at(from)
	c.Board.set(from, Empty)
	rec := CheckersRecord{Player: actor, From: from, To: to}
	switch {
	case step.jumped != nil:
		taken := c.Board.at(*step.jumped)
		c.Board.set(*step.jumped, Empty)
		if seat == 0 {
			c.Captured.White = append(c.Captured.White, taken)
		} else {
			c.Captured.Black = append(c.Captured.Black, taken)
		}
		rec.Captured = taken
		c.QuietMoves = 0
	case isKing(piece):
		c.QuietMoves++
	default:
		c.QuietMoves = 0
	}
	if !isKing(piece) && to.Row == crownRow(seat) {
		piece = crown(piece)
		rec.Crowned = true
	}
	c.Board.set(to, piece)
	c.MoveHistory = append(c.MoveHistory, rec)

	if step.jumped != nil && !rec.Crowned {
		if _, more := pieceSteps(&c.Board, to); len(more) > 0 {
			sq := to
			c.ChainFrom = &sq
			return nil
		}
	}
	c.ChainFrom = nil
	s.CurrentTurn = s.opponent(actor)
	checkCheckersOutcome(s, actor)
	return nil
}
