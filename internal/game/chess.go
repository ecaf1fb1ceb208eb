package game

const (
	white byte = 'w'
	black byte = 'b'
)

type ChessState struct {
	Board       Board          `json:"board"`
	MoveHistory []ChessRecord  `json:"moveHistory"`
	Captured    CapturedPieces `json:"capturedPieces"`
	InCheck     bool           `json:"inCheck"`
}

type ChessRecord struct {
	Player    string `json:"player"`
	Piece     Piece  `json:"piece"`
	From      Square `json:"from"`
	To        Square `json:"to"`
	Captured  Piece  `json:"captured,omitempty"`
	Promotion Piece  `json:"promotion,omitempty"`
	Check     bool   `json:"check,omitempty"`
}

func newChessState() *ChessState {
	var b Board
	back := "RNBQKBNR"
	for c := 0; c < 8; c++ {
		b[0][c] = Piece([]byte{black, back[c]})
		b[1][c] = "bP"
		b[6][c] = "wP"
		b[7][c] = Piece([]byte{white, back[c]})
	}
	return &ChessState{
		Board:       b,
		MoveHistory: []ChessRecord{},
		Captured:    CapturedPieces{White: []Piece{}, Black: []Piece{}},
	}
}

func pieceColor(p Piece) byte {
	if p == Empty {
		return 0
	}
	return p[0]
}

func pieceKind(p Piece) byte {
	if len(p) < 2 {
		return 0
	}
	return p[1]
}

func otherColor(c byte) byte {
	if c == white {
		return black
	}
	return white
}

func seatColor(seat int) byte {
	if seat == 0 {
		return white
	}
	return black
}

func forward(c byte) int {
	if c == white {
		return -1
	}
	return 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// isPathClear reports whether every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func isPathClear(b *Board, from, to Square) bool {
	dr, dc := sign(to.Row-from.Row), sign(to.Col-from.Col)
	r, c := from.Row+dr, from.Col+dc
	for r != to.Row || c != to.Col {
		if b[r][c] != Empty {
			return false
		}
		r += dr
		c += dc
	}
	return true
}

// attacks reports whether the piece on from attacks to, ignoring what
// stands on to and whether the move would expose its own king.
func attacks(b *Board, from, to Square) bool {
	p := b.at(from)
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if dr == 0 && dc == 0 {
		return false
	}
	switch pieceKind(p) {
	case 'P':
		return dr == forward(pieceColor(p)) && abs(dc) == 1
	case 'N':
		return (abs(dr) == 2 && abs(dc) == 1) || (abs(dr) == 1 && abs(dc) == 2)
	case 'K':
		return abs(dr) <= 1 && abs(dc) <= 1
	case 'R':
		return (dr == 0 || dc == 0) && isPathClear(b, from, to)
	case 'B':
		return abs(dr) == abs(dc) && isPathClear(b, from, to)
	case 'Q':
		return (dr == 0 || dc == 0 || abs(dr) == abs(dc)) && isPathClear(b, from, to)
	}
	return false
}

// canReach applies the movement rule of the piece on from, including the
// pawn's quiet and capturing moves.
func canReach(b *Board, from, to Square) bool {
	p := b.at(from)
	if pieceKind(p) != 'P' {
		return attacks(b, from, to)
	}
	color := pieceColor(p)
	dir := forward(color)
	dr, dc := to.Row-from.Row, to.Col-from.Col
	target := b.at(to)
	if dc == 0 {
		if target != Empty {
			return false
		}
		if dr == dir {
			return true
		}
		start := 6
		if color == black {
			start = 1
		}
		return dr == 2*dir && from.Row == start && b[from.Row+dir][from.Col] == Empty
	}
	return attacks(b, from, to) && target != Empty && pieceColor(target) != color
}

func kingSquare(b *Board, color byte) (Square, bool) {
	king := Piece([]byte{color, 'K'})
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if b[r][c] == king {
				return Square{Row: r, Col: c}, true
			}
		}
	}
	return Square{}, false
}

func isAttacked(b *Board, sq Square, by byte) bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if pieceColor(b[r][c]) != by {
				continue
			}
			if attacks(b, Square{Row: r, Col: c}, sq) {
				return true
			}
		}
	}
	return false
}

func inCheck(b *Board, color byte) bool {
	ks, ok := kingSquare(b, color)
	if !ok {
		return false
	}
	return isAttacked(b, ks, otherColor(color))
}

// movePiece moves the piece on from to to, promoting pawns that reach the
// last rank to a queen. It returns the captured and promoted pieces.
func movePiece(b *Board, from, to Square) (captured, promoted Piece) {
	p := b.at(from)
	captured = b.at(to)
	b.set(from, Empty)
	if pieceKind(p) == 'P' && (to.Row == 0 || to.Row == 7) {
		p = Piece([]byte{pieceColor(p), 'Q'})
		promoted = p
	}
	b.set(to, p)
	return captured, promoted
}

func validateChess(b *Board, from, to Square, color byte) error {
	if !from.valid() || !to.valid() {
		return illegal("square off the board")
	}
	if from == to {
		return illegal("piece must move")
	}
	p := b.at(from)
	if p == Empty {
		return illegal("no piece at %s", from)
	}
	if pieceColor(p) != color {
		return illegal("piece at %s is not yours", from)
	}
	if t := b.at(to); t != Empty && pieceColor(t) == color {
		return illegal("cannot capture your own piece at %s", to)
	}
	if !canReach(b, from, to) {
		return illegal("%s cannot move from %s to %s", p, from, to)
	}
	scratch := *b
	movePiece(&scratch, from, to)
	if inCheck(&scratch, color) {
		return illegal("move leaves your king in check")
	}
	return nil
}

type boardStep struct {
	from, to Square
}

// legalChessSteps lists every legal move for color. With first set it stops
// at the first one found.
func legalChessSteps(b *Board, color byte, first bool) []boardStep {
	var out []boardStep
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if pieceColor(b[r][c]) != color {
				continue
			}
			from := Square{Row: r, Col: c}
			for tr := 0; tr < 8; tr++ {
				for tc := 0; tc < 8; tc++ {
					to := Square{Row: tr, Col: tc}
					if validateChess(b, from, to, color) != nil {
						continue
					}
					out = append(out, boardStep{from: from, to: to})
					if first {
						return out
					}
				}
			}
		}
	}
	return out
}

func applyChess(s *State, m Move, actor string) error {
	if m.Kind != KindChessMove {
		return ErrWrongMoveKind
	}
	if m.Data.From == nil || m.Data.To == nil {
		return illegal("from and to are required")
	}
	from, to := *m.Data.From, *m.Data.To
	c := s.Chess
	color := seatColor(s.seatOf(actor))
	if err := validateChess(&c.Board, from, to, color); err != nil {
		return err
	}

	piece := c.Board.at(from)
	captured, promoted := movePiece(&c.Board, from, to)
	if captured != Empty {
		if color == white {
			c.Captured.White = append(c.Captured.White, captured)
		} else {
			c.Captured.Black = append(c.Captured.Black, captured)
		}
	}
	s.CurrentTurn = s.opponent(actor)

	rec := ChessRecord{
		Player:    actor,
		Piece:     piece,
		From:      from,
		To:        to,
		Captured:  captured,
		Promotion: promoted,
	}
	c.InCheck = checkChessOutcome(s, actor)
	rec.Check = c.InCheck
	c.MoveHistory = append(c.MoveHistory, rec)
	return nil
}
