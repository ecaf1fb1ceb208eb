package game

import (
	"errors"
	"testing"
)

func checkersPosition(pieces map[Square]Piece, toMove int) *State {
	var b Board
	for at, p := range pieces {
		b.set(at, p)
	}
	ps := []string{"red", "black"}
	return &State{
		Type:        Checkers,
		Players:     ps,
		CurrentTurn: ps[toMove],
		Phase:       PhasePlaying,
		Checkers: &CheckersState{
			Board:       b,
			Captured:    CapturedPieces{White: []Piece{}, Black: []Piece{}},
			MoveHistory: []CheckersRecord{},
		},
	}
}

func checkersMove(fr, fc, tr, tc int) Move {
	return boardMove(KindCheckersMove, Square{Row: fr, Col: fc}, Square{Row: tr, Col: tc})
}

func TestCheckersInitialBoard(t *testing.T) {
	s, err := seeded(1).Initialize(Checkers, players(2))
	if err != nil {
		t.Fatal(err)
	}
	b := s.Checkers.Board
	for seat := 0; seat < 2; seat++ {
		if n := countCheckers(&b, seat); n != 12 {
			t.Errorf("seat %d has %d pieces, want 12", seat, n)
		}
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if b[r][c] != Empty && !darkSquare(r, c) {
				t.Errorf("piece on light square (%d,%d)", r, c)
			}
		}
	}
}

func TestCheckersSimpleMoves(t *testing.T) {
	e := seeded(1)
	s, _ := e.Initialize(Checkers, players(2))
	next, err := e.ProcessMove(s, checkersMove(5, 0, 4, 1), "p1")
	if err != nil {
		t.Fatalf("forward move: %v", err)
	}
	if next.CurrentTurn != "p2" || next.Checkers.Board[4][1] != "r" {
		t.Errorf("turn=%s (4,1)=%q", next.CurrentTurn, next.Checkers.Board[4][1])
	}

	back := checkersPosition(map[Square]Piece{{Row: 4, Col: 1}: "r", {Row: 0, Col: 7}: "b"}, 0)
	if _, err := e.ProcessMove(back, checkersMove(4, 1, 5, 0), "red"); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("man moved backwards: err = %v", err)
	}
}

func TestCheckersMandatoryCapture(t *testing.T) {
	e := seeded(1)
	s := checkersPosition(map[Square]Piece{
		{Row: 5, Col: 2}: "r",
		{Row: 4, Col: 3}: "b",
		{Row: 5, Col: 6}: "r",
		{Row: 0, Col: 1}: "b",
	}, 0)

	_, err := e.ProcessMove(s, checkersMove(5, 6, 4, 5), "red")
	var ime *IllegalMoveError
	if !errors.As(err, &ime) || ime.Reason != "a capture is available and must be taken" {
		t.Fatalf("quiet move with a capture pending: err = %v", err)
	}

	next, err := e.ProcessMove(s, checkersMove(5, 2, 3, 4), "red")
	if err != nil {
		t.Fatalf("jump: %v", err)
	}
	c := next.Checkers
	if c.Board[4][3] != Empty || c.Board[3][4] != "r" {
		t.Errorf("jump not applied: (4,3)=%q (3,4)=%q", c.Board[4][3], c.Board[3][4])
	}
	if len(c.Captured.White) != 1 || c.Captured.White[0] != "b" {
		t.Errorf("captured = %v, want [b]", c.Captured.White)
	}
	if next.CurrentTurn != "black" || c.ChainFrom != nil {
		t.Errorf("turn=%s chain=%v", next.CurrentTurn, c.ChainFrom)
	}
}

func TestCheckersMultiJump(t *testing.T) {
	e := seeded(1)
	s := checkersPosition(map[Square]Piece{
		{Row: 5, Col: 0}: "r",
		{Row: 4, Col: 1}: "b",
		{Row: 2, Col: 3}: "b",
		{Row: 0, Col: 7}: "b",
	}, 0)

	mid, err := e.ProcessMove(s, checkersMove(5, 0, 3, 2), "red")
	if err != nil {
		t.Fatalf("first jump: %v", err)
	}
	if mid.CurrentTurn != "red" || mid.Checkers.ChainFrom == nil || *mid.Checkers.ChainFrom != (Square{Row: 3, Col: 2}) {
		t.Fatalf("chain not held: turn=%s chain=%v", mid.CurrentTurn, mid.Checkers.ChainFrom)
	}
	if moves := e.LegalMoves(mid); len(moves) != 1 || *moves[0].Data.To != (Square{Row: 1, Col: 4}) {
		t.Errorf("legal moves mid-chain = %v", moves)
	}
	if _, err := e.ProcessMove(mid, checkersMove(3, 2, 2, 1), "red"); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("quiet move mid-chain: err = %v", err)
	}

	done, err := e.ProcessMove(mid, checkersMove(3, 2, 1, 4), "red")
	if err != nil {
		t.Fatalf("second jump: %v", err)
	}
	if done.CurrentTurn != "black" || done.Checkers.ChainFrom != nil {
		t.Errorf("turn=%s chain=%v after the chain", done.CurrentTurn, done.Checkers.ChainFrom)
	}
	if len(done.Checkers.Captured.White) != 2 {
		t.Errorf("captured = %v, want two", done.Checkers.Captured.White)
	}
}

func TestCheckersCrowning(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[Square]Piece
		move   Move
		at     Square
	}{
		{
			name:   "step onto the far row",
			pieces: map[Square]Piece{{Row: 1, Col: 2}: "r", {Row: 2, Col: 7}: "b"},
			move:   checkersMove(1, 2, 0, 1),
			at:     Square{Row: 0, Col: 1},
		},
		{
			name: "crowning ends a jump chain",
			pieces: map[Square]Piece{
				{Row: 2, Col: 1}: "r", {Row: 1, Col: 2}: "b", {Row: 1, Col: 4}: "b",
			},
			move: checkersMove(2, 1, 0, 3),
			at:   Square{Row: 0, Col: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := seeded(1).ProcessMove(checkersPosition(tt.pieces, 0), tt.move, "red")
			if err != nil {
				t.Fatal(err)
			}
			if got := next.Checkers.Board.at(tt.at); got != "R" {
				t.Errorf("piece = %q, want R", got)
			}
			rec := next.Checkers.MoveHistory[len(next.Checkers.MoveHistory)-1]
			if !rec.Crowned {
				t.Errorf("record not marked crowned")
			}
			if next.CurrentTurn != "black" || next.Checkers.ChainFrom != nil {
				t.Errorf("turn=%s chain=%v", next.CurrentTurn, next.Checkers.ChainFrom)
			}
		})
	}
}

func TestCheckersEndings(t *testing.T) {
	t.Run("last piece taken", func(t *testing.T) {
		s := checkersPosition(map[Square]Piece{{Row: 5, Col: 2}: "r", {Row: 4, Col: 3}: "b"}, 0)
		next, err := seeded(1).ProcessMove(s, checkersMove(5, 2, 3, 4), "red")
		if err != nil {
			t.Fatal(err)
		}
		if !next.GameOver || next.EndReason != EndNoPieces || next.Winner != "red" {
			t.Errorf("over=%v reason=%s winner=%s", next.GameOver, next.EndReason, next.Winner)
		}
	})
	t.Run("quiet king moves", func(t *testing.T) {
		s := checkersPosition(map[Square]Piece{{Row: 4, Col: 3}: "R", {Row: 0, Col: 7}: "B"}, 0)
		s.Checkers.QuietMoves = checkersQuietLimit - 1
		next, err := seeded(1).ProcessMove(s, checkersMove(4, 3, 3, 4), "red")
		if err != nil {
			t.Fatal(err)
		}
		if !next.GameOver || next.EndReason != EndMoveLimit || next.Winner != Draw {
			t.Errorf("over=%v reason=%s winner=%s", next.GameOver, next.EndReason, next.Winner)
		}
	})
}
