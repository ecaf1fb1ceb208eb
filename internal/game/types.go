package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Type string

const (
	Chess       Type = "chess"
	Checkers    Type = "checkers"
	Hearts      Type = "hearts"
	Spades      Type = "spades"
	CrazyEights Type = "crazy8s"
	GoFish      Type = "gofish"
)

// Types lists every supported game in a stable order.
var Types = []Type{Chess, Checkers, Hearts, Spades, CrazyEights, GoFish}

func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedGameType, s)
}

// PlayerLimits returns the inclusive seat range a room needs before the game can start.
func PlayerLimits(t Type) (min, max int) {
	switch t {
	case Chess, Checkers:
		return 2, 2
	case Hearts, Spades:
		return 4, 4
	case CrazyEights:
		return 2, 8
	case GoFish:
		return 2, 6
	}
	return 0, 0
}

type Phase string

const (
	PhasePassing  Phase = "passing"
	PhaseBidding  Phase = "bidding"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

type EndReason string

const (
	EndCheckmate            EndReason = "checkmate"
	EndStalemate            EndReason = "stalemate"
	EndInsufficientMaterial EndReason = "insufficient_material"
	EndForfeit              EndReason = "forfeit"
	EndDrawAgreed           EndReason = "draw_agreed"
	EndHandEmpty            EndReason = "hand_empty"
	EndNoPieces             EndReason = "no_pieces"
	EndNoMoves              EndReason = "no_moves"
	EndMoveLimit            EndReason = "move_limit"
	EndScoreLimit           EndReason = "score_limit"
	EndBooksComplete        EndReason = "books_complete"
	EndBlocked              EndReason = "blocked"
)

// Draw is stored in State.Winner when nobody won.
const Draw = "draw"

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(s)) {
	case Easy:
		return Easy, nil
	case Medium, "":
		return Medium, nil
	case Hard:
		return Hard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// State is the authoritative state of one game. Exactly one of the payload
// pointers is set and it matches Type.
type State struct {
	Type        Type      `json:"gameType"`
	Players     []string  `json:"players"`
	CurrentTurn string    `json:"currentTurn"`
	Phase       Phase     `json:"phase"`
	GameOver    bool      `json:"gameOver"`
	Winner      string    `json:"winner,omitempty"`
	EndReason   EndReason `json:"endReason,omitempty"`
	MoveCount   int       `json:"moveCount"`

	Chess       *ChessState       `json:"chess,omitempty"`
	Checkers    *CheckersState    `json:"checkers,omitempty"`
	Hearts      *HeartsState      `json:"hearts,omitempty"`
	Spades      *SpadesState      `json:"spades,omitempty"`
	CrazyEights *CrazyEightsState `json:"crazy8s,omitempty"`
	GoFish      *GoFishState      `json:"gofish,omitempty"`
}

// TurnIndex is the seat index of CurrentTurn, or -1 when nobody is to move.
func (s *State) TurnIndex() int {
	return s.seatOf(s.CurrentTurn)
}

func (s *State) seatOf(id string) int {
	for i, p := range s.Players {
		if p == id {
			return i
		}
	}
	return -1
}

func (s *State) finish(winner string, reason EndReason) {
	s.GameOver = true
	s.Winner = winner
	s.EndReason = reason
	s.Phase = PhaseFinished
}

// Clone returns a deep copy. Boards are arrays and copy by value.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := *s
	out.Players = append([]string(nil), s.Players...)
	if s.Chess != nil {
		c := *s.Chess
		c.MoveHistory = append([]ChessRecord(nil), s.Chess.MoveHistory...)
		c.Captured = CapturedPieces{
			White: append([]Piece(nil), s.Chess.Captured.White...),
			Black: append([]Piece(nil), s.Chess.Captured.Black...),
		}
		out.Chess = &c
	}
	if s.Checkers != nil {
		c := *s.Checkers
		c.MoveHistory = append([]CheckersRecord(nil), s.Checkers.MoveHistory...)
		c.Captured = CapturedPieces{
			White: append([]Piece(nil), s.Checkers.Captured.White...),
			Black: append([]Piece(nil), s.Checkers.Captured.Black...),
		}
		if s.Checkers.ChainFrom != nil {
			sq := *s.Checkers.ChainFrom
			c.ChainFrom = &sq
		}
		out.Checkers = &c
	}
	if s.Hearts != nil {
		out.Hearts = s.Hearts.clone()
	}
	if s.Spades != nil {
		out.Spades = s.Spades.clone()
	}
	if s.CrazyEights != nil {
		out.CrazyEights = s.CrazyEights.clone()
	}
	if s.GoFish != nil {
		out.GoFish = s.GoFish.clone()
	}
	return &out
}

type MoveKind string

const (
	KindChessMove    MoveKind = "chess_move"
	KindCheckersMove MoveKind = "checkers_move"
	KindPlayCard     MoveKind = "play_card"
	KindDrawCard     MoveKind = "draw_card"
	KindPassCards    MoveKind = "pass_cards"
	KindBid          MoveKind = "bid"
	KindAskForCards  MoveKind = "ask_for_cards"
)

type Move struct {
	Kind MoveKind `json:"kind"`
	Data MoveData `json:"data"`
}

type MoveData struct {
	From         *Square `json:"from,omitempty"`
	To           *Square `json:"to,omitempty"`
	Card         Card    `json:"card,omitempty"`
	Cards        []Card  `json:"cards,omitempty"`
	Suit         string  `json:"suit,omitempty"`
	Bid          *int    `json:"bid,omitempty"`
	TargetPlayer string  `json:"targetPlayer,omitempty"`
	Rank         string  `json:"rank,omitempty"`
}

func (m Move) String() string {
	switch m.Kind {
	case KindChessMove, KindCheckersMove:
		if m.Data.From != nil && m.Data.To != nil {
			return fmt.Sprintf("%s %s-%s", m.Kind, m.Data.From, m.Data.To)
		}
	case KindPlayCard:
		return fmt.Sprintf("%s %s", m.Kind, m.Data.Card)
	case KindBid:
		if m.Data.Bid != nil {
			return fmt.Sprintf("%s %d", m.Kind, *m.Data.Bid)
		}
	case KindAskForCards:
		return fmt.Sprintf("%s %s from %s", m.Kind, m.Data.Rank, m.Data.TargetPlayer)
	case KindPassCards:
		return fmt.Sprintf("%s %v", m.Kind, m.Data.Cards)
	}
	return string(m.Kind)
}

// Square addresses a board cell. Row 0 is the top of the board (rank 8 in chess).
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Sq(row, col int) *Square { return &Square{Row: row, Col: col} }

func (s Square) valid() bool { return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8 }

// String renders the square in algebraic notation.
func (s Square) String() string {
	if !s.valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, 8-s.Row)
}

// ParseSquare reads algebraic notation such as "e2".
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	return Square{Row: 8 - int(s[1]-'0'), Col: int(s[0] - 'a')}, nil
}

// UnmarshalJSON accepts either {"row":6,"col":4} or "e2".
func (s *Square) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		sq, err := ParseSquare(str)
		if err != nil {
			return err
		}
		*s = sq
		return nil
	}
	type plain Square
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = Square(p)
	return nil
}

// Piece is a board token: "" for an empty square, "wP".."bK" in chess and
// "r","R","b","B" in checkers.
type Piece string

const Empty Piece = ""

type Board [8][8]Piece

func (b *Board) at(s Square) Piece { return b[s.Row][s.Col] }

func (b *Board) set(s Square, p Piece) { b[s.Row][s.Col] = p }

// CapturedPieces lists the pieces each side has taken. White is seat 0.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// Cards lists every card of a card game wherever it currently is. Board
// games return nil.
func (s *State) Cards() []Card {
	switch {
	case s.Hearts != nil:
		return s.Hearts.cards()
	case s.Spades != nil:
		return s.Spades.cards()
	case s.CrazyEights != nil:
		return s.CrazyEights.cards()
	case s.GoFish != nil:
		return s.GoFish.cards()
	}
	return nil
}
