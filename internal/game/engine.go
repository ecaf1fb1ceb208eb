package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Rules holds the tunable parts of the card games.
type Rules struct {
	// StrictCards enables follow-suit, broken-suit and matching checks for
	// human card plays. Bots always play by the strict rules.
	StrictCards  bool
	HeartsTarget int
	SpadesTarget int
}

func DefaultRules() Rules {
	return Rules{
		StrictCards:  true,
		HeartsTarget: 100,
		SpadesTarget: 500,
	}
}

// Engine initializes games, applies moves and picks bot moves. It keeps no
// per-game state, so one instance serves every room.
type Engine struct {
	rules Rules

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Engine)

// WithSeed makes dealing and bot choices reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func NewEngine(rules Rules, opts ...Option) *Engine {
	if rules.HeartsTarget <= 0 {
		rules.HeartsTarget = 100
	}
	if rules.SpadesTarget <= 0 {
		rules.SpadesTarget = 500
	}
	e := &Engine{
		rules: rules,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Rules() Rules { return e.rules }

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

// Shuffle returns a shuffled copy of deck using the engine's source.
func (e *Engine) Shuffle(deck []Card) []Card {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Shuffle(e.rng, deck)
}

// Initialize builds the opening state for gameType. players is the fixed
// seating order; the room layer has already checked the seat count.
func (e *Engine) Initialize(gameType Type, players []string) (*State, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("initialize %s: no players", gameType)
	}
	s := &State{
		Type:        gameType,
		Players:     append([]string(nil), players...),
		CurrentTurn: players[0],
		Phase:       PhasePlaying,
	}
	switch gameType {
	case Chess:
		s.Chess = newChessState()
	case Checkers:
		s.Checkers = newCheckersState()
	case Hearts:
		s.Hearts = &HeartsState{Scores: zeroScores(players), RoundScores: []map[string]int{}}
		e.dealHearts(s)
	case Spades:
		s.Spades = &SpadesState{}
		e.dealSpades(s)
	case CrazyEights:
		e.dealCrazyEights(s)
	case GoFish:
		e.dealGoFish(s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGameType, gameType)
	}
	return s, nil
}

// ProcessMove validates move for actor and returns the resulting state. The
// input state is never modified, so a rejected move leaves it untouched.
func (e *Engine) ProcessMove(s *State, move Move, actor string) (*State, error) {
	if s == nil {
		return nil, fmt.Errorf("process move: nil state")
	}
	if s.GameOver {
		return nil, ErrGameOver
	}
	if actor != s.CurrentTurn {
		return nil, ErrNotYourTurn
	}
	next := s.Clone()
	var err error
	switch s.Type {
	case Chess:
		err = applyChess(next, move, actor)
	case Checkers:
		err = applyCheckers(next, move, actor)
	case Hearts:
		err = e.applyHearts(next, move, actor)
	case Spades:
		err = e.applySpades(next, move, actor)
	case CrazyEights:
		err = e.applyCrazyEights(next, move, actor)
	case GoFish:
		err = e.applyGoFish(next, move, actor)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedGameType, s.Type)
	}
	if err != nil {
		return nil, err
	}
	next.MoveCount++
	return next, nil
}

// Forfeit ends the game in favour of the best placed opponent of player.
func (e *Engine) Forfeit(s *State, player string) (*State, error) {
	if s.GameOver {
		return nil, ErrGameOver
	}
	seat := s.seatOf(player)
	if seat < 0 {
		return nil, fmt.Errorf("forfeit: %q is not seated", player)
	}
	next := s.Clone()
	next.finish(forfeitWinner(next, seat), EndForfeit)
	return next, nil
}

// AgreeDraw ends the game without a winner.
func (e *Engine) AgreeDraw(s *State) (*State, error) {
	if s.GameOver {
		return nil, ErrGameOver
	}
	next := s.Clone()
	next.finish(Draw, EndDrawAgreed)
	return next, nil
}

// SkipTurn passes the turn of a card-game seat that has nothing to play.
// Board games end on their own when a side cannot move.
func (e *Engine) SkipTurn(s *State) (*State, error) {
	if s.GameOver {
		return nil, ErrGameOver
	}
	next := s.Clone()
	switch s.Type {
	case Chess, Checkers:
		return nil, fmt.Errorf("skip turn: not allowed in %s", s.Type)
	case GoFish:
		e.advanceGoFish(next)
	default:
		next.advanceTurn()
	}
	return next, nil
}

func forfeitWinner(s *State, seat int) string {
	switch s.Type {
	case Chess, Checkers:
		return s.Players[1-seat]
	case Spades:
		return s.Players[(seat+1)%2]
	}
	best, bestScore := "", 0
	for i, p := range s.Players {
		if i == seat {
			continue
		}
		score := standing(s, p)
		if best == "" || score > bestScore {
			best, bestScore = p, score
		}
	}
	return best
}

// standing ranks a seat in a card game, higher is better.
func standing(s *State, p string) int {
	switch s.Type {
	case Hearts:
		return -s.Hearts.Scores[p]
	case CrazyEights:
		return -len(s.CrazyEights.Hands[p])
	case GoFish:
		return bookCount(s.GoFish.Books[p])
	}
	return 0
}

func zeroScores(players []string) map[string]int {
	out := make(map[string]int, len(players))
	for _, p := range players {
		out[p] = 0
	}
	return out
}
