package room

import (
	"context"
	"time"

	"tabletop-hub/internal/game"
	"tabletop-hub/internal/shared"
)

// GameRecord is the persisted snapshot written after every accepted move.
type GameRecord struct {
	RoomCode    string      `json:"roomCode"`
	State       *game.State `json:"state"`
	CurrentTurn string      `json:"currentTurn"`
	TurnCounter int64       `json:"turnCounter"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Store persists rooms and games. SaveGame accepts a record whose
// TurnCounter is 0, which starts a new game, or exactly one more than the
// stored counter. Anything else fails with ErrStaleTurn.
type Store interface {
	SaveRoom(ctx context.Context, r shared.RoomView) error
	DeleteRoom(ctx context.Context, code string) error
	SaveGame(ctx context.Context, rec GameRecord) error
	LoadGame(ctx context.Context, code string) (GameRecord, bool, error)
}
