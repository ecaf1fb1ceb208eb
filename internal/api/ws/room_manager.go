package ws

import (
	"context"

	"tabletop-hub/internal/game"
	"tabletop-hub/internal/shared"
)

// RoomManager is the part of room.Manager the hub needs.
type RoomManager interface {
	Get(roomCode string) (shared.RoomView, bool)
	State(roomCode, viewer string) (*game.State, error)
	HandleIntent(ctx context.Context, roomCode string, in shared.Intent) error
}
