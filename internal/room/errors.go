package room

import "errors"

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room is full")
	ErrNotHost        = errors.New("only the host can do that")
	ErrNotReady       = errors.New("room is not ready to start")
	ErrSpectator      = errors.New("spectators cannot act in the game")
	ErrGameInProgress = errors.New("game already started")
	ErrNoGame         = errors.New("no game in progress")
	ErrNotParticipant = errors.New("not a participant of this room")
	ErrInvalidRequest = errors.New("invalid request")
	ErrStaleTurn      = errors.New("stale turn counter")
)
