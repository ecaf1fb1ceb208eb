package http

import (
	"tabletop-hub/internal/game"
	"tabletop-hub/internal/room"
	"tabletop-hub/internal/shared"
)

// CreateRoomRequest represents the payload for POST /rooms.
type CreateRoomRequest struct {
	GameType   string `json:"gameType" binding:"required" example:"chess"`
	PlayerName string `json:"playerName" example:"alice"`
}

// JoinRoomRequest represents the payload for joining an existing room.
type JoinRoomRequest struct {
	PlayerName string `json:"playerName" example:"bob"`
	Spectator  bool   `json:"spectator"`
}

// AddBotRequest is sent by the host to seat a bot.
type AddBotRequest struct {
	PlayerID   string `json:"playerId" binding:"required"`
	Difficulty string `json:"difficulty" example:"hard"`
}

// PlayerRequest identifies the acting participant.
type PlayerRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

// MoveRequest represents a player move.
type MoveRequest struct {
	PlayerID string    `json:"playerId" binding:"required"`
	Move     game.Move `json:"move"`
}

// ActionRequest carries a forfeit or a draw offer.
type ActionRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	Action   string `json:"action" binding:"required,oneof=forfeit draw_offer" example:"draw_offer"`
}

type RoomResponse struct {
	Room        shared.RoomView         `json:"room"`
	Participant *shared.ParticipantView `json:"participant,omitempty"`
}

type RoomsResponse struct {
	Rooms []shared.RoomView `json:"rooms"`
}

type StateResponse struct {
	State *game.State `json:"state"`
}

type SnapshotResponse struct {
	Record room.GameRecord `json:"record"`
}

type MovesResponse struct {
	Moves []game.Move `json:"moves"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
