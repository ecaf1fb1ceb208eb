package http

import (
	"errors"
	"net/http"

	"tabletop-hub/internal/game"
	"tabletop-hub/internal/room"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrNotHost),
		errors.Is(err, room.ErrSpectator),
		errors.Is(err, room.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrWrongMoveKind):
		return http.StatusUnprocessableEntity
	case errors.Is(err, game.ErrUnsupportedGameType),
		errors.Is(err, room.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, room.ErrRoomFull),
		errors.Is(err, room.ErrNotReady),
		errors.Is(err, room.ErrGameInProgress),
		errors.Is(err, room.ErrNoGame),
		errors.Is(err, room.ErrStaleTurn):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// fail writes err as an ErrorResponse. Unexpected errors are recorded on
// the context for the request logger and hidden from the client.
func fail(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = "internal error"
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
