package http

import (
	"net/http"

	"tabletop-hub/internal/room"

	"github.com/gin-gonic/gin"
)

// @Summary Create new room
// @Description Create a room for one game type; the caller becomes its host
// @Tags Room
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest true "Game type and player name"
// @Success 201 {object} RoomResponse
// @Failure 400 {object} ErrorResponse
// @Router /rooms [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "gameType required")
			return
		}
		v, host, err := rm.CreateRoom(c.Request.Context(), req.GameType, req.PlayerName)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, RoomResponse{Room: v, Participant: &host})
	}
}

// @Summary List rooms
// @Tags Room
// @Produce json
// @Success 200 {object} RoomsResponse
// @Router /rooms [get]
func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, RoomsResponse{Rooms: rm.List()})
	}
}

// @Summary Get room
// @Tags Room
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} RoomResponse
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{code} [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := rm.Get(c.Param("code"))
		if !ok {
			fail(c, room.ErrRoomNotFound)
			return
		}
		c.JSON(http.StatusOK, RoomResponse{Room: v})
	}
}

// @Summary Join a room
// @Description Join as a player while the room is waiting, or as a spectator at any time
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body JoinRoomRequest true "Player info"
// @Success 200 {object} RoomResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /rooms/{code}/join [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		v, p, err := rm.Join(c.Request.Context(), c.Param("code"), req.PlayerName, req.Spectator)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, RoomResponse{Room: v, Participant: &p})
	}
}

// @Summary Add a bot to a room
// @Description Host only. Difficulty is easy, medium or hard; empty uses the server default
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body AddBotRequest true "Host id and difficulty"
// @Success 200 {object} RoomResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /rooms/{code}/bots [post]
func AddBotHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddBotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "playerId required")
			return
		}
		v, bot, err := rm.AddBot(c.Request.Context(), c.Param("code"), req.PlayerID, req.Difficulty)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, RoomResponse{Room: v, Participant: &bot})
	}
}

// @Summary Toggle ready
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body PlayerRequest true "Player id"
// @Success 200 {object} RoomResponse
// @Router /rooms/{code}/ready [post]
func ReadyHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlayerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "playerId required")
			return
		}
		v, err := rm.ToggleReady(c.Request.Context(), c.Param("code"), req.PlayerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, RoomResponse{Room: v})
	}
}

// @Summary Start the game
// @Description Host only. Every seat must be ready and the seat count must fit the game
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body PlayerRequest true "Host id"
// @Success 200 {object} OKResponse
// @Failure 409 {object} ErrorResponse
// @Router /rooms/{code}/start [post]
func StartGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlayerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "playerId required")
			return
		}
		if err := rm.StartGame(c.Request.Context(), c.Param("code"), req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, OKResponse{OK: true})
	}
}

// @Summary Player makes a move
// @Description Submit a move; the response carries the state as the player sees it
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body MoveRequest true "Move data"
// @Success 200 {object} StateResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /rooms/{code}/moves [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		code := c.Param("code")
		if err := rm.SubmitMove(c.Request.Context(), code, req.PlayerID, req.Move); err != nil {
			fail(c, err)
			return
		}
		st, err := rm.State(code, req.PlayerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, StateResponse{State: st})
	}
}

// @Summary Forfeit or offer a draw
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body ActionRequest true "Action"
// @Success 200 {object} OKResponse
// @Router /rooms/{code}/actions [post]
func ActionHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "playerId and action (forfeit or draw_offer) required")
			return
		}
		if err := rm.GameAction(c.Request.Context(), c.Param("code"), req.PlayerID, req.Action); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, OKResponse{OK: true})
	}
}

// @Summary Get game state
// @Description Hands other than the viewer's are masked
// @Tags Game
// @Produce json
// @Param code path string true "Room code"
// @Param playerId query string false "Viewer id"
// @Success 200 {object} StateResponse
// @Router /rooms/{code}/state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := rm.State(c.Param("code"), c.Query("playerId"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, StateResponse{State: st})
	}
}

// @Summary Get the last persisted game record
// @Tags Game
// @Produce json
// @Param code path string true "Room code"
// @Param playerId query string false "Viewer id"
// @Success 200 {object} SnapshotResponse
// @Router /rooms/{code}/snapshot [get]
func SnapshotHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := rm.Snapshot(c.Request.Context(), c.Param("code"), c.Query("playerId"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, SnapshotResponse{Record: rec})
	}
}

// @Summary Get possible moves for player
// @Description Returns every legal move; empty unless it is the player's turn
// @Tags Game
// @Produce json
// @Param code path string true "Room code"
// @Param playerId query string true "Player ID"
// @Success 200 {object} MovesResponse
// @Router /rooms/{code}/possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID := c.Query("playerId")
		if playerID == "" {
			badRequest(c, "playerId required")
			return
		}
		moves, err := rm.PossibleMoves(c.Param("code"), playerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, MovesResponse{Moves: moves})
	}
}

// @Summary Back to the lobby for another game
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body PlayerRequest true "Host id"
// @Success 200 {object} RoomResponse
// @Router /rooms/{code}/rematch [post]
func RematchHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlayerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "playerId required")
			return
		}
		v, err := rm.Rematch(c.Request.Context(), c.Param("code"), req.PlayerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, RoomResponse{Room: v})
	}
}

// @Summary Leave a room
// @Description A seated player leaving a running game forfeits it
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body PlayerRequest true "Participant id"
// @Success 200 {object} OKResponse
// @Router /rooms/{code}/leave [post]
func LeaveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlayerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "playerId required")
			return
		}
		if err := rm.Leave(c.Request.Context(), c.Param("code"), req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, OKResponse{OK: true})
	}
}

// @Summary Health check
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
