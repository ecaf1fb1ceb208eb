package http

import (
	"net/http"

	"tabletop-hub/internal/api/ws"
	"tabletop-hub/internal/config"
	"tabletop-hub/internal/room"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger), Recovery(logger))

	// WebSocket for live room events
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms", ListRoomsHandler(rm))
	rooms := r.Group("/rooms/:code")
	rooms.GET("", GetRoomHandler(rm))
	rooms.POST("/join", JoinRoomHandler(rm))
	rooms.POST("/bots", AddBotHandler(rm))
	rooms.POST("/ready", ReadyHandler(rm))
	rooms.POST("/rematch", RematchHandler(rm))
	rooms.POST("/leave", LeaveHandler(rm))

	// --- GAME ENDPOINTS ---
	rooms.POST("/start", StartGameHandler(rm))
	rooms.POST("/moves", MoveHandler(rm))
	rooms.POST("/actions", ActionHandler(rm))
	rooms.GET("/state", StateHandler(rm))
	rooms.GET("/snapshot", SnapshotHandler(rm))
	rooms.GET("/possible-moves", PossibleMovesHandler(rm))

	// --- CONFIG / OPS ---
	r.GET("/config", GetConfigHandler(cfg))
	r.GET("/healthz", HealthHandler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	return r
}
