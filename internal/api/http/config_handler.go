package http

import (
	"net/http"

	"tabletop-hub/internal/config"
	"tabletop-hub/internal/game"

	"github.com/gin-gonic/gin"
)

type GameInfo struct {
	Type       game.Type `json:"type"`
	MinPlayers int       `json:"minPlayers"`
	MaxPlayers int       `json:"maxPlayers"`
}

type ConfigResponse struct {
	Games        []GameInfo        `json:"games"`
	Difficulties []game.Difficulty `json:"difficulties"`
	Bot          config.Bot        `json:"bot"`
	Rules        config.Rules      `json:"rules"`
}

// GetConfigHandler returns the public server settings
// @Summary Get server settings
// @Description Supported games with their seat ranges, bot settings and card rules
// @Tags Config
// @Produce json
// @Success 200 {object} ConfigResponse
// @Router /config [get]
func GetConfigHandler(cfg config.Config) gin.HandlerFunc {
	games := make([]GameInfo, 0, len(game.Types))
	for _, t := range game.Types {
		lo, hi := game.PlayerLimits(t)
		games = append(games, GameInfo{Type: t, MinPlayers: lo, MaxPlayers: hi})
	}
	resp := ConfigResponse{
		Games:        games,
		Difficulties: []game.Difficulty{game.Easy, game.Medium, game.Hard},
		Bot:          cfg.Bot,
		Rules:        cfg.Rules,
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resp)
	}
}
