package http

import (
	"context"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/adapters/signal"
	"github.com/lingualive/coordinator/internal/app/orch"
	"github.com/lingualive/coordinator/internal/config"
)

func genClientToken() string {
	return uuid.NewString()
}

// ClientTokenMiddleware assigns every browser a stable token that
// doubles as its connection id on the signal socket.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = genClientToken()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, o *orch.Orchestrator) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("LinguaSessions", store))
	r.Use(ClientTokenMiddleware())

	h := &RoomHandler{Orch: o}
	r.GET("/health", h.Health)

	log.Info().Str("module", "adapters.http").Str("mode", cfg.Mode).Msg("router setup")

	api := r.Group("/api")

	ctl := signal.NewController(cfg, o)
	api.GET("/ws", func(c *gin.Context) {
		log.Info().Str("module", "adapters.http").Str("sid", c.GetString("client_token")).Msg("ws endpoint hit")
		ctl.HandleWS(ctx, c)
	})

	api.GET("/rooms", h.ListRooms)
	api.GET("/rooms/:id", h.RoomInfo)
	api.GET("/rooms/:id/summary", h.Summary)
	api.POST("/rooms/:id/messages", h.PostMessage)

	return r
}
