package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/akramas2005/backend-as-space/internal/redis"
)

// Dependencies holds all handler instances and middleware for route wiring.
type Dependencies struct {
	Messages *MessageHandler
	Files    *FileHandler
	Deletes  *DeleteHandler

	Redis *redis.Client
}

// SetupRouter registers all API routes on the Echo instance.
func SetupRouter(e *echo.Echo, deps *Dependencies) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		if err := deps.Redis.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]bool{"ok": false})
		}
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	api := e.Group("/api", RateLimitMiddleware(deps.Redis, 60, time.Minute))

	// Files
	api.POST("/files", deps.Files.Upload)
	api.GET("/files/:id", deps.Files.Fetch)
	api.DELETE("/files/:id", deps.Files.Delete)

	// Messages — the JSON body gets the same cap express.json had
	api.POST("/messages", deps.Messages.Post, middleware.BodyLimit("5M"))
	api.GET("/messages", deps.Messages.List)
	api.DELETE("/messages/:id", deps.Messages.Delete)
	api.DELETE("/messages/after/:id", deps.Deletes.DeleteFromMessage)

	// Conversations — the static "all" segment wins over :id
	api.DELETE("/conversations/all", deps.Deletes.DeleteAll)
	api.DELETE("/conversations/:id", deps.Deletes.DeleteConversation)

	// Retention
	api.POST("/cleanup", deps.Deletes.RunCleanup)
}
