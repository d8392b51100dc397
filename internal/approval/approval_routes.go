package approval

import (
	"leavebot/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, signingSecret string) {
	slackRoutes := r.Group("/slack")
	slackRoutes.Use(middleware.SlackSignature(signingSecret))
	slackRoutes.Use(middleware.RateLimitByIP(20, 40))
	{
		slackRoutes.POST("/commands", handler.Commands)
		slackRoutes.POST("/interactions", handler.Interactions)
	}
}
