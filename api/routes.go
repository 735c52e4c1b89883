package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	handlers "whalestreet_ai_server/internal/api"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *handlers.APIHandler) {

	// --- Studio Sessions ---
	sessionGroup := router.Group("/sessions")
	{
		sessionGroup.POST("", h.CreateSession)
		sessionGroup.GET("/:id", h.GetSession)
		sessionGroup.POST("/:id/messages", h.SendMessage) // generate first, improve afterwards
		sessionGroup.POST("/:id/generate", h.GenerateGame)
		sessionGroup.POST("/:id/improve", h.ImproveGame)
		sessionGroup.PUT("/:id/code", h.UpdateCode)
		sessionGroup.GET("/:id/preview", h.PreviewGame)
	}

	// --- Stateless AI Helpers ---
	gameGroup := router.Group("/game")
	{
		gameGroup.POST("/enhance-prompt", h.EnhancePrompt)
		gameGroup.POST("/brief", h.GameBrief)
	}

	// --- Code Utilities ---
	codeGroup := router.Group("/code")
	{
		codeGroup.POST("/parse", h.ParseCode)
		codeGroup.POST("/format", h.FormatCode)
	}

	// --- Simple Health Check ---
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
}
