package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Mockup Generation ---
	mockupGroup := router.Group("/mockup")
	{
		mockupGroup.POST("/generate", h.GenerateMockup) // JSON document + label
		mockupGroup.POST("/preview", h.PreviewMockup)   // Raw text/html document
		mockupGroup.POST("/transcribe", h.Transcribe)   // Speech to text only
		mockupGroup.POST("/voice", h.VoiceMockup)       // Speech to text, then generate
	}

	// Diagnostic: models visible to a credential
	router.GET("/models", h.ListModels)

	// --- Health & Metrics ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
