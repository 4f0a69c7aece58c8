package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"voicesketch/config"
	"voicesketch/internal/ai"
	"voicesketch/internal/mockup"
	"voicesketch/internal/speech"
)

// RemoteGenerator is a generator that can also report which models a
// credential may use.
type RemoteGenerator interface {
	mockup.Generator
	AvailableModels(ctx context.Context, apiKey string) ([]string, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	local         mockup.Generator
	remote        RemoteGenerator
	transcriber   speech.Transcriber
	defaultMode   string
	defaultAPIKey string // Server-side key used when a request carries none
	log           *zap.Logger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(
	local mockup.Generator,
	remote RemoteGenerator,
	transcriber speech.Transcriber,
	defaultMode string,
	defaultAPIKey string,
	log *zap.Logger,
) *APIHandler {
	if defaultMode == "" {
		defaultMode = config.ModeLocal
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &APIHandler{
		local:         local,
		remote:        remote,
		transcriber:   transcriber,
		defaultMode:   defaultMode,
		defaultAPIKey: defaultAPIKey,
		log:           log,
	}
}

// --- Structs for API Requests/Responses ---

// GenerateRequest leaves Prompt optional: the empty prompt is valid input and
// renders the generic component.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
	APIKey string `json:"apiKey"`
	Mode   string `json:"mode" binding:"omitempty,oneof=local remote"`
}

type GenerateResponse struct {
	MockupID   string `json:"mockupId"`
	Label      string `json:"label"`
	Mode       string `json:"mode"`
	HTML       string `json:"html"`
	Transcript string `json:"transcript,omitempty"`
}

type TranscribeResponse struct {
	Text string `json:"text"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
}

// --- API Handlers ---

// POST /mockup/generate
func (h *APIHandler) GenerateMockup(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	resp := h.generate(c.Request.Context(), req)
	c.JSON(http.StatusCreated, resp)
}

// POST /mockup/preview
func (h *APIHandler) PreviewMockup(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	resp := h.generate(c.Request.Context(), req)
	c.Header("X-Mockup-Label", resp.Label)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(resp.HTML))
}

// POST /mockup/transcribe
func (h *APIHandler) Transcribe(c *gin.Context) {
	text, err := h.transcribe(c)
	if err != nil {
		c.JSON(speechStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, TranscribeResponse{Text: text})
}

// POST /mockup/voice
func (h *APIHandler) VoiceMockup(c *gin.Context) {
	req := GenerateRequest{
		Mode:   c.PostForm("mode"),
		APIKey: c.PostForm("apiKey"),
	}
	if req.Mode != "" && req.Mode != config.ModeLocal && req.Mode != config.ModeRemote {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid mode %q", req.Mode)})
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = h.defaultMode
	}
	if mode == config.ModeRemote && strings.TrimSpace(h.resolveAPIKey(req.APIKey)) == "" {
		// No point paying for a transcription the remote generator will refuse.
		h.log.Warn("voice request in remote mode without an API key")
		c.JSON(http.StatusCreated, h.generate(c.Request.Context(), req))
		return
	}

	text, err := h.transcribe(c)
	if err != nil {
		c.JSON(speechStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.log.Info("heard voice prompt", zap.String("transcript", text))

	req.Prompt = text
	resp := h.generate(c.Request.Context(), req)
	resp.Transcript = text
	c.JSON(http.StatusCreated, resp)
}

// GET /models
// The credential travels in the X-API-Key header only; query strings end up
// in access logs.
func (h *APIHandler) ListModels(c *gin.Context) {
	apiKey := c.GetHeader("X-API-Key")

	models, err := h.remote.AvailableModels(c.Request.Context(), h.resolveAPIKey(apiKey))
	if err != nil {
		if errors.Is(err, ai.ErrMissingAPIKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "API key is required"})
			return
		}
		h.log.Error("listing models failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list models"})
		return
	}
	c.JSON(http.StatusOK, ModelsResponse{Models: models})
}

func (h *APIHandler) generate(ctx context.Context, req GenerateRequest) GenerateResponse {
	mode := req.Mode
	if mode == "" {
		mode = h.defaultMode
	}
	mockupID := uuid.New().String()

	var doc, label string
	if mode == config.ModeRemote {
		doc, label = h.remote.Generate(ctx, req.Prompt, h.resolveAPIKey(req.APIKey))
	} else {
		doc, label = h.local.Generate(ctx, req.Prompt, "")
	}

	h.log.Info("mockup generated",
		zap.String("mockupId", mockupID),
		zap.String("mode", mode),
		zap.String("label", label),
	)
	return GenerateResponse{MockupID: mockupID, Label: label, Mode: mode, HTML: doc}
}

func (h *APIHandler) transcribe(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return "", fmt.Errorf("%w: %v", speech.ErrDeviceUnavailable, err)
	}
	f, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", speech.ErrDeviceUnavailable, err)
	}
	defer f.Close()

	return h.transcriber.Transcribe(c.Request.Context(), fileHeader.Filename, f)
}

func (h *APIHandler) resolveAPIKey(apiKey string) string {
	if strings.TrimSpace(apiKey) != "" {
		return apiKey
	}
	return h.defaultAPIKey
}

func speechStatus(err error) int {
	switch {
	case errors.Is(err, speech.ErrDeviceUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, speech.ErrNoSpeech), errors.Is(err, speech.ErrUnintelligible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, speech.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
