package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"whalestreet_ai_server/internal/ai"
	"whalestreet_ai_server/internal/gamecode"
	"whalestreet_ai_server/internal/session"
	"whalestreet_ai_server/internal/studio"
	"whalestreet_ai_server/internal/types"
	"whalestreet_ai_server/internal/utils"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	studio *studio.Service
	logger *zap.Logger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(svc *studio.Service, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		studio: svc,
		logger: logger.Named("APIHandler"),
	}
}

// --- Structs for API Requests/Responses ---

type MessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type ImproveRequest struct {
	Request string `json:"request" binding:"required"`
}

type CodeRequest struct {
	Markup string `json:"markup"`
	Styles string `json:"styles"`
	Script string `json:"script"`
}

type ParseRequest struct {
	Code string `json:"code"`
}

type FormatResponse struct {
	Code string `json:"code"`
}

type EnhancePromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type EnhancePromptResponse struct {
	EnhancedPrompt string `json:"enhancedPrompt"`
}

type BriefRequest struct {
	GameName        string `json:"gameName"`
	GameDescription string `json:"gameDescription"`
	GameRules       string `json:"gameRules"`
}

type BriefResponse struct {
	GameBrief string `json:"gameBrief"`
}

// TurnErrorResponse reports a failed AI turn together with the saved session,
// whose transcript already carries the apology message.
type TurnErrorResponse struct {
	Error   string         `json:"error"`
	Session *session.State `json:"session"`
}

func (r CodeRequest) fragments() gamecode.FragmentSet {
	return gamecode.FragmentSet{Markup: r.Markup, Styles: r.Styles, Script: r.Script}
}

// --- Session Handlers ---

// POST /sessions
func (h *APIHandler) CreateSession(c *gin.Context) {
	st, err := h.studio.Create(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// GET /sessions/:id
func (h *APIHandler) GetSession(c *gin.Context) {
	st, err := h.studio.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /sessions/:id/messages
func (h *APIHandler) SendMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	st, err := h.studio.Send(c.Request.Context(), c.Param("id"), req.Text)
	h.respondTurn(c, st, err)
}

// POST /sessions/:id/generate
func (h *APIHandler) GenerateGame(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	st, err := h.studio.Generate(c.Request.Context(), c.Param("id"), req.Prompt)
	h.respondTurn(c, st, err)
}

// POST /sessions/:id/improve
func (h *APIHandler) ImproveGame(c *gin.Context) {
	var req ImproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	st, err := h.studio.Improve(c.Request.Context(), c.Param("id"), req.Request)
	h.respondTurn(c, st, err)
}

// PUT /sessions/:id/code
func (h *APIHandler) UpdateCode(c *gin.Context) {
	var req CodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	st, err := h.studio.UpdateCode(c.Request.Context(), c.Param("id"), req.fragments())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// GET /sessions/:id/preview
func (h *APIHandler) PreviewGame(c *gin.Context) {
	page, err := h.studio.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// --- Stateless Game Helpers ---

// POST /game/enhance-prompt
func (h *APIHandler) EnhancePrompt(c *gin.Context) {
	var req EnhancePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	enhanced, err := h.studio.Enhance(c.Request.Context(), req.Prompt)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, EnhancePromptResponse{EnhancedPrompt: enhanced})
}

// POST /game/brief
func (h *APIHandler) GameBrief(c *gin.Context) {
	var req BriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	brief, err := h.studio.Brief(c.Request.Context(), types.BriefInput{
		GameName:        req.GameName,
		GameDescription: req.GameDescription,
		GameRules:       req.GameRules,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, BriefResponse{GameBrief: brief})
}

// --- Code Utilities ---

// POST /code/parse
func (h *APIHandler) ParseCode(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gamecode.Parse(req.Code))
}

// POST /code/format
func (h *APIHandler) FormatCode(c *gin.Context) {
	var req CodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, FormatResponse{Code: gamecode.FormatSet(req.fragments())})
}

// respondTurn answers a generate/improve call. A failed AI call still saved
// the session, so the body carries it next to the error.
func (h *APIHandler) respondTurn(c *gin.Context, st *session.State, err error) {
	if err == nil {
		c.JSON(http.StatusOK, st)
		return
	}
	if st == nil {
		h.respondError(c, err)
		return
	}
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("AI turn failed", zap.String("session_id", st.ID), zap.Error(err))
	}
	c.JSON(status, TurnErrorResponse{Error: msg, Session: st})
}

func (h *APIHandler) respondError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg})
}

// errorStatus maps domain errors to an HTTP status and a client-safe message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, studio.ErrEmptyInput), errors.Is(err, ai.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, "Session not found"
	case errors.Is(err, session.ErrBusy):
		return http.StatusConflict, "A request for this session is already in progress"
	case errors.Is(err, studio.ErrNoGame):
		return http.StatusUnprocessableEntity, "No game to improve. Please generate a game first."
	case errors.Is(err, ai.ErrProviderNotConfigured):
		return http.StatusServiceUnavailable, "AI provider is not configured"
	case utils.IsTransient(err):
		return http.StatusServiceUnavailable, "AI service is temporarily unavailable"
	case errors.Is(err, ai.ErrEmptyResponse), errors.Is(err, ai.ErrMalformedResponse):
		return http.StatusBadGateway, "AI returned an unusable response"
	default:
		return http.StatusBadGateway, "AI request failed"
	}
}
