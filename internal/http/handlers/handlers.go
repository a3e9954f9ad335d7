package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/apex-assurance/claims-backend/internal/agent"
	"github.com/apex-assurance/claims-backend/internal/claims"
	"github.com/apex-assurance/claims-backend/internal/directory"
	"github.com/apex-assurance/claims-backend/internal/policy"
)

type Handler struct {
	Directory      directory.Directory
	Agent          *agent.Agent
	Dispatcher     *claims.Dispatcher
	Sessions       *agent.SessionManager
	Validator      *validator.Validate
	Logger         zerolog.Logger
	RequestTimeout time.Duration
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Directory.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "DIRECTORY_UNAVAILABLE", "Client directory unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type ChatImage struct {
	Base64    string `json:"base64" validate:"required"`
	MediaType string `json:"media_type"`
}

type ChatRequest struct {
	SessionID string      `json:"session_id"`
	Message   string      `json:"message" validate:"required"`
	Images    []ChatImage `json:"images" validate:"dive"`
}

// @Summary Chat with the claims assistant
// @Description Send a message, optionally with base64 photos of the damage. Omit session_id to start a new conversation.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "message"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	images := make([]agent.Image, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, agent.Image{Base64: img.Base64, MediaType: img.MediaType})
	}

	session := h.Sessions.Get(req.SessionID)

	ctx := c.Request.Context()
	if h.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.RequestTimeout)
		defer cancel()
	}

	reply, err := h.Agent.Chat(ctx, session, req.Message, images)
	if err != nil {
		var rateLimit agent.RateLimitError
		if errors.As(err, &rateLimit) {
			writeError(c, http.StatusTooManyRequests, "RATE_LIMITED", "Assistant is rate limited", rateLimit.RetryAfter.String())
			return
		}
		h.Logger.Error().Err(err).Str("session_id", session.ID).Msg("chat turn failed")
		writeError(c, http.StatusBadGateway, "ASSISTANT_ERROR", "Assistant unavailable", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"reply":      reply,
	})
}

func (h *Handler) SessionContext(c *gin.Context) {
	session, ok := h.Sessions.Lookup(c.Param("id"))
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Session not found", nil)
		return
	}
	c.JSON(http.StatusOK, session.Summary())
}

func (h *Handler) SessionReset(c *gin.Context) {
	session, ok := h.Sessions.Lookup(c.Param("id"))
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Session not found", nil)
		return
	}
	session.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Look up a client
// @Description Search the client directory by policy_number or name.
// @Tags clients
// @Produce json
// @Param policy_number query string false "Policy number (e.g., POL-12345678-A)"
// @Param name query string false "Client first name, last name, or full name"
// @Success 200 {object} directory.LookupResult
// @Failure 400 {object} map[string]any
// @Router /api/clients [get]
func (h *Handler) ClientsLookup(c *gin.Context) {
	policyNumber := strings.TrimSpace(c.Query("policy_number"))
	name := strings.TrimSpace(c.Query("name"))
	if policyNumber == "" && name == "" {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "policy_number or name query is required", nil)
		return
	}

	var (
		result directory.LookupResult
		err    error
	)
	if policyNumber != "" {
		result, err = h.Directory.LookupByPolicy(c.Request.Context(), policyNumber)
	} else {
		result, err = h.Directory.LookupByName(c.Request.Context(), name)
	}
	if err != nil {
		h.Logger.Error().Err(err).Msg("directory lookup failed")
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Directory lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) CoverageTier(c *gin.Context) {
	profile, err := policy.CoverageDetails(c.Param("tier"))
	if err != nil {
		var unknownTier policy.UnknownTierError
		if errors.As(err, &unknownTier) {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load coverage", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) ToolsList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": claims.Definitions()})
}

// @Summary Invoke one tool directly
// @Description Dispatch a single tool by name with a raw JSON argument body. Pass session_id to run against that session's claim context.
// @Tags tools
// @Accept json
// @Produce json
// @Param name path string true "Tool name"
// @Param session_id query string false "Session to fold the result into"
// @Success 200 {object} map[string]any
// @Router /api/tools/{name} [post]
func (h *Handler) ToolDispatch(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Failed to read body", err.Error())
		return
	}

	if sid := c.Query("session_id"); sid != "" {
		session, ok := h.Sessions.Lookup(sid)
		if !ok {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Session not found", nil)
			return
		}
		result := session.DispatchTool(c.Request.Context(), h.Dispatcher, c.Param("name"), body)
		c.JSON(http.StatusOK, result)
		return
	}

	result := h.Dispatcher.Dispatch(c.Request.Context(), claims.NewContext(), c.Param("name"), body)
	c.JSON(http.StatusOK, result)
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
