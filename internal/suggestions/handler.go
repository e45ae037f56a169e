package suggestions

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tone-backend/internal/shared/server/middleware"
	"tone-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the suggestion service.
type Handler struct {
	Svc          *Service
	MaxTextBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxTextBytes int64) *Handler {
	return &Handler{Svc: svc, MaxTextBytes: maxTextBytes}
}

// RegisterRoutes attaches suggestion routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/suggestions", middleware.MaxBody(h.MaxTextBytes), h.suggest)
}

func (h *Handler) suggest(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		if middleware.IsBodyTooLarge(err) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "too_large", "text exceeds the size limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.Intensity = strings.ToLower(strings.TrimSpace(req.Intensity))
	switch req.Intensity {
	case "", "subtle", "moderate", "strong":
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "intensity must be subtle, moderate or strong", []map[string]string{
			{"field": "intensity", "issue": "invalid"},
		})
		return
	}
	c.Set("textBytes", len(req.Text))
	c.Set("targetEmotion", req.TargetEmotion)

	result, err := h.Svc.Suggest(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Text and target emotion are required", []map[string]string{
				{"field": "text", "issue": "required"},
				{"field": "target_emotion", "issue": "required"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to generate suggestions", nil)
		}
		return
	}
	respond.OK(c, result)
}
