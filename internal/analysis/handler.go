package analysis

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tone-backend/internal/emotion"
	"tone-backend/internal/extract"
	"tone-backend/internal/shared/server/middleware"
	"tone-backend/internal/shared/server/respond"
	"tone-backend/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc          *Service
	MaxTextBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxTextBytes int64) *Handler {
	return &Handler{Svc: svc, MaxTextBytes: maxTextBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", middleware.MaxBody(h.MaxTextBytes), h.analyze)
	rg.POST("/documents/analyze", h.analyzeUpload)
	rg.GET("/emotions", h.emotions)
	rg.GET("/schema/analysis", h.schema)
}

type analyzeRequest struct {
	Text string `json:"text"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if middleware.IsBodyTooLarge(err) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "too_large", "text exceeds the size limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.run(c, req.Text)
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		if middleware.IsBodyTooLarge(err) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "too_large", "file exceeds the size limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	name, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	text, err := extract.ExtractTextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), name)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "file must be plain text, PDF or DOCX", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to extract text from file", nil)
		return
	}
	h.run(c, text)
}

func (h *Handler) run(c *gin.Context, text string) {
	if strings.TrimSpace(text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", []map[string]string{
			{"field": "text", "issue": "required"},
		})
		return
	}
	if h.MaxTextBytes > 0 && int64(len(text)) > h.MaxTextBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "too_large", "text exceeds the size limit", nil)
		return
	}
	c.Set("textBytes", len(text))

	result, err := h.Svc.AnalyzeDocument(c.Request.Context(), text)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to analyze text", nil)
		return
	}
	respond.OK(c, result)
}

type emotionInfo struct {
	Name  emotion.Category `json:"name"`
	Color string           `json:"color"`
}

func (h *Handler) emotions(c *gin.Context) {
	out := make([]emotionInfo, 0, len(emotion.Categories))
	for _, cat := range emotion.Categories {
		out = append(out, emotionInfo{Name: cat, Color: cat.Color()})
	}
	respond.OK(c, gin.H{"emotions": out})
}

func (h *Handler) schema(c *gin.Context) {
	respond.OK(c, Schema())
}
