package letters

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumedeck-backend/internal/shared/server/middleware"
	"resumedeck-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches cover-letter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/letters", h.generate)
	rg.GET("/resumes/:id/letters", h.list)
}

type generateRequest struct {
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	deck, err := h.Svc.Generate(c.Request.Context(), userID, c.Param("id"), req.JobDescription)
	if err != nil {
		h.fail(c, err, "failed to generate pitch deck")
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"deckId":    deck.ID,
		"resumeId":  deck.ResumeID,
		"slides":    deck.Slides(),
		"createdAt": deck.CreatedAt,
	})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	decks, err := h.Svc.List(c.Request.Context(), userID, c.Param("id"), limit, offset)
	if err != nil {
		h.fail(c, err, "failed to list pitch decks")
		return
	}

	resp := make([]gin.H, 0, len(decks))
	for _, deck := range decks {
		resp = append(resp, gin.H{
			"deckId":    deck.ID,
			"resumeId":  deck.ResumeID,
			"slides":    deck.Slides(),
			"createdAt": deck.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
