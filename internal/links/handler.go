package links

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumedeck-backend/internal/shared/server/middleware"
	"resumedeck-backend/internal/shared/server/respond"
)

// Handler wires owner-facing link routes to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches link management routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/links", h.publish)
	rg.GET("/resumes/:id/links", h.list)
	rg.PATCH("/links/:id", h.setActive)
}

type publishRequest struct {
	VersionID *string `json:"versionId"`
	Template  string  `json:"template"`
}

func (h *Handler) publish(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	link, err := h.Svc.Publish(c.Request.Context(), userID, PublishInput{
		ResumeID:  c.Param("id"),
		VersionID: req.VersionID,
		Template:  req.Template,
	})
	if err != nil {
		h.fail(c, err, "failed to publish link")
		return
	}
	c.Set("linkSlug", link.Slug)
	respond.JSON(c, http.StatusCreated, toResponse(link))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	items, err := h.Svc.List(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to list links")
		return
	}

	resp := make([]linkResponse, 0, len(items))
	for _, link := range items {
		resp = append(resp, toResponse(link))
	}
	respond.JSON(c, http.StatusOK, resp)
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

func (h *Handler) setActive(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "isActive is required", nil)
		return
	}

	link, err := h.Svc.SetActive(c.Request.Context(), userID, c.Param("id"), *req.IsActive)
	if err != nil {
		h.fail(c, err, "failed to update link")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(link))
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "link not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
