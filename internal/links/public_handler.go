package links

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumedeck-backend/internal/shared/server/middleware"
	"resumedeck-backend/internal/shared/server/respond"
)

// PublicHandler serves the unauthenticated public resume page.
type PublicHandler struct {
	Svc        *Service
	UpgradeURL string
	SignupURL  string
}

// NewPublicHandler constructs a PublicHandler.
func NewPublicHandler(svc *Service, upgradeURL, signupURL string) *PublicHandler {
	return &PublicHandler{Svc: svc, UpgradeURL: upgradeURL, SignupURL: signupURL}
}

// RegisterRoutes attaches the public page route. The group is expected to
// carry OptionalAuth so a logged-in owner is recognized without requiring
// a session.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/r/:slug", h.view)
}

type renderResponse struct {
	ResumeJSON json.RawMessage `json:"resumeJson"`
	Template   string          `json:"template"`
	Slides     []Slide         `json:"slides"`
	IsOwner    bool            `json:"isOwner"`
	ViewCount  int             `json:"viewCount"`
}

func (h *PublicHandler) view(c *gin.Context) {
	slug := c.Param("slug")
	c.Set("linkSlug", slug)
	viewerID := middleware.UserIDFromContext(c)

	page, err := h.Svc.ServePublic(c.Request.Context(), slug, viewerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "this resume link does not exist", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		return
	}

	if !page.Decision.Servable {
		c.Redirect(http.StatusFound, h.deniedTarget(viewerID))
		return
	}

	respond.JSON(c, http.StatusOK, renderResponse{
		ResumeJSON: page.Snapshot.JSON,
		Template:   page.Snapshot.Template,
		Slides:     page.Slides,
		IsOwner:    page.IsOwner,
		ViewCount:  page.Link.ViewCount,
	})
}

// deniedTarget picks where an expired or deactivated link sends the viewer:
// logged-in viewers go to the upgrade page, anonymous viewers to signup with
// a hint about why they landed there.
func (h *PublicHandler) deniedTarget(viewerID string) string {
	if viewerID != "" {
		return h.UpgradeURL
	}
	return h.SignupURL + "?reason=link_expired"
}
