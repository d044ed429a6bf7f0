package links_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resumedeck-backend/internal/resumes"
	"resumedeck-backend/internal/users"
)

func TestPublishListAndToggle(t *testing.T) {
	app := buildTestApp(t)
	ctx := context.Background()
	now := time.Now().UTC()

	guestID := "11111111-1111-1111-1111-111111111111"
	ownerID := "guest:" + guestID
	if err := app.UsersRepo.Upsert(ctx, users.User{ID: ownerID, Email: "guest@example.com"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := app.ResumesRepo.Create(ctx, resumes.Resume{
		ID:              "r1",
		OwnerID:         ownerID,
		Title:           "Backend Engineer",
		AIGeneratedJSON: json.RawMessage(`{"personal_info":{"full_name":"Ada"}}`),
		CreatedAt:       now,
		UpdatedAt:       now,
	}); err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	// Publish.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/r1/links", strings.NewReader(`{"template":"modern"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var published struct {
		LinkID   string `json:"linkId"`
		Slug     string `json:"slug"`
		IsActive bool   `json:"isActive"`
		Template string `json:"template"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&published); err != nil {
		t.Fatalf("decode publish response: %v", err)
	}
	if published.Slug == "" || !published.IsActive || published.Template != "modern" {
		t.Fatalf("unexpected link: %+v", published)
	}

	// The public page serves immediately.
	public := getPublicPage(app, published.Slug, "")
	if public.Code != http.StatusOK {
		t.Fatalf("public page status = %d", public.Code)
	}

	// List.
	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/r1/links", nil)
	reqList.Header.Set("X-Guest-Id", guestID)
	respList := httptest.NewRecorder()
	app.Router.ServeHTTP(respList, reqList)

	if respList.Code != http.StatusOK {
		t.Fatalf("list status = %d", respList.Code)
	}
	var listed []struct {
		LinkID string `json:"linkId"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].LinkID != published.LinkID {
		t.Fatalf("unexpected list: %+v", listed)
	}

	// Deactivate.
	reqToggle := httptest.NewRequest(http.MethodPatch, "/api/v1/links/"+published.LinkID, strings.NewReader(`{"isActive":false}`))
	reqToggle.Header.Set("Content-Type", "application/json")
	reqToggle.Header.Set("X-Guest-Id", guestID)
	respToggle := httptest.NewRecorder()
	app.Router.ServeHTTP(respToggle, reqToggle)

	if respToggle.Code != http.StatusOK {
		t.Fatalf("toggle status = %d: %s", respToggle.Code, respToggle.Body.String())
	}

	// The public page is now gone for viewers.
	denied := getPublicPage(app, published.Slug, "")
	if denied.Code != http.StatusFound {
		t.Fatalf("expected redirect after deactivation, got %d", denied.Code)
	}
}

func TestToggleRequiresOwnership(t *testing.T) {
	app := buildTestApp(t)
	link := seedPublishedResume(t, app, "none", time.Hour, true)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/links/"+link.ID, strings.NewReader(`{"isActive":false}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "22222222-2222-2222-2222-222222222222")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign link, got %d", resp.Code)
	}
}
