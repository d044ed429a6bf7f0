package resumes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resumedeck-backend/internal/bootstrap"
	"resumedeck-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "11111111-1111-1111-1111-111111111111")
}

func TestResumeCreateImportAndGet(t *testing.T) {
	router := newTestRouter(t)

	// Create an empty resume.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", strings.NewReader(`{"title":"Backend Engineer"}`))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ResumeID string `json:"resumeId"`
		Title    string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ResumeID == "" {
		t.Fatalf("expected resumeId")
	}
	if created.Title != "Backend Engineer" {
		t.Fatalf("title = %q", created.Title)
	}

	// Import a structured document.
	doc := `{"personal_info":{"full_name":"Ada Lovelace"},"skills":["go","sql"]}`
	reqImport := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/"+created.ResumeID+"/import", strings.NewReader(doc))
	addGuestHeader(reqImport)
	respImport := httptest.NewRecorder()
	router.ServeHTTP(respImport, reqImport)

	if respImport.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", respImport.Code, respImport.Body.String())
	}

	// Read it back.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ResumeID, nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
}

func TestResumeImportRejectsJunk(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var created struct {
		ResumeID string `json:"resumeId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	reqImport := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/"+created.ResumeID+"/import", strings.NewReader(`not json at all`))
	addGuestHeader(reqImport)
	respImport := httptest.NewRecorder()
	router.ServeHTTP(respImport, reqImport)

	if respImport.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", respImport.Code)
	}
}

func TestResumeIsolatedPerOwner(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	var created struct {
		ResumeID string `json:"resumeId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	// A different guest cannot see it.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ResumeID, nil)
	reqGet.Header.Set("X-Guest-Id", "22222222-2222-2222-2222-222222222222")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", respGet.Code)
	}
}

func TestResumeDelete(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	var created struct {
		ResumeID string `json:"resumeId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	reqDel := httptest.NewRequest(http.MethodDelete, "/api/v1/resumes/"+created.ResumeID, nil)
	addGuestHeader(reqDel)
	respDel := httptest.NewRecorder()
	router.ServeHTTP(respDel, reqDel)
	if respDel.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", respDel.Code)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ResumeID, nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", respGet.Code)
	}
}
