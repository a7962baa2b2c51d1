package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"shifa-backend/internal/handlers"
	"shifa-backend/internal/metrics"
	"shifa-backend/internal/models"
)

type stubRegistrar struct{}

func (stubRegistrar) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	return &models.User{ID: 1, Name: req.Name}, nil
}

type stubConversations struct{}

func (stubConversations) Send(ctx context.Context, userID int64, message string) (*models.ChatResponse, error) {
	return &models.ChatResponse{Reply: "ok", QuestionsUsed: 1, QuestionsLeft: 9}, nil
}

func (stubConversations) History(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	return []models.HistoryEntry{}, nil
}

type stubDirectory struct{}

func (stubDirectory) ListUsers(ctx context.Context) ([]*models.User, error) {
	return []*models.User{}, nil
}

func (stubDirectory) DeleteUser(ctx context.Context, id int64) (*models.DeleteUserResponse, error) {
	return &models.DeleteUserResponse{Status: "success"}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	return New(
		handlers.NewHealthHandler("shifa.ai"),
		handlers.NewUserHandler(stubRegistrar{}),
		handlers.NewChatHandler(stubConversations{}),
		handlers.NewAdminHandler(stubDirectory{}),
		collector,
		reg,
		t.TempDir(),
	)
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp models.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.App != "shifa.ai" {
		t.Errorf("app = %q, want 'shifa.ai'", resp.App)
	}
}

func TestRouter_ChatRoutes(t *testing.T) {
	r := newTestRouter(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat/send", strings.NewReader(`{"user_id":1,"message":"hi"}`))
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("POST /api/chat/send status = %d, want %d", rr.Code, http.StatusOK)
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/chat/history/1", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("GET /api/chat/history/{user_id} status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestRouter_AdminRoutes(t *testing.T) {
	r := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("GET /api/admin/users status = %d, want %d", rr.Code, http.StatusOK)
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/admin/users/1", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("DELETE /api/admin/users/{user_id} status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/users/create", nil)
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want '*'", got)
	}
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want %d", rr.Code, http.StatusOK)
	}
}
