package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"shifa-backend/internal/models"
	"shifa-backend/internal/services"
)

type stubDirectory struct {
	users []*models.User
	err   error
}

func (s *stubDirectory) ListUsers(ctx context.Context) ([]*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users, nil
}

func (s *stubDirectory) DeleteUser(ctx context.Context, id int64) (*models.DeleteUserResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.DeleteUserResponse{Status: "success", Message: "User 1 deleted"}, nil
}

func TestAdminHandler_ListUsers(t *testing.T) {
	h := NewAdminHandler(&stubDirectory{users: []*models.User{
		{ID: 1, Name: "Ana", Gender: "f", Age: 30},
		{ID: 2, Name: "Ben", Gender: "m", Age: 41, QuestionCount: 3},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rr := httptest.NewRecorder()
	h.ListUsers(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var users []models.User
	if err := json.NewDecoder(rr.Body).Decode(&users); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[1].QuestionCount != 3 {
		t.Errorf("question_count = %d, want 3", users[1].QuestionCount)
	}
}

func deleteRequest(t *testing.T, h *AdminHandler, userID string) *httptest.ResponseRecorder {
	t.Helper()
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("user_id", userID)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/"+userID, nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	h.DeleteUser(rr, req)
	return rr
}

func TestAdminHandler_DeleteUser_Success(t *testing.T) {
	h := NewAdminHandler(&stubDirectory{})

	rr := deleteRequest(t, h, "1")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp models.DeleteUserResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q, want 'success'", resp.Status)
	}
}

func TestAdminHandler_DeleteUser_NotFound(t *testing.T) {
	h := NewAdminHandler(&stubDirectory{err: &services.NotFoundError{Message: "User not found"}})

	rr := deleteRequest(t, h, "99")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestAdminHandler_DeleteUser_BadID(t *testing.T) {
	h := NewAdminHandler(&stubDirectory{})

	rr := deleteRequest(t, h, "abc")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
