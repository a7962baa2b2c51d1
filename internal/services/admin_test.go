package services

import (
	"context"
	"errors"
	"testing"

	"shifa-backend/internal/models"
)

type stubAdminStore struct {
	users   []*models.User
	deleted []int64
	exists  bool
}

func (s *stubAdminStore) List(ctx context.Context) ([]*models.User, error) {
	return s.users, nil
}

func (s *stubAdminStore) DeleteWithMessages(ctx context.Context, id int64) (bool, error) {
	if !s.exists {
		return false, nil
	}
	s.deleted = append(s.deleted, id)
	return true, nil
}

func TestAdminService_DeleteUser_NotFound(t *testing.T) {
	store := &stubAdminStore{exists: false}
	svc := NewAdminService(store)

	_, err := svc.DeleteUser(context.Background(), 7)

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(store.deleted) != 0 {
		t.Errorf("missing users must not cause deletions")
	}
}

func TestAdminService_DeleteUser_Success(t *testing.T) {
	store := &stubAdminStore{exists: true}
	svc := NewAdminService(store)

	resp, err := svc.DeleteUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q, want 'success'", resp.Status)
	}
	if resp.Message != "User 7 deleted" {
		t.Errorf("message = %q, want 'User 7 deleted'", resp.Message)
	}
}

func TestAdminService_ListUsers(t *testing.T) {
	store := &stubAdminStore{users: []*models.User{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Ben"},
	}}
	svc := NewAdminService(store)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	// Read-only: a second call returns the same result.
	again, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again) != len(users) {
		t.Errorf("repeated list calls should match: %d vs %d", len(again), len(users))
	}
}
