package services

import (
	"context"
	"fmt"

	"shifa-backend/internal/models"
)

type userAdminStore interface {
	List(ctx context.Context) ([]*models.User, error)
	DeleteWithMessages(ctx context.Context, id int64) (bool, error)
}

type AdminService struct {
	users userAdminStore
}

func NewAdminService(users userAdminStore) *AdminService {
	return &AdminService{users: users}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes a user and their messages. The repository does both
// deletes in one transaction, messages first.
func (s *AdminService) DeleteUser(ctx context.Context, id int64) (*models.DeleteUserResponse, error) {
	deleted, err := s.users.DeleteWithMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, &NotFoundError{Message: "User not found"}
	}
	return &models.DeleteUserResponse{
		Status:  "success",
		Message: fmt.Sprintf("User %d deleted", id),
	}, nil
}
