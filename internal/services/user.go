package services

import (
	"context"
	"errors"
	"strings"

	"shifa-backend/internal/models"
	"shifa-backend/internal/repository"
)

type userStore interface {
	Create(ctx context.Context, user *models.User) error
}

type UserService struct {
	users userStore
}

func NewUserService(users userStore) *UserService {
	return &UserService{users: users}
}

// Register creates a new user. Display names are unique; a collision yields
// a ConflictError.
func (s *UserService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	fieldErrors := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = "Name is required"
	}
	if strings.TrimSpace(req.Gender) == "" {
		fieldErrors["gender"] = "Gender is required"
	}
	if req.Age <= 0 {
		fieldErrors["age"] = "Age must be a positive integer"
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	user := &models.User{
		Name:   req.Name,
		Gender: req.Gender,
		Age:    req.Age,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, &ConflictError{Message: "User already exists"}
		}
		return nil, err
	}
	return user, nil
}
