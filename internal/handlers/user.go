package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"shifa-backend/internal/models"
)

type userRegistrar interface {
	Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
}

type UserHandler struct {
	service userRegistrar
}

func NewUserHandler(service userRegistrar) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CreateUserResponse{UserID: user.ID})
}
