package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-users-service/internal/logger"
	"github.com/sbilibin2017/gw-users-service/internal/models"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id uuid.UUID, email, name string) error
}

// UpdateRequest represents the JSON body for a user update
// swagger:model UpdateRequest
type UpdateRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Name
	// required: true
	// example: John Doe
	Name string `json:"name"`
}

// UpdateResponse represents a successful update response
// swagger:model UpdateResponse
type UpdateResponse struct {
	// Update indicator
	// example: true
	Updated bool `json:"updated"`
}

// UpdateErrorResponse represents an error response for a user update
// swagger:model UpdateErrorResponse
type UpdateErrorResponse struct {
	// Error message
	// example: email and name are required
	Error string `json:"error"`
}

// NewUpdateHandler returns an HTTP handler for updating a user.
// @Summary Update user
// @Description Updates email and name of an existing user. Id and created_at never change.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id (UUID)"
// @Param updateRequest body handlers.UpdateRequest true "User update request"
// @Success 200 {object} handlers.UpdateResponse "Updated"
// @Failure 400 {object} handlers.UpdateErrorResponse "Malformed id or missing fields"
// @Failure 404 {object} handlers.UpdateErrorResponse "User not found"
// @Failure 409 {object} handlers.UpdateErrorResponse "Email already exists"
// @Router /users/{id} [put]
func NewUpdateHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateErrorResponse{
				Error: "Invalid user id",
			})
			return
		}

		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if err := svc.Update(r.Context(), id, req.Email, req.Name); err != nil {
			switch {
			case errors.Is(err, models.ErrEmailAndNameRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateErrorResponse{
					Error: models.ErrEmailAndNameRequired.Error(),
				})
			case errors.Is(err, models.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateErrorResponse{
					Error: models.ErrUserNotFound.Error(),
				})
			case errors.Is(err, models.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(UpdateErrorResponse{
					Error: models.ErrEmailAlreadyExists.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateResponse{Updated: true})
	}
}
