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

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeleteResponse represents a successful delete response
// swagger:model DeleteResponse
type DeleteResponse struct {
	// Delete indicator
	// example: true
	Deleted bool `json:"deleted"`
}

// DeleteErrorResponse represents an error response for a user delete
// swagger:model DeleteErrorResponse
type DeleteErrorResponse struct {
	// Error message
	// example: user not found
	Error string `json:"error"`
}

// NewDeleteHandler returns an HTTP handler for deleting a user.
// @Summary Delete user
// @Description Removes a user permanently. Deleting an already removed user yields 404.
// @Tags users
// @Produce json
// @Param id path string true "User id (UUID)"
// @Success 200 {object} handlers.DeleteResponse "Deleted"
// @Failure 400 {object} handlers.DeleteErrorResponse "Malformed id"
// @Failure 404 {object} handlers.DeleteErrorResponse "User not found"
// @Router /users/{id} [delete]
func NewDeleteHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteErrorResponse{
				Error: "Invalid user id",
			})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, models.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteErrorResponse{
					Error: models.ErrUserNotFound.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteResponse{Deleted: true})
	}
}
