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

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// GetErrorResponse represents an error response for user lookup
// swagger:model GetErrorResponse
type GetErrorResponse struct {
	// Error message
	// example: user not found
	Error string `json:"error"`
}

// NewGetHandler returns an HTTP handler for fetching a single user by id.
// @Summary Get user by id
// @Description Returns the full user record for the given id.
// @Tags users
// @Produce json
// @Param id path string true "User id (UUID)"
// @Success 200 {object} models.UserDB "User"
// @Failure 400 {object} handlers.GetErrorResponse "Malformed id"
// @Failure 404 {object} handlers.GetErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GetErrorResponse{
				Error: "Invalid user id",
			})
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetErrorResponse{
					Error: models.ErrUserNotFound.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
