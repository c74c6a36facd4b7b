package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-users-service/internal/logger"
	"github.com/sbilibin2017/gw-users-service/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// ListErrorResponse represents an error response for the user list
// swagger:model ListErrorResponse
type ListErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewListHandler returns an HTTP handler for listing all users.
// @Summary List users
// @Description Returns all users ordered by creation time, newest first.
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB "Users"
// @Failure 500 {object} handlers.ListErrorResponse "Internal server error"
// @Router /users [get]
func NewListHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
