package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-users-service/internal/logger"
	"github.com/sbilibin2017/gw-users-service/internal/models"
)

// UserRegisterer defines the interface that the service must implement.
type UserRegisterer interface {
	Register(ctx context.Context, email, name string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Name
	// required: true
	// example: John Doe
	Name string `json:"name"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// example: email and name are required
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user. The id and created_at fields are assigned server-side; email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} models.UserDB "Created user"
// @Failure 400 {object} handlers.RegisterErrorResponse "Invalid request body or missing fields"
// @Failure 409 {object} handlers.RegisterErrorResponse "Email already exists"
// @Router /users/register [post]
func NewRegisterHandler(svc UserRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrEmailAndNameRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: models.ErrEmailAndNameRequired.Error(),
				})
			case errors.Is(err, models.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: models.ErrEmailAlreadyExists.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Location", "/users/"+user.ID.String())
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}
