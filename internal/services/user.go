package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-users-service/internal/logger"
	"github.com/sbilibin2017/gw-users-service/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, id uuid.UUID, email, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService handles user CRUD operations.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Register creates a new user with a server-generated id and UTC timestamp.
func (svc *UserService) Register(ctx context.Context, email, name string) (*models.UserDB, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		logger.Log.Errorw("invalid register input", "email", email, "name", name)
		return nil, models.ErrEmailAndNameRequired
	}

	user := &models.UserDB{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Get returns the user with the given id.
func (svc *UserService) Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	return user, nil
}

// List returns all users, most recently created first.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Update changes email and name of an existing user. The id and the
// creation timestamp are never touched.
func (svc *UserService) Update(ctx context.Context, id uuid.UUID, email, name string) error {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		logger.Log.Errorw("invalid update input", "id", id, "email", email, "name", name)
		return models.ErrEmailAndNameRequired
	}

	if err := svc.writer.Update(ctx, id, email, name); err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return err
	}
	return nil
}

// Delete removes a user permanently.
func (svc *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	return nil
}
