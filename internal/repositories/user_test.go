package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-users-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	createdAt := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, name, created_at FROM users WHERE id = $1`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at"}).
				AddRow(id.String(), "alice@example.com", "Alice", createdAt))

		user, err := repo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "Alice", user.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, name, created_at FROM users WHERE id = $1`)).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, models.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("storage error passes through", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, name, created_at FROM users WHERE id = $1`)).
			WithArgs(id).
			WillReturnError(sql.ErrConnDone)

		user, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered result", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db)

		newer := uuid.New()
		older := uuid.New()
		now := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, name, created_at FROM users ORDER BY created_at DESC`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at"}).
				AddRow(newer.String(), "new@example.com", "New", now).
				AddRow(older.String(), "old@example.com", "Old", now.Add(-time.Hour)))

		users, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, newer, users[0].ID)
		assert.Equal(t, older, users[1].ID)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, name, created_at FROM users ORDER BY created_at DESC`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at"}))

		users, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})
}

func TestUserWriteRepository_Save(t *testing.T) {
	ctx := context.Background()

	user := &models.UserDB{
		ID:        uuid.New(),
		Email:     "alice@example.com",
		Name:      "Alice",
		CreatedAt: time.Now().UTC(),
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, email, name, created_at) VALUES ($1, $2, $3, $4)`)).
			WithArgs(user.ID, user.Email, user.Name, user.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Save(ctx, user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, email, name, created_at) VALUES ($1, $2, $3, $4)`)).
			WithArgs(user.ID, user.Email, user.Name, user.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		assert.ErrorIs(t, repo.Save(ctx, user), models.ErrEmailAlreadyExists)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, email, name, created_at) VALUES ($1, $2, $3, $4)`)).
			WithArgs(user.ID, user.Email, user.Name, user.CreatedAt).
			WillReturnError(sql.ErrConnDone)

		assert.ErrorIs(t, repo.Save(ctx, user), sql.ErrConnDone)
	})
}

func TestUserWriteRepository_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET email = $1, name = $2 WHERE id = $3`)).
			WithArgs("new@example.com", "New Name", id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, id, "new@example.com", "New Name"))
	})

	t.Run("no row matched", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET email = $1, name = $2 WHERE id = $3`)).
			WithArgs("new@example.com", "New Name", id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, id, "new@example.com", "New Name"), models.ErrUserNotFound)
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET email = $1, name = $2 WHERE id = $3`)).
			WithArgs("taken@example.com", "New Name", id).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		assert.ErrorIs(t, repo.Update(ctx, id, "taken@example.com", "New Name"), models.ErrEmailAlreadyExists)
	})
}

func TestUserWriteRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, id))
	})

	t.Run("no row matched", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, id), models.ErrUserNotFound)
	})
}
