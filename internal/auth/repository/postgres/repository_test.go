package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/domain"
	repo "github.com/Induma-Magammana/FitLife-Tracker/internal/auth/repository/postgres"
	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
)

var userColumns = []string{"id", "first_name", "last_name", "email", "password_hash", "created_at"}

func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	userEmail := "test@example.com"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", "Test", "User", userEmail, "hash", time.Now()))

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err) // nil user, nil error
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, userEmail)
		assert.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", "Test", "User", "test@example.com", "hash", time.Now()))

		user, err := r.GetByID(ctx, "user-123")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs("user-404").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, "user-404")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	userToCreate := &domain.User{
		ID:           "user-123",
		FirstName:    "New",
		LastName:     "User",
		Email:        "new@example.com",
		PasswordHash: "new-hash",
		CreatedAt:    time.Now(),
	}
	args := []any{
		userToCreate.ID, userToCreate.FirstName, userToCreate.LastName,
		userToCreate.Email, userToCreate.PasswordHash, userToCreate.CreatedAt,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, userToCreate))
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := r.Create(ctx, userToCreate)
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyInUse)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(args...).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Create(ctx, userToCreate))
	})
}

func TestUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	user := &domain.User{
		ID:           "user-123",
		FirstName:    "Updated",
		LastName:     "User",
		Email:        "updated@example.com",
		PasswordHash: "hash",
	}
	args := []any{user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.Update(ctx, user))
	})

	t.Run("no rows means user not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, r.Update(ctx, user), apperrors.ErrUserNotFound)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		assert.ErrorIs(t, r.Update(ctx, user), apperrors.ErrEmailAlreadyInUse)
	})
}
