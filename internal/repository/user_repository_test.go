package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shopping-service/internal/domain"
)

var userCols = []string{"id", "display_name", "username", "password_hash", "is_admin"}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestUserRepository_List(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT id, display_name, username, password_hash, is_admin FROM users ORDER BY id DESC`).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(int32(2), "Bob", "bob", "h2", false).
			AddRow(int32(1), "Alice", "alice", "h1", true))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int32(2), users[0].ID)
	assert.True(t, users[1].IsAdmin)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`FROM users WHERE username=\$1`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int32(1), "Alice", "alice", "hash", true))

	user, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.DisplayName)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`FROM users WHERE id=\$1`).
		WithArgs(int32(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`INSERT INTO users \(display_name, username, password_hash, is_admin\)`).
		WithArgs("Carol", "carol", "hash", false).
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int32(3), "Carol", "carol", "hash", false))

	user, err := repo.Create(context.Background(), domain.NewUser{
		DisplayName:  "Carol",
		Username:     "carol",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), user.ID)
}

func TestUserRepository_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewUserRepository(mock)
		mock.ExpectExec(`DELETE FROM users WHERE id=\$1`).
			WithArgs(int32(4)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), 4))
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewUserRepository(mock)
		mock.ExpectExec(`DELETE FROM users WHERE id=\$1`).
			WithArgs(int32(4)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 4), pgx.ErrNoRows)
	})
}

func TestUserRepository_DeleteAdmins(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec(`DELETE FROM users WHERE is_admin = TRUE`).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	n, err := repo.DeleteAdmins(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestUserRepository_QueryError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`FROM users ORDER BY id DESC`).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	assert.EqualError(t, err, "db down")
}
