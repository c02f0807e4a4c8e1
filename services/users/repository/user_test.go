package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridemate/ridemate/internal/pkg/models"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &UserRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func userRows(user *models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password", "full_name", "phone", "role", "is_blocked", "created_at", "updated_at"}).
		AddRow(user.ID, user.Email, user.Password, user.FullName, user.Phone, user.Role, user.IsBlocked, user.CreatedAt, user.UpdatedAt)
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &models.User{
		Email:    "jane@example.com",
		Password: "hashed",
		FullName: "Jane Doe",
		Role:     models.RoleRider,
	}

	err := repo.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	want := &models.User{
		ID:        uuid.New(),
		Email:     "jane@example.com",
		Password:  "hashed",
		FullName:  "Jane Doe",
		Role:      models.RoleRider,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("jane@example.com").
		WillReturnRows(userRows(want))

	got, err := repo.GetUserByEmail(context.Background(), "jane@example.com")

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Email, got.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetUserByID(context.Background(), id)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestUpdateProfile_NoRows(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(context.Background(), &models.User{ID: uuid.New()})

	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestListUsers(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	a := &models.User{ID: uuid.New(), Email: "a@example.com", Role: models.RoleRider, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	b := &models.User{ID: uuid.New(), Email: "b@example.com", Role: models.RoleDriver, CreatedAt: time.Now(), UpdatedAt: time.Now()}

	rows := userRows(a)
	rows.AddRow(b.ID, b.Email, b.Password, b.FullName, b.Phone, b.Role, b.IsBlocked, b.CreatedAt, b.UpdatedAt)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(20, 0).
		WillReturnRows(rows)

	got, err := repo.ListUsers(context.Background(), 20, 0)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
}

func TestSetBlocked(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("UPDATE users").
		WithArgs(id, true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetBlocked(context.Background(), id, true)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
