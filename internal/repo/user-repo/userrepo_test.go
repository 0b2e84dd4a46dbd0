package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/dojoledger/internal/domain"
)

var (
	userColumns = []string{"id", "username", "email", "password_hash", "pin_hash", "is_admin", "last_login", "created_at"}
	created     = time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)
	lastSeen    = time.Date(2024, time.February, 3, 18, 30, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "sensei@dojo.it",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "sensei", "sensei@dojo.it", "hashed_password", "hashed_pin", true, &lastSeen, created)
				mock.ExpectQuery(regexp.QuoteMeta(findByEmail)).
					WithArgs("sensei@dojo.it").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Username:     "sensei",
				Email:        "sensei@dojo.it",
				PasswordHash: "hashed_password",
				PinHash:      "hashed_pin",
				IsAdmin:      true,
				LastLogin:    &lastSeen,
				CreatedAt:    created,
			},
		},
		{
			name:  "User never logged in",
			email: "new@dojo.it",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(2, "new", "new@dojo.it", "hashed_password", "", false, nil, created)
				mock.ExpectQuery(regexp.QuoteMeta(findByEmail)).
					WithArgs("new@dojo.it").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           2,
				Username:     "new",
				Email:        "new@dojo.it",
				PasswordHash: "hashed_password",
				CreatedAt:    created,
			},
		},
		{
			name:  "User not found",
			email: "ghost@dojo.it",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByEmail)).
					WithArgs("ghost@dojo.it").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "sensei@dojo.it",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByEmail)).
					WithArgs("sensei@dojo.it").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(findByUsername)).
		WithArgs("sensei").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByUsername(context.Background(), "sensei")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectedErr error
	}{
		{
			name: "Create user successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertUser)).
					WithArgs("sensei", "sensei@dojo.it", "hashed_password", "", false).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))
			},
		},
		{
			name: "Duplicate email",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertUser)).
					WithArgs("sensei", "sensei@dojo.it", "hashed_password", "", false).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})
			},
			expectErr:   true,
			expectedErr: domain.ErrDuplicate,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertUser)).
					WithArgs("sensei", "sensei@dojo.it", "hashed_password", "", false).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user := &domain.User{Username: "sensei", Email: "sensei@dojo.it", PasswordHash: "hashed_password"}
			result, err := repo.Create(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, result.ID)
			assert.Equal(t, created, result.CreatedAt)
		})
	}
}

func TestRepository_UpdateLastLogin(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(updateLastLogin)).
		WithArgs(lastSeen, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdateLastLogin(context.Background(), 1, lastSeen))

	mock.ExpectExec(regexp.QuoteMeta(updateLastLogin)).
		WithArgs(lastSeen, 9).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.UpdateLastLogin(context.Background(), 9, lastSeen), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
