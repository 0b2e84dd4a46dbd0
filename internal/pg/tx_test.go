package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const updateBelt = "UPDATE members SET belt = $1 WHERE id = $2"

func NewMock(t *testing.T) (*Manager, *DB, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return NewTXManager(mockDB), New(mockDB), mockDB
}

func TestManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(db *DB, m *Manager) TransactionalFn
		expectErr bool
	}{
		{
			name: "Commit on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE members").
					WithArgs("Blu", 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB, _ *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, updateBelt, "Blu", 1)
					return err
				}
			},
		},
		{
			name: "Rollback on error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE members").
					WithArgs("Blu", 1).
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			fn: func(db *DB, _ *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, updateBelt, "Blu", 1)
					return err
				}
			},
			expectErr: true,
		},
		{
			name: "Nested begin joins outer transaction",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE members").
					WithArgs("Verde", 2).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB, m *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					return m.Begin(ctx, func(ctx context.Context) error {
						_, err := db.Exec(ctx, updateBelt, "Verde", 2)
						return err
					})
				}
			},
		},
		{
			name: "Begin fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))
			},
			fn: func(_ *DB, _ *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					return nil
				}
			},
			expectErr: true,
		},
		{
			name: "Commit fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn: func(_ *DB, _ *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					return nil
				}
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, db, mock := NewMock(t)
			tt.mockSetup(mock)

			err := m.Begin(context.Background(), tt.fn(db, m))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestManager_BeginPanicRollsBack(t *testing.T) {
	m, _, mock := NewMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = m.Begin(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_WithoutTransaction(t *testing.T) {
	_, db, mock := NewMock(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	var count int
	err := db.QueryRow(context.Background(), "SELECT COUNT(id) FROM members").Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
