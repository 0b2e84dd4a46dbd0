package reportrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/dojoledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		query    string
		expected string
	}{
		{query: "ross", expected: "%ross%"},
		{query: "", expected: "%%"},
		{query: "50%", expected: `%50\%%`},
		{query: "a_b", expected: `%a\_b%`},
		{query: `c:\x`, expected: `%c:\\x%`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.expected, containsPattern(tt.query))
		})
	}
}

func TestRepository_MonthlyTotals(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(monthlyTotals)).
		WithArgs(2024).
		WillReturnRows(pgxmock.NewRows([]string{"month", "sum"}).AddRow(1, 60.0).AddRow(3, 30.0))

	totals, err := repo.MonthlyTotals(context.Background(), 2024)
	assert.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 60, 3: 30}, totals)

	mock.ExpectQuery(regexp.QuoteMeta(monthlyTotals)).
		WithArgs(2025).
		WillReturnRows(pgxmock.NewRows([]string{"month", "sum"}))
	totals, err = repo.MonthlyTotals(context.Background(), 2025)
	assert.NoError(t, err)
	assert.Empty(t, totals)

	mock.ExpectQuery(regexp.QuoteMeta(monthlyTotals)).
		WithArgs(2024).
		WillReturnError(errors.New("database error"))
	_, err = repo.MonthlyTotals(context.Background(), 2024)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_BeltCounts(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(beltCounts)).
		WillReturnRows(pgxmock.NewRows([]string{"belt", "count"}).AddRow("Bianca", 4).AddRow("Blu", 2))

	counts, err := repo.BeltCounts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[domain.Belt]int{domain.BeltWhite: 4, domain.BeltBlue: 2}, counts)

	mock.ExpectQuery(regexp.QuoteMeta(beltCounts)).
		WillReturnRows(pgxmock.NewRows([]string{"belt", "count"}).AddRow("Viola", 1))
	_, err = repo.BeltCounts(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PaymentMethodTotals(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(methodTotals)).
		WithArgs(2024).
		WillReturnRows(pgxmock.NewRows([]string{"payment_method", "sum"}).AddRow("Cash", 90.0).AddRow("Card", 45.5))

	totals, err := repo.PaymentMethodTotals(context.Background(), 2024)
	assert.NoError(t, err)
	assert.Equal(t, map[string]float64{"Cash": 90, "Card": 45.5}, totals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountActiveMembers(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(countActive)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(6))
	count, err := repo.CountActiveMembers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 6, count)

	mock.ExpectQuery(regexp.QuoteMeta(countActive)).
		WillReturnError(errors.New("database error"))
	_, err = repo.CountActiveMembers(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchMembers(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(searchMembers)).
		WithArgs("%ross%").
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name", "belt"}).
			AddRow(1, "Mario", "Rossi", "Verde").
			AddRow(4, "Anna", "Rossetti", "Bianca"))

	found, err := repo.SearchMembers(context.Background(), "ross")
	assert.NoError(t, err)
	assert.Equal(t, []domain.MemberSummary{
		{ID: 1, Name: "Mario Rossi", Belt: domain.BeltGreen},
		{ID: 4, Name: "Anna Rossetti", Belt: domain.BeltWhite},
	}, found)

	mock.ExpectQuery(regexp.QuoteMeta(searchMembers)).
		WithArgs(`%100\%%`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name", "belt"}))
	found, err = repo.SearchMembers(context.Background(), "100%")
	assert.NoError(t, err)
	assert.Empty(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}
