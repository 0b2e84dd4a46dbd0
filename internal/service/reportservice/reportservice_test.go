package reportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/dojoledger/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestMonthlyTotals(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []float64
		expectedTotal float64
	}{
		{
			name: "No payments",
			prepareMock: func() {
				repo.EXPECT().MonthlyTotals(ctx, 2024).Return(map[int]float64{}, nil).Times(2)
			},
			expected:      make([]float64, 12),
			expectedTotal: 0,
		},
		{
			name: "Sparse months",
			prepareMock: func() {
				repo.EXPECT().MonthlyTotals(ctx, 2024).Return(map[int]float64{1: 60, 3: 30, 12: 12.5}, nil).Times(2)
			},
			expected:      []float64{60, 0, 30, 0, 0, 0, 0, 0, 0, 0, 0, 12.5},
			expectedTotal: 102.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			totals, err := service.MonthlyTotals(ctx, 2024)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, totals)

			yearly, err := service.YearlyTotal(ctx, 2024)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, yearly)
			assert.Equal(t, sum(totals), yearly)
		})
	}

	repo.EXPECT().MonthlyTotals(ctx, 2024).Return(nil, errors.New("database error"))
	_, err := service.YearlyTotal(ctx, 2024)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestBeltDistribution(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().BeltCounts(ctx).Return(map[domain.Belt]int{
		domain.BeltWhite:     4,
		domain.BeltBlue:      2,
		domain.BeltBlack1Dan: 1,
	}, nil)

	distribution, err := service.BeltDistribution(ctx)
	require.NoError(t, err)
	assert.Len(t, distribution, domain.BeltCount)

	var total int
	for i, bt := range distribution {
		assert.Equal(t, domain.Belts()[i], bt.Belt)
		assert.Equal(t, bt.Belt.Label(), bt.Label)
		total += bt.Count
	}
	assert.Equal(t, 4, distribution[domain.BeltWhite].Count)
	assert.Equal(t, 2, distribution[domain.BeltBlue].Count)
	assert.Zero(t, distribution[domain.BeltGreen].Count)

	assert.Equal(t, 7, total)
}

func TestReport(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("All aggregates", func(t *testing.T) {
		repo.EXPECT().MonthlyTotals(gomock.Any(), 2024).Return(map[int]float64{3: 30, 4: 45}, nil)
		repo.EXPECT().BeltCounts(gomock.Any()).Return(map[domain.Belt]int{domain.BeltGreen: 2}, nil)
		repo.EXPECT().PaymentMethodTotals(gomock.Any(), 2024).Return(map[string]float64{"Cash": 30, "Card": 45}, nil)

		report, err := service.Report(context.Background(), 2024)
		require.NoError(t, err)
		assert.Equal(t, 2024, report.Year)
		assert.Equal(t, 75.0, report.YearlyTotal)
		assert.Equal(t, 45.0, report.MonthlyTotals[3])
		assert.Len(t, report.BeltDistribution, domain.BeltCount)
		assert.Equal(t, 2, report.BeltDistribution[domain.BeltGreen].Count)
		assert.Equal(t, map[string]float64{"Cash": 30, "Card": 45}, report.PaymentMethodTotals)
	})

	t.Run("One query fails", func(t *testing.T) {
		repo.EXPECT().MonthlyTotals(gomock.Any(), 2024).Return(map[int]float64{}, nil).AnyTimes()
		repo.EXPECT().BeltCounts(gomock.Any()).Return(nil, errors.New("database error"))
		repo.EXPECT().PaymentMethodTotals(gomock.Any(), 2024).Return(map[string]float64{}, nil).AnyTimes()

		report, err := service.Report(context.Background(), 2024)
		assert.ErrorIs(t, err, domain.ErrPersistence)
		assert.Nil(t, report)
	})
}

func TestDashboard(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()
	now := time.Date(2024, time.April, 20, 9, 0, 0, 0, time.UTC)

	repo.EXPECT().CountActiveMembers(ctx).Return(3, nil)
	repo.EXPECT().MonthlyTotals(ctx, 2024).Return(map[int]float64{3: 30, 4: 45}, nil)
	repo.EXPECT().BeltCounts(ctx).Return(map[domain.Belt]int{domain.BeltWhite: 3}, nil)

	dashboard, err := service.Dashboard(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 3, dashboard.ActiveMembers)
	assert.Equal(t, 45.0, dashboard.MonthlyPayments)
	assert.Equal(t, 75.0, dashboard.YearlyPayments)
	assert.Len(t, dashboard.MonthlyData, 12)
	assert.Len(t, dashboard.BeltDistribution, domain.BeltCount)

	repo.EXPECT().CountActiveMembers(ctx).Return(0, errors.New("database error"))
	_, err = service.Dashboard(ctx, now)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestSearchMembers(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	found := []domain.MemberSummary{{ID: 1, Name: "Mario Rossi", Belt: domain.BeltGreen}}
	repo.EXPECT().SearchMembers(ctx, "ross").Return(found, nil)

	result, err := service.SearchMembers(ctx, "ross")
	assert.NoError(t, err)
	assert.Equal(t, found, result)

	repo.EXPECT().SearchMembers(ctx, "ross").Return(nil, errors.New("database error"))
	_, err = service.SearchMembers(ctx, "ross")
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
