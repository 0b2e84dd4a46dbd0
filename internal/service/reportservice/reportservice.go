package reportservice

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/dojoledger/internal/domain"
)

//go:generate mockgen -source=reportservice.go -destination=mock_reportservice.go -package=reportservice

type Repo interface {
	MonthlyTotals(ctx context.Context, year int) (map[int]float64, error)
	BeltCounts(ctx context.Context) (map[domain.Belt]int, error)
	PaymentMethodTotals(ctx context.Context, year int) (map[string]float64, error)
	CountActiveMembers(ctx context.Context) (int, error)
	SearchMembers(ctx context.Context, query string) ([]domain.MemberSummary, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func fail(msg string, err error) error {
	err = domain.Persistence(err)
	zap.L().Error(msg, zap.Error(err))
	return err
}

// MonthlyTotals returns twelve sums for the year, January first; months without payments are zero.
func (s *Service) MonthlyTotals(ctx context.Context, year int) ([]float64, error) {
	byMonth, err := s.repo.MonthlyTotals(ctx, year)
	if err != nil {
		return nil, fail("can't get monthly totals", err)
	}
	totals := make([]float64, 12)
	for month, sum := range byMonth {
		if month >= 1 && month <= 12 {
			totals[month-1] = sum
		}
	}
	return totals, nil
}

func (s *Service) YearlyTotal(ctx context.Context, year int) (float64, error) {
	totals, err := s.MonthlyTotals(ctx, year)
	if err != nil {
		return 0, err
	}
	return sum(totals), nil
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// BeltDistribution counts active members for every rank in rank order, keeping empty ranks.
func (s *Service) BeltDistribution(ctx context.Context) ([]domain.BeltTotal, error) {
	counts, err := s.repo.BeltCounts(ctx)
	if err != nil {
		return nil, fail("can't get belt distribution", err)
	}
	distribution := make([]domain.BeltTotal, 0, domain.BeltCount)
	for _, b := range domain.Belts() {
		distribution = append(distribution, domain.BeltTotal{
			Belt:  b,
			Label: b.Label(),
			Color: b.Color(),
			Count: counts[b],
		})
	}
	return distribution, nil
}

func (s *Service) PaymentMethodTotals(ctx context.Context, year int) (map[string]float64, error) {
	totals, err := s.repo.PaymentMethodTotals(ctx, year)
	if err != nil {
		return nil, fail("can't get payment method totals", err)
	}
	return totals, nil
}

func (s *Service) SearchMembers(ctx context.Context, query string) ([]domain.MemberSummary, error) {
	found, err := s.repo.SearchMembers(ctx, query)
	if err != nil {
		return nil, fail("can't search members", err)
	}
	return found, nil
}

// Report gathers the yearly figures with one query per aggregate, run concurrently.
func (s *Service) Report(ctx context.Context, year int) (*domain.Report, error) {
	report := &domain.Report{Year: year}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals, err := s.MonthlyTotals(ctx, year)
		if err != nil {
			return err
		}
		report.MonthlyTotals = totals
		report.YearlyTotal = sum(totals)
		return nil
	})
	g.Go(func() error {
		distribution, err := s.BeltDistribution(ctx)
		if err != nil {
			return err
		}
		report.BeltDistribution = distribution
		return nil
	})
	g.Go(func() error {
		methods, err := s.PaymentMethodTotals(ctx, year)
		if err != nil {
			return err
		}
		report.PaymentMethodTotals = methods
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

// Dashboard summarizes the club as of now.
func (s *Service) Dashboard(ctx context.Context, now time.Time) (*domain.Dashboard, error) {
	active, err := s.repo.CountActiveMembers(ctx)
	if err != nil {
		return nil, fail("can't count active members", err)
	}
	monthly, err := s.MonthlyTotals(ctx, now.Year())
	if err != nil {
		return nil, err
	}
	distribution, err := s.BeltDistribution(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		ActiveMembers:    active,
		MonthlyPayments:  monthly[now.Month()-1],
		YearlyPayments:   sum(monthly),
		BeltDistribution: distribution,
		MonthlyData:      monthly,
	}, nil
}
