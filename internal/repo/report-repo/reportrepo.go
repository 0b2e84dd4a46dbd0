// Package reportrepo holds the read-only aggregation queries over the ledger.
package reportrepo

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/dojoledger/internal/domain"
	"github.com/GlebRadaev/dojoledger/internal/pg"
)

const (
	monthlyTotals = `
		SELECT month, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE year = $1
		GROUP BY month`

	beltCounts = `
		SELECT belt, COUNT(*)
		FROM members
		WHERE active
		GROUP BY belt`

	methodTotals = `
		SELECT payment_method, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE year = $1
		GROUP BY payment_method`

	countActive = `
		SELECT COUNT(*)
		FROM members
		WHERE active`

	searchMembers = `
		SELECT id, first_name, last_name, belt
		FROM members
		WHERE first_name ILIKE $1 ESCAPE '\' OR last_name ILIKE $1 ESCAPE '\'
		ORDER BY last_name ASC, first_name ASC, id ASC`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching q literally anywhere in the value.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// MonthlyTotals returns the summed amounts of the year keyed by month; months without payments are absent.
func (r *Repository) MonthlyTotals(ctx context.Context, year int) (map[int]float64, error) {
	rows, err := r.db.Query(ctx, monthlyTotals, year)
	if err != nil {
		zap.L().Error("can't get monthly totals", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	totals := make(map[int]float64)
	for rows.Next() {
		var (
			month int
			sum   float64
		)
		if err := rows.Scan(&month, &sum); err != nil {
			zap.L().Error("can't scan monthly total", zap.Error(err))
			return nil, err
		}
		totals[month] = sum
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate monthly totals", zap.Error(err))
		return nil, err
	}
	return totals, nil
}

// BeltCounts counts active members per rank.
func (r *Repository) BeltCounts(ctx context.Context) (map[domain.Belt]int, error) {
	rows, err := r.db.Query(ctx, beltCounts)
	if err != nil {
		zap.L().Error("can't get belt counts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Belt]int)
	for rows.Next() {
		var (
			name  string
			count int
		)
		if err := rows.Scan(&name, &count); err != nil {
			zap.L().Error("can't scan belt count", zap.Error(err))
			return nil, err
		}
		belt, err := domain.ParseBelt(name)
		if err != nil {
			return nil, fmt.Errorf("belt counts: %w", err)
		}
		counts[belt] += count
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate belt counts", zap.Error(err))
		return nil, err
	}
	return counts, nil
}

func (r *Repository) PaymentMethodTotals(ctx context.Context, year int) (map[string]float64, error) {
	rows, err := r.db.Query(ctx, methodTotals, year)
	if err != nil {
		zap.L().Error("can't get payment method totals", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var (
			method string
			sum    float64
		)
		if err := rows.Scan(&method, &sum); err != nil {
			zap.L().Error("can't scan payment method total", zap.Error(err))
			return nil, err
		}
		totals[method] = sum
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate payment method totals", zap.Error(err))
		return nil, err
	}
	return totals, nil
}

func (r *Repository) CountActiveMembers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countActive).Scan(&count); err != nil {
		zap.L().Error("can't count active members", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SearchMembers(ctx context.Context, query string) ([]domain.MemberSummary, error) {
	rows, err := r.db.Query(ctx, searchMembers, containsPattern(query))
	if err != nil {
		zap.L().Error("can't search members", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	found := make([]domain.MemberSummary, 0)
	for rows.Next() {
		var (
			m    domain.Member
			belt string
		)
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &belt); err != nil {
			zap.L().Error("can't scan member summary", zap.Error(err))
			return nil, err
		}
		if m.Belt, err = domain.ParseBelt(belt); err != nil {
			return nil, fmt.Errorf("member %d: %w", m.ID, err)
		}
		found = append(found, domain.MemberSummary{ID: m.ID, Name: m.FullName(), Belt: m.Belt})
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate member summaries", zap.Error(err))
		return nil, err
	}
	return found, nil
}
