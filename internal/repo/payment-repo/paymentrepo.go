package paymentrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/dojoledger/internal/domain"
	"github.com/GlebRadaev/dojoledger/internal/pg"
)

const (
	selectPayments = `
		SELECT id, member_id, amount, payment_date, month, year, payment_method, notes
		FROM payments`

	orderByDate = `
		ORDER BY payment_date DESC, id DESC`

	findByID = selectPayments + `
		WHERE id = $1`

	findByMember = selectPayments + `
		WHERE member_id = $1` + orderByDate

	insertPayment = `
		INSERT INTO payments (member_id, amount, payment_date, month, year, payment_method, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	deletePayment = `
		DELETE FROM payments
		WHERE id = $1`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.MemberID, &p.Amount, &p.PaymentDate, &p.Month, &p.Year, &p.Method, &p.Notes)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Payment, error) {
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate payment rows", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, findByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find payment", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindByMember(ctx context.Context, memberID int) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, findByMember, memberID)
	if err != nil {
		zap.L().Error("can't get member payments", zap.Int("member_id", memberID), zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

// filterQuery renders the listing query for the filters that are set.
func filterQuery(filter domain.PaymentFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(column string, value int) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if filter.Month != nil {
		add("month", *filter.Month)
	}
	if filter.Year != nil {
		add("year", *filter.Year)
	}
	if filter.MemberID != nil {
		add("member_id", *filter.MemberID)
	}

	query := selectPayments
	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	return query + orderByDate, args
}

func (r *Repository) Find(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	query, args := filterQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	err := r.db.QueryRow(ctx, insertPayment,
		p.MemberID, p.Amount, p.PaymentDate, p.Month, p.Year, p.Method, p.Notes,
	).Scan(&p.ID)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("member %d: %w", p.MemberID, domain.ErrNotFound)
		}
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, deletePayment, id)
	if err != nil {
		zap.L().Error("can't delete payment", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
