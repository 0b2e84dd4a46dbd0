package memberrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/dojoledger/internal/domain"
	"github.com/GlebRadaev/dojoledger/internal/pg"
)

const (
	selectMembers = `
		SELECT id, first_name, last_name, birth_date, address, phone, email, belt,
			enrollment_date, monthly_fee, active, notes
		FROM members`

	findByID = selectMembers + `
		WHERE id = $1`

	findAll = selectMembers + `
		ORDER BY last_name ASC, first_name ASC, id ASC`

	insertMember = `
		INSERT INTO members (first_name, last_name, birth_date, address, phone, email, belt,
			enrollment_date, monthly_fee, active, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	updateMember = `
		UPDATE members
		SET first_name = $1, last_name = $2, birth_date = $3, address = $4, phone = $5, email = $6,
			belt = $7, enrollment_date = $8, monthly_fee = $9, active = $10, notes = $11
		WHERE id = $12`

	updateBelt = `
		UPDATE members
		SET belt = $1
		WHERE id = $2`

	deleteMember = `
		DELETE FROM members
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

func scanMember(row pgx.Row) (*domain.Member, error) {
	var (
		member domain.Member
		belt   string
	)
	err := row.Scan(&member.ID, &member.FirstName, &member.LastName, &member.BirthDate, &member.Address,
		&member.Phone, &member.Email, &belt, &member.EnrollmentDate, &member.MonthlyFee, &member.Active, &member.Notes)
	if err != nil {
		return nil, err
	}
	member.Belt, err = domain.ParseBelt(belt)
	if err != nil {
		return nil, fmt.Errorf("member %d: %w", member.ID, err)
	}
	return &member, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Member, error) {
	member, err := scanMember(r.db.QueryRow(ctx, findByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find member", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Member, error) {
	rows, err := r.db.Query(ctx, findAll)
	if err != nil {
		zap.L().Error("can't list members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.Member, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate member rows", zap.Error(err))
		return nil, err
	}
	return members, nil
}

func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	err := r.db.QueryRow(ctx, insertMember,
		member.FirstName, member.LastName, member.BirthDate, member.Address, member.Phone, member.Email,
		member.Belt.String(), member.EnrollmentDate, member.MonthlyFee, member.Active, member.Notes,
	).Scan(&member.ID)
	if err != nil {
		zap.L().Error("can't save member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) Update(ctx context.Context, member *domain.Member) error {
	tag, err := r.db.Exec(ctx, updateMember,
		member.FirstName, member.LastName, member.BirthDate, member.Address, member.Phone, member.Email,
		member.Belt.String(), member.EnrollmentDate, member.MonthlyFee, member.Active, member.Notes, member.ID,
	)
	if err != nil {
		zap.L().Error("can't update member", zap.Int("id", member.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("member %d: %w", member.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) UpdateBelt(ctx context.Context, id int, belt domain.Belt) error {
	tag, err := r.db.Exec(ctx, updateBelt, belt.String(), id)
	if err != nil {
		zap.L().Error("can't update member belt", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("member %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the member; its payments and exams go with it through ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, deleteMember, id)
	if err != nil {
		zap.L().Error("can't delete member", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("member %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
