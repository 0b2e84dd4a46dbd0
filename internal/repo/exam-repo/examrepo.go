package examrepo

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
	selectExams = `
		SELECT id, member_id, exam_date, previous_belt, new_belt, result, fee, paid, notes
		FROM exams`

	findByID = selectExams + `
		WHERE id = $1`

	findByMember = selectExams + `
		WHERE member_id = $1
		ORDER BY exam_date DESC, id DESC`

	insertExam = `
		INSERT INTO exams (member_id, exam_date, previous_belt, new_belt, result, fee, paid, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	deleteExam = `
		DELETE FROM exams
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

func scanExam(row pgx.Row) (*domain.Exam, error) {
	var (
		exam                domain.Exam
		previous, next, res string
	)
	err := row.Scan(&exam.ID, &exam.MemberID, &exam.ExamDate, &previous, &next, &res, &exam.Fee, &exam.Paid, &exam.Notes)
	if err != nil {
		return nil, err
	}
	if exam.PreviousBelt, err = domain.ParseBelt(previous); err != nil {
		return nil, fmt.Errorf("exam %d: %w", exam.ID, err)
	}
	if exam.NewBelt, err = domain.ParseBelt(next); err != nil {
		return nil, fmt.Errorf("exam %d: %w", exam.ID, err)
	}
	if exam.Result, err = domain.ParseExamResult(res); err != nil {
		return nil, fmt.Errorf("exam %d: %w", exam.ID, err)
	}
	return &exam, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Exam, error) {
	exam, err := scanExam(r.db.QueryRow(ctx, findByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find exam", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return exam, nil
}

func (r *Repository) FindByMember(ctx context.Context, memberID int) ([]domain.Exam, error) {
	rows, err := r.db.Query(ctx, findByMember, memberID)
	if err != nil {
		zap.L().Error("can't get member exams", zap.Int("member_id", memberID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	exams := make([]domain.Exam, 0)
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			zap.L().Error("can't scan exam row", zap.Error(err))
			return nil, err
		}
		exams = append(exams, *exam)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate exam rows", zap.Error(err))
		return nil, err
	}
	return exams, nil
}

func (r *Repository) Create(ctx context.Context, exam *domain.Exam) (*domain.Exam, error) {
	err := r.db.QueryRow(ctx, insertExam,
		exam.MemberID, exam.ExamDate, exam.PreviousBelt.String(), exam.NewBelt.String(),
		string(exam.Result), exam.Fee, exam.Paid, exam.Notes,
	).Scan(&exam.ID)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("member %d: %w", exam.MemberID, domain.ErrNotFound)
		}
		zap.L().Error("can't save exam", zap.Error(err))
		return nil, err
	}
	return exam, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, deleteExam, id)
	if err != nil {
		zap.L().Error("can't delete exam", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("exam %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
