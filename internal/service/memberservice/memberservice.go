package memberservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/dojoledger/internal/domain"
	"github.com/GlebRadaev/dojoledger/internal/dto"
	"github.com/GlebRadaev/dojoledger/internal/pg"
	"github.com/GlebRadaev/dojoledger/pkg/validate"
)

//go:generate mockgen -source=memberservice.go -destination=mock_memberservice.go -package=memberservice

type MemberRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Member, error)
	FindAll(ctx context.Context) ([]domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	UpdateBelt(ctx context.Context, id int, belt domain.Belt) error
	Delete(ctx context.Context, id int) error
}

type PaymentRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Payment, error)
	FindByMember(ctx context.Context, memberID int) ([]domain.Payment, error)
	Find(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Delete(ctx context.Context, id int) error
}

type ExamRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Exam, error)
	FindByMember(ctx context.Context, memberID int) ([]domain.Exam, error)
	Create(ctx context.Context, exam *domain.Exam) (*domain.Exam, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	members  MemberRepo
	payments PaymentRepo
	exams    ExamRepo
	tx       pg.TXManager
	now      func() time.Time
}

func New(members MemberRepo, payments PaymentRepo, exams ExamRepo, tx pg.TXManager) *Service {
	return &Service{
		members:  members,
		payments: payments,
		exams:    exams,
		tx:       tx,
		now:      time.Now,
	}
}

// fail logs err and returns it in its domain form.
func fail(msg string, err error) error {
	err = domain.Persistence(err)
	if errors.Is(err, domain.ErrPersistence) {
		zap.L().Error(msg, zap.Error(err))
	} else {
		zap.L().Info(msg, zap.Error(err))
	}
	return err
}

func memberNotFound(id int) error {
	return fmt.Errorf("member %d: %w", id, domain.ErrNotFound)
}

func (s *Service) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, fail("can't list members", err)
	}
	return members, nil
}

func (s *Service) buildMember(req dto.MemberRequestDTO) (*domain.Member, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	birth, err := parseDate("birth_date", req.BirthDate)
	if err != nil {
		return nil, err
	}
	enrolled := today(s.now())
	if strings.TrimSpace(req.EnrollmentDate) != "" {
		if enrolled, err = parseDate("enrollment_date", req.EnrollmentDate); err != nil {
			return nil, err
		}
	}
	belt, err := parseBelt("belt", req.Belt)
	if err != nil {
		return nil, err
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return &domain.Member{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		BirthDate:      birth,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		Belt:           belt,
		EnrollmentDate: enrolled,
		MonthlyFee:     monthlyFee(req.MonthlyFee),
		Active:         active,
		Notes:          req.Notes,
	}, nil
}

func (s *Service) AddMember(ctx context.Context, req dto.MemberRequestDTO) (*domain.Member, error) {
	member, err := s.buildMember(req)
	if err != nil {
		return nil, err
	}

	var created *domain.Member
	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.members.Create(ctx, member)
		return err
	})
	if err != nil {
		return nil, fail("can't add member", err)
	}
	zap.L().Info("member added", zap.Int("id", created.ID), zap.String("name", created.FullName()))
	return created, nil
}

// EditMember replaces the member's fields. An empty enrollment date or a missing active flag keeps the stored value.
func (s *Service) EditMember(ctx context.Context, id int, req dto.MemberRequestDTO) (*domain.Member, error) {
	member, err := s.buildMember(req)
	if err != nil {
		return nil, err
	}
	member.ID = id

	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.members.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return memberNotFound(id)
		}
		if strings.TrimSpace(req.EnrollmentDate) == "" {
			member.EnrollmentDate = existing.EnrollmentDate
		}
		if req.Active == nil {
			member.Active = existing.Active
		}
		return s.members.Update(ctx, member)
	})
	if err != nil {
		return nil, fail("can't edit member", err)
	}
	zap.L().Info("member updated", zap.Int("id", id))
	return member, nil
}

// DeleteMember removes the member with all of its payments and exams.
func (s *Service) DeleteMember(ctx context.Context, id int) error {
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		return s.members.Delete(ctx, id)
	})
	if err != nil {
		return fail("can't delete member", err)
	}
	zap.L().Info("member deleted", zap.Int("id", id))
	return nil
}

func (s *Service) GetMemberDetail(ctx context.Context, id int) (*domain.MemberDetail, error) {
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, fail("can't get member", err)
	}
	if member == nil {
		return nil, memberNotFound(id)
	}
	payments, err := s.payments.FindByMember(ctx, id)
	if err != nil {
		return nil, fail("can't get member payments", err)
	}
	exams, err := s.exams.FindByMember(ctx, id)
	if err != nil {
		return nil, fail("can't get member exams", err)
	}
	return &domain.MemberDetail{
		Member:   member,
		Payments: payments,
		Exams:    exams,
	}, nil
}

func (s *Service) buildPayment(memberID int, req dto.PaymentRequestDTO) (*domain.Payment, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	amount, ok := parseAmount(req.Amount)
	if !ok {
		return nil, domain.NewValidationError("amount", "must be a number")
	}
	if amount < 0 {
		return nil, domain.NewValidationError("amount", "must not be negative")
	}
	paid, err := parseDate("payment_date", req.PaymentDate)
	if err != nil {
		return nil, err
	}
	method := strings.TrimSpace(req.PaymentMethod)
	if method == "" {
		method = domain.DefaultPaymentMethod
	}

	return &domain.Payment{
		MemberID:    memberID,
		Amount:      amount,
		PaymentDate: paid,
		Month:       req.Month,
		Year:        req.Year,
		Method:      method,
		Notes:       req.Notes,
	}, nil
}

func (s *Service) AddPayment(ctx context.Context, memberID int, req dto.PaymentRequestDTO) (*domain.Payment, error) {
	payment, err := s.buildPayment(memberID, req)
	if err != nil {
		return nil, err
	}

	var created *domain.Payment
	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		member, err := s.members.FindByID(ctx, memberID)
		if err != nil {
			return err
		}
		if member == nil {
			return memberNotFound(memberID)
		}
		created, err = s.payments.Create(ctx, payment)
		return err
	})
	if err != nil {
		return nil, fail("can't add payment", err)
	}
	zap.L().Info("payment recorded",
		zap.Int("member_id", memberID),
		zap.Float64("amount", created.Amount),
		zap.Int("month", created.Month),
		zap.Int("year", created.Year),
	)
	return created, nil
}

func (s *Service) DeletePayment(ctx context.Context, id int) error {
	var payment *domain.Payment
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		var err error
		if payment, err = s.payments.FindByID(ctx, id); err != nil {
			return err
		}
		if payment == nil {
			return fmt.Errorf("payment %d: %w", id, domain.ErrNotFound)
		}
		return s.payments.Delete(ctx, id)
	})
	if err != nil {
		return fail("can't delete payment", err)
	}
	zap.L().Info("payment deleted",
		zap.Int("id", id),
		zap.Int("member_id", payment.MemberID),
		zap.Float64("amount", payment.Amount),
	)
	return nil
}

// ListPayments returns the payments matching filter, newest first, with their sum.
func (s *Service) ListPayments(ctx context.Context, filter domain.PaymentFilter) (*domain.PaymentList, error) {
	payments, err := s.payments.Find(ctx, filter)
	if err != nil {
		return nil, fail("can't list payments", err)
	}
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return &domain.PaymentList{
		Payments: payments,
		Total:    total,
	}, nil
}

func buildExam(memberID int, req dto.ExamRequestDTO) (*domain.Exam, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	date, err := parseDate("exam_date", req.ExamDate)
	if err != nil {
		return nil, err
	}
	newBelt, err := domain.ParseBelt(req.NewBelt)
	if err != nil {
		return nil, domain.NewValidationError("new_belt", "unknown belt")
	}
	result := domain.ExamPassed
	if strings.TrimSpace(req.Result) != "" {
		if result, err = domain.ParseExamResult(req.Result); err != nil {
			return nil, domain.NewValidationError("result", "must be one of Passed, Failed, Pending")
		}
	}
	var fee float64
	if strings.TrimSpace(string(req.Fee)) != "" {
		f, ok := parseAmount(req.Fee)
		if !ok {
			return nil, domain.NewValidationError("fee", "must be a number")
		}
		if f < 0 {
			return nil, domain.NewValidationError("fee", "must not be negative")
		}
		fee = f
	}

	return &domain.Exam{
		MemberID: memberID,
		ExamDate: date,
		NewBelt:  newBelt,
		Result:   result,
		Fee:      fee,
		Paid:     req.Paid,
		Notes:    req.Notes,
	}, nil
}

// AddExam records an exam at the member's current belt. A passed exam promotes the member to the new belt
// in the same transaction.
func (s *Service) AddExam(ctx context.Context, memberID int, req dto.ExamRequestDTO) (*domain.Exam, error) {
	exam, err := buildExam(memberID, req)
	if err != nil {
		return nil, err
	}

	var created *domain.Exam
	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		member, err := s.members.FindByID(ctx, memberID)
		if err != nil {
			return err
		}
		if member == nil {
			return memberNotFound(memberID)
		}
		exam.PreviousBelt = member.Belt

		if created, err = s.exams.Create(ctx, exam); err != nil {
			return err
		}
		if exam.Result == domain.ExamPassed {
			return s.members.UpdateBelt(ctx, memberID, exam.NewBelt)
		}
		return nil
	})
	if err != nil {
		return nil, fail("can't add exam", err)
	}
	zap.L().Info("exam recorded",
		zap.Int("member_id", memberID),
		zap.String("previous_belt", created.PreviousBelt.String()),
		zap.String("new_belt", created.NewBelt.String()),
		zap.String("result", string(created.Result)),
	)
	return created, nil
}

// DeleteExam removes the exam record only; a promotion it caused stays in place.
func (s *Service) DeleteExam(ctx context.Context, id int) error {
	var exam *domain.Exam
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		var err error
		if exam, err = s.exams.FindByID(ctx, id); err != nil {
			return err
		}
		if exam == nil {
			return fmt.Errorf("exam %d: %w", id, domain.ErrNotFound)
		}
		return s.exams.Delete(ctx, id)
	})
	if err != nil {
		return fail("can't delete exam", err)
	}
	zap.L().Info("exam deleted",
		zap.Int("id", id),
		zap.Int("member_id", exam.MemberID),
		zap.String("new_belt", exam.NewBelt.String()),
	)
	return nil
}
