package memberservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/dojoledger/internal/domain"
	"github.com/GlebRadaev/dojoledger/internal/dto"
	"github.com/GlebRadaev/dojoledger/internal/pg"
)

var fixedNow = time.Date(2024, time.March, 10, 15, 4, 5, 0, time.UTC)

type mocks struct {
	members  *MockMemberRepo
	payments *MockPaymentRepo
	exams    *MockExamRepo
	tx       *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		members:  NewMockMemberRepo(ctrl),
		payments: NewMockPaymentRepo(ctrl),
		exams:    NewMockExamRepo(ctrl),
		tx:       pg.NewMockTXManager(ctrl),
	}
	service := New(m.members, m.payments, m.exams, m.tx)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

// runTx makes the mocked manager execute the transactional function in place.
func runTx(m mocks) {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func memberRequest() dto.MemberRequestDTO {
	return dto.MemberRequestDTO{
		FirstName:      "Mario",
		LastName:       "Rossi",
		BirthDate:      "1990-04-12",
		Belt:           "Verde",
		EnrollmentDate: "2023-09-01",
		MonthlyFee:     "30",
	}
}

func TestMonthlyFee(t *testing.T) {
	tests := []struct {
		fee      dto.Decimal
		expected float64
	}{
		{fee: "2.00", expected: 5.0},
		{fee: "12.50", expected: 12.5},
		{fee: "5", expected: 5.0},
		{fee: "", expected: 5.0},
		{fee: "abc", expected: 5.0},
		{fee: "-40", expected: 5.0},
		{fee: "NaN", expected: 5.0},
		{fee: "{}", expected: 5.0},
		{fee: "true", expected: 5.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.fee), func(t *testing.T) {
			assert.Equal(t, tt.expected, monthlyFee(tt.fee))
		})
	}
}

func TestAddMember_NonNumericFeeFallsBackToMinimum(t *testing.T) {
	for _, fee := range []string{`{}`, `true`, `[]`} {
		t.Run(fee, func(t *testing.T) {
			service, m := NewMock(t)

			var req dto.MemberRequestDTO
			body := `{"first_name":"Mario","last_name":"Rossi","birth_date":"1990-04-12","monthly_fee":` + fee + `}`
			require.NoError(t, json.Unmarshal([]byte(body), &req))

			runTx(m)
			m.members.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, member *domain.Member) (*domain.Member, error) {
					member.ID = 3
					return member, nil
				})

			member, err := service.AddMember(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, domain.MinMonthlyFee, member.MonthlyFee)
		})
	}
}

func TestAddMember(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		req           func() dto.MemberRequestDTO
		prepareMock   func()
		expected      *domain.Member
		expectedError error
		expectedField string
	}{
		{
			name: "Successful add",
			req:  memberRequest,
			prepareMock: func() {
				runTx(m)
				m.members.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, member *domain.Member) (*domain.Member, error) {
						member.ID = 1
						return member, nil
					})
			},
			expected: &domain.Member{
				ID:             1,
				FirstName:      "Mario",
				LastName:       "Rossi",
				BirthDate:      date(1990, time.April, 12),
				Belt:           domain.BeltGreen,
				EnrollmentDate: date(2023, time.September, 1),
				MonthlyFee:     30,
				Active:         true,
			},
		},
		{
			name: "Defaults for empty belt, enrollment and low fee",
			req: func() dto.MemberRequestDTO {
				req := memberRequest()
				req.Belt = ""
				req.EnrollmentDate = ""
				req.MonthlyFee = "2.00"
				inactive := false
				req.Active = &inactive
				return req
			},
			prepareMock: func() {
				runTx(m)
				m.members.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, member *domain.Member) (*domain.Member, error) {
						member.ID = 2
						return member, nil
					})
			},
			expected: &domain.Member{
				ID:             2,
				FirstName:      "Mario",
				LastName:       "Rossi",
				BirthDate:      date(1990, time.April, 12),
				Belt:           domain.BeltWhite,
				EnrollmentDate: date(2024, time.March, 10),
				MonthlyFee:     5,
				Active:         false,
			},
		},
		{
			name: "Bad birth date persists nothing",
			req: func() dto.MemberRequestDTO {
				req := memberRequest()
				req.BirthDate = "12/04/1990"
				return req
			},
			prepareMock:   func() {},
			expectedField: "birth_date",
		},
		{
			name: "Unknown belt",
			req: func() dto.MemberRequestDTO {
				req := memberRequest()
				req.Belt = "Viola"
				return req
			},
			prepareMock:   func() {},
			expectedField: "belt",
		},
		{
			name: "Missing last name",
			req: func() dto.MemberRequestDTO {
				req := memberRequest()
				req.LastName = ""
				return req
			},
			prepareMock:   func() {},
			expectedField: "last_name",
		},
		{
			name: "Store failure",
			req:  memberRequest,
			prepareMock: func() {
				runTx(m)
				m.members.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			member, err := service.AddMember(ctx, tt.req())

			if tt.expectedField != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.expectedField, verr.Field)
				assert.Nil(t, member)
				return
			}
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, member)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, member)
		})
	}
}

func TestEditMember(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	stored := &domain.Member{
		ID:             1,
		FirstName:      "Mario",
		LastName:       "Rossi",
		BirthDate:      date(1990, time.April, 12),
		Belt:           domain.BeltGreen,
		EnrollmentDate: date(2020, time.January, 15),
		MonthlyFee:     30,
		Active:         false,
	}

	t.Run("Keeps enrollment date and active flag when omitted", func(t *testing.T) {
		req := memberRequest()
		req.EnrollmentDate = ""
		req.MonthlyFee = "12.50"

		runTx(m)
		m.members.EXPECT().FindByID(gomock.Any(), 1).Return(stored, nil)
		m.members.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, member *domain.Member) error {
				assert.Equal(t, 1, member.ID)
				assert.Equal(t, stored.EnrollmentDate, member.EnrollmentDate)
				assert.False(t, member.Active)
				assert.Equal(t, 12.5, member.MonthlyFee)
				return nil
			})

		member, err := service.EditMember(ctx, 1, req)
		assert.NoError(t, err)
		assert.Equal(t, 12.5, member.MonthlyFee)
	})

	t.Run("Member not found", func(t *testing.T) {
		runTx(m)
		m.members.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)

		member, err := service.EditMember(ctx, 9, memberRequest())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, member)
	})
}

func TestDeleteMember(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	runTx(m)
	m.members.EXPECT().Delete(gomock.Any(), 1).Return(nil)
	assert.NoError(t, service.DeleteMember(ctx, 1))

	runTx(m)
	m.members.EXPECT().Delete(gomock.Any(), 1).Return(domain.ErrNotFound)
	m.members.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
	assert.ErrorIs(t, service.DeleteMember(ctx, 1), domain.ErrNotFound)
	_, err := service.GetMemberDetail(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetMemberDetail(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	member := &domain.Member{ID: 1, FirstName: "Mario", LastName: "Rossi"}
	payments := []domain.Payment{{ID: 2, MemberID: 1, Amount: 30}, {ID: 1, MemberID: 1, Amount: 30}}
	exams := []domain.Exam{{ID: 1, MemberID: 1, NewBelt: domain.BeltYellow}}

	m.members.EXPECT().FindByID(ctx, 1).Return(member, nil)
	m.payments.EXPECT().FindByMember(ctx, 1).Return(payments, nil)
	m.exams.EXPECT().FindByMember(ctx, 1).Return(exams, nil)

	detail, err := service.GetMemberDetail(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, &domain.MemberDetail{Member: member, Payments: payments, Exams: exams}, detail)

	m.members.EXPECT().FindByID(ctx, 1).Return(member, nil)
	m.payments.EXPECT().FindByMember(ctx, 1).Return(nil, errors.New("database error"))
	_, err = service.GetMemberDetail(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestAddPayment(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	valid := dto.PaymentRequestDTO{Amount: "30.00", PaymentDate: "2024-03-05", Month: 3, Year: 2024}

	tests := []struct {
		name          string
		req           dto.PaymentRequestDTO
		prepareMock   func()
		expectedError error
		expectedField string
		expected      *domain.Payment
	}{
		{
			name: "Successful payment with default method",
			req:  valid,
			prepareMock: func() {
				runTx(m)
				m.members.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Member{ID: 1}, nil)
				m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						p.ID = 10
						return p, nil
					})
			},
			expected: &domain.Payment{
				ID:          10,
				MemberID:    1,
				Amount:      30,
				PaymentDate: date(2024, time.March, 5),
				Month:       3,
				Year:        2024,
				Method:      "Cash",
			},
		},
		{
			name: "Member not found",
			req:  valid,
			prepareMock: func() {
				runTx(m)
				m.members.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "Unparseable amount",
			req:           dto.PaymentRequestDTO{Amount: "thirty", PaymentDate: "2024-03-05", Month: 3, Year: 2024},
			prepareMock:   func() {},
			expectedField: "amount",
		},
		{
			name:          "Negative amount",
			req:           dto.PaymentRequestDTO{Amount: "-1", PaymentDate: "2024-03-05", Month: 3, Year: 2024},
			prepareMock:   func() {},
			expectedField: "amount",
		},
		{
			name:          "Month out of range",
			req:           dto.PaymentRequestDTO{Amount: "30", PaymentDate: "2024-03-05", Month: 13, Year: 2024},
			prepareMock:   func() {},
			expectedField: "month",
		},
		{
			name:          "Bad payment date",
			req:           dto.PaymentRequestDTO{Amount: "30", PaymentDate: "2024-13-05", Month: 3, Year: 2024},
			prepareMock:   func() {},
			expectedField: "payment_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			payment, err := service.AddPayment(ctx, 1, tt.req)

			if tt.expectedField != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.expectedField, verr.Field)
				return
			}
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, payment)
		})
	}
}

func TestListPayments(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	month, year := 3, 2024
	filter := domain.PaymentFilter{Month: &month, Year: &year}

	payments := []domain.Payment{{ID: 2, Amount: 30}, {ID: 1, Amount: 12.5}}
	m.payments.EXPECT().Find(ctx, filter).Return(payments, nil)

	list, err := service.ListPayments(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, payments, list.Payments)
	assert.Equal(t, 42.5, list.Total)

	m.payments.EXPECT().Find(ctx, domain.PaymentFilter{}).Return([]domain.Payment{}, nil)
	list, err = service.ListPayments(ctx, domain.PaymentFilter{})
	assert.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestAddExam(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	green := &domain.Member{ID: 1, FirstName: "Mario", LastName: "Rossi", Belt: domain.BeltGreen}

	tests := []struct {
		name          string
		req           dto.ExamRequestDTO
		prepareMock   func()
		expectedError error
		expectedField string
		check         func(t *testing.T, exam *domain.Exam)
	}{
		{
			name: "Passed exam promotes member in the same transaction",
			req:  dto.ExamRequestDTO{ExamDate: "2024-06-15", NewBelt: "Blu", Fee: "20"},
			prepareMock: func() {
				runTx(m)
				m.members.EXPECT().FindByID(gomock.Any(), 1).Return(green, nil)
				m.exams.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.Exam) (*domain.Exam, error) {
						e.ID = 5
						return e, nil
					})
				m.members.EXPECT().UpdateBelt(gomock.Any(), 1, domain.BeltBlue).Return(nil)
			},
			check: func(t *testing.T, exam *domain.Exam) {
				assert.Equal(t, 5, exam.ID)
				assert.Equal(t, domain.BeltGreen, exam.PreviousBelt)
				assert.Equal(t, domain.BeltBlue, exam.NewBelt)
				assert.Equal(t, domain.ExamPassed, exam.Result)
				assert.Equal(t, 20.0, exam.Fee)
			},
		},
		{
			name: "Failed exam keeps belt",
			req:  dto.ExamRequestDTO{ExamDate: "2024-06-15", NewBelt: "Blue", Result: "failed"},
			prepareMock: func() {
				runTx(m)
				m.members.EXPECT().FindByID(gomock.Any(), 1).Return(green, nil)
				m.exams.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.Exam) (*domain.Exam, error) {
						e.ID = 6
						return e, nil
					})
			},
			check: func(t *testing.T, exam *domain.Exam) {
				assert.Equal(t, domain.ExamFailed, exam.Result)
				assert.Zero(t, exam.Fee)
			},
		},
		{
			name: "Belt update failure rolls back",
			req:  dto.ExamRequestDTO{ExamDate: "2024-06-15", NewBelt: "Blu"},
			prepareMock: func() {
				runTx(m)
				m.members.EXPECT().FindByID(gomock.Any(), 1).Return(green, nil)
				m.exams.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.Exam) (*domain.Exam, error) {
						return e, nil
					})
				m.members.EXPECT().UpdateBelt(gomock.Any(), 1, domain.BeltBlue).Return(errors.New("database error"))
			},
			expectedError: domain.ErrPersistence,
		},
		{
			name: "Member not found",
			req:  dto.ExamRequestDTO{ExamDate: "2024-06-15", NewBelt: "Blu"},
			prepareMock: func() {
				runTx(m)
				m.members.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "Unknown belt persists nothing",
			req:           dto.ExamRequestDTO{ExamDate: "2024-06-15", NewBelt: "Viola"},
			prepareMock:   func() {},
			expectedField: "new_belt",
		},
		{
			name:          "Unknown result",
			req:           dto.ExamRequestDTO{ExamDate: "2024-06-15", NewBelt: "Blu", Result: "Maybe"},
			prepareMock:   func() {},
			expectedField: "result",
		},
		{
			name:          "Negative fee",
			req:           dto.ExamRequestDTO{ExamDate: "2024-06-15", NewBelt: "Blu", Fee: "-5"},
			prepareMock:   func() {},
			expectedField: "fee",
		},
		{
			name:          "Missing date",
			req:           dto.ExamRequestDTO{NewBelt: "Blu"},
			prepareMock:   func() {},
			expectedField: "exam_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			exam, err := service.AddExam(ctx, 1, tt.req)

			if tt.expectedField != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.expectedField, verr.Field)
				return
			}
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, exam)
				return
			}
			require.NoError(t, err)
			tt.check(t, exam)
		})
	}
}

func TestDeleteLedgerEntries(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	runTx(m)
	m.payments.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Payment{ID: 10, MemberID: 1, Amount: 30}, nil)
	m.payments.EXPECT().Delete(gomock.Any(), 10).Return(nil)
	assert.NoError(t, service.DeletePayment(ctx, 10))

	runTx(m)
	m.payments.EXPECT().FindByID(gomock.Any(), 11).Return(nil, nil)
	assert.ErrorIs(t, service.DeletePayment(ctx, 11), domain.ErrNotFound)

	runTx(m)
	m.payments.EXPECT().FindByID(gomock.Any(), 12).Return(nil, errors.New("database error"))
	assert.ErrorIs(t, service.DeletePayment(ctx, 12), domain.ErrPersistence)

	runTx(m)
	m.exams.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Exam{ID: 5, MemberID: 1, NewBelt: domain.BeltGreen}, nil)
	m.exams.EXPECT().Delete(gomock.Any(), 5).Return(nil)
	assert.NoError(t, service.DeleteExam(ctx, 5))

	runTx(m)
	m.exams.EXPECT().FindByID(gomock.Any(), 6).Return(&domain.Exam{ID: 6, MemberID: 1}, nil)
	m.exams.EXPECT().Delete(gomock.Any(), 6).Return(errors.New("database error"))
	assert.ErrorIs(t, service.DeleteExam(ctx, 6), domain.ErrPersistence)

	runTx(m)
	m.exams.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
	assert.ErrorIs(t, service.DeleteExam(ctx, 7), domain.ErrNotFound)
}

func TestListMembers(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	members := []domain.Member{{ID: 2, LastName: "Bianchi"}, {ID: 1, LastName: "Rossi"}}
	m.members.EXPECT().FindAll(ctx).Return(members, nil)

	result, err := service.ListMembers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, members, result)
}
