package domain

import (
	"fmt"
	"strings"
	"time"
)

// MinMonthlyFee is the lowest monthly fee a member can be charged.
const MinMonthlyFee = 5.0

const DefaultPaymentMethod = "Cash"

type Member struct {
	ID             int       `db:"id" json:"id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	BirthDate      time.Time `db:"birth_date" json:"birth_date"`
	Address        string    `db:"address" json:"address"`
	Phone          string    `db:"phone" json:"phone"`
	Email          string    `db:"email" json:"email"`
	Belt           Belt      `db:"belt" json:"belt" swaggertype:"string"`
	EnrollmentDate time.Time `db:"enrollment_date" json:"enrollment_date"`
	MonthlyFee     float64   `db:"monthly_fee" json:"monthly_fee"`
	Active         bool      `db:"active" json:"active"`
	Notes          string    `db:"notes" json:"notes"`
}

func (m *Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

type Payment struct {
	ID          int       `db:"id" json:"id"`
	MemberID    int       `db:"member_id" json:"member_id"`
	Amount      float64   `db:"amount" json:"amount"`
	PaymentDate time.Time `db:"payment_date" json:"payment_date"`
	Month       int       `db:"month" json:"month"`
	Year        int       `db:"year" json:"year"`
	Method      string    `db:"payment_method" json:"payment_method"`
	Notes       string    `db:"notes" json:"notes"`
}

type ExamResult string

const (
	ExamPassed  ExamResult = "Passed"
	ExamFailed  ExamResult = "Failed"
	ExamPending ExamResult = "Pending"
)

func ParseExamResult(s string) (ExamResult, error) {
	for _, r := range []ExamResult{ExamPassed, ExamFailed, ExamPending} {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown exam result %q", s)
}

type Exam struct {
	ID           int        `db:"id" json:"id"`
	MemberID     int        `db:"member_id" json:"member_id"`
	ExamDate     time.Time  `db:"exam_date" json:"exam_date"`
	PreviousBelt Belt       `db:"previous_belt" json:"previous_belt" swaggertype:"string"`
	NewBelt      Belt       `db:"new_belt" json:"new_belt" swaggertype:"string"`
	Result       ExamResult `db:"result" json:"result"`
	Fee          float64    `db:"fee" json:"fee"`
	Paid         bool       `db:"paid" json:"paid"`
	Notes        string     `db:"notes" json:"notes"`
}

type User struct {
	ID           int        `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	PinHash      string     `db:"pin_hash" json:"-"`
	IsAdmin      bool       `db:"is_admin" json:"is_admin"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

func (u *User) HasPin() bool {
	return u.PinHash != ""
}

// MemberDetail is a member together with its ledger entries, newest first.
type MemberDetail struct {
	Member   *Member   `json:"member"`
	Payments []Payment `json:"payments"`
	Exams    []Exam    `json:"exams"`
}

// PaymentFilter narrows a payment listing; nil fields are not applied.
type PaymentFilter struct {
	Month    *int
	Year     *int
	MemberID *int
}

type PaymentList struct {
	Payments []Payment `json:"payments"`
	Total    float64   `json:"total"`
}

type MemberSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Belt Belt   `json:"belt" swaggertype:"string"`
}

type BeltTotal struct {
	Belt  Belt   `json:"belt" swaggertype:"string"`
	Label string `json:"label"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

type Report struct {
	Year                int                `json:"year"`
	MonthlyTotals       []float64          `json:"monthly_totals"`
	YearlyTotal         float64            `json:"yearly_total"`
	BeltDistribution    []BeltTotal        `json:"belt_distribution"`
	PaymentMethodTotals map[string]float64 `json:"payment_method_totals"`
}

type Dashboard struct {
	ActiveMembers    int         `json:"active_members"`
	MonthlyPayments  float64     `json:"monthly_payments"`
	YearlyPayments   float64     `json:"yearly_payments"`
	BeltDistribution []BeltTotal `json:"belt_distribution"`
	MonthlyData      []float64   `json:"monthly_data"`
}
