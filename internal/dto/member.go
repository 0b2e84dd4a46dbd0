package dto

type MemberRequestDTO struct {
	FirstName      string  `json:"first_name" validate:"required,max=64" example:"Mario"`
	LastName       string  `json:"last_name" validate:"required,max=64" example:"Rossi"`
	BirthDate      string  `json:"birth_date" validate:"required,datetime=2006-01-02" example:"1990-04-12"`
	Address        string  `json:"address" validate:"max=255" example:"Via Roma 1"`
	Phone          string  `json:"phone" validate:"max=20" example:"+39 333 1234567"`
	Email          string  `json:"email" validate:"omitempty,email,max=120" example:"mario@rossi.it"`
	Belt           string  `json:"belt" example:"Bianca"`
	EnrollmentDate string  `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02" example:"2023-09-01"`
	MonthlyFee     Decimal `json:"monthly_fee" swaggertype:"string" example:"30.00"`
	Active         *bool   `json:"active" example:"true"`
	Notes          string  `json:"notes"`
}

type PaymentRequestDTO struct {
	Amount        Decimal `json:"amount" validate:"required" swaggertype:"string" example:"30.00"`
	PaymentDate   string  `json:"payment_date" validate:"required,datetime=2006-01-02" example:"2024-03-05"`
	Month         int     `json:"month" validate:"min=1,max=12" example:"3"`
	Year          int     `json:"year" validate:"min=1900,max=9999" example:"2024"`
	PaymentMethod string  `json:"payment_method" validate:"max=20" example:"Cash"`
	Notes         string  `json:"notes"`
}

type ExamRequestDTO struct {
	ExamDate string  `json:"exam_date" validate:"required,datetime=2006-01-02" example:"2024-06-15"`
	NewBelt  string  `json:"new_belt" validate:"required" example:"Verde"`
	Result   string  `json:"result" example:"Passed"`
	Fee      Decimal `json:"fee" swaggertype:"string" example:"20.00"`
	Paid     bool    `json:"paid" example:"true"`
	Notes    string  `json:"notes"`
}

type MonthlyDataResponseDTO struct {
	Year   int       `json:"year" example:"2024"`
	Totals []float64 `json:"monthly_totals"`
}
