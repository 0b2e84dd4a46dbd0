package members

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/dojoledger/internal/domain"
	"github.com/GlebRadaev/dojoledger/internal/dto"
	"github.com/GlebRadaev/dojoledger/internal/handlers/httperr"
	"github.com/GlebRadaev/dojoledger/pkg/utils"
)

//go:generate mockgen -source=members.go -destination=mock_members.go -package=members

type Service interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
	AddMember(ctx context.Context, req dto.MemberRequestDTO) (*domain.Member, error)
	EditMember(ctx context.Context, id int, req dto.MemberRequestDTO) (*domain.Member, error)
	DeleteMember(ctx context.Context, id int) error
	GetMemberDetail(ctx context.Context, id int) (*domain.MemberDetail, error)
	AddPayment(ctx context.Context, memberID int, req dto.PaymentRequestDTO) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id int) error
	ListPayments(ctx context.Context, filter domain.PaymentFilter) (*domain.PaymentList, error)
	AddExam(ctx context.Context, memberID int, req dto.ExamRequestDTO) (*domain.Exam, error)
	DeleteExam(ctx context.Context, id int) error
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// ListMembers godoc
//
//	@Summary	List members by surname
//	@Tags		Members
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.Member
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/members [get]
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.ListMembers(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, members)
}

// AddMember godoc
//
//	@Summary		Enroll a member
//	@Description	Empty belt means white, empty enrollment date means today, monthly fee is at least 5
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.MemberRequestDTO	true	"Member"
//	@Success		201		{object}	domain.Member
//	@Failure		400		{object}	utils.Response	"Invalid field"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/members [post]
func (h *MemberHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req dto.MemberRequestDTO
	if err := httperr.Decode(r, &req); err != nil {
		httperr.Write(w, err)
		return
	}
	member, err := h.memberService.AddMember(r.Context(), req)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, member)
}

// GetMember godoc
//
//	@Summary	Member with payments and exams
//	@Tags		Members
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Member ID"
//	@Success	200	{object}	domain.MemberDetail
//	@Failure	404	{object}	utils.Response	"Member not found"
//	@Router		/api/members/{id} [get]
func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	detail, err := h.memberService.GetMemberDetail(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// EditMember godoc
//
//	@Summary	Update a member
//	@Tags		Members
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"Member ID"
//	@Param		request	body		dto.MemberRequestDTO	true	"Member"
//	@Success	200		{object}	domain.Member
//	@Failure	400		{object}	utils.Response	"Invalid field"
//	@Failure	404		{object}	utils.Response	"Member not found"
//	@Router		/api/members/{id} [put]
func (h *MemberHandler) EditMember(w http.ResponseWriter, r *http.Request) {
	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	var req dto.MemberRequestDTO
	if err := httperr.Decode(r, &req); err != nil {
		httperr.Write(w, err)
		return
	}
	member, err := h.memberService.EditMember(r.Context(), id, req)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, member)
}

// DeleteMember godoc
//
//	@Summary	Delete a member with its payments and exams
//	@Tags		Members
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Member ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Member not found"
//	@Router		/api/members/{id} [delete]
func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if err := h.memberService.DeleteMember(r.Context(), id); err != nil {
		httperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddPayment godoc
//
//	@Summary	Record a dues payment
//	@Tags		Payments
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"Member ID"
//	@Param		request	body		dto.PaymentRequestDTO	true	"Payment"
//	@Success	201		{object}	domain.Payment
//	@Failure	400		{object}	utils.Response	"Invalid field"
//	@Failure	404		{object}	utils.Response	"Member not found"
//	@Router		/api/members/{id}/payments [post]
func (h *MemberHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	var req dto.PaymentRequestDTO
	if err := httperr.Decode(r, &req); err != nil {
		httperr.Write(w, err)
		return
	}
	payment, err := h.memberService.AddPayment(r.Context(), id, req)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, payment)
}

// AddExam godoc
//
//	@Summary		Record a belt exam
//	@Description	A passed exam moves the member to the new belt
//	@Tags			Exams
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int					true	"Member ID"
//	@Param			request	body		dto.ExamRequestDTO	true	"Exam"
//	@Success		201		{object}	domain.Exam
//	@Failure		400		{object}	utils.Response	"Invalid field"
//	@Failure		404		{object}	utils.Response	"Member not found"
//	@Router			/api/members/{id}/exams [post]
func (h *MemberHandler) AddExam(w http.ResponseWriter, r *http.Request) {
	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	var req dto.ExamRequestDTO
	if err := httperr.Decode(r, &req); err != nil {
		httperr.Write(w, err)
		return
	}
	exam, err := h.memberService.AddExam(r.Context(), id, req)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, exam)
}

// ListPayments godoc
//
//	@Summary		List payments
//	@Description	Filters are optional; results are newest first with their total
//	@Tags			Payments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			month		query		int	false	"Month 1-12"
//	@Param			year		query		int	false	"Year"
//	@Param			member_id	query		int	false	"Member ID"
//	@Success		200			{object}	domain.PaymentList
//	@Failure		400			{object}	utils.Response	"Invalid filter"
//	@Router			/api/payments [get]
func (h *MemberHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	var (
		filter domain.PaymentFilter
		err    error
	)
	if filter.Month, err = httperr.QueryInt(r, "month"); err != nil {
		httperr.Write(w, err)
		return
	}
	if filter.Year, err = httperr.QueryInt(r, "year"); err != nil {
		httperr.Write(w, err)
		return
	}
	if filter.MemberID, err = httperr.QueryInt(r, "member_id"); err != nil {
		httperr.Write(w, err)
		return
	}
	list, err := h.memberService.ListPayments(r.Context(), filter)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// DeletePayment godoc
//
//	@Summary	Delete a payment
//	@Tags		Payments
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Payment ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Payment not found"
//	@Router		/api/payments/{id} [delete]
func (h *MemberHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if err := h.memberService.DeletePayment(r.Context(), id); err != nil {
		httperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteExam godoc
//
//	@Summary		Delete an exam
//	@Description	The member keeps the belt the exam awarded
//	@Tags			Exams
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Exam ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Exam not found"
//	@Router			/api/exams/{id} [delete]
func (h *MemberHandler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	id, err := httperr.PathID(r, "id")
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if err := h.memberService.DeleteExam(r.Context(), id); err != nil {
		httperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
