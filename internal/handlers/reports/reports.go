package reports

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/GlebRadaev/dojoledger/internal/domain"
	"github.com/GlebRadaev/dojoledger/internal/dto"
	"github.com/GlebRadaev/dojoledger/internal/handlers/httperr"
	"github.com/GlebRadaev/dojoledger/pkg/utils"
)

//go:generate mockgen -source=reports.go -destination=mock_reports.go -package=reports

type Service interface {
	MonthlyTotals(ctx context.Context, year int) ([]float64, error)
	BeltDistribution(ctx context.Context) ([]domain.BeltTotal, error)
	SearchMembers(ctx context.Context, query string) ([]domain.MemberSummary, error)
	Report(ctx context.Context, year int) (*domain.Report, error)
	Dashboard(ctx context.Context, now time.Time) (*domain.Dashboard, error)
}

type ReportHandler struct {
	reportService Service
	now           func() time.Time
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		now:           time.Now,
	}
}

// year reads the year query parameter, defaulting to the current year.
func (h *ReportHandler) year(r *http.Request) (int, error) {
	year, err := httperr.QueryInt(r, "year")
	if err != nil {
		return 0, err
	}
	if year == nil {
		return h.now().Year(), nil
	}
	return *year, nil
}

// GetReport godoc
//
//	@Summary		Yearly report
//	@Description	Monthly totals, yearly total, belt distribution and payment method totals
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Param			year	query		int	false	"Year, defaults to the current one"
//	@Success		200		{object}	domain.Report
//	@Failure		400		{object}	utils.Response	"Invalid year"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports [get]
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	year, err := h.year(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	report, err := h.reportService.Report(r.Context(), year)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// GetMonthlyData godoc
//
//	@Summary	Twelve monthly payment totals
//	@Tags		Reports
//	@Produce	json
//	@Security	BearerAuth
//	@Param		year	query		int	false	"Year, defaults to the current one"
//	@Success	200		{object}	dto.MonthlyDataResponseDTO
//	@Router		/api/reports/monthly [get]
func (h *ReportHandler) GetMonthlyData(w http.ResponseWriter, r *http.Request) {
	year, err := h.year(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	totals, err := h.reportService.MonthlyTotals(r.Context(), year)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MonthlyDataResponseDTO{Year: year, Totals: totals})
}

// GetBeltDistribution godoc
//
//	@Summary	Active members per belt
//	@Tags		Reports
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.BeltTotal
//	@Router		/api/reports/belts [get]
func (h *ReportHandler) GetBeltDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.reportService.BeltDistribution(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, distribution)
}

// SearchMembers godoc
//
//	@Summary	Search members by first or last name
//	@Tags		Members
//	@Produce	json
//	@Security	BearerAuth
//	@Param		q	query	string	false	"Name fragment"
//	@Success	200	{array}	domain.MemberSummary
//	@Router		/api/members/search [get]
func (h *ReportHandler) SearchMembers(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	found, err := h.reportService.SearchMembers(r.Context(), query)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, found)
}

// GetDashboard godoc
//
//	@Summary	Club summary for the current month and year
//	@Tags		Reports
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Dashboard
//	@Router		/api/dashboard [get]
func (h *ReportHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.reportService.Dashboard(r.Context(), h.now())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dashboard)
}
