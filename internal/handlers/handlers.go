package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/dojoledger/docs"
	authhandlers "github.com/GlebRadaev/dojoledger/internal/handlers/auth"
	membershandlers "github.com/GlebRadaev/dojoledger/internal/handlers/members"
	reportshandlers "github.com/GlebRadaev/dojoledger/internal/handlers/reports"
	"github.com/GlebRadaev/dojoledger/internal/service"
	"github.com/GlebRadaev/dojoledger/pkg/auth"
	"github.com/GlebRadaev/dojoledger/pkg/logger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	PinLogin(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type MemberHandler interface {
	ListMembers(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
	GetMember(w http.ResponseWriter, r *http.Request)
	EditMember(w http.ResponseWriter, r *http.Request)
	DeleteMember(w http.ResponseWriter, r *http.Request)
	AddPayment(w http.ResponseWriter, r *http.Request)
	AddExam(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
	DeleteExam(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	GetMonthlyData(w http.ResponseWriter, r *http.Request)
	GetBeltDistribution(w http.ResponseWriter, r *http.Request)
	SearchMembers(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	MemberHandler MemberHandler
	ReportHandler ReportHandler
	tokens        auth.TokenService
}

func New(s *service.Services, tokens auth.TokenService) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		MemberHandler: membershandlers.New(s.MemberService),
		ReportHandler: reportshandlers.New(s.ReportService),
		tokens:        tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		logger.AccessLog,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/pin-login", h.AuthHandler.PinLogin)
			r.Post("/logout", h.AuthHandler.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.tokens))
			r.Route("/members", func(r chi.Router) {
				r.Get("/", h.MemberHandler.ListMembers)
				r.Post("/", h.MemberHandler.AddMember)
				r.Get("/search", h.ReportHandler.SearchMembers)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.MemberHandler.GetMember)
					r.Put("/", h.MemberHandler.EditMember)
					r.Delete("/", h.MemberHandler.DeleteMember)
					r.Post("/payments", h.MemberHandler.AddPayment)
					r.Post("/exams", h.MemberHandler.AddExam)
				})
			})
			r.Route("/payments", func(r chi.Router) {
				r.Get("/", h.MemberHandler.ListPayments)
				r.Delete("/{id}", h.MemberHandler.DeletePayment)
			})
			r.Delete("/exams/{id}", h.MemberHandler.DeleteExam)
			r.Route("/reports", func(r chi.Router) {
				r.Get("/", h.ReportHandler.GetReport)
				r.Get("/monthly", h.ReportHandler.GetMonthlyData)
				r.Get("/belts", h.ReportHandler.GetBeltDistribution)
			})
			r.Get("/dashboard", h.ReportHandler.GetDashboard)
		})
	})

	return r
}
