package service

import (
	"time"

	"github.com/GlebRadaev/dojoledger/internal/handlers/auth"
	"github.com/GlebRadaev/dojoledger/internal/handlers/members"
	"github.com/GlebRadaev/dojoledger/internal/handlers/reports"
	"github.com/GlebRadaev/dojoledger/internal/pg"
	"github.com/GlebRadaev/dojoledger/internal/repo"
	"github.com/GlebRadaev/dojoledger/internal/service/authservice"
	"github.com/GlebRadaev/dojoledger/internal/service/memberservice"
	"github.com/GlebRadaev/dojoledger/internal/service/reportservice"

	pkgauth "github.com/GlebRadaev/dojoledger/pkg/auth"
)

type Services struct {
	AuthService   auth.Service
	MemberService members.Service
	ReportService reports.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, tokens pkgauth.TokenService, sessionTTL time.Duration) *Services {
	memberService := memberservice.New(repo.MemberRepo, repo.PaymentRepo, repo.ExamRepo, txManager)
	reportService := reportservice.New(repo.ReportRepo)
	authService := authservice.New(repo.UserRepo, pkgauth.NewBcryptHasher(), tokens, sessionTTL)

	return &Services{
		AuthService:   authService,
		MemberService: memberService,
		ReportService: reportService,
	}
}
