package repo

import (
	"github.com/GlebRadaev/dojoledger/internal/pg"
	examrepo "github.com/GlebRadaev/dojoledger/internal/repo/exam-repo"
	memberrepo "github.com/GlebRadaev/dojoledger/internal/repo/member-repo"
	paymentrepo "github.com/GlebRadaev/dojoledger/internal/repo/payment-repo"
	reportrepo "github.com/GlebRadaev/dojoledger/internal/repo/report-repo"
	userrepo "github.com/GlebRadaev/dojoledger/internal/repo/user-repo"
	"github.com/GlebRadaev/dojoledger/internal/service/authservice"
	"github.com/GlebRadaev/dojoledger/internal/service/memberservice"
	"github.com/GlebRadaev/dojoledger/internal/service/reportservice"
)

type Repositories struct {
	MemberRepo  memberservice.MemberRepo
	PaymentRepo memberservice.PaymentRepo
	ExamRepo    memberservice.ExamRepo
	UserRepo    authservice.Repo
	ReportRepo  reportservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		MemberRepo:  memberrepo.New(conn),
		PaymentRepo: paymentrepo.New(conn),
		ExamRepo:    examrepo.New(conn),
		UserRepo:    userrepo.New(conn),
		ReportRepo:  reportrepo.New(conn),
	}
}
