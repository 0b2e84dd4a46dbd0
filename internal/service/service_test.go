package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/dojoledger/internal/pg"
	"github.com/GlebRadaev/dojoledger/internal/repo"
	"github.com/GlebRadaev/dojoledger/internal/service/authservice"
	"github.com/GlebRadaev/dojoledger/internal/service/memberservice"
	"github.com/GlebRadaev/dojoledger/internal/service/reportservice"
	"github.com/GlebRadaev/dojoledger/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		MemberRepo:  memberservice.NewMockMemberRepo(ctrl),
		PaymentRepo: memberservice.NewMockPaymentRepo(ctrl),
		ExamRepo:    memberservice.NewMockExamRepo(ctrl),
		UserRepo:    authservice.NewMockRepo(ctrl),
		ReportRepo:  reportservice.NewMockRepo(ctrl),
	}

	services := New(repos, pg.NewMockTXManager(ctrl), auth.NewMockTokenService(ctrl), time.Hour)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.MemberService)
	assert.NotNil(t, services.ReportService)
	assert.IsType(t, &memberservice.Service{}, services.MemberService)
}
