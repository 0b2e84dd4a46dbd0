package authservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/dojoledger/internal/domain"
	"github.com/GlebRadaev/dojoledger/internal/dto"
	"github.com/GlebRadaev/dojoledger/pkg/auth"
	"github.com/GlebRadaev/dojoledger/pkg/validate"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id int, at time.Time) error
}

type Service struct {
	userRepo Repo
	hasher   auth.Hasher
	tokens   auth.TokenService
	ttl      time.Duration
	now      func() time.Time
}

func New(repo Repo, hasher auth.Hasher, tokens auth.TokenService, ttl time.Duration) *Service {
	return &Service{
		userRepo: repo,
		hasher:   hasher,
		tokens:   tokens,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req dto.RegisterRequestDTO) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, domain.Persistence(err)
	}
	if existing != nil {
		zap.L().Info("username already taken", zap.String("username", username))
		return nil, fmt.Errorf("username %q: %w", username, domain.ErrDuplicate)
	}
	existing, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, domain.Persistence(err)
	}
	if existing != nil {
		zap.L().Info("email already registered", zap.String("email", email))
		return nil, fmt.Errorf("email %q: %w", email, domain.ErrDuplicate)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	var pinHash string
	if req.Pin != "" {
		if pinHash, err = s.hasher.Hash(req.Pin); err != nil {
			zap.L().Error("can't hash pin", zap.Error(err))
			return nil, err
		}
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		PinHash:      pinHash,
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, domain.Persistence(err)
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return user, nil
}

// Authenticate accepts the password, or the PIN when one is given. Every credential mismatch yields
// domain.ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password, pin string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, domain.Persistence(err)
	}
	if user == nil {
		secret := password
		if secret == "" {
			secret = pin
		}
		s.hasher.Compare(auth.PlaceholderHash(), secret)
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}

	ok := password != "" && s.hasher.Compare(user.PasswordHash, password)
	if !ok && pin != "" && user.HasPin() {
		ok = s.hasher.Compare(user.PinHash, pin)
	}
	if !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.UpdateLastLogin(ctx, user); err != nil {
		return nil, err
	}
	zap.L().Info("user successfully authenticated", zap.String("username", user.Username))
	return user, nil
}

func (s *Service) UpdateLastLogin(ctx context.Context, user *domain.User) error {
	at := s.now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, at); err != nil {
		zap.L().Error("can't update last login", zap.Int("id", user.ID), zap.Error(err))
		return domain.Persistence(err)
	}
	user.LastLogin = &at
	return nil
}

// GenerateToken issues a session token for user and reports when it expires.
func (s *Service) GenerateToken(user *domain.User) (string, time.Time, error) {
	expiresAt := s.now().Add(s.ttl)

	token, err := s.tokens.Issue(user.ID, user.Username, expiresAt)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
