package userrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/dojoledger/internal/domain"
	"github.com/GlebRadaev/dojoledger/internal/pg"
)

const (
	selectUsers = `
		SELECT id, username, email, password_hash, pin_hash, is_admin, last_login, created_at
		FROM users`

	findByEmail = selectUsers + `
		WHERE email = $1`

	findByUsername = selectUsers + `
		WHERE username = $1`

	insertUser = `
		INSERT INTO users (username, email, password_hash, pin_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	updateLastLogin = `
		UPDATE users
		SET last_login = $1
		WHERE id = $2`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.PinHash, &user.IsAdmin,
		&user.LastLogin, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) find(ctx context.Context, query, key string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.find(ctx, findByEmail, email)
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return repo.find(ctx, findByUsername, username)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := repo.db.QueryRow(ctx, insertUser,
		user.Username, user.Email, user.PasswordHash, user.PinHash, user.IsAdmin,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("user %q (%s): %w", user.Username, pg.ConstraintName(err), domain.ErrDuplicate)
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	tag, err := repo.db.Exec(ctx, updateLastLogin, at, id)
	if err != nil {
		zap.L().Error("can't update last login", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
