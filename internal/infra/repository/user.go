package repository

import (
	"context"

	"voting-platform/internal/domain/user"
	"voting-platform/internal/infra"
	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const createUserSQL = `
INSERT INTO users (id, name, email, password_hash, linkedin_url, auth_provider, role, has_voted, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, createUserSQL,
		u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.LinkedinURL(),
		u.AuthProvider().String(), u.Role().String(), u.HasVoted(), u.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

const findUserByEmailSQL = `
SELECT id, name, email, linkedin_url, auth_provider, role, has_voted, is_active, password_hash
FROM users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&view.ID, &view.Name, &view.Email, &view.LinkedinURL,
		&view.AuthProvider, &view.Role, &view.HasVoted, &view.IsActive, &hash,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

const findUserByIDSQL = `
SELECT id, name, email, linkedin_url, auth_provider, role, has_voted, is_active
FROM users
WHERE id = $1`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&view.ID, &view.Name, &view.Email, &view.LinkedinURL,
		&view.AuthProvider, &view.Role, &view.HasVoted, &view.IsActive,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &view, nil
}

// HasVotedFlag reads the denormalized flag, the cheap pre-check before the
// ledger is consulted.
func (r *UserRepository) HasVotedFlag(ctx context.Context, id uuid.UUID) (bool, error) {
	var hasVoted bool
	err := r.db.QueryRow(ctx, `SELECT has_voted FROM users WHERE id = $1`, id).Scan(&hasVoted)
	if err != nil {
		if isNoRows(err) {
			return false, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to read has_voted flag", err)
	}
	return hasVoted, nil
}

// SetHasVoted runs inside the same transaction as the ledger insert; the flag
// is never written on its own.
func (r *UserRepository) SetHasVoted(ctx context.Context, tx DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE users SET has_voted = TRUE WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to set has_voted flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found for has_voted update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) ClearAllHasVoted(ctx context.Context, tx DBTX) error {
	if _, err := tx.Exec(ctx, `UPDATE users SET has_voted = FALSE WHERE has_voted`); err != nil {
		return infra.WrapRepoErr("failed to clear has_voted flags", err)
	}
	return nil
}
