package readstore

import (
	"context"

	"sneakdrop/internal/infra"
	"sneakdrop/internal/infra/db"
	"sneakdrop/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUser, string, error) {
	var u readmodel.AuthorizedUser
	var hash string
	err := s.db.QueryRow(ctx, `
		SELECT id, email, username, role, is_active, created_at, password_hash
		FROM users
		WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.Username, &u.Role, &u.IsActive, &u.CreatedAt, &hash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &u, hash, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUser, error) {
	var u readmodel.AuthorizedUser
	err := s.db.QueryRow(ctx, `
		SELECT id, email, username, role, is_active, created_at
		FROM users
		WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Username, &u.Role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &u, nil
}
