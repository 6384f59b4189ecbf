package repository

import (
	"context"

	"sneakdrop/internal/domain/submission"
	"sneakdrop/internal/infra"
	"sneakdrop/internal/infra/db"

	"github.com/google/uuid"
)

type SubmissionRepository struct{}

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{}
}

func (r *SubmissionRepository) Create(ctx context.Context, tx db.DBTX, s *submission.Submission) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO submissions (id, user_id, brand, model, note, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		s.ID(), s.UserID(), s.Brand(), s.Model(), s.Note(), string(s.Status()), s.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create submission", err)
	}
	return id, nil
}

func (r *SubmissionRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status submission.Status) error {
	tag, err := tx.Exec(ctx, `UPDATE submissions SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update submission status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("submission not found", nil, infra.KindNotFound)
	}
	return nil
}
