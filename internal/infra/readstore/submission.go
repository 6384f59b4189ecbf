package readstore

import (
	"context"

	"sneakdrop/internal/infra"
	"sneakdrop/internal/infra/db"
	"sneakdrop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SubmissionReadStore struct {
	db db.DBTX
}

func NewSubmissionReadStore(db db.DBTX) *SubmissionReadStore {
	return &SubmissionReadStore{db: db}
}

const submissionSelect = `
	SELECT id, user_id, brand, model, note, status, created_at
	FROM submissions`

func (s *SubmissionReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.SubmissionView, error) {
	rows, err := s.db.Query(ctx, submissionSelect+`
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list submissions by user", err)
	}
	defer rows.Close()
	return collectSubmissions(rows)
}

func (s *SubmissionReadStore) ListAll(ctx context.Context) ([]*queries.SubmissionView, error) {
	rows, err := s.db.Query(ctx, submissionSelect+`
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list submissions", err)
	}
	defer rows.Close()
	return collectSubmissions(rows)
}

func (s *SubmissionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SubmissionView, error) {
	var v queries.SubmissionView
	err := s.db.QueryRow(ctx, submissionSelect+`
		WHERE id = $1`, id,
	).Scan(&v.ID, &v.UserID, &v.Brand, &v.Model, &v.Note, &v.Status, &v.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("submission not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find submission", err)
	}
	return &v, nil
}

func collectSubmissions(rows pgx.Rows) ([]*queries.SubmissionView, error) {
	views := make([]*queries.SubmissionView, 0)
	for rows.Next() {
		var v queries.SubmissionView
		err := rows.Scan(&v.ID, &v.UserID, &v.Brand, &v.Model, &v.Note, &v.Status, &v.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan submission", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read submissions", err)
	}
	return views, nil
}
