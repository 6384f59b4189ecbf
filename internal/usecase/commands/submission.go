package commands

import (
	"context"

	"sneakdrop/internal/domain/submission"
	"sneakdrop/internal/pkg/clock"
	"sneakdrop/internal/pkg/errs"
	"sneakdrop/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSubmissionNotFound = errs.New("submission not found")

type CreateSubmissionRequest struct {
	Brand string
	Model string
	Note  string
}

type CreateSubmissionResult struct {
	SubmissionID uuid.UUID
}

type SubmissionCommands interface {
	Create(ctx context.Context, req CreateSubmissionRequest, userID uuid.UUID) (*CreateSubmissionResult, error)
	UpdateStatus(ctx context.Context, submissionID uuid.UUID, status string) error
}

type submissionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSubmissionUseCase(uow shared.UnitOfWork, clk clock.Clock) SubmissionCommands {
	return &submissionUseCaseImpl{uow: uow, clock: clk}
}

func (uc *submissionUseCaseImpl) Create(ctx context.Context, req CreateSubmissionRequest, userID uuid.UUID) (*CreateSubmissionResult, error) {
	sub, err := submission.NewSubmission(userID, req.Brand, req.Model, req.Note, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Submissions().Create(ctx, tx.DB(), sub)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateSubmissionResult{SubmissionID: createdID}, nil
}

func (uc *submissionUseCaseImpl) UpdateStatus(ctx context.Context, submissionID uuid.UUID, status string) error {
	st, err := submission.NewStatus(status)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().SubmissionByID(ctx, submissionID); derr != nil {
			return errs.Mark(derr, ErrSubmissionNotFound)
		}
		return tx.Submissions().UpdateStatus(ctx, tx.DB(), submissionID, st)
	})
}
