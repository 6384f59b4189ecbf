package submission

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxNoteLength = 500

var (
	ErrEmptyBrand    = errors.New("submission brand cannot be empty")
	ErrEmptyModel    = errors.New("submission model cannot be empty")
	ErrNoteTooLong   = errors.New("submission note exceeds maximum length")
	ErrInvalidStatus = errors.New("invalid submission status")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Submission is a user's suggestion of a sneaker to add to the ballot.
type Submission struct {
	id        uuid.UUID
	userID    uuid.UUID
	brand     string
	model     string
	note      string
	status    Status
	createdAt time.Time
}

func NewSubmission(userID uuid.UUID, brand, model, note string, now time.Time) (*Submission, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, ErrEmptyBrand
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, ErrEmptyModel
	}
	note = strings.TrimSpace(note)
	if len(note) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	return &Submission{
		id:        uuid.New(),
		userID:    userID,
		brand:     brand,
		model:     model,
		note:      note,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

func (s *Submission) ID() uuid.UUID        { return s.id }
func (s *Submission) UserID() uuid.UUID    { return s.userID }
func (s *Submission) Brand() string        { return s.brand }
func (s *Submission) Model() string        { return s.model }
func (s *Submission) Note() string         { return s.note }
func (s *Submission) Status() Status       { return s.status }
func (s *Submission) CreatedAt() time.Time { return s.createdAt }
