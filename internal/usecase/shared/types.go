package shared

import (
	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type ProductSnapshot struct {
	ID        uuid.UUID
	Name      string
	GoalLikes int
}

type SubmissionSnapshot struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Status string
}
