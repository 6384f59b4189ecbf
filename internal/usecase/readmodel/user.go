package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUser is the profile slice carried through auth flows.
type AuthorizedUser struct {
	ID        uuid.UUID
	Email     string
	Username  string
	Role      string
	IsActive  bool
	CreatedAt time.Time
}
