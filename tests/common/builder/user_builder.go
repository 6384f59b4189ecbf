//go:build unit || e2e

package builder

import (
	"time"

	"sneakdrop/internal/domain/user"
	"sneakdrop/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID        uuid.UUID
	Email     string
	Username  string
	Password  string
	Role      user.Role
	IsActive  bool
	CreatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "sneakerhead@example.com",
		Username:  "sneakerhead",
		Password:  "password1234",
		Role:      user.RoleMember,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

func (b *UserBuilder) BuildAuthorizedUser() *readmodel.AuthorizedUser {
	return &readmodel.AuthorizedUser{
		ID:        b.ID,
		Email:     b.Email,
		Username:  b.Username,
		Role:      b.Role.String(),
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

func (b *UserBuilder) BuildCredentials() (user.Credentials, error) {
	return user.NewCredentials(b.Email, b.Password)
}

func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.Role = user.RoleAdmin
	return b
}

func (b *UserBuilder) AsInactive() *UserBuilder {
	b.IsActive = false
	return b
}
