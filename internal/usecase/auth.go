package usecase

import (
	"context"
	"errors"

	"sneakdrop/internal/domain/user"
	"sneakdrop/internal/infra"
	"sneakdrop/internal/pkg/jwt"
	"sneakdrop/internal/pkg/password"
	"sneakdrop/internal/usecase/readmodel"
	"sneakdrop/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrEmailTaken           = errors.New("email already registered")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUser, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUser, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, credentials user.Credentials, username string) (*readmodel.AuthorizedUser, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUser, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUser, error)
}

type authUseCaseImpl struct {
	users      UserReadStore
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthUseCase(users UserReadStore, uow shared.UnitOfWork, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, credentials user.Credentials, username string) (*readmodel.AuthorizedUser, error) {
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), credentials.Email().Value(), username, hash, user.RoleMember.String())
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return a.users.FindByID(ctx, createdID)
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUser, error) {
	account, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(account.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID)
	})
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUser, error) {
	account, hashedPassword, err := a.users.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUser, error) {
	account, err := a.users.FindByID(ctx, userID)
	if err != nil || account == nil {
		return nil, ErrUserNotFound
	}

	if !account.IsActive {
		return nil, ErrUserInactive
	}

	return account, nil
}
