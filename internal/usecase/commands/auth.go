package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/jwt"
	"room-reservation/internal/pkg/password"
	"room-reservation/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.NewKind("invalid email or password", errs.ErrUnauthenticated)
	ErrUserInactive       = errs.NewKind("user inactive", errs.ErrUnauthenticated)
	ErrUserNotFound       = errs.NewKind("user not found", errs.ErrUnauthenticated)
	ErrEmailTaken         = errs.NewKind("email already registered", errs.ErrDuplicate)
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.NewKind("token validation failed", errs.ErrUnauthenticated)
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

// Register always creates a MAHASISWA account. Admins come from the seed.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	name, err := user.NewName(in.Name)
	if err != nil {
		return uuid.Nil, err
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pass, err := user.NewPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "register")
	}

	var createdID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Reads().UserByEmail(ctx, email.Value())
		switch {
		case derr == nil:
			return ErrEmailTaken
		case !infra.IsKind(derr, infra.KindNotFound):
			return derr
		}

		id, derr := tx.Users().Create(ctx, tx.DB(), user.NewUser(name, email, hash, user.RoleStudent))
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, pass)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	pair, err := a.issue(account.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", account.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// login already succeeded
		slog.Warn("transaction failed during login", "user_id", account.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    account.ID,
		Role:      role,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Role comes from the store so a demotion takes effect on refresh.
	account, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	return a.issue(account.ID, role)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*shared.UserSnapshot, error) {
	account, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password so emails cannot be probed
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(account.PasswordHash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}
