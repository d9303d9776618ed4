package commands

import (
	"context"
	"log/slog"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/password"
	"room-reservation/internal/usecase/shared"
)

type SeedAccount struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type SeedInput struct {
	Users []SeedAccount
	Rooms []room.Attributes
}

type SeedResult struct {
	UsersCreated int
	UsersSkipped int
	RoomsCreated int
	RoomsSkipped int
}

// SeedCommands creates the configured accounts and rooms. Existing emails and
// room names are left untouched, so running it twice is a no-op.
type SeedCommands interface {
	Seed(ctx context.Context, in SeedInput) (*SeedResult, error)
}

type seedCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewSeedCommands(uow shared.UnitOfWork, logger *slog.Logger) SeedCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &seedCommandsImpl{uow: uow, logger: logger}
}

func (s *seedCommandsImpl) Seed(ctx context.Context, in SeedInput) (*SeedResult, error) {
	var result SeedResult

	for _, acc := range in.Users {
		created, err := s.seedUser(ctx, acc)
		if err != nil {
			return nil, errs.Wrapf(err, "seed user %s", acc.Email)
		}
		if created {
			result.UsersCreated++
		} else {
			result.UsersSkipped++
		}
	}

	for _, attrs := range in.Rooms {
		created, err := s.seedRoom(ctx, attrs)
		if err != nil {
			return nil, errs.Wrapf(err, "seed room %s", attrs.Name)
		}
		if created {
			result.RoomsCreated++
		} else {
			result.RoomsSkipped++
		}
	}

	return &result, nil
}

func (s *seedCommandsImpl) seedUser(ctx context.Context, acc SeedAccount) (bool, error) {
	name, err := user.NewName(acc.Name)
	if err != nil {
		return false, err
	}
	email, err := user.NewEmail(acc.Email)
	if err != nil {
		return false, err
	}
	pass, err := user.NewPassword(acc.Password)
	if err != nil {
		return false, err
	}
	role, err := user.NewRole(acc.Role)
	if err != nil {
		return false, err
	}

	created := false
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = false
		_, derr := tx.Reads().UserByEmail(ctx, email.Value())
		switch {
		case derr == nil:
			return nil
		case !infra.IsKind(derr, infra.KindNotFound):
			return derr
		}

		hash, derr := password.HashPassword(pass.Value())
		if derr != nil {
			return errs.Wrap(derr, "hash password")
		}
		if _, derr = tx.Users().Create(ctx, tx.DB(), user.NewUser(name, email, hash, role)); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return nil
			}
			return derr
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}

	s.logger.InfoContext(ctx, "seed user", "email", email.Value(), "role", role.String(), "created", created)
	return created, nil
}

func (s *seedCommandsImpl) seedRoom(ctx context.Context, attrs room.Attributes) (bool, error) {
	r, err := room.NewRoom(attrs)
	if err != nil {
		return false, err
	}

	created := false
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = false
		_, derr := tx.Reads().RoomByName(ctx, r.Name())
		switch {
		case derr == nil:
			return nil
		case !infra.IsKind(derr, infra.KindNotFound):
			return derr
		}

		if _, derr = tx.Rooms().Create(ctx, tx.DB(), r); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return nil
			}
			return derr
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}

	s.logger.InfoContext(ctx, "seed room", "name", r.Name(), "created", created)
	return created, nil
}
