package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"room-reservation/cmd/bootstrap"
	"room-reservation/cmd/bootstrap/components"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/policy"
	"room-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		seeder commands.SeedCommands
		pol    *policy.Policy
		logger *slog.Logger
	)

	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		components.PersistenceModule,
		fx.Provide(
			func(cfg config.Config) (*policy.Policy, error) {
				return policy.Load(cfg.Policy.File)
			},
			commands.NewSeedCommands,
		),
		fx.Populate(&seeder, &pol, &logger),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Warn("failed to stop seed app", "error", err)
		}
	}()

	result, err := seeder.Seed(ctx, toSeedInput(pol.Seed))
	if err != nil {
		return err
	}

	logger.Info("seed finished",
		"users_created", result.UsersCreated,
		"users_skipped", result.UsersSkipped,
		"rooms_created", result.RoomsCreated,
		"rooms_skipped", result.RoomsSkipped,
	)
	return nil
}

func toSeedInput(cfg policy.SeedConfig) commands.SeedInput {
	in := commands.SeedInput{
		Users: make([]commands.SeedAccount, 0, len(cfg.Users)),
		Rooms: make([]room.Attributes, 0, len(cfg.Rooms)),
	}
	for _, u := range cfg.Users {
		in.Users = append(in.Users, commands.SeedAccount{
			Name:     u.Name,
			Email:    u.Email,
			Password: u.Password,
			Role:     u.Role,
		})
	}
	for _, r := range cfg.Rooms {
		in.Rooms = append(in.Rooms, room.Attributes{
			Name:        r.Name,
			Description: r.Description,
			Capacity:    r.Capacity,
			Location:    r.Location,
			ImageURL:    r.ImageURL,
			IsActive:    r.IsActive(),
		})
	}
	return in
}
