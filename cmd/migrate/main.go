package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"room-reservation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"ariga.io/atlas/sql/migrate"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the SQL migrations")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	if err := run(*dir, *atlasBin, *dryRun); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dirPath, atlasBin string, dryRun bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	migrations, err := withChecksum(dirPath)
	if err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(migrations))
	if err != nil {
		return fmt.Errorf("failed to prepare atlas working dir: %w", err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return fmt.Errorf("failed to create atlas client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"pending", len(res.Pending),
		"current", res.Current,
		"target", res.Target,
		"dry_run", dryRun,
	)
	return nil
}

// withChecksum copies the migration files into memory and adds the atlas.sum
// file atlas requires, so the repository does not have to track it.
func withChecksum(dirPath string) (*migrate.MemDir, error) {
	local, err := migrate.NewLocalDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open migrations dir: %w", err)
	}
	files, err := local.Files()
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}

	mem := &migrate.MemDir{}
	for _, f := range files {
		if err := mem.WriteFile(f.Name(), f.Bytes()); err != nil {
			return nil, err
		}
	}

	sum, err := mem.Checksum()
	if err != nil {
		return nil, fmt.Errorf("failed to compute migration checksum: %w", err)
	}
	if err := migrate.WriteSumFile(mem, sum); err != nil {
		return nil, err
	}
	return mem, nil
}
