package db

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"runesse/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Migrate applies the versioned SQL files in dir using the atlas CLI found at atlasBin.
func Migrate(ctx context.Context, cfg config.DBConfig, dir, atlasBin string, logger *slog.Logger) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve migration dir: %w", err)
	}

	client, err := atlasexec.NewClient(absDir, atlasBin)
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://" + absDir,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
	)
	return nil
}
