package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"service-broker/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// Applies migrations/ to the database named by the DB_* variables through the atlas CLI.
func main() {
	dir := flag.String("dir", "migrations", "migration directory (must contain atlas.sum)")
	bin := flag.String("atlas", "atlas", "atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending files without applying them")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to load DB config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, logger, *bin, *dir, dbCfg.BuildDSN(), *dryRun); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, bin, dir, dsn string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		logger.Info("applied", "file", f.Name)
	}
	logger.Info("database at version", "current", res.Current, "target", res.Target, "pending", len(res.Pending))
	return nil
}
