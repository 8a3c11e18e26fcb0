// Command migrate applies migrations/ to the configured database with the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"travel-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		slog.Error("invalid database configuration", "error", err)
		os.Exit(1)
	}

	if err := run(*dir, *atlasBin, dbCfg); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dir, atlasBin string, dbCfg config.DBConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer wd.Close()

	client, err := atlasexec.NewClient(wd.Path(), atlasBin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: dbCfg.BuildDSN(),
	})
	if err != nil {
		return err
	}

	slog.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied))
	return nil
}
