// Command contentimport loads an effect catalog from YAML into the
// effect_definitions table.
//
// Usage:
//
//	go run ./cmd/contentimport -effects config/effects.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/udisondev/wizards/internal/config"
	"github.com/udisondev/wizards/internal/data"
	"github.com/udisondev/wizards/internal/db"
)

func main() {
	cfgPath := flag.String("config", "config/wizards.yaml", "server config with database settings")
	effectsPath := flag.String("effects", "", "effect catalog to import (default: content.effects_file)")
	flag.Parse()

	if err := run(context.Background(), *cfgPath, *effectsPath); err != nil {
		slog.Error("import failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath, effectsPath string) error {
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if effectsPath == "" {
		effectsPath = cfg.Content.EffectsFile
	}

	catalog, err := data.LoadEffectCatalog(effectsPath)
	if err != nil {
		return err
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return err
	}
	return database.Effects().ImportCatalog(ctx, catalog)
}
