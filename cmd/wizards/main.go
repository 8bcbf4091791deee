package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/wizards/internal/config"
	"github.com/udisondev/wizards/internal/data"
	"github.com/udisondev/wizards/internal/db"
	"github.com/udisondev/wizards/internal/game/layered"
	"github.com/udisondev/wizards/internal/model"
	"github.com/udisondev/wizards/internal/world"
)

const ConfigPath = "config/wizards.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("WIZARDS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("wizards starting",
		"log_level", cfg.LogLevel,
		"content_source", cfg.Content.Source,
		"tick_interval", cfg.TickInterval)

	content, err := loadContent(ctx, cfg)
	if err != nil {
		return err
	}

	w := world.New(layered.NewWorldClock())
	w.OnAnyAttributeChanged(logChange)

	expirer := world.NewExpirer(w, cfg.TickInterval)
	creatures, err := world.Populate(w, expirer, content)
	if err != nil {
		return fmt.Errorf("populating world: %w", err)
	}
	logCreatures("initial state", creatures)

	runCtx := ctx
	if cfg.RunFor > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cfg.RunFor)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		slog.Info("starting effect expirer", "pending", expirer.Pending(), "run_for", cfg.RunFor)
		var err error
		if cfg.RunFor > 0 {
			err = expirer.Start(gctx)
		} else {
			err = expirer.RunUntilIdle(gctx)
		}
		if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("effect expirer: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logCreatures("final state", creatures)
	return nil
}

func loadContent(ctx context.Context, cfg config.Server) (*data.Content, error) {
	if cfg.Content.Source == config.SourceYAML {
		content, err := data.LoadContent(ctx, cfg.Content.EffectsFile, cfg.Content.CreaturesFile)
		if err != nil {
			return nil, fmt.Errorf("loading content: %w", err)
		}
		return content, nil
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	catalog, err := database.Effects().LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading effects: %w", err)
	}
	templates, err := data.LoadCreatureTemplates(cfg.Content.CreaturesFile)
	if err != nil {
		return nil, fmt.Errorf("loading creatures: %w", err)
	}

	content := &data.Content{Effects: catalog, Creatures: templates}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return content, nil
}

func logChange(evt layered.ChangeEvent) {
	name := ""
	if c, ok := evt.Owner.(*model.Creature); ok {
		name = c.Name()
	}
	slog.Info("attribute changed",
		"creature", name,
		"attribute", evt.Attribute,
		"old", evt.OldValue,
		"new", evt.NewValue)
}

func logCreatures(msg string, creatures []*model.Creature) {
	for _, c := range creatures {
		attrs := make([]any, 0, 2*len(layered.AllAttributeKeys()))
		for _, v := range c.Snapshot() {
			if v.Base == 0 && v.Current == 0 && v.Effects == 0 {
				continue
			}
			attrs = append(attrs, v.Attribute.String(), v.Current)
		}
		slog.Info(msg, append([]any{"objectID", c.ObjectID(), "name", c.Name()}, attrs...)...)
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
