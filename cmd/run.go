package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vibetune/internal/app"
	"github.com/abhisek/vibetune/internal/auth"
	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/backend/local"
	"github.com/abhisek/vibetune/internal/backend/supabase"
	"github.com/abhisek/vibetune/internal/coach"
	"github.com/abhisek/vibetune/internal/config"
	"github.com/abhisek/vibetune/internal/llm"
	"github.com/abhisek/vibetune/internal/logging"
	"github.com/abhisek/vibetune/internal/netsync"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	b, err := newBackend(cfg, db, logger)
	if err != nil {
		return err
	}

	eventRepo := db.EventRepo()
	responder, err := newResponder(ctx, cfg, eventRepo, logger)
	if err != nil {
		return err
	}

	st := state.New(
		state.WithPersister(state.NewSnapshotPersister(db.SnapshotRepo(), logger)),
		state.WithLogger(logger),
	)
	if err := st.Restore(ctx); err != nil {
		logger.Warn("restore session state", zap.Error(err))
	}

	center := notify.NewCenter(notify.DefaultTTL)
	gate := auth.NewGate(b, st, center, logger)
	syncer := netsync.New(b, st, cfg.Sync, logger)

	logger.Info("starting",
		zap.String("version", version),
		zap.String("backend", cfg.Backend.Kind),
		zap.String("coach", cfg.Coach.Kind),
	)

	return app.Run(ctx, app.Options{
		Backend:   b,
		Store:     st,
		Notifier:  center,
		Responder: responder,
		Analytics: eventRepo,
		Logger:    logger,
		Config:    *cfg,
		Wake:      syncer.Wake,
		NewID:     uuid.NewString,
	}, gate, syncer)
}

// newBackend builds the configured backend, bounded by the backend timeout.
func newBackend(cfg *config.Config, db *store.Store, logger *zap.Logger) (backend.Backend, error) {
	var b backend.Backend
	switch cfg.Backend.Kind {
	case config.BackendSupabase:
		sessionFile, err := sessionPath()
		if err != nil {
			return nil, err
		}
		b = supabase.New(cfg.Backend.SupabaseURL, cfg.Backend.SupabaseAnonKey,
			supabase.WithSessionFile(sessionFile),
			supabase.WithLogger(logger),
		)
	default:
		b = local.New(db.Client(), logger)
	}
	return backend.WithTimeout(b, cfg.Backend.Timeout), nil
}

// sessionPath keeps the hosted session next to the default config file.
func sessionPath() (string, error) {
	p, err := config.DefaultPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(p), "session.json"), nil
}

// newResponder builds the chat coach. The llm kind records every request in
// the event log.
func newResponder(ctx context.Context, cfg *config.Config, rec llm.Recorder, logger *zap.Logger) (coach.Responder, error) {
	var provider llm.Provider
	if cfg.Coach.Kind == config.CoachLLM {
		p, err := llm.NewProvider(ctx, llm.FromConfig(cfg.LLM), rec, logger)
		if err != nil {
			return nil, fmt.Errorf("init llm provider: %w", err)
		}
		provider = p
	}
	r, err := coach.New(cfg.Coach, cfg.LLM, provider, logger)
	if err != nil {
		return nil, fmt.Errorf("init coach: %w", err)
	}
	return r, nil
}
