// Package netsync tracks backend reachability and drains the retry queue.
package netsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/config"
	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/state"
)

// Service runs the connectivity monitor and the retry drainer.
type Service struct {
	backend backend.Backend
	store   *state.Store
	cfg     config.SyncConfig
	logger  *zap.Logger
	limiter *rate.Limiter

	wake chan struct{}
	// after schedules the next drain attempt.
	after func(time.Duration) <-chan time.Time
}

func New(b backend.Backend, st *state.Store, cfg config.SyncConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	def := config.Default().Sync
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = def.PingInterval
	}
	if cfg.RetryInitial <= 0 {
		cfg.RetryInitial = def.RetryInitial
	}
	if cfg.RetryMax < cfg.RetryInitial {
		cfg.RetryMax = cfg.RetryInitial
	}
	limit := rate.Inf
	if cfg.RetryRate > 0 {
		limit = rate.Limit(cfg.RetryRate)
	}
	return &Service{
		backend: b,
		store:   st,
		cfg:     cfg,
		logger:  logger.Named("netsync"),
		limiter: rate.NewLimiter(limit, 1),
		wake:    make(chan struct{}, 1),
		after:   time.After,
	}
}

// Wake asks the drainer to try the queue now. It never blocks.
func (s *Service) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.monitor(ctx) })
	g.Go(func() error { return s.drain(ctx) })
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Service) monitor(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()
	for {
		s.Check(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Check pings the backend once and records the result. Coming back online
// wakes the drainer.
func (s *Service) Check(ctx context.Context) bool {
	was := s.store.Snapshot().Sync.Online
	err := s.backend.Ping(ctx)
	if ctx.Err() != nil {
		return was
	}
	online := err == nil
	if !online {
		s.logger.Debug("backend unreachable", zap.Error(err))
	}
	s.store.UpdateSyncStatus(online)
	if online && !was {
		s.logger.Info("backend reachable")
		s.Wake()
	}
	return online
}

func (s *Service) drain(ctx context.Context) error {
	wait := s.cfg.RetryInitial
	var retry <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
		case <-retry:
		}

		err := s.Flush(ctx)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case err == nil:
			wait, retry = s.cfg.RetryInitial, nil
		default:
			s.logger.Warn("retry queue flush", zap.Error(err), zap.Duration("next_attempt", wait))
			retry = s.after(wait)
			wait = min(wait*2, s.cfg.RetryMax)
		}
	}
}

// Flush sends queued messages oldest first. It stops at the first transient
// failure and returns it; messages the backend rejects outright are dropped
// from the queue.
func (s *Service) Flush(ctx context.Context) error {
	sent := false
	for _, m := range s.store.Snapshot().RetryQueue {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
		err := s.backend.InsertMessage(ctx, m)
		switch {
		case err == nil:
			s.store.RemoveFromRetryQueue(m.ID)
			sent = true
		case model.IsRetryable(err):
			s.store.UpdateSyncStatus(false)
			return fmt.Errorf("resend message %s: %w", m.ID, err)
		default:
			s.logger.Error("drop unsendable message", zap.String("message_id", m.ID), zap.Error(err))
			s.store.RemoveFromRetryQueue(m.ID)
		}
	}
	if sent {
		s.store.UpdateSyncStatus(true)
	}
	return nil
}
