package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/vibetune/internal/state"
)

// Gate keeps the session store in step with the backend session.
type Gate interface {
	Start(ctx context.Context)
	Stop()
}

// Syncer runs connectivity checks and drains the retry queue.
type Syncer interface {
	Run(ctx context.Context) error
}

// sender is the part of tea.Program the relay needs.
type sender interface {
	Send(msg tea.Msg)
}

// signal is a one-slot wakeup. Raising it never blocks, and any number of
// raises before the relay drains it collapse into one.
type signal chan struct{}

func newSignal() signal { return make(signal, 1) }

func (s signal) raise() {
	select {
	case s <- struct{}{}:
	default:
	}
}

// relay forwards raised signals into the program until ctx is done. Store and
// toast changes are often made from inside Update, where a direct p.Send
// would block the event loop that has to receive it.
func relay(ctx context.Context, p sender, changed, toasts signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-changed:
			p.Send(stateChangedMsg{})
		case <-toasts:
			p.Send(toastMsg{})
		}
	}
}

// Run starts the background services and the Bubble Tea program, and blocks
// until the program exits.
func Run(ctx context.Context, opts Options, gate Gate, syncer Syncer) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Subscribe before the gate starts so none of its changes slip past.
	changed, toasts := newSignal(), newSignal()
	unsubscribe := opts.Store.Subscribe(func(state.State) { changed.raise() })
	defer unsubscribe()

	// The gate applies the restored session before the first frame so the
	// landing screen matches it.
	gate.Start(ctx)
	defer gate.Stop()

	m := newAppModel(opts)
	m.opts.Notifier.OnChange(toasts.raise)
	defer m.opts.Notifier.OnChange(nil)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		relay(gctx, p, changed, toasts)
		return nil
	})
	if syncer != nil {
		g.Go(func() error { return syncer.Run(gctx) })
	}
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if err != nil {
			return fmt.Errorf("run program: %w", err)
		}
		return nil
	})
	return g.Wait()
}
