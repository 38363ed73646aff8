package state

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/vibetune/internal/store"
)

// snapshotKeep is how many snapshots survive a prune.
const snapshotKeep = 5

// SnapshotPersister saves the persisted subset as store snapshots.
type SnapshotPersister struct {
	repo   store.SnapshotRepo
	logger *zap.Logger
	seq    atomic.Int64
}

// NewSnapshotPersister returns a Persister backed by repo.
func NewSnapshotPersister(repo store.SnapshotRepo, logger *zap.Logger) *SnapshotPersister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotPersister{repo: repo, logger: logger.Named("persist")}
}

// Load returns the latest snapshot's subset, or nil when there is none or it
// was written by an unknown layout.
func (p *SnapshotPersister) Load(ctx context.Context) (*Persisted, error) {
	snap, err := p.repo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil, nil
	}
	p.seq.Store(snap.Sequence)
	if snap.Data.Version != store.SnapshotVersion {
		p.logger.Warn("ignoring snapshot with unknown version",
			zap.Int("version", snap.Data.Version),
			zap.Int("want", store.SnapshotVersion),
		)
		return nil, nil
	}
	return &Persisted{
		User:       snap.Data.User,
		Placement:  snap.Data.Placement,
		RetryQueue: snap.Data.RetryQueue,
	}, nil
}

func (p *SnapshotPersister) Save(ctx context.Context, st Persisted) error {
	snap := &store.Snapshot{
		Sequence:  p.seq.Add(1),
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:    store.SnapshotVersion,
			User:       st.User,
			Placement:  st.Placement,
			RetryQueue: st.RetryQueue,
		},
	}
	if err := p.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := p.repo.Prune(ctx, snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
