package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/vibetune/ent"
	"github.com/abhisek/vibetune/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo on the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := toJSONMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp.UTC()).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Latest orders by id: two saves within one clock tick share a timestamp.
func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return fromEntSnapshot(s)
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// The newest snapshot outside the keep window marks the cut.
	cut, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldID)).
		Offset(keep).
		FirstID(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}

	if _, err := r.client.Snapshot.Delete().
		Where(snapshot.IDLTE(cut)).
		Exec(ctx); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.Snapshot.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete snapshots: %w", err)
	}
	return n, nil
}

// toJSONMap round-trips data through JSON into the generic map the ent JSON
// column stores.
func toJSONMap(data SnapshotData) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromEntSnapshot(s *ent.Snapshot) (*Snapshot, error) {
	raw, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot data: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      data,
	}, nil
}
