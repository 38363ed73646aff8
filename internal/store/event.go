package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/vibetune/ent"
)

// sequenceCounter hands out one increasing sequence shared by every event
// table, so LLM calls and analytics events can be ordered against each other.
// ent has no database-side counters, so this one is raw SQL: the RETURNING
// clause makes each increment atomic and the mutex serializes callers within
// the process.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on the ent client and the shared sequence.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// Every event table carries these columns from the event mixin.
const (
	fieldSequence  = "sequence"
	fieldTimestamp = "timestamp"
)

// window turns the sequence and time bounds in opts into predicates for any
// event table.
func window[P ~func(*entsql.Selector)](opts QueryOpts) []P {
	var ps []P
	if opts.After > 0 {
		ps = append(ps, P(entsql.FieldGT(fieldSequence, opts.After)))
	}
	if opts.Before > 0 {
		ps = append(ps, P(entsql.FieldLT(fieldSequence, opts.Before)))
	}
	if !opts.From.IsZero() {
		ps = append(ps, P(entsql.FieldGTE(fieldTimestamp, opts.From.UTC())))
	}
	if !opts.To.IsZero() {
		ps = append(ps, P(entsql.FieldLTE(fieldTimestamp, opts.To.UTC())))
	}
	return ps
}
