package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/abhisek/vibetune/internal/model"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotVersion is the current layout of SnapshotData.
const SnapshotVersion = 1

// SnapshotData is the slice of session state that survives restarts.
type SnapshotData struct {
	Version    int                     `json:"version"`
	User       *model.Profile          `json:"user,omitempty"`
	Placement  model.PlacementProgress `json:"placement_test_progress"`
	RetryQueue []model.Message         `json:"retry_queue,omitempty"`
}

// Snapshot represents a point-in-time capture of the persisted session state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages persisted session snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// DeleteAll removes every snapshot.
	DeleteAll(ctx context.Context) (int, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for a purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// AnalyticsEventData is a client-side usage event.
type AnalyticsEventData struct {
	ProfileID string
	EventType string
	Payload   json.RawMessage
}

// AnalyticsEventRecord is a stored analytics event.
type AnalyticsEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnalyticsEventData
}

// EventRepo provides append and query access to local events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// AppendAnalytics records a usage event.
	AppendAnalytics(ctx context.Context, data AnalyticsEventData) error

	// QueryAnalytics returns analytics events, newest first.
	QueryAnalytics(ctx context.Context, opts QueryOpts) ([]AnalyticsEventRecord, error)
}
