package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/vibetune/ent/migrate"
	"github.com/abhisek/vibetune/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()
	var n int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWithPragmas(t *testing.T) {
	got := withPragmas("app.db")
	if !strings.HasPrefix(got, "app.db?_pragma=") {
		t.Errorf("withPragmas(app.db) = %q", got)
	}
	got = withPragmas("file:x?mode=memory")
	if !strings.HasPrefix(got, "file:x?mode=memory&_pragma=") {
		t.Errorf("withPragmas(file:x?mode=memory) = %q", got)
	}
	if !strings.Contains(got, "foreign_keys%28ON%29") {
		t.Errorf("foreign_keys pragma missing from %q", got)
	}
	if !strings.Contains(got, "_time_format=sqlite") {
		t.Errorf("time format missing from %q", got)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: SnapshotVersion,
			User: &model.Profile{
				ID:       "u-1",
				Username: "ana",
				Email:    "ana@example.com",
				Level:    model.LevelIntermediate,
			},
			Placement: model.PlacementProgress{Started: true, CurrentQuestion: 2, Completed: []int{0, 1}},
			RetryQueue: []model.Message{
				{ID: "m-1", ConversationID: "c-1", Sender: model.SenderUser, Type: model.MessageText, Content: "hola", Version: 1},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != SnapshotVersion {
		t.Errorf("data.version = %d, want %d", snap.Data.Version, SnapshotVersion)
	}
	if snap.Data.User == nil || snap.Data.User.Level != model.LevelIntermediate {
		t.Errorf("user = %+v, want intermediate profile", snap.Data.User)
	}
	if snap.Data.Placement.CurrentQuestion != 2 || len(snap.Data.Placement.Completed) != 2 {
		t.Errorf("placement = %+v", snap.Data.Placement)
	}
	if len(snap.Data.RetryQueue) != 1 || snap.Data.RetryQueue[0].ID != "m-1" {
		t.Errorf("retry queue = %+v", snap.Data.RetryQueue)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n := countRows(t, s, "snapshots"); n != 5 {
		t.Errorf("remaining snapshots = %d, want 5", n)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{Sequence: int64(i + 1), Timestamp: time.Now(), Data: SnapshotData{Version: 1}})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n := countRows(t, s, "snapshots"); n != 2 {
		t.Errorf("remaining snapshots = %d, want 2", n)
	}
}

func TestSnapshotDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Save(ctx, &Snapshot{Sequence: int64(i), Timestamp: time.Now(), Data: SnapshotData{Version: 1}}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	n, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted = %d, want 3", n)
	}
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Errorf("expected no snapshot after delete, got %+v", snap)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "coach-reply", InputTokens: 100, OutputTokens: 40, LatencyMs: 900, Success: true, RequestBody: `{"q":1}`, ResponseBody: `{"reply":"hi"}`},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "coach-reply", InputTokens: 200, OutputTokens: 60, LatencyMs: 1100, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "placement-level", InputTokens: 50, OutputTokens: 10, LatencyMs: 300, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Purpose != "placement-level" || got[0].Success {
		t.Errorf("newest event = %+v, want failed placement-level", got[0])
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("events not ordered newest first: %d, %d", got[0].Sequence, got[1].Sequence)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited len = %d, want 1", len(limited))
	}

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: got[1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || after[0].ID != got[0].ID {
		t.Errorf("after = %+v, want only the newest event", after)
	}

	oldest := got[2]
	one, err := repo.GetLLMEvent(ctx, oldest.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one == nil || one.RequestBody != `{"q":1}` || one.ResponseBody != `{"reply":"hi"}` {
		t.Errorf("get = %+v", one)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "coach-reply", InputTokens: 100, OutputTokens: 40, LatencyMs: 1000, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "coach-reply", InputTokens: 300, OutputTokens: 60, LatencyMs: 2000, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "placement-level", InputTokens: 50, OutputTokens: 10, LatencyMs: 500, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("len = %d, want 2", len(byPurpose))
	}
	coach := byPurpose[0]
	if coach.Purpose != "coach-reply" || coach.Calls != 2 || coach.InputTokens != 400 || coach.OutputTokens != 100 {
		t.Errorf("coach-reply usage = %+v", coach)
	}
	if coach.AvgLatencyMs != 1500 {
		t.Errorf("avg latency = %d, want 1500", coach.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[1].Model != "gpt-4o-mini" || byModel[1].Calls != 1 {
		t.Errorf("usage by model = %+v", byModel)
	}
}

func TestAnalyticsEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	payload, _ := json.Marshal(map[string]string{"level": "advanced"})
	if err := repo.AppendAnalytics(ctx, AnalyticsEventData{ProfileID: "u-1", EventType: "level_selected", Payload: payload}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendAnalytics(ctx, AnalyticsEventData{ProfileID: "u-1", EventType: "signed_out"}); err != nil {
		t.Fatalf("append without payload: %v", err)
	}

	got, err := repo.QueryAnalytics(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].EventType != "signed_out" || got[0].Payload != nil {
		t.Errorf("newest = %+v, want signed_out without payload", got[0])
	}
	var decoded map[string]string
	if err := json.Unmarshal(got[1].Payload, &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if decoded["level"] != "advanced" {
		t.Errorf("payload level = %q, want advanced", decoded["level"])
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m", Purpose: "p", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendAnalytics(ctx, AnalyticsEventData{EventType: "x"}); err != nil {
		t.Fatalf("append analytics: %v", err)
	}

	llm, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	an, _ := repo.QueryAnalytics(ctx, QueryOpts{})
	if len(llm) != 1 || len(an) != 1 {
		t.Fatalf("llm=%d analytics=%d, want 1 each", len(llm), len(an))
	}
	if an[0].Sequence != llm[0].Sequence+1 {
		t.Errorf("analytics seq = %d, llm seq = %d, want consecutive", an[0].Sequence, llm[0].Sequence)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range migrate.Tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table.Name,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table.Name, err)
		}
	}
}

func TestSnapshotLatestBreaksTimestampTies(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for i := 1; i <= 2; i++ {
		if err := repo.Save(ctx, &Snapshot{Sequence: int64(i), Timestamp: now, Data: SnapshotData{Version: i}}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 2 {
		t.Errorf("sequence = %d, want the later save", snap.Sequence)
	}
}

func TestQueryWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, kind := range []string{"a", "b", "c", "d"} {
		if err := repo.AppendAnalytics(ctx, AnalyticsEventData{EventType: kind}); err != nil {
			t.Fatalf("append %s: %v", kind, err)
		}
	}
	all, err := repo.QueryAnalytics(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("len = %d, want 4", len(all))
	}

	// all is newest first: d, c, b, a.
	mid, err := repo.QueryAnalytics(ctx, QueryOpts{After: all[3].Sequence, Before: all[0].Sequence})
	if err != nil {
		t.Fatalf("query window: %v", err)
	}
	if len(mid) != 2 || mid[0].EventType != "c" || mid[1].EventType != "b" {
		t.Errorf("window = %+v, want c then b", mid)
	}

	future, err := repo.QueryAnalytics(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("query from: %v", err)
	}
	if len(future) != 0 {
		t.Errorf("from the future = %d events, want 0", len(future))
	}
}
