package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
}

var okReply = MockResponse{Content: json.RawMessage(`{"reply":"ok"}`)}

func fail(err error) MockResponse { return MockResponse{Err: err} }

func TestRetrySchedule(t *testing.T) {
	down := &ErrProviderUnavailable{Err: errors.New("down")}
	bad := &ErrInvalidResponse{Err: errors.New("missing reply")}

	tests := []struct {
		name      string
		script    []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{"first attempt", []MockResponse{okReply}, 1, false},
		{"transient then ok", []MockResponse{fail(down), okReply}, 2, false},
		{"rate limit then ok", []MockResponse{fail(&ErrRateLimit{RetryAfter: time.Millisecond}), okReply}, 2, false},
		{"exhausted", []MockResponse{fail(down), fail(down), fail(down), okReply}, 3, true},
		{"truncation not retried", []MockResponse{fail(&ErrMaxTokensExceeded{}), okReply}, 1, true},
		{"invalid retried once", []MockResponse{fail(bad), fail(bad), okReply}, 2, true},
		{"invalid then ok", []MockResponse{fail(bad), okReply}, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.script...)
			_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetryStopsOnCancel(t *testing.T) {
	mock := NewMockProvider(fail(&ErrProviderUnavailable{}), okReply)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, fastRetry()).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryBackoffBounds(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{MaxAttempts: 5, InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}}
	for attempt, base := range []time.Duration{100, 200, 300, 300} {
		base *= time.Millisecond
		got := r.backoff(attempt, errors.New("x"))
		lo, hi := time.Duration(float64(base)*0.8), time.Duration(float64(base)*1.2)
		if got < lo || got > hi {
			t.Errorf("attempt %d: backoff %v outside [%v, %v]", attempt, got, lo, hi)
		}
	}
	if got := r.backoff(0, &ErrRateLimit{RetryAfter: 7 * time.Second}); got != 7*time.Second {
		t.Errorf("retry-after ignored: %v", got)
	}
}

func TestRetryDelegatesIdentity(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" || providerName(p) != ProviderMock {
		t.Errorf("identity = %q/%q", p.ModelID(), providerName(p))
	}
}
