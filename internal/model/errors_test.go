package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"plain", errors.New("boom"), KindUnknown},
		{"direct", E(KindNetwork, "ping", errors.New("refused")), KindNetwork},
		{"wrapped", fmt.Errorf("load: %w", NotFoundf("get profile", "id %s", "u1")), KindNotFound},
		{"validation", Validationf("send", "empty message"), KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSentinelIs(t *testing.T) {
	err := fmt.Errorf("fetch: %w", NotFoundf("get profile", "no row"))
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected errors.Is(err, ErrNotFound)")
	}
	if errors.Is(err, ErrNetwork) {
		t.Error("did not expect errors.Is(err, ErrNetwork)")
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(E(KindNetwork, "insert message", errors.New("timeout"))) {
		t.Error("network errors should be retryable")
	}
	if !IsRetryable(errors.New("unclassified")) {
		t.Error("unclassified errors should be retryable")
	}
	if IsRetryable(Validationf("insert message", "bad sender")) {
		t.Error("validation errors should not be retryable")
	}
	if IsRetryable(nil) {
		t.Error("nil is not retryable")
	}
}

func TestLevelDisplayName(t *testing.T) {
	if got := LevelIntermediate.DisplayName(); got != "Intermediate" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := Level("").DisplayName(); got != "Not assessed" {
		t.Errorf("DisplayName(empty) = %q", got)
	}
	if Level("expert").Valid() {
		t.Error("expert should not be valid")
	}
}

func TestDetail(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{Validationf("sign up", "email is required"), "email is required"},
		{fmt.Errorf("submit: %w", Validationf("sign up", "too short")), "too short"},
		{errors.New("plain"), "plain"},
		{&Error{Kind: KindNetwork, Op: "ping"}, "ping: network"},
	}
	for _, tt := range tests {
		if got := Detail(tt.err); got != tt.want {
			t.Errorf("Detail(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
