package layout

import (
	"strings"
	"testing"

	"github.com/abhisek/vibetune/internal/notify"
)

func TestSyncLabel(t *testing.T) {
	tests := []struct {
		online  bool
		pending int
		want    string
	}{
		{true, 0, "Online"},
		{true, 2, "Syncing 2"},
		{false, 0, "Offline"},
		{false, 3, "Offline (3)"},
	}
	for _, tt := range tests {
		if got := SyncLabel(tt.online, tt.pending); got != tt.want {
			t.Errorf("SyncLabel(%v, %d) = %q, want %q", tt.online, tt.pending, got, tt.want)
		}
	}
}

func TestRenderToastsKeepsNewest(t *testing.T) {
	var toasts []notify.Toast
	for _, title := range []string{"one", "two", "three", "four"} {
		toasts = append(toasts, notify.Toast{Title: title})
	}
	out := RenderToasts(toasts, 100)
	if strings.Contains(out, "one") {
		t.Error("oldest toast should be dropped")
	}
	for _, title := range []string{"two", "three", "four"} {
		if !strings.Contains(out, title) {
			t.Errorf("missing toast %q", title)
		}
	}
	if RenderToasts(nil, 100) != "" {
		t.Error("no toasts should render nothing")
	}
}

func TestRenderHeaderShowsLevelWhenSignedIn(t *testing.T) {
	out := RenderHeader("Chat", HeaderInfo{SignedIn: true, Level: "advanced", Online: true}, 100)
	if !strings.Contains(out, "Advanced") || !strings.Contains(out, "Online") {
		t.Errorf("header missing level or sync badge:\n%s", out)
	}
	out = RenderHeader("Welcome", HeaderInfo{Online: false}, 100)
	if strings.Contains(out, "Advanced") || !strings.Contains(out, "Offline") {
		t.Errorf("signed-out header wrong:\n%s", out)
	}
}
