package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/vibetune/internal/model"
)

const (
	testAnonKey = "anon-key"
	userOne     = "6f1c2b4e-8d3a-4f5e-9a7b-1c2d3e4f5a61"
	userTwo     = "0b9e8d7c-6a5f-4e3d-8c2b-1a0f9e8d7c62"
)

func newTestServer(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", testAnonKey, WithHTTPClient(srv.Client())), srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func tokenBody(userID string) map[string]any {
	return map[string]any{
		"access_token":  "tok-" + userID,
		"refresh_token": "ref-" + userID,
		"token_type":    "bearer",
		"expires_in":    3600,
		"user":          map[string]any{"id": userID, "email": "ana@example.com"},
	}
}

func TestSignInStoresSessionAndNotifies(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/v1/token" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("grant_type"); got != "password" {
			t.Errorf("grant_type = %q, want password", got)
		}
		if got := r.Header.Get("apikey"); got != testAnonKey {
			t.Errorf("apikey = %q", got)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "ana@example.com" || body["password"] != "secret1" {
			t.Errorf("body = %v", body)
		}
		writeJSON(w, http.StatusOK, tokenBody(userOne))
	})

	var notified *model.Session
	c.Subscribe(func(s *model.Session) { notified = s })

	sess, err := c.SignIn(context.Background(), " ana@example.com ", "secret1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if sess.UserID != userOne || sess.AccessToken != "tok-"+userOne {
		t.Errorf("session = %+v", sess)
	}
	if sess.ExpiresAt.Before(time.Now()) {
		t.Errorf("expires at %v, want in the future", sess.ExpiresAt)
	}
	if notified == nil || notified.UserID != userOne {
		t.Errorf("notified = %+v", notified)
	}
	cur, _ := c.CurrentSession(context.Background())
	if cur == nil || cur.AccessToken != "tok-"+userOne {
		t.Errorf("current = %+v", cur)
	}
}

func TestSignInBadCredentialsIsUnauthorized(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "invalid_grant",
			"error_description": "Invalid login credentials",
		})
	})

	_, err := c.SignIn(context.Background(), "ana@example.com", "nope")
	if !errors.Is(err, model.ErrUnauthorized) {
		t.Errorf("err = %v, want unauthorized", err)
	}
	if got := model.Detail(err); got == "" {
		t.Error("detail is empty")
	}
}

func TestSignInEmptyPasswordIsUnauthorized(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	_, err := c.SignIn(context.Background(), "ana@example.com", "")
	if !errors.Is(err, model.ErrUnauthorized) {
		t.Errorf("err = %v, want unauthorized", err)
	}
}

func TestSignUpSendsUsernameMetadata(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/signup" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body struct {
			Data map[string]string `json:"data"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Data["username"] != "ana" {
			t.Errorf("username metadata = %v", body.Data)
		}
		writeJSON(w, http.StatusOK, tokenBody(userTwo))
	})

	sess, err := c.SignUp(context.Background(), "ana@example.com", "secret1", "ana")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if sess == nil || sess.UserID != userTwo {
		t.Errorf("session = %+v", sess)
	}
}

func TestSignUpAwaitingConfirmation(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": userTwo, "email": "x@example.com"})
	})

	sess, err := c.SignUp(context.Background(), "x@example.com", "secret1", "x")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if sess != nil {
		t.Errorf("session = %+v, want nil until confirmed", sess)
	}
}

func TestSignUpRejectedIsValidation(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"code": 422,
			"msg":  "Password should be at least 6 characters",
		})
	})

	_, err := c.SignUp(context.Background(), "x@example.com", "123", "x")
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
	if got := model.Detail(err); got != "status 422: Password should be at least 6 characters" {
		t.Errorf("detail = %q", got)
	}
}

func TestAuthenticatedRequestsUseAccessToken(t *testing.T) {
	var gotAuth, gotKey string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			writeJSON(w, http.StatusOK, tokenBody(userOne))
		case "/rest/v1/profiles":
			gotAuth = r.Header.Get("Authorization")
			gotKey = r.Header.Get("apikey")
			if got := r.URL.Query().Get("id"); got != "eq."+userOne {
				t.Errorf("id filter = %q", got)
			}
			writeJSON(w, http.StatusOK, []map[string]any{{
				"id": userOne, "username": "ana", "email": "ana@example.com",
				"level": "beginner", "placement_test_completed": true,
				"created_at": "2026-01-02T03:04:05Z",
			}})
		}
	})
	ctx := context.Background()
	if _, err := c.SignIn(ctx, "ana@example.com", "secret1"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	p, err := c.GetProfile(ctx, userOne)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if gotAuth != "Bearer tok-"+userOne {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotKey != testAnonKey {
		t.Errorf("apikey = %q", gotKey)
	}
	if p.Level != model.LevelBeginner || !p.PlacementTestCompleted {
		t.Errorf("profile = %+v", p)
	}
}

func TestAnonymousRequestsUseAnonKey(t *testing.T) {
	var gotAuth string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, []any{})
	})

	if _, err := c.ListConversations(context.Background(), userOne); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotAuth != "Bearer "+testAnonKey {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestGetProfileNoRowsIsNotFound(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})

	_, err := c.GetProfile(context.Background(), "missing")
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestRestErrorCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		want   error
	}{
		{"expired jwt", 401, map[string]string{"code": "PGRST301", "message": "JWT expired"}, model.ErrUnauthorized},
		{"row level security", 403, map[string]string{"code": "42501", "message": "permission denied"}, model.ErrUnauthorized},
		{"unique violation", 409, map[string]string{"code": "23505", "message": "duplicate key"}, model.ErrValidation},
		{"bad filter", 400, map[string]string{"code": "PGRST100", "message": "failed to parse filter"}, model.ErrValidation},
		{"single row", 406, map[string]string{"code": "PGRST116", "message": "no rows"}, model.ErrNotFound},
		{"database down", 503, map[string]string{"code": "PGRST000", "message": "could not connect"}, model.ErrNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})
			_, err := c.ListMessages(context.Background(), "c-1")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGatewayErrorIsNetwork(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := c.ListMessages(context.Background(), "c-1")
	if !errors.Is(err, model.ErrNetwork) {
		t.Errorf("err = %v, want network", err)
	}
}

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   model.Kind
	}{
		{401, model.KindUnauthorized},
		{403, model.KindUnauthorized},
		{404, model.KindNotFound},
		{400, model.KindValidation},
		{409, model.KindValidation},
		{422, model.KindValidation},
		{500, model.KindNetwork},
		{503, model.KindNetwork},
		{418, model.KindUnknown},
	}
	for _, tt := range tests {
		if got := kindForStatus(tt.status); got != tt.want {
			t.Errorf("kindForStatus(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestTransportFailureIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, testAnonKey)
	if err := c.Ping(context.Background()); !errors.Is(err, model.ErrNetwork) {
		t.Errorf("ping err = %v, want network", err)
	}
	if _, err := c.ListMessages(context.Background(), "c-1"); !errors.Is(err, model.ErrNetwork) {
		t.Errorf("list err = %v, want network", err)
	}
}

func TestCanceledContextStopsRequest(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.ListMessages(ctx, "c-1")
	if !errors.Is(err, model.ErrNetwork) {
		t.Errorf("err = %v, want network", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("request outlived its context")
	}
}

func TestInsertMessageUpsertsOnID(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/messages" || r.Method != http.MethodPost {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Prefer"); got != "resolution=merge-duplicates,return=minimal" {
			t.Errorf("Prefer = %q", got)
		}
		if got := r.URL.Query().Get("on_conflict"); got != "id" {
			t.Errorf("on_conflict = %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		var m model.Message
		if err := json.Unmarshal(raw, &m); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if m.Version != 1 || m.CreatedAt.IsZero() {
			t.Errorf("message = %+v, want defaults filled", m)
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := c.InsertMessage(context.Background(), model.Message{
		ID: "m-1", ConversationID: "c-1", Sender: model.SenderUser, Type: model.MessageText, Content: "hi",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := c.InsertMessage(context.Background(), model.Message{Content: "x"}); !errors.Is(err, model.ErrValidation) {
		t.Errorf("missing ids err = %v, want validation", err)
	}
}

func TestCreateConversationReturnsRow(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Prefer"); got != "return=representation" {
			t.Errorf("Prefer = %q", got)
		}
		var conv map[string]any
		json.NewDecoder(r.Body).Decode(&conv)
		if conv["id"] == "" || conv["started_at"] == nil {
			t.Errorf("body = %v, want id and started_at filled", conv)
		}
		writeJSON(w, http.StatusCreated, []map[string]any{conv})
	})

	conv, err := c.CreateConversation(context.Background(), model.Conversation{
		ProfileID: userOne, Topic: "Placement Test", IsPlacementTest: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if conv.ID == "" || !conv.IsPlacementTest || conv.StartedAt.IsZero() {
		t.Errorf("conversation = %+v", conv)
	}
}

func TestListConversationsOrder(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("profile_id") != "eq."+userOne || q.Get("order") != "started_at.desc.nullslast" {
			t.Errorf("query = %v", q)
		}
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "c-2", "profile_id": userOne, "topic": "General Practice", "started_at": "2026-02-02T00:00:00Z"},
			{"id": "c-1", "profile_id": userOne, "topic": "Placement Test", "is_placement_test": true, "started_at": "2026-02-01T00:00:00Z"},
		})
	})

	convs, err := c.ListConversations(context.Background(), userOne)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(convs) != 2 || convs[0].ID != "c-2" || !convs[1].IsPlacementTest {
		t.Errorf("conversations = %+v", convs)
	}
}

func TestRateMessageRange(t *testing.T) {
	var posted int
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/feedback_rating" {
			t.Errorf("path = %s", r.URL.Path)
		}
		posted++
		w.WriteHeader(http.StatusCreated)
	})
	ctx := context.Background()

	if err := c.RateMessage(ctx, model.FeedbackRating{MessageID: "m-1", ProfileID: userOne, Rating: 6}); !errors.Is(err, model.ErrValidation) {
		t.Errorf("err = %v, want validation", err)
	}
	if err := c.RateMessage(ctx, model.FeedbackRating{MessageID: "m-1", ProfileID: userOne, Rating: 4}); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if posted != 1 {
		t.Errorf("posted %d ratings, want 1", posted)
	}
}

func TestSignOutClearsSessionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			writeJSON(w, http.StatusOK, tokenBody(userOne))
		case "/auth/v1/logout":
			if got := r.Header.Get("Authorization"); got != "Bearer tok-"+userOne {
				t.Errorf("logout Authorization = %q", got)
			}
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()
	ctx := context.Background()

	c := New(srv.URL, testAnonKey, WithSessionFile(path))
	if _, err := c.SignIn(ctx, "ana@example.com", "secret1"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	// A fresh client picks the session up from disk.
	restored := New(srv.URL, testAnonKey, WithSessionFile(path))
	cur, _ := restored.CurrentSession(ctx)
	if cur == nil || cur.UserID != userOne {
		t.Fatalf("restored session = %+v", cur)
	}

	if err := restored.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	again := New(srv.URL, testAnonKey, WithSessionFile(path))
	if cur, _ := again.CurrentSession(ctx); cur != nil {
		t.Errorf("session survived sign out: %+v", cur)
	}
}

func TestSignOutExpiredTokenStillClears(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			writeJSON(w, http.StatusOK, tokenBody(userOne))
		case "/auth/v1/logout":
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "invalid JWT"})
		}
	})
	ctx := context.Background()
	if _, err := c.SignIn(ctx, "ana@example.com", "secret1"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	if err := c.SignOut(ctx); err != nil {
		t.Errorf("sign out: %v", err)
	}
	if cur, _ := c.CurrentSession(ctx); cur != nil {
		t.Errorf("session = %+v, want cleared", cur)
	}
}
