// Package supabase implements backend.Backend against a hosted Supabase
// project: GoTrue for identity and PostgREST for the data tables.
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/postgrest-go"
	"go.uber.org/zap"

	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/model"
)

// Client talks to one Supabase project.
type Client struct {
	baseURL   string
	anonKey   string
	auth      gotrue.Client
	transport http.RoundTripper
	timeout   time.Duration
	logger    *zap.Logger

	// sessionFile, when set, keeps the session across restarts.
	sessionFile string

	mu      sync.RWMutex
	session *model.Session
	subs    backend.Subscribers
}

var _ backend.Backend = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sends requests through hc's transport and timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc.Transport != nil {
			c.transport = hc.Transport
		}
		if hc.Timeout > 0 {
			c.timeout = hc.Timeout
		}
	}
}

// WithSessionFile persists the session as JSON at path.
func WithSessionFile(path string) Option {
	return func(c *Client) { c.sessionFile = path }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a Client for the project at baseURL, authenticating requests
// with the project's anon key.
func New(baseURL, anonKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		anonKey:   anonKey,
		transport: http.DefaultTransport,
		timeout:   30 * time.Second,
		logger:    zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	c.auth = gotrue.New("", anonKey).WithCustomGoTrueURL(c.baseURL + "/auth/v1")
	c.logger = c.logger.Named("backend.supabase")
	c.session = c.loadSession()
	return c
}

// contextTransport binds every request to ctx. Neither client library takes
// a context, so each call gets its own transport instead.
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t contextTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(r.WithContext(t.ctx))
}

func (c *Client) httpClient(ctx context.Context) http.Client {
	return http.Client{
		Transport: contextTransport{ctx: ctx, base: c.transport},
		Timeout:   c.timeout,
	}
}

// gotrue returns an identity client bound to ctx. token, when set, is sent
// as the bearer.
func (c *Client) gotrue(ctx context.Context, token string) gotrue.Client {
	auth := c.auth.WithClient(c.httpClient(ctx))
	if token != "" {
		auth = auth.WithToken(token)
	}
	return auth
}

// rest returns a PostgREST client bound to ctx, authenticated as the signed-in
// user when there is one.
func (c *Client) rest(ctx context.Context) *postgrest.Client {
	pc := postgrest.NewClient(c.baseURL+"/rest/v1", "public", map[string]string{
		"apikey":        c.anonKey,
		"Authorization": "Bearer " + c.bearer(),
	})
	if pc.ClientError == nil {
		pc.Transport.Parent = contextTransport{ctx: ctx, base: c.transport}
	}
	return pc
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session != nil && c.session.AccessToken != "" {
		return c.session.AccessToken
	}
	return c.anonKey
}

// apiError is a GoTrue error body. Older servers use error and
// error_description, newer ones msg or message.
type apiError struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e apiError) text() string {
	for _, s := range []string{e.Message, e.Msg, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// kindForStatus maps a GoTrue HTTP status onto the error taxonomy.
func kindForStatus(status int) model.Kind {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return model.KindUnauthorized
	case status == http.StatusNotFound:
		return model.KindNotFound
	case status == http.StatusBadRequest, status == http.StatusConflict, status == http.StatusUnprocessableEntity:
		return model.KindValidation
	case status >= 500:
		return model.KindNetwork
	}
	return model.KindUnknown
}

// kindForCode maps a PostgREST error code. PostgREST reports its own
// failures as PGRSTnnn and passes database SQLSTATEs through.
func kindForCode(code string) model.Kind {
	switch {
	case code == "PGRST116":
		return model.KindNotFound
	case code == "PGRST301", code == "PGRST302", code == "42501":
		return model.KindUnauthorized
	case strings.HasPrefix(code, "PGRST0"):
		// The API could not reach its database.
		return model.KindNetwork
	case strings.HasPrefix(code, "PGRST1"), strings.HasPrefix(code, "PGRST2"),
		strings.HasPrefix(code, "22"), strings.HasPrefix(code, "23"):
		return model.KindValidation
	}
	return model.KindUnknown
}

var (
	// gotrue-go reports rejections as "response status code N: <body>".
	gotrueStatus = regexp.MustCompile(`(?s)^response status code (\d+)(?::\s*(.*))?$`)
	// postgrest-go reports rejections as "(CODE) message".
	postgrestCode = regexp.MustCompile(`(?s)^\(([^)]*)\) (.*)$`)
)

// transportError reports whether err never got an HTTP answer.
func transportError(err error) bool {
	var uerr *url.Error
	return errors.As(err, &uerr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

// authError classifies an error from the identity client.
func (c *Client) authError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case transportError(err):
		c.logger.Warn("request failed", zap.String("op", op), zap.Error(err))
		return model.E(model.KindNetwork, op, err)
	case errors.Is(err, types.ErrInvalidTokenRequest):
		return model.E(model.KindValidation, op, err)
	}

	m := gotrueStatus.FindStringSubmatch(err.Error())
	if m == nil {
		return model.E(model.KindUnknown, op, err)
	}
	status, _ := strconv.Atoi(m[1])
	var apiErr apiError
	_ = json.Unmarshal([]byte(m[2]), &apiErr)
	kind := kindForStatus(status)
	msg := apiErr.text()
	if msg == "" {
		msg = http.StatusText(status)
	}
	c.logger.Debug("request rejected",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("kind", kind.String()),
	)
	return model.E(kind, op, fmt.Errorf("status %d: %s", status, msg))
}

// restError classifies an error from the PostgREST client.
func (c *Client) restError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case transportError(err):
		c.logger.Warn("request failed", zap.String("op", op), zap.Error(err))
		return model.E(model.KindNetwork, op, err)
	case strings.HasPrefix(err.Error(), "error parsing error response"):
		// A non-JSON error body comes from a gateway, not PostgREST.
		return model.E(model.KindNetwork, op, err)
	}

	m := postgrestCode.FindStringSubmatch(err.Error())
	if m == nil {
		return model.E(model.KindUnknown, op, err)
	}
	kind := kindForCode(m[1])
	c.logger.Debug("request rejected",
		zap.String("op", op),
		zap.String("code", m[1]),
		zap.String("kind", kind.String()),
	)
	return model.E(kind, op, errors.New(m[2]))
}

func (c *Client) setSession(sess *model.Session) {
	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()
	c.saveSession(sess)
	c.subs.Notify(sess)
}

func (c *Client) loadSession() *model.Session {
	if c.sessionFile == "" {
		return nil
	}
	data, err := os.ReadFile(c.sessionFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.logger.Warn("read session file", zap.Error(err))
		}
		return nil
	}
	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		c.logger.Warn("decode session file", zap.Error(err))
		return nil
	}
	if sess.AccessToken == "" || (!sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt)) {
		return nil
	}
	return &sess
}

func (c *Client) saveSession(sess *model.Session) {
	if c.sessionFile == "" {
		return
	}
	if sess == nil {
		if err := os.Remove(c.sessionFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			c.logger.Warn("remove session file", zap.Error(err))
		}
		return
	}
	data, err := json.Marshal(sess)
	if err != nil {
		c.logger.Warn("encode session", zap.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.sessionFile), 0o700); err != nil {
		c.logger.Warn("create session dir", zap.Error(err))
		return
	}
	if err := os.WriteFile(c.sessionFile, data, 0o600); err != nil {
		c.logger.Warn("write session file", zap.Error(err))
	}
}
