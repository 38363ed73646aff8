package supabase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/supabase-community/gotrue-go/types"

	"github.com/abhisek/vibetune/internal/model"
)

func toSession(s types.Session) *model.Session {
	if s.AccessToken == "" {
		return nil
	}
	var exp time.Time
	switch {
	case s.ExpiresAt > 0:
		exp = time.Unix(s.ExpiresAt, 0).UTC()
	case s.ExpiresIn > 0:
		exp = time.Now().UTC().Add(time.Duration(s.ExpiresIn) * time.Second)
	}
	return &model.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		UserID:       s.User.ID.String(),
		Email:        s.User.Email,
		ExpiresAt:    exp,
	}
}

// SignUp returns a nil session without error when the project requires email
// confirmation before the first sign-in.
func (c *Client) SignUp(ctx context.Context, email, password, username string) (*model.Session, error) {
	const op = "sign up"
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, model.Validationf(op, "email is required")
	}

	res, err := c.gotrue(ctx, "").Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     map[string]any{"username": username},
	})
	if err != nil {
		return nil, c.authError(op, err)
	}

	sess := toSession(res.Session)
	if sess == nil {
		return nil, nil
	}
	c.setSession(sess)
	return sess, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	const op = "sign in"
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, model.Validationf(op, "email is required")
	}

	res, err := c.gotrue(ctx, "").SignInWithEmailPassword(email, password)
	if err != nil {
		err = c.authError(op, err)
		// GoTrue answers bad credentials with 400 invalid_grant.
		if model.KindOf(err) == model.KindValidation {
			return nil, model.E(model.KindUnauthorized, op, err)
		}
		return nil, err
	}

	sess := toSession(res.Session)
	if sess == nil {
		return nil, model.E(model.KindUnknown, op, errors.New("token response carried no access token"))
	}
	c.setSession(sess)
	return sess, nil
}

// SignOut always clears the local session, even when the server call fails.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.RLock()
	var token string
	if c.session != nil {
		token = c.session.AccessToken
	}
	c.mu.RUnlock()

	var err error
	if token != "" {
		err = c.authError("sign out", c.gotrue(ctx, token).Logout())
	}
	c.setSession(nil)
	if model.KindOf(err) == model.KindUnauthorized {
		return nil
	}
	return err
}

func (c *Client) CurrentSession(ctx context.Context) (*model.Session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil, nil
	}
	if !c.session.ExpiresAt.IsZero() && time.Now().After(c.session.ExpiresAt) {
		return nil, nil
	}
	s := *c.session
	return &s, nil
}

func (c *Client) Subscribe(fn func(*model.Session)) func() {
	return c.subs.Add(fn)
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.gotrue(ctx, "").HealthCheck()
	return c.authError("ping", err)
}
