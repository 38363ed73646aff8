// Package local implements backend.Backend on the local SQLite store, so the
// client works without a hosted service.
package local

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/vibetune/ent"
	"github.com/abhisek/vibetune/ent/authsession"
	"github.com/abhisek/vibetune/ent/credential"
	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/model"
)

const (
	minPasswordLen = 6
	sessionTTL     = 30 * 24 * time.Hour
)

var errBadCredentials = errors.New("invalid login credentials")

// Backend stores accounts, sessions and conversations in SQLite.
type Backend struct {
	client *ent.Client
	logger *zap.Logger
	subs   backend.Subscribers

	// now is swapped in tests.
	now func() time.Time
	// cost is the bcrypt cost; tests lower it.
	cost int
}

var _ backend.Backend = (*Backend)(nil)

// New returns a Backend on client, whose schema must already be migrated.
func New(client *ent.Client, logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{
		client: client,
		logger: logger.Named("backend.local"),
		now:    func() time.Time { return time.Now().UTC() },
		cost:   bcrypt.DefaultCost,
	}
}

// withTx runs fn in a transaction, rolling back when fn fails.
func (b *Backend) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := b.client.Tx(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			b.logger.Warn("rollback", zap.Error(rerr))
		}
		return err
	}
	return tx.Commit()
}

func (b *Backend) SignUp(ctx context.Context, email, password, username string) (*model.Session, error) {
	const op = "sign up"
	email = normalizeEmail(email)
	if err := validateCredentials(op, email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return nil, model.E(model.KindUnknown, op, fmt.Errorf("hash password: %w", err))
	}

	id := uuid.NewString()
	var sess *model.Session
	err = b.withTx(ctx, func(tx *ent.Tx) error {
		taken, err := tx.Credential.Query().
			Where(credential.Email(email)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if taken {
			return model.Validationf(op, "an account for %s already exists", email)
		}

		if _, err := tx.Profile.Create().
			SetID(id).
			SetUsername(username).
			SetEmail(email).
			SetCreatedAt(b.now()).
			Save(ctx); err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		if _, err := tx.Credential.Create().
			SetProfileID(id).
			SetEmail(email).
			SetPasswordHash(string(hash)).
			Save(ctx); err != nil {
			return fmt.Errorf("insert credentials: %w", err)
		}

		sess, err = b.createSession(ctx, tx, id, email)
		return err
	})
	if err != nil {
		return nil, classify(op, err)
	}

	b.logger.Info("account created", zap.String("profile_id", id))
	b.subs.Notify(sess)
	return sess, nil
}

func (b *Backend) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	const op = "sign in"
	email = normalizeEmail(email)
	if err := validateCredentials(op, email, password); err != nil {
		return nil, err
	}

	cred, err := b.client.Credential.Query().
		Where(credential.Email(email)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, model.E(model.KindUnauthorized, op, errBadCredentials)
	}
	if err != nil {
		return nil, classify(op, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, model.E(model.KindUnauthorized, op, errBadCredentials)
	}

	var sess *model.Session
	err = b.withTx(ctx, func(tx *ent.Tx) error {
		sess, err = b.createSession(ctx, tx, cred.ProfileID, email)
		return err
	})
	if err != nil {
		return nil, classify(op, err)
	}

	b.subs.Notify(sess)
	return sess, nil
}

// createSession replaces any earlier sessions: one account is signed in at a
// time.
func (b *Backend) createSession(ctx context.Context, tx *ent.Tx, profileID, email string) (*model.Session, error) {
	if _, err := tx.AuthSession.Delete().Exec(ctx); err != nil {
		return nil, fmt.Errorf("clear sessions: %w", err)
	}

	now := b.now()
	sess := &model.Session{
		AccessToken:  uuid.NewString(),
		RefreshToken: uuid.NewString(),
		UserID:       profileID,
		Email:        email,
		ExpiresAt:    now.Add(sessionTTL),
	}
	_, err := tx.AuthSession.Create().
		SetID(sess.AccessToken).
		SetRefreshToken(sess.RefreshToken).
		SetProfileID(profileID).
		SetExpiresAt(sess.ExpiresAt).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

func (b *Backend) SignOut(ctx context.Context) error {
	if _, err := b.client.AuthSession.Delete().Exec(ctx); err != nil {
		return classify("sign out", err)
	}
	b.subs.Notify(nil)
	return nil
}

func (b *Backend) CurrentSession(ctx context.Context) (*model.Session, error) {
	s, err := b.client.AuthSession.Query().
		Where(authsession.ExpiresAtGT(b.now())).
		WithProfile().
		Order(ent.Desc(authsession.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("current session", err)
	}

	sess := &model.Session{
		AccessToken:  s.ID,
		RefreshToken: s.RefreshToken,
		UserID:       s.ProfileID,
		ExpiresAt:    s.ExpiresAt,
	}
	if p := s.Edges.Profile; p != nil {
		sess.Email = p.Email
	}
	return sess, nil
}

func (b *Backend) Subscribe(fn func(*model.Session)) func() {
	return b.subs.Add(fn)
}

// Ping runs the cheapest query the schema allows.
func (b *Backend) Ping(ctx context.Context) error {
	if _, err := b.client.Profile.Query().Exist(ctx); err != nil {
		return model.E(model.KindNetwork, "ping", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(op, email, password string) error {
	if email == "" {
		return model.Validationf(op, "email is required")
	}
	if len(password) < minPasswordLen {
		return model.Validationf(op, "password must be at least %d characters", minPasswordLen)
	}
	return nil
}

// classify maps ent and database errors onto the error taxonomy. Errors that
// are already classified pass through.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var classified *model.Error
	if errors.As(err, &classified) {
		return err
	}
	msg := err.Error()
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return model.E(model.KindNetwork, op, err)
	case ent.IsNotFound(err):
		return model.E(model.KindNotFound, op, err)
	case ent.IsValidationError(err), ent.IsConstraintError(err):
		return model.E(model.KindValidation, op, err)
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "sql: database is closed"):
		return model.E(model.KindNetwork, op, err)
	}
	return model.E(model.KindUnknown, op, err)
}
