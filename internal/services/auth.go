package services

import (
	"context"

	"github.com/wardydev/bri-finder-admin/internal/api"
	"github.com/wardydev/bri-finder-admin/internal/logging"
	"github.com/wardydev/bri-finder-admin/internal/models"
	"github.com/wardydev/bri-finder-admin/internal/session"
)

// AuthService handles login, registration, profile lookup and logout. The
// session credential it manages is read by the gateway on every request.
type AuthService struct {
	client  api.Client
	session *session.Session
	log     logging.Logger
}

func NewAuthService(client api.Client, sess *session.Session, log logging.Logger) *AuthService {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &AuthService{client: client, session: sess, log: log}
}

// Login authenticates and stores the obtained token in the session. The
// password buffer is not retained; callers should wipe it afterwards.
func (a *AuthService) Login(ctx context.Context, email string, password []byte) error {
	token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	a.session.Set(token)
	a.log.Info(ctx, "logged in", "email", email)
	return nil
}

// Register creates a new admin account. It does not log the account in; the
// operator proceeds to login afterwards.
func (a *AuthService) Register(ctx context.Context, name, email string, password []byte) error {
	return a.client.Register(ctx, name, email, string(password))
}

// Profile fetches the logged-in operator's account details.
func (a *AuthService) Profile(ctx context.Context) (models.Profile, error) {
	return a.client.Profile(ctx)
}

// LoggedIn reports whether a session token is present.
func (a *AuthService) LoggedIn() bool {
	return a.session.Active()
}

// Logout discards the session token, returning the client to the login
// prompt.
func (a *AuthService) Logout(ctx context.Context) {
	a.session.Clear()
	a.log.Info(ctx, "logged out")
}
