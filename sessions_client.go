package tone3000

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// SessionsClient manages the authentication lease and the redirect entry
// points for both integration flows.
type SessionsClient interface {
	// Create exchanges an api_key obtained from the auth return trip for a
	// new session and persists it, replacing any prior session.
	Create(ctx context.Context, apiKey string) (Session, error)
	// Refresh forces a session refresh regardless of expiry.
	Refresh(ctx context.Context) error
	// Delete destroys the local session. The remote lease is left to expire
	// on its own.
	Delete(ctx context.Context) error
	// AuthURL returns the browser entry point for login, carrying the
	// application's registered return URL.
	AuthURL(otpOnly bool) string
	// SelectURL returns the browser entry point for the Select flow. The
	// remote service redirects back with a tone_url query parameter.
	SelectURL() string
}

type sessionsClient struct {
	*baseClient
}

func (s *sessionsClient) Create(
	ctx context.Context,
	apiKey string,
) (Session, error) {
	session := Session{}
	err := s.executeAPIRequest(
		ctx,
		apiRequest{
			method: http.MethodPost,
			path:   "auth/session",
			reqBodyObj: struct {
				APIKey string `json:"api_key"`
			}{
				APIKey: apiKey,
			},
			successCode: http.StatusOK,
			respObj:     &session,
			anonymous:   true,
		},
	)
	if err != nil {
		return session, err
	}
	if err := s.tokens.Put(session, s.now()); err != nil {
		return session, errors.Wrap(err, "error persisting session")
	}
	return session, nil
}

func (s *sessionsClient) Refresh(ctx context.Context) error {
	session, ok, err := s.tokens.Get()
	if err != nil {
		return errors.Wrap(err, "error reading token store")
	}
	if !ok {
		return NewErrUnauthenticated()
	}
	_, err = s.refreshSession(ctx, session.AccessToken)
	return err
}

func (s *sessionsClient) Delete(context.Context) error {
	return s.tokens.Clear()
}

func (s *sessionsClient) AuthURL(otpOnly bool) string {
	return s.authURL(otpOnly)
}

func (s *sessionsClient) SelectURL() string {
	return s.selectURL()
}
