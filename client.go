package tone3000

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client is the top-level TONE3000 API client.
type Client interface {
	Sessions() SessionsClient
	Users() UsersClient
	Tones() TonesClient
	Models() ModelsClient
}

type client struct {
	*baseClient
	sessionsClient SessionsClient
	usersClient    UsersClient
	tonesClient    TonesClient
	modelsClient   ModelsClient
}

type ClientOption func(*baseClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(b *baseClient) {
		b.httpClient = httpClient
	}
}

// WithReauthHandler registers the handler invoked when the client can no
// longer mint access tokens and the user must re-authenticate.
func WithReauthHandler(handler ReauthHandler) ClientOption {
	return func(b *baseClient) {
		b.onReauthRequired = handler
	}
}

// WithLogger replaces the client's logger, which is a no-op by default.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(b *baseClient) {
		b.logger = logger
	}
}

// AllowInsecureConnections permits TLS connections to API servers with
// invalid certificates.
func AllowInsecureConnections() ClientOption {
	return func(b *baseClient) {
		b.httpClient = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true,
				},
			},
		}
	}
}

// NewClient returns a TONE3000 API client. apiAddress is the scheme and host
// of the API, appID identifies this application to the Select flow,
// redirectURL is the application's registered return URL, and tokens holds
// the current session. All resource clients share one token store and one
// refresh lifecycle.
func NewClient(
	apiAddress string,
	appID string,
	redirectURL string,
	tokens TokenStore,
	opts ...ClientOption,
) Client {
	baseClient := &baseClient{
		apiAddress:  apiAddress,
		appID:       appID,
		redirectURL: redirectURL,
		tokens:      tokens,
		httpClient:  http.DefaultClient,
		logger:      zerolog.Nop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(baseClient)
	}
	return &client{
		baseClient:     baseClient,
		sessionsClient: &sessionsClient{baseClient: baseClient},
		usersClient:    &usersClient{baseClient: baseClient},
		tonesClient:    &tonesClient{baseClient: baseClient},
		modelsClient:   &modelsClient{baseClient: baseClient},
	}
}

func (c *client) Sessions() SessionsClient {
	return c.sessionsClient
}

func (c *client) Users() UsersClient {
	return c.usersClient
}

func (c *client) Tones() TonesClient {
	return c.tonesClient
}

func (c *client) Models() ModelsClient {
	return c.modelsClient
}
