package tone3000

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ReauthHandler is invoked when the client can no longer mint access tokens
// and the user must be sent back through the authentication entry point. The
// argument is the fully-formed auth URL, including the application's
// registered return URL. The client never drives a user agent itself.
type ReauthHandler func(authURL string)

type baseClient struct {
	apiAddress       string
	appID            string
	redirectURL      string
	tokens           TokenStore
	httpClient       *http.Client
	onReauthRequired ReauthHandler
	logger           zerolog.Logger

	// refreshMu serializes session refreshes so concurrent callers observing
	// a stale token trigger a single refresh between them.
	refreshMu sync.Mutex

	now func() time.Time
}

func (b *baseClient) authURL(otpOnly bool) string {
	q := url.Values{}
	q.Set("redirect_url", b.redirectURL)
	if otpOnly {
		q.Set("otp_only", "true")
	}
	return fmt.Sprintf("%s/api/v1/auth?%s", b.apiAddress, q.Encode())
}

func (b *baseClient) selectURL() string {
	q := url.Values{}
	q.Set("app_id", b.appID)
	q.Set("redirect_url", b.redirectURL)
	return fmt.Sprintf("%s/api/v1/select?%s", b.apiAddress, q.Encode())
}

func (b *baseClient) apiURL(path string, queryParams map[string]string) string {
	apiURL := fmt.Sprintf("%s/api/v1/%s", b.apiAddress, path)
	if len(queryParams) == 0 {
		return apiURL
	}
	q := url.Values{}
	for k, v := range queryParams {
		q.Set(k, v)
	}
	return fmt.Sprintf("%s?%s", apiURL, q.Encode())
}

// authenticatedFetch performs a GET against the given URL carrying a
// non-expired bearer token whenever one can be obtained. A session nearing
// expiry is refreshed before the request is sent; a 401 response triggers
// exactly one refresh-and-retry cycle. Any other response, including a 401 on
// the retry, is returned to the caller as-is. When refresh itself fails, the
// call fails instead of returning a response.
func (b *baseClient) authenticatedFetch(
	ctx context.Context,
	rawURL string,
) (*http.Response, error) {
	session, ok, err := b.tokens.Get()
	if err != nil {
		return nil, errors.Wrap(err, "error reading token store")
	}
	if !ok {
		return nil, NewErrUnauthenticated()
	}

	accessToken := session.AccessToken
	if session.expiresSoon(b.now()) {
		if accessToken, err = b.refreshSession(ctx, accessToken); err != nil {
			return nil, err
		}
	}

	resp, err := b.submitGet(ctx, rawURL, accessToken)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	if accessToken, err = b.refreshSession(ctx, accessToken); err != nil {
		return nil, err
	}
	return b.submitGet(ctx, rawURL, accessToken)
}

func (b *baseClient) submitGet(
	ctx context.Context,
	rawURL string,
	accessToken string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating request GET %s", rawURL)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))
	req.Header.Set("Content-Type", "application/json")
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking API")
	}
	return resp, nil
}

// refreshSession exchanges the stored refresh token for a new session,
// persists it, and returns the new access token. staleAccessToken is the
// token the caller observed as expiring or rejected; if, once the refresh
// lock is acquired, the store already holds a different, still-fresh token,
// another caller's refresh is reused rather than repeated.
//
// When no refresh token is available or the refresh endpoint rejects the
// credentials, the store is cleared and re-authentication is requested. That
// is the sole recovery path; there is no further retry.
func (b *baseClient) refreshSession(
	ctx context.Context,
	staleAccessToken string,
) (string, error) {
	b.refreshMu.Lock()
	defer b.refreshMu.Unlock()

	session, ok, err := b.tokens.Get()
	if err != nil {
		return "", errors.Wrap(err, "error reading token store")
	}
	if ok &&
		session.AccessToken != staleAccessToken &&
		!session.expiresSoon(b.now()) {
		return session.AccessToken, nil
	}
	if !ok || session.RefreshToken == "" {
		b.escalateReauth()
		return "", NewErrRefreshUnavailable()
	}

	b.logger.Debug().Msg("refreshing session")

	reqBodyBytes, err := json.Marshal(
		struct {
			RefreshToken string `json:"refresh_token"`
			AccessToken  string `json:"access_token"`
		}{
			RefreshToken: session.RefreshToken,
			AccessToken:  session.AccessToken,
		},
	)
	if err != nil {
		return "", errors.Wrap(err, "error marshaling refresh request body")
	}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/api/v1/auth/session/refresh", b.apiAddress),
		bytes.NewBuffer(reqBodyBytes),
	)
	if err != nil {
		return "", errors.Wrap(err, "error creating refresh request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "error invoking session refresh endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b.logger.Debug().
			Int("status", resp.StatusCode).
			Msg("session refresh rejected")
		b.escalateReauth()
		return "", NewErrRefreshFailed(resp.StatusCode)
	}

	respBodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "error reading refresh response body")
	}
	newSession := Session{}
	if err := json.Unmarshal(respBodyBytes, &newSession); err != nil {
		return "", errors.Wrap(err, "error unmarshaling refresh response body")
	}
	if err := b.tokens.Put(newSession, b.now()); err != nil {
		return "", errors.Wrap(err, "error persisting refreshed session")
	}
	return newSession.AccessToken, nil
}

func (b *baseClient) escalateReauth() {
	if err := b.tokens.Clear(); err != nil {
		b.logger.Error().Err(err).Msg("error clearing token store")
	}
	if b.onReauthRequired != nil {
		b.onReauthRequired(b.authURL(false))
	}
}

func (b *baseClient) executeAPIRequest(
	ctx context.Context,
	apiReq apiRequest,
) error {
	var resp *http.Response
	var err error
	if apiReq.anonymous {
		resp, err = b.submitAPIRequest(ctx, apiReq)
	} else {
		resp, err = b.authenticatedFetch(
			ctx,
			b.apiURL(apiReq.path, apiReq.queryParams),
		)
	}
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	successCode := apiReq.successCode
	if successCode == 0 {
		successCode = http.StatusOK
	}
	if resp.StatusCode != successCode {
		bodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading error response body")
		}
		return NewErrRequestFailed(resp.StatusCode, bodyBytes)
	}

	if apiReq.respObj != nil {
		respBodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if err := json.Unmarshal(respBodyBytes, apiReq.respObj); err != nil {
			return errors.Wrap(err, "error unmarshaling response body")
		}
	}
	return nil
}

func (b *baseClient) submitAPIRequest(
	ctx context.Context,
	apiReq apiRequest,
) (*http.Response, error) {
	var reqBodyBytes []byte
	if apiReq.reqBodyObj != nil {
		var err error
		if reqBodyBytes, err = json.Marshal(apiReq.reqBodyObj); err != nil {
			return nil, errors.Wrap(err, "error marshaling request body")
		}
	}
	req, err := http.NewRequestWithContext(
		ctx,
		apiReq.method,
		b.apiURL(apiReq.path, apiReq.queryParams),
		bytes.NewBuffer(reqBodyBytes),
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			apiReq.method,
			apiReq.path,
		)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking API")
	}
	return resp, nil
}
