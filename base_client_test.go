package tone3000

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeAPI stands in for the remote TONE3000 service. It records the order of
// calls it receives, the bearer tokens presented, and the body of any refresh
// request.
type fakeAPI struct {
	mu sync.Mutex

	// calls records "refresh" and "get" events in arrival order.
	calls []string
	// tokensSeen records the bearer token carried by each GET.
	tokensSeen []string
	// rejected tokens get a 401 on GET.
	rejected map[string]bool

	refreshStatus  int
	refreshSession Session
	lastRefreshReq map[string]string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		rejected:      map[string]bool{},
		refreshStatus: http.StatusOK,
	}
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(
		"/api/v1/auth/session/refresh",
		func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.calls = append(f.calls, "refresh")
			f.lastRefreshReq = map[string]string{}
			json.NewDecoder(r.Body).Decode(&f.lastRefreshReq) // nolint: errcheck
			if f.refreshStatus != http.StatusOK {
				w.WriteHeader(f.refreshStatus)
				return
			}
			json.NewEncoder(w).Encode(f.refreshSession) // nolint: errcheck
		},
	)
	mux.HandleFunc(
		"/api/v1/user",
		func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.calls = append(f.calls, "get")
			token := strings.TrimPrefix(
				r.Header.Get("Authorization"),
				"Bearer ",
			)
			f.tokensSeen = append(f.tokensSeen, token)
			if f.rejected[token] {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			fmt.Fprint(w, `{"id":1,"username":"test"}`)
		},
	)
	return mux
}

func (f *fakeAPI) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, call := range f.calls {
		if call == "refresh" {
			count++
		}
	}
	return count
}

const (
	testIssuedAtMs = int64(1_000_000)
	testExpiresIn  = int64(3600)
)

// testClient returns a client against the fake, with a session
// {A1, R1, 3600s} issued at testIssuedAtMs and the clock frozen at nowMs.
func testClient(
	t *testing.T,
	server *httptest.Server,
	nowMs int64,
) (*client, *MemoryTokenStore, *[]string) {
	store := NewMemoryTokenStore()
	err := store.Put(
		Session{
			AccessToken:  "A1",
			RefreshToken: "R1",
			ExpiresIn:    testExpiresIn,
		},
		time.UnixMilli(testIssuedAtMs),
	)
	require.NoError(t, err)

	reauthURLs := []string{}
	c := NewClient(
		server.URL,
		"test-app",
		"https://example.com/return",
		store,
		WithReauthHandler(func(authURL string) {
			reauthURLs = append(reauthURLs, authURL)
		}),
	).(*client)
	c.baseClient.now = func() time.Time {
		return time.UnixMilli(nowMs)
	}
	return c, store, &reauthURLs
}

func TestAuthenticatedFetchRequiresSession(t *testing.T) {
	api := newFakeAPI()
	server := httptest.NewServer(api.handler())
	defer server.Close()

	c, store, _ := testClient(t, server, testIssuedAtMs)
	require.NoError(t, store.Clear())

	_, err := c.authenticatedFetch(
		context.Background(),
		fmt.Sprintf("%s/api/v1/user", server.URL),
	)
	require.IsType(t, &ErrUnauthenticated{}, err)
	// No network call is made.
	require.Empty(t, api.calls)
}

func TestAuthenticatedFetchFreshToken(t *testing.T) {
	api := newFakeAPI()
	server := httptest.NewServer(api.handler())
	defer server.Close()

	// 10 seconds after issuance, well clear of the 30-second margin.
	c, _, _ := testClient(t, server, testIssuedAtMs+10_000)

	resp, err := c.authenticatedFetch(
		context.Background(),
		fmt.Sprintf("%s/api/v1/user", server.URL),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []string{"get"}, api.calls)
	require.Equal(t, []string{"A1"}, api.tokensSeen)
}

func TestAuthenticatedFetchMarginBoundary(t *testing.T) {
	testCases := []struct {
		name          string
		nowMs         int64
		expectRefresh bool
	}{
		{
			name:          "exactly at the margin",
			nowMs:         testIssuedAtMs + testExpiresIn*1000 - 30_000,
			expectRefresh: false,
		},
		{
			name:          "one millisecond past the margin",
			nowMs:         testIssuedAtMs + testExpiresIn*1000 - 29_999,
			expectRefresh: true,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			api := newFakeAPI()
			api.refreshSession = Session{
				AccessToken:  "A2",
				RefreshToken: "R2",
				ExpiresIn:    testExpiresIn,
			}
			server := httptest.NewServer(api.handler())
			defer server.Close()

			c, _, _ := testClient(t, server, testCase.nowMs)
			resp, err := c.authenticatedFetch(
				context.Background(),
				fmt.Sprintf("%s/api/v1/user", server.URL),
			)
			require.NoError(t, err)
			defer resp.Body.Close()
			if testCase.expectRefresh {
				require.Equal(t, 1, api.refreshCount())
			} else {
				require.Equal(t, 0, api.refreshCount())
			}
		})
	}
}

func TestAuthenticatedFetchProactiveRefresh(t *testing.T) {
	api := newFakeAPI()
	api.refreshSession = Session{
		AccessToken:  "A2",
		RefreshToken: "R2",
		ExpiresIn:    testExpiresIn,
	}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	// 3595 seconds after issuance: inside the 30-second window before the
	// 3600-second expiry.
	c, store, _ := testClient(t, server, testIssuedAtMs+3_595_000)

	resp, err := c.authenticatedFetch(
		context.Background(),
		fmt.Sprintf("%s/api/v1/user", server.URL),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Exactly one refresh, before the request was sent, carrying both stored
	// tokens.
	require.Equal(t, []string{"refresh", "get"}, api.calls)
	require.Equal(
		t,
		map[string]string{
			"refresh_token": "R1",
			"access_token":  "A1",
		},
		api.lastRefreshReq,
	)
	require.Equal(t, []string{"A2"}, api.tokensSeen)

	// The store was updated before the request went out.
	session, ok, err := store.Get()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "A2", session.AccessToken)
	require.Equal(t, "R2", session.RefreshToken)
	require.Equal(
		t,
		testIssuedAtMs+3_595_000+testExpiresIn*1000,
		session.ExpiresAt,
	)
}

func TestAuthenticatedFetchRetriesOnceOn401(t *testing.T) {
	api := newFakeAPI()
	api.rejected["A1"] = true
	api.refreshSession = Session{
		AccessToken:  "A2",
		RefreshToken: "R2",
		ExpiresIn:    testExpiresIn,
	}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	c, store, _ := testClient(t, server, testIssuedAtMs+10_000)

	resp, err := c.authenticatedFetch(
		context.Background(),
		fmt.Sprintf("%s/api/v1/user", server.URL),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []string{"get", "refresh", "get"}, api.calls)
	require.Equal(t, []string{"A1", "A2"}, api.tokensSeen)

	session, ok, err := store.Get()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "R2", session.RefreshToken)
}

func TestAuthenticatedFetchSecond401ReturnedAsIs(t *testing.T) {
	api := newFakeAPI()
	api.rejected["A1"] = true
	api.rejected["A2"] = true
	api.refreshSession = Session{
		AccessToken:  "A2",
		RefreshToken: "R2",
		ExpiresIn:    testExpiresIn,
	}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	c, _, _ := testClient(t, server, testIssuedAtMs+10_000)

	resp, err := c.authenticatedFetch(
		context.Background(),
		fmt.Sprintf("%s/api/v1/user", server.URL),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	// The second 401 comes back unmodified; no further retries, no second
	// refresh.
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, []string{"get", "refresh", "get"}, api.calls)
}

func TestAuthenticatedFetchNon401PassedThrough(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}),
	)
	defer server.Close()

	c, _, _ := testClient(t, server, testIssuedAtMs+10_000)

	resp, err := c.authenticatedFetch(
		context.Background(),
		fmt.Sprintf("%s/api/v1/user", server.URL),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRefreshFailureClearsSessionAndEscalates(t *testing.T) {
	api := newFakeAPI()
	api.refreshStatus = http.StatusUnauthorized
	server := httptest.NewServer(api.handler())
	defer server.Close()

	// Inside the proactive-refresh window; the failed refresh short-circuits
	// the whole call before any request is attempted.
	c, store, reauthURLs := testClient(t, server, testIssuedAtMs+3_595_000)

	_, err := c.authenticatedFetch(
		context.Background(),
		fmt.Sprintf("%s/api/v1/user", server.URL),
	)
	require.IsType(t, &ErrRefreshFailed{}, err)
	require.Equal(t, []string{"refresh"}, api.calls)

	_, ok, err := store.Get()
	require.NoError(t, err)
	require.False(t, ok)

	require.Len(t, *reauthURLs, 1)
	require.Contains(t, (*reauthURLs)[0], "/api/v1/auth?")
	require.Contains(
		t,
		(*reauthURLs)[0],
		"redirect_url=https%3A%2F%2Fexample.com%2Freturn",
	)
}

func TestRefreshUnavailable(t *testing.T) {
	api := newFakeAPI()
	server := httptest.NewServer(api.handler())
	defer server.Close()

	c, store, reauthURLs := testClient(t, server, testIssuedAtMs+10_000)
	require.NoError(t, store.Clear())

	// The store was emptied between the caller observing a stale token and
	// the refresh running.
	_, err := c.refreshSession(context.Background(), "A1")
	require.IsType(t, &ErrRefreshUnavailable{}, err)
	require.Equal(t, 0, api.refreshCount())
	require.Len(t, *reauthURLs, 1)
}

func TestRefreshDeduplicated(t *testing.T) {
	api := newFakeAPI()
	api.refreshSession = Session{
		AccessToken:  "A2",
		RefreshToken: "R2",
		ExpiresIn:    testExpiresIn,
	}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	c, _, _ := testClient(t, server, testIssuedAtMs+10_000)

	// Two callers observed the same stale token. The first refreshes; the
	// second finds a different, still-fresh token in the store and reuses it
	// without a second network call.
	token, err := c.refreshSession(context.Background(), "A1")
	require.NoError(t, err)
	require.Equal(t, "A2", token)
	token, err = c.refreshSession(context.Background(), "A1")
	require.NoError(t, err)
	require.Equal(t, "A2", token)
	require.Equal(t, 1, api.refreshCount())
}

func TestExecuteAPIRequestClassifiesFailure(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":"not found"}`)
		}),
	)
	defer server.Close()

	c, _, _ := testClient(t, server, testIssuedAtMs+10_000)

	_, err := c.Users().Current(context.Background())
	require.IsType(t, &ErrRequestFailed{}, err)
	require.Equal(
		t,
		http.StatusNotFound,
		err.(*ErrRequestFailed).StatusCode,
	)
}
