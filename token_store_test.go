package tone3000

import (
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStoreRoundTrip(t *testing.T) {
	store := NewMemoryTokenStore()

	_, ok, err := store.Get()
	require.NoError(t, err)
	require.False(t, ok)

	issuedAt := time.UnixMilli(1_000_000)
	require.NoError(
		t,
		store.Put(
			Session{
				AccessToken:  "A1",
				RefreshToken: "R1",
				ExpiresIn:    3600,
			},
			issuedAt,
		),
	)

	session, ok, err := store.Get()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "A1", session.AccessToken)
	require.Equal(t, "R1", session.RefreshToken)
	// expires_at is exactly issuance + expires_in * 1000.
	require.Equal(t, int64(1_000_000+3600*1000), session.ExpiresAt)
}

func TestMemoryTokenStoreReplacesPriorSession(t *testing.T) {
	store := NewMemoryTokenStore()
	issuedAt := time.UnixMilli(1_000_000)
	require.NoError(
		t,
		store.Put(
			Session{AccessToken: "A1", RefreshToken: "R1", ExpiresIn: 3600},
			issuedAt,
		),
	)
	require.NoError(
		t,
		store.Put(
			Session{AccessToken: "A2", RefreshToken: "R2", ExpiresIn: 7200},
			issuedAt.Add(time.Hour),
		),
	)

	session, ok, err := store.Get()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "A2", session.AccessToken)
	require.Equal(t, "R2", session.RefreshToken)
	require.Equal(
		t,
		issuedAt.Add(time.Hour).UnixMilli()+7200*1000,
		session.ExpiresAt,
	)
}

func TestMemoryTokenStoreClear(t *testing.T) {
	store := NewMemoryTokenStore()
	require.NoError(
		t,
		store.Put(
			Session{AccessToken: "A1", RefreshToken: "R1", ExpiresIn: 3600},
			time.Now(),
		),
	)
	require.NoError(t, store.Clear())
	_, ok, err := store.Get()
	require.NoError(t, err)
	require.False(t, ok)
	// Idempotent.
	require.NoError(t, store.Clear())
}

func TestStoredSessionPartialIsAbsent(t *testing.T) {
	testCases := []struct {
		name    string
		session StoredSession
	}{
		{
			name:    "empty",
			session: StoredSession{},
		},
		{
			name: "access token only",
			session: StoredSession{
				AccessToken: "A1",
			},
		},
		{
			name: "no refresh token",
			session: StoredSession{
				AccessToken: "A1",
				ExpiresAt:   4_600_000,
			},
		},
		{
			name: "no expiry",
			session: StoredSession{
				AccessToken:  "A1",
				RefreshToken: "R1",
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.False(t, testCase.session.complete())
		})
	}
}

func TestFileTokenStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := &FileTokenStore{
		dir:  dir,
		file: path.Join(dir, "credentials"),
	}

	_, ok, err := store.Get()
	require.NoError(t, err)
	require.False(t, ok)

	issuedAt := time.UnixMilli(1_000_000)
	require.NoError(
		t,
		store.Put(
			Session{AccessToken: "A1", RefreshToken: "R1", ExpiresIn: 3600},
			issuedAt,
		),
	)

	// A second store over the same file sees the same session.
	reopened := &FileTokenStore{
		dir:  dir,
		file: path.Join(dir, "credentials"),
	}
	session, ok, err := reopened.Get()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "A1", session.AccessToken)
	require.Equal(t, int64(4_600_000), session.ExpiresAt)

	require.NoError(t, reopened.Clear())
	_, ok, err = store.Get()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFileTokenStoreAPIKeyCache(t *testing.T) {
	dir := t.TempDir()
	store := &FileTokenStore{
		dir:  dir,
		file: path.Join(dir, "credentials"),
	}

	require.NoError(t, store.CacheAPIKey("key-123"))
	require.NoError(
		t,
		store.Put(
			Session{AccessToken: "A1", RefreshToken: "R1", ExpiresIn: 3600},
			time.Now(),
		),
	)

	// The cached api_key survives session writes and clears.
	require.NoError(t, store.Clear())
	apiKey, err := store.APIKey()
	require.NoError(t, err)
	require.Equal(t, "key-123", apiKey)
}
