package tone3000

import "time"

// refreshMargin is how long before a session's expiry the client refreshes
// proactively. Fixed; not configurable per call.
const refreshMargin = 30 * time.Second

// Session is the authentication lease granted by the TONE3000 API: a
// short-lived access token, the long-lived refresh token used solely to mint
// new access tokens, and the access token's lifetime in seconds from
// issuance.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// StoredSession is a Session as persisted by a TokenStore, with the lifetime
// resolved to an absolute expiry in milliseconds since the epoch.
type StoredSession struct {
	AccessToken  string `json:"tone3000_access_token"`
	RefreshToken string `json:"tone3000_refresh_token"`
	ExpiresAt    int64  `json:"tone3000_expires_at"`
}

// complete indicates whether all fields of the stored session are present. A
// partial session (e.g., an access token without a refresh token) is treated
// as absent.
func (s StoredSession) complete() bool {
	return s.AccessToken != "" && s.RefreshToken != "" && s.ExpiresAt != 0
}

// expiresSoon indicates whether the session is past, or within refreshMargin
// of, its expiry at the given instant.
func (s StoredSession) expiresSoon(now time.Time) bool {
	return now.UnixMilli() > s.ExpiresAt-refreshMargin.Milliseconds()
}
