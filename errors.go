package tone3000

import "fmt"

// ErrUnauthenticated indicates an authorized call was attempted with no
// session in the token store. No request is sent; the caller must complete a
// login flow first.
type ErrUnauthenticated struct{}

func NewErrUnauthenticated() *ErrUnauthenticated {
	return &ErrUnauthenticated{}
}

func (e *ErrUnauthenticated) Error() string {
	return "Not authenticated. Please log in to continue."
}

// ErrRefreshUnavailable indicates a session refresh was required but no
// refresh token was available to perform it.
type ErrRefreshUnavailable struct{}

func NewErrRefreshUnavailable() *ErrRefreshUnavailable {
	return &ErrRefreshUnavailable{}
}

func (e *ErrRefreshUnavailable) Error() string {
	return "No refresh token available. Please log in again to continue."
}

// ErrRefreshFailed indicates the session-refresh endpoint rejected the stored
// credentials. The local session has been cleared and re-authentication has
// been requested.
type ErrRefreshFailed struct {
	StatusCode int
}

func NewErrRefreshFailed(statusCode int) *ErrRefreshFailed {
	return &ErrRefreshFailed{
		StatusCode: statusCode,
	}
}

func (e *ErrRefreshFailed) Error() string {
	return fmt.Sprintf(
		"Token refresh failed with status %d. Please log in again to continue.",
		e.StatusCode,
	)
}

// ErrRequestFailed indicates the API returned a non-2xx status other than a
// 401 handled by the retry cycle. The status code is surfaced for the caller
// to branch on.
type ErrRequestFailed struct {
	StatusCode int
	Body       []byte
}

func NewErrRequestFailed(statusCode int, body []byte) *ErrRequestFailed {
	return &ErrRequestFailed{
		StatusCode: statusCode,
		Body:       body,
	}
}

func (e *ErrRequestFailed) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("Received %d from the API.", e.StatusCode)
	}
	return fmt.Sprintf("Received %d from the API: %s", e.StatusCode, e.Body)
}
