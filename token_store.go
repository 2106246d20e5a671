package tone3000

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"
	"sync"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// TokenStore is the sole owner of the current session. Get reports a session
// only when every field is present; Put atomically replaces any prior
// session, recomputing the absolute expiry from the issuance time; Clear
// removes all fields unconditionally and is idempotent.
type TokenStore interface {
	Get() (StoredSession, bool, error)
	Put(session Session, issuedAt time.Time) error
	Clear() error
}

// MemoryTokenStore is a process-local TokenStore. It is safe for concurrent
// use.
type MemoryTokenStore struct {
	mu      sync.Mutex
	session StoredSession
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (m *MemoryTokenStore) Get() (StoredSession, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.session.complete() {
		return StoredSession{}, false, nil
	}
	return m.session, true, nil
}

func (m *MemoryTokenStore) Put(session Session, issuedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = StoredSession{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    issuedAt.UnixMilli() + session.ExpiresIn*1000,
	}
	return nil
}

func (m *MemoryTokenStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = StoredSession{}
	return nil
}

// FileTokenStore persists the session as JSON in a credentials file under the
// user's home directory so it survives process restarts. It also caches the
// incidental api_key obtained from the auth return trip, which is not part of
// the session proper.
type FileTokenStore struct {
	mu   sync.Mutex
	dir  string
	file string
}

type fileCredentials struct {
	StoredSession
	APIKey string `json:"tone3000_api_key,omitempty"`
}

// NewFileTokenStore returns a FileTokenStore rooted at ~/.tone3000.
func NewFileTokenStore() (*FileTokenStore, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return nil, errors.Wrap(err, "error locating user's home directory")
	}
	dir := path.Join(homeDir, ".tone3000")
	return &FileTokenStore{
		dir:  dir,
		file: path.Join(dir, "credentials"),
	}, nil
}

func (f *FileTokenStore) Get() (StoredSession, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	creds, err := f.read()
	if err != nil {
		return StoredSession{}, false, err
	}
	if !creds.StoredSession.complete() {
		return StoredSession{}, false, nil
	}
	return creds.StoredSession, true, nil
}

func (f *FileTokenStore) Put(session Session, issuedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	creds, err := f.read()
	if err != nil {
		return err
	}
	creds.StoredSession = StoredSession{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    issuedAt.UnixMilli() + session.ExpiresIn*1000,
	}
	return f.write(creds)
}

func (f *FileTokenStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	creds, err := f.read()
	if err != nil {
		return err
	}
	creds.StoredSession = StoredSession{}
	return f.write(creds)
}

// CacheAPIKey remembers the api_key most recently carried back from the auth
// return trip.
func (f *FileTokenStore) CacheAPIKey(apiKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	creds, err := f.read()
	if err != nil {
		return err
	}
	creds.APIKey = apiKey
	return f.write(creds)
}

// APIKey returns the cached api_key, if any.
func (f *FileTokenStore) APIKey() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	creds, err := f.read()
	if err != nil {
		return "", err
	}
	return creds.APIKey, nil
}

func (f *FileTokenStore) read() (fileCredentials, error) {
	creds := fileCredentials{}
	credsBytes, err := ioutil.ReadFile(f.file)
	if err != nil {
		if os.IsNotExist(err) {
			return creds, nil
		}
		return creds, errors.Wrapf(err, "error reading credentials file at %s", f.file)
	}
	if err := json.Unmarshal(credsBytes, &creds); err != nil {
		return creds, errors.Wrapf(
			err,
			"error parsing credentials file at %s",
			f.file,
		)
	}
	return creds, nil
}

func (f *FileTokenStore) write(creds fileCredentials) error {
	if _, err := os.Stat(f.dir); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of %s",
				f.dir,
			)
		}
		if err := os.MkdirAll(f.dir, 0700); err != nil {
			return errors.Wrapf(err, "error creating %s", f.dir)
		}
	}
	credsBytes, err := json.Marshal(creds)
	if err != nil {
		return errors.Wrap(err, "error marshaling credentials")
	}
	if err := ioutil.WriteFile(f.file, credsBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", f.file)
	}
	return nil
}
