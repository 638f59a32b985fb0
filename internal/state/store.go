// Package state persists the settings the tool writes at runtime: the sync
// cursor and the Bingebase credentials. Values are plain strings, as Kodi
// add-on settings are, and an absent key reads as "".
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// Setting keys.
const (
	KeyLastSync    = "last_sync_timestamp"
	KeyAccessToken = "access_token"
	KeyWebhookURL  = "webhook_url"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

type fileContent struct {
	Settings  map[string]string `json:"settings"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Store is a JSON settings file guarded by an in-process mutex and a
// cross-process file lock.
type Store struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

// Open prepares the store at path, creating its directory. The file itself is
// created on the first write.
func Open(path string) (*Store, error) {
	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("state file path must be absolute (got %q)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, error) {
	all, err := s.All()
	if err != nil {
		return "", err
	}
	return all[key], nil
}

// All returns a copy of every stored setting.
func (s *Store) All() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock state file: %w", err)
	}
	defer s.lock.Unlock() //nolint:errcheck // unlock failure leaves nothing to recover

	content, err := s.read()
	if err != nil {
		return nil, err
	}
	return content.Settings, nil
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	return s.Update(map[string]string{key: value})
}

// Update applies every value in one write. An empty value removes the key.
func (s *Store) Update(values map[string]string) error {
	return s.modify(func(settings map[string]string) {
		for k, v := range values {
			if v == "" {
				delete(settings, k)
				continue
			}
			settings[k] = v
		}
	})
}

// Delete removes keys.
func (s *Store) Delete(keys ...string) error {
	return s.modify(func(settings map[string]string) {
		for _, k := range keys {
			delete(settings, k)
		}
	})
}

func (s *Store) modify(apply func(map[string]string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock state file: %w", err)
	}
	defer s.lock.Unlock() //nolint:errcheck // unlock failure leaves nothing to recover

	content, err := s.read()
	if err != nil {
		return err
	}
	apply(content.Settings)
	content.UpdatedAt = time.Now().UTC()
	return s.write(content)
}

func (s *Store) read() (fileContent, error) {
	content := fileContent{Settings: map[string]string{}}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return content, nil
	}
	if err != nil {
		return content, fmt.Errorf("read state file: %w", err)
	}
	if len(data) == 0 {
		return content, nil
	}

	if err := json.Unmarshal(data, &content); err != nil {
		return content, fmt.Errorf("decode state file %s: %w", s.path, err)
	}
	if content.Settings == nil {
		content.Settings = map[string]string{}
	}
	return content, nil
}

func (s *Store) write(content fileContent) error {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
