// Package telemetry records SSO session bookkeeping and refresh outcomes.
package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultSessionFile is where session start times are kept between runs.
func DefaultSessionFile() string {
	return filepath.Join(xdg.StateHome, "ssoctl", "sessions.yaml")
}

type sessionFile struct {
	Sessions map[string]time.Time `yaml:"sessions"`
}

// SessionStore maps a token cache key to the time its session was created.
// The file is read once at construction; writes go through immediately.
type SessionStore struct {
	fs     afero.Fs
	path   string
	logger *zap.SugaredLogger

	mu       sync.Mutex
	sessions map[string]time.Time
}

// NewSessionStore loads the session file. A missing or unreadable file
// starts an empty store.
func NewSessionStore(fs afero.Fs, path string, logger *zap.SugaredLogger) *SessionStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if path == "" {
		path = DefaultSessionFile()
	}
	s := &SessionStore{
		fs:       fs,
		path:     path,
		logger:   logger,
		sessions: make(map[string]time.Time),
	}
	if err := s.load(); err != nil {
		logger.Debugf("starting with empty session store: %v", err)
	}
	return s
}

func (s *SessionStore) load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var file sessionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}
	for k, v := range file.Sessions {
		s.sessions[k] = v
	}
	return nil
}

func (s *SessionStore) SessionStart(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, ok := s.sessions[key]
	return start, ok
}

// SetSessionStart records start for key and flushes the file.
func (s *SessionStore) SetSessionStart(key string, start time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[key] = start.UTC()
	return s.flush()
}

// Forget drops key from the store.
func (s *SessionStore) Forget(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[key]; !ok {
		return nil
	}
	delete(s.sessions, key)
	return s.flush()
}

func (s *SessionStore) flush() error {
	data, err := yaml.Marshal(sessionFile{Sessions: s.sessions})
	if err != nil {
		return fmt.Errorf("failed to encode session file: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
