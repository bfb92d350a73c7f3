package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

const lockTimeout = 5 * time.Second

// DefaultDir is the cache directory used when none is configured.
func DefaultDir() string {
	return filepath.Join(xdg.CacheHome, "ssoctl", "sso")
}

// Locker serializes writers of a single cache file across processes.
// Release drops whatever Lock left behind for a deleted entry.
type Locker interface {
	Lock(ctx context.Context, path string) (unlock func(), err error)
	Release(path string) error
}

// FlockLocker takes an advisory lock on a sibling ".lock" file.
type FlockLocker struct{}

func (FlockLocker) Lock(ctx context.Context, path string) (func(), error) {
	fileLock := flock.New(path + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to acquire lock: timeout after %v", lockTimeout)
	}
	return func() { _ = fileLock.Unlock() }, nil
}

func (FlockLocker) Release(path string) error {
	if err := os.Remove(path + ".lock"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// MutexLocker only serializes writers within the process. It is meant for
// file systems that are not backed by the OS, such as afero.MemMapFs.
type MutexLocker struct {
	mu sync.Mutex
}

func (m *MutexLocker) Lock(_ context.Context, _ string) (func(), error) {
	m.mu.Lock()
	return m.mu.Unlock, nil
}

func (m *MutexLocker) Release(_ string) error {
	return nil
}

type FileStoreOption func(*FileStore)

func WithFs(fs afero.Fs) FileStoreOption {
	return func(s *FileStore) {
		s.fs = fs
	}
}

func WithLocker(locker Locker) FileStoreOption {
	return func(s *FileStore) {
		s.locker = locker
	}
}

// FileStore keeps one JSON file per entry in a private directory.
type FileStore struct {
	dir    string
	fs     afero.Fs
	locker Locker
}

func NewFileStore(dir string, opts ...FileStoreOption) (*FileStore, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	s := &FileStore{
		dir:    dir,
		fs:     afero.NewOsFs(),
		locker: FlockLocker{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.fs.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return s, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Read(_ context.Context, name string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return data, nil
}

// Write replaces the entry atomically: the data goes to a temporary file that
// is renamed over the target while the lock is held.
func (s *FileStore) Write(ctx context.Context, name string, data []byte) error {
	path := s.path(name)
	unlock, err := s.locker.Lock(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("failed to replace cache file: %w", err)
	}
	return nil
}

// Delete removes the entry and, once unlocked, its lock file.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	path := s.path(name)
	unlock, err := s.locker.Lock(ctx, path)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		unlock()
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	unlock()
	return s.locker.Release(path)
}
