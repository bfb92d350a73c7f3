// Package cache persists SSO tokens and client registrations.
package cache

import (
	"context"
	"errors"
	"fmt"
)

const (
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

var ErrNotFound = errors.New("cache entry not found")

// Store is a named blob store. Read returns ErrNotFound for a missing entry
// and Delete of a missing entry succeeds.
type Store interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
}

// Options selects and configures a Store backend.
type Options struct {
	Backend        string
	Dir            string
	KeyringService string
}

func NewStore(opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Dir)
	case BackendKeyring:
		return NewKeyringStore(opts.KeyringService), nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}
