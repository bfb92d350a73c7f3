package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const DefaultKeyringService = "ssoctl"

// KeyringStore keeps entries in the OS keyring, one secret per entry.
type KeyringStore struct {
	service string
}

func NewKeyringStore(service string) *KeyringStore {
	if service == "" {
		service = DefaultKeyringService
	}
	return &KeyringStore{service: service}
}

func (k *KeyringStore) Read(_ context.Context, name string) ([]byte, error) {
	data, err := keyring.Get(k.service, name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s from keyring: %w", name, err)
	}
	return []byte(data), nil
}

func (k *KeyringStore) Write(_ context.Context, name string, data []byte) error {
	if err := keyring.Set(k.service, name, string(data)); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", name, err)
	}
	return nil
}

func (k *KeyringStore) Delete(_ context.Context, name string) error {
	if err := keyring.Delete(k.service, name); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", name, err)
	}
	return nil
}
