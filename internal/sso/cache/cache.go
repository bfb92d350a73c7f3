package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BerryBytes/ssoctl/internal/sso"
	"github.com/BerryBytes/ssoctl/models"
	"go.uber.org/zap"
)

var (
	_ sso.TokenCache        = (*TokenCache)(nil)
	_ sso.RegistrationCache = (*RegistrationCache)(nil)
)

// TokenCache stores token records keyed by the profile's token key.
type TokenCache struct {
	store  Store
	logger *zap.SugaredLogger
}

func NewTokenCache(store Store, logger *zap.SugaredLogger) *TokenCache {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &TokenCache{store: store, logger: logger}
}

func (c *TokenCache) Load(ctx context.Context, key string) (*models.CachedToken, error) {
	var record models.CachedToken
	found, err := load(ctx, c.store, TokenEntryName(key), &record, c.logger)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

func (c *TokenCache) Save(ctx context.Context, key string, record *models.CachedToken) error {
	if record == nil || record.Token == nil {
		return errors.New("token record is nil")
	}
	return save(ctx, c.store, TokenEntryName(key), record)
}

func (c *TokenCache) Clear(ctx context.Context, key string, reason string) error {
	c.logger.Debugf("clearing cached token (reason: %s)", reason)
	return c.store.Delete(ctx, TokenEntryName(key))
}

// RegistrationCache stores client registrations keyed by region and scopes.
type RegistrationCache struct {
	store  Store
	logger *zap.SugaredLogger
}

func NewRegistrationCache(store Store, logger *zap.SugaredLogger) *RegistrationCache {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RegistrationCache{store: store, logger: logger}
}

func (c *RegistrationCache) Load(ctx context.Context, key models.RegistrationKey) (*models.ClientRegistration, error) {
	name, err := RegistrationEntryName(key)
	if err != nil {
		return nil, err
	}
	var registration models.ClientRegistration
	found, err := load(ctx, c.store, name, &registration, c.logger)
	if err != nil || !found {
		return nil, err
	}
	return &registration, nil
}

func (c *RegistrationCache) Save(ctx context.Context, key models.RegistrationKey, registration *models.ClientRegistration) error {
	if registration == nil {
		return errors.New("client registration is nil")
	}
	name, err := RegistrationEntryName(key)
	if err != nil {
		return err
	}
	return save(ctx, c.store, name, registration)
}

func (c *RegistrationCache) Clear(ctx context.Context, key models.RegistrationKey, reason string) error {
	name, err := RegistrationEntryName(key)
	if err != nil {
		return err
	}
	c.logger.Debugf("clearing cached client registration (reason: %s)", reason)
	return c.store.Delete(ctx, name)
}

// TokenEntryName is the SHA-1 hex digest of the token key.
func TokenEntryName(key string) string {
	sum := sha1.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

// RegistrationEntryName hashes the JSON form of the key so that keys with the
// same region and scopes always map to the same entry.
func RegistrationEntryName(key models.RegistrationKey) (string, error) {
	data, err := json.Marshal(key)
	if err != nil {
		return "", fmt.Errorf("failed to encode registration key: %w", err)
	}
	sum := sha1.Sum(append([]byte("registration:"), data...))
	return hex.EncodeToString(sum[:]), nil
}

// load decodes the entry into out. An unreadable entry is treated as missing.
func load(ctx context.Context, store Store, name string, out any, logger *zap.SugaredLogger) (bool, error) {
	data, err := store.Read(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warnf("ignoring unreadable cache entry %s: %v", name, err)
		return false, nil
	}
	return true, nil
}

func save(ctx context.Context, store Store, name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	return store.Write(ctx, name, data)
}
