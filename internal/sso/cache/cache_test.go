package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BerryBytes/ssoctl/internal/sso/cache"
	"github.com/BerryBytes/ssoctl/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	cache.Store
	err error
}

func (f failingStore) Read(context.Context, string) ([]byte, error) {
	return nil, f.err
}

func testToken() *models.CachedToken {
	return &models.CachedToken{
		Token: &models.SSOToken{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresAt:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Registration: &models.ClientRegistration{
			ClientID:     "client",
			ClientSecret: "secret",
			ExpiresAt:    time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
			IssuerURL:    "https://example.awsapps.com/start",
		},
		Region:   "us-east-1",
		StartURL: "https://example.awsapps.com/start",
	}
}

func TestTokenCache(t *testing.T) {
	ctx := context.Background()
	tokens := cache.NewTokenCache(cache.NewMemoryStore(), nil)

	record, err := tokens.Load(ctx, "profile")
	require.NoError(t, err)
	assert.Nil(t, record)

	require.NoError(t, tokens.Save(ctx, "profile", testToken()))

	record, err = tokens.Load(ctx, "profile")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "access", record.Token.AccessToken)
	assert.Equal(t, "client", record.Registration.ClientID)
	assert.True(t, record.Token.ExpiresAt.Equal(testToken().Token.ExpiresAt))

	other, err := tokens.Load(ctx, "other")
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, tokens.Clear(ctx, "profile", "test"))
	record, err = tokens.Load(ctx, "profile")
	require.NoError(t, err)
	assert.Nil(t, record)

	assert.NoError(t, tokens.Clear(ctx, "profile", "already cleared"))
}

func TestTokenCache_SaveRejectsEmptyRecord(t *testing.T) {
	tokens := cache.NewTokenCache(cache.NewMemoryStore(), nil)

	assert.Error(t, tokens.Save(context.Background(), "profile", nil))
	assert.Error(t, tokens.Save(context.Background(), "profile", &models.CachedToken{}))
}

func TestTokenCache_CorruptEntryIsMissing(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	require.NoError(t, store.Write(ctx, cache.TokenEntryName("profile"), []byte("{not json")))

	record, err := cache.NewTokenCache(store, nil).Load(ctx, "profile")
	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestTokenCache_StoreError(t *testing.T) {
	readErr := errors.New("disk on fire")
	tokens := cache.NewTokenCache(failingStore{Store: cache.NewMemoryStore(), err: readErr}, nil)

	_, err := tokens.Load(context.Background(), "profile")
	assert.ErrorIs(t, err, readErr)
}

func TestRegistrationCache(t *testing.T) {
	ctx := context.Background()
	registrations := cache.NewRegistrationCache(cache.NewMemoryStore(), nil)

	key := models.RegistrationKey{Region: "us-east-1", Scopes: []string{"sso:account:access"}}
	registration := testToken().Registration

	loaded, err := registrations.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, registrations.Save(ctx, key, registration))

	sameKey := models.RegistrationKey{Region: "us-east-1", Scopes: []string{"sso:account:access"}}
	loaded, err = registrations.Load(ctx, sameKey)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "client", loaded.ClientID)
	assert.Equal(t, models.RegistrationModern, loaded.Variant())

	otherRegion := models.RegistrationKey{Region: "eu-west-1", Scopes: []string{"sso:account:access"}}
	loaded, err = registrations.Load(ctx, otherRegion)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, registrations.Clear(ctx, key, "test"))
	loaded, err = registrations.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRegistrationEntryName(t *testing.T) {
	tests := []struct {
		name  string
		a, b  models.RegistrationKey
		equal bool
	}{
		{
			name:  "same region and scopes",
			a:     models.RegistrationKey{Region: "us-east-1", Scopes: []string{"a", "b"}},
			b:     models.RegistrationKey{Region: "us-east-1", Scopes: []string{"a", "b"}},
			equal: true,
		},
		{
			name:  "different scope order",
			a:     models.RegistrationKey{Region: "us-east-1", Scopes: []string{"a", "b"}},
			b:     models.RegistrationKey{Region: "us-east-1", Scopes: []string{"b", "a"}},
			equal: false,
		},
		{
			name:  "different region",
			a:     models.RegistrationKey{Region: "us-east-1"},
			b:     models.RegistrationKey{Region: "us-west-2"},
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := cache.RegistrationEntryName(tt.a)
			require.NoError(t, err)
			b, err := cache.RegistrationEntryName(tt.b)
			require.NoError(t, err)

			assert.Equal(t, tt.equal, a == b)
		})
	}
}

func TestNewStore(t *testing.T) {
	tests := []struct {
		name    string
		opts    cache.Options
		wantErr bool
	}{
		{name: "memory", opts: cache.Options{Backend: cache.BackendMemory}},
		{name: "keyring", opts: cache.Options{Backend: cache.BackendKeyring}},
		{name: "file", opts: cache.Options{Backend: cache.BackendFile, Dir: t.TempDir()}},
		{name: "unknown", opts: cache.Options{Backend: "floppy"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := cache.NewStore(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}
