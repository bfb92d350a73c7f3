package telemetry_test

import (
	"testing"
	"time"

	"github.com/BerryBytes/ssoctl/internal/telemetry"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	start := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	store := telemetry.NewSessionStore(fs, "/state/sessions.yaml", nil)

	_, ok := store.SessionStart("https://example.awsapps.com/start")
	assert.False(t, ok)

	require.NoError(t, store.SetSessionStart("https://example.awsapps.com/start", start))

	got, ok := store.SessionStart("https://example.awsapps.com/start")
	require.True(t, ok)
	assert.True(t, got.Equal(start))

	reloaded := telemetry.NewSessionStore(fs, "/state/sessions.yaml", nil)
	got, ok = reloaded.SessionStart("https://example.awsapps.com/start")
	require.True(t, ok)
	assert.True(t, got.Equal(start))

	require.NoError(t, reloaded.Forget("https://example.awsapps.com/start"))
	_, ok = reloaded.SessionStart("https://example.awsapps.com/start")
	assert.False(t, ok)
	assert.NoError(t, reloaded.Forget("unknown"))
}

func TestSessionStore_CorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/state/sessions.yaml", []byte("sessions: [oops"), 0600))

	store := telemetry.NewSessionStore(fs, "/state/sessions.yaml", nil)
	_, ok := store.SessionStart("anything")
	assert.False(t, ok)

	assert.NoError(t, store.SetSessionStart("anything", time.Now()))
}

func TestSessionStore_WriteFailure(t *testing.T) {
	store := telemetry.NewSessionStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/state/sessions.yaml", nil)

	err := store.SetSessionStart("key", time.Now())
	assert.Error(t, err)

	_, ok := store.SessionStart("key")
	assert.True(t, ok)
}
