package config_test

import (
	"testing"

	"github.com/BerryBytes/ssoctl/internal/config"
	"github.com/BerryBytes/ssoctl/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
profiles:
  - name: dev
    region: us-east-1
    start_url: https://dev.awsapps.com/start
    account_id: "111111111111"
    role_name: Developer
  - name: prod
    region: eu-west-1
    start_url: https://prod.awsapps.com/start
    scopes:
      - sso:account:access
      - codewhisperer:completions
    identifier: prod-session
cache:
  backend: memory
callback_port: 19877
log_level: debug
`

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SSOCTL_PROFILE", "")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("SSOCTL_LOG_LEVEL", "")
	t.Setenv("SSOCTL_CALLBACK_PORT", "")
}

func writeConfig(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/etc/ssoctl/config.yaml", sampleConfig)

	cfg, err := config.Load(fs, "/etc/ssoctl/config.yaml")
	require.NoError(t, err)

	require.Len(t, cfg.Profiles, 2)
	dev := cfg.Profiles[0]
	assert.Equal(t, "dev", dev.Name)
	assert.Equal(t, "us-east-1", dev.Region)
	assert.Equal(t, "https://dev.awsapps.com/start", dev.StartURL)
	assert.Equal(t, "111111111111", dev.AccountID)
	assert.Equal(t, "Developer", dev.RoleName)
	assert.Equal(t, []string{config.DefaultScope}, dev.Scopes)

	prod := cfg.Profiles[1]
	assert.Equal(t, []string{"sso:account:access", "codewhisperer:completions"}, prod.Scopes)
	assert.Equal(t, "prod-session", prod.Identifier)
	assert.Equal(t, "prod-session", prod.TokenKey())

	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 19877, cfg.CallbackPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/ssoctl/config.yaml", cfg.Path())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Empty(t, cfg.Profiles)
	assert.Equal(t, "file", cfg.Cache.Backend)
	assert.Equal(t, 0, cfg.CallbackPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.DefaultPath(), cfg.Path())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/cfg/config.yaml", sampleConfig)

	t.Run("AWS_PROFILE is not an ssoctl profile", func(t *testing.T) {
		t.Setenv("AWS_PROFILE", "prod")
		cfg, err := config.Load(fs, "/cfg/config.yaml")
		require.NoError(t, err)
		assert.Empty(t, cfg.Profile)
	})

	t.Run("SSOCTL_PROFILE selects the profile", func(t *testing.T) {
		t.Setenv("AWS_PROFILE", "prod")
		t.Setenv("SSOCTL_PROFILE", "dev")
		cfg, err := config.Load(fs, "/cfg/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "dev", cfg.Profile)
	})

	t.Run("SSOCTL_LOG_LEVEL overrides the file", func(t *testing.T) {
		t.Setenv("SSOCTL_LOG_LEVEL", "warn")
		cfg, err := config.Load(fs, "/cfg/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
	})
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name     string
		content  string
		errorMsg string
	}{
		{
			name:     "malformed yaml",
			content:  "profiles: [",
			errorMsg: "failed to read config file",
		},
		{
			name: "bad region",
			content: `
profiles:
  - name: dev
    region: us_east_1
    start_url: https://dev.awsapps.com/start
`,
			errorMsg: "invalid region",
		},
		{
			name: "plain http start url",
			content: `
profiles:
  - name: dev
    region: us-east-1
    start_url: http://dev.awsapps.com/start
`,
			errorMsg: "must be an https URL",
		},
		{
			name: "duplicate profile",
			content: `
profiles:
  - name: dev
    region: us-east-1
    start_url: https://dev.awsapps.com/start
  - name: dev
    region: us-east-1
    start_url: https://dev.awsapps.com/start
`,
			errorMsg: "already exists",
		},
		{
			name: "role without account",
			content: `
profiles:
  - name: dev
    region: us-east-1
    start_url: https://dev.awsapps.com/start
    role_name: Admin
`,
			errorMsg: "must be set together",
		},
		{
			name:     "unknown cache backend",
			content:  "cache:\n  backend: floppy\n",
			errorMsg: "invalid cache backend",
		},
		{
			name:     "port out of range",
			content:  "callback_port: 70000\n",
			errorMsg: "invalid callback port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeConfig(t, fs, "/cfg/config.yaml", tt.content)

			_, err := config.Load(fs, "/cfg/config.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestIsValidRegion(t *testing.T) {
	tests := []struct {
		region string
		valid  bool
	}{
		{"us-east-1", true},
		{"ap-southeast-2", true},
		{"us-gov-west-1", true},
		{"US-EAST-1", false},
		{"useast1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			assert.Equal(t, tt.valid, config.IsValidRegion(tt.region))
		})
	}
}

func TestSelectProfile(t *testing.T) {
	dev := models.SSOProfile{Name: "dev", Region: "us-east-1", StartURL: "https://dev.awsapps.com/start"}
	prod := models.SSOProfile{Name: "prod", Region: "us-east-1", StartURL: "https://prod.awsapps.com/start"}

	tests := []struct {
		name        string
		cfg         config.Config
		arg         string
		expected    string
		expectedErr error
	}{
		{name: "no profiles", cfg: config.Config{}, expectedErr: config.ErrNoProfiles},
		{name: "single profile is implicit", cfg: config.Config{Profiles: []models.SSOProfile{dev}}, expected: "dev"},
		{name: "several profiles need a name", cfg: config.Config{Profiles: []models.SSOProfile{dev, prod}}, expectedErr: config.ErrProfileRequired},
		{name: "explicit name", cfg: config.Config{Profiles: []models.SSOProfile{dev, prod}}, arg: "prod", expected: "prod"},
		{name: "environment name", cfg: config.Config{Profiles: []models.SSOProfile{dev, prod}, Profile: "prod"}, expected: "prod"},
		{name: "flag beats environment", cfg: config.Config{Profiles: []models.SSOProfile{dev, prod}, Profile: "prod"}, arg: "dev", expected: "dev"},
		{name: "unknown name", cfg: config.Config{Profiles: []models.SSOProfile{dev}}, arg: "qa", expectedErr: config.ErrProfileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := tt.cfg.SelectProfile(tt.arg)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, profile.Name)
		})
	}
}

func TestSelectProfile_IgnoresAWSProfile(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_PROFILE", "default")
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/cfg/config.yaml", `
profiles:
  - name: work
    region: us-east-1
    start_url: https://work.awsapps.com/start
`)

	cfg, err := config.Load(fs, "/cfg/config.yaml")
	require.NoError(t, err)

	profile, err := cfg.SelectProfile("")
	require.NoError(t, err)
	assert.Equal(t, "work", profile.Name)
}

func TestAddRemoveAndSave(t *testing.T) {
	clearEnv(t)
	fs := afero.NewMemMapFs()

	cfg, err := config.Load(fs, "/home/user/.config/ssoctl/config.yaml")
	require.NoError(t, err)

	require.NoError(t, cfg.AddProfile(models.SSOProfile{
		Name:     "dev",
		Region:   "us-west-2",
		StartURL: " https://dev.awsapps.com/start ",
	}))
	assert.ErrorIs(t, cfg.AddProfile(models.SSOProfile{
		Name:     "dev",
		Region:   "us-west-2",
		StartURL: "https://dev.awsapps.com/start",
	}), config.ErrDuplicateProfile)
	assert.Error(t, cfg.AddProfile(models.SSOProfile{Name: "bad", Region: "nowhere", StartURL: "https://x"}))

	require.NoError(t, cfg.Save(fs))

	reloaded, err := config.Load(fs, "/home/user/.config/ssoctl/config.yaml")
	require.NoError(t, err)
	require.Len(t, reloaded.Profiles, 1)
	assert.Equal(t, "https://dev.awsapps.com/start", reloaded.Profiles[0].StartURL)
	assert.Equal(t, []string{config.DefaultScope}, reloaded.Profiles[0].Scopes)
	assert.Equal(t, []string{"dev"}, reloaded.ProfileNames())

	require.NoError(t, reloaded.RemoveProfile("dev"))
	assert.ErrorIs(t, reloaded.RemoveProfile("dev"), config.ErrProfileNotFound)
	assert.Empty(t, reloaded.Profiles)
}
