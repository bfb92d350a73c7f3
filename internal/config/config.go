// Package config loads ssoctl settings and SSO profiles.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/BerryBytes/ssoctl/internal/sso/cache"
	"github.com/BerryBytes/ssoctl/models"
	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	EnvPrefix    = "SSOCTL"
	DefaultScope = "sso:account:access"
)

var (
	ErrNoProfiles       = errors.New("no SSO profiles configured, add one with 'ssoctl sso profiles add'")
	ErrProfileRequired  = errors.New("more than one SSO profile is configured, choose one with --profile")
	ErrProfileNotFound  = errors.New("SSO profile not found")
	ErrDuplicateProfile = errors.New("SSO profile already exists")

	regionPattern = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d+$`)
)

type CacheConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	Dir     string `mapstructure:"dir" yaml:"dir,omitempty"`
}

type Config struct {
	Profiles     []models.SSOProfile `mapstructure:"profiles" yaml:"profiles"`
	Cache        CacheConfig         `mapstructure:"cache" yaml:"cache"`
	CallbackPort int                 `mapstructure:"callback_port" yaml:"callback_port,omitempty"`
	LogLevel     string              `mapstructure:"log_level" yaml:"log_level,omitempty"`
	MetricsFile  string              `mapstructure:"metrics_file" yaml:"metrics_file,omitempty"`

	// Profile is the profile selected through SSOCTL_PROFILE. AWS_PROFILE names
	// an AWS CLI profile and is not consulted.
	Profile string `mapstructure:"profile" yaml:"-"`

	path string
}

func DefaultDir() string {
	return filepath.Join(xdg.ConfigHome, "ssoctl")
}

func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load reads the config file at path, or config.{yaml,yml,json} from the
// default directory when path is empty. A missing file is not an error.
func Load(fs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetDefault("cache.backend", cache.BackendFile)
	v.SetDefault("cache.dir", "")
	v.SetDefault("callback_port", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("profile", EnvPrefix+"_PROFILE"); err != nil {
		return nil, fmt.Errorf("failed to bind profile environment: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(DefaultDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.path = v.ConfigFileUsed()
	if cfg.path == "" {
		cfg.path = path
	}
	if cfg.path == "" {
		cfg.path = DefaultPath()
	}

	for i := range cfg.Profiles {
		normalizeProfile(&cfg.Profiles[i])
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path is the file the config was read from, or will be saved to.
func (c *Config) Path() string {
	return c.path
}

func normalizeProfile(p *models.SSOProfile) {
	p.Name = strings.TrimSpace(p.Name)
	p.StartURL = strings.TrimSpace(p.StartURL)
	if len(p.Scopes) == 0 {
		p.Scopes = []string{DefaultScope}
	}
}

func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		if err := ValidateProfile(p); err != nil {
			return err
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateProfile, p.Name)
		}
		seen[p.Name] = true
	}

	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendKeyring, cache.BackendMemory:
	default:
		return fmt.Errorf("invalid cache backend %q", c.Cache.Backend)
	}

	if c.CallbackPort < 0 || c.CallbackPort > 65535 {
		return fmt.Errorf("invalid callback port %d", c.CallbackPort)
	}
	return nil
}

func ValidateProfile(p models.SSOProfile) error {
	if p.Name == "" {
		return errors.New("SSO profile name is required")
	}
	if !IsValidRegion(p.Region) {
		return fmt.Errorf("profile %s: invalid region %q", p.Name, p.Region)
	}
	if err := ValidateStartURL(p.StartURL); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	if (p.AccountID == "") != (p.RoleName == "") {
		return fmt.Errorf("profile %s: account_id and role_name must be set together", p.Name)
	}
	return nil
}

func IsValidRegion(region string) bool {
	return regionPattern.MatchString(region)
}

func ValidateStartURL(startURL string) error {
	u, err := url.Parse(startURL)
	if err != nil {
		return fmt.Errorf("invalid start URL: %w", err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("invalid start URL %q: must be an https URL", startURL)
	}
	return nil
}

// SelectProfile resolves name, then the environment, then the only
// configured profile.
func (c *Config) SelectProfile(name string) (models.SSOProfile, error) {
	if name == "" {
		name = c.Profile
	}
	if len(c.Profiles) == 0 {
		return models.SSOProfile{}, ErrNoProfiles
	}
	if name == "" {
		if len(c.Profiles) > 1 {
			return models.SSOProfile{}, ErrProfileRequired
		}
		return c.Profiles[0], nil
	}

	idx := slices.IndexFunc(c.Profiles, func(p models.SSOProfile) bool { return p.Name == name })
	if idx < 0 {
		return models.SSOProfile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return c.Profiles[idx], nil
}

func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// AddProfile validates p and appends it.
func (c *Config) AddProfile(p models.SSOProfile) error {
	normalizeProfile(&p)
	if err := ValidateProfile(p); err != nil {
		return err
	}
	if slices.ContainsFunc(c.Profiles, func(existing models.SSOProfile) bool { return existing.Name == p.Name }) {
		return fmt.Errorf("%w: %s", ErrDuplicateProfile, p.Name)
	}
	c.Profiles = append(c.Profiles, p)
	return nil
}

func (c *Config) RemoveProfile(name string) error {
	idx := slices.IndexFunc(c.Profiles, func(p models.SSOProfile) bool { return p.Name == name })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	c.Profiles = slices.Delete(c.Profiles, idx, idx+1)
	return nil
}

// Save writes the config as YAML to Path.
func (c *Config) Save(fs afero.Fs) error {
	if err := fs.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := afero.WriteFile(fs, c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
