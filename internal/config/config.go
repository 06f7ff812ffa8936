// Package config loads the portal configuration from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all portal configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Portal       PortalConfig       `yaml:"portal"`
	Activation   ActivationConfig   `yaml:"activation"`
	Verification VerificationConfig `yaml:"verification"`
	Dataset      DatasetConfig      `yaml:"dataset"`
	Session      SessionConfig      `yaml:"session"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// TLS is enabled when both files are set.
	TLSCert string `yaml:"tls_cert"`
	TLSKey  string `yaml:"tls_key"`
}

// PortalConfig configures language handling and the success banner.
type PortalConfig struct {
	DefaultLang   string        `yaml:"default_lang"`
	Languages     []string      `yaml:"languages"`
	FlashDuration time.Duration `yaml:"flash_duration"`
}

// ActivationConfig configures the activation wizard.
type ActivationConfig struct {
	// Delay simulates the network round trip before an activation lands.
	Delay time.Duration `yaml:"delay"`
}

// VerificationConfig configures code lookup.
type VerificationConfig struct {
	RequirePIN bool `yaml:"require_pin"`
}

// DatasetConfig points at an optional dataset file. Empty Path uses the built-in sample.
type DatasetConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// SessionConfig configures the session cookie and cache.
type SessionConfig struct {
	TTL             time.Duration `yaml:"ttl"`
	CookieName      string        `yaml:"cookie_name"`
	Secure          bool          `yaml:"secure"`
	KeyFile         string        `yaml:"key_file"`
	JanitorInterval time.Duration `yaml:"janitor_interval"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
	File   string `yaml:"file"`
}

// SupportedLanguages lists every language the portal ships messages for.
var SupportedLanguages = []string{"tr", "es", "ar", "de", "en", "fr"}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Portal: PortalConfig{
			DefaultLang:   "tr",
			Languages:     append([]string(nil), SupportedLanguages...),
			FlashDuration: 4 * time.Second,
		},
		Activation: ActivationConfig{Delay: 600 * time.Millisecond},
		Dataset:    DatasetConfig{Watch: true},
		Session: SessionConfig{
			TTL:             30 * time.Minute,
			CookieName:      "qrv_session",
			KeyFile:         "master.key",
			JanitorInterval: time.Minute,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, err
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets deployments tweak the common knobs without a file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("QRV_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("QRV_DATASET"); v != "" {
		c.Dataset.Path = v
	}
	if v := os.Getenv("QRV_DEFAULT_LANG"); v != "" {
		c.Portal.DefaultLang = strings.ToLower(v)
	}
	if v := os.Getenv("QRV_LANGUAGES"); v != "" {
		var langs []string
		for _, l := range strings.Split(v, ",") {
			if l = strings.ToLower(strings.TrimSpace(l)); l != "" {
				langs = append(langs, l)
			}
		}
		c.Portal.Languages = langs
	}
	if v := os.Getenv("QRV_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("QRV_REQUIRE_PIN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verification.RequirePIN = b
		}
	}
	if v := os.Getenv("QRV_ACTIVATION_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Activation.Delay = d
		}
	}
}

// Validate checks the configuration and fills zero values that have a safe default.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return errors.New("server.tls_cert and server.tls_key must be set together")
	}
	if len(c.Portal.Languages) == 0 {
		c.Portal.Languages = append([]string(nil), SupportedLanguages...)
	}
	for _, l := range c.Portal.Languages {
		if !isSupported(l) {
			return fmt.Errorf("portal.languages: unsupported language %q", l)
		}
	}
	if c.Portal.DefaultLang == "" {
		c.Portal.DefaultLang = c.Portal.Languages[0]
	}
	if !contains(c.Portal.Languages, c.Portal.DefaultLang) {
		return fmt.Errorf("portal.default_lang %q is not in portal.languages", c.Portal.DefaultLang)
	}
	if c.Activation.Delay < 0 {
		return errors.New("activation.delay must not be negative")
	}
	if c.Portal.FlashDuration <= 0 {
		c.Portal.FlashDuration = 4 * time.Second
	}
	if c.Session.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}
	if c.Session.JanitorInterval <= 0 {
		c.Session.JanitorInterval = time.Minute
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "qrv_session"
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func isSupported(lang string) bool { return contains(SupportedLanguages, lang) }

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
