package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the shelf server configuration
type Config struct {
	// ListenAddr is the plain HTTP listen address. Empty disables the
	// plain listener.
	ListenAddr string `json:"listen_addr"`

	// TLS configures the encrypted listener. Empty listen_addr disables it.
	TLS TLSConfig `json:"tls,omitempty"`

	// ItemsFile is an optional YAML catalog to load the item collection
	// from at startup. Empty means the built-in collection is served.
	ItemsFile string `json:"items_file,omitempty"`

	SSH SSHServerConfig `json:"ssh,omitempty"`
}

// TLSConfig holds the encrypted listener settings
type TLSConfig struct {
	ListenAddr string `json:"listen_addr,omitempty"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
}

// SSHServerConfig holds configuration for the integrated SSH viewer server
type SSHServerConfig struct {
	Enabled            bool   `json:"enabled"`
	ListenAddr         string `json:"listen_addr,omitempty"`
	HostKeyPath        string `json:"host_key_path,omitempty"`
	AuthorizedKeysPath string `json:"authorized_keys_path,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		ListenAddr: ":8080",
		TLS: TLSConfig{
			ListenAddr: "",
			CertFile:   "${SHELF_TLS_CERT}",
			KeyFile:    "${SHELF_TLS_KEY}",
		},
		SSH: SSHServerConfig{
			Enabled:    false,
			ListenAddr: ":2222",
		},
	}
}

// Load loads configuration from a file, creating a default one if missing
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.Save(path); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
		fmt.Printf("Created default configuration at %s\n", path)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Expand tilde in path fields before env-var expansion so both
	// "~/foo" and "${SOME_PATH}" work.
	cfg.expandTilde()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// expandEnvVars expands ${ENV_VAR} placeholders in configuration values
func (c *Config) expandEnvVars() {
	c.ListenAddr = os.ExpandEnv(c.ListenAddr)
	c.ItemsFile = os.ExpandEnv(c.ItemsFile)
	c.TLS.ListenAddr = os.ExpandEnv(c.TLS.ListenAddr)
	c.TLS.CertFile = os.ExpandEnv(c.TLS.CertFile)
	c.TLS.KeyFile = os.ExpandEnv(c.TLS.KeyFile)
	c.SSH.ListenAddr = os.ExpandEnv(c.SSH.ListenAddr)
	c.SSH.HostKeyPath = os.ExpandEnv(c.SSH.HostKeyPath)
	c.SSH.AuthorizedKeysPath = os.ExpandEnv(c.SSH.AuthorizedKeysPath)
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if c.ListenAddr == "" && c.TLS.ListenAddr == "" {
		return fmt.Errorf("at least one of listen_addr or tls.listen_addr must be set")
	}

	if c.TLS.ListenAddr != "" {
		if c.TLS.CertFile == "" || c.TLS.KeyFile == "" {
			return fmt.Errorf("tls listener requires cert_file and key_file")
		}
	}

	return nil
}

// expandTilde replaces a leading "~/" with the user's home directory in
// path-valued config fields.
func (c *Config) expandTilde() {
	home, err := os.UserHomeDir()
	if err != nil {
		return // can't expand, leave as-is
	}
	expand := func(p string) string {
		if p == "~" {
			return home
		}
		if strings.HasPrefix(p, "~/") {
			return filepath.Join(home, p[2:])
		}
		return p
	}

	c.ItemsFile = expand(c.ItemsFile)
	c.TLS.CertFile = expand(c.TLS.CertFile)
	c.TLS.KeyFile = expand(c.TLS.KeyFile)
	c.SSH.HostKeyPath = expand(c.SSH.HostKeyPath)
	c.SSH.AuthorizedKeysPath = expand(c.SSH.AuthorizedKeysPath)
}
