package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeviceKind selects which simulated device a config entry creates.
type DeviceKind string

const (
	DeviceKindLamp       DeviceKind = "lamp"
	DeviceKindLock       DeviceKind = "lock"
	DeviceKindThermostat DeviceKind = "thermostat"
)

// Config holds the server configuration.
type Config struct {
	// ListenAddress for the webhook server. Defaults to ":8080".
	ListenAddress string `yaml:"listen_address"`

	// AgentUserID reported in SYNC responses. Required.
	AgentUserID string `yaml:"agent_user_id"`

	// TokenHashes are bcrypt hashes of accepted bearer tokens. Empty
	// means no authentication (development only).
	TokenHashes []string `yaml:"token_hashes"`

	// LogFile records intent traffic in the binary log format. Empty
	// disables the file log.
	LogFile string `yaml:"log_file"`

	Discovery DiscoveryConfig `yaml:"discovery"`

	Devices []DeviceEntry `yaml:"devices"`
}

// DiscoveryConfig controls mDNS advertising.
type DiscoveryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Interface    string `yaml:"interface"`
	InstanceName string `yaml:"instance_name"`
}

// DeviceEntry describes one simulated device.
type DeviceEntry struct {
	ID   string     `yaml:"id"`
	Kind DeviceKind `yaml:"kind"`
	Name string     `yaml:"name"`
	Room string     `yaml:"room"`
}

// ParseConfig parses and validates a configuration from YAML bytes.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.ListenAddress == "" {
		cfg.ListenAddress = ":8080"
	}
	if cfg.AgentUserID == "" {
		return nil, fmt.Errorf("agent_user_id is required")
	}

	seen := make(map[string]bool)
	for i, entry := range cfg.Devices {
		if entry.ID == "" {
			return nil, fmt.Errorf("device %d: id is required", i)
		}
		if seen[entry.ID] {
			return nil, fmt.Errorf("device %d: duplicate id %q", i, entry.ID)
		}
		seen[entry.ID] = true

		switch entry.Kind {
		case DeviceKindLamp, DeviceKindLock, DeviceKindThermostat:
		default:
			return nil, fmt.Errorf("device %q: unknown kind %q", entry.ID, entry.Kind)
		}
	}

	return &cfg, nil
}

// LoadConfig loads the configuration from a file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}
