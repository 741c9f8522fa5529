// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for sundiald.
//
// Configuration is a single YAML file specified by the SUNDIAL_CONFIG
// environment variable or the --config flag. There are no fallbacks or
// automatic discovery; an unset path means the built-in defaults,
// which are the conventional system locations. This keeps the daemon's
// view of the host deterministic and auditable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every host path and socket the daemon touches. Tests
// and non-standard distributions override individual paths; a default
// Config describes a stock Linux host.
type Config struct {
	// SocketPath is where sundiald serves the timedate interface.
	SocketPath string `yaml:"socket_path"`

	// PolicySocketPath is the external policy authority's socket.
	PolicySocketPath string `yaml:"policy_socket_path"`

	// RTCDevice is the hardware clock character device node.
	RTCDevice string `yaml:"rtc_device"`

	// ZoneinfoRoot is the zone database root directory.
	ZoneinfoRoot string `yaml:"zoneinfo_root"`

	// LocaltimePath is the local-time symlink.
	LocaltimePath string `yaml:"localtime_path"`

	// AdjtimePath is the RTC adjustment-configuration file.
	AdjtimePath string `yaml:"adjtime_path"`

	// TimezoneOverride pins the reported timezone without consulting
	// the local-time link. Empty means resolve the link.
	TimezoneOverride string `yaml:"timezone_override,omitempty"`
}

// Default returns the stock system paths.
func Default() Config {
	return Config{
		SocketPath:       "/run/sundial/timedate.sock",
		PolicySocketPath: "/run/sundial/policy.sock",
		RTCDevice:        "/dev/rtc",
		ZoneinfoRoot:     "/usr/share/zoneinfo",
		LocaltimePath:    "/etc/localtime",
		AdjtimePath:      "/etc/adjtime",
	}
}

// Load reads the YAML file at path and applies it over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// validate rejects configs with blanked-out required paths. YAML
// overrides may replace values but not remove them.
func (c Config) validate() error {
	required := map[string]string{
		"socket_path":        c.SocketPath,
		"policy_socket_path": c.PolicySocketPath,
		"rtc_device":         c.RTCDevice,
		"zoneinfo_root":      c.ZoneinfoRoot,
		"localtime_path":     c.LocaltimePath,
		"adjtime_path":       c.AdjtimePath,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}
