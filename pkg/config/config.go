// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional modelscript.yaml configuration: library
// roots plus the log level, with environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "modelscript.yaml"

// Config carries the tool configuration.
type Config struct {
	// Libraries lists additional library roots made available to the
	// resolver.
	Libraries []string `yaml:"libraries"`
	// LogLevel sets the process log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load reads a configuration file, applying defaults for absent fields and
// environment overrides (MODELSCRIPT_LOG_LEVEL) on top.  A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	//
	data, err := os.ReadFile(path)
	//
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	//
	if level := os.Getenv("MODELSCRIPT_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	//
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	//
	return cfg, nil
}

func (p *Config) validate() error {
	switch p.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level %q", p.LogLevel)
	}
}
