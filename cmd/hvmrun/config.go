// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/hvmcore/hvm/engine"
)

// RunConfig describes one normalization run. It is built up from, in order
// of increasing precedence: engine.Defaults(), a -config YAML/JSON file, a
// -config-inline JSON literal, then whichever flags the user passed
// explicitly on the command line.
//
// sigs.k8s.io/yaml round-trips through encoding/json, so RunConfig's
// `json` tags serve both the YAML file and the inline-JSON path with one
// struct.
type RunConfig struct {
	Fixture       string `json:"fixture"`
	ArenaCapacity uint32 `json:"arenaCapacity"`
	StackCapacity uint32 `json:"stackCapacity"`
	Dump          string `json:"dump"`
	Compress      bool   `json:"compress"`
	Verbose       bool   `json:"verbose"`
}

func defaultRunConfig() RunConfig {
	opts := engine.Defaults()
	return RunConfig{
		Fixture:       "p24",
		ArenaCapacity: opts.ArenaCapacity,
		StackCapacity: opts.StackCapacity,
	}
}

// loadConfigFile reads a YAML (or plain JSON, since YAML is a superset)
// config file and unmarshals it over cfg.
func loadConfigFile(cfg *RunConfig, path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return fmt.Errorf("parsing config %q: %w", path, err)
	}
	return nil
}

// loadConfigInline unmarshals an inline JSON literal over cfg, for
// scripting without a config file on disk.
func loadConfigInline(cfg *RunConfig, inline string) error {
	if err := yaml.Unmarshal([]byte(inline), cfg); err != nil {
		return fmt.Errorf("parsing -config-inline: %w", err)
	}
	return nil
}

// options converts the resolved config into engine construction options.
func (c RunConfig) options() engine.Options {
	return engine.Options{
		ArenaCapacity: c.ArenaCapacity,
		StackCapacity: c.StackCapacity,
	}
}
