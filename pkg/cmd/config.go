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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-poly/pkg/roots"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config captures settings which can be given in a YAML configuration file,
// rather than repeated on the command line.  Flags given explicitly always
// override these.
type Config struct {
	// Parameters for the iterative root finders.
	Roots roots.Config `yaml:"roots"`
	// Dimensions of generated plots.
	Plot PlotConfig `yaml:"plot"`
	// Whether or not to use ANSI escapes.  When unset, escapes are used only
	// when writing to a terminal.
	Ansi *bool `yaml:"ansi"`
}

// PlotConfig determines the dimensions (in points) of generated plots.
type PlotConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultConfig returns the configuration used in the absence of a
// configuration file.
func DefaultConfig() Config {
	return Config{
		Roots: roots.DefaultConfig(),
		Plot:  PlotConfig{Width: 400, Height: 300},
	}
}

// ReadConfigFile reads a YAML configuration file.  Any setting not given in
// the file retains its default value.
func ReadConfigFile(filename string) (Config, error) {
	var cfg = DefaultConfig()
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	//
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", filename, err)
	}
	//
	log.Debugf("read configuration from %s: %+v", filename, cfg)
	//
	return cfg, nil
}
