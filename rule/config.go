/*
Rulecheck - a static rule-checking engine for C sources
Copyright (C) 2023  Naive Systems Ltd.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package rule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
	"naive.systems/rulecheck/cruleslib/severity"
)

// Config is the registry configuration loaded before any analysis pass
// begins. Example:
//
//	rules:
//	  param.missing-const:
//	    enabled: false
//	  struct.flexible-array-member:
//	    severity: error
type Config struct {
	Rules map[string]RuleConfig `yaml:"rules"`
}

type RuleConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	Severity string `yaml:"severity,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule config: %v", err)
	}
	return ParseConfig(content)
}

func ParseConfig(content []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.UnmarshalStrict(content, config); err != nil {
		return nil, fmt.Errorf("parse rule config: %v", err)
	}
	return config, nil
}

// Apply carries the configuration into the registry. It must run during
// the registration phase; unknown rule ids and bad severity spellings
// fail startup instead of being silently dropped.
func (c *Config) Apply(r *Registry) error {
	for id, ruleConfig := range c.Rules {
		if ruleConfig.Enabled != nil {
			var err error
			if *ruleConfig.Enabled {
				err = r.Enable(id)
			} else {
				err = r.Disable(id)
			}
			if err != nil {
				return err
			}
		}
		if ruleConfig.Severity != "" {
			parsed, err := severity.Parse(ruleConfig.Severity)
			if err != nil {
				return fmt.Errorf("rule %s: %v", id, err)
			}
			if err := r.OverrideSeverity(id, parsed); err != nil {
				return err
			}
		}
	}
	return nil
}
