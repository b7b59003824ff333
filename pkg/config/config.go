// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/patchrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Replacement represents a literal string replacement
type Replacement struct {
	Old   string `json:"old" yaml:"old" toml:"old"`                                  // Text to replace
	New   string `json:"new" yaml:"new" toml:"new"`                                  // Text to put in its place
	Files string `json:"files,omitempty" yaml:"files,omitempty" toml:"files,omitempty"` // Optional doublestar filter on target paths
}

// 🎯 Target is one file and the replacements specific to it
type Target struct {
	Path         string        `json:"path" yaml:"path" toml:"path"`
	Replacements []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty" toml:"replacements,omitempty"`
}

// 📚 Config represents a complete patch plan
type Config struct {
	// Replacements run before each target's own replacements, on every target their Files filter matches
	Replacements []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty" toml:"replacements,omitempty"`
	Targets      []Target      `json:"targets" yaml:"targets" toml:"targets"`
	AllOrNothing bool          `json:"all_or_nothing,omitempty" yaml:"all_or_nothing,omitempty" toml:"all_or_nothing,omitempty"`

	location string
}

// Location returns the file the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if len(cfg.Targets) == 0 {
		return errors.Errorf("at least one target is required")
	}

	if err := validateReplacements(cfg.Replacements); err != nil {
		return errors.Errorf("replacements: %w", err)
	}

	seen := make(map[string]int, len(cfg.Targets))
	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		if t.Path == "" {
			return errors.Errorf("targets[%d]: path is required", i)
		}
		t.Path = filepath.Clean(t.Path)

		// two spellings of one file would each patch the other's output
		key := cfg.fileKey(t.Path)
		if prev, ok := seen[key]; ok {
			return errors.Errorf("targets[%d]: path %s already declared by targets[%d]", i, t.Path, prev)
		}
		seen[key] = i

		if err := validateReplacements(t.Replacements); err != nil {
			return errors.Errorf("targets[%d] (%s): %w", i, t.Path, err)
		}
	}

	return nil
}

// fileKey identifies the file a target path refers to.
func (cfg *Config) fileKey(path string) string {
	resolved := cfg.ResolvePath(path)
	if abs, err := filepath.Abs(resolved); err == nil {
		return abs
	}
	return resolved
}

func validateReplacements(rs []Replacement) error {
	if err := text.NewSimpleTextReplacer().ValidateRules(toRules(rs)); err != nil {
		return err
	}
	for i, r := range rs {
		if r.Files != "" && !doublestar.ValidatePattern(r.Files) {
			return errors.Errorf("rule %d: invalid files pattern %q", i, r.Files)
		}
	}
	return nil
}

func toRules(rs []Replacement) []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(rs))
	for _, r := range rs {
		rules = append(rules, text.ReplacementRule{
			FromText:       r.Old,
			ToText:         r.New,
			FileFilterGlob: r.Files,
		})
	}
	return rules
}

// BatchFor returns the ordered rules that apply to t: the shared replacements
// whose filter matches t.Path, followed by t's own replacements.
func (cfg *Config) BatchFor(t Target) []text.ReplacementRule {
	name := filepath.ToSlash(t.Path)

	var rules []text.ReplacementRule
	for _, rule := range append(toRules(cfg.Replacements), toRules(t.Replacements)...) {
		if rule.FileFilterGlob != "" {
			matched, err := doublestar.Match(rule.FileFilterGlob, name)
			if err != nil || !matched {
				continue
			}
		}
		rules = append(rules, rule)
	}
	return rules
}

// ResolvePath makes a target path absolute relative to the config file's directory.
func (cfg *Config) ResolvePath(path string) string {
	if filepath.IsAbs(path) || cfg.location == "" {
		return path
	}
	return filepath.Join(filepath.Dir(cfg.location), path)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	mode := "independent"
	if cfg.AllOrNothing {
		mode = "all-or-nothing"
	}
	return fmt.Sprintf("%d target(s), %d shared replacement(s), %s", len(cfg.Targets), len(cfg.Replacements), mode)
}
