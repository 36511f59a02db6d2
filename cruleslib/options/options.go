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

// Package options carries the environment configuration a front end
// hands to the runner: directories, worker count, ignore patterns,
// and the paths of the rule config, suppression and baseline files.
package options

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
)

// ArrayFlags collects a repeatable command line flag.
type ArrayFlags []string

func (a *ArrayFlags) String() string {
	return strings.Join(*a, ",")
}

func (a *ArrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

type EnvOptions struct {
	ResultsDir        string
	SrcDir            string
	IgnoreDirPatterns ArrayFlags
	CheckProgress     bool
	Debug             bool
	NumWorkers        int32
	Lang              string

	// RuleConfigPath, SuppressionsPath and BaselinePath are optional;
	// empty means the corresponding layer is skipped.
	RuleConfigPath   string
	SuppressionsPath string
	BaselinePath     string

	// MaxReportsPerRule caps how many findings one rule may report;
	// 0 means unlimited. MinSeverity drops findings softer than the
	// given spelling; empty keeps everything.
	MaxReportsPerRule int
	MinSeverity       string

	LogDir string
}

func NewEnvOptions(
	resultsDir string,
	srcdir string,
	logDir string,
	ignoreDirPatterns ArrayFlags,
	checkProgress bool,
	debug bool,
	numWorkers int32,
	lang string,
) (*EnvOptions, error) {
	for _, pattern := range ignoreDirPatterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("bad ignore pattern %q", pattern)
		}
	}
	return &EnvOptions{
		ResultsDir:        resultsDir,
		SrcDir:            srcdir,
		LogDir:            logDir,
		IgnoreDirPatterns: ignoreDirPatterns,
		CheckProgress:     checkProgress,
		Debug:             debug,
		NumWorkers:        numWorkers,
		Lang:              lang,
	}, nil
}

// ShouldIgnore reports whether a source path matches any of the ignore
// patterns. Patterns use doublestar syntax, so "vendor/**" covers the
// whole subtree.
func (e *EnvOptions) ShouldIgnore(path string) bool {
	for _, pattern := range e.IgnoreDirPatterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			glog.Errorf("bad ignore pattern %q: %v", pattern, err)
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
