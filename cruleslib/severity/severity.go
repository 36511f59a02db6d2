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

// Package severity maps between severity spellings in configuration
// files and the Severity enum carried on results.
package severity

import (
	"fmt"
	"strings"

	pb "naive.systems/rulecheck/analyzer/proto"
)

const (
	Unknown = pb.Severity_UNKNOWN
	Info    = pb.Severity_INFO
	Warning = pb.Severity_WARNING
	Error   = pb.Severity_ERROR
)

// Parse converts a configuration spelling to a Severity. The empty
// string is not a valid spelling; callers pass it only where "keep the
// default" has already been handled.
func Parse(s string) (pb.Severity, error) {
	switch strings.ToLower(s) {
	case "info":
		return Info, nil
	case "warning":
		return Warning, nil
	case "error":
		return Error, nil
	default:
		return Unknown, fmt.Errorf("unknown severity %q", s)
	}
}

func Name(s pb.Severity) string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
