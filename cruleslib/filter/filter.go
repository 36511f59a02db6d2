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

/*
This package should not import any other packages of the analyzer to
avoid recursive import.
*/
package filter

import (
	"strings"

	pb "naive.systems/rulecheck/analyzer/proto"
)

var kSourceSuffixes = []string{"c", "h"}

func IsCSourceFile(path string) bool {
	for _, suffix := range kSourceSuffixes {
		if strings.HasSuffix(path, "."+suffix) {
			return true
		}
	}
	return false
}

// LimitPerRule keeps at most max findings per rule id, in input order.
// max <= 0 means unlimited.
func LimitPerRule(allResults *pb.ResultsList, max int) *pb.ResultsList {
	if max <= 0 {
		return allResults
	}
	reported := make(map[string]int)
	kept := make([]*pb.Result, 0, len(allResults.Results))
	for _, result := range allResults.Results {
		if reported[result.RuleId] >= max {
			continue
		}
		reported[result.RuleId]++
		kept = append(kept, result)
	}
	allResults.Results = kept
	return allResults
}

// DropBelowSeverity removes findings softer than min. UNKNOWN findings
// are always kept; a rule that failed to classify should stay visible.
func DropBelowSeverity(allResults *pb.ResultsList, min pb.Severity) *pb.ResultsList {
	kept := make([]*pb.Result, 0, len(allResults.Results))
	for _, result := range allResults.Results {
		if result.Severity != pb.Severity_UNKNOWN && severityRank(result.Severity) < severityRank(min) {
			continue
		}
		kept = append(kept, result)
	}
	allResults.Results = kept
	return allResults
}

func severityRank(s pb.Severity) int {
	switch s {
	case pb.Severity_INFO:
		return 1
	case pb.Severity_WARNING:
		return 2
	case pb.Severity_ERROR:
		return 3
	default:
		return 0
	}
}
