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

package suppress

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
	"google.golang.org/protobuf/encoding/protojson"
	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
)

// Apply marks every result covered by a directive as suppressed and
// drops it from the returned list. Adding a directive can only remove
// diagnostics, never add or alter them.
func Apply(results *pb.ResultsList, directives []Directive) *pb.ResultsList {
	if len(directives) == 0 {
		return results
	}
	filtered := &pb.ResultsList{}
	for _, result := range results.Results {
		if covered(result, directives) {
			result.Suppressed = true
			glog.V(1).Infof("suppressed %s at %s:%d", result.RuleId, result.Path, result.LineNumber)
			continue
		}
		filtered.Results = append(filtered.Results, result)
	}
	return filtered
}

func covered(result *pb.Result, directives []Directive) bool {
	for _, d := range directives {
		if d.covers(result) {
			return true
		}
	}
	return false
}

// Resolve runs the whole in-source suppression pipeline for one
// translation unit: extract directives from the comment stream, filter
// the results, and append the parse warnings so they surface in the
// final report.
func Resolve(results *pb.ResultsList, root *ast.Node) *pb.ResultsList {
	directives, warnings := Extract(root)
	filtered := Apply(results, directives)
	filtered.Results = append(filtered.Results, warnings.Results...)
	return filtered
}

// LoadFile reads a project-wide suppression list in protojson form.
func LoadFile(path string) (*pb.SuppressionsList, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suppressions: %v", err)
	}
	list := &pb.SuppressionsList{}
	if err := protojson.Unmarshal(content, list); err != nil {
		return nil, fmt.Errorf("parse suppressions %s: %v", path, err)
	}
	for _, s := range list.Suppressions {
		if !doublestar.ValidatePattern(s.PathPattern) {
			return nil, fmt.Errorf("parse suppressions %s: bad path pattern %q", path, s.PathPattern)
		}
	}
	return list, nil
}

// ApplyFile filters results against a project-wide suppression list.
// A suppression entry matches on a doublestar path pattern, optionally
// narrowed to a rule id and a line number.
func ApplyFile(results *pb.ResultsList, list *pb.SuppressionsList) *pb.ResultsList {
	if list == nil || len(list.Suppressions) == 0 {
		return results
	}
	filtered := &pb.ResultsList{}
	for _, result := range results.Results {
		if matchesFile(result, list) {
			result.Suppressed = true
			continue
		}
		filtered.Results = append(filtered.Results, result)
	}
	return filtered
}

func matchesFile(result *pb.Result, list *pb.SuppressionsList) bool {
	for _, s := range list.Suppressions {
		matched, err := doublestar.Match(s.PathPattern, result.Path)
		if err != nil || !matched {
			continue
		}
		if s.RuleId != "" && s.RuleId != result.RuleId {
			continue
		}
		if s.LineNumber != 0 && s.LineNumber != result.LineNumber {
			continue
		}
		return true
	}
	return false
}
