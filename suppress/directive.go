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

// Package suppress extracts suppression directives from source comments
// and filters diagnostics with them. It is the only component allowed
// to remove diagnostics; rules never self-suppress.
package suppress

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/google/shlex"
	"golang.org/x/exp/slices"
	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
)

// BadDirectiveRuleID tags the warning emitted for a directive that
// could not be parsed. The directive itself is ignored.
const BadDirectiveRuleID = "suppress.bad-directive"

const (
	markerDisableNextLine = "rulecheck-disable-next-line"
	markerDisableLine     = "rulecheck-disable-line"
	markerDisable         = "rulecheck-disable"
	markerEnable          = "rulecheck-enable"
)

var ruleIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_.-]*$`)

// Directive is one resolved suppression range. An empty rule list
// suppresses every rule in the range.
type Directive struct {
	File      string
	StartLine int32
	EndLine   int32
	Rules     []string
}

func (d Directive) covers(result *pb.Result) bool {
	if result.Path != d.File {
		return false
	}
	if result.LineNumber < d.StartLine || result.LineNumber > d.EndLine {
		return false
	}
	if len(d.Rules) == 0 {
		return true
	}
	return slices.Contains(d.Rules, result.RuleId)
}

type openRange struct {
	startLine int32
	span      ast.Span
}

// Extract parses the comment stream of a translation unit. It returns
// the resolved directives plus one warning result per malformed
// directive. Unmatched rulecheck-disable ranges extend to the end of
// the file and are reported, so a typo can only widen suppression,
// never flip findings back on.
func Extract(root *ast.Node) ([]Directive, *pb.ResultsList) {
	warnings := &pb.ResultsList{}
	unit := root.Unit()
	if unit == nil {
		return nil, warnings
	}
	comments := slices.Clone(unit.Comments)
	slices.SortStableFunc(comments, func(a, b ast.Comment) bool {
		if a.Span.StartLine != b.Span.StartLine {
			return a.Span.StartLine < b.Span.StartLine
		}
		return a.Span.StartColumn < b.Span.StartColumn
	})

	var directives []Directive
	var openAll *openRange
	openByRule := make(map[string]*openRange)
	// openOrder keeps emission deterministic: ranges close and flush in
	// the order they were opened. Closed ids stay in it and are skipped.
	var openOrder []string

	for _, comment := range comments {
		marker, args, found := splitDirective(comment.Text)
		if !found {
			continue
		}
		rules, err := parseRuleList(args)
		if err != nil {
			addWarning(warnings, comment.Span, fmt.Sprintf("cannot parse suppression directive: %v", err))
			continue
		}
		line := comment.Span.StartLine
		switch marker {
		case markerDisableLine:
			directives = append(directives, Directive{File: comment.Span.File, StartLine: line, EndLine: line, Rules: rules})
		case markerDisableNextLine:
			directives = append(directives, Directive{File: comment.Span.File, StartLine: line + 1, EndLine: line + 1, Rules: rules})
		case markerDisable:
			if len(rules) == 0 {
				if openAll == nil {
					openAll = &openRange{startLine: line, span: comment.Span}
				}
				continue
			}
			for _, id := range rules {
				if _, open := openByRule[id]; !open {
					openByRule[id] = &openRange{startLine: line, span: comment.Span}
					openOrder = append(openOrder, id)
				}
			}
		case markerEnable:
			if len(rules) == 0 {
				if openAll == nil && len(openByRule) == 0 {
					addWarning(warnings, comment.Span, "rulecheck-enable without a matching rulecheck-disable")
					continue
				}
				if openAll != nil {
					directives = append(directives, Directive{File: comment.Span.File, StartLine: openAll.startLine, EndLine: line})
					openAll = nil
				}
				for _, id := range openOrder {
					open, ok := openByRule[id]
					if !ok {
						continue
					}
					directives = append(directives, Directive{File: comment.Span.File, StartLine: open.startLine, EndLine: line, Rules: []string{id}})
					delete(openByRule, id)
				}
				continue
			}
			for _, id := range rules {
				open, ok := openByRule[id]
				if !ok {
					addWarning(warnings, comment.Span, fmt.Sprintf("rulecheck-enable %s without a matching rulecheck-disable", id))
					continue
				}
				directives = append(directives, Directive{File: comment.Span.File, StartLine: open.startLine, EndLine: line, Rules: []string{id}})
				delete(openByRule, id)
			}
		}
	}

	if openAll != nil {
		directives = append(directives, Directive{File: openAll.span.File, StartLine: openAll.startLine, EndLine: math.MaxInt32})
		addWarning(warnings, openAll.span, "rulecheck-disable range is never closed; it extends to the end of the file")
	}
	for _, id := range openOrder {
		open, ok := openByRule[id]
		if !ok {
			continue
		}
		directives = append(directives, Directive{File: open.span.File, StartLine: open.startLine, EndLine: math.MaxInt32, Rules: []string{id}})
		addWarning(warnings, open.span, fmt.Sprintf("rulecheck-disable %s range is never closed; it extends to the end of the file", id))
	}
	return directives, warnings
}

// splitDirective finds the directive marker inside a comment. Markers
// are matched longest first because they share a prefix.
func splitDirective(text string) (marker, args string, found bool) {
	for _, candidate := range []string{markerDisableNextLine, markerDisableLine, markerDisable, markerEnable} {
		idx := strings.Index(text, candidate)
		if idx < 0 {
			continue
		}
		rest := text[idx+len(candidate):]
		// Reject partial matches like "rulecheck-disablefoo".
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '*' && rest[0] != '\n' {
			continue
		}
		rest = strings.TrimSuffix(strings.TrimSpace(rest), "*/")
		return candidate, strings.TrimSpace(rest), true
	}
	return "", "", false
}

func parseRuleList(args string) ([]string, error) {
	if args == "" {
		return nil, nil
	}
	tokens, err := shlex.Split(args)
	if err != nil {
		return nil, err
	}
	var rules []string
	for _, token := range tokens {
		for _, id := range strings.Split(token, ",") {
			if id == "" {
				continue
			}
			if !ruleIDPattern.MatchString(id) {
				return nil, fmt.Errorf("invalid rule id %q", id)
			}
			rules = append(rules, id)
		}
	}
	return rules, nil
}

func addWarning(warnings *pb.ResultsList, span ast.Span, message string) {
	warnings.Results = append(warnings.Results, &pb.Result{
		Path:         span.File,
		LineNumber:   span.StartLine,
		Column:       span.StartColumn,
		RuleId:       BadDirectiveRuleID,
		Severity:     pb.Severity_WARNING,
		ErrorMessage: message,
	})
}
