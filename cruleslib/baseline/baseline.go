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

// Package baseline accepts a snapshot of known findings and filters
// them out of later runs, so adopting the analyzer on an existing code
// base only reports new findings.
package baseline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"google.golang.org/protobuf/encoding/protojson"
	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/atomic"
)

const fileName = "baseline.json"

// Export writes the current results as the new baseline snapshot.
func Export(allResults *pb.ResultsList, resultsDir string) error {
	marshaller := protojson.MarshalOptions{Multiline: true, Indent: "\t"}
	out, err := marshaller.Marshal(allResults)
	if err != nil {
		return fmt.Errorf("cannot marshal baseline: %v", err)
	}
	path := filepath.Join(resultsDir, fileName)
	if err := atomic.Write(path, out); err != nil {
		return fmt.Errorf("cannot write %s: %v", path, err)
	}
	return nil
}

func Load(baselinePath string) (*pb.ResultsList, error) {
	content, err := os.ReadFile(baselinePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %v", baselinePath, err)
	}
	snapshot := &pb.ResultsList{}
	if err := protojson.Unmarshal(content, snapshot); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %v", baselinePath, err)
	}
	return snapshot, nil
}

// key identifies a finding independent of its exact line, so a
// baselined finding keeps matching when unrelated edits shift it.
func key(result *pb.Result) string {
	return result.Path + "\x00" + result.RuleId + "\x00" + result.ErrorMessage
}

// Filter drops every result already present in the baseline. Matching
// is by (path, rule id, message), counted: two identical findings in
// one file stay reported when the baseline holds only one.
func Filter(allResults *pb.ResultsList, snapshot *pb.ResultsList) *pb.ResultsList {
	known := make(map[string]int)
	for _, result := range snapshot.Results {
		known[key(result)]++
	}
	filtered := &pb.ResultsList{}
	for _, result := range allResults.Results {
		k := key(result)
		if known[k] > 0 {
			known[k]--
			continue
		}
		filtered.Results = append(filtered.Results, result)
	}
	return filtered
}

// Apply loads the snapshot at configDir and filters the results. A
// missing snapshot means a first run: the current results are exported
// as the new baseline and reported in full.
func Apply(allResults *pb.ResultsList, configDir, resultsDir string) *pb.ResultsList {
	baselinePath := filepath.Join(configDir, fileName)
	if _, err := os.Stat(baselinePath); err != nil {
		if os.IsNotExist(err) {
			if err := Export(allResults, resultsDir); err != nil {
				glog.Errorf("%v", err)
			}
		} else {
			glog.Errorf("%v", err)
		}
		return allResults
	}
	snapshot, err := Load(baselinePath)
	if err != nil {
		glog.Errorf("%v", err)
		return allResults
	}
	return Filter(allResults, snapshot)
}
