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

// Package analyzer drives one whole analysis run: it loads the rule
// configuration, fans the translation units out to the worker pool,
// applies the suppression and baseline layers, and writes the results
// and run metadata under the results directory.
package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"google.golang.org/protobuf/proto"
	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/atomic"
	crules "naive.systems/rulecheck/crules/analyzer"
	"naive.systems/rulecheck/cruleslib/baseline"
	"naive.systems/rulecheck/cruleslib/filter"
	"naive.systems/rulecheck/cruleslib/options"
	"naive.systems/rulecheck/cruleslib/runner"
	"naive.systems/rulecheck/cruleslib/severity"
	"naive.systems/rulecheck/cruleslib/stats"
	"naive.systems/rulecheck/engine"
	"naive.systems/rulecheck/rule"
	"naive.systems/rulecheck/suppress"
)

const ResultsFileName = "results.nsa_results"

// Run analyzes the given translation units end to end and returns the
// final findings. Units whose path is not a C source or matches an
// ignore pattern are skipped. A nil error does not mean every unit
// succeeded; per-unit failures are logged and the rest still report.
func Run(tasks []runner.UnitTask, envOpts *options.EnvOptions) (*pb.ResultsList, error) {
	startedAt := time.Now()
	if envOpts.ResultsDir != "" {
		stats.WriteRunID(envOpts.ResultsDir, stats.NewRunID())
		stats.WriteProgress(envOpts.ResultsDir, stats.PARSE, "0%", startedAt)
		if envOpts.SrcDir != "" {
			if loc, err := stats.CountLinesUnderDir([]string{envOpts.SrcDir}, envOpts.IgnoreDirPatterns); err == nil {
				stats.WriteLOC(envOpts.ResultsDir, loc)
			}
		}
	}

	var config *rule.Config
	if envOpts.RuleConfigPath != "" {
		var err error
		config, err = rule.LoadConfig(envOpts.RuleConfigPath)
		if err != nil {
			return nil, fmt.Errorf("rule.LoadConfig(%s): %v", envOpts.RuleConfigPath, err)
		}
	}
	registry, err := crules.NewRegistry(config)
	if err != nil {
		return nil, fmt.Errorf("crules.NewRegistry: %v", err)
	}

	kept := make([]runner.UnitTask, 0, len(tasks))
	for _, task := range tasks {
		if !filter.IsCSourceFile(task.Path) || envOpts.ShouldIgnore(task.Path) {
			glog.Infof("skipping %s", task.Path)
			continue
		}
		task.Id = len(kept)
		kept = append(kept, task)
	}

	allResults, errs := runner.Run(kept, registry, envOpts)
	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed > 0 && failed == len(kept) {
		return nil, fmt.Errorf("all %d translation units failed", failed)
	}

	if envOpts.SuppressionsPath != "" {
		list, err := suppress.LoadFile(envOpts.SuppressionsPath)
		if err != nil {
			glog.Errorf("suppress.LoadFile(%s): %v", envOpts.SuppressionsPath, err)
		} else {
			allResults = suppress.ApplyFile(allResults, list)
		}
	}
	if envOpts.BaselinePath != "" {
		snapshot, err := baseline.Load(envOpts.BaselinePath)
		if err != nil {
			glog.Errorf("baseline.Load(%s): %v", envOpts.BaselinePath, err)
		} else {
			allResults = baseline.Filter(allResults, snapshot)
		}
	}
	if envOpts.MinSeverity != "" {
		min, err := severity.Parse(envOpts.MinSeverity)
		if err != nil {
			return nil, err
		}
		allResults = filter.DropBelowSeverity(allResults, min)
	}
	allResults = filter.LimitPerRule(allResults, envOpts.MaxReportsPerRule)

	for _, result := range allResults.Results {
		glog.V(1).Infof("%s:%d:%d: [%s] %s: %s", result.Path, result.LineNumber,
			result.Column, severity.Name(result.Severity), result.RuleId, result.ErrorMessage)
	}

	if envOpts.ResultsDir != "" {
		if err := WriteResults(allResults, envOpts.ResultsDir); err != nil {
			glog.Errorf("WriteResults: %v", err)
		}
		stats.CountSeverityAndWrite(allResults, envOpts.ResultsDir)
		stats.WriteProgress(envOpts.ResultsDir, stats.END, "100%", startedAt)
	}
	return allResults, nil
}

// ExitCode maps the findings to a process exit code: 1 when any
// error-severity finding survived the filters, 0 otherwise.
func ExitCode(results *pb.ResultsList) int {
	if engine.HasBlockingFindings(results) {
		return 1
	}
	return 0
}

func WriteResults(allResults *pb.ResultsList, resultsDir string) error {
	content, err := proto.Marshal(allResults)
	if err != nil {
		return fmt.Errorf("proto.Marshal: %v", err)
	}
	return atomic.Write(filepath.Join(resultsDir, ResultsFileName), content)
}

func ReadResults(resultsDir string) (*pb.ResultsList, error) {
	content, err := os.ReadFile(filepath.Join(resultsDir, ResultsFileName))
	if err != nil {
		return nil, err
	}
	var allResults pb.ResultsList
	if err := proto.Unmarshal(content, &allResults); err != nil {
		return nil, err
	}
	return &allResults, nil
}
