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

// Package stats writes run metadata next to the analysis results:
// progress, counted source lines, the run id, and per-severity totals.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/hhatto/gocloc"
	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/atomic"
)

// analysis stages
const (
	PARSE int = iota // Syntax tree and symbol table intake
	AC               // Analysis check
	END
)

type Progress struct {
	StageID   int       `json:"stage_id"`
	DoneRatio string    `json:"done_ratio"`
	StartedAt time.Time `json:"started_at"`
}

type SeverityCount struct {
	Error   int `json:"error"`
	Warning int `json:"warning"`
	Info    int `json:"info"`
	Unknown int `json:"unknown"`
}

// NewRunID tags one whole analysis run for the reporting layer.
func NewRunID() string {
	return uuid.NewString()
}

func WriteRunID(resultDir, runID string) {
	path := filepath.Join(resultDir, "run_id.nsa_metadata")
	if err := atomic.Write(path, []byte(runID)); err != nil {
		glog.Errorf("failed to write to file %s: %v", path, err)
	}
}

func WriteLOC(resultDir string, linesCounter int) {
	path := filepath.Join(resultDir, "loc.nsa_metadata")
	err := atomic.Write(path, []byte(strconv.Itoa(linesCounter)))
	if err != nil {
		glog.Errorf("failed to write to file %s: %v", path, err)
	}
}

// CountLinesUnderDir counts the code lines of the C sources below the
// given directories, skipping paths matched by the ignore patterns.
func CountLinesUnderDir(workingDirs []string, ignoreDirPatterns []string) (int, error) {
	clocOpts := gocloc.NewClocOptions()
	languages := gocloc.NewDefinedLanguages()
	for _, lang := range []string{"C", "C Header"} {
		if _, exists := languages.Langs[lang]; exists {
			clocOpts.IncludeLangs[lang] = struct{}{}
		}
	}
	processor := gocloc.NewProcessor(languages, clocOpts)
	result, err := processor.Analyze(workingDirs)
	if err != nil {
		glog.Errorf("gocloc fail: %v", err)
		return 0, err
	}
	sum := 0
	for _, file := range result.Files {
		ignored := false
		for _, pattern := range ignoreDirPatterns {
			matched, err := doublestar.Match(pattern, file.Name)
			if err != nil {
				glog.Errorf("bad ignore pattern %q: %v", pattern, err)
				continue
			}
			if matched {
				ignored = true
				break
			}
		}
		if !ignored {
			sum += int(file.Code)
		}
	}
	return sum, nil
}

func WriteProgress(resultDir string, stageID int, doneRatio string, startedAt time.Time) {
	// skip writing it if resultDir does not exist
	_, err := os.Stat(resultDir)
	if os.IsNotExist(err) {
		glog.Warningf("result dir %s does not exist", resultDir)
		return
	}
	path := filepath.Join(resultDir, "progress.nsa_metadata")
	progress, err := json.Marshal(Progress{StageID: stageID, DoneRatio: doneRatio, StartedAt: startedAt})
	if err != nil {
		glog.Errorf("failed to marshal json stageID %d and doneRatio %s: %v", stageID, doneRatio, err)
		return
	}
	err = atomic.Write(path, progress)
	if err != nil {
		glog.Errorf("failed to write to file %s: %v", path, err)
	}
}

func AccumulateBySeverity(cnt *SeverityCount, result *pb.Result) {
	switch result.Severity {
	case pb.Severity_ERROR:
		cnt.Error++
	case pb.Severity_WARNING:
		cnt.Warning++
	case pb.Severity_INFO:
		cnt.Info++
	case pb.Severity_UNKNOWN:
		cnt.Unknown++
	default:
		glog.Warningf("undefined severity of result %s at %s:%d", result.RuleId, result.Path, result.LineNumber)
	}
}

func GetSeverityCountBytes(resultsList *pb.ResultsList) ([]byte, error) {
	var cnt SeverityCount
	for _, result := range resultsList.Results {
		AccumulateBySeverity(&cnt, result)
	}
	statsBytes, err := json.Marshal(cnt)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %v", err)
	}
	return statsBytes, nil
}

func CountSeverityAndWrite(resultsList *pb.ResultsList, resultDir string) {
	statsBytes, err := GetSeverityCountBytes(resultsList)
	if err != nil {
		glog.Errorf("failed to get severity count bytes: %v", err)
	}
	statsFile := filepath.Join(resultDir, "severity_stats.nsa_metadata")
	err = atomic.Write(statsFile, statsBytes)
	if err != nil {
		glog.Errorf("failed to write to file %s: %v", statsFile, err)
	}
}
