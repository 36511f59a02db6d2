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

// Package runner fans the translation units of one analysis run out to
// a goroutine pool and collects their findings.
package runner

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/golang/glog"
	"golang.org/x/text/message"
	pb "naive.systems/rulecheck/analyzer/proto"
	"naive.systems/rulecheck/ast"
	"naive.systems/rulecheck/crules/analyzer"
	"naive.systems/rulecheck/cruleslib/basic"
	"naive.systems/rulecheck/cruleslib/i18n"
	"naive.systems/rulecheck/cruleslib/options"
	"naive.systems/rulecheck/cruleslib/stats"
	"naive.systems/rulecheck/engine"
	"naive.systems/rulecheck/rule"
	"naive.systems/rulecheck/symtab"
)

// The task for Runner to run in parallel. One task is one translation
// unit; the front end has already parsed it.
type UnitTask struct {
	Id      int
	Path    string
	Root    *ast.Node
	Symbols *symtab.Table
}

type unitResult struct {
	id          int
	path        string
	resultsList *pb.ResultsList
	err         error
}

// A goroutine workgroup to analyze translation units in parallel. The
// registry must be frozen before the first task is added.
type ParaTaskRunner struct {
	showProgress   bool
	registry       *rule.Registry
	resultsDir     string
	workerWg       sync.WaitGroup
	collectorWg    sync.WaitGroup
	jobs_chan      chan UnitTask
	results_chan   chan unitResult
	sigs_exiting   chan bool
	results        *pb.ResultsSet
	errors         []error
	processPrinter basic.CheckingProcessPrinter
}

func (pt *ParaTaskRunner) worker(jobs <-chan UnitTask, results chan<- unitResult, printer *message.Printer) {
	for j := range jobs {
		if pt.showProgress {
			pt.processPrinter.StartAnalyzeTask(j.Path, printer)
		}
		func() {
			defer func() {
				// recover from possible panic
				if r := recover(); r != nil {
					glog.Error("Recovered in analyze: ", r, string(debug.Stack()))
					results <- unitResult{id: j.Id, path: j.Path, err: errors.New("panic in analyze unit"), resultsList: nil}
					if pt.showProgress {
						pt.processPrinter.FinishAnalyzeTask(j.Path, printer)
					}
				}
			}()
			resultList, err := analyzer.Analyze(context.Background(), j.Path, j.Root, j.Symbols, pt.registry)
			results <- unitResult{id: j.Id, path: j.Path, err: err, resultsList: resultList}
			if pt.showProgress {
				pt.processPrinter.FinishAnalyzeTask(j.Path, printer)
				stats.WriteProgress(pt.resultsDir, stats.AC, pt.processPrinter.GetPercentString(), pt.processPrinter.GetStartedAt())
			}
		}()
	}
	pt.workerWg.Done()
}

// Create a new task runner and results collector.
func NewParaTaskRunner(registry *rule.Registry, taskNums int, envOpts *options.EnvOptions) *ParaTaskRunner {
	printer := i18n.GetPrinter(envOpts.Lang)
	numWorkers := envOpts.NumWorkers
	showProgress := envOpts.CheckProgress
	if numWorkers == 0 {
		numWorkers = int32(runtime.NumCPU())
		if showProgress {
			basic.PrintfWithTimeStamp(printer.Sprintf("Use %d CPU(s)", numWorkers))
		}
	}
	paraRunner := &ParaTaskRunner{
		showProgress:   showProgress,
		registry:       registry,
		resultsDir:     envOpts.ResultsDir,
		jobs_chan:      make(chan UnitTask, numWorkers),
		results_chan:   make(chan unitResult, numWorkers),
		sigs_exiting:   make(chan bool, 1),
		results:        pb.NewResultsSet(),
		errors:         make([]error, taskNums),
		processPrinter: basic.NewCheckingProcessPrinter(taskNums),
	}
	for w := 0; w < int(numWorkers); w++ {
		paraRunner.workerWg.Add(1)
		go paraRunner.worker(paraRunner.jobs_chan, paraRunner.results_chan, printer)
	}

	sigs := make(chan os.Signal, 1)
	// if a signal is received, notify the loop to stop sending new tasks
	signal.Notify(sigs, syscall.SIGINT)
	// collect results
	paraRunner.collectorWg.Add(1)
	go func() {
		for jobResult := range paraRunner.results_chan {
			select {
			case <-sigs:
				// if received a SIGINT, stop collector and the task loop
				if paraRunner.showProgress {
					basic.PrintfWithTimeStamp(printer.Sprintf("Ctrl C pressed, stopping analysis"))
				}
				paraRunner.sigs_exiting <- true
				paraRunner.collectorWg.Done()
				return
			default:
			}
			if jobResult.err == nil {
				paraRunner.results.AddList(jobResult.resultsList)
			} else {
				glog.Errorf("Analyze %v got error %v", jobResult.path, jobResult.err)
			}
			paraRunner.errors[jobResult.id] = jobResult.err
		}
		paraRunner.collectorWg.Done()
	}()
	return paraRunner
}

// Check for the SIGINT exiting signal.
// If the exiting signal has been received, it returns the results
// collected so far and the errors. results is never nil in that case.
// Otherwise it returns nil for both.
func (pt *ParaTaskRunner) CheckSignalExiting() (results *pb.ResultsList, errors []error) {
	select {
	case <-pt.sigs_exiting:
		// close the jobs_chan to let the workers end
		close(pt.jobs_chan)
		pt.collectorWg.Wait()
		// the collector has stopped, so return directly
		return &pt.results.ResultsList, pt.errors
	default:
		return nil, nil
	}
}

// Add a task to the task runner and start running the task.
func (pt *ParaTaskRunner) AddTask(task UnitTask) {
	pt.jobs_chan <- task
}

// Wait until all workers and the collector are finished and all results
// are collected. Return the results and errors.
func (pt *ParaTaskRunner) CollectResultsAndErrors() (results *pb.ResultsList, errors []error) {
	go func() {
		pt.workerWg.Wait()
		close(pt.results_chan)
	}()
	close(pt.jobs_chan)
	pt.collectorWg.Wait()
	return &pt.results.ResultsList, pt.errors
}

// Run analyzes every task with the given registry, honoring SIGINT
// between tasks, and returns the sorted findings. It prints the
// summary line when progress printing is on.
func Run(tasks []UnitTask, registry *rule.Registry, envOpts *options.EnvOptions) (*pb.ResultsList, []error) {
	paraRunner := NewParaTaskRunner(registry, len(tasks), envOpts)
	for _, task := range tasks {
		if results, errs := paraRunner.CheckSignalExiting(); results != nil {
			engine.SortResults(results)
			return results, errs
		}
		paraRunner.AddTask(task)
	}
	allResults, errs := paraRunner.CollectResultsAndErrors()
	engine.SortResults(allResults)
	if envOpts.CheckProgress {
		var cnt stats.SeverityCount
		for _, result := range allResults.Results {
			stats.AccumulateBySeverity(&cnt, result)
		}
		printer := i18n.GetPrinter(envOpts.Lang)
		basic.PrintfWithTimeStamp(printer.Sprintf("Analysis completed: %d error(s), %d warning(s)", cnt.Error, cnt.Warning))
	}
	return allResults, errs
}
