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

// Package testcase compares analysis output against golden
// expected.textproto files checked in next to the test fixtures.
package testcase

import (
	"os"
	"path/filepath"
	"testing"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	pb "naive.systems/rulecheck/analyzer/proto"
)

type TestCase struct {
	t      *testing.T
	Srcdir string
}

func New(t *testing.T, dirname string) TestCase {
	srcdir, err := filepath.Abs(dirname)
	if err != nil {
		t.Fatalf("filepath.Abs(%s): %v", dirname, err)
	}
	return TestCase{t, srcdir}
}

func (tc *TestCase) expectedEquals(actual *pb.ResultsList) bool {
	path := filepath.Join(tc.Srcdir, "expected.textproto")
	bytes, err := os.ReadFile(path)
	if err != nil {
		tc.t.Fatalf("os.ReadFile(%s): %v", path, err)
	}
	expected := &pb.ResultsList{}
	err = prototext.Unmarshal(bytes, expected)
	if err != nil {
		tc.t.Fatalf("prototext.Unmarshal(%s): %v", path, err)
	}
	return proto.Equal(expected, actual)
}

func (tc *TestCase) dumpProto(m proto.Message) {
	bytes, err := prototext.Marshal(m)
	if err == nil {
		tc.t.Log(string(bytes))
	} else {
		tc.t.Errorf("prototext.Marshal: %v", err)
	}
}

func (tc *TestCase) ExpectOK(actual *pb.ResultsList, err error) {
	if err != nil {
		tc.t.Fatalf("analysis returned error: %v", err)
	}
	if !tc.expectedEquals(actual) {
		tc.dumpProto(actual)
		tc.t.Fatal("analysis output does not match expected.textproto")
	}
}

func (tc *TestCase) ExpectError(_ *pb.ResultsList, err error) {
	if err == nil {
		tc.t.Fatal("analysis is expected to return an error")
	}
	tc.t.Logf("analysis returned error: %v", err)
}
