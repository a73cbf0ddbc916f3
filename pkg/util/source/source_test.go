// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"bytes"
	"strings"
	"testing"
)

func Test_Span_01(t *testing.T) {
	span := NewSpan(2, 5)
	//
	if span.Start() != 2 || span.End() != 5 || span.Length() != 3 {
		t.Errorf("unexpected span %v", span)
	}
}

func Test_Span_02(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for inverted span")
		}
	}()
	//
	NewSpan(5, 2)
}

func Test_Span_Join(t *testing.T) {
	span := NewSpan(2, 5)
	joined := span.Join(NewSpan(4, 9))
	//
	if joined.Start() != 2 || joined.End() != 9 {
		t.Errorf("unexpected join %v", joined)
	}
}

func Test_SourceFile_Lines(t *testing.T) {
	file := NewSourceFile("test.mo", []byte("first\nsecond\nthird"))
	//
	line := file.FindFirstEnclosingLine(NewSpan(7, 9))
	//
	if line.Number() != 2 {
		t.Errorf("expected line 2, got %d", line.Number())
	}
	//
	if line.String() != "second" {
		t.Errorf("expected \"second\", got %q", line.String())
	}
}

func Test_SyntaxError_Report(t *testing.T) {
	file := NewSourceFile("test.mo", []byte("model M end N;"))
	err := file.SyntaxError(NewSpan(12, 13), "mismatched end identifier")
	//
	if !strings.Contains(err.Error(), "test.mo:1") {
		t.Errorf("unexpected message %q", err.Error())
	}
	//
	var buffer bytes.Buffer
	err.Report(&buffer)
	//
	if !strings.Contains(buffer.String(), "^") {
		t.Errorf("expected highlight, got %q", buffer.String())
	}
}
