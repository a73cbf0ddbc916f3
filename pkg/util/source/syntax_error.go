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
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// SyntaxError is a structured error which contains the span of text on which
// the error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Span of the error, in character (rune) indices into the file contents.
	span Span
	// Error message being reported
	msg string
}

// SourceFile returns the underlying source file that this syntax error
// covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the error message.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	line := p.srcfile.FindFirstEnclosingLine(p.span)
	return fmt.Sprintf("%s:%d: %s", p.srcfile.Filename(), line.Number(), p.msg)
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}

// Report prints this syntax error to the given writer, highlighting the
// offending span of the enclosing line.  ANSI colouring is applied only when
// the writer is an interactive terminal.
func (p *SyntaxError) Report(w io.Writer) {
	ansi := isTerminal(w)
	line := p.FirstEnclosingLine()
	// Offset of the span within the enclosing line.
	offset := p.span.Start() - line.Start()
	width := min(p.span.Length(), line.Length()-offset)
	width = max(width, 1)
	//
	fmt.Fprintf(w, "%s:%d: %s\n", p.srcfile.Filename(), line.Number(), p.msg)
	fmt.Fprintf(w, "%s\n", line.String())
	//
	highlight := strings.Repeat(" ", offset) + strings.Repeat("^", width)
	if ansi {
		fmt.Fprintf(w, "\033[31m%s\033[0m\n", highlight)
	} else {
		fmt.Fprintf(w, "%s\n", highlight)
	}
}

// Determine whether or not the given writer is an interactive terminal.
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	//
	return false
}
