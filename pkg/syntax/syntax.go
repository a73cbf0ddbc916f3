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

// Package syntax defines the concrete-syntax collaborator through which the
// semantic front-end consumes parse trees.  Nodes are typed by a small tag
// string and expose their children through named fields, mirroring the shape
// of a tree-sitter parse tree.  Two implementations exist: the in-tree
// Modelica parser (subpackage modelica) and an adapter over tree-sitter
// (subpackage treesitter).
package syntax

import (
	"fmt"

	"github.com/modelscript/modelscript/pkg/util/source"
)

// Node is a single node of a concrete syntax tree.
type Node interface {
	// Type returns the tag identifying the grammatical production of this
	// node.
	Type() string
	// Text returns the source text covered by this node.
	Text() string
	// Span returns the character span covered by this node within its source
	// file.
	Span() source.Span
	// ChildForFieldName returns the single child stored under the given
	// field, or nil when absent.
	ChildForFieldName(name string) Node
	// ChildrenForFieldName returns all children stored under the given field,
	// in source order.
	ChildrenForFieldName(name string) []Node
	// NamedChildren returns all named children of this node, in source order.
	NamedChildren() []Node
	// Walk returns a cursor positioned on this node.
	Walk() *Cursor
}

// Tree is a parsed concrete syntax tree together with its originating file.
type Tree interface {
	// RootNode returns the root of this tree.
	RootNode() Node
	// Source returns the source file this tree was parsed from.
	Source() *source.File
}

// Parser is the collaborator which turns source text into a concrete syntax
// tree.  The hint indicates the expected size of the parse buffer, in bytes;
// implementations are free to ignore it.
type Parser interface {
	Parse(file *source.File, hint uint) (Tree, error)
}

// ParseError reports an ill-formed source file, wrapping the syntax errors
// produced by the parser.
type ParseError struct {
	// Errors contains one entry per diagnostic, never empty.
	Errors []source.SyntaxError
}

// Error implements the error interface.
func (p *ParseError) Error() string {
	return p.Errors[0].Error()
}

// Cursor supports stateful traversal over a concrete syntax tree.
type Cursor struct {
	// Path of nodes from the root to the current position, innermost last.
	stack []Node
	// Child indices taken at each level of the stack.
	indices []int
}

// NewCursor constructs a cursor rooted at the given node.
func NewCursor(root Node) *Cursor {
	return &Cursor{[]Node{root}, []int{0}}
}

// Node returns the node the cursor currently points at.
func (p *Cursor) Node() Node {
	return p.stack[len(p.stack)-1]
}

// GotoFirstChild moves to the first named child of the current node,
// returning false if it has none.
func (p *Cursor) GotoFirstChild() bool {
	children := p.Node().NamedChildren()
	if len(children) == 0 {
		return false
	}
	//
	p.stack = append(p.stack, children[0])
	p.indices = append(p.indices, 0)
	//
	return true
}

// GotoNextSibling moves to the next named sibling of the current node,
// returning false if there is none (or the cursor is at its root).
func (p *Cursor) GotoNextSibling() bool {
	if len(p.stack) < 2 {
		return false
	}
	//
	n := len(p.stack) - 1
	siblings := p.stack[n-1].NamedChildren()
	next := p.indices[n] + 1
	//
	if next >= len(siblings) {
		return false
	}
	//
	p.stack[n] = siblings[next]
	p.indices[n] = next
	//
	return true
}

// GotoParent moves to the parent of the current node, returning false if the
// cursor is already at its root.
func (p *Cursor) GotoParent() bool {
	if len(p.stack) < 2 {
		return false
	}
	//
	p.stack = p.stack[:len(p.stack)-1]
	p.indices = p.indices[:len(p.indices)-1]
	//
	return true
}

// Registry maps file extensions to parser constructors, such that the
// library loader can locate an appropriate parser for any source file it
// encounters.
type Registry struct {
	parsers map[string]func() Parser
}

// NewRegistry constructs an initially empty parser registry.
func NewRegistry() *Registry {
	return &Registry{make(map[string]func() Parser)}
}

// Register associates a parser constructor with a file extension (including
// the dot).
func (p *Registry) Register(ext string, constructor func() Parser) {
	p.parsers[ext] = constructor
}

// ParserFor returns a parser for the given file extension, or an error when
// no parser was registered for it.
func (p *Registry) ParserFor(ext string) (Parser, error) {
	if constructor, ok := p.parsers[ext]; ok {
		return constructor(), nil
	}
	//
	return nil, fmt.Errorf("no parser registered for %q files", ext)
}
