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

// Package modelica provides the in-tree parser for the Modelica concrete
// syntax.  It produces trees satisfying the syntax collaborator interface,
// with children addressed through named fields.
package modelica

import (
	"github.com/modelscript/modelscript/pkg/syntax"
	"github.com/modelscript/modelscript/pkg/util/source"
)

// node is the concrete syntax node produced by this parser.
type node struct {
	// Kind of this node.
	kind string
	// Source file this node was parsed from.
	file *source.File
	// Span covered by this node.
	span source.Span
	// Fields map names to children.
	fields map[string][]syntax.Node
	// Children in source order.
	children []syntax.Node
	// Literal overrides the spanned text, e.g. to normalise two-word class
	// kinds.
	literal string
}

func newNode(kind string, file *source.File, span source.Span) *node {
	return &node{kind, file, span, nil, nil, ""}
}

// add appends a child under the given field, extending this node's span to
// cover it.
func (p *node) add(field string, child syntax.Node) {
	if child == nil {
		return
	}
	//
	if p.fields == nil {
		p.fields = make(map[string][]syntax.Node)
	}
	//
	p.fields[field] = append(p.fields[field], child)
	p.children = append(p.children, child)
	p.span = p.span.Join(child.Span())
}

// Type returns the tag identifying the grammatical production of this node.
func (p *node) Type() string {
	return p.kind
}

// Text returns the source text covered by this node.
func (p *node) Text() string {
	if p.literal != "" {
		return p.literal
	}
	//
	return p.file.Text(p.span)
}

// Span returns the character span covered by this node.
func (p *node) Span() source.Span {
	return p.span
}

// ChildForFieldName returns the single child stored under the given field, or
// nil when absent.
func (p *node) ChildForFieldName(name string) syntax.Node {
	if children := p.fields[name]; len(children) > 0 {
		return children[0]
	}
	//
	return nil
}

// ChildrenForFieldName returns all children stored under the given field, in
// source order.
func (p *node) ChildrenForFieldName(name string) []syntax.Node {
	return p.fields[name]
}

// NamedChildren returns all named children of this node, in source order.
func (p *node) NamedChildren() []syntax.Node {
	return p.children
}

// Walk returns a cursor positioned on this node.
func (p *node) Walk() *syntax.Cursor {
	return syntax.NewCursor(p)
}

// tree pairs a root node with its source file.
type tree struct {
	root *node
	file *source.File
}

// RootNode returns the root of this tree.
func (p *tree) RootNode() syntax.Node {
	return p.root
}

// Source returns the source file this tree was parsed from.
func (p *tree) Source() *source.File {
	return p.file
}
