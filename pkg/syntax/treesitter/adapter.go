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

// Package treesitter adapts a tree-sitter parse tree to the concrete-syntax
// collaborator interface, such that a tree-sitter grammar for Modelica can
// stand in for the in-tree parser.  The grammar is an injection point: this
// package never bundles one.
package treesitter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/modelscript/modelscript/pkg/syntax"
	"github.com/modelscript/modelscript/pkg/util/source"
)

// Parser implements the syntax collaborator on top of a tree-sitter grammar.
type Parser struct {
	parser *sitter.Parser
}

// NewParser constructs a parser for the given tree-sitter language.
func NewParser(language *sitter.Language) *Parser {
	p := sitter.NewParser()
	p.SetLanguage(language)
	//
	return &Parser{p}
}

// Register installs this parser in a registry under the given file extension
// (including the dot).
func Register(registry *syntax.Registry, ext string, language *sitter.Language) {
	registry.Register(ext, func() syntax.Parser { return NewParser(language) })
}

// Parse turns a source file into a concrete syntax tree.  The hint is
// ignored; tree-sitter manages its own buffers.
func (p *Parser) Parse(file *source.File, hint uint) (syntax.Tree, error) {
	content := []byte(string(file.Contents()))
	//
	parsed, err := p.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	//
	root := parsed.RootNode()
	//
	if root.HasError() {
		err := file.SyntaxError(spanOf(root), "syntax error")
		return nil, &syntax.ParseError{Errors: []source.SyntaxError{*err}}
	}
	//
	return &tree{&node{root, content, file}, file}, nil
}

// node wraps a tree-sitter node.  Note that spans are byte-based, as
// tree-sitter counts bytes rather than runes; for ASCII sources the two
// coincide.
type node struct {
	inner   *sitter.Node
	content []byte
	file    *source.File
}

// Type returns the tag identifying the grammatical production of this node.
func (p *node) Type() string {
	return p.inner.Type()
}

// Text returns the source text covered by this node.
func (p *node) Text() string {
	return p.inner.Content(p.content)
}

// Span returns the character span covered by this node.
func (p *node) Span() source.Span {
	return spanOf(p.inner)
}

// ChildForFieldName returns the single child stored under the given field, or
// nil when absent.
func (p *node) ChildForFieldName(name string) syntax.Node {
	if child := p.inner.ChildByFieldName(name); child != nil {
		return &node{child, p.content, p.file}
	}
	//
	return nil
}

// ChildrenForFieldName returns all children stored under the given field, in
// source order.
func (p *node) ChildrenForFieldName(name string) []syntax.Node {
	var children []syntax.Node
	//
	count := int(p.inner.ChildCount())
	//
	for i := 0; i < count; i++ {
		if p.inner.FieldNameForChild(i) == name {
			children = append(children, &node{p.inner.Child(i), p.content, p.file})
		}
	}
	//
	return children
}

// NamedChildren returns all named children of this node, in source order.
func (p *node) NamedChildren() []syntax.Node {
	count := int(p.inner.NamedChildCount())
	children := make([]syntax.Node, count)
	//
	for i := 0; i < count; i++ {
		children[i] = &node{p.inner.NamedChild(i), p.content, p.file}
	}
	//
	return children
}

// Walk returns a cursor positioned on this node.
func (p *node) Walk() *syntax.Cursor {
	return syntax.NewCursor(p)
}

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

func spanOf(n *sitter.Node) source.Span {
	return source.NewSpan(int(n.StartByte()), int(n.EndByte()))
}
