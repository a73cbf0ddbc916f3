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

// Package ast provides the abstract syntax tree for Modelica sources.  The
// tree is a closed family of tagged variants: every variant carries a stable
// tag (its "@type" in the serialised shape), an optional non-owning
// back-pointer to the concrete-syntax node it was constructed from, and a
// back-pointer to its AST parent.  Nodes are constructed either from a
// concrete syntax tree (see factory.go) or from a deserialised shape (see
// shape.go).
package ast

import (
	"fmt"
	"reflect"

	"github.com/modelscript/modelscript/pkg/syntax"
)

// Node is implemented by every variant of the abstract syntax tree.
type Node interface {
	// Tag returns the stable identifier of this variant, as used by the
	// serialised shape.
	Tag() string
	// Syntax returns the concrete-syntax node this node was constructed from,
	// or nil when it was deserialised.  This reference is non-owning and used
	// for diagnostics only.
	Syntax() syntax.Node
	// Parent returns the enclosing AST node, or nil at the root.
	Parent() Node
	// Accept dispatches on the concrete variant of this node.
	Accept(v Visitor, arg any) any
	// shape converts this node into its serialised form.
	shape() map[string]any
	// setParent records the enclosing AST node.
	setParent(parent Node)
	// setSyntax records the concrete-syntax back-pointer.
	setSyntax(syntax syntax.Node)
}

// InvalidNodeError reports a node factory which received a concrete or
// abstract node whose tag does not match the expected variant.
type InvalidNodeError struct {
	// Expected tag (or description of the expected variant family).
	Expected string
	// Actual tag encountered.
	Actual string
}

// Error implements the error interface.
func (p *InvalidNodeError) Error() string {
	return fmt.Sprintf("invalid node: expected %s, found %s", p.Expected, p.Actual)
}

// invalidNode is a helper for constructing an InvalidNodeError.
func invalidNode(expected string, actual string) error {
	return &InvalidNodeError{expected, actual}
}

// node provides the fields shared by every variant: the non-owning
// concrete-syntax back-pointer and the AST parent.
type node struct {
	syntax syntax.Node
	parent Node
}

// Syntax returns the concrete-syntax node this node was constructed from, or
// nil when it was deserialised.
func (p *node) Syntax() syntax.Node {
	return p.syntax
}

// Parent returns the enclosing AST node, or nil at the root.
func (p *node) Parent() Node {
	return p.parent
}

func (p *node) setParent(parent Node) {
	p.parent = parent
}

func (p *node) setSyntax(syntax syntax.Node) {
	p.syntax = syntax
}

// attach records the concrete-syntax back-pointer on a freshly built node,
// returning that node for convenience.
func attach[T Node](p T, n syntax.Node) T {
	p.setSyntax(n)
	return p
}

// adopt records this node as the parent of each given child, ignoring nils.
func adopt[T Node](parent Node, children ...T) {
	for _, child := range children {
		if !isNil(child) {
			child.setParent(parent)
		}
	}
}

// isNil determines whether an interface value holds no node.  This is
// required because a typed nil pointer stored in a Node interface is not
// equal to the nil interface.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	//
	v := reflect.ValueOf(n)
	//
	return v.Kind() == reflect.Pointer && v.IsNil()
}
