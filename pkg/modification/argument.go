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
package modification

import (
	"fmt"
	"strings"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/eval"
)

// Argument is one argument of a modification: either an element modification
// (dotted name, nested arguments) or a parameter modification (identifier
// bound to an expression).
type Argument interface {
	// Name returns the head name component of this argument.
	Name() string
	// Expression returns the expression bound by this argument, or nil.
	Expression() ast.Expression
	// Split produces the i-th of n slices of this argument.
	Split(n uint, i uint) (Argument, error)
	// String renders this argument in Modelica modification syntax.
	String() string
}

// ============================================================================
// ElementModification
// ============================================================================

// ElementModification modifies a (possibly dotted) named element, carrying
// nested arguments, an optional bound expression and an optional description.
// Nested class modifications taken from the AST are materialised on demand.
type ElementModification struct {
	// Dotted name components, never empty.
	name []string
	// Nested arguments, or nil when not yet materialised.
	arguments []Argument
	// Nested class modification of the originating AST node, when any.
	nested *ast.ClassModification
	// Bound expression, when any.
	expression ast.Expression
	// Description, when any.
	description *ast.Description
	// Each flag of the originating AST node.
	each bool
	// Final flag of the originating AST node.
	final bool
}

// NewElementModification constructs an element modification with
// already-materialised nested arguments.
func NewElementModification(name []string, arguments []Argument, expr ast.Expression,
	description *ast.Description) *ElementModification {
	if len(name) == 0 {
		panic("element modification requires a name")
	}
	//
	return &ElementModification{name, arguments, nil, expr, description, false, false}
}

// NewElementModificationOf wraps an AST element modification verbatim; its
// nested class modification is translated on demand.
func NewElementModificationOf(n *ast.ElementModification) *ElementModification {
	return &ElementModification{
		name:        n.Name.Parts,
		arguments:   nil,
		nested:      n.ClassModification,
		expression:  n.Expression,
		description: n.Description,
		each:        n.Each,
		final:       n.Final,
	}
}

// Name returns the head name component of this argument.
func (p *ElementModification) Name() string {
	return p.name[0]
}

// NameParts returns all name components of this argument.
func (p *ElementModification) NameParts() []string {
	return p.name
}

// Each reports the "each" flag.
func (p *ElementModification) Each() bool {
	return p.each
}

// Final reports the "final" flag.
func (p *ElementModification) Final() bool {
	return p.final
}

// Expression returns the expression bound by this argument, or nil.
func (p *ElementModification) Expression() ast.Expression {
	return p.expression
}

// Description returns the description of this argument, or nil.
func (p *ElementModification) Description() *ast.Description {
	return p.description
}

// Arguments returns the nested arguments, materialising them from the
// originating AST node on first use.
func (p *ElementModification) Arguments() []Argument {
	if p.arguments == nil && p.nested != nil {
		p.arguments = ArgumentsOf(p.nested)
	}
	//
	return p.arguments
}

// Extract peels the head name component: a dotted name of depth greater than
// one yields a single element modification keyed on the tail, whilst depth
// one yields the nested arguments directly.
func (p *ElementModification) Extract() []Argument {
	if len(p.name) > 1 {
		tail := &ElementModification{
			name:        p.name[1:],
			arguments:   p.arguments,
			nested:      p.nested,
			expression:  p.expression,
			description: p.description,
			each:        p.each,
			final:       p.final,
		}
		//
		return []Argument{tail}
	}
	//
	return p.Arguments()
}

// Split produces the i-th of n slices of this argument: nested arguments
// split recursively and the bound expression splits via the expression
// engine.
func (p *ElementModification) Split(n uint, i uint) (Argument, error) {
	arguments := p.Arguments()
	split := make([]Argument, len(arguments))
	//
	for j, arg := range arguments {
		s, err := arg.Split(n, i)
		if err != nil {
			return nil, err
		}
		//
		split[j] = s
	}
	//
	expr := p.expression
	//
	if expr != nil {
		var err error
		//
		if expr, err = eval.Split(expr, n, i); err != nil {
			return nil, err
		}
	}
	//
	return &ElementModification{p.name, split, nil, expr, p.description, p.each, p.final}, nil
}

func (p *ElementModification) String() string {
	var builder strings.Builder
	//
	builder.WriteString(strings.Join(p.name, "."))
	//
	if arguments := p.Arguments(); len(arguments) > 0 {
		parts := make([]string, len(arguments))
		//
		for i, arg := range arguments {
			parts[i] = arg.String()
		}
		//
		fmt.Fprintf(&builder, "(%s)", strings.Join(parts, ", "))
	}
	//
	if p.expression != nil {
		fmt.Fprintf(&builder, " = %s", exprString(p.expression))
	}
	//
	return builder.String()
}

// ============================================================================
// ParameterModification
// ============================================================================

// ParameterModification binds a single identifier to an expression, with no
// nested arguments.
type ParameterModification struct {
	// Identifier being bound.
	name string
	// Bound expression.
	expression ast.Expression
}

// NewParameterModification constructs a parameter modification.
func NewParameterModification(name string, expr ast.Expression) *ParameterModification {
	return &ParameterModification{name, expr}
}

// Name returns the bound identifier.
func (p *ParameterModification) Name() string {
	return p.name
}

// Expression returns the bound expression.
func (p *ParameterModification) Expression() ast.Expression {
	return p.expression
}

// Split produces the i-th of n slices of this argument by splitting the
// bound expression.
func (p *ParameterModification) Split(n uint, i uint) (Argument, error) {
	expr, err := eval.Split(p.expression, n, i)
	if err != nil {
		return nil, err
	}
	//
	return &ParameterModification{p.name, expr}, nil
}

func (p *ParameterModification) String() string {
	return fmt.Sprintf("%s = %s", p.name, exprString(p.expression))
}

// ArgumentsOf translates the arguments of an AST class modification, wrapping
// element modifications verbatim.  Redeclarations carry no modification
// semantics here and are skipped.
func ArgumentsOf(n *ast.ClassModification) []Argument {
	var arguments []Argument
	//
	if n == nil {
		return nil
	}
	//
	for _, arg := range n.Arguments {
		if em, ok := arg.(*ast.ElementModification); ok && em.Name != nil {
			arguments = append(arguments, NewElementModificationOf(em))
		}
	}
	//
	return arguments
}
