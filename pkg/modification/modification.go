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

// Package modification implements the modification algebra: normalised
// modification values together with the merge, extract and split operations
// used during instantiation.
package modification

import (
	"strings"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/eval"
)

// Modification is a normalised modification: a list of arguments, an
// optional modification expression (the "= expr" right-hand side), an
// optional description, and a lazily computed expression value.
type Modification struct {
	// Arguments in outer-before-inner order.
	arguments []Argument
	// Modification expression, when any.
	expression ast.Expression
	// Description, when any.
	description *ast.Description
	// Value of the expression, once computed.
	value eval.Value
	// Indicates the value has been computed.
	evaluated bool
}

// New constructs a modification from its parts.
func New(arguments []Argument, expr ast.Expression, description *ast.Description) *Modification {
	return &Modification{arguments, expr, description, nil, false}
}

// Empty constructs a modification with no arguments and no expression.
func Empty() *Modification {
	return &Modification{}
}

// Of translates an AST modification (the class-modification arguments plus
// the modification expression) into its normalised form.
func Of(n *ast.Modification) *Modification {
	if n == nil {
		return Empty()
	}
	//
	return New(ArgumentsOf(n.ClassModification), n.Expression, nil)
}

// OfClassModification translates a bare AST class modification, as carried
// by extends clauses and annotations.
func OfClassModification(n *ast.ClassModification) *Modification {
	return New(ArgumentsOf(n), nil, nil)
}

// IsEmpty reports whether this modification carries neither arguments nor an
// expression.
func (p *Modification) IsEmpty() bool {
	return p == nil || (len(p.arguments) == 0 && p.expression == nil)
}

// Arguments returns the arguments of this modification in order.
func (p *Modification) Arguments() []Argument {
	if p == nil {
		return nil
	}
	//
	return p.arguments
}

// Expression returns the modification expression, or nil.
func (p *Modification) Expression() ast.Expression {
	if p == nil {
		return nil
	}
	//
	return p.expression
}

// Description returns the description, or nil.
func (p *Modification) Description() *ast.Description {
	if p == nil {
		return nil
	}
	//
	return p.description
}

// Argument returns the first argument whose head name equals the given name,
// or nil.
func (p *Modification) Argument(name string) Argument {
	if p == nil {
		return nil
	}
	//
	for _, arg := range p.arguments {
		if arg.Name() == name {
			return arg
		}
	}
	//
	return nil
}

// Value computes (once) and returns the value of the modification
// expression against the given resolver.  A modification without an
// expression yields nil.
func (p *Modification) Value(resolver eval.Resolver) (eval.Value, error) {
	if p == nil || p.expression == nil {
		return nil, nil
	}
	//
	if !p.evaluated {
		value, err := eval.Evaluate(p.expression, resolver)
		if err != nil {
			return nil, err
		}
		//
		p.value, p.evaluated = value, true
	}
	//
	return p.value, nil
}

// Extract produces the modification applying to a named element: the first
// argument whose head name matches is peeled via Extract, with its
// expression and description carried over.  An unmatched name yields the
// empty modification.
func (p *Modification) Extract(name string) *Modification {
	arg := p.Argument(name)
	if arg == nil {
		return Empty()
	}
	//
	if em, ok := arg.(*ElementModification); ok {
		// A dotted name keeps its expression on the peeled tail argument
		// rather than hoisting it onto the extracted modification.
		if len(em.NameParts()) > 1 {
			return New(em.Extract(), nil, nil)
		}
		//
		return New(em.Arguments(), em.Expression(), em.Description())
	}
	//
	return New(nil, arg.Expression(), nil)
}

// Merge combines an outer modification with an overriding one.  The result
// starts with the overriding arguments; every outer argument whose name is
// absent from the overriding set is prepended, preserving outer-before-inner
// order.  Description and expression fall back from overriding to outer.
// Merge is associative but not commutative.
func Merge(outer *Modification, overriding *Modification) *Modification {
	if outer.IsEmpty() {
		if overriding == nil {
			return Empty()
		}
		//
		return overriding
	}
	//
	if overriding.IsEmpty() {
		return outer
	}
	//
	overridden := make(map[string]bool, len(overriding.arguments))
	//
	for _, arg := range overriding.arguments {
		overridden[arg.Name()] = true
	}
	//
	var arguments []Argument
	//
	for _, arg := range outer.arguments {
		if !overridden[arg.Name()] {
			arguments = append(arguments, arg)
		}
	}
	//
	arguments = append(arguments, overriding.arguments...)
	//
	expr := overriding.expression
	if expr == nil {
		expr = outer.expression
	}
	//
	description := overriding.description
	if description == nil {
		description = outer.description
	}
	//
	return New(arguments, expr, description)
}

// Split produces n modifications for array-element specialisation, the i-th
// of which carries the i-th slice of every argument and of the modification
// expression.
func (p *Modification) Split(n uint) ([]*Modification, error) {
	split := make([]*Modification, n)
	//
	for i := uint(0); i < n; i++ {
		s, err := p.SplitAt(n, i)
		if err != nil {
			return nil, err
		}
		//
		split[i] = s
	}
	//
	return split, nil
}

// SplitAt produces only the i-th of n slices of this modification.
func (p *Modification) SplitAt(n uint, i uint) (*Modification, error) {
	if p.IsEmpty() {
		return Empty(), nil
	}
	//
	arguments := make([]Argument, len(p.arguments))
	//
	for j, arg := range p.arguments {
		s, err := arg.Split(n, i)
		if err != nil {
			return nil, err
		}
		//
		arguments[j] = s
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
	return New(arguments, expr, p.description), nil
}

func (p *Modification) String() string {
	if p.IsEmpty() {
		return "()"
	}
	//
	var builder strings.Builder
	//
	parts := make([]string, len(p.arguments))
	//
	for i, arg := range p.arguments {
		parts[i] = arg.String()
	}
	//
	builder.WriteString("(")
	builder.WriteString(strings.Join(parts, ", "))
	builder.WriteString(")")
	//
	if p.expression != nil {
		builder.WriteString(" = ")
		builder.WriteString(exprString(p.expression))
	}
	//
	return builder.String()
}

func exprString(e ast.Expression) string {
	return ast.Text(e)
}
