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
package ast

// Equation is implemented by every equation variant.
type Equation interface {
	Node
	isEquation()
}

// ============================================================================
// ForIndex
// ============================================================================

// ForIndex is a single iteration variable of a for-equation or
// for-statement, e.g. "i in 1:10".
type ForIndex struct {
	node
	// Identifier of the iteration variable.
	Identifier string
	// Expression iterated over, when given.
	Expression Expression
}

// NewForIndex constructs a for index.
func NewForIndex(identifier string, expr Expression) *ForIndex {
	p := &ForIndex{node{}, identifier, expr}
	adopt(p, expr)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ForIndex) Tag() string { return TagForIndex }

// Accept dispatches on the concrete variant of this node.
func (p *ForIndex) Accept(v Visitor, arg any) any { return v.VisitForIndex(p, arg) }

// ============================================================================
// SimpleEquation
// ============================================================================

// SimpleEquation equates two expressions: "lhs = rhs".
type SimpleEquation struct {
	node
	// Lhs of the equation.
	Lhs Expression
	// Rhs of the equation.
	Rhs Expression
	// Description of this equation, when given.
	Description *Description
}

// NewSimpleEquation constructs a simple equation.
func NewSimpleEquation(lhs Expression, rhs Expression, description *Description) *SimpleEquation {
	p := &SimpleEquation{node{}, lhs, rhs, description}
	adopt(p, lhs, rhs)
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *SimpleEquation) Tag() string { return TagSimpleEquation }

// Accept dispatches on the concrete variant of this node.
func (p *SimpleEquation) Accept(v Visitor, arg any) any { return v.VisitSimpleEquation(p, arg) }

func (p *SimpleEquation) isEquation() {}

// ============================================================================
// ConnectEquation
// ============================================================================

// ConnectEquation connects two component references: "connect(a, b)".
type ConnectEquation struct {
	node
	// From is the first connector.
	From *ComponentReference
	// To is the second connector.
	To *ComponentReference
	// Description of this equation, when given.
	Description *Description
}

// NewConnectEquation constructs a connect equation.
func NewConnectEquation(from *ComponentReference, to *ComponentReference,
	description *Description) *ConnectEquation {
	p := &ConnectEquation{node{}, from, to, description}
	adopt[Node](p, from)
	adopt[Node](p, to)
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ConnectEquation) Tag() string { return TagConnectEquation }

// Accept dispatches on the concrete variant of this node.
func (p *ConnectEquation) Accept(v Visitor, arg any) any { return v.VisitConnectEquation(p, arg) }

func (p *ConnectEquation) isEquation() {}

// ============================================================================
// ForEquation
// ============================================================================

// ForEquation repeats a body of equations over one or more indices.
type ForEquation struct {
	node
	// Indices of the iteration.
	Indices []*ForIndex
	// Body repeated per iteration.
	Body []Equation
	// Description of this equation, when given.
	Description *Description
}

// NewForEquation constructs a for equation.
func NewForEquation(indices []*ForIndex, body []Equation, description *Description) *ForEquation {
	p := &ForEquation{node{}, indices, body, description}
	adopt(p, indices...)
	adopt(p, body...)
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ForEquation) Tag() string { return TagForEquation }

// Accept dispatches on the concrete variant of this node.
func (p *ForEquation) Accept(v Visitor, arg any) any { return v.VisitForEquation(p, arg) }

func (p *ForEquation) isEquation() {}

// ============================================================================
// IfEquation
// ============================================================================

// EquationBranch pairs a condition with the equations active when it holds.
type EquationBranch struct {
	// Condition guarding this branch.
	Condition Expression
	// Body active when the condition holds.
	Body []Equation
}

// IfEquation selects between equation branches.
type IfEquation struct {
	node
	// Branches holds the if- and elseif-branches in source order.
	Branches []EquationBranch
	// Else holds the equations active when no condition holds.
	Else []Equation
	// Description of this equation, when given.
	Description *Description
}

// NewIfEquation constructs an if equation.
func NewIfEquation(branches []EquationBranch, elseBody []Equation,
	description *Description) *IfEquation {
	p := &IfEquation{node{}, branches, elseBody, description}
	//
	for _, branch := range branches {
		adopt(p, branch.Condition)
		adopt(p, branch.Body...)
	}
	//
	adopt(p, elseBody...)
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *IfEquation) Tag() string { return TagIfEquation }

// Accept dispatches on the concrete variant of this node.
func (p *IfEquation) Accept(v Visitor, arg any) any { return v.VisitIfEquation(p, arg) }

func (p *IfEquation) isEquation() {}

// ============================================================================
// WhenEquation
// ============================================================================

// WhenEquation activates equation branches on events.
type WhenEquation struct {
	node
	// Branches holds the when- and elsewhen-branches in source order.
	Branches []EquationBranch
	// Description of this equation, when given.
	Description *Description
}

// NewWhenEquation constructs a when equation.
func NewWhenEquation(branches []EquationBranch, description *Description) *WhenEquation {
	p := &WhenEquation{node{}, branches, description}
	//
	for _, branch := range branches {
		adopt(p, branch.Condition)
		adopt(p, branch.Body...)
	}
	//
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *WhenEquation) Tag() string { return TagWhenEquation }

// Accept dispatches on the concrete variant of this node.
func (p *WhenEquation) Accept(v Visitor, arg any) any { return v.VisitWhenEquation(p, arg) }

func (p *WhenEquation) isEquation() {}
