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

import (
	"github.com/modelscript/modelscript/pkg/util"
)

// Expression is implemented by every expression variant.  The informative
// subsets SimpleExpression and PrimaryExpression are retained from the
// Modelica grammar, such that resolving (say) a primary-expression slot can
// only ever produce nodes from that subset.
type Expression interface {
	Node
	isExpression()
}

// SimpleExpression is the subset of expressions without if-expressions at the
// top level.
type SimpleExpression interface {
	Expression
	isSimpleExpression()
}

// PrimaryExpression is the subset of simple expressions which bind tightest:
// literals, references, calls and array forms.
type PrimaryExpression interface {
	SimpleExpression
	isPrimaryExpression()
}

// ============================================================================
// Name
// ============================================================================

// Name is a dotted sequence of identifiers, e.g. "Modelica.SIunits.Voltage".
type Name struct {
	node
	// Parts holds the identifier components in source order.
	Parts []string
}

// NewName constructs a name from the given identifier parts.
func NewName(parts ...string) *Name {
	return &Name{node{}, parts}
}

// Tag returns the stable identifier of this variant.
func (p *Name) Tag() string { return TagName }

// First returns the head identifier of this name.
func (p *Name) First() string {
	return p.Parts[0]
}

// Last returns the final identifier of this name.
func (p *Name) Last() string {
	return p.Parts[len(p.Parts)-1]
}

// Path converts this name into a (relative) path.
func (p *Name) Path() util.Path {
	return util.NewRelativePath(p.Parts...)
}

func (p *Name) String() string {
	path := p.Path()
	return path.String()
}

// Accept dispatches on the concrete variant of this node.
func (p *Name) Accept(v Visitor, arg any) any { return v.VisitName(p, arg) }

// ============================================================================
// TypeSpecifier
// ============================================================================

// TypeSpecifier references a class by (possibly global) name.
type TypeSpecifier struct {
	node
	// Global indicates a leading dot, i.e. lookup begins at the root.
	Global bool
	// Name of the referenced class.
	Name *Name
}

// NewTypeSpecifier constructs a type specifier over the given name.
func NewTypeSpecifier(global bool, name *Name) *TypeSpecifier {
	p := &TypeSpecifier{node{}, global, name}
	adopt[Node](p, name)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *TypeSpecifier) Tag() string { return TagTypeSpecifier }

// Path converts this specifier into a path which is absolute iff the
// specifier is global.
func (p *TypeSpecifier) Path() util.Path {
	if p.Global {
		return util.NewAbsolutePath(p.Name.Parts...)
	}
	//
	return util.NewRelativePath(p.Name.Parts...)
}

func (p *TypeSpecifier) String() string {
	path := p.Path()
	return path.String()
}

// Accept dispatches on the concrete variant of this node.
func (p *TypeSpecifier) Accept(v Visitor, arg any) any { return v.VisitTypeSpecifier(p, arg) }

// ============================================================================
// Subscript
// ============================================================================

// Subscript is a single array subscript: either a flexible ":" or an
// expression.
type Subscript struct {
	node
	// Flexible indicates the ":" form.
	Flexible bool
	// Expression gives the subscript value, or nil when flexible.
	Expression Expression
}

// NewSubscript constructs an expression subscript.
func NewSubscript(expr Expression) *Subscript {
	p := &Subscript{node{}, false, expr}
	adopt(p, expr)
	//
	return p
}

// NewFlexibleSubscript constructs a ":" subscript.
func NewFlexibleSubscript() *Subscript {
	return &Subscript{node{}, true, nil}
}

// Tag returns the stable identifier of this variant.
func (p *Subscript) Tag() string { return TagSubscript }

// Accept dispatches on the concrete variant of this node.
func (p *Subscript) Accept(v Visitor, arg any) any { return v.VisitSubscript(p, arg) }

// ============================================================================
// ComponentReference
// ============================================================================

// ComponentReferencePart is one dotted element of a component reference,
// carrying an identifier and optional subscripts.
type ComponentReferencePart struct {
	// Identifier of this part.
	Identifier string
	// Subscripts of this part (possibly empty).
	Subscripts []*Subscript
}

// ComponentReference is a dotted, possibly subscripted reference to a
// component, e.g. "a.b[1].c".
type ComponentReference struct {
	node
	// Global indicates a leading dot.
	Global bool
	// Parts holds the dotted elements in source order.
	Parts []ComponentReferencePart
}

// NewComponentReference constructs a component reference from its parts.
func NewComponentReference(global bool, parts ...ComponentReferencePart) *ComponentReference {
	p := &ComponentReference{node{}, global, parts}
	//
	for _, part := range parts {
		adopt(p, part.Subscripts...)
	}
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ComponentReference) Tag() string { return TagComponentReference }

// First returns the head part of this reference.
func (p *ComponentReference) First() ComponentReferencePart {
	return p.Parts[0]
}

// Identifiers returns the dotted identifiers of this reference, ignoring
// subscripts.
func (p *ComponentReference) Identifiers() []string {
	ids := make([]string, len(p.Parts))
	for i, part := range p.Parts {
		ids[i] = part.Identifier
	}
	//
	return ids
}

// Accept dispatches on the concrete variant of this node.
func (p *ComponentReference) Accept(v Visitor, arg any) any { return v.VisitComponentReference(p, arg) }

func (p *ComponentReference) isExpression()        {}
func (p *ComponentReference) isSimpleExpression()  {}
func (p *ComponentReference) isPrimaryExpression() {}

// ============================================================================
// BinaryExpression
// ============================================================================

// BinaryExpression applies a binary operator to two operands.
type BinaryExpression struct {
	node
	// Operator applied.
	Operator BinaryOperator
	// Lhs is the left operand.
	Lhs Expression
	// Rhs is the right operand.
	Rhs Expression
}

// NewBinaryExpression constructs a binary expression.
func NewBinaryExpression(op BinaryOperator, lhs Expression, rhs Expression) *BinaryExpression {
	p := &BinaryExpression{node{}, op, lhs, rhs}
	adopt(p, lhs, rhs)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *BinaryExpression) Tag() string { return TagBinaryExpression }

// Accept dispatches on the concrete variant of this node.
func (p *BinaryExpression) Accept(v Visitor, arg any) any { return v.VisitBinaryExpression(p, arg) }

func (p *BinaryExpression) isExpression()       {}
func (p *BinaryExpression) isSimpleExpression() {}

// ============================================================================
// UnaryExpression
// ============================================================================

// UnaryExpression applies a unary operator to a single operand.
type UnaryExpression struct {
	node
	// Operator applied.
	Operator UnaryOperator
	// Operand the operator applies to.
	Operand Expression
}

// NewUnaryExpression constructs a unary expression.
func NewUnaryExpression(op UnaryOperator, operand Expression) *UnaryExpression {
	p := &UnaryExpression{node{}, op, operand}
	adopt(p, operand)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *UnaryExpression) Tag() string { return TagUnaryExpression }

// Accept dispatches on the concrete variant of this node.
func (p *UnaryExpression) Accept(v Visitor, arg any) any { return v.VisitUnaryExpression(p, arg) }

func (p *UnaryExpression) isExpression()       {}
func (p *UnaryExpression) isSimpleExpression() {}

// ============================================================================
// RangeExpression
// ============================================================================

// RangeExpression is the Modelica range form "start : end" or
// "start : step : end".
type RangeExpression struct {
	node
	// Start of the range.
	Start Expression
	// Step of the range, or nil for the two-argument form.
	Step Expression
	// End of the range.
	End Expression
}

// NewRangeExpression constructs a range expression; step may be nil.
func NewRangeExpression(start Expression, step Expression, end Expression) *RangeExpression {
	p := &RangeExpression{node{}, start, step, end}
	adopt(p, start, step, end)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *RangeExpression) Tag() string { return TagRangeExpression }

// Accept dispatches on the concrete variant of this node.
func (p *RangeExpression) Accept(v Visitor, arg any) any { return v.VisitRangeExpression(p, arg) }

func (p *RangeExpression) isExpression()       {}
func (p *RangeExpression) isSimpleExpression() {}

// ============================================================================
// IfExpression
// ============================================================================

// IfExpressionBranch pairs a condition with the expression selected when it
// holds.
type IfExpressionBranch struct {
	// Condition guarding this branch.
	Condition Expression
	// Value selected when the condition holds.
	Value Expression
}

// IfExpression is the conditional form "if c then a elseif c2 then b else d".
type IfExpression struct {
	node
	// Branches holds the if- and elseif-branches in source order.
	Branches []IfExpressionBranch
	// Else is the expression selected when no condition holds.
	Else Expression
}

// NewIfExpression constructs an if-expression.
func NewIfExpression(branches []IfExpressionBranch, elseValue Expression) *IfExpression {
	p := &IfExpression{node{}, branches, elseValue}
	//
	for _, branch := range branches {
		adopt(p, branch.Condition, branch.Value)
	}
	//
	adopt(p, elseValue)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *IfExpression) Tag() string { return TagIfExpression }

// Accept dispatches on the concrete variant of this node.
func (p *IfExpression) Accept(v Visitor, arg any) any { return v.VisitIfExpression(p, arg) }

func (p *IfExpression) isExpression() {}

// ============================================================================
// FunctionCall
// ============================================================================

// NamedArgument is a "name = expr" argument of a function call.
type NamedArgument struct {
	node
	// Identifier names the parameter.
	Identifier string
	// Value bound to the parameter.
	Value Expression
}

// NewNamedArgument constructs a named argument.
func NewNamedArgument(identifier string, value Expression) *NamedArgument {
	p := &NamedArgument{node{}, identifier, value}
	adopt(p, value)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *NamedArgument) Tag() string { return TagNamedArgument }

// Accept dispatches on the concrete variant of this node.
func (p *NamedArgument) Accept(v Visitor, arg any) any { return v.VisitNamedArgument(p, arg) }

// FunctionCall applies a function to positional and named arguments.
type FunctionCall struct {
	node
	// Callee references the function being applied.
	Callee *ComponentReference
	// Arguments holds the positional arguments in source order.
	Arguments []Expression
	// NamedArguments holds the named arguments in source order.
	NamedArguments []*NamedArgument
}

// NewFunctionCall constructs a function call.
func NewFunctionCall(callee *ComponentReference, args []Expression, named []*NamedArgument) *FunctionCall {
	p := &FunctionCall{node{}, callee, args, named}
	adopt[Node](p, callee)
	adopt(p, args...)
	adopt(p, named...)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *FunctionCall) Tag() string { return TagFunctionCall }

// Accept dispatches on the concrete variant of this node.
func (p *FunctionCall) Accept(v Visitor, arg any) any { return v.VisitFunctionCall(p, arg) }

func (p *FunctionCall) isExpression()        {}
func (p *FunctionCall) isSimpleExpression()  {}
func (p *FunctionCall) isPrimaryExpression() {}

// ============================================================================
// Array forms
// ============================================================================

// ArrayConstructor is the literal array form "{e1, e2, ...}".
type ArrayConstructor struct {
	node
	// Elements of the array in source order.
	Elements []Expression
}

// NewArrayConstructor constructs an array constructor.
func NewArrayConstructor(elements ...Expression) *ArrayConstructor {
	p := &ArrayConstructor{node{}, elements}
	adopt(p, elements...)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ArrayConstructor) Tag() string { return TagArrayConstructor }

// Accept dispatches on the concrete variant of this node.
func (p *ArrayConstructor) Accept(v Visitor, arg any) any { return v.VisitArrayConstructor(p, arg) }

func (p *ArrayConstructor) isExpression()        {}
func (p *ArrayConstructor) isSimpleExpression()  {}
func (p *ArrayConstructor) isPrimaryExpression() {}

// ArrayConcatenation is the matrix form "[r1c1, r1c2; r2c1, r2c2]".
type ArrayConcatenation struct {
	node
	// Rows of the matrix, each a sequence of expressions.
	Rows [][]Expression
}

// NewArrayConcatenation constructs an array concatenation.
func NewArrayConcatenation(rows ...[]Expression) *ArrayConcatenation {
	p := &ArrayConcatenation{node{}, rows}
	//
	for _, row := range rows {
		adopt(p, row...)
	}
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ArrayConcatenation) Tag() string { return TagArrayConcatenation }

// Accept dispatches on the concrete variant of this node.
func (p *ArrayConcatenation) Accept(v Visitor, arg any) any { return v.VisitArrayConcatenation(p, arg) }

func (p *ArrayConcatenation) isExpression()        {}
func (p *ArrayConcatenation) isSimpleExpression()  {}
func (p *ArrayConcatenation) isPrimaryExpression() {}

// ============================================================================
// MemberAccess
// ============================================================================

// MemberAccess selects a member of a computed value, e.g. "f(x).y".
type MemberAccess struct {
	node
	// Value whose member is selected.
	Value Expression
	// Member identifier.
	Member string
}

// NewMemberAccess constructs a member access.
func NewMemberAccess(value Expression, member string) *MemberAccess {
	p := &MemberAccess{node{}, value, member}
	adopt(p, value)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *MemberAccess) Tag() string { return TagMemberAccess }

// Accept dispatches on the concrete variant of this node.
func (p *MemberAccess) Accept(v Visitor, arg any) any { return v.VisitMemberAccess(p, arg) }

func (p *MemberAccess) isExpression()        {}
func (p *MemberAccess) isSimpleExpression()  {}
func (p *MemberAccess) isPrimaryExpression() {}

// ============================================================================
// Literals
// ============================================================================

// BooleanLiteral is "true" or "false".
type BooleanLiteral struct {
	node
	// Value of the literal.
	Value bool
}

// NewBooleanLiteral constructs a boolean literal.
func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{node{}, value}
}

// Tag returns the stable identifier of this variant.
func (p *BooleanLiteral) Tag() string { return TagBoolean }

// Accept dispatches on the concrete variant of this node.
func (p *BooleanLiteral) Accept(v Visitor, arg any) any { return v.VisitBooleanLiteral(p, arg) }

func (p *BooleanLiteral) isExpression()        {}
func (p *BooleanLiteral) isSimpleExpression()  {}
func (p *BooleanLiteral) isPrimaryExpression() {}

// IntegerLiteral is an unsigned integer literal.
type IntegerLiteral struct {
	node
	// Value of the literal.
	Value int64
}

// NewIntegerLiteral constructs an integer literal.
func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{node{}, value}
}

// Tag returns the stable identifier of this variant.
func (p *IntegerLiteral) Tag() string { return TagUnsignedInteger }

// Accept dispatches on the concrete variant of this node.
func (p *IntegerLiteral) Accept(v Visitor, arg any) any { return v.VisitIntegerLiteral(p, arg) }

func (p *IntegerLiteral) isExpression()        {}
func (p *IntegerLiteral) isSimpleExpression()  {}
func (p *IntegerLiteral) isPrimaryExpression() {}

// RealLiteral is an unsigned real literal.
type RealLiteral struct {
	node
	// Value of the literal.
	Value float64
}

// NewRealLiteral constructs a real literal.
func NewRealLiteral(value float64) *RealLiteral {
	return &RealLiteral{node{}, value}
}

// Tag returns the stable identifier of this variant.
func (p *RealLiteral) Tag() string { return TagUnsignedReal }

// Accept dispatches on the concrete variant of this node.
func (p *RealLiteral) Accept(v Visitor, arg any) any { return v.VisitRealLiteral(p, arg) }

func (p *RealLiteral) isExpression()        {}
func (p *RealLiteral) isSimpleExpression()  {}
func (p *RealLiteral) isPrimaryExpression() {}

// StringLiteral is a double-quoted string literal, stored unescaped.
type StringLiteral struct {
	node
	// Value of the literal, after unescaping.
	Value string
}

// NewStringLiteral constructs a string literal.
func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{node{}, value}
}

// Tag returns the stable identifier of this variant.
func (p *StringLiteral) Tag() string { return TagString }

// Accept dispatches on the concrete variant of this node.
func (p *StringLiteral) Accept(v Visitor, arg any) any { return v.VisitStringLiteral(p, arg) }

func (p *StringLiteral) isExpression()        {}
func (p *StringLiteral) isSimpleExpression()  {}
func (p *StringLiteral) isPrimaryExpression() {}

// Identifier is a bare identifier appearing in expression position.
type Identifier struct {
	node
	// Value of the identifier.
	Value string
}

// NewIdentifier constructs an identifier expression.
func NewIdentifier(value string) *Identifier {
	return &Identifier{node{}, value}
}

// Tag returns the stable identifier of this variant.
func (p *Identifier) Tag() string { return TagIdent }

// Accept dispatches on the concrete variant of this node.
func (p *Identifier) Accept(v Visitor, arg any) any { return v.VisitIdentifier(p, arg) }

func (p *Identifier) isExpression()        {}
func (p *Identifier) isSimpleExpression()  {}
func (p *Identifier) isPrimaryExpression() {}

// EndExpression is the keyword "end" used inside subscripts to denote the
// final index of the enclosing dimension.
type EndExpression struct {
	node
}

// NewEndExpression constructs an end expression.
func NewEndExpression() *EndExpression {
	return &EndExpression{node{}}
}

// Tag returns the stable identifier of this variant.
func (p *EndExpression) Tag() string { return TagEnd }

// Accept dispatches on the concrete variant of this node.
func (p *EndExpression) Accept(v Visitor, arg any) any { return v.VisitEndExpression(p, arg) }

func (p *EndExpression) isExpression()        {}
func (p *EndExpression) isSimpleExpression()  {}
func (p *EndExpression) isPrimaryExpression() {}
