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

// ============================================================================
// StoredDefinition
// ============================================================================

// StoredDefinition is the top-level content of a Modelica source file: an
// optional "within" package name followed by a sequence of class definitions.
type StoredDefinition struct {
	node
	// Within names the enclosing package, or nil.
	Within *Name
	// Classes holds the top-level class definitions in source order.
	Classes []*ClassDefinition
}

// NewStoredDefinition constructs a stored definition.
func NewStoredDefinition(within *Name, classes []*ClassDefinition) *StoredDefinition {
	p := &StoredDefinition{node{}, within, classes}
	adopt[Node](p, within)
	adopt(p, classes...)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *StoredDefinition) Tag() string { return TagStoredDefinition }

// FirstClass returns the first class definition in this file, or nil when the
// file declares none.
func (p *StoredDefinition) FirstClass() *ClassDefinition {
	if len(p.Classes) > 0 {
		return p.Classes[0]
	}
	//
	return nil
}

// Accept dispatches on the concrete variant of this node.
func (p *StoredDefinition) Accept(v Visitor, arg any) any { return v.VisitStoredDefinition(p, arg) }

// ============================================================================
// ClassDefinition
// ============================================================================

// ClassPrefixes collects the boolean prefixes of a class definition.
type ClassPrefixes struct {
	// Partial indicates the "partial" prefix.
	Partial bool
	// Encapsulated indicates the "encapsulated" prefix.
	Encapsulated bool
	// Final indicates the "final" prefix.
	Final bool
	// Inner indicates the "inner" prefix.
	Inner bool
	// Outer indicates the "outer" prefix.
	Outer bool
	// Redeclare indicates the "redeclare" prefix.
	Redeclare bool
	// Replaceable indicates the "replaceable" prefix.
	Replaceable bool
}

// ClassDefinition declares a class of some kind, via one of the class
// specifier forms.
type ClassDefinition struct {
	node
	// Prefixes of this definition.
	Prefixes ClassPrefixes
	// Purity of this definition, when given.
	Purity util.Option[Purity]
	// Kind of class being declared.
	Kind ClassKind
	// Specifier carries the body of the declaration.
	Specifier ClassSpecifier
	// Constraint restricts redeclarations, when given.
	Constraint *ConstrainingClause
}

// NewClassDefinition constructs a class definition.
func NewClassDefinition(prefixes ClassPrefixes, purity util.Option[Purity], kind ClassKind,
	specifier ClassSpecifier, constraint *ConstrainingClause) *ClassDefinition {
	p := &ClassDefinition{node{}, prefixes, purity, kind, specifier, constraint}
	adopt(p, specifier)
	adopt[Node](p, constraint)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ClassDefinition) Tag() string { return TagClassDefinition }

// Name returns the identifier this definition declares.
func (p *ClassDefinition) Name() string {
	return p.Specifier.Identifier()
}

// Accept dispatches on the concrete variant of this node.
func (p *ClassDefinition) Accept(v Visitor, arg any) any { return v.VisitClassDefinition(p, arg) }

func (p *ClassDefinition) isElement() {}

// ============================================================================
// Class specifiers
// ============================================================================

// ClassSpecifier is implemented by the three specifier forms of a class
// definition.
type ClassSpecifier interface {
	Node
	// Identifier returns the name being declared.
	Identifier() string
	isClassSpecifier()
}

// LongClassSpecifier is the form "N ... end N", carrying the sections of the
// class body.
type LongClassSpecifier struct {
	node
	// Name being declared.
	Name string
	// Extends indicates the "extends N" long form of a class redeclaration.
	Extends bool
	// Description of the class, when given.
	Description *Description
	// Sections of the class body in source order.
	Sections []Section
	// EndName is the identifier repeated after "end".
	EndName string
	// Annotation of the class, when given.
	Annotation *AnnotationClause
}

// NewLongClassSpecifier constructs a long class specifier.
func NewLongClassSpecifier(name string, extends bool, description *Description,
	sections []Section, endName string, annotation *AnnotationClause) *LongClassSpecifier {
	p := &LongClassSpecifier{node{}, name, extends, description, sections, endName, annotation}
	adopt[Node](p, description)
	adopt(p, sections...)
	adopt[Node](p, annotation)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *LongClassSpecifier) Tag() string { return TagLongClassSpecifier }

// Identifier returns the name being declared.
func (p *LongClassSpecifier) Identifier() string { return p.Name }

// Accept dispatches on the concrete variant of this node.
func (p *LongClassSpecifier) Accept(v Visitor, arg any) any { return v.VisitLongClassSpecifier(p, arg) }

func (p *LongClassSpecifier) isClassSpecifier() {}

// ShortClassSpecifier is the one-liner form "N = T(args)[subscripts]" or
// "N = enumeration(l1, l2, ...)".
type ShortClassSpecifier struct {
	node
	// Name being declared.
	Name string
	// Input indicates the "input" prefix on the aliased type.
	Input bool
	// Output indicates the "output" prefix on the aliased type.
	Output bool
	// TypeSpecifier references the aliased class; nil for the enumeration
	// form.
	TypeSpecifier *TypeSpecifier
	// Subscripts of the alias, when given.
	Subscripts []*Subscript
	// ClassModification applied to the alias, when given.
	ClassModification *ClassModification
	// Enumeration indicates the "enumeration(...)" form.
	Enumeration bool
	// Literals of the enumeration form, in declaration order.
	Literals []*EnumerationLiteral
	// Description of the class, when given.
	Description *Description
}

// NewShortClassSpecifier constructs a short class specifier of the alias
// form.
func NewShortClassSpecifier(name string, input bool, output bool, ts *TypeSpecifier,
	subscripts []*Subscript, modification *ClassModification, description *Description) *ShortClassSpecifier {
	p := &ShortClassSpecifier{node{}, name, input, output, ts, subscripts, modification, false, nil, description}
	adopt[Node](p, ts)
	adopt(p, subscripts...)
	adopt[Node](p, modification)
	adopt[Node](p, description)
	//
	return p
}

// NewEnumerationClassSpecifier constructs a short class specifier of the
// enumeration form.
func NewEnumerationClassSpecifier(name string, literals []*EnumerationLiteral,
	description *Description) *ShortClassSpecifier {
	p := &ShortClassSpecifier{node{}, name, false, false, nil, nil, nil, true, literals, description}
	adopt(p, literals...)
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ShortClassSpecifier) Tag() string { return TagShortClassSpecifier }

// Identifier returns the name being declared.
func (p *ShortClassSpecifier) Identifier() string { return p.Name }

// Accept dispatches on the concrete variant of this node.
func (p *ShortClassSpecifier) Accept(v Visitor, arg any) any { return v.VisitShortClassSpecifier(p, arg) }

func (p *ShortClassSpecifier) isClassSpecifier() {}

// DerClassSpecifier is the derivative form "N = der(T, x, ...)".
type DerClassSpecifier struct {
	node
	// Name being declared.
	Name string
	// TypeSpecifier references the differentiated function.
	TypeSpecifier *TypeSpecifier
	// Arguments name the variables of differentiation.
	Arguments []string
	// Description of the class, when given.
	Description *Description
}

// NewDerClassSpecifier constructs a der class specifier.
func NewDerClassSpecifier(name string, ts *TypeSpecifier, args []string,
	description *Description) *DerClassSpecifier {
	p := &DerClassSpecifier{node{}, name, ts, args, description}
	adopt[Node](p, ts)
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *DerClassSpecifier) Tag() string { return TagDerClassSpecifier }

// Identifier returns the name being declared.
func (p *DerClassSpecifier) Identifier() string { return p.Name }

// Accept dispatches on the concrete variant of this node.
func (p *DerClassSpecifier) Accept(v Visitor, arg any) any { return v.VisitDerClassSpecifier(p, arg) }

func (p *DerClassSpecifier) isClassSpecifier() {}

// ============================================================================
// EnumerationLiteral
// ============================================================================

// EnumerationLiteral is one literal of an enumeration class.  Ordinals are
// not stored here; they follow from declaration order, counting from 1.
type EnumerationLiteral struct {
	node
	// Identifier of this literal.
	Identifier string
	// Description of this literal, when given.
	Description *Description
}

// NewEnumerationLiteral constructs an enumeration literal.
func NewEnumerationLiteral(identifier string, description *Description) *EnumerationLiteral {
	p := &EnumerationLiteral{node{}, identifier, description}
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *EnumerationLiteral) Tag() string { return TagEnumerationLiteral }

// Accept dispatches on the concrete variant of this node.
func (p *EnumerationLiteral) Accept(v Visitor, arg any) any { return v.VisitEnumerationLiteral(p, arg) }

// ============================================================================
// ConstrainingClause
// ============================================================================

// ConstrainingClause restricts what a replaceable element may be redeclared
// to.
type ConstrainingClause struct {
	node
	// TypeSpecifier references the constraining class.
	TypeSpecifier *TypeSpecifier
	// ClassModification applied to the constraining class, when given.
	ClassModification *ClassModification
}

// NewConstrainingClause constructs a constraining clause.
func NewConstrainingClause(ts *TypeSpecifier, modification *ClassModification) *ConstrainingClause {
	p := &ConstrainingClause{node{}, ts, modification}
	adopt[Node](p, ts)
	adopt[Node](p, modification)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ConstrainingClause) Tag() string { return TagConstrainingClause }

// Accept dispatches on the concrete variant of this node.
func (p *ConstrainingClause) Accept(v Visitor, arg any) any { return v.VisitConstrainingClause(p, arg) }
