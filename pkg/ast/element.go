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

// Element is implemented by everything that can appear in an element section:
// class definitions, component clauses, extends clauses and import clauses.
type Element interface {
	Node
	isElement()
}

// Section is implemented by the three section forms of a class body.
type Section interface {
	Node
	isSection()
}

// ============================================================================
// ElementSection
// ============================================================================

// ElementSection groups elements under a common visibility.
type ElementSection struct {
	node
	// Visibility of the elements in this section.
	Visibility Visibility
	// Elements of this section in source order.
	Elements []Element
}

// NewElementSection constructs an element section.
func NewElementSection(visibility Visibility, elements []Element) *ElementSection {
	p := &ElementSection{node{}, visibility, elements}
	adopt(p, elements...)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ElementSection) Tag() string { return TagElementSection }

// Accept dispatches on the concrete variant of this node.
func (p *ElementSection) Accept(v Visitor, arg any) any { return v.VisitElementSection(p, arg) }

func (p *ElementSection) isSection() {}

// ============================================================================
// EquationSection
// ============================================================================

// EquationSection groups equations, possibly of the initial kind.
type EquationSection struct {
	node
	// Initial indicates an "initial equation" section.
	Initial bool
	// Equations of this section in source order.
	Equations []Equation
}

// NewEquationSection constructs an equation section.
func NewEquationSection(initial bool, equations []Equation) *EquationSection {
	p := &EquationSection{node{}, initial, equations}
	adopt(p, equations...)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *EquationSection) Tag() string {
	if p.Initial {
		return TagInitialElementSection
	}
	//
	return TagEquationSection
}

// Accept dispatches on the concrete variant of this node.
func (p *EquationSection) Accept(v Visitor, arg any) any { return v.VisitEquationSection(p, arg) }

func (p *EquationSection) isSection() {}

// ============================================================================
// AlgorithmSection
// ============================================================================

// AlgorithmSection groups statements, possibly of the initial kind.
type AlgorithmSection struct {
	node
	// Initial indicates an "initial algorithm" section.
	Initial bool
	// Statements of this section in source order.
	Statements []Statement
}

// NewAlgorithmSection constructs an algorithm section.
func NewAlgorithmSection(initial bool, statements []Statement) *AlgorithmSection {
	p := &AlgorithmSection{node{}, initial, statements}
	adopt(p, statements...)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *AlgorithmSection) Tag() string { return TagAlgorithmSection }

// Accept dispatches on the concrete variant of this node.
func (p *AlgorithmSection) Accept(v Visitor, arg any) any { return v.VisitAlgorithmSection(p, arg) }

func (p *AlgorithmSection) isSection() {}

// ============================================================================
// ComponentClause
// ============================================================================

// ComponentClause declares one or more components of a common type.
type ComponentClause struct {
	node
	// Prefixes of this clause (final / redeclare / replaceable / inner /
	// outer).
	Prefixes ClassPrefixes
	// Flow prefix, when given.
	Flow util.Option[Flow]
	// Variability prefix, when given.
	Variability util.Option[Variability]
	// Causality prefix, when given.
	Causality util.Option[Causality]
	// TypeSpecifier references the component type.
	TypeSpecifier *TypeSpecifier
	// Subscripts applying to every declaration of this clause, when given.
	Subscripts []*Subscript
	// Declarations of this clause in source order, never empty.
	Declarations []*ComponentDeclaration
}

// NewComponentClause constructs a component clause.
func NewComponentClause(prefixes ClassPrefixes, flow util.Option[Flow],
	variability util.Option[Variability], causality util.Option[Causality],
	ts *TypeSpecifier, subscripts []*Subscript, declarations []*ComponentDeclaration) *ComponentClause {
	p := &ComponentClause{node{}, prefixes, flow, variability, causality, ts, subscripts, declarations}
	adopt[Node](p, ts)
	adopt(p, subscripts...)
	adopt(p, declarations...)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ComponentClause) Tag() string { return TagComponentClause }

// Accept dispatches on the concrete variant of this node.
func (p *ComponentClause) Accept(v Visitor, arg any) any { return v.VisitComponentClause(p, arg) }

func (p *ComponentClause) isElement() {}

// ============================================================================
// ComponentDeclaration
// ============================================================================

// ComponentDeclaration declares a single named component within a component
// clause.
type ComponentDeclaration struct {
	node
	// Identifier of the component.
	Identifier string
	// Subscripts of this declaration, when given.
	Subscripts []*Subscript
	// Modification applied to the component, when given.
	Modification *Modification
	// Condition making this a conditional component, when given.
	Condition Expression
	// Description of the component, when given.
	Description *Description
}

// NewComponentDeclaration constructs a component declaration.
func NewComponentDeclaration(identifier string, subscripts []*Subscript,
	modification *Modification, condition Expression, description *Description) *ComponentDeclaration {
	p := &ComponentDeclaration{node{}, identifier, subscripts, modification, condition, description}
	adopt(p, subscripts...)
	adopt[Node](p, modification)
	adopt(p, condition)
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ComponentDeclaration) Tag() string { return TagComponentDeclaration }

// Accept dispatches on the concrete variant of this node.
func (p *ComponentDeclaration) Accept(v Visitor, arg any) any {
	return v.VisitComponentDeclaration(p, arg)
}

// ============================================================================
// ExtendsClause
// ============================================================================

// ExtendsClause injects the elements of another class into the enclosing
// class.
type ExtendsClause struct {
	node
	// TypeSpecifier references the inherited class.
	TypeSpecifier *TypeSpecifier
	// ClassModification applied to the inherited class, when given.
	ClassModification *ClassModification
	// Annotation of this clause, when given.
	Annotation *AnnotationClause
}

// NewExtendsClause constructs an extends clause.
func NewExtendsClause(ts *TypeSpecifier, modification *ClassModification,
	annotation *AnnotationClause) *ExtendsClause {
	p := &ExtendsClause{node{}, ts, modification, annotation}
	adopt[Node](p, ts)
	adopt[Node](p, modification)
	adopt[Node](p, annotation)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *ExtendsClause) Tag() string { return TagExtendsClause }

// Accept dispatches on the concrete variant of this node.
func (p *ExtendsClause) Accept(v Visitor, arg any) any { return v.VisitExtendsClause(p, arg) }

func (p *ExtendsClause) isElement() {}

// ============================================================================
// Import clauses
// ============================================================================

// SimpleImportClause is "import A.B.C;" or "import X = A.B.C;".
type SimpleImportClause struct {
	node
	// ShortName renames the import, or "" for the unrenamed form.
	ShortName string
	// Name of the imported class.
	Name *Name
	// Description of this clause, when given.
	Description *Description
}

// NewSimpleImportClause constructs a simple import clause.
func NewSimpleImportClause(shortName string, name *Name, description *Description) *SimpleImportClause {
	p := &SimpleImportClause{node{}, shortName, name, description}
	adopt[Node](p, name)
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *SimpleImportClause) Tag() string { return TagSimpleImportClause }

// Accept dispatches on the concrete variant of this node.
func (p *SimpleImportClause) Accept(v Visitor, arg any) any { return v.VisitSimpleImportClause(p, arg) }

func (p *SimpleImportClause) isElement() {}

// CompoundImportClause is "import A.B.{X, Y};".
type CompoundImportClause struct {
	node
	// Name of the package imported from.
	Name *Name
	// Imports lists the short names being imported.
	Imports []string
	// Description of this clause, when given.
	Description *Description
}

// NewCompoundImportClause constructs a compound import clause.
func NewCompoundImportClause(name *Name, imports []string, description *Description) *CompoundImportClause {
	p := &CompoundImportClause{node{}, name, imports, description}
	adopt[Node](p, name)
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *CompoundImportClause) Tag() string { return TagCompoundImportClause }

// Accept dispatches on the concrete variant of this node.
func (p *CompoundImportClause) Accept(v Visitor, arg any) any {
	return v.VisitCompoundImportClause(p, arg)
}

func (p *CompoundImportClause) isElement() {}

// UnqualifiedImportClause is "import A.B.*;".
type UnqualifiedImportClause struct {
	node
	// Name of the package imported from.
	Name *Name
	// Description of this clause, when given.
	Description *Description
}

// NewUnqualifiedImportClause constructs an unqualified import clause.
func NewUnqualifiedImportClause(name *Name, description *Description) *UnqualifiedImportClause {
	p := &UnqualifiedImportClause{node{}, name, description}
	adopt[Node](p, name)
	adopt[Node](p, description)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *UnqualifiedImportClause) Tag() string { return TagUnqualifiedImportClause }

// Accept dispatches on the concrete variant of this node.
func (p *UnqualifiedImportClause) Accept(v Visitor, arg any) any {
	return v.VisitUnqualifiedImportClause(p, arg)
}

func (p *UnqualifiedImportClause) isElement() {}

// ============================================================================
// Description / Annotation
// ============================================================================

// Description attaches a descriptive string and optional annotation to a
// declarative construct.
type Description struct {
	node
	// Text of the description (possibly empty).
	Text string
	// Annotation of this description, when given.
	Annotation *AnnotationClause
}

// NewDescription constructs a description.
func NewDescription(text string, annotation *AnnotationClause) *Description {
	p := &Description{node{}, text, annotation}
	adopt[Node](p, annotation)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *Description) Tag() string { return TagDescription }

// Accept dispatches on the concrete variant of this node.
func (p *Description) Accept(v Visitor, arg any) any { return v.VisitDescription(p, arg) }

// AnnotationClause attaches a schema-constrained class modification to a
// declarative construct.
type AnnotationClause struct {
	node
	// ClassModification carrying the annotation arguments.
	ClassModification *ClassModification
}

// NewAnnotationClause constructs an annotation clause.
func NewAnnotationClause(modification *ClassModification) *AnnotationClause {
	p := &AnnotationClause{node{}, modification}
	adopt[Node](p, modification)
	//
	return p
}

// Tag returns the stable identifier of this variant.
func (p *AnnotationClause) Tag() string { return TagAnnotationClause }

// Accept dispatches on the concrete variant of this node.
func (p *AnnotationClause) Accept(v Visitor, arg any) any { return v.VisitAnnotationClause(p, arg) }
