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
package instance

import (
	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/modification"
	log "github.com/sirupsen/logrus"
)

// qualifiedImport associates a short name with the imported element.
type qualifiedImport struct {
	name   string
	target Element
}

// ClassInstance is a specialised class: the instantiation of a class
// definition under an applied modification.  Data needed beyond the life of
// the AST (name, kind) is cached at construction.
type ClassInstance struct {
	// Enclosing scope (non-owning).
	parent Scope
	// Name of the class, cached from the definition.
	name string
	// Kind of the class, cached from the definition.
	kind ast.ClassKind
	// Originating class definition (non-owning).
	definition *ast.ClassDefinition
	// Applied modification.
	modification *modification.Modification
	// Declared elements in source order (owned).
	declared []Element
	// Qualified imports in resolution order.
	qualifiedImports []qualifiedImport
	// Unqualified imports in resolution order.
	unqualifiedImports []Element
	// Annotations of the class.
	annotations []Annotation
	// Indicates this instance has been populated.
	instantiated bool
	// Indicates instantiation is in progress.
	instantiating bool
}

// NewClassInstance constructs the appropriate class instance variant for a
// class definition, under the given applied modification.
func NewClassInstance(parent Scope, definition *ast.ClassDefinition,
	m *modification.Modification) Class {
	switch specifier := definition.Specifier.(type) {
	case *ast.ShortClassSpecifier:
		if specifier.Enumeration {
			return newEnumerationClassInstance(parent, definition, specifier, m)
		}
		//
		return newShortClassInstance(parent, definition, specifier.TypeSpecifier,
			specifier.Subscripts, specifier.ClassModification, m)
	case *ast.DerClassSpecifier:
		// A derivative alias resolves like a short class without subscripts.
		return newShortClassInstance(parent, definition, specifier.TypeSpecifier, nil, nil, m)
	default:
		return newLongClassInstance(parent, definition, m)
	}
}

func newLongClassInstance(parent Scope, definition *ast.ClassDefinition,
	m *modification.Modification) *ClassInstance {
	name, kind := "", ast.KindPackage
	//
	if definition != nil {
		name, kind = definition.Name(), definition.Kind
	}
	//
	return &ClassInstance{
		parent:       parent,
		name:         name,
		kind:         kind,
		definition:   definition,
		modification: m,
	}
}

// newSyntheticPackage constructs the class instance of an entity without a
// class definition on disk, i.e. a plain directory package.
func newSyntheticPackage(parent Scope, name string) *ClassInstance {
	p := newLongClassInstance(parent, nil, modification.Empty())
	p.name = name
	//
	return p
}

// Name of the class.
func (p *ClassInstance) Name() string {
	return p.name
}

// Kind of the class.
func (p *ClassInstance) Kind() ast.ClassKind {
	return p.kind
}

// Definition returns the originating class definition, which may be nil for
// synthetic packages.
func (p *ClassInstance) Definition() *ast.ClassDefinition {
	return p.definition
}

// Parent returns the enclosing scope.
func (p *ClassInstance) Parent() Scope {
	return p.parent
}

// Modification returns the applied modification.
func (p *ClassInstance) Modification() *modification.Modification {
	return p.modification
}

// Instantiated reports whether this instance has been populated.
func (p *ClassInstance) Instantiated() bool {
	return p.instantiated
}

// DeclaredElements returns the declared elements in source order, with
// extends instances unexpanded.
func (p *ClassInstance) DeclaredElements() []Element {
	return p.declared
}

// Elements returns the visible elements in source order, with every extends
// instance expanding in place to its own element sequence.
func (p *ClassInstance) Elements() []Element {
	var elements []Element
	//
	for _, e := range p.declared {
		if x, ok := e.(*ExtendsClassInstance); ok {
			elements = append(elements, x.Elements()...)
		} else {
			elements = append(elements, e)
		}
	}
	//
	return elements
}

// Annotations returns the instantiated annotations of this class.
func (p *ClassInstance) Annotations() []Annotation {
	return p.annotations
}

// UnqualifiedImports returns the unqualified imports in resolution order.
func (p *ClassInstance) UnqualifiedImports() []Element {
	return p.unqualifiedImports
}

// QualifiedImport returns the qualified import registered under the given
// short name, or nil.
func (p *ClassInstance) QualifiedImport(name string) Element {
	for _, imp := range p.qualifiedImports {
		if imp.name == name {
			return imp.target
		}
	}
	//
	return nil
}

// resolveLocal scans the visible elements (extends expanded in place) in
// source order, then qualified imports, then unqualified imports.  Duplicate
// names yield the first visible element.
func (p *ClassInstance) resolveLocal(id string) Element {
	for _, e := range p.Elements() {
		if e.Name() == id {
			return e
		}
	}
	//
	if found := p.QualifiedImport(id); found != nil {
		return found
	}
	//
	for _, pkg := range p.unqualifiedImports {
		scope, err := enterScope(pkg)
		if err != nil || scope == nil {
			continue
		}
		//
		if found, err := ResolveSimpleName(scope, id, false, true); err == nil && found != nil {
			return found
		}
	}
	//
	return nil
}

// Instantiate populates this instance from its class definition and applied
// modification.  The phases run in a fixed order: reset, collect, extends,
// nested classes, imports, components, annotations.
func (p *ClassInstance) Instantiate() error {
	if p.instantiated {
		return nil
	}
	//
	if p.instantiating {
		return &CyclicInstantiationError{Name: p.name}
	}
	//
	p.instantiating = true
	log.Debugf("instantiating class %q", p.name)
	// Phase 1: reset.
	p.declared = nil
	p.qualifiedImports = nil
	p.unqualifiedImports = nil
	p.annotations = nil
	// Phase 2: collect AST elements.
	var (
		extends    []*ExtendsClassInstance
		nested     []Class
		components []*ComponentInstance
		imports    []ast.Element
	)
	//
	for _, section := range p.sections() {
		for _, element := range section.Elements {
			switch e := element.(type) {
			case *ast.ClassDefinition:
				class := NewClassInstance(p, e, p.modification.Extract(e.Name()))
				nested = append(nested, class)
				p.declared = append(p.declared, class)
			case *ast.ComponentClause:
				for _, declaration := range e.Declarations {
					component := newComponentInstance(p, e, declaration)
					components = append(components, component)
					p.declared = append(p.declared, component)
				}
			case *ast.ExtendsClause:
				x := newExtendsClassInstance(p, e)
				extends = append(extends, x)
				p.declared = append(p.declared, x)
			default:
				imports = append(imports, e)
			}
		}
	}
	// Phase 3: instantiate extends.
	for _, x := range extends {
		if err := x.Instantiate(); err != nil {
			return err
		}
	}
	// Phase 4: instantiate nested class definitions.
	for _, class := range nested {
		if err := class.Instantiate(); err != nil {
			return err
		}
	}
	// Phase 5: resolve imports.
	if err := p.resolveImports(imports); err != nil {
		return err
	}
	// Phase 6: instantiate components.
	for _, component := range components {
		if err := component.Instantiate(); err != nil {
			return err
		}
	}
	// Phase 7: annotations.
	annotations, err := buildAnnotations(p, p.annotationClause())
	if err != nil {
		return err
	}
	//
	p.annotations = annotations
	p.instantiated, p.instantiating = true, false
	//
	return nil
}

// Clone builds a fresh instance of the same definition under the merge of
// the current and given modifications, then instantiates it.
func (p *ClassInstance) Clone(m *modification.Modification) (Class, error) {
	clone := &ClassInstance{
		parent:       p.parent,
		name:         p.name,
		kind:         p.kind,
		definition:   p.definition,
		modification: modification.Merge(p.modification, m),
	}
	//
	if err := clone.Instantiate(); err != nil {
		return nil, err
	}
	//
	return clone, nil
}

// Reset returns this instance to the fresh state, discarding its contents.
// A partially instantiated node is otherwise never reused.
func (p *ClassInstance) Reset() {
	p.declared = nil
	p.qualifiedImports = nil
	p.unqualifiedImports = nil
	p.annotations = nil
	p.instantiated, p.instantiating = false, false
}

// sections returns the element sections of the class body, in source order.
func (p *ClassInstance) sections() []*ast.ElementSection {
	long, ok := p.specifier()
	if !ok {
		return nil
	}
	//
	var sections []*ast.ElementSection
	//
	for _, section := range long.Sections {
		if s, ok := section.(*ast.ElementSection); ok {
			sections = append(sections, s)
		}
	}
	//
	return sections
}

// EquationSections returns the equation sections of the class body, in
// source order.
func (p *ClassInstance) EquationSections() []*ast.EquationSection {
	long, ok := p.specifier()
	if !ok {
		return nil
	}
	//
	var sections []*ast.EquationSection
	//
	for _, section := range long.Sections {
		if s, ok := section.(*ast.EquationSection); ok {
			sections = append(sections, s)
		}
	}
	//
	return sections
}

func (p *ClassInstance) specifier() (*ast.LongClassSpecifier, bool) {
	if p.definition == nil {
		return nil, false
	}
	//
	long, ok := p.definition.Specifier.(*ast.LongClassSpecifier)
	//
	return long, ok
}

func (p *ClassInstance) annotationClause() *ast.AnnotationClause {
	if long, ok := p.specifier(); ok {
		return long.Annotation
	}
	//
	return nil
}

// resolveImports resolves the queued import clauses against the root scope
// and registers their results.
func (p *ClassInstance) resolveImports(imports []ast.Element) error {
	for _, clause := range imports {
		switch imp := clause.(type) {
		case *ast.SimpleImportClause:
			target, err := ResolveName(p, imp.Name.Parts, true)
			if err != nil {
				return err
			}
			//
			if target == nil {
				return &NameNotFoundError{Name: imp.Name.String()}
			}
			//
			shortName := imp.ShortName
			if shortName == "" {
				shortName = imp.Name.Last()
			}
			//
			p.qualifiedImports = append(p.qualifiedImports, qualifiedImport{shortName, target})
		case *ast.CompoundImportClause:
			pkg, err := ResolveName(p, imp.Name.Parts, true)
			if err != nil {
				return err
			}
			//
			if pkg == nil {
				return &NameNotFoundError{Name: imp.Name.String()}
			}
			//
			scope, err := enterScope(pkg)
			if err != nil {
				return err
			}
			//
			for _, shortName := range imp.Imports {
				target, err := ResolveSimpleName(scope, shortName, false, true)
				if err != nil {
					return err
				}
				//
				if target == nil {
					return &NameNotFoundError{Name: imp.Name.String() + "." + shortName}
				}
				//
				p.qualifiedImports = append(p.qualifiedImports, qualifiedImport{shortName, target})
			}
		case *ast.UnqualifiedImportClause:
			pkg, err := ResolveName(p, imp.Name.Parts, true)
			if err != nil {
				return err
			}
			//
			if pkg == nil {
				return &NameNotFoundError{Name: imp.Name.String()}
			}
			//
			p.unqualifiedImports = append(p.unqualifiedImports, pkg)
		}
	}
	//
	return nil
}

// Instantiating reports whether instantiation is in progress.
func (p *ClassInstance) Instantiating() bool {
	return p.instantiating
}
