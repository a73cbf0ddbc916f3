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
)

// ComponentInstance is a named component owning its specialised class
// instance.
type ComponentInstance struct {
	// Owning class (non-owning back-reference).
	parent *ClassInstance
	// Name of the component, cached from the declaration.
	name string
	// Originating clause (non-owning).
	clause *ast.ComponentClause
	// Originating declaration (non-owning).
	declaration *ast.ComponentDeclaration
	// Applied modification.
	modification *modification.Modification
	// Specialised class (owned).
	class Class
	// Indicates this instance has been populated.
	instantiated bool
	// Indicates instantiation is in progress.
	instantiating bool
}

func newComponentInstance(parent *ClassInstance, clause *ast.ComponentClause,
	declaration *ast.ComponentDeclaration) *ComponentInstance {
	return &ComponentInstance{
		parent:       parent,
		name:         declaration.Identifier,
		clause:       clause,
		declaration:  declaration,
		modification: mergeComponentModification(parent.Modification(), declaration),
	}
}

// mergeComponentModification computes the modification applying to a single
// component: the tail of the enclosing class' argument for this component,
// followed by the declaration's own element modifications for names not
// already covered (outer wins).  The expression falls back from the outer
// argument to the declaration's own.
func mergeComponentModification(outer *modification.Modification,
	declaration *ast.ComponentDeclaration) *modification.Modification {
	extracted := outer.Extract(declaration.Identifier)
	arguments := extracted.Arguments()
	//
	covered := make(map[string]bool, len(arguments))
	//
	for _, arg := range arguments {
		covered[arg.Name()] = true
	}
	//
	var declared *ast.Modification
	//
	if declaration != nil {
		declared = declaration.Modification
	}
	//
	if declared != nil {
		for _, arg := range modification.ArgumentsOf(declared.ClassModification) {
			if !covered[arg.Name()] {
				arguments = append(arguments, arg)
			}
		}
	}
	//
	expr := extracted.Expression()
	//
	if expr == nil && declared != nil {
		expr = declared.Expression
	}
	//
	return modification.New(arguments, expr, extracted.Description())
}

// Name of the component.
func (p *ComponentInstance) Name() string {
	return p.name
}

// Parent returns the owning class.
func (p *ComponentInstance) Parent() Scope {
	return p.parent
}

// Declaration returns the originating component declaration.
func (p *ComponentInstance) Declaration() *ast.ComponentDeclaration {
	return p.declaration
}

// Clause returns the originating component clause.
func (p *ComponentInstance) Clause() *ast.ComponentClause {
	return p.clause
}

// Modification returns the applied modification.
func (p *ComponentInstance) Modification() *modification.Modification {
	return p.modification
}

// ClassInstance returns the specialised class of this component, or nil
// before instantiation.
func (p *ComponentInstance) ClassInstance() Class {
	return p.class
}

// Instantiated reports whether this instance has been populated.
func (p *ComponentInstance) Instantiated() bool {
	return p.instantiated
}

// resolveLocal delegates to the specialised class.
func (p *ComponentInstance) resolveLocal(id string) Element {
	if p.class == nil {
		return nil
	}
	//
	return p.class.resolveLocal(id)
}

// Subscripts returns the combined array subscripts of the clause and the
// declaration, in that order.
func (p *ComponentInstance) Subscripts() []*ast.Subscript {
	var subscripts []*ast.Subscript
	subscripts = append(subscripts, p.clause.Subscripts...)
	subscripts = append(subscripts, p.declaration.Subscripts...)
	//
	return subscripts
}

// Instantiate resolves the component's type and specialises it under the
// applied modification, wrapping in an array class when subscripts are
// present.
func (p *ComponentInstance) Instantiate() error {
	if p.instantiated {
		return nil
	}
	//
	if p.instantiating {
		return &CyclicInstantiationError{Name: p.name}
	}
	//
	p.instantiating = true
	//
	target, err := ResolveClass(p.parent, p.clause.TypeSpecifier)
	if err != nil {
		return err
	}
	//
	if subscripts := p.Subscripts(); len(subscripts) > 0 {
		p.class, err = newArrayClassInstance(p.parent, target, subscripts, p.modification)
	} else {
		p.class, err = target.Clone(p.modification)
	}
	//
	if err != nil {
		return err
	}
	//
	p.instantiated, p.instantiating = true, false
	//
	return nil
}
