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

// ShortClassInstance is an alias class "N = T(args)[subscripts]": it
// delegates to an inner class instance specialised by the alias arguments
// and the applied modification.
type ShortClassInstance struct {
	// Enclosing scope (non-owning).
	parent Scope
	// Name of the alias, cached from the definition.
	name string
	// Originating definition (non-owning).
	definition *ast.ClassDefinition
	// Aliased type (non-owning).
	typeSpecifier *ast.TypeSpecifier
	// Array subscripts of the alias, when any.
	subscripts []*ast.Subscript
	// Alias modification, from the specifier's own class modification.
	alias *modification.Modification
	// Applied modification.
	modification *modification.Modification
	// Inner specialised class (owned).
	inner Class
	// Indicates this instance has been populated.
	instantiated bool
	// Indicates instantiation is in progress.
	instantiating bool
}

func newShortClassInstance(parent Scope, definition *ast.ClassDefinition,
	ts *ast.TypeSpecifier, subscripts []*ast.Subscript,
	alias *ast.ClassModification, m *modification.Modification) *ShortClassInstance {
	return &ShortClassInstance{
		parent:        parent,
		name:          definition.Name(),
		definition:    definition,
		typeSpecifier: ts,
		subscripts:    subscripts,
		alias:         modification.OfClassModification(alias),
		modification:  m,
	}
}

// Name of the alias.
func (p *ShortClassInstance) Name() string {
	return p.name
}

// Parent returns the enclosing scope.
func (p *ShortClassInstance) Parent() Scope {
	return p.parent
}

// Modification returns the applied modification.
func (p *ShortClassInstance) Modification() *modification.Modification {
	return p.modification
}

// Inner returns the inner specialised class, or nil before instantiation.
func (p *ShortClassInstance) Inner() Class {
	return p.inner
}

// Instantiated reports whether this instance has been populated.
func (p *ShortClassInstance) Instantiated() bool {
	return p.instantiated
}

// Elements delegates to the inner class.
func (p *ShortClassInstance) Elements() []Element {
	if container, ok := p.inner.(elementContainer); ok {
		return container.Elements()
	}
	//
	return nil
}

// resolveLocal delegates to the inner class.
func (p *ShortClassInstance) resolveLocal(id string) Element {
	if p.inner == nil {
		return nil
	}
	//
	return p.inner.resolveLocal(id)
}

// Instantiate resolves the aliased type and clones it under the alias
// arguments merged with the applied modification, wrapping in an array class
// when the alias carries subscripts.
func (p *ShortClassInstance) Instantiate() error {
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
	target, err := ResolveClass(p.parent, p.typeSpecifier)
	if err != nil {
		return err
	}
	//
	applied := modification.Merge(p.alias, p.modification)
	//
	if len(p.subscripts) > 0 {
		p.inner, err = newArrayClassInstance(p.parent, target, p.subscripts, applied)
	} else {
		p.inner, err = target.Clone(applied)
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

// Clone builds a fresh alias instance under the merged modification.
func (p *ShortClassInstance) Clone(m *modification.Modification) (Class, error) {
	clone := &ShortClassInstance{
		parent:        p.parent,
		name:          p.name,
		definition:    p.definition,
		typeSpecifier: p.typeSpecifier,
		subscripts:    p.subscripts,
		alias:         p.alias,
		modification:  modification.Merge(p.modification, m),
	}
	//
	if err := clone.Instantiate(); err != nil {
		return nil, err
	}
	//
	return clone, nil
}

// elementContainer is satisfied by class variants which expose an element
// sequence.
type elementContainer interface {
	Elements() []Element
}

// Instantiating reports whether instantiation is in progress.
func (p *ShortClassInstance) Instantiating() bool {
	return p.instantiating
}
