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

// EnumerationLiteral is one literal of an enumeration class instance.
// Ordinals are contiguous and count from 1 in declaration order.
type EnumerationLiteral struct {
	// Name of the literal.
	name string
	// Ordinal of the literal.
	ordinal int
}

// Name of the literal.
func (p *EnumerationLiteral) Name() string {
	return p.name
}

// StringValue returns the literal's name, i.e. its string form.
func (p *EnumerationLiteral) StringValue() string {
	return p.name
}

// Ordinal of the literal, counting from 1.
func (p *EnumerationLiteral) Ordinal() int {
	return p.ordinal
}

// EnumerationClassInstance is an enumeration class: a dense ordinal list of
// literals plus an optionally selected value.
type EnumerationClassInstance struct {
	// Enclosing scope (non-owning).
	parent Scope
	// Name of the enumeration, cached from the definition.
	name string
	// Originating definition (non-owning).
	definition *ast.ClassDefinition
	// Literal identifiers, cached from the specifier.
	names []string
	// Literal instances, dense in ordinal order (owned).
	literals []*EnumerationLiteral
	// Selected value, when any.
	value *EnumerationLiteral
	// Applied modification.
	modification *modification.Modification
	// Indicates this instance has been populated.
	instantiated bool
	// Indicates instantiation is in progress.
	instantiating bool
}

func newEnumerationClassInstance(parent Scope, definition *ast.ClassDefinition,
	specifier *ast.ShortClassSpecifier, m *modification.Modification) *EnumerationClassInstance {
	// Literal names are cached eagerly; the AST may be released later.
	names := make([]string, len(specifier.Literals))
	//
	for i, literal := range specifier.Literals {
		names[i] = literal.Identifier
	}
	//
	return &EnumerationClassInstance{
		parent:       parent,
		name:         definition.Name(),
		definition:   definition,
		names:        names,
		modification: m,
	}
}

// Name of the enumeration.
func (p *EnumerationClassInstance) Name() string {
	return p.name
}

// Parent returns the enclosing scope.
func (p *EnumerationClassInstance) Parent() Scope {
	return p.parent
}

// Modification returns the applied modification.
func (p *EnumerationClassInstance) Modification() *modification.Modification {
	return p.modification
}

// Instantiated reports whether this instance has been populated.
func (p *EnumerationClassInstance) Instantiated() bool {
	return p.instantiated
}

// Literals returns the literal instances in ordinal order.
func (p *EnumerationClassInstance) Literals() []*EnumerationLiteral {
	return p.literals
}

// Value returns the selected literal, or nil.
func (p *EnumerationClassInstance) Value() *EnumerationLiteral {
	return p.value
}

// Literal returns the literal with the given name, or nil.
func (p *EnumerationClassInstance) Literal(name string) *EnumerationLiteral {
	for _, literal := range p.literals {
		if literal.name == name {
			return literal
		}
	}
	//
	return nil
}

// resolveLocal resolves a literal name to a clone of this class whose value
// is that literal; anything else misses.
func (p *EnumerationClassInstance) resolveLocal(id string) Element {
	if literal := p.Literal(id); literal != nil {
		clone := p.cloneWith(p.modification)
		clone.value = clone.Literal(id)
		//
		return clone
	}
	//
	return nil
}

// Instantiate builds the dense ordinal list and, when the applied
// modification selects a literal of this enumeration, records it as the
// value.  A modification expression which is not a literal of this
// enumeration leaves the value empty.
func (p *EnumerationClassInstance) Instantiate() error {
	if p.instantiated {
		return nil
	}
	//
	if p.instantiating {
		return &CyclicInstantiationError{Name: p.name}
	}
	//
	p.instantiating = true
	p.literals = make([]*EnumerationLiteral, len(p.names))
	//
	for i, name := range p.names {
		p.literals[i] = &EnumerationLiteral{name, i + 1}
	}
	//
	if ref, ok := p.modification.Expression().(*ast.ComponentReference); ok && p.parent != nil {
		if selected, err := ResolveComponentReference(p.parent, ref); err == nil {
			if enum, ok := selected.(*EnumerationClassInstance); ok &&
				enum.definition == p.definition && enum.value != nil {
				p.value = p.Literal(enum.value.name)
			}
		}
	}
	//
	p.instantiated, p.instantiating = true, false
	//
	return nil
}

// cloneWith builds an instantiated copy carrying the given modification.
func (p *EnumerationClassInstance) cloneWith(m *modification.Modification) *EnumerationClassInstance {
	clone := &EnumerationClassInstance{
		parent:       p.parent,
		name:         p.name,
		definition:   p.definition,
		names:        p.names,
		modification: m,
	}
	//
	clone.literals = make([]*EnumerationLiteral, len(clone.names))
	//
	for i, name := range clone.names {
		clone.literals[i] = &EnumerationLiteral{name, i + 1}
	}
	//
	if p.value != nil {
		clone.value = clone.Literal(p.value.name)
	}
	//
	clone.instantiated = true
	//
	return clone
}

// Clone builds a fresh enumeration instance under the merged modification.
func (p *EnumerationClassInstance) Clone(m *modification.Modification) (Class, error) {
	clone := &EnumerationClassInstance{
		parent:       p.parent,
		name:         p.name,
		definition:   p.definition,
		names:        p.names,
		modification: modification.Merge(p.modification, m),
	}
	//
	if err := clone.Instantiate(); err != nil {
		return nil, err
	}
	// A pre-selected value survives cloning unless overridden.
	if clone.value == nil && p.value != nil {
		clone.value = clone.Literal(p.value.name)
	}
	//
	return clone, nil
}

// Instantiating reports whether instantiation is in progress.
func (p *EnumerationClassInstance) Instantiating() bool {
	return p.instantiating
}
