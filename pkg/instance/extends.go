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

// ExtendsClassInstance is an inherited sub-class: it owns a clone of the
// extended class, specialised by the merge of the enclosing class'
// modification with the clause's own.
type ExtendsClassInstance struct {
	// Enclosing class (non-owning back-reference); also the lookup scope for
	// the extends target.
	parent *ClassInstance
	// Originating clause (non-owning).
	clause *ast.ExtendsClause
	// Applied (merged) modification.
	modification *modification.Modification
	// Cloned class instance (owned).
	class Class
	// Annotations of the clause.
	annotations []Annotation
	// Indicates this instance has been populated.
	instantiated bool
	// Indicates instantiation is in progress.
	instantiating bool
}

func newExtendsClassInstance(parent *ClassInstance, clause *ast.ExtendsClause) *ExtendsClassInstance {
	return &ExtendsClassInstance{parent: parent, clause: clause}
}

// Name returns the name of the extended class.
func (p *ExtendsClassInstance) Name() string {
	return specifierName(p.clause.TypeSpecifier)
}

// Parent returns the enclosing class.
func (p *ExtendsClassInstance) Parent() Scope {
	return p.parent
}

// Clause returns the originating extends clause.
func (p *ExtendsClassInstance) Clause() *ast.ExtendsClause {
	return p.clause
}

// Modification returns the applied (merged) modification.
func (p *ExtendsClassInstance) Modification() *modification.Modification {
	return p.modification
}

// ClassInstance returns the cloned class, or nil before instantiation.
func (p *ExtendsClassInstance) ClassInstance() Class {
	return p.class
}

// Annotations returns the instantiated annotations of the clause.
func (p *ExtendsClassInstance) Annotations() []Annotation {
	return p.annotations
}

// Instantiated reports whether this instance has been populated.
func (p *ExtendsClassInstance) Instantiated() bool {
	return p.instantiated
}

// Elements returns the element sequence of the cloned class, i.e. what this
// extends expands to in the enclosing class.
func (p *ExtendsClassInstance) Elements() []Element {
	if container, ok := p.class.(elementContainer); ok {
		return container.Elements()
	}
	//
	return nil
}

// resolveLocal delegates to the cloned class.
func (p *ExtendsClassInstance) resolveLocal(id string) Element {
	if p.class == nil {
		return nil
	}
	//
	return p.class.resolveLocal(id)
}

// clauseModification translates the clause's class modification,
// de-duplicating by head name with first-seen-wins within the clause.
func clauseModification(clause *ast.ExtendsClause) *modification.Modification {
	var (
		arguments []modification.Argument
		seen      = make(map[string]bool)
	)
	//
	for _, arg := range modification.ArgumentsOf(clause.ClassModification) {
		if !seen[arg.Name()] {
			seen[arg.Name()] = true
			arguments = append(arguments, arg)
		}
	}
	//
	return modification.New(arguments, nil, nil)
}

// Instantiate resolves the extends target against the enclosing class and
// clones it under the merged modification.
func (p *ExtendsClassInstance) Instantiate() error {
	if p.instantiated {
		return nil
	}
	//
	if p.instantiating {
		return &CyclicInstantiationError{Name: p.Name()}
	}
	//
	p.instantiating = true
	//
	target, err := ResolveClass(p.parent, p.clause.TypeSpecifier)
	if err != nil {
		return err
	}
	//
	p.modification = modification.Merge(p.parent.Modification(), clauseModification(p.clause))
	//
	if p.class, err = target.Clone(p.modification); err != nil {
		return err
	}
	//
	annotations, err := buildAnnotations(p.parent, p.clause.Annotation)
	if err != nil {
		return err
	}
	//
	p.annotations = annotations
	p.instantiated, p.instantiating = true, false
	//
	return nil
}
