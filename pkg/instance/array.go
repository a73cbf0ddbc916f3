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
	"fmt"
	"strings"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/eval"
	"github.com/modelscript/modelscript/pkg/modification"
	log "github.com/sirupsen/logrus"
)

// FlexibleDimension marks an array dimension whose extent is unknown or
// flexible.
const FlexibleDimension = -1

// ArrayClassInstance specialises an element class over an integer shape,
// expanding one element clone per cell when every dimension is known.
type ArrayClassInstance struct {
	// Scope in which subscript expressions evaluate (non-owning).
	parent Scope
	// Element class being specialised.
	element Class
	// Subscripts of the array (non-owning).
	subscripts []*ast.Subscript
	// Shape, with FlexibleDimension marking unknown extents.
	shape []int
	// Element clones, or empty when expansion was not feasible.
	elements []Class
	// Applied modification, split across the element clones.
	modification *modification.Modification
	// Displayed name, e.g. "Real[3]".
	name string
	// Indicates this instance has been populated.
	instantiated bool
	// Indicates instantiation is in progress.
	instantiating bool
}

func newArrayClassInstance(parent Scope, element Class, subscripts []*ast.Subscript,
	m *modification.Modification) (*ArrayClassInstance, error) {
	p := &ArrayClassInstance{
		parent:       parent,
		element:      element,
		subscripts:   subscripts,
		modification: m,
	}
	//
	if err := p.Instantiate(); err != nil {
		return nil, err
	}
	//
	return p, nil
}

// Name returns the displayed name, e.g. "Real[3, :]".
func (p *ArrayClassInstance) Name() string {
	return p.name
}

// Parent returns the scope in which the subscripts evaluate.
func (p *ArrayClassInstance) Parent() Scope {
	return p.parent
}

// Modification returns the applied modification.
func (p *ArrayClassInstance) Modification() *modification.Modification {
	return p.modification
}

// Instantiated reports whether this instance has been populated.
func (p *ArrayClassInstance) Instantiated() bool {
	return p.instantiated
}

// ElementClass returns the (unwrapped) element class.
func (p *ArrayClassInstance) ElementClass() Class {
	return p.element
}

// Shape returns the dimensions of this array, with FlexibleDimension marking
// unknown extents.
func (p *ArrayClassInstance) Shape() []int {
	return p.shape
}

// Size returns the total element count, or FlexibleDimension when any
// dimension is unknown.
func (p *ArrayClassInstance) Size() int {
	size := 1
	//
	for _, dim := range p.shape {
		if dim < 0 {
			return FlexibleDimension
		}
		//
		size *= dim
	}
	//
	return size
}

// ElementInstances returns the per-element clones, which is empty when any
// dimension is unknown or zero.
func (p *ArrayClassInstance) ElementInstances() []Class {
	return p.elements
}

// resolveLocal delegates to the element class, such that member lookup
// through an array reaches the element type.
func (p *ArrayClassInstance) resolveLocal(id string) Element {
	if p.element == nil {
		return nil
	}
	//
	return p.element.resolveLocal(id)
}

// Instantiate evaluates the shape, unwraps nested aliases and arrays, and
// expands one element clone per cell when every dimension is positive.  The
// applied modification is split across the clones; when no per-element
// split is feasible the declared elements stay empty.
func (p *ArrayClassInstance) Instantiate() error {
	if p.instantiated {
		return nil
	}
	//
	if p.instantiating {
		return &CyclicInstantiationError{Name: p.name}
	}
	//
	p.instantiating = true
	p.shape = p.evaluateShape()
	// Unwrap alias and array element classes.
	for {
		switch element := p.element.(type) {
		case *ShortClassInstance:
			if element.inner == nil {
				break
			}
			//
			p.element = element.inner
			continue
		case *ArrayClassInstance:
			p.shape = append(p.shape, element.shape...)
			p.element = element.element
			continue
		}
		//
		break
	}
	//
	p.name = arrayName(p.element, p.shape)
	//
	if size := p.Size(); size > 0 {
		if err := p.expand(uint(size)); err != nil {
			// No feasible per-element split; the expression stays visible on
			// the applied modification for downstream consumers.
			log.Debugf("array %q not expanded: %v", p.name, err)
			p.elements = nil
		}
	}
	//
	p.instantiated, p.instantiating = true, false
	//
	return nil
}

// evaluateShape computes one dimension per subscript: flexible or absent
// expressions yield FlexibleDimension, as does anything which does not
// evaluate to an integer.
func (p *ArrayClassInstance) evaluateShape() []int {
	shape := make([]int, len(p.subscripts))
	//
	for i, subscript := range p.subscripts {
		shape[i] = FlexibleDimension
		//
		if subscript.Flexible || subscript.Expression == nil {
			continue
		}
		//
		value, err := eval.Evaluate(subscript.Expression, ScopeResolver{p.parent})
		if err != nil {
			continue
		}
		//
		if extent, ok := eval.AsInteger(value); ok {
			shape[i] = int(extent)
		}
	}
	//
	return shape
}

// expand specialises size element clones, the i-th receiving the i-th split
// of the applied modification.
func (p *ArrayClassInstance) expand(size uint) error {
	splits, err := p.modification.Split(size)
	if err != nil {
		return err
	}
	//
	elements := make([]Class, size)
	//
	for i := uint(0); i < size; i++ {
		clone, err := p.element.Clone(splits[i])
		if err != nil {
			return err
		}
		//
		elements[i] = clone
	}
	//
	p.elements = elements
	//
	return nil
}

// Clone builds a fresh array instance under the merged modification.
func (p *ArrayClassInstance) Clone(m *modification.Modification) (Class, error) {
	return newArrayClassInstance(p.parent, p.element, p.subscripts,
		modification.Merge(p.modification, m))
}

func arrayName(element Class, shape []int) string {
	dims := make([]string, len(shape))
	//
	for i, dim := range shape {
		if dim < 0 {
			dims[i] = ":"
		} else {
			dims[i] = fmt.Sprintf("%d", dim)
		}
	}
	//
	name := ""
	if element != nil {
		name = element.Name()
	}
	//
	return fmt.Sprintf("%s[%s]", name, strings.Join(dims, ", "))
}

// Instantiating reports whether instantiation is in progress.
func (p *ArrayClassInstance) Instantiating() bool {
	return p.instantiating
}
