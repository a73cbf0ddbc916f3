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

// PredefinedKind identifies one of the built-in types.
type PredefinedKind uint

// The four predefined types.
const (
	// PredefinedBoolean is the built-in Boolean type.
	PredefinedBoolean PredefinedKind = iota
	// PredefinedInteger is the built-in Integer type.
	PredefinedInteger
	// PredefinedReal is the built-in Real type.
	PredefinedReal
	// PredefinedString is the built-in String type.
	PredefinedString
)

var predefinedNames = map[PredefinedKind]string{
	PredefinedBoolean: "Boolean", PredefinedInteger: "Integer",
	PredefinedReal: "Real", PredefinedString: "String",
}

func (k PredefinedKind) String() string {
	return predefinedNames[k]
}

// PredefinedClassInstance is a built-in type.  Instantiation records nothing
// beyond the applied modification; attribute accessors read named arguments
// from it.
type PredefinedClassInstance struct {
	// Kind of this built-in.
	kind PredefinedKind
	// Applied modification.
	modification *modification.Modification
}

// Singleton instances the resolver falls back to.
var (
	booleanType = &PredefinedClassInstance{PredefinedBoolean, modification.Empty()}
	integerType = &PredefinedClassInstance{PredefinedInteger, modification.Empty()}
	realType    = &PredefinedClassInstance{PredefinedReal, modification.Empty()}
	stringType  = &PredefinedClassInstance{PredefinedString, modification.Empty()}
)

// PredefinedType returns the singleton for one of Boolean, Integer, Real or
// String, or nil for any other name.
func PredefinedType(name string) *PredefinedClassInstance {
	switch name {
	case "Boolean":
		return booleanType
	case "Integer":
		return integerType
	case "Real":
		return realType
	case "String":
		return stringType
	default:
		return nil
	}
}

// Name of the built-in type.
func (p *PredefinedClassInstance) Name() string {
	return p.kind.String()
}

// PredefinedKind returns the kind of this built-in.
func (p *PredefinedClassInstance) PredefinedKind() PredefinedKind {
	return p.kind
}

// Parent returns nil; built-ins live outside the library tree.
func (p *PredefinedClassInstance) Parent() Scope {
	return nil
}

// Modification returns the applied modification.
func (p *PredefinedClassInstance) Modification() *modification.Modification {
	return p.modification
}

// Instantiated always holds for built-ins.
func (p *PredefinedClassInstance) Instantiated() bool {
	return true
}

// resolveLocal always misses; built-ins declare nothing.
func (p *PredefinedClassInstance) resolveLocal(id string) Element {
	return nil
}

// Instantiate is a no-op beyond the recorded modification.
func (p *PredefinedClassInstance) Instantiate() error {
	return nil
}

// Clone specialises this built-in by a new modification; the returned
// instance is always instantiated.
func (p *PredefinedClassInstance) Clone(m *modification.Modification) (Class, error) {
	return &PredefinedClassInstance{p.kind, modification.Merge(p.modification, m)}, nil
}

// Attribute returns the expression bound to a named attribute of the
// applied modification, or nil.
func (p *PredefinedClassInstance) Attribute(name string) ast.Expression {
	if arg := p.modification.Argument(name); arg != nil {
		return arg.Expression()
	}
	//
	return nil
}

// Value returns the modification expression, i.e. the bound value of the
// component this type specialises.
func (p *PredefinedClassInstance) Value() ast.Expression {
	return p.modification.Expression()
}

// Start returns the "start" attribute.
func (p *PredefinedClassInstance) Start() ast.Expression { return p.Attribute("start") }

// Fixed returns the "fixed" attribute.
func (p *PredefinedClassInstance) Fixed() ast.Expression { return p.Attribute("fixed") }

// Min returns the "min" attribute.
func (p *PredefinedClassInstance) Min() ast.Expression { return p.Attribute("min") }

// Max returns the "max" attribute.
func (p *PredefinedClassInstance) Max() ast.Expression { return p.Attribute("max") }

// Nominal returns the "nominal" attribute.
func (p *PredefinedClassInstance) Nominal() ast.Expression { return p.Attribute("nominal") }

// Unit returns the "unit" attribute.
func (p *PredefinedClassInstance) Unit() ast.Expression { return p.Attribute("unit") }

// DisplayUnit returns the "displayUnit" attribute.
func (p *PredefinedClassInstance) DisplayUnit() ast.Expression { return p.Attribute("displayUnit") }

// Quantity returns the "quantity" attribute.
func (p *PredefinedClassInstance) Quantity() ast.Expression { return p.Attribute("quantity") }

// StateSelect returns the "stateSelect" attribute.
func (p *PredefinedClassInstance) StateSelect() ast.Expression { return p.Attribute("stateSelect") }

// Unbounded returns the "unbounded" attribute.
func (p *PredefinedClassInstance) Unbounded() ast.Expression { return p.Attribute("unbounded") }

// Instantiating never holds for built-ins.
func (p *PredefinedClassInstance) Instantiating() bool {
	return false
}
