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
	"github.com/modelscript/modelscript/pkg/eval"
)

// ScopeResolver adapts a scope to the expression interpreter: component
// references resolve through the instance tree, with component values read
// from their applied modifications.
type ScopeResolver struct {
	// Scope resolution begins at.
	Scope Scope
}

// ResolveValue resolves a component reference to a value, returning false
// when the reference is unknown or carries no value.
func (p ScopeResolver) ResolveValue(ref *ast.ComponentReference) (eval.Value, bool) {
	if p.Scope == nil {
		return nil, false
	}
	//
	element, err := ResolveComponentReference(p.Scope, ref)
	if err != nil || element == nil {
		return nil, false
	}
	//
	switch e := element.(type) {
	case *ComponentInstance:
		// An enumeration-typed component carries its value on the class.
		if enum, ok := e.class.(*EnumerationClassInstance); ok && enum.value != nil {
			return enumValue(enum), true
		}
		//
		expr := e.modification.Expression()
		if expr == nil {
			return nil, false
		}
		//
		value, err := eval.Evaluate(expr, ScopeResolver{e.parent})
		if err != nil {
			return nil, false
		}
		//
		return value, true
	case *EnumerationClassInstance:
		if e.value != nil {
			return enumValue(e), true
		}
	}
	//
	return nil, false
}

func enumValue(enum *EnumerationClassInstance) eval.Enum {
	return eval.Enum{Type: enum.name, Literal: enum.value.name, Ordinal: enum.value.ordinal}
}
