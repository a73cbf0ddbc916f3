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
	"strings"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/modification"
)

// Element is anything with a name that can be produced by a name query:
// class instances of every variant, component instances, entities and
// enumeration literals.
type Element interface {
	// Name of this element within its scope.
	Name() string
}

// Scope is anything able to answer name queries.  Every instance-tree node
// is a scope; the parent chain carries lexical nesting and is non-owning.
type Scope interface {
	// Parent returns the enclosing scope, or nil at the root.
	Parent() Scope
	// resolveLocal scans the declarations (and, for classes, the imports) of
	// this scope alone for the given name, returning nil on a miss.
	resolveLocal(id string) Element
}

// Class is the common interface over every class instance variant.
type Class interface {
	Element
	Scope
	// Instantiate populates this instance from its class definition and
	// applied modification.  Repeated calls are no-ops; re-entrant calls fail
	// with CyclicInstantiationError.
	Instantiate() error
	// Clone builds a fresh, instantiated copy of this class specialised by
	// the given modification merged over the current one.
	Clone(m *modification.Modification) (Class, error)
	// Modification returns the applied modification.
	Modification() *modification.Modification
	// Instantiated reports whether this instance has been populated.
	Instantiated() bool
	// Instantiating reports whether instantiation is in progress.
	Instantiating() bool
}

// ResolveSimpleName implements the composite lookup of Modelica §5 for a
// single identifier.  Resolution begins at the given scope (or at the root
// when global), scans each scope locally, and climbs to the parent unless
// encapsulated.  Predefined types are the final fallback.  A miss yields
// nil.
func ResolveSimpleName(scope Scope, id string, global bool, encapsulated bool) (Element, error) {
	s := scope
	//
	if global {
		for s.Parent() != nil {
			s = s.Parent()
		}
	}
	//
	for s != nil {
		if found := s.resolveLocal(id); found != nil {
			return found, nil
		}
		//
		if encapsulated {
			break
		}
		//
		s = s.Parent()
	}
	//
	if predefined := PredefinedType(id); predefined != nil {
		return predefined, nil
	}
	//
	return nil, nil
}

// ResolveName resolves a dotted name: the first component by
// ResolveSimpleName, every subsequent component by an encapsulated lookup on
// the previous result.  A miss anywhere yields nil.
func ResolveName(scope Scope, parts []string, global bool) (Element, error) {
	if len(parts) == 0 {
		return nil, nil
	}
	//
	element, err := ResolveSimpleName(scope, parts[0], global, false)
	if err != nil {
		return nil, err
	}
	//
	for _, part := range parts[1:] {
		if element == nil {
			return nil, nil
		}
		//
		inner, err := enterScope(element)
		if err != nil {
			return nil, err
		}
		//
		if inner == nil {
			return nil, nil
		}
		//
		if element, err = ResolveSimpleName(inner, part, false, true); err != nil {
			return nil, err
		}
	}
	//
	return element, nil
}

// ResolveComponentReference resolves a dotted component reference.  When the
// head resolves to a component instance, the component is instantiated on
// demand and resolution continues through its specialised class.
func ResolveComponentReference(scope Scope, ref *ast.ComponentReference) (Element, error) {
	return ResolveName(scope, ref.Identifiers(), ref.Global)
}

// ResolveTypeSpecifier resolves the name of a type specifier.
func ResolveTypeSpecifier(scope Scope, ts *ast.TypeSpecifier) (Element, error) {
	if ts == nil || ts.Name == nil {
		return nil, nil
	}
	//
	return ResolveName(scope, ts.Name.Parts, ts.Global)
}

// ResolveClass resolves a type specifier all the way to a class instance,
// failing with NameNotFound or TypeMismatch as appropriate.
func ResolveClass(scope Scope, ts *ast.TypeSpecifier) (Class, error) {
	element, err := ResolveTypeSpecifier(scope, ts)
	if err != nil {
		return nil, err
	}
	//
	if element == nil {
		return nil, &NameNotFoundError{Name: specifierName(ts)}
	}
	//
	class, ok := AsClass(element)
	if !ok {
		return nil, &TypeMismatchError{Name: specifierName(ts), Expected: "class"}
	}
	//
	if err := class.Instantiate(); err != nil {
		return nil, err
	}
	//
	return class, nil
}

// AsClass views an element as a class instance where possible; entities
// stand for their own class content.
func AsClass(element Element) (Class, bool) {
	switch e := element.(type) {
	case *Entity:
		if e.class == nil {
			return nil, false
		}
		//
		return e.class, true
	case Class:
		return e, true
	default:
		return nil, false
	}
}

// enterScope views an element as a scope for composite-name resolution.
// Component instances are instantiated on demand and entered through their
// specialised class.  A class whose instantiation is in progress is entered
// as-is: its declared elements are already collected, and re-entering would
// misreport a cycle.
func enterScope(element Element) (Scope, error) {
	switch e := element.(type) {
	case *ComponentInstance:
		if err := e.Instantiate(); err != nil {
			return nil, err
		}
		//
		return e.class, nil
	case Scope:
		if class, ok := AsClass(element); ok && !class.Instantiating() {
			if err := class.Instantiate(); err != nil {
				return nil, err
			}
		}
		//
		return e, nil
	default:
		return nil, nil
	}
}

func specifierName(ts *ast.TypeSpecifier) string {
	if ts == nil || ts.Name == nil {
		return ""
	}
	//
	return strings.Join(ts.Name.Parts, ".")
}
