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

// Package printer renders ASTs back to Modelica source and instance trees
// to a stable, human-readable form.  Instance printing is deterministic:
// two fresh instantiations of the same library print identically.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/instance"
)

// Source renders an AST node back to Modelica source form.
func Source(w io.Writer, n ast.Node) error {
	_, err := io.WriteString(w, ast.Text(n))
	return err
}

// Library prints the instantiated entity tree of a library.
func Library(w io.Writer, library *instance.Library) error {
	if library.Root() == nil {
		return fmt.Errorf("library not loaded")
	}
	//
	p := printer{w}
	//
	return p.entity(library.Root(), 0)
}

// Instance prints a single instance-tree element.
func Instance(w io.Writer, element instance.Element) error {
	p := printer{w}
	//
	return p.element(element, 0)
}

type printer struct {
	w io.Writer
}

func (p *printer) line(indent int, format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", indent), fmt.Sprintf(format, args...))
	return err
}

func (p *printer) entity(e *instance.Entity, indent int) error {
	form := "package"
	if e.Unstructured() {
		form = "file"
	}
	//
	if err := p.line(indent, "entity %s (%s)", e.Name(), form); err != nil {
		return err
	}
	//
	for _, child := range e.Children() {
		if err := p.entity(child, indent+1); err != nil {
			return err
		}
	}
	//
	if class := e.ClassInstance(); class != nil {
		for _, element := range class.Elements() {
			if err := p.element(element, indent+1); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

func (p *printer) element(element instance.Element, indent int) error {
	switch e := element.(type) {
	case *instance.Entity:
		return p.entity(e, indent)
	case *instance.ComponentInstance:
		return p.component(e, indent)
	case *instance.ClassInstance:
		return p.class(e, indent)
	case *instance.EnumerationClassInstance:
		return p.enumeration(e, indent)
	case *instance.ShortClassInstance:
		if err := p.line(indent, "class %s = ...", e.Name()); err != nil {
			return err
		}
		//
		if inner := e.Inner(); inner != nil {
			return p.element(inner, indent+1)
		}
		//
		return nil
	case *instance.ArrayClassInstance:
		return p.array(e, indent)
	case *instance.PredefinedClassInstance:
		return p.line(indent, "%s %s", e.Name(), e.Modification())
	default:
		return p.line(indent, "%s", element.Name())
	}
}

func (p *printer) class(e *instance.ClassInstance, indent int) error {
	if err := p.line(indent, "%s %s %s", e.Kind(), e.Name(), e.Modification()); err != nil {
		return err
	}
	//
	for _, element := range e.Elements() {
		if err := p.element(element, indent+1); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *printer) component(e *instance.ComponentInstance, indent int) error {
	typeName := ""
	//
	if class := e.ClassInstance(); class != nil {
		typeName = class.Name()
	}
	//
	if err := p.line(indent, "component %s : %s %s", e.Name(), typeName, e.Modification()); err != nil {
		return err
	}
	//
	if array, ok := e.ClassInstance().(*instance.ArrayClassInstance); ok {
		return p.array(array, indent+1)
	}
	//
	return nil
}

func (p *printer) array(e *instance.ArrayClassInstance, indent int) error {
	for i, element := range e.ElementInstances() {
		if err := p.line(indent, "[%d] %s %s", i+1, element.Name(), element.Modification()); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *printer) enumeration(e *instance.EnumerationClassInstance, indent int) error {
	literals := make([]string, len(e.Literals()))
	//
	for i, literal := range e.Literals() {
		literals[i] = literal.Name()
	}
	//
	value := ""
	//
	if v := e.Value(); v != nil {
		value = fmt.Sprintf(" = %s", v.Name())
	}
	//
	return p.line(indent, "type %s = enumeration(%s)%s", e.Name(), strings.Join(literals, ", "), value)
}
