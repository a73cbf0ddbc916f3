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
	"sync"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/modification"
	"github.com/modelscript/modelscript/pkg/syntax/modelica"
	"github.com/modelscript/modelscript/pkg/util/source"
)

// Annotation is one named, schema-resolved annotation element.
type Annotation struct {
	// Name of the annotation argument.
	Name string
	// Value is the clone of the schema element, specialised by the
	// argument's modification.
	Value Class
}

// annotationSchemaSource is the embedded Modelica snippet defining the
// annotation vocabulary the engine understands.  Arguments outside this
// schema are ignored.
const annotationSchemaSource = `package AnnotationSchema
  record Documentation
    String info;
    String revisions;
  end Documentation;
  record experiment
    Real StartTime;
    Real StopTime;
    Real Tolerance;
    Real Interval;
  end experiment;
  record Icon
  end Icon;
  record Diagram
  end Diagram;
  record Dialog
    String tab;
    String group;
    Boolean enable;
  end Dialog;
  type defaultComponentName = String;
  type defaultComponentPrefixes = String;
  type missingInnerMessage = String;
  type unassignedMessage = String;
  type preferredView = String;
  type version = String;
  type uses = String;
  type Inline = Boolean;
  type LateInline = Boolean;
  type Evaluate = Boolean;
  type HideResult = Boolean;
  type choicesAllMatching = Boolean;
  type obsolete = String;
end AnnotationSchema;
`

// annotationSchema caches the process-wide schema class, built lazily on
// first use and never invalidated.
var (
	annotationSchemaOnce sync.Once
	annotationSchemaVal  *ClassInstance
	annotationSchemaErr  error
)

func annotationSchema() (*ClassInstance, error) {
	annotationSchemaOnce.Do(func() {
		file := source.NewSourceFile("<annotation-schema>", []byte(annotationSchemaSource))
		//
		tree, err := modelica.NewParser().Parse(file, uint(len(annotationSchemaSource))*2)
		if err != nil {
			annotationSchemaErr = err
			return
		}
		//
		stored, err := ast.StoredDefinitionFromSyntax(tree.RootNode())
		if err != nil {
			annotationSchemaErr = err
			return
		}
		//
		schema := newLongClassInstance(nil, stored.FirstClass(), modification.Empty())
		//
		if err := schema.Instantiate(); err != nil {
			annotationSchemaErr = err
			return
		}
		//
		annotationSchemaVal = schema
	})
	return annotationSchemaVal, annotationSchemaErr
}

// buildAnnotations resolves the arguments of an annotation clause against
// the schema class.  Every argument found in the schema as a class (or
// component) yields a clone specialised by the union of the argument's
// extracted tail and its inner arguments, with the argument's expression in
// the expression slot.  Unknown arguments are skipped.
func buildAnnotations(scope Scope, clause *ast.AnnotationClause) ([]Annotation, error) {
	if clause == nil || clause.ClassModification == nil {
		return nil, nil
	}
	//
	schema, err := annotationSchema()
	if err != nil {
		return nil, err
	}
	//
	var annotations []Annotation
	//
	for _, arg := range modification.ArgumentsOf(clause.ClassModification) {
		em, ok := arg.(*modification.ElementModification)
		if !ok {
			continue
		}
		//
		target := schema.resolveLocal(em.Name())
		if target == nil {
			continue
		}
		//
		class, ok := AsClass(target)
		if !ok {
			if component, isComponent := target.(*ComponentInstance); isComponent {
				class = component.class
			}
		}
		//
		if class == nil {
			continue
		}
		//
		clone, err := class.Clone(annotationModification(em))
		if err != nil {
			return nil, err
		}
		//
		annotations = append(annotations, Annotation{em.Name(), clone})
	}
	//
	return annotations, nil
}

// annotationModification unions the argument's extracted tail with its own
// inner arguments, carrying the argument's expression in the expression
// slot.
func annotationModification(em *modification.ElementModification) *modification.Modification {
	var (
		arguments []modification.Argument
		seen      = make(map[string]bool)
	)
	//
	for _, arg := range em.Extract() {
		if !seen[arg.Name()] {
			seen[arg.Name()] = true
			arguments = append(arguments, arg)
		}
	}
	//
	for _, arg := range em.Arguments() {
		if !seen[arg.Name()] {
			seen[arg.Name()] = true
			arguments = append(arguments, arg)
		}
	}
	//
	return modification.New(arguments, em.Expression(), em.Description())
}
