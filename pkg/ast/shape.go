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
package ast

import (
	"encoding/json"
)

// This file implements the persistence format: every variant serialises to a
// shape {"@type": TAG, ...fields} and every variant's constructor accepts
// that shape back, such that the AST can be persisted or transferred without
// re-parsing.

// ToShape converts a node into its serialised shape.
func ToShape(n Node) map[string]any {
	return n.shape()
}

// ToJSON converts a node into its serialised shape, rendered as indented
// JSON.
func ToJSON(n Node) ([]byte, error) {
	return json.MarshalIndent(ToShape(n), "", "  ")
}

// FromJSON reconstructs a node from its serialised JSON shape.
func FromJSON(data []byte) (Node, error) {
	var shape map[string]any
	//
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, err
	}
	//
	return FromShape(shape)
}

// ============================================================================
// Serialisation
// ============================================================================

func shapeOf(n Node) any {
	if isNil(n) {
		return nil
	}
	//
	return n.shape()
}

func shapesOf[T Node](list []T) []any {
	shapes := make([]any, len(list))
	//
	for i, n := range list {
		shapes[i] = shapeOf(n)
	}
	//
	return shapes
}

// put stores a field unless its value is nil, an empty list, an empty string
// or false.
func put(m map[string]any, key string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case []any:
		if len(v) == 0 {
			return
		}
	case string:
		if v == "" {
			return
		}
	case bool:
		if !v {
			return
		}
	}
	//
	m[key] = value
}

func newShape(tag string) map[string]any {
	return map[string]any{"@type": tag}
}

func (p *StoredDefinition) shape() map[string]any {
	m := newShape(TagStoredDefinition)
	put(m, "within", shapeOf(p.Within))
	put(m, "classes", shapesOf(p.Classes))
	//
	return m
}

func (p *ClassDefinition) shape() map[string]any {
	m := newShape(TagClassDefinition)
	put(m, "partial", p.Prefixes.Partial)
	put(m, "encapsulated", p.Prefixes.Encapsulated)
	put(m, "final", p.Prefixes.Final)
	put(m, "inner", p.Prefixes.Inner)
	put(m, "outer", p.Prefixes.Outer)
	put(m, "redeclare", p.Prefixes.Redeclare)
	put(m, "replaceable", p.Prefixes.Replaceable)
	//
	if p.Purity.HasValue() {
		put(m, "purity", p.Purity.Unwrap().String())
	}
	//
	put(m, "kind", p.Kind.String())
	put(m, "specifier", shapeOf(p.Specifier))
	put(m, "constraint", shapeOf(p.Constraint))
	//
	return m
}

func (p *LongClassSpecifier) shape() map[string]any {
	m := newShape(TagLongClassSpecifier)
	put(m, "identifier", p.Name)
	put(m, "extends", p.Extends)
	put(m, "description", shapeOf(p.Description))
	put(m, "sections", shapesOf(p.Sections))
	put(m, "endIdentifier", p.EndName)
	put(m, "annotation", shapeOf(p.Annotation))
	//
	return m
}

func (p *ShortClassSpecifier) shape() map[string]any {
	m := newShape(TagShortClassSpecifier)
	put(m, "identifier", p.Name)
	put(m, "input", p.Input)
	put(m, "output", p.Output)
	put(m, "typeSpecifier", shapeOf(p.TypeSpecifier))
	put(m, "subscripts", shapesOf(p.Subscripts))
	put(m, "classModification", shapeOf(p.ClassModification))
	put(m, "enumeration", p.Enumeration)
	put(m, "literals", shapesOf(p.Literals))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *DerClassSpecifier) shape() map[string]any {
	m := newShape(TagDerClassSpecifier)
	put(m, "identifier", p.Name)
	put(m, "typeSpecifier", shapeOf(p.TypeSpecifier))
	put(m, "arguments", anyStrings(p.Arguments))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *EnumerationLiteral) shape() map[string]any {
	m := newShape(TagEnumerationLiteral)
	put(m, "identifier", p.Identifier)
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *ConstrainingClause) shape() map[string]any {
	m := newShape(TagConstrainingClause)
	put(m, "typeSpecifier", shapeOf(p.TypeSpecifier))
	put(m, "classModification", shapeOf(p.ClassModification))
	//
	return m
}

func (p *ElementSection) shape() map[string]any {
	m := newShape(TagElementSection)
	put(m, "visibility", p.Visibility.String())
	put(m, "elements", shapesOf(p.Elements))
	//
	return m
}

func (p *EquationSection) shape() map[string]any {
	m := newShape(p.Tag())
	put(m, "equations", shapesOf(p.Equations))
	//
	return m
}

func (p *AlgorithmSection) shape() map[string]any {
	m := newShape(TagAlgorithmSection)
	put(m, "initial", p.Initial)
	put(m, "statements", shapesOf(p.Statements))
	//
	return m
}

func (p *ComponentClause) shape() map[string]any {
	m := newShape(TagComponentClause)
	put(m, "final", p.Prefixes.Final)
	put(m, "inner", p.Prefixes.Inner)
	put(m, "outer", p.Prefixes.Outer)
	put(m, "redeclare", p.Prefixes.Redeclare)
	put(m, "replaceable", p.Prefixes.Replaceable)
	//
	if p.Flow.HasValue() {
		put(m, "flow", p.Flow.Unwrap().String())
	}
	//
	if p.Variability.HasValue() {
		put(m, "variability", p.Variability.Unwrap().String())
	}
	//
	if p.Causality.HasValue() {
		put(m, "causality", p.Causality.Unwrap().String())
	}
	//
	put(m, "typeSpecifier", shapeOf(p.TypeSpecifier))
	put(m, "subscripts", shapesOf(p.Subscripts))
	put(m, "declarations", shapesOf(p.Declarations))
	//
	return m
}

func (p *ComponentDeclaration) shape() map[string]any {
	m := newShape(TagComponentDeclaration)
	put(m, "identifier", p.Identifier)
	put(m, "subscripts", shapesOf(p.Subscripts))
	put(m, "modification", shapeOf(p.Modification))
	put(m, "condition", shapeOf(p.Condition))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *ExtendsClause) shape() map[string]any {
	m := newShape(TagExtendsClause)
	put(m, "typeSpecifier", shapeOf(p.TypeSpecifier))
	put(m, "classModification", shapeOf(p.ClassModification))
	put(m, "annotation", shapeOf(p.Annotation))
	//
	return m
}

func (p *SimpleImportClause) shape() map[string]any {
	m := newShape(TagSimpleImportClause)
	put(m, "shortName", p.ShortName)
	put(m, "name", shapeOf(p.Name))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *CompoundImportClause) shape() map[string]any {
	m := newShape(TagCompoundImportClause)
	put(m, "name", shapeOf(p.Name))
	put(m, "imports", anyStrings(p.Imports))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *UnqualifiedImportClause) shape() map[string]any {
	m := newShape(TagUnqualifiedImportClause)
	put(m, "name", shapeOf(p.Name))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *Description) shape() map[string]any {
	m := newShape(TagDescription)
	put(m, "text", p.Text)
	put(m, "annotation", shapeOf(p.Annotation))
	//
	return m
}

func (p *AnnotationClause) shape() map[string]any {
	m := newShape(TagAnnotationClause)
	put(m, "classModification", shapeOf(p.ClassModification))
	//
	return m
}

func (p *Modification) shape() map[string]any {
	m := newShape(TagModification)
	put(m, "classModification", shapeOf(p.ClassModification))
	put(m, "expression", shapeOf(p.Expression))
	put(m, "assign", p.Assign)
	//
	return m
}

func (p *ClassModification) shape() map[string]any {
	m := newShape(TagClassModification)
	put(m, "arguments", shapesOf(p.Arguments))
	//
	return m
}

func (p *ElementModification) shape() map[string]any {
	m := newShape(TagElementModification)
	put(m, "each", p.Each)
	put(m, "final", p.Final)
	put(m, "name", shapeOf(p.Name))
	put(m, "classModification", shapeOf(p.ClassModification))
	put(m, "expression", shapeOf(p.Expression))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *ElementRedeclaration) shape() map[string]any {
	m := newShape(TagElementRedeclaration)
	put(m, "each", p.Each)
	put(m, "final", p.Final)
	put(m, "element", shapeOf(p.Element))
	//
	return m
}

func (p *ForIndex) shape() map[string]any {
	m := newShape(TagForIndex)
	put(m, "identifier", p.Identifier)
	put(m, "expression", shapeOf(p.Expression))
	//
	return m
}

func (p *SimpleEquation) shape() map[string]any {
	m := newShape(TagSimpleEquation)
	put(m, "lhs", shapeOf(p.Lhs))
	put(m, "rhs", shapeOf(p.Rhs))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *ConnectEquation) shape() map[string]any {
	m := newShape(TagConnectEquation)
	put(m, "from", shapeOf(p.From))
	put(m, "to", shapeOf(p.To))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *ForEquation) shape() map[string]any {
	m := newShape(TagForEquation)
	put(m, "indices", shapesOf(p.Indices))
	put(m, "body", shapesOf(p.Body))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func equationBranchShapes(branches []EquationBranch) []any {
	shapes := make([]any, len(branches))
	//
	for i, b := range branches {
		m := make(map[string]any)
		put(m, "condition", shapeOf(b.Condition))
		put(m, "body", shapesOf(b.Body))
		shapes[i] = m
	}
	//
	return shapes
}

func (p *IfEquation) shape() map[string]any {
	m := newShape(TagIfEquation)
	put(m, "branches", equationBranchShapes(p.Branches))
	put(m, "else", shapesOf(p.Else))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *WhenEquation) shape() map[string]any {
	m := newShape(TagWhenEquation)
	put(m, "branches", equationBranchShapes(p.Branches))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func statementBranchShapes(branches []StatementBranch) []any {
	shapes := make([]any, len(branches))
	//
	for i, b := range branches {
		m := make(map[string]any)
		put(m, "condition", shapeOf(b.Condition))
		put(m, "body", shapesOf(b.Body))
		shapes[i] = m
	}
	//
	return shapes
}

func (p *AssignmentStatement) shape() map[string]any {
	m := newShape(TagAssignmentStatement)
	put(m, "target", shapeOf(p.Target))
	put(m, "value", shapeOf(p.Value))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *CallStatement) shape() map[string]any {
	m := newShape(TagCallStatement)
	put(m, "call", shapeOf(p.Call))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *IfStatement) shape() map[string]any {
	m := newShape(TagIfStatement)
	put(m, "branches", statementBranchShapes(p.Branches))
	put(m, "else", shapesOf(p.Else))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *ForStatement) shape() map[string]any {
	m := newShape(TagForStatement)
	put(m, "indices", shapesOf(p.Indices))
	put(m, "body", shapesOf(p.Body))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *WhileStatement) shape() map[string]any {
	m := newShape(TagWhileStatement)
	put(m, "condition", shapeOf(p.Condition))
	put(m, "body", shapesOf(p.Body))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *WhenStatement) shape() map[string]any {
	m := newShape(TagWhenStatement)
	put(m, "branches", statementBranchShapes(p.Branches))
	put(m, "description", shapeOf(p.Description))
	//
	return m
}

func (p *Name) shape() map[string]any {
	m := newShape(TagName)
	put(m, "parts", anyStrings(p.Parts))
	//
	return m
}

func (p *TypeSpecifier) shape() map[string]any {
	m := newShape(TagTypeSpecifier)
	put(m, "global", p.Global)
	put(m, "name", shapeOf(p.Name))
	//
	return m
}

func (p *Subscript) shape() map[string]any {
	m := newShape(TagSubscript)
	put(m, "flexible", p.Flexible)
	put(m, "expression", shapeOf(p.Expression))
	//
	return m
}

func (p *ComponentReference) shape() map[string]any {
	m := newShape(TagComponentReference)
	put(m, "global", p.Global)
	//
	parts := make([]any, len(p.Parts))
	//
	for i, part := range p.Parts {
		pm := map[string]any{"identifier": part.Identifier}
		put(pm, "subscripts", shapesOf(part.Subscripts))
		parts[i] = pm
	}
	//
	put(m, "parts", parts)
	//
	return m
}

func (p *BinaryExpression) shape() map[string]any {
	m := newShape(TagBinaryExpression)
	put(m, "operator", p.Operator.String())
	put(m, "lhs", shapeOf(p.Lhs))
	put(m, "rhs", shapeOf(p.Rhs))
	//
	return m
}

func (p *UnaryExpression) shape() map[string]any {
	m := newShape(TagUnaryExpression)
	put(m, "operator", p.Operator.String())
	put(m, "operand", shapeOf(p.Operand))
	//
	return m
}

func (p *RangeExpression) shape() map[string]any {
	m := newShape(TagRangeExpression)
	put(m, "start", shapeOf(p.Start))
	put(m, "step", shapeOf(p.Step))
	put(m, "end", shapeOf(p.End))
	//
	return m
}

func (p *IfExpression) shape() map[string]any {
	m := newShape(TagIfExpression)
	//
	branches := make([]any, len(p.Branches))
	//
	for i, b := range p.Branches {
		bm := make(map[string]any)
		put(bm, "condition", shapeOf(b.Condition))
		put(bm, "value", shapeOf(b.Value))
		branches[i] = bm
	}
	//
	put(m, "branches", branches)
	put(m, "else", shapeOf(p.Else))
	//
	return m
}

func (p *FunctionCall) shape() map[string]any {
	m := newShape(TagFunctionCall)
	put(m, "callee", shapeOf(p.Callee))
	put(m, "arguments", shapesOf(p.Arguments))
	put(m, "namedArguments", shapesOf(p.NamedArguments))
	//
	return m
}

func (p *NamedArgument) shape() map[string]any {
	m := newShape(TagNamedArgument)
	put(m, "identifier", p.Identifier)
	put(m, "value", shapeOf(p.Value))
	//
	return m
}

func (p *ArrayConstructor) shape() map[string]any {
	m := newShape(TagArrayConstructor)
	put(m, "elements", shapesOf(p.Elements))
	//
	return m
}

func (p *ArrayConcatenation) shape() map[string]any {
	m := newShape(TagArrayConcatenation)
	//
	rows := make([]any, len(p.Rows))
	//
	for i, row := range p.Rows {
		rows[i] = shapesOf(row)
	}
	//
	put(m, "rows", rows)
	//
	return m
}

func (p *MemberAccess) shape() map[string]any {
	m := newShape(TagMemberAccess)
	put(m, "value", shapeOf(p.Value))
	put(m, "member", p.Member)
	//
	return m
}

func (p *BooleanLiteral) shape() map[string]any {
	m := newShape(TagBoolean)
	m["value"] = p.Value
	//
	return m
}

func (p *IntegerLiteral) shape() map[string]any {
	m := newShape(TagUnsignedInteger)
	m["value"] = p.Value
	//
	return m
}

func (p *RealLiteral) shape() map[string]any {
	m := newShape(TagUnsignedReal)
	m["value"] = p.Value
	//
	return m
}

func (p *StringLiteral) shape() map[string]any {
	m := newShape(TagString)
	m["value"] = p.Value
	//
	return m
}

func (p *Identifier) shape() map[string]any {
	m := newShape(TagIdent)
	m["value"] = p.Value
	//
	return m
}

func (p *EndExpression) shape() map[string]any {
	return newShape(TagEnd)
}

func anyStrings(list []string) []any {
	values := make([]any, len(list))
	//
	for i, s := range list {
		values[i] = s
	}
	//
	return values
}
