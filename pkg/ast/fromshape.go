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

	"github.com/modelscript/modelscript/pkg/util"
)

// FromShape reconstructs a node from its serialised shape.  The "@type" tag
// gates a closed-variant dispatch; an unknown tag fails with an
// InvalidNodeError.
func FromShape(m map[string]any) (Node, error) {
	switch tagOf(m) {
	case TagStoredDefinition:
		return storedDefinitionFromShape(m)
	case TagClassDefinition:
		return classDefinitionFromShape(m)
	case TagLongClassSpecifier, TagShortClassSpecifier, TagDerClassSpecifier:
		return ClassSpecifierFromShape(m)
	case TagEnumerationLiteral:
		return enumerationLiteralFromShape(m)
	case TagConstrainingClause:
		return constrainingClauseFromShape(m)
	case TagElementSection, TagEquationSection, TagInitialElementSection, TagAlgorithmSection:
		return SectionFromShape(m)
	case TagComponentClause, TagExtendsClause, TagSimpleImportClause,
		TagCompoundImportClause, TagUnqualifiedImportClause:
		return ElementFromShape(m)
	case TagComponentDeclaration:
		return componentDeclarationFromShape(m)
	case TagDescription:
		return descriptionFromShape(m)
	case TagAnnotationClause:
		return annotationClauseFromShape(m)
	case TagModification:
		return modificationFromShape(m)
	case TagClassModification:
		return classModificationFromShape(m)
	case TagElementModification, TagElementRedeclaration:
		return ModificationArgumentFromShape(m)
	case TagForIndex:
		return forIndexFromShape(m)
	case TagSimpleEquation, TagConnectEquation, TagForEquation, TagIfEquation, TagWhenEquation:
		return EquationFromShape(m)
	case TagAssignmentStatement, TagCallStatement, TagIfStatement, TagForStatement,
		TagWhileStatement, TagWhenStatement:
		return StatementFromShape(m)
	case TagName:
		return nameFromShape(m)
	case TagTypeSpecifier:
		return typeSpecifierFromShape(m)
	case TagSubscript:
		return subscriptFromShape(m)
	default:
		return ExpressionFromShape(m)
	}
}

// ClassSpecifierFromShape reconstructs a class specifier from its serialised
// shape.
func ClassSpecifierFromShape(m map[string]any) (ClassSpecifier, error) {
	switch tagOf(m) {
	case TagLongClassSpecifier:
		return longClassSpecifierFromShape(m)
	case TagShortClassSpecifier:
		return shortClassSpecifierFromShape(m)
	case TagDerClassSpecifier:
		return derClassSpecifierFromShape(m)
	default:
		return nil, invalidNode("class specifier", tagOf(m))
	}
}

// SectionFromShape reconstructs a section from its serialised shape.
func SectionFromShape(m map[string]any) (Section, error) {
	switch tagOf(m) {
	case TagElementSection:
		return elementSectionFromShape(m)
	case TagEquationSection:
		return equationSectionFromShape(m, false)
	case TagInitialElementSection:
		return equationSectionFromShape(m, true)
	case TagAlgorithmSection:
		return algorithmSectionFromShape(m)
	default:
		return nil, invalidNode("section", tagOf(m))
	}
}

// ElementFromShape reconstructs an element from its serialised shape.
func ElementFromShape(m map[string]any) (Element, error) {
	switch tagOf(m) {
	case TagClassDefinition:
		return classDefinitionFromShape(m)
	case TagComponentClause:
		return componentClauseFromShape(m)
	case TagExtendsClause:
		return extendsClauseFromShape(m)
	case TagSimpleImportClause:
		name, err := optionalNameFromShape(m, "name")
		if err != nil {
			return nil, err
		}
		//
		description, err := optionalDescriptionFromShape(m)
		if err != nil {
			return nil, err
		}
		//
		return NewSimpleImportClause(strField(m, "shortName"), name, description), nil
	case TagCompoundImportClause:
		name, err := optionalNameFromShape(m, "name")
		if err != nil {
			return nil, err
		}
		//
		description, err := optionalDescriptionFromShape(m)
		if err != nil {
			return nil, err
		}
		//
		return NewCompoundImportClause(name, strsField(m, "imports"), description), nil
	case TagUnqualifiedImportClause:
		name, err := optionalNameFromShape(m, "name")
		if err != nil {
			return nil, err
		}
		//
		description, err := optionalDescriptionFromShape(m)
		if err != nil {
			return nil, err
		}
		//
		return NewUnqualifiedImportClause(name, description), nil
	default:
		return nil, invalidNode("element", tagOf(m))
	}
}

// ModificationArgumentFromShape reconstructs a modification argument from its
// serialised shape.
func ModificationArgumentFromShape(m map[string]any) (ModificationArgument, error) {
	switch tagOf(m) {
	case TagElementModification:
		name, err := optionalNameFromShape(m, "name")
		if err != nil {
			return nil, err
		}
		//
		modification, err := optionalClassModificationFromShape(m, "classModification")
		if err != nil {
			return nil, err
		}
		//
		expr, err := optionalExpressionFromShape(m, "expression")
		if err != nil {
			return nil, err
		}
		//
		description, err := optionalDescriptionFromShape(m)
		if err != nil {
			return nil, err
		}
		//
		return NewElementModification(boolField(m, "each"), boolField(m, "final"),
			name, modification, expr, description), nil
	case TagElementRedeclaration:
		var (
			element Element
			err     error
		)
		//
		if em := mapField(m, "element"); em != nil {
			if element, err = ElementFromShape(em); err != nil {
				return nil, err
			}
		}
		//
		return NewElementRedeclaration(boolField(m, "each"), boolField(m, "final"), element), nil
	default:
		return nil, invalidNode("modification argument", tagOf(m))
	}
}

// EquationFromShape reconstructs an equation from its serialised shape.
func EquationFromShape(m map[string]any) (Equation, error) {
	description, err := optionalDescriptionFromShape(m)
	if err != nil {
		return nil, err
	}
	//
	switch tagOf(m) {
	case TagSimpleEquation:
		lhs, err := optionalExpressionFromShape(m, "lhs")
		if err != nil {
			return nil, err
		}
		//
		rhs, err := optionalExpressionFromShape(m, "rhs")
		if err != nil {
			return nil, err
		}
		//
		return NewSimpleEquation(lhs, rhs, description), nil
	case TagConnectEquation:
		from, err := optionalComponentReferenceFromShape(m, "from")
		if err != nil {
			return nil, err
		}
		//
		to, err := optionalComponentReferenceFromShape(m, "to")
		if err != nil {
			return nil, err
		}
		//
		return NewConnectEquation(from, to, description), nil
	case TagForEquation:
		indices, err := forIndicesFromShape(m)
		if err != nil {
			return nil, err
		}
		//
		body, err := equationsFromShape(m, "body")
		if err != nil {
			return nil, err
		}
		//
		return NewForEquation(indices, body, description), nil
	case TagIfEquation:
		branches, err := equationBranchesFromShape(m)
		if err != nil {
			return nil, err
		}
		//
		elseBody, err := equationsFromShape(m, "else")
		if err != nil {
			return nil, err
		}
		//
		return NewIfEquation(branches, elseBody, description), nil
	case TagWhenEquation:
		branches, err := equationBranchesFromShape(m)
		if err != nil {
			return nil, err
		}
		//
		return NewWhenEquation(branches, description), nil
	default:
		return nil, invalidNode("equation", tagOf(m))
	}
}

// StatementFromShape reconstructs a statement from its serialised shape.
func StatementFromShape(m map[string]any) (Statement, error) {
	description, err := optionalDescriptionFromShape(m)
	if err != nil {
		return nil, err
	}
	//
	switch tagOf(m) {
	case TagAssignmentStatement:
		target, err := optionalComponentReferenceFromShape(m, "target")
		if err != nil {
			return nil, err
		}
		//
		value, err := optionalExpressionFromShape(m, "value")
		if err != nil {
			return nil, err
		}
		//
		return NewAssignmentStatement(target, value, description), nil
	case TagCallStatement:
		var call *FunctionCall
		//
		if cm := mapField(m, "call"); cm != nil {
			if call, err = functionCallFromShape(cm); err != nil {
				return nil, err
			}
		}
		//
		return NewCallStatement(call, description), nil
	case TagIfStatement:
		branches, err := statementBranchesFromShape(m)
		if err != nil {
			return nil, err
		}
		//
		elseBody, err := statementsFromShape(m, "else")
		if err != nil {
			return nil, err
		}
		//
		return NewIfStatement(branches, elseBody, description), nil
	case TagForStatement:
		indices, err := forIndicesFromShape(m)
		if err != nil {
			return nil, err
		}
		//
		body, err := statementsFromShape(m, "body")
		if err != nil {
			return nil, err
		}
		//
		return NewForStatement(indices, body, description), nil
	case TagWhileStatement:
		condition, err := optionalExpressionFromShape(m, "condition")
		if err != nil {
			return nil, err
		}
		//
		body, err := statementsFromShape(m, "body")
		if err != nil {
			return nil, err
		}
		//
		return NewWhileStatement(condition, body, description), nil
	case TagWhenStatement:
		branches, err := statementBranchesFromShape(m)
		if err != nil {
			return nil, err
		}
		//
		return NewWhenStatement(branches, description), nil
	default:
		return nil, invalidNode("statement", tagOf(m))
	}
}

// ExpressionFromShape reconstructs an expression from its serialised shape.
func ExpressionFromShape(m map[string]any) (Expression, error) {
	switch tagOf(m) {
	case TagIfExpression:
		var branches []IfExpressionBranch
		//
		for _, bm := range listField(m, "branches") {
			condition, err := optionalExpressionFromShape(bm, "condition")
			if err != nil {
				return nil, err
			}
			//
			value, err := optionalExpressionFromShape(bm, "value")
			if err != nil {
				return nil, err
			}
			//
			branches = append(branches, IfExpressionBranch{condition, value})
		}
		//
		elseValue, err := optionalExpressionFromShape(m, "else")
		if err != nil {
			return nil, err
		}
		//
		return NewIfExpression(branches, elseValue), nil
	default:
		return SimpleExpressionFromShape(m)
	}
}

// SimpleExpressionFromShape reconstructs a simple expression from its
// serialised shape, rejecting anything outside that subset.
func SimpleExpressionFromShape(m map[string]any) (SimpleExpression, error) {
	switch tagOf(m) {
	case TagBinaryExpression:
		op, err := BinaryOperatorOf(strField(m, "operator"))
		if err != nil {
			return nil, err
		}
		//
		lhs, err := optionalExpressionFromShape(m, "lhs")
		if err != nil {
			return nil, err
		}
		//
		rhs, err := optionalExpressionFromShape(m, "rhs")
		if err != nil {
			return nil, err
		}
		//
		return NewBinaryExpression(op, lhs, rhs), nil
	case TagUnaryExpression:
		op, err := UnaryOperatorOf(strField(m, "operator"))
		if err != nil {
			return nil, err
		}
		//
		operand, err := optionalExpressionFromShape(m, "operand")
		if err != nil {
			return nil, err
		}
		//
		return NewUnaryExpression(op, operand), nil
	case TagRangeExpression:
		start, err := optionalExpressionFromShape(m, "start")
		if err != nil {
			return nil, err
		}
		//
		step, err := optionalExpressionFromShape(m, "step")
		if err != nil {
			return nil, err
		}
		//
		end, err := optionalExpressionFromShape(m, "end")
		if err != nil {
			return nil, err
		}
		//
		return NewRangeExpression(start, step, end), nil
	default:
		return PrimaryExpressionFromShape(m)
	}
}

// PrimaryExpressionFromShape reconstructs a primary expression from its
// serialised shape, rejecting anything outside that subset.
func PrimaryExpressionFromShape(m map[string]any) (PrimaryExpression, error) {
	switch tagOf(m) {
	case TagComponentReference:
		return componentReferenceFromShape(m)
	case TagFunctionCall:
		return functionCallFromShape(m)
	case TagArrayConstructor:
		var elements []Expression
		//
		for _, em := range listField(m, "elements") {
			element, err := ExpressionFromShape(em)
			if err != nil {
				return nil, err
			}
			//
			elements = append(elements, element)
		}
		//
		return NewArrayConstructor(elements...), nil
	case TagArrayConcatenation:
		var rows [][]Expression
		//
		for _, rm := range anyListField(m, "rows") {
			var row []Expression
			//
			if items, ok := rm.([]any); ok {
				for _, em := range items {
					if emap, ok := em.(map[string]any); ok {
						element, err := ExpressionFromShape(emap)
						if err != nil {
							return nil, err
						}
						//
						row = append(row, element)
					}
				}
			}
			//
			rows = append(rows, row)
		}
		//
		return NewArrayConcatenation(rows...), nil
	case TagMemberAccess:
		value, err := optionalExpressionFromShape(m, "value")
		if err != nil {
			return nil, err
		}
		//
		return NewMemberAccess(value, strField(m, "member")), nil
	case TagBoolean:
		return NewBooleanLiteral(boolField(m, "value")), nil
	case TagUnsignedInteger:
		return NewIntegerLiteral(intField(m, "value")), nil
	case TagUnsignedReal:
		return NewRealLiteral(floatField(m, "value")), nil
	case TagString:
		return NewStringLiteral(strField(m, "value")), nil
	case TagIdent:
		return NewIdentifier(strField(m, "value")), nil
	case TagEnd:
		return NewEndExpression(), nil
	default:
		return nil, invalidNode("primary expression", tagOf(m))
	}
}

// ============================================================================
// Shape builders
// ============================================================================

func storedDefinitionFromShape(m map[string]any) (*StoredDefinition, error) {
	within, err := optionalNameFromShape(m, "within")
	if err != nil {
		return nil, err
	}
	//
	var classes []*ClassDefinition
	//
	for _, cm := range listField(m, "classes") {
		class, err := classDefinitionFromShape(cm)
		if err != nil {
			return nil, err
		}
		//
		classes = append(classes, class)
	}
	//
	return NewStoredDefinition(within, classes), nil
}

func classDefinitionFromShape(m map[string]any) (*ClassDefinition, error) {
	if tagOf(m) != TagClassDefinition {
		return nil, invalidNode(TagClassDefinition, tagOf(m))
	}
	//
	prefixes := ClassPrefixes{
		Partial:      boolField(m, "partial"),
		Encapsulated: boolField(m, "encapsulated"),
		Final:        boolField(m, "final"),
		Inner:        boolField(m, "inner"),
		Outer:        boolField(m, "outer"),
		Redeclare:    boolField(m, "redeclare"),
		Replaceable:  boolField(m, "replaceable"),
	}
	//
	purity := util.None[Purity]()
	//
	if text := strField(m, "purity"); text != "" {
		p, err := PurityOf(text)
		if err != nil {
			return nil, err
		}
		//
		purity = util.Some(p)
	}
	//
	kind, err := ClassKindOf(strField(m, "kind"))
	if err != nil {
		return nil, err
	}
	//
	var specifier ClassSpecifier
	//
	if sm := mapField(m, "specifier"); sm != nil {
		if specifier, err = ClassSpecifierFromShape(sm); err != nil {
			return nil, err
		}
	}
	//
	var constraint *ConstrainingClause
	//
	if cm := mapField(m, "constraint"); cm != nil {
		if constraint, err = constrainingClauseFromShape(cm); err != nil {
			return nil, err
		}
	}
	//
	return NewClassDefinition(prefixes, purity, kind, specifier, constraint), nil
}

func longClassSpecifierFromShape(m map[string]any) (*LongClassSpecifier, error) {
	description, err := optionalDescriptionFromShape(m)
	if err != nil {
		return nil, err
	}
	//
	var sections []Section
	//
	for _, sm := range listField(m, "sections") {
		section, err := SectionFromShape(sm)
		if err != nil {
			return nil, err
		}
		//
		sections = append(sections, section)
	}
	//
	annotation, err := optionalAnnotationFromShape(m)
	if err != nil {
		return nil, err
	}
	//
	return NewLongClassSpecifier(strField(m, "identifier"), boolField(m, "extends"),
		description, sections, strField(m, "endIdentifier"), annotation), nil
}

func shortClassSpecifierFromShape(m map[string]any) (*ShortClassSpecifier, error) {
	description, err := optionalDescriptionFromShape(m)
	if err != nil {
		return nil, err
	}
	//
	if boolField(m, "enumeration") {
		var literals []*EnumerationLiteral
		//
		for _, lm := range listField(m, "literals") {
			literal, err := enumerationLiteralFromShape(lm)
			if err != nil {
				return nil, err
			}
			//
			literals = append(literals, literal)
		}
		//
		return NewEnumerationClassSpecifier(strField(m, "identifier"), literals, description), nil
	}
	//
	ts, err := optionalTypeSpecifierFromShape(m, "typeSpecifier")
	if err != nil {
		return nil, err
	}
	//
	subscripts, err := subscriptsFromShape(m, "subscripts")
	if err != nil {
		return nil, err
	}
	//
	modification, err := optionalClassModificationFromShape(m, "classModification")
	if err != nil {
		return nil, err
	}
	//
	return NewShortClassSpecifier(strField(m, "identifier"), boolField(m, "input"),
		boolField(m, "output"), ts, subscripts, modification, description), nil
}

func derClassSpecifierFromShape(m map[string]any) (*DerClassSpecifier, error) {
	ts, err := optionalTypeSpecifierFromShape(m, "typeSpecifier")
	if err != nil {
		return nil, err
	}
	//
	description, err := optionalDescriptionFromShape(m)
	if err != nil {
		return nil, err
	}
	//
	return NewDerClassSpecifier(strField(m, "identifier"), ts,
		strsField(m, "arguments"), description), nil
}

func enumerationLiteralFromShape(m map[string]any) (*EnumerationLiteral, error) {
	description, err := optionalDescriptionFromShape(m)
	if err != nil {
		return nil, err
	}
	//
	return NewEnumerationLiteral(strField(m, "identifier"), description), nil
}

func constrainingClauseFromShape(m map[string]any) (*ConstrainingClause, error) {
	ts, err := optionalTypeSpecifierFromShape(m, "typeSpecifier")
	if err != nil {
		return nil, err
	}
	//
	modification, err := optionalClassModificationFromShape(m, "classModification")
	if err != nil {
		return nil, err
	}
	//
	return NewConstrainingClause(ts, modification), nil
}

func elementSectionFromShape(m map[string]any) (*ElementSection, error) {
	visibility := VisibilityPublic
	//
	if text := strField(m, "visibility"); text != "" {
		v, err := VisibilityOf(text)
		if err != nil {
			return nil, err
		}
		//
		visibility = v
	}
	//
	var elements []Element
	//
	for _, em := range listField(m, "elements") {
		element, err := ElementFromShape(em)
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
	}
	//
	return NewElementSection(visibility, elements), nil
}

func equationSectionFromShape(m map[string]any, initial bool) (*EquationSection, error) {
	equations, err := equationsFromShape(m, "equations")
	if err != nil {
		return nil, err
	}
	//
	return NewEquationSection(initial, equations), nil
}

func algorithmSectionFromShape(m map[string]any) (*AlgorithmSection, error) {
	statements, err := statementsFromShape(m, "statements")
	if err != nil {
		return nil, err
	}
	//
	return NewAlgorithmSection(boolField(m, "initial"), statements), nil
}

func componentClauseFromShape(m map[string]any) (*ComponentClause, error) {
	prefixes := ClassPrefixes{
		Final:       boolField(m, "final"),
		Inner:       boolField(m, "inner"),
		Outer:       boolField(m, "outer"),
		Redeclare:   boolField(m, "redeclare"),
		Replaceable: boolField(m, "replaceable"),
	}
	//
	flow := util.None[Flow]()
	if text := strField(m, "flow"); text != "" {
		f, err := FlowOf(text)
		if err != nil {
			return nil, err
		}
		//
		flow = util.Some(f)
	}
	//
	variability := util.None[Variability]()
	if text := strField(m, "variability"); text != "" {
		v, err := VariabilityOf(text)
		if err != nil {
			return nil, err
		}
		//
		variability = util.Some(v)
	}
	//
	causality := util.None[Causality]()
	if text := strField(m, "causality"); text != "" {
		c, err := CausalityOf(text)
		if err != nil {
			return nil, err
		}
		//
		causality = util.Some(c)
	}
	//
	ts, err := optionalTypeSpecifierFromShape(m, "typeSpecifier")
	if err != nil {
		return nil, err
	}
	//
	subscripts, err := subscriptsFromShape(m, "subscripts")
	if err != nil {
		return nil, err
	}
	//
	var declarations []*ComponentDeclaration
	//
	for _, dm := range listField(m, "declarations") {
		declaration, err := componentDeclarationFromShape(dm)
		if err != nil {
			return nil, err
		}
		//
		declarations = append(declarations, declaration)
	}
	//
	return NewComponentClause(prefixes, flow, variability, causality, ts,
		subscripts, declarations), nil
}

func componentDeclarationFromShape(m map[string]any) (*ComponentDeclaration, error) {
	subscripts, err := subscriptsFromShape(m, "subscripts")
	if err != nil {
		return nil, err
	}
	//
	var modification *Modification
	//
	if mm := mapField(m, "modification"); mm != nil {
		if modification, err = modificationFromShape(mm); err != nil {
			return nil, err
		}
	}
	//
	condition, err := optionalExpressionFromShape(m, "condition")
	if err != nil {
		return nil, err
	}
	//
	description, err := optionalDescriptionFromShape(m)
	if err != nil {
		return nil, err
	}
	//
	return NewComponentDeclaration(strField(m, "identifier"), subscripts,
		modification, condition, description), nil
}

func extendsClauseFromShape(m map[string]any) (*ExtendsClause, error) {
	ts, err := optionalTypeSpecifierFromShape(m, "typeSpecifier")
	if err != nil {
		return nil, err
	}
	//
	modification, err := optionalClassModificationFromShape(m, "classModification")
	if err != nil {
		return nil, err
	}
	//
	annotation, err := optionalAnnotationFromShape(m)
	if err != nil {
		return nil, err
	}
	//
	return NewExtendsClause(ts, modification, annotation), nil
}

func descriptionFromShape(m map[string]any) (*Description, error) {
	annotation, err := optionalAnnotationFromShape(m)
	if err != nil {
		return nil, err
	}
	//
	return NewDescription(strField(m, "text"), annotation), nil
}

func annotationClauseFromShape(m map[string]any) (*AnnotationClause, error) {
	modification, err := optionalClassModificationFromShape(m, "classModification")
	if err != nil {
		return nil, err
	}
	//
	return NewAnnotationClause(modification), nil
}

func modificationFromShape(m map[string]any) (*Modification, error) {
	modification, err := optionalClassModificationFromShape(m, "classModification")
	if err != nil {
		return nil, err
	}
	//
	expr, err := optionalExpressionFromShape(m, "expression")
	if err != nil {
		return nil, err
	}
	//
	return NewModification(modification, expr, boolField(m, "assign")), nil
}

func classModificationFromShape(m map[string]any) (*ClassModification, error) {
	var args []ModificationArgument
	//
	for _, am := range listField(m, "arguments") {
		arg, err := ModificationArgumentFromShape(am)
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
	}
	//
	return NewClassModification(args...), nil
}

func forIndexFromShape(m map[string]any) (*ForIndex, error) {
	expr, err := optionalExpressionFromShape(m, "expression")
	if err != nil {
		return nil, err
	}
	//
	return NewForIndex(strField(m, "identifier"), expr), nil
}

func nameFromShape(m map[string]any) (*Name, error) {
	return NewName(strsField(m, "parts")...), nil
}

func typeSpecifierFromShape(m map[string]any) (*TypeSpecifier, error) {
	name, err := optionalNameFromShape(m, "name")
	if err != nil {
		return nil, err
	}
	//
	return NewTypeSpecifier(boolField(m, "global"), name), nil
}

func subscriptFromShape(m map[string]any) (*Subscript, error) {
	if boolField(m, "flexible") {
		return NewFlexibleSubscript(), nil
	}
	//
	expr, err := optionalExpressionFromShape(m, "expression")
	if err != nil {
		return nil, err
	}
	//
	return NewSubscript(expr), nil
}

func componentReferenceFromShape(m map[string]any) (*ComponentReference, error) {
	var parts []ComponentReferencePart
	//
	for _, pm := range listField(m, "parts") {
		subscripts, err := subscriptsFromShape(pm, "subscripts")
		if err != nil {
			return nil, err
		}
		//
		parts = append(parts, ComponentReferencePart{strField(pm, "identifier"), subscripts})
	}
	//
	return NewComponentReference(boolField(m, "global"), parts...), nil
}

func functionCallFromShape(m map[string]any) (*FunctionCall, error) {
	var (
		callee *ComponentReference
		err    error
	)
	//
	if cm := mapField(m, "callee"); cm != nil {
		if callee, err = componentReferenceFromShape(cm); err != nil {
			return nil, err
		}
	}
	//
	var args []Expression
	//
	for _, am := range listField(m, "arguments") {
		arg, err := ExpressionFromShape(am)
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
	}
	//
	var named []*NamedArgument
	//
	for _, am := range listField(m, "namedArguments") {
		value, err := optionalExpressionFromShape(am, "value")
		if err != nil {
			return nil, err
		}
		//
		named = append(named, NewNamedArgument(strField(am, "identifier"), value))
	}
	//
	return NewFunctionCall(callee, args, named), nil
}

// ============================================================================
// Shape helpers
// ============================================================================

func tagOf(m map[string]any) string {
	if tag, ok := m["@type"].(string); ok {
		return tag
	}
	//
	return ""
}

func mapField(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	//
	return nil
}

func listField(m map[string]any, key string) []map[string]any {
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	//
	var maps []map[string]any
	//
	for _, item := range items {
		if v, ok := item.(map[string]any); ok {
			maps = append(maps, v)
		}
	}
	//
	return maps
}

func anyListField(m map[string]any, key string) []any {
	if v, ok := m[key].([]any); ok {
		return v
	}
	//
	return nil
}

func strField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	//
	return ""
}

func boolField(m map[string]any, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	//
	return false
}

func strsField(m map[string]any, key string) []string {
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	//
	var values []string
	//
	for _, item := range items {
		if v, ok := item.(string); ok {
			values = append(values, v)
		}
	}
	//
	return values
}

func intField(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		i, _ := v.Int64()
		return i
	default:
		return 0
	}
}

func floatField(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

func optionalNameFromShape(m map[string]any, key string) (*Name, error) {
	if nm := mapField(m, key); nm != nil {
		return nameFromShape(nm)
	}
	//
	return nil, nil
}

func optionalTypeSpecifierFromShape(m map[string]any, key string) (*TypeSpecifier, error) {
	if tm := mapField(m, key); tm != nil {
		return typeSpecifierFromShape(tm)
	}
	//
	return nil, nil
}

func optionalClassModificationFromShape(m map[string]any, key string) (*ClassModification, error) {
	if cm := mapField(m, key); cm != nil {
		return classModificationFromShape(cm)
	}
	//
	return nil, nil
}

func optionalDescriptionFromShape(m map[string]any) (*Description, error) {
	if dm := mapField(m, "description"); dm != nil {
		return descriptionFromShape(dm)
	}
	//
	return nil, nil
}

func optionalAnnotationFromShape(m map[string]any) (*AnnotationClause, error) {
	if am := mapField(m, "annotation"); am != nil {
		return annotationClauseFromShape(am)
	}
	//
	return nil, nil
}

func optionalExpressionFromShape(m map[string]any, key string) (Expression, error) {
	if em := mapField(m, key); em != nil {
		return ExpressionFromShape(em)
	}
	//
	return nil, nil
}

func optionalComponentReferenceFromShape(m map[string]any, key string) (*ComponentReference, error) {
	if cm := mapField(m, key); cm != nil {
		return componentReferenceFromShape(cm)
	}
	//
	return nil, nil
}

func subscriptsFromShape(m map[string]any, key string) ([]*Subscript, error) {
	var subscripts []*Subscript
	//
	for _, sm := range listField(m, key) {
		subscript, err := subscriptFromShape(sm)
		if err != nil {
			return nil, err
		}
		//
		subscripts = append(subscripts, subscript)
	}
	//
	return subscripts, nil
}

func forIndicesFromShape(m map[string]any) ([]*ForIndex, error) {
	var indices []*ForIndex
	//
	for _, im := range listField(m, "indices") {
		index, err := forIndexFromShape(im)
		if err != nil {
			return nil, err
		}
		//
		indices = append(indices, index)
	}
	//
	return indices, nil
}

func equationsFromShape(m map[string]any, key string) ([]Equation, error) {
	var equations []Equation
	//
	for _, em := range listField(m, key) {
		equation, err := EquationFromShape(em)
		if err != nil {
			return nil, err
		}
		//
		equations = append(equations, equation)
	}
	//
	return equations, nil
}

func statementsFromShape(m map[string]any, key string) ([]Statement, error) {
	var statements []Statement
	//
	for _, sm := range listField(m, key) {
		statement, err := StatementFromShape(sm)
		if err != nil {
			return nil, err
		}
		//
		statements = append(statements, statement)
	}
	//
	return statements, nil
}

func equationBranchesFromShape(m map[string]any) ([]EquationBranch, error) {
	var branches []EquationBranch
	//
	for _, bm := range listField(m, "branches") {
		condition, err := optionalExpressionFromShape(bm, "condition")
		if err != nil {
			return nil, err
		}
		//
		body, err := equationsFromShape(bm, "body")
		if err != nil {
			return nil, err
		}
		//
		branches = append(branches, EquationBranch{condition, body})
	}
	//
	return branches, nil
}

func statementBranchesFromShape(m map[string]any) ([]StatementBranch, error) {
	var branches []StatementBranch
	//
	for _, bm := range listField(m, "branches") {
		condition, err := optionalExpressionFromShape(bm, "condition")
		if err != nil {
			return nil, err
		}
		//
		body, err := statementsFromShape(bm, "body")
		if err != nil {
			return nil, err
		}
		//
		branches = append(branches, StatementBranch{condition, body})
	}
	//
	return branches, nil
}
