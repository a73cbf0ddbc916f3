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
	"strconv"
	"strings"

	"github.com/modelscript/modelscript/pkg/syntax"
	"github.com/modelscript/modelscript/pkg/util"
)

// This file holds the type-driven factories which turn concrete syntax nodes
// into AST nodes.  Each factory peeks at the concrete node's kind and
// dispatches to the corresponding variant constructor; a kind outside the
// expected variant set fails with an InvalidNodeError.  Missing optional
// fields become absent; it is for higher layers to decide whether an absent
// field constitutes a hard error.

// StoredDefinitionFromSyntax constructs a stored definition from its concrete
// node.
func StoredDefinitionFromSyntax(n syntax.Node) (*StoredDefinition, error) {
	if n.Type() != syntax.KindStoredDefinition {
		return nil, invalidNode(syntax.KindStoredDefinition, n.Type())
	}
	//
	var within *Name
	//
	if w := n.ChildForFieldName("within"); w != nil {
		name, err := NameFromSyntax(w)
		if err != nil {
			return nil, err
		}
		//
		within = name
	}
	//
	var classes []*ClassDefinition
	//
	for _, c := range n.ChildrenForFieldName("class") {
		class, err := ClassDefinitionFromSyntax(c)
		if err != nil {
			return nil, err
		}
		//
		classes = append(classes, class)
	}
	//
	return attach(NewStoredDefinition(within, classes), n), nil
}

// ClassDefinitionFromSyntax constructs a class definition from its concrete
// node.
func ClassDefinitionFromSyntax(n syntax.Node) (*ClassDefinition, error) {
	if n.Type() != syntax.KindClassDefinition {
		return nil, invalidNode(syntax.KindClassDefinition, n.Type())
	}
	//
	prefixes := classPrefixesOf(n)
	purity := util.None[Purity]()
	//
	if text := fieldText(n, "purity"); text != "" {
		p, err := PurityOf(text)
		if err != nil {
			return nil, err
		}
		//
		purity = util.Some(p)
	}
	//
	kind, err := ClassKindOf(fieldText(n, "kind"))
	if err != nil {
		return nil, err
	}
	//
	var specifier ClassSpecifier
	//
	if s := n.ChildForFieldName("specifier"); s != nil {
		if specifier, err = ClassSpecifierFromSyntax(s); err != nil {
			return nil, err
		}
	}
	//
	var constraint *ConstrainingClause
	//
	if c := n.ChildForFieldName("constraint"); c != nil {
		if constraint, err = ConstrainingClauseFromSyntax(c); err != nil {
			return nil, err
		}
	}
	//
	return attach(NewClassDefinition(prefixes, purity, kind, specifier, constraint), n), nil
}

// ClassSpecifierFromSyntax constructs one of the class specifier variants
// from its concrete node.
func ClassSpecifierFromSyntax(n syntax.Node) (ClassSpecifier, error) {
	switch n.Type() {
	case syntax.KindLongClassSpecifier:
		return longClassSpecifierFromSyntax(n)
	case syntax.KindShortClassSpecifier:
		return shortClassSpecifierFromSyntax(n)
	case syntax.KindEnumerationClassSpecifier:
		return enumerationClassSpecifierFromSyntax(n)
	case syntax.KindDerClassSpecifier:
		return derClassSpecifierFromSyntax(n)
	default:
		return nil, invalidNode("class specifier", n.Type())
	}
}

func longClassSpecifierFromSyntax(n syntax.Node) (*LongClassSpecifier, error) {
	description, err := optionalDescription(n)
	if err != nil {
		return nil, err
	}
	//
	var sections []Section
	//
	for _, s := range n.ChildrenForFieldName("section") {
		section, err := SectionFromSyntax(s)
		if err != nil {
			return nil, err
		}
		//
		sections = append(sections, section)
	}
	//
	annotation, err := optionalAnnotation(n)
	if err != nil {
		return nil, err
	}
	//
	return attach(NewLongClassSpecifier(fieldText(n, "identifier"), hasField(n, "extends"),
		description, sections, fieldText(n, "endIdentifier"), annotation), n), nil
}

func shortClassSpecifierFromSyntax(n syntax.Node) (*ShortClassSpecifier, error) {
	ts, err := optionalTypeSpecifier(n, "typeSpecifier")
	if err != nil {
		return nil, err
	}
	//
	subscripts, err := subscriptsOf(n, "subscript")
	if err != nil {
		return nil, err
	}
	//
	modification, err := optionalClassModification(n, "classModification")
	if err != nil {
		return nil, err
	}
	//
	description, err := optionalDescription(n)
	if err != nil {
		return nil, err
	}
	//
	return attach(NewShortClassSpecifier(fieldText(n, "identifier"), hasField(n, "input"),
		hasField(n, "output"), ts, subscripts, modification, description), n), nil
}

func enumerationClassSpecifierFromSyntax(n syntax.Node) (*ShortClassSpecifier, error) {
	var literals []*EnumerationLiteral
	//
	for _, l := range n.ChildrenForFieldName("literal") {
		literal, err := EnumerationLiteralFromSyntax(l)
		if err != nil {
			return nil, err
		}
		//
		literals = append(literals, literal)
	}
	//
	description, err := optionalDescription(n)
	if err != nil {
		return nil, err
	}
	//
	return attach(NewEnumerationClassSpecifier(fieldText(n, "identifier"), literals, description), n), nil
}

func derClassSpecifierFromSyntax(n syntax.Node) (*DerClassSpecifier, error) {
	ts, err := optionalTypeSpecifier(n, "typeSpecifier")
	if err != nil {
		return nil, err
	}
	//
	var args []string
	//
	for _, a := range n.ChildrenForFieldName("argument") {
		args = append(args, a.Text())
	}
	//
	description, err := optionalDescription(n)
	if err != nil {
		return nil, err
	}
	//
	return attach(NewDerClassSpecifier(fieldText(n, "identifier"), ts, args, description), n), nil
}

// EnumerationLiteralFromSyntax constructs an enumeration literal from its
// concrete node.
func EnumerationLiteralFromSyntax(n syntax.Node) (*EnumerationLiteral, error) {
	if n.Type() != syntax.KindEnumerationLiteral {
		return nil, invalidNode(syntax.KindEnumerationLiteral, n.Type())
	}
	//
	description, err := optionalDescription(n)
	if err != nil {
		return nil, err
	}
	//
	return attach(NewEnumerationLiteral(fieldText(n, "identifier"), description), n), nil
}

// ConstrainingClauseFromSyntax constructs a constraining clause from its
// concrete node.
func ConstrainingClauseFromSyntax(n syntax.Node) (*ConstrainingClause, error) {
	if n.Type() != syntax.KindConstrainingClause {
		return nil, invalidNode(syntax.KindConstrainingClause, n.Type())
	}
	//
	ts, err := optionalTypeSpecifier(n, "typeSpecifier")
	if err != nil {
		return nil, err
	}
	//
	modification, err := optionalClassModification(n, "classModification")
	if err != nil {
		return nil, err
	}
	//
	return attach(NewConstrainingClause(ts, modification), n), nil
}

// SectionFromSyntax constructs one of the section variants from its concrete
// node.
func SectionFromSyntax(n syntax.Node) (Section, error) {
	switch n.Type() {
	case syntax.KindElementSection:
		return elementSectionFromSyntax(n)
	case syntax.KindEquationSection:
		return equationSectionFromSyntax(n)
	case syntax.KindAlgorithmSection:
		return algorithmSectionFromSyntax(n)
	default:
		return nil, invalidNode("section", n.Type())
	}
}

func elementSectionFromSyntax(n syntax.Node) (*ElementSection, error) {
	visibility := VisibilityPublic
	//
	if text := fieldText(n, "visibility"); text != "" {
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
	for _, e := range n.ChildrenForFieldName("element") {
		element, err := ElementFromSyntax(e)
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
	}
	//
	return attach(NewElementSection(visibility, elements), n), nil
}

func equationSectionFromSyntax(n syntax.Node) (*EquationSection, error) {
	var equations []Equation
	//
	for _, e := range n.ChildrenForFieldName("equation") {
		equation, err := EquationFromSyntax(e)
		if err != nil {
			return nil, err
		}
		//
		equations = append(equations, equation)
	}
	//
	return attach(NewEquationSection(hasField(n, "initial"), equations), n), nil
}

func algorithmSectionFromSyntax(n syntax.Node) (*AlgorithmSection, error) {
	var statements []Statement
	//
	for _, s := range n.ChildrenForFieldName("statement") {
		statement, err := StatementFromSyntax(s)
		if err != nil {
			return nil, err
		}
		//
		statements = append(statements, statement)
	}
	//
	return attach(NewAlgorithmSection(hasField(n, "initial"), statements), n), nil
}

// ElementFromSyntax constructs one of the element variants from its concrete
// node.
func ElementFromSyntax(n syntax.Node) (Element, error) {
	switch n.Type() {
	case syntax.KindClassDefinition:
		return ClassDefinitionFromSyntax(n)
	case syntax.KindComponentClause:
		return ComponentClauseFromSyntax(n)
	case syntax.KindExtendsClause:
		return ExtendsClauseFromSyntax(n)
	case syntax.KindImportClause:
		return importClauseFromSyntax(n)
	default:
		return nil, invalidNode("element", n.Type())
	}
}

// ComponentClauseFromSyntax constructs a component clause from its concrete
// node.
func ComponentClauseFromSyntax(n syntax.Node) (*ComponentClause, error) {
	if n.Type() != syntax.KindComponentClause {
		return nil, invalidNode(syntax.KindComponentClause, n.Type())
	}
	//
	prefixes := classPrefixesOf(n)
	//
	flow := util.None[Flow]()
	if text := fieldText(n, "flow"); text != "" {
		f, err := FlowOf(text)
		if err != nil {
			return nil, err
		}
		//
		flow = util.Some(f)
	}
	//
	variability := util.None[Variability]()
	if text := fieldText(n, "variability"); text != "" {
		v, err := VariabilityOf(text)
		if err != nil {
			return nil, err
		}
		//
		variability = util.Some(v)
	}
	//
	causality := util.None[Causality]()
	if text := fieldText(n, "causality"); text != "" {
		c, err := CausalityOf(text)
		if err != nil {
			return nil, err
		}
		//
		causality = util.Some(c)
	}
	//
	ts, err := optionalTypeSpecifier(n, "typeSpecifier")
	if err != nil {
		return nil, err
	}
	//
	subscripts, err := subscriptsOf(n, "subscript")
	if err != nil {
		return nil, err
	}
	//
	var declarations []*ComponentDeclaration
	//
	for _, d := range n.ChildrenForFieldName("declaration") {
		declaration, err := ComponentDeclarationFromSyntax(d)
		if err != nil {
			return nil, err
		}
		//
		declarations = append(declarations, declaration)
	}
	//
	return attach(NewComponentClause(prefixes, flow, variability, causality, ts,
		subscripts, declarations), n), nil
}

// ComponentDeclarationFromSyntax constructs a component declaration from its
// concrete node.
func ComponentDeclarationFromSyntax(n syntax.Node) (*ComponentDeclaration, error) {
	if n.Type() != syntax.KindComponentDeclaration {
		return nil, invalidNode(syntax.KindComponentDeclaration, n.Type())
	}
	//
	subscripts, err := subscriptsOf(n, "subscript")
	if err != nil {
		return nil, err
	}
	//
	var modification *Modification
	//
	if m := n.ChildForFieldName("modification"); m != nil {
		if modification, err = ModificationFromSyntax(m); err != nil {
			return nil, err
		}
	}
	//
	var condition Expression
	//
	if c := n.ChildForFieldName("condition"); c != nil {
		if condition, err = ExpressionFromSyntax(c); err != nil {
			return nil, err
		}
	}
	//
	description, err := optionalDescription(n)
	if err != nil {
		return nil, err
	}
	//
	return attach(NewComponentDeclaration(fieldText(n, "identifier"), subscripts,
		modification, condition, description), n), nil
}

// ExtendsClauseFromSyntax constructs an extends clause from its concrete
// node.
func ExtendsClauseFromSyntax(n syntax.Node) (*ExtendsClause, error) {
	if n.Type() != syntax.KindExtendsClause {
		return nil, invalidNode(syntax.KindExtendsClause, n.Type())
	}
	//
	ts, err := optionalTypeSpecifier(n, "typeSpecifier")
	if err != nil {
		return nil, err
	}
	//
	modification, err := optionalClassModification(n, "classModification")
	if err != nil {
		return nil, err
	}
	//
	annotation, err := optionalAnnotation(n)
	if err != nil {
		return nil, err
	}
	//
	return attach(NewExtendsClause(ts, modification, annotation), n), nil
}

// importClauseFromSyntax distinguishes the three import clause forms.
func importClauseFromSyntax(n syntax.Node) (Element, error) {
	name, err := optionalName(n, "name")
	if err != nil {
		return nil, err
	}
	//
	description, err := optionalDescription(n)
	if err != nil {
		return nil, err
	}
	// Distinguish the clause form.
	switch {
	case hasField(n, "wildcard"):
		return attach(NewUnqualifiedImportClause(name, description), n), nil
	case hasField(n, "import"):
		var imports []string
		//
		for _, i := range n.ChildrenForFieldName("import") {
			imports = append(imports, i.Text())
		}
		//
		return attach(NewCompoundImportClause(name, imports, description), n), nil
	default:
		return attach(NewSimpleImportClause(fieldText(n, "shortName"), name, description), n), nil
	}
}

// ModificationFromSyntax constructs a modification from its concrete node.
func ModificationFromSyntax(n syntax.Node) (*Modification, error) {
	if n.Type() != syntax.KindModification {
		return nil, invalidNode(syntax.KindModification, n.Type())
	}
	//
	modification, err := optionalClassModification(n, "classModification")
	if err != nil {
		return nil, err
	}
	//
	var expr Expression
	//
	if e := n.ChildForFieldName("expression"); e != nil {
		if expr, err = ExpressionFromSyntax(e); err != nil {
			return nil, err
		}
	}
	//
	return attach(NewModification(modification, expr, hasField(n, "assign")), n), nil
}

// ClassModificationFromSyntax constructs a class modification from its
// concrete node.
func ClassModificationFromSyntax(n syntax.Node) (*ClassModification, error) {
	if n.Type() != syntax.KindClassModification {
		return nil, invalidNode(syntax.KindClassModification, n.Type())
	}
	//
	var args []ModificationArgument
	//
	for _, a := range n.ChildrenForFieldName("argument") {
		arg, err := ModificationArgumentFromSyntax(a)
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
	}
	//
	return attach(NewClassModification(args...), n), nil
}

// ModificationArgumentFromSyntax constructs one of the modification argument
// variants from its concrete node.
func ModificationArgumentFromSyntax(n syntax.Node) (ModificationArgument, error) {
	switch n.Type() {
	case syntax.KindElementModification:
		return elementModificationFromSyntax(n)
	case syntax.KindElementRedeclaration:
		return elementRedeclarationFromSyntax(n)
	default:
		return nil, invalidNode("modification argument", n.Type())
	}
}

func elementModificationFromSyntax(n syntax.Node) (*ElementModification, error) {
	name, err := optionalName(n, "name")
	if err != nil {
		return nil, err
	}
	//
	modification, err := optionalClassModification(n, "classModification")
	if err != nil {
		return nil, err
	}
	//
	var expr Expression
	//
	if e := n.ChildForFieldName("expression"); e != nil {
		if expr, err = ExpressionFromSyntax(e); err != nil {
			return nil, err
		}
	}
	//
	description, err := optionalDescription(n)
	if err != nil {
		return nil, err
	}
	//
	return attach(NewElementModification(hasField(n, "each"), hasField(n, "final"),
		name, modification, expr, description), n), nil
}

func elementRedeclarationFromSyntax(n syntax.Node) (*ElementRedeclaration, error) {
	var (
		element Element
		err     error
	)
	//
	if e := n.ChildForFieldName("element"); e != nil {
		if element, err = ElementFromSyntax(e); err != nil {
			return nil, err
		}
	}
	//
	return attach(NewElementRedeclaration(hasField(n, "each"), hasField(n, "final"), element), n), nil
}

// DescriptionFromSyntax constructs a description from its concrete node.
func DescriptionFromSyntax(n syntax.Node) (*Description, error) {
	if n.Type() != syntax.KindDescription {
		return nil, invalidNode(syntax.KindDescription, n.Type())
	}
	//
	var parts []string
	//
	for _, s := range n.ChildrenForFieldName("text") {
		parts = append(parts, unquote(s.Text()))
	}
	//
	annotation, err := optionalAnnotation(n)
	if err != nil {
		return nil, err
	}
	//
	return attach(NewDescription(strings.Join(parts, ""), annotation), n), nil
}

// AnnotationClauseFromSyntax constructs an annotation clause from its
// concrete node.
func AnnotationClauseFromSyntax(n syntax.Node) (*AnnotationClause, error) {
	if n.Type() != syntax.KindAnnotationClause {
		return nil, invalidNode(syntax.KindAnnotationClause, n.Type())
	}
	//
	modification, err := optionalClassModification(n, "classModification")
	if err != nil {
		return nil, err
	}
	//
	return attach(NewAnnotationClause(modification), n), nil
}

// NameFromSyntax constructs a name from its concrete node.
func NameFromSyntax(n syntax.Node) (*Name, error) {
	if n.Type() != syntax.KindName {
		return nil, invalidNode(syntax.KindName, n.Type())
	}
	//
	var parts []string
	//
	for _, p := range n.ChildrenForFieldName("part") {
		parts = append(parts, p.Text())
	}
	//
	return attach(NewName(parts...), n), nil
}

// TypeSpecifierFromSyntax constructs a type specifier from its concrete node.
func TypeSpecifierFromSyntax(n syntax.Node) (*TypeSpecifier, error) {
	if n.Type() != syntax.KindTypeSpecifier {
		return nil, invalidNode(syntax.KindTypeSpecifier, n.Type())
	}
	//
	name, err := optionalName(n, "name")
	if err != nil {
		return nil, err
	}
	//
	return attach(NewTypeSpecifier(hasField(n, "global"), name), n), nil
}

// SubscriptFromSyntax constructs a subscript from its concrete node.
func SubscriptFromSyntax(n syntax.Node) (*Subscript, error) {
	if n.Type() != syntax.KindSubscript {
		return nil, invalidNode(syntax.KindSubscript, n.Type())
	}
	//
	if hasField(n, "flexible") {
		return attach(NewFlexibleSubscript(), n), nil
	}
	//
	var (
		expr Expression
		err  error
	)
	//
	if e := n.ChildForFieldName("expression"); e != nil {
		if expr, err = ExpressionFromSyntax(e); err != nil {
			return nil, err
		}
	}
	//
	return attach(NewSubscript(expr), n), nil
}

// ComponentReferenceFromSyntax constructs a component reference from its
// concrete node.
func ComponentReferenceFromSyntax(n syntax.Node) (*ComponentReference, error) {
	if n.Type() != syntax.KindComponentReference {
		return nil, invalidNode(syntax.KindComponentReference, n.Type())
	}
	//
	var parts []ComponentReferencePart
	//
	for _, p := range n.ChildrenForFieldName("part") {
		subscripts, err := subscriptsOf(p, "subscript")
		if err != nil {
			return nil, err
		}
		//
		parts = append(parts, ComponentReferencePart{fieldText(p, "identifier"), subscripts})
	}
	//
	return attach(NewComponentReference(hasField(n, "global"), parts...), n), nil
}

// ExpressionFromSyntax constructs an expression from its concrete node.
func ExpressionFromSyntax(n syntax.Node) (Expression, error) {
	switch n.Type() {
	case syntax.KindIfExpression:
		return ifExpressionFromSyntax(n)
	case syntax.KindParenthesizedExpression:
		return expressionField(n, "expression")
	default:
		return SimpleExpressionFromSyntax(n)
	}
}

// SimpleExpressionFromSyntax constructs a simple expression from its concrete
// node, rejecting anything outside that subset.
func SimpleExpressionFromSyntax(n syntax.Node) (SimpleExpression, error) {
	switch n.Type() {
	case syntax.KindBinaryExpression:
		return binaryExpressionFromSyntax(n)
	case syntax.KindUnaryExpression:
		return unaryExpressionFromSyntax(n)
	case syntax.KindRangeExpression:
		return rangeExpressionFromSyntax(n)
	default:
		return PrimaryExpressionFromSyntax(n)
	}
}

// PrimaryExpressionFromSyntax constructs a primary expression from its
// concrete node, rejecting anything outside that subset.
func PrimaryExpressionFromSyntax(n syntax.Node) (PrimaryExpression, error) {
	switch n.Type() {
	case syntax.KindComponentReference:
		return ComponentReferenceFromSyntax(n)
	case syntax.KindFunctionCall:
		return functionCallFromSyntax(n)
	case syntax.KindArrayConstructor:
		return arrayConstructorFromSyntax(n)
	case syntax.KindArrayConcatenation:
		return arrayConcatenationFromSyntax(n)
	case syntax.KindBoolean:
		return attach(NewBooleanLiteral(n.Text() == "true"), n), nil
	case syntax.KindUnsignedInteger:
		value, err := strconv.ParseInt(n.Text(), 10, 64)
		if err != nil {
			return nil, err
		}
		//
		return attach(NewIntegerLiteral(value), n), nil
	case syntax.KindUnsignedReal:
		value, err := strconv.ParseFloat(n.Text(), 64)
		if err != nil {
			return nil, err
		}
		//
		return attach(NewRealLiteral(value), n), nil
	case syntax.KindString:
		return attach(NewStringLiteral(unquote(n.Text())), n), nil
	case syntax.KindIdent:
		return attach(NewIdentifier(n.Text()), n), nil
	case syntax.KindEndExpression:
		return attach(NewEndExpression(), n), nil
	default:
		return nil, invalidNode("primary expression", n.Type())
	}
}

func binaryExpressionFromSyntax(n syntax.Node) (*BinaryExpression, error) {
	op, err := BinaryOperatorOf(fieldText(n, "operator"))
	if err != nil {
		return nil, err
	}
	//
	lhs, err := expressionField(n, "lhs")
	if err != nil {
		return nil, err
	}
	//
	rhs, err := expressionField(n, "rhs")
	if err != nil {
		return nil, err
	}
	//
	return attach(NewBinaryExpression(op, lhs, rhs), n), nil
}

func unaryExpressionFromSyntax(n syntax.Node) (*UnaryExpression, error) {
	op, err := UnaryOperatorOf(fieldText(n, "operator"))
	if err != nil {
		return nil, err
	}
	//
	operand, err := expressionField(n, "operand")
	if err != nil {
		return nil, err
	}
	//
	return attach(NewUnaryExpression(op, operand), n), nil
}

func rangeExpressionFromSyntax(n syntax.Node) (*RangeExpression, error) {
	start, err := expressionField(n, "start")
	if err != nil {
		return nil, err
	}
	//
	var step Expression
	//
	if s := n.ChildForFieldName("step"); s != nil {
		if step, err = ExpressionFromSyntax(s); err != nil {
			return nil, err
		}
	}
	//
	end, err := expressionField(n, "end")
	if err != nil {
		return nil, err
	}
	//
	return attach(NewRangeExpression(start, step, end), n), nil
}

func ifExpressionFromSyntax(n syntax.Node) (*IfExpression, error) {
	var branches []IfExpressionBranch
	//
	for _, b := range n.ChildrenForFieldName("branch") {
		condition, err := expressionField(b, "condition")
		if err != nil {
			return nil, err
		}
		//
		value, err := expressionField(b, "value")
		if err != nil {
			return nil, err
		}
		//
		branches = append(branches, IfExpressionBranch{condition, value})
	}
	//
	elseValue, err := expressionField(n, "else")
	if err != nil {
		return nil, err
	}
	//
	return attach(NewIfExpression(branches, elseValue), n), nil
}

func functionCallFromSyntax(n syntax.Node) (*FunctionCall, error) {
	var (
		callee *ComponentReference
		err    error
	)
	//
	if c := n.ChildForFieldName("callee"); c != nil {
		if callee, err = ComponentReferenceFromSyntax(c); err != nil {
			return nil, err
		}
	}
	//
	var args []Expression
	//
	for _, a := range n.ChildrenForFieldName("argument") {
		arg, err := ExpressionFromSyntax(a)
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
	}
	//
	var named []*NamedArgument
	//
	for _, a := range n.ChildrenForFieldName("namedArgument") {
		value, err := expressionField(a, "value")
		if err != nil {
			return nil, err
		}
		//
		named = append(named, attach(NewNamedArgument(fieldText(a, "identifier"), value), a))
	}
	//
	return attach(NewFunctionCall(callee, args, named), n), nil
}

func arrayConstructorFromSyntax(n syntax.Node) (*ArrayConstructor, error) {
	var elements []Expression
	//
	for _, e := range n.ChildrenForFieldName("element") {
		element, err := ExpressionFromSyntax(e)
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
	}
	//
	return attach(NewArrayConstructor(elements...), n), nil
}

func arrayConcatenationFromSyntax(n syntax.Node) (*ArrayConcatenation, error) {
	var rows [][]Expression
	//
	for _, r := range n.ChildrenForFieldName("row") {
		var row []Expression
		//
		for _, e := range r.ChildrenForFieldName("element") {
			element, err := ExpressionFromSyntax(e)
			if err != nil {
				return nil, err
			}
			//
			row = append(row, element)
		}
		//
		rows = append(rows, row)
	}
	//
	return attach(NewArrayConcatenation(rows...), n), nil
}

// EquationFromSyntax constructs one of the equation variants from its
// concrete node.
func EquationFromSyntax(n syntax.Node) (Equation, error) {
	description, err := optionalDescription(n)
	if err != nil {
		return nil, err
	}
	//
	switch n.Type() {
	case syntax.KindSimpleEquation:
		lhs, err := expressionField(n, "lhs")
		if err != nil {
			return nil, err
		}
		//
		rhs, err := expressionField(n, "rhs")
		if err != nil {
			return nil, err
		}
		//
		return attach(NewSimpleEquation(lhs, rhs, description), n), nil
	case syntax.KindConnectEquation:
		from, err := componentReferenceField(n, "from")
		if err != nil {
			return nil, err
		}
		//
		to, err := componentReferenceField(n, "to")
		if err != nil {
			return nil, err
		}
		//
		return attach(NewConnectEquation(from, to, description), n), nil
	case syntax.KindForEquation:
		indices, err := forIndicesOf(n)
		if err != nil {
			return nil, err
		}
		//
		body, err := equationsOf(n, "body")
		if err != nil {
			return nil, err
		}
		//
		return attach(NewForEquation(indices, body, description), n), nil
	case syntax.KindIfEquation:
		branches, err := equationBranchesOf(n)
		if err != nil {
			return nil, err
		}
		//
		elseBody, err := equationsOf(n, "else")
		if err != nil {
			return nil, err
		}
		//
		return attach(NewIfEquation(branches, elseBody, description), n), nil
	case syntax.KindWhenEquation:
		branches, err := equationBranchesOf(n)
		if err != nil {
			return nil, err
		}
		//
		return attach(NewWhenEquation(branches, description), n), nil
	default:
		return nil, invalidNode("equation", n.Type())
	}
}

// StatementFromSyntax constructs one of the statement variants from its
// concrete node.
func StatementFromSyntax(n syntax.Node) (Statement, error) {
	description, err := optionalDescription(n)
	if err != nil {
		return nil, err
	}
	//
	switch n.Type() {
	case syntax.KindAssignmentStatement:
		target, err := componentReferenceField(n, "target")
		if err != nil {
			return nil, err
		}
		//
		value, err := expressionField(n, "value")
		if err != nil {
			return nil, err
		}
		//
		return attach(NewAssignmentStatement(target, value, description), n), nil
	case syntax.KindCallStatement:
		var call *FunctionCall
		//
		if c := n.ChildForFieldName("call"); c != nil {
			if call, err = functionCallFromSyntax(c); err != nil {
				return nil, err
			}
		}
		//
		return attach(NewCallStatement(call, description), n), nil
	case syntax.KindIfStatement:
		branches, err := statementBranchesOf(n)
		if err != nil {
			return nil, err
		}
		//
		elseBody, err := statementsOf(n, "else")
		if err != nil {
			return nil, err
		}
		//
		return attach(NewIfStatement(branches, elseBody, description), n), nil
	case syntax.KindForStatement:
		indices, err := forIndicesOf(n)
		if err != nil {
			return nil, err
		}
		//
		body, err := statementsOf(n, "body")
		if err != nil {
			return nil, err
		}
		//
		return attach(NewForStatement(indices, body, description), n), nil
	case syntax.KindWhileStatement:
		condition, err := expressionField(n, "condition")
		if err != nil {
			return nil, err
		}
		//
		body, err := statementsOf(n, "body")
		if err != nil {
			return nil, err
		}
		//
		return attach(NewWhileStatement(condition, body, description), n), nil
	case syntax.KindWhenStatement:
		branches, err := statementBranchesOf(n)
		if err != nil {
			return nil, err
		}
		//
		return attach(NewWhenStatement(branches, description), n), nil
	default:
		return nil, invalidNode("statement", n.Type())
	}
}

// ============================================================================
// Helpers
// ============================================================================

func hasField(n syntax.Node, name string) bool {
	return n.ChildForFieldName(name) != nil
}

func fieldText(n syntax.Node, name string) string {
	if c := n.ChildForFieldName(name); c != nil {
		return c.Text()
	}
	//
	return ""
}

func expressionField(n syntax.Node, name string) (Expression, error) {
	if c := n.ChildForFieldName(name); c != nil {
		return ExpressionFromSyntax(c)
	}
	//
	return nil, nil
}

func componentReferenceField(n syntax.Node, name string) (*ComponentReference, error) {
	if c := n.ChildForFieldName(name); c != nil {
		return ComponentReferenceFromSyntax(c)
	}
	//
	return nil, nil
}

func optionalName(n syntax.Node, field string) (*Name, error) {
	if c := n.ChildForFieldName(field); c != nil {
		return NameFromSyntax(c)
	}
	//
	return nil, nil
}

func optionalTypeSpecifier(n syntax.Node, field string) (*TypeSpecifier, error) {
	if c := n.ChildForFieldName(field); c != nil {
		return TypeSpecifierFromSyntax(c)
	}
	//
	return nil, nil
}

func optionalClassModification(n syntax.Node, field string) (*ClassModification, error) {
	if c := n.ChildForFieldName(field); c != nil {
		return ClassModificationFromSyntax(c)
	}
	//
	return nil, nil
}

func optionalDescription(n syntax.Node) (*Description, error) {
	if c := n.ChildForFieldName("description"); c != nil {
		return DescriptionFromSyntax(c)
	}
	//
	return nil, nil
}

func optionalAnnotation(n syntax.Node) (*AnnotationClause, error) {
	if c := n.ChildForFieldName("annotation"); c != nil {
		return AnnotationClauseFromSyntax(c)
	}
	//
	return nil, nil
}

func subscriptsOf(n syntax.Node, field string) ([]*Subscript, error) {
	var subscripts []*Subscript
	//
	for _, s := range n.ChildrenForFieldName(field) {
		subscript, err := SubscriptFromSyntax(s)
		if err != nil {
			return nil, err
		}
		//
		subscripts = append(subscripts, subscript)
	}
	//
	return subscripts, nil
}

func forIndicesOf(n syntax.Node) ([]*ForIndex, error) {
	var indices []*ForIndex
	//
	for _, i := range n.ChildrenForFieldName("index") {
		expr, err := expressionField(i, "expression")
		if err != nil {
			return nil, err
		}
		//
		indices = append(indices, attach(NewForIndex(fieldText(i, "identifier"), expr), i))
	}
	//
	return indices, nil
}

func equationsOf(n syntax.Node, field string) ([]Equation, error) {
	var equations []Equation
	//
	for _, e := range n.ChildrenForFieldName(field) {
		equation, err := EquationFromSyntax(e)
		if err != nil {
			return nil, err
		}
		//
		equations = append(equations, equation)
	}
	//
	return equations, nil
}

func statementsOf(n syntax.Node, field string) ([]Statement, error) {
	var statements []Statement
	//
	for _, s := range n.ChildrenForFieldName(field) {
		statement, err := StatementFromSyntax(s)
		if err != nil {
			return nil, err
		}
		//
		statements = append(statements, statement)
	}
	//
	return statements, nil
}

func equationBranchesOf(n syntax.Node) ([]EquationBranch, error) {
	var branches []EquationBranch
	//
	for _, b := range n.ChildrenForFieldName("branch") {
		condition, err := expressionField(b, "condition")
		if err != nil {
			return nil, err
		}
		//
		body, err := equationsOf(b, "body")
		if err != nil {
			return nil, err
		}
		//
		branches = append(branches, EquationBranch{condition, body})
	}
	//
	return branches, nil
}

func statementBranchesOf(n syntax.Node) ([]StatementBranch, error) {
	var branches []StatementBranch
	//
	for _, b := range n.ChildrenForFieldName("branch") {
		condition, err := expressionField(b, "condition")
		if err != nil {
			return nil, err
		}
		//
		body, err := statementsOf(b, "body")
		if err != nil {
			return nil, err
		}
		//
		branches = append(branches, StatementBranch{condition, body})
	}
	//
	return branches, nil
}

func classPrefixesOf(n syntax.Node) ClassPrefixes {
	return ClassPrefixes{
		Partial:      hasField(n, "partial"),
		Encapsulated: hasField(n, "encapsulated"),
		Final:        hasField(n, "final"),
		Inner:        hasField(n, "inner"),
		Outer:        hasField(n, "outer"),
		Redeclare:    hasField(n, "redeclare"),
		Replaceable:  hasField(n, "replaceable"),
	}
}

// unquote strips the surrounding double quotes from a string token and
// resolves its escape sequences.
func unquote(text string) string {
	if len(text) < 2 || text[0] != '"' {
		return text
	}
	// Strip quotes
	text = text[1 : len(text)-1]
	//
	var builder strings.Builder
	//
	for i := 0; i < len(text); i++ {
		ch := text[i]
		//
		if ch == '\\' && i+1 < len(text) {
			i++
			//
			switch text[i] {
			case 'n':
				builder.WriteByte('\n')
			case 't':
				builder.WriteByte('\t')
			case 'r':
				builder.WriteByte('\r')
			default:
				builder.WriteByte(text[i])
			}
		} else {
			builder.WriteByte(ch)
		}
	}
	//
	return builder.String()
}
