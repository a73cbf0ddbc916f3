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
	"fmt"
	"strconv"
	"strings"
)

// Text renders a node back into Modelica source form.  Rendering is stable:
// re-parsing the result and rendering again yields the same text.  This is
// primarily used by the printers and for diagnostics.
func Text(n Node) string {
	if isNil(n) {
		return ""
	}
	//
	switch n := n.(type) {
	case *Name:
		return strings.Join(n.Parts, ".")
	case *TypeSpecifier:
		if n.Global {
			return "." + Text(n.Name)
		}
		//
		return Text(n.Name)
	case *Subscript:
		if n.Flexible {
			return ":"
		}
		//
		return Text(n.Expression)
	case *ComponentReference:
		return componentReferenceText(n)
	case *BinaryExpression:
		return fmt.Sprintf("%s %s %s", operandText(n.Lhs), n.Operator, operandText(n.Rhs))
	case *UnaryExpression:
		if n.Operator == UnaryNot {
			return fmt.Sprintf("not %s", operandText(n.Operand))
		}
		//
		return fmt.Sprintf("%s%s", n.Operator, operandText(n.Operand))
	case *RangeExpression:
		if n.Step != nil {
			return fmt.Sprintf("%s:%s:%s", operandText(n.Start), operandText(n.Step), operandText(n.End))
		}
		//
		return fmt.Sprintf("%s:%s", operandText(n.Start), operandText(n.End))
	case *IfExpression:
		return ifExpressionText(n)
	case *FunctionCall:
		return functionCallText(n)
	case *NamedArgument:
		return fmt.Sprintf("%s = %s", n.Identifier, Text(n.Value))
	case *ArrayConstructor:
		return "{" + expressionsText(n.Elements) + "}"
	case *ArrayConcatenation:
		rows := make([]string, len(n.Rows))
		//
		for i, row := range n.Rows {
			rows[i] = expressionsText(row)
		}
		//
		return "[" + strings.Join(rows, "; ") + "]"
	case *MemberAccess:
		return fmt.Sprintf("%s.%s", operandText(n.Value), n.Member)
	case *BooleanLiteral:
		return strconv.FormatBool(n.Value)
	case *IntegerLiteral:
		return strconv.FormatInt(n.Value, 10)
	case *RealLiteral:
		return realText(n.Value)
	case *StringLiteral:
		return strconv.Quote(n.Value)
	case *Identifier:
		return n.Value
	case *EndExpression:
		return "end"
	case *StoredDefinition:
		return storedDefinitionText(n)
	case *ClassDefinition:
		return classDefinitionText(n)
	case *Modification:
		return modificationText(n)
	case *ClassModification:
		return classModificationText(n)
	case *ElementModification:
		return elementModificationText(n)
	case *ElementRedeclaration:
		return elementRedeclarationText(n)
	case *AnnotationClause:
		return "annotation " + classModificationText(n.ClassModification)
	case *Description:
		return descriptionText(n)
	case *ExtendsClause:
		return extendsClauseText(n)
	case *ComponentClause:
		return componentClauseText(n)
	case *ComponentDeclaration:
		return componentDeclarationText(n)
	case *SimpleImportClause:
		if n.ShortName != "" {
			return fmt.Sprintf("import %s = %s", n.ShortName, Text(n.Name))
		}
		//
		return "import " + Text(n.Name)
	case *CompoundImportClause:
		return fmt.Sprintf("import %s.{%s}", Text(n.Name), strings.Join(n.Imports, ", "))
	case *UnqualifiedImportClause:
		return fmt.Sprintf("import %s.*", Text(n.Name))
	case *EnumerationLiteral:
		return n.Identifier
	case *ConstrainingClause:
		text := "constrainedby " + Text(n.TypeSpecifier)
		//
		if n.ClassModification != nil {
			text += classModificationText(n.ClassModification)
		}
		//
		return text
	case *ForIndex:
		if n.Expression != nil {
			return fmt.Sprintf("%s in %s", n.Identifier, Text(n.Expression))
		}
		//
		return n.Identifier
	case *SimpleEquation:
		return fmt.Sprintf("%s = %s", Text(n.Lhs), Text(n.Rhs))
	case *ConnectEquation:
		return fmt.Sprintf("connect(%s, %s)", Text(n.From), Text(n.To))
	default:
		// Remaining variants (sections, structured equations and statements)
		// only occur inside class bodies, which render via the printers.
		return fmt.Sprintf("<%s>", n.Tag())
	}
}

// operandText parenthesises compound operands such that rendering remains
// stable under re-parsing.
func operandText(n Expression) string {
	switch n.(type) {
	case *BinaryExpression, *UnaryExpression, *RangeExpression, *IfExpression:
		return "(" + Text(n) + ")"
	default:
		return Text(n)
	}
}

func expressionsText(list []Expression) string {
	parts := make([]string, len(list))
	//
	for i, e := range list {
		parts[i] = Text(e)
	}
	//
	return strings.Join(parts, ", ")
}

func componentReferenceText(n *ComponentReference) string {
	var builder strings.Builder
	//
	if n.Global {
		builder.WriteString(".")
	}
	//
	for i, part := range n.Parts {
		if i > 0 {
			builder.WriteString(".")
		}
		//
		builder.WriteString(part.Identifier)
		//
		if len(part.Subscripts) > 0 {
			builder.WriteString("[")
			//
			for j, s := range part.Subscripts {
				if j > 0 {
					builder.WriteString(", ")
				}
				//
				builder.WriteString(Text(s))
			}
			//
			builder.WriteString("]")
		}
	}
	//
	return builder.String()
}

func ifExpressionText(n *IfExpression) string {
	var builder strings.Builder
	//
	for i, branch := range n.Branches {
		if i == 0 {
			builder.WriteString("if ")
		} else {
			builder.WriteString(" elseif ")
		}
		//
		builder.WriteString(Text(branch.Condition))
		builder.WriteString(" then ")
		builder.WriteString(Text(branch.Value))
	}
	//
	builder.WriteString(" else ")
	builder.WriteString(Text(n.Else))
	//
	return builder.String()
}

func functionCallText(n *FunctionCall) string {
	var args []string
	//
	for _, a := range n.Arguments {
		args = append(args, Text(a))
	}
	//
	for _, a := range n.NamedArguments {
		args = append(args, Text(a))
	}
	//
	return fmt.Sprintf("%s(%s)", Text(n.Callee), strings.Join(args, ", "))
}

// realText renders a real literal such that it re-parses as a real rather
// than an integer.
func realText(value float64) string {
	text := strconv.FormatFloat(value, 'g', -1, 64)
	//
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	//
	return text
}

func storedDefinitionText(n *StoredDefinition) string {
	var builder strings.Builder
	//
	if n.Within != nil {
		fmt.Fprintf(&builder, "within %s;\n", Text(n.Within))
	}
	//
	for _, c := range n.Classes {
		builder.WriteString(Text(c))
		builder.WriteString(";\n")
	}
	//
	return builder.String()
}

func classDefinitionText(n *ClassDefinition) string {
	var builder strings.Builder
	//
	writePrefixes(&builder, n.Prefixes)
	//
	if n.Purity.HasValue() {
		builder.WriteString(n.Purity.Unwrap().String())
		builder.WriteString(" ")
	}
	//
	builder.WriteString(n.Kind.String())
	builder.WriteString(" ")
	builder.WriteString(classSpecifierText(n.Specifier))
	//
	if n.Constraint != nil {
		builder.WriteString(" ")
		builder.WriteString(Text(n.Constraint))
	}
	//
	return builder.String()
}

func classSpecifierText(n ClassSpecifier) string {
	switch n := n.(type) {
	case *LongClassSpecifier:
		return longClassSpecifierText(n)
	case *ShortClassSpecifier:
		return shortClassSpecifierText(n)
	case *DerClassSpecifier:
		text := fmt.Sprintf("%s = der(%s", n.Name, Text(n.TypeSpecifier))
		//
		for _, a := range n.Arguments {
			text += ", " + a
		}
		//
		return text + ")" + descriptionSuffix(n.Description)
	default:
		return ""
	}
}

func longClassSpecifierText(n *LongClassSpecifier) string {
	var builder strings.Builder
	//
	builder.WriteString(n.Name)
	builder.WriteString(descriptionSuffix(n.Description))
	builder.WriteString("\n")
	//
	for _, section := range n.Sections {
		builder.WriteString(sectionText(section))
	}
	//
	if n.Annotation != nil {
		fmt.Fprintf(&builder, "  %s;\n", Text(n.Annotation))
	}
	//
	fmt.Fprintf(&builder, "end %s", n.EndName)
	//
	return builder.String()
}

func shortClassSpecifierText(n *ShortClassSpecifier) string {
	var builder strings.Builder
	//
	builder.WriteString(n.Name)
	builder.WriteString(" = ")
	//
	if n.Enumeration {
		literals := make([]string, len(n.Literals))
		//
		for i, l := range n.Literals {
			literals[i] = Text(l)
		}
		//
		fmt.Fprintf(&builder, "enumeration(%s)", strings.Join(literals, ", "))
	} else {
		if n.Input {
			builder.WriteString("input ")
		}
		//
		if n.Output {
			builder.WriteString("output ")
		}
		//
		builder.WriteString(Text(n.TypeSpecifier))
		builder.WriteString(subscriptsText(n.Subscripts))
		//
		if n.ClassModification != nil {
			builder.WriteString(classModificationText(n.ClassModification))
		}
	}
	//
	builder.WriteString(descriptionSuffix(n.Description))
	//
	return builder.String()
}

func sectionText(n Section) string {
	var builder strings.Builder
	//
	switch n := n.(type) {
	case *ElementSection:
		if n.Visibility == VisibilityProtected {
			builder.WriteString("protected\n")
		}
		//
		for _, e := range n.Elements {
			fmt.Fprintf(&builder, "  %s;\n", Text(e))
		}
	case *EquationSection:
		if n.Initial {
			builder.WriteString("initial equation\n")
		} else {
			builder.WriteString("equation\n")
		}
		//
		for _, e := range n.Equations {
			fmt.Fprintf(&builder, "  %s;\n", equationText(e))
		}
	case *AlgorithmSection:
		if n.Initial {
			builder.WriteString("initial algorithm\n")
		} else {
			builder.WriteString("algorithm\n")
		}
		//
		for _, s := range n.Statements {
			fmt.Fprintf(&builder, "  %s;\n", statementText(s))
		}
	}
	//
	return builder.String()
}

func equationText(n Equation) string {
	switch n := n.(type) {
	case *SimpleEquation, *ConnectEquation:
		return Text(n)
	case *ForEquation:
		var builder strings.Builder
		//
		builder.WriteString("for ")
		//
		for i, index := range n.Indices {
			if i > 0 {
				builder.WriteString(", ")
			}
			//
			builder.WriteString(Text(index))
		}
		//
		builder.WriteString(" loop ")
		//
		for _, e := range n.Body {
			builder.WriteString(equationText(e))
			builder.WriteString("; ")
		}
		//
		builder.WriteString("end for")
		//
		return builder.String()
	case *IfEquation:
		return branchedEquationText("if", n.Branches, n.Else)
	case *WhenEquation:
		return branchedEquationText("when", n.Branches, nil)
	default:
		return Text(n)
	}
}

func branchedEquationText(keyword string, branches []EquationBranch, elseBody []Equation) string {
	var builder strings.Builder
	//
	elseKeyword := "else" + keyword
	//
	for i, branch := range branches {
		if i == 0 {
			builder.WriteString(keyword)
		} else {
			builder.WriteString(elseKeyword)
		}
		//
		builder.WriteString(" ")
		builder.WriteString(Text(branch.Condition))
		builder.WriteString(" then ")
		//
		for _, e := range branch.Body {
			builder.WriteString(equationText(e))
			builder.WriteString("; ")
		}
	}
	//
	if len(elseBody) > 0 {
		builder.WriteString("else ")
		//
		for _, e := range elseBody {
			builder.WriteString(equationText(e))
			builder.WriteString("; ")
		}
	}
	//
	builder.WriteString("end ")
	builder.WriteString(keyword)
	//
	return builder.String()
}

func statementText(n Statement) string {
	switch n := n.(type) {
	case *AssignmentStatement:
		return fmt.Sprintf("%s := %s", Text(n.Target), Text(n.Value))
	case *CallStatement:
		return Text(n.Call)
	case *WhileStatement:
		var builder strings.Builder
		//
		builder.WriteString("while ")
		builder.WriteString(Text(n.Condition))
		builder.WriteString(" loop ")
		//
		for _, s := range n.Body {
			builder.WriteString(statementText(s))
			builder.WriteString("; ")
		}
		//
		builder.WriteString("end while")
		//
		return builder.String()
	case *ForStatement:
		var builder strings.Builder
		//
		builder.WriteString("for ")
		//
		for i, index := range n.Indices {
			if i > 0 {
				builder.WriteString(", ")
			}
			//
			builder.WriteString(Text(index))
		}
		//
		builder.WriteString(" loop ")
		//
		for _, s := range n.Body {
			builder.WriteString(statementText(s))
			builder.WriteString("; ")
		}
		//
		builder.WriteString("end for")
		//
		return builder.String()
	case *IfStatement:
		return branchedStatementText("if", n.Branches, n.Else)
	case *WhenStatement:
		return branchedStatementText("when", n.Branches, nil)
	default:
		return Text(n)
	}
}

func branchedStatementText(keyword string, branches []StatementBranch, elseBody []Statement) string {
	var builder strings.Builder
	//
	elseKeyword := "else" + keyword
	//
	for i, branch := range branches {
		if i == 0 {
			builder.WriteString(keyword)
		} else {
			builder.WriteString(elseKeyword)
		}
		//
		builder.WriteString(" ")
		builder.WriteString(Text(branch.Condition))
		builder.WriteString(" then ")
		//
		for _, s := range branch.Body {
			builder.WriteString(statementText(s))
			builder.WriteString("; ")
		}
	}
	//
	if len(elseBody) > 0 {
		builder.WriteString("else ")
		//
		for _, s := range elseBody {
			builder.WriteString(statementText(s))
			builder.WriteString("; ")
		}
	}
	//
	builder.WriteString("end ")
	builder.WriteString(keyword)
	//
	return builder.String()
}

func writePrefixes(builder *strings.Builder, prefixes ClassPrefixes) {
	if prefixes.Final {
		builder.WriteString("final ")
	}
	//
	if prefixes.Encapsulated {
		builder.WriteString("encapsulated ")
	}
	//
	if prefixes.Partial {
		builder.WriteString("partial ")
	}
	//
	if prefixes.Inner {
		builder.WriteString("inner ")
	}
	//
	if prefixes.Outer {
		builder.WriteString("outer ")
	}
	//
	if prefixes.Redeclare {
		builder.WriteString("redeclare ")
	}
	//
	if prefixes.Replaceable {
		builder.WriteString("replaceable ")
	}
}

func componentClauseText(n *ComponentClause) string {
	var builder strings.Builder
	//
	writePrefixes(&builder, n.Prefixes)
	//
	if n.Flow.HasValue() {
		builder.WriteString(n.Flow.Unwrap().String())
		builder.WriteString(" ")
	}
	//
	if n.Variability.HasValue() {
		builder.WriteString(n.Variability.Unwrap().String())
		builder.WriteString(" ")
	}
	//
	if n.Causality.HasValue() {
		builder.WriteString(n.Causality.Unwrap().String())
		builder.WriteString(" ")
	}
	//
	builder.WriteString(Text(n.TypeSpecifier))
	builder.WriteString(subscriptsText(n.Subscripts))
	builder.WriteString(" ")
	//
	for i, d := range n.Declarations {
		if i > 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(Text(d))
	}
	//
	return builder.String()
}

func componentDeclarationText(n *ComponentDeclaration) string {
	var builder strings.Builder
	//
	builder.WriteString(n.Identifier)
	builder.WriteString(subscriptsText(n.Subscripts))
	//
	if n.Modification != nil {
		builder.WriteString(modificationText(n.Modification))
	}
	//
	if n.Condition != nil {
		builder.WriteString(" if ")
		builder.WriteString(Text(n.Condition))
	}
	//
	builder.WriteString(descriptionSuffix(n.Description))
	//
	return builder.String()
}

func extendsClauseText(n *ExtendsClause) string {
	text := "extends " + Text(n.TypeSpecifier)
	//
	if n.ClassModification != nil {
		text += classModificationText(n.ClassModification)
	}
	//
	if n.Annotation != nil {
		text += " " + Text(n.Annotation)
	}
	//
	return text
}

func modificationText(n *Modification) string {
	var builder strings.Builder
	//
	if n.ClassModification != nil {
		builder.WriteString(classModificationText(n.ClassModification))
	}
	//
	if n.Expression != nil {
		if n.Assign {
			builder.WriteString(" := ")
		} else {
			builder.WriteString(" = ")
		}
		//
		builder.WriteString(Text(n.Expression))
	}
	//
	return builder.String()
}

func classModificationText(n *ClassModification) string {
	if n == nil {
		return "()"
	}
	//
	parts := make([]string, len(n.Arguments))
	//
	for i, a := range n.Arguments {
		parts[i] = Text(a)
	}
	//
	return "(" + strings.Join(parts, ", ") + ")"
}

func elementModificationText(n *ElementModification) string {
	var builder strings.Builder
	//
	if n.Each {
		builder.WriteString("each ")
	}
	//
	if n.Final {
		builder.WriteString("final ")
	}
	//
	builder.WriteString(Text(n.Name))
	//
	if n.ClassModification != nil {
		builder.WriteString(classModificationText(n.ClassModification))
	}
	//
	if n.Expression != nil {
		builder.WriteString(" = ")
		builder.WriteString(Text(n.Expression))
	}
	//
	builder.WriteString(descriptionSuffix(n.Description))
	//
	return builder.String()
}

func elementRedeclarationText(n *ElementRedeclaration) string {
	var builder strings.Builder
	//
	builder.WriteString("redeclare ")
	//
	if n.Each {
		builder.WriteString("each ")
	}
	//
	if n.Final {
		builder.WriteString("final ")
	}
	//
	builder.WriteString(Text(n.Element))
	//
	return builder.String()
}

func descriptionText(n *Description) string {
	text := strconv.Quote(n.Text)
	//
	if n.Annotation != nil {
		text += " " + Text(n.Annotation)
	}
	//
	return text
}

func descriptionSuffix(n *Description) string {
	if n == nil {
		return ""
	}
	//
	return " " + descriptionText(n)
}

func subscriptsText(subscripts []*Subscript) string {
	if len(subscripts) == 0 {
		return ""
	}
	//
	parts := make([]string, len(subscripts))
	//
	for i, s := range subscripts {
		parts[i] = Text(s)
	}
	//
	return "[" + strings.Join(parts, ", ") + "]"
}
