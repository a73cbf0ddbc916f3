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
package syntax

// Node kinds of the Modelica concrete syntax, shared between the parsers and
// the AST factories.  Every producer of concrete syntax trees (the in-tree
// parser, the tree-sitter adapter) must emit these kinds.
const (
	// KindStoredDefinition is the root of a parsed source file.
	KindStoredDefinition = "stored_definition"
	// KindClassDefinition is a class definition.
	KindClassDefinition = "class_definition"
	// KindLongClassSpecifier is the "N ... end N" specifier form.
	KindLongClassSpecifier = "long_class_specifier"
	// KindShortClassSpecifier is the "N = T(...)" specifier form.
	KindShortClassSpecifier = "short_class_specifier"
	// KindEnumerationClassSpecifier is the "N = enumeration(...)" form.
	KindEnumerationClassSpecifier = "enumeration_class_specifier"
	// KindDerClassSpecifier is the "N = der(T, ...)" form.
	KindDerClassSpecifier = "der_class_specifier"
	// KindEnumerationLiteral is one literal of an enumeration.
	KindEnumerationLiteral = "enumeration_literal"
	// KindConstrainingClause is a "constrainedby" clause.
	KindConstrainingClause = "constraining_clause"
	// KindElementSection is a public/protected element section.
	KindElementSection = "element_section"
	// KindEquationSection is an (initial) equation section.
	KindEquationSection = "equation_section"
	// KindAlgorithmSection is an (initial) algorithm section.
	KindAlgorithmSection = "algorithm_section"
	// KindComponentClause declares components of a common type.
	KindComponentClause = "component_clause"
	// KindComponentDeclaration declares a single component.
	KindComponentDeclaration = "component_declaration"
	// KindExtendsClause is an extends clause.
	KindExtendsClause = "extends_clause"
	// KindImportClause is any of the import clause forms.
	KindImportClause = "import_clause"
	// KindDescription is a description string with optional annotation.
	KindDescription = "description"
	// KindAnnotationClause is an annotation clause.
	KindAnnotationClause = "annotation_clause"
	// KindModification is a modification.
	KindModification = "modification"
	// KindClassModification is a parenthesised argument list.
	KindClassModification = "class_modification"
	// KindElementModification is an element modification argument.
	KindElementModification = "element_modification"
	// KindElementRedeclaration is a redeclaration argument.
	KindElementRedeclaration = "element_redeclaration"
	// KindName is a dotted name.
	KindName = "name"
	// KindTypeSpecifier is a possibly-global dotted type reference.
	KindTypeSpecifier = "type_specifier"
	// KindSubscript is a single array subscript.
	KindSubscript = "subscript"
	// KindComponentReference is a dotted, subscripted component reference.
	KindComponentReference = "component_reference"
	// KindComponentReferencePart is one dotted element of a reference.
	KindComponentReferencePart = "component_reference_part"
	// KindBinaryExpression is a binary operator application.
	KindBinaryExpression = "binary_expression"
	// KindUnaryExpression is a unary operator application.
	KindUnaryExpression = "unary_expression"
	// KindRangeExpression is a range expression.
	KindRangeExpression = "range_expression"
	// KindIfExpression is an if-expression.
	KindIfExpression = "if_expression"
	// KindIfExpressionBranch is one branch of an if-expression.
	KindIfExpressionBranch = "if_expression_branch"
	// KindFunctionCall is a function application.
	KindFunctionCall = "function_call"
	// KindNamedArgument is a named function argument.
	KindNamedArgument = "named_argument"
	// KindArrayConstructor is the "{...}" array form.
	KindArrayConstructor = "array_constructor"
	// KindArrayConcatenation is the "[...;...]" matrix form.
	KindArrayConcatenation = "array_concatenation"
	// KindExpressionList is one row of an array concatenation.
	KindExpressionList = "expression_list"
	// KindParenthesizedExpression is a parenthesised expression.
	KindParenthesizedExpression = "parenthesized_expression"
	// KindSimpleEquation is "lhs = rhs".
	KindSimpleEquation = "simple_equation"
	// KindConnectEquation is "connect(a, b)".
	KindConnectEquation = "connect_equation"
	// KindForEquation is a for-equation.
	KindForEquation = "for_equation"
	// KindIfEquation is an if-equation.
	KindIfEquation = "if_equation"
	// KindWhenEquation is a when-equation.
	KindWhenEquation = "when_equation"
	// KindEquationBranch is one branch of an if- or when-equation.
	KindEquationBranch = "equation_branch"
	// KindForIndex is one iteration variable.
	KindForIndex = "for_index"
	// KindAssignmentStatement is "target := expr".
	KindAssignmentStatement = "assignment_statement"
	// KindCallStatement is a function call statement.
	KindCallStatement = "call_statement"
	// KindIfStatement is an if-statement.
	KindIfStatement = "if_statement"
	// KindForStatement is a for-statement.
	KindForStatement = "for_statement"
	// KindWhileStatement is a while-statement.
	KindWhileStatement = "while_statement"
	// KindWhenStatement is a when-statement.
	KindWhenStatement = "when_statement"
	// KindStatementBranch is one branch of an if- or when-statement.
	KindStatementBranch = "statement_branch"
	// KindIdent is an identifier token.
	KindIdent = "IDENT"
	// KindString is a string literal token.
	KindString = "STRING"
	// KindUnsignedInteger is an integer literal token.
	KindUnsignedInteger = "UNSIGNED_INTEGER"
	// KindUnsignedReal is a real literal token.
	KindUnsignedReal = "UNSIGNED_REAL"
	// KindBoolean is a boolean literal token.
	KindBoolean = "BOOLEAN"
	// KindEndExpression is the "end" keyword in expression position.
	KindEndExpression = "end_expression"
	// KindToken is an anonymous keyword or punctuation token.
	KindToken = "token"
)
