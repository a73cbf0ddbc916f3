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

// Stable "@type" tags, one per variant.  Each tag equals the variant's name,
// except for the literal tags (IDENT, STRING, UNSIGNED_INTEGER,
// UNSIGNED_REAL, BOOLEAN) and the initial-section tag InitialElementSection,
// which are retained verbatim from the persistence format, and the tag End of
// EndExpression.
const (
	// TagStoredDefinition identifies StoredDefinition.
	TagStoredDefinition = "StoredDefinition"
	// TagClassDefinition identifies ClassDefinition.
	TagClassDefinition = "ClassDefinition"
	// TagLongClassSpecifier identifies LongClassSpecifier.
	TagLongClassSpecifier = "LongClassSpecifier"
	// TagShortClassSpecifier identifies ShortClassSpecifier.
	TagShortClassSpecifier = "ShortClassSpecifier"
	// TagDerClassSpecifier identifies DerClassSpecifier.
	TagDerClassSpecifier = "DerClassSpecifier"
	// TagEnumerationLiteral identifies EnumerationLiteral.
	TagEnumerationLiteral = "EnumerationLiteral"
	// TagConstrainingClause identifies ConstrainingClause.
	TagConstrainingClause = "ConstrainingClause"
	// TagElementSection identifies ElementSection.
	TagElementSection = "ElementSection"
	// TagInitialElementSection identifies an initial equation section
	// (EquationSection with Initial set); an initial algorithm section keeps
	// TagAlgorithmSection and records the flag in its "initial" field.
	TagInitialElementSection = "InitialElementSection"
	// TagEquationSection identifies EquationSection.
	TagEquationSection = "EquationSection"
	// TagAlgorithmSection identifies AlgorithmSection.
	TagAlgorithmSection = "AlgorithmSection"
	// TagComponentClause identifies ComponentClause.
	TagComponentClause = "ComponentClause"
	// TagComponentDeclaration identifies ComponentDeclaration.
	TagComponentDeclaration = "ComponentDeclaration"
	// TagExtendsClause identifies ExtendsClause.
	TagExtendsClause = "ExtendsClause"
	// TagSimpleImportClause identifies SimpleImportClause.
	TagSimpleImportClause = "SimpleImportClause"
	// TagCompoundImportClause identifies CompoundImportClause.
	TagCompoundImportClause = "CompoundImportClause"
	// TagUnqualifiedImportClause identifies UnqualifiedImportClause.
	TagUnqualifiedImportClause = "UnqualifiedImportClause"
	// TagDescription identifies Description.
	TagDescription = "Description"
	// TagAnnotationClause identifies AnnotationClause.
	TagAnnotationClause = "AnnotationClause"
	// TagModification identifies Modification.
	TagModification = "Modification"
	// TagClassModification identifies ClassModification.
	TagClassModification = "ClassModification"
	// TagElementModification identifies ElementModification.
	TagElementModification = "ElementModification"
	// TagElementRedeclaration identifies ElementRedeclaration.
	TagElementRedeclaration = "ElementRedeclaration"
	// TagSimpleEquation identifies SimpleEquation.
	TagSimpleEquation = "SimpleEquation"
	// TagConnectEquation identifies ConnectEquation.
	TagConnectEquation = "ConnectEquation"
	// TagForEquation identifies ForEquation.
	TagForEquation = "ForEquation"
	// TagIfEquation identifies IfEquation.
	TagIfEquation = "IfEquation"
	// TagWhenEquation identifies WhenEquation.
	TagWhenEquation = "WhenEquation"
	// TagForIndex identifies ForIndex.
	TagForIndex = "ForIndex"
	// TagAssignmentStatement identifies AssignmentStatement.
	TagAssignmentStatement = "AssignmentStatement"
	// TagCallStatement identifies CallStatement.
	TagCallStatement = "CallStatement"
	// TagIfStatement identifies IfStatement.
	TagIfStatement = "IfStatement"
	// TagForStatement identifies ForStatement.
	TagForStatement = "ForStatement"
	// TagWhileStatement identifies WhileStatement.
	TagWhileStatement = "WhileStatement"
	// TagWhenStatement identifies WhenStatement.
	TagWhenStatement = "WhenStatement"
	// TagName identifies Name.
	TagName = "Name"
	// TagTypeSpecifier identifies TypeSpecifier.
	TagTypeSpecifier = "TypeSpecifier"
	// TagSubscript identifies Subscript.
	TagSubscript = "Subscript"
	// TagComponentReference identifies ComponentReference.
	TagComponentReference = "ComponentReference"
	// TagBinaryExpression identifies BinaryExpression.
	TagBinaryExpression = "BinaryExpression"
	// TagUnaryExpression identifies UnaryExpression.
	TagUnaryExpression = "UnaryExpression"
	// TagRangeExpression identifies RangeExpression.
	TagRangeExpression = "RangeExpression"
	// TagIfExpression identifies IfExpression.
	TagIfExpression = "IfExpression"
	// TagFunctionCall identifies FunctionCall.
	TagFunctionCall = "FunctionCall"
	// TagNamedArgument identifies NamedArgument.
	TagNamedArgument = "NamedArgument"
	// TagArrayConstructor identifies ArrayConstructor.
	TagArrayConstructor = "ArrayConstructor"
	// TagArrayConcatenation identifies ArrayConcatenation.
	TagArrayConcatenation = "ArrayConcatenation"
	// TagMemberAccess identifies MemberAccess.
	TagMemberAccess = "MemberAccess"
	// TagIdent identifies Identifier (literal tag).
	TagIdent = "IDENT"
	// TagString identifies StringLiteral (literal tag).
	TagString = "STRING"
	// TagUnsignedInteger identifies IntegerLiteral (literal tag).
	TagUnsignedInteger = "UNSIGNED_INTEGER"
	// TagUnsignedReal identifies RealLiteral (literal tag).
	TagUnsignedReal = "UNSIGNED_REAL"
	// TagBoolean identifies BooleanLiteral (literal tag).
	TagBoolean = "BOOLEAN"
	// TagEnd identifies EndExpression.
	TagEnd = "End"
)
