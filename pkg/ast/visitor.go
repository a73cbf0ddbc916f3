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

// Visitor enumerates one operation per AST variant, providing double
// dispatch over the tree via Node.Accept.
type Visitor interface {
	// VisitStoredDefinition visits a StoredDefinition.
	VisitStoredDefinition(n *StoredDefinition, arg any) any
	// VisitClassDefinition visits a ClassDefinition.
	VisitClassDefinition(n *ClassDefinition, arg any) any
	// VisitLongClassSpecifier visits a LongClassSpecifier.
	VisitLongClassSpecifier(n *LongClassSpecifier, arg any) any
	// VisitShortClassSpecifier visits a ShortClassSpecifier.
	VisitShortClassSpecifier(n *ShortClassSpecifier, arg any) any
	// VisitDerClassSpecifier visits a DerClassSpecifier.
	VisitDerClassSpecifier(n *DerClassSpecifier, arg any) any
	// VisitEnumerationLiteral visits an EnumerationLiteral.
	VisitEnumerationLiteral(n *EnumerationLiteral, arg any) any
	// VisitConstrainingClause visits a ConstrainingClause.
	VisitConstrainingClause(n *ConstrainingClause, arg any) any
	// VisitElementSection visits an ElementSection.
	VisitElementSection(n *ElementSection, arg any) any
	// VisitEquationSection visits an EquationSection.
	VisitEquationSection(n *EquationSection, arg any) any
	// VisitAlgorithmSection visits an AlgorithmSection.
	VisitAlgorithmSection(n *AlgorithmSection, arg any) any
	// VisitComponentClause visits a ComponentClause.
	VisitComponentClause(n *ComponentClause, arg any) any
	// VisitComponentDeclaration visits a ComponentDeclaration.
	VisitComponentDeclaration(n *ComponentDeclaration, arg any) any
	// VisitExtendsClause visits an ExtendsClause.
	VisitExtendsClause(n *ExtendsClause, arg any) any
	// VisitSimpleImportClause visits a SimpleImportClause.
	VisitSimpleImportClause(n *SimpleImportClause, arg any) any
	// VisitCompoundImportClause visits a CompoundImportClause.
	VisitCompoundImportClause(n *CompoundImportClause, arg any) any
	// VisitUnqualifiedImportClause visits an UnqualifiedImportClause.
	VisitUnqualifiedImportClause(n *UnqualifiedImportClause, arg any) any
	// VisitDescription visits a Description.
	VisitDescription(n *Description, arg any) any
	// VisitAnnotationClause visits an AnnotationClause.
	VisitAnnotationClause(n *AnnotationClause, arg any) any
	// VisitModification visits a Modification.
	VisitModification(n *Modification, arg any) any
	// VisitClassModification visits a ClassModification.
	VisitClassModification(n *ClassModification, arg any) any
	// VisitElementModification visits an ElementModification.
	VisitElementModification(n *ElementModification, arg any) any
	// VisitElementRedeclaration visits an ElementRedeclaration.
	VisitElementRedeclaration(n *ElementRedeclaration, arg any) any
	// VisitForIndex visits a ForIndex.
	VisitForIndex(n *ForIndex, arg any) any
	// VisitSimpleEquation visits a SimpleEquation.
	VisitSimpleEquation(n *SimpleEquation, arg any) any
	// VisitConnectEquation visits a ConnectEquation.
	VisitConnectEquation(n *ConnectEquation, arg any) any
	// VisitForEquation visits a ForEquation.
	VisitForEquation(n *ForEquation, arg any) any
	// VisitIfEquation visits an IfEquation.
	VisitIfEquation(n *IfEquation, arg any) any
	// VisitWhenEquation visits a WhenEquation.
	VisitWhenEquation(n *WhenEquation, arg any) any
	// VisitAssignmentStatement visits an AssignmentStatement.
	VisitAssignmentStatement(n *AssignmentStatement, arg any) any
	// VisitCallStatement visits a CallStatement.
	VisitCallStatement(n *CallStatement, arg any) any
	// VisitIfStatement visits an IfStatement.
	VisitIfStatement(n *IfStatement, arg any) any
	// VisitForStatement visits a ForStatement.
	VisitForStatement(n *ForStatement, arg any) any
	// VisitWhileStatement visits a WhileStatement.
	VisitWhileStatement(n *WhileStatement, arg any) any
	// VisitWhenStatement visits a WhenStatement.
	VisitWhenStatement(n *WhenStatement, arg any) any
	// VisitName visits a Name.
	VisitName(n *Name, arg any) any
	// VisitTypeSpecifier visits a TypeSpecifier.
	VisitTypeSpecifier(n *TypeSpecifier, arg any) any
	// VisitSubscript visits a Subscript.
	VisitSubscript(n *Subscript, arg any) any
	// VisitComponentReference visits a ComponentReference.
	VisitComponentReference(n *ComponentReference, arg any) any
	// VisitBinaryExpression visits a BinaryExpression.
	VisitBinaryExpression(n *BinaryExpression, arg any) any
	// VisitUnaryExpression visits a UnaryExpression.
	VisitUnaryExpression(n *UnaryExpression, arg any) any
	// VisitRangeExpression visits a RangeExpression.
	VisitRangeExpression(n *RangeExpression, arg any) any
	// VisitIfExpression visits an IfExpression.
	VisitIfExpression(n *IfExpression, arg any) any
	// VisitFunctionCall visits a FunctionCall.
	VisitFunctionCall(n *FunctionCall, arg any) any
	// VisitNamedArgument visits a NamedArgument.
	VisitNamedArgument(n *NamedArgument, arg any) any
	// VisitArrayConstructor visits an ArrayConstructor.
	VisitArrayConstructor(n *ArrayConstructor, arg any) any
	// VisitArrayConcatenation visits an ArrayConcatenation.
	VisitArrayConcatenation(n *ArrayConcatenation, arg any) any
	// VisitMemberAccess visits a MemberAccess.
	VisitMemberAccess(n *MemberAccess, arg any) any
	// VisitBooleanLiteral visits a BooleanLiteral.
	VisitBooleanLiteral(n *BooleanLiteral, arg any) any
	// VisitIntegerLiteral visits an IntegerLiteral.
	VisitIntegerLiteral(n *IntegerLiteral, arg any) any
	// VisitRealLiteral visits a RealLiteral.
	VisitRealLiteral(n *RealLiteral, arg any) any
	// VisitStringLiteral visits a StringLiteral.
	VisitStringLiteral(n *StringLiteral, arg any) any
	// VisitIdentifier visits an Identifier.
	VisitIdentifier(n *Identifier, arg any) any
	// VisitEndExpression visits an EndExpression.
	VisitEndExpression(n *EndExpression, arg any) any
}

// DefaultVisitor implements Visitor with operations that all return nil,
// such that a concrete visitor need only override the variants it cares
// about.
type DefaultVisitor struct{}

var _ Visitor = DefaultVisitor{}

// VisitStoredDefinition returns nil.
func (DefaultVisitor) VisitStoredDefinition(n *StoredDefinition, arg any) any { return nil }

// VisitClassDefinition returns nil.
func (DefaultVisitor) VisitClassDefinition(n *ClassDefinition, arg any) any { return nil }

// VisitLongClassSpecifier returns nil.
func (DefaultVisitor) VisitLongClassSpecifier(n *LongClassSpecifier, arg any) any { return nil }

// VisitShortClassSpecifier returns nil.
func (DefaultVisitor) VisitShortClassSpecifier(n *ShortClassSpecifier, arg any) any { return nil }

// VisitDerClassSpecifier returns nil.
func (DefaultVisitor) VisitDerClassSpecifier(n *DerClassSpecifier, arg any) any { return nil }

// VisitEnumerationLiteral returns nil.
func (DefaultVisitor) VisitEnumerationLiteral(n *EnumerationLiteral, arg any) any { return nil }

// VisitConstrainingClause returns nil.
func (DefaultVisitor) VisitConstrainingClause(n *ConstrainingClause, arg any) any { return nil }

// VisitElementSection returns nil.
func (DefaultVisitor) VisitElementSection(n *ElementSection, arg any) any { return nil }

// VisitEquationSection returns nil.
func (DefaultVisitor) VisitEquationSection(n *EquationSection, arg any) any { return nil }

// VisitAlgorithmSection returns nil.
func (DefaultVisitor) VisitAlgorithmSection(n *AlgorithmSection, arg any) any { return nil }

// VisitComponentClause returns nil.
func (DefaultVisitor) VisitComponentClause(n *ComponentClause, arg any) any { return nil }

// VisitComponentDeclaration returns nil.
func (DefaultVisitor) VisitComponentDeclaration(n *ComponentDeclaration, arg any) any { return nil }

// VisitExtendsClause returns nil.
func (DefaultVisitor) VisitExtendsClause(n *ExtendsClause, arg any) any { return nil }

// VisitSimpleImportClause returns nil.
func (DefaultVisitor) VisitSimpleImportClause(n *SimpleImportClause, arg any) any { return nil }

// VisitCompoundImportClause returns nil.
func (DefaultVisitor) VisitCompoundImportClause(n *CompoundImportClause, arg any) any { return nil }

// VisitUnqualifiedImportClause returns nil.
func (DefaultVisitor) VisitUnqualifiedImportClause(n *UnqualifiedImportClause, arg any) any {
	return nil
}

// VisitDescription returns nil.
func (DefaultVisitor) VisitDescription(n *Description, arg any) any { return nil }

// VisitAnnotationClause returns nil.
func (DefaultVisitor) VisitAnnotationClause(n *AnnotationClause, arg any) any { return nil }

// VisitModification returns nil.
func (DefaultVisitor) VisitModification(n *Modification, arg any) any { return nil }

// VisitClassModification returns nil.
func (DefaultVisitor) VisitClassModification(n *ClassModification, arg any) any { return nil }

// VisitElementModification returns nil.
func (DefaultVisitor) VisitElementModification(n *ElementModification, arg any) any { return nil }

// VisitElementRedeclaration returns nil.
func (DefaultVisitor) VisitElementRedeclaration(n *ElementRedeclaration, arg any) any { return nil }

// VisitForIndex returns nil.
func (DefaultVisitor) VisitForIndex(n *ForIndex, arg any) any { return nil }

// VisitSimpleEquation returns nil.
func (DefaultVisitor) VisitSimpleEquation(n *SimpleEquation, arg any) any { return nil }

// VisitConnectEquation returns nil.
func (DefaultVisitor) VisitConnectEquation(n *ConnectEquation, arg any) any { return nil }

// VisitForEquation returns nil.
func (DefaultVisitor) VisitForEquation(n *ForEquation, arg any) any { return nil }

// VisitIfEquation returns nil.
func (DefaultVisitor) VisitIfEquation(n *IfEquation, arg any) any { return nil }

// VisitWhenEquation returns nil.
func (DefaultVisitor) VisitWhenEquation(n *WhenEquation, arg any) any { return nil }

// VisitAssignmentStatement returns nil.
func (DefaultVisitor) VisitAssignmentStatement(n *AssignmentStatement, arg any) any { return nil }

// VisitCallStatement returns nil.
func (DefaultVisitor) VisitCallStatement(n *CallStatement, arg any) any { return nil }

// VisitIfStatement returns nil.
func (DefaultVisitor) VisitIfStatement(n *IfStatement, arg any) any { return nil }

// VisitForStatement returns nil.
func (DefaultVisitor) VisitForStatement(n *ForStatement, arg any) any { return nil }

// VisitWhileStatement returns nil.
func (DefaultVisitor) VisitWhileStatement(n *WhileStatement, arg any) any { return nil }

// VisitWhenStatement returns nil.
func (DefaultVisitor) VisitWhenStatement(n *WhenStatement, arg any) any { return nil }

// VisitName returns nil.
func (DefaultVisitor) VisitName(n *Name, arg any) any { return nil }

// VisitTypeSpecifier returns nil.
func (DefaultVisitor) VisitTypeSpecifier(n *TypeSpecifier, arg any) any { return nil }

// VisitSubscript returns nil.
func (DefaultVisitor) VisitSubscript(n *Subscript, arg any) any { return nil }

// VisitComponentReference returns nil.
func (DefaultVisitor) VisitComponentReference(n *ComponentReference, arg any) any { return nil }

// VisitBinaryExpression returns nil.
func (DefaultVisitor) VisitBinaryExpression(n *BinaryExpression, arg any) any { return nil }

// VisitUnaryExpression returns nil.
func (DefaultVisitor) VisitUnaryExpression(n *UnaryExpression, arg any) any { return nil }

// VisitRangeExpression returns nil.
func (DefaultVisitor) VisitRangeExpression(n *RangeExpression, arg any) any { return nil }

// VisitIfExpression returns nil.
func (DefaultVisitor) VisitIfExpression(n *IfExpression, arg any) any { return nil }

// VisitFunctionCall returns nil.
func (DefaultVisitor) VisitFunctionCall(n *FunctionCall, arg any) any { return nil }

// VisitNamedArgument returns nil.
func (DefaultVisitor) VisitNamedArgument(n *NamedArgument, arg any) any { return nil }

// VisitArrayConstructor returns nil.
func (DefaultVisitor) VisitArrayConstructor(n *ArrayConstructor, arg any) any { return nil }

// VisitArrayConcatenation returns nil.
func (DefaultVisitor) VisitArrayConcatenation(n *ArrayConcatenation, arg any) any { return nil }

// VisitMemberAccess returns nil.
func (DefaultVisitor) VisitMemberAccess(n *MemberAccess, arg any) any { return nil }

// VisitBooleanLiteral returns nil.
func (DefaultVisitor) VisitBooleanLiteral(n *BooleanLiteral, arg any) any { return nil }

// VisitIntegerLiteral returns nil.
func (DefaultVisitor) VisitIntegerLiteral(n *IntegerLiteral, arg any) any { return nil }

// VisitRealLiteral returns nil.
func (DefaultVisitor) VisitRealLiteral(n *RealLiteral, arg any) any { return nil }

// VisitStringLiteral returns nil.
func (DefaultVisitor) VisitStringLiteral(n *StringLiteral, arg any) any { return nil }

// VisitIdentifier returns nil.
func (DefaultVisitor) VisitIdentifier(n *Identifier, arg any) any { return nil }

// VisitEndExpression returns nil.
func (DefaultVisitor) VisitEndExpression(n *EndExpression, arg any) any { return nil }
