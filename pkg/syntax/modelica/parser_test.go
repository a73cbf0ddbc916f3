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
package modelica

import (
	"testing"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/syntax"
	"github.com/modelscript/modelscript/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFile(t *testing.T, text string) syntax.Node {
	file := source.NewSourceFile("test.mo", []byte(text))
	//
	tree, err := NewParser().Parse(file, uint(len(text))*2)
	require.NoError(t, err)
	//
	return tree.RootNode()
}

func parseExpr(t *testing.T, text string) ast.Expression {
	file := source.NewSourceFile("test.mo", []byte(text))
	//
	node, err := ParseExpression(file)
	require.NoError(t, err)
	//
	expr, err := ast.ExpressionFromSyntax(node)
	require.NoError(t, err)
	//
	return expr
}

func Test_Parser_TrivialPackage(t *testing.T) {
	root := parseFile(t, "package P end P;")
	assert.Equal(t, syntax.KindStoredDefinition, root.Type())
	//
	classes := root.ChildrenForFieldName("class")
	require.Len(t, classes, 1)
	//
	stored, err := ast.StoredDefinitionFromSyntax(root)
	require.NoError(t, err)
	require.Len(t, stored.Classes, 1)
	assert.Equal(t, "P", stored.Classes[0].Name())
	assert.Equal(t, ast.KindPackage, stored.Classes[0].Kind)
}

func Test_Parser_Within(t *testing.T) {
	root := parseFile(t, "within A.B;\nmodel M end M;")
	//
	stored, err := ast.StoredDefinitionFromSyntax(root)
	require.NoError(t, err)
	require.NotNil(t, stored.Within)
	assert.Equal(t, []string{"A", "B"}, stored.Within.Parts)
}

func Test_Parser_Components(t *testing.T) {
	root := parseFile(t, `
model M
  Real x(start = 1) "state";
  parameter Integer n = 3;
protected
  flow Real f;
end M;`)
	//
	stored, err := ast.StoredDefinitionFromSyntax(root)
	require.NoError(t, err)
	//
	long := stored.Classes[0].Specifier.(*ast.LongClassSpecifier)
	require.Len(t, long.Sections, 2)
	//
	section := long.Sections[0].(*ast.ElementSection)
	assert.Equal(t, ast.VisibilityPublic, section.Visibility)
	require.Len(t, section.Elements, 2)
	//
	x := section.Elements[0].(*ast.ComponentClause)
	assert.Equal(t, "Real", x.TypeSpecifier.String())
	require.Len(t, x.Declarations, 1)
	assert.Equal(t, "x", x.Declarations[0].Identifier)
	require.NotNil(t, x.Declarations[0].Modification)
	assert.Equal(t, "state", x.Declarations[0].Description.Text)
	//
	n := section.Elements[1].(*ast.ComponentClause)
	assert.Equal(t, ast.VariabilityParameter, n.Variability.Unwrap())
	assert.Equal(t, int64(3), n.Declarations[0].Modification.Expression.(*ast.IntegerLiteral).Value)
	//
	protected := long.Sections[1].(*ast.ElementSection)
	assert.Equal(t, ast.VisibilityProtected, protected.Visibility)
	//
	f := protected.Elements[0].(*ast.ComponentClause)
	assert.Equal(t, ast.FlowFlow, f.Flow.Unwrap())
}

func Test_Parser_ExtendsWithModification(t *testing.T) {
	root := parseFile(t, "model B extends A(x(start = 2)); end B;")
	//
	stored, err := ast.StoredDefinitionFromSyntax(root)
	require.NoError(t, err)
	//
	long := stored.Classes[0].Specifier.(*ast.LongClassSpecifier)
	section := long.Sections[0].(*ast.ElementSection)
	//
	extends := section.Elements[0].(*ast.ExtendsClause)
	assert.Equal(t, "A", extends.TypeSpecifier.String())
	require.NotNil(t, extends.ClassModification)
	require.Len(t, extends.ClassModification.Arguments, 1)
	//
	em := extends.ClassModification.Arguments[0].(*ast.ElementModification)
	assert.Equal(t, []string{"x"}, em.Name.Parts)
	require.NotNil(t, em.ClassModification)
}

func Test_Parser_Imports(t *testing.T) {
	root := parseFile(t, `
model M
  import P.Q;
  import X = P.R;
  import P.S.*;
  import P.T.{U, V};
end M;`)
	//
	stored, err := ast.StoredDefinitionFromSyntax(root)
	require.NoError(t, err)
	//
	long := stored.Classes[0].Specifier.(*ast.LongClassSpecifier)
	section := long.Sections[0].(*ast.ElementSection)
	require.Len(t, section.Elements, 4)
	//
	simple := section.Elements[0].(*ast.SimpleImportClause)
	assert.Equal(t, "", simple.ShortName)
	assert.Equal(t, []string{"P", "Q"}, simple.Name.Parts)
	//
	renamed := section.Elements[1].(*ast.SimpleImportClause)
	assert.Equal(t, "X", renamed.ShortName)
	//
	unqualified := section.Elements[2].(*ast.UnqualifiedImportClause)
	assert.Equal(t, []string{"P", "S"}, unqualified.Name.Parts)
	//
	compound := section.Elements[3].(*ast.CompoundImportClause)
	assert.Equal(t, []string{"U", "V"}, compound.Imports)
}

func Test_Parser_Enumeration(t *testing.T) {
	root := parseFile(t, "type Color = enumeration(Red, Green, Blue);")
	//
	stored, err := ast.StoredDefinitionFromSyntax(root)
	require.NoError(t, err)
	//
	short := stored.Classes[0].Specifier.(*ast.ShortClassSpecifier)
	assert.True(t, short.Enumeration)
	require.Len(t, short.Literals, 3)
	assert.Equal(t, "Green", short.Literals[1].Identifier)
}

func Test_Parser_ShortClass(t *testing.T) {
	root := parseFile(t, "type Voltage = Real(unit = \"V\");")
	//
	stored, err := ast.StoredDefinitionFromSyntax(root)
	require.NoError(t, err)
	//
	short := stored.Classes[0].Specifier.(*ast.ShortClassSpecifier)
	assert.False(t, short.Enumeration)
	assert.Equal(t, "Real", short.TypeSpecifier.String())
	require.NotNil(t, short.ClassModification)
}

func Test_Parser_OperatorRecord(t *testing.T) {
	root := parseFile(t, "operator record Complex Real re; Real im; end Complex;")
	//
	stored, err := ast.StoredDefinitionFromSyntax(root)
	require.NoError(t, err)
	assert.Equal(t, ast.KindOperatorRecord, stored.Classes[0].Kind)
}

func Test_Parser_Equations(t *testing.T) {
	root := parseFile(t, `
model M
  Real x;
equation
  x = 2 * x + 1;
  connect(a.p, b.n);
  for i in 1:3 loop
    x = i;
  end for;
  if x > 0 then
    x = 1;
  else
    x = 2;
  end if;
  when x > 1 then
    x = 0;
  end when;
end M;`)
	//
	stored, err := ast.StoredDefinitionFromSyntax(root)
	require.NoError(t, err)
	//
	long := stored.Classes[0].Specifier.(*ast.LongClassSpecifier)
	require.Len(t, long.Sections, 2)
	//
	equations := long.Sections[1].(*ast.EquationSection)
	assert.False(t, equations.Initial)
	require.Len(t, equations.Equations, 5)
	//
	assert.IsType(t, &ast.SimpleEquation{}, equations.Equations[0])
	assert.IsType(t, &ast.ConnectEquation{}, equations.Equations[1])
	assert.IsType(t, &ast.ForEquation{}, equations.Equations[2])
	assert.IsType(t, &ast.IfEquation{}, equations.Equations[3])
	assert.IsType(t, &ast.WhenEquation{}, equations.Equations[4])
	//
	ifEquation := equations.Equations[3].(*ast.IfEquation)
	require.Len(t, ifEquation.Branches, 1)
	require.Len(t, ifEquation.Else, 1)
}

func Test_Parser_Algorithm(t *testing.T) {
	root := parseFile(t, `
function f
  input Real u;
  output Real y;
algorithm
  y := u * 2;
end f;`)
	//
	stored, err := ast.StoredDefinitionFromSyntax(root)
	require.NoError(t, err)
	//
	long := stored.Classes[0].Specifier.(*ast.LongClassSpecifier)
	algorithm := long.Sections[1].(*ast.AlgorithmSection)
	require.Len(t, algorithm.Statements, 1)
	//
	assignment := algorithm.Statements[0].(*ast.AssignmentStatement)
	assert.Equal(t, "y", assignment.Target.First().Identifier)
}

func Test_Parser_Precedence(t *testing.T) {
	// Multiplication binds tighter than addition.
	expr := parseExpr(t, "1 + 2 * 3").(*ast.BinaryExpression)
	assert.Equal(t, ast.BinaryAdd, expr.Operator)
	assert.Equal(t, ast.BinaryMultiply, expr.Rhs.(*ast.BinaryExpression).Operator)
	// Parentheses override.
	expr = parseExpr(t, "(1 + 2) * 3").(*ast.BinaryExpression)
	assert.Equal(t, ast.BinaryMultiply, expr.Operator)
	// Relations bind looser than arithmetic.
	expr = parseExpr(t, "1 + 1 < 3").(*ast.BinaryExpression)
	assert.Equal(t, ast.BinaryLessThan, expr.Operator)
	// Logical operators loosest.
	expr = parseExpr(t, "true or 1 < 2 and false").(*ast.BinaryExpression)
	assert.Equal(t, ast.BinaryOr, expr.Operator)
}

func Test_Parser_RangeExpression(t *testing.T) {
	r := parseExpr(t, "1:10").(*ast.RangeExpression)
	assert.Nil(t, r.Step)
	//
	r = parseExpr(t, "1:2:10").(*ast.RangeExpression)
	require.NotNil(t, r.Step)
	assert.Equal(t, int64(2), r.Step.(*ast.IntegerLiteral).Value)
}

func Test_Parser_FunctionCall(t *testing.T) {
	call := parseExpr(t, "f(1, x = 2)").(*ast.FunctionCall)
	assert.Equal(t, "f", call.Callee.First().Identifier)
	require.Len(t, call.Arguments, 1)
	require.Len(t, call.NamedArguments, 1)
	assert.Equal(t, "x", call.NamedArguments[0].Identifier)
}

func Test_Parser_ComponentReference(t *testing.T) {
	ref := parseExpr(t, "a.b[1].c").(*ast.ComponentReference)
	require.Len(t, ref.Parts, 3)
	assert.Equal(t, "b", ref.Parts[1].Identifier)
	require.Len(t, ref.Parts[1].Subscripts, 1)
}

func Test_Parser_Literals(t *testing.T) {
	assert.Equal(t, int64(42), parseExpr(t, "42").(*ast.IntegerLiteral).Value)
	assert.Equal(t, 2.5, parseExpr(t, "2.5").(*ast.RealLiteral).Value)
	assert.Equal(t, 1e3, parseExpr(t, "1e3").(*ast.RealLiteral).Value)
	assert.Equal(t, true, parseExpr(t, "true").(*ast.BooleanLiteral).Value)
	assert.Equal(t, "a\"b", parseExpr(t, `"a\"b"`).(*ast.StringLiteral).Value)
}

func Test_Parser_ArrayForms(t *testing.T) {
	array := parseExpr(t, "{1, 2, 3}").(*ast.ArrayConstructor)
	require.Len(t, array.Elements, 3)
	//
	matrix := parseExpr(t, "[1, 2; 3, 4]").(*ast.ArrayConcatenation)
	require.Len(t, matrix.Rows, 2)
	require.Len(t, matrix.Rows[1], 2)
}

func Test_Parser_SyntaxError(t *testing.T) {
	file := source.NewSourceFile("bad.mo", []byte("model M Real x end M;"))
	//
	_, err := NewParser().Parse(file, 0)
	require.Error(t, err)
	//
	parseError, ok := err.(*syntax.ParseError)
	require.True(t, ok)
	require.NotEmpty(t, parseError.Errors)
}

func Test_Parser_Comments(t *testing.T) {
	root := parseFile(t, `
// line comment
package P /* block
comment */ end P;`)
	//
	stored, err := ast.StoredDefinitionFromSyntax(root)
	require.NoError(t, err)
	assert.Equal(t, "P", stored.Classes[0].Name())
}

func Test_Parser_TextRoundTrip(t *testing.T) {
	inputs := []string{
		"package P end P;",
		"model M Real x(start = 1); end M;",
		"type Color = enumeration(Red, Green, Blue);",
		"model B extends A(x(start = 2)); end B;",
	}
	//
	for _, input := range inputs {
		stored, err := ast.StoredDefinitionFromSyntax(parseFile(t, input))
		require.NoError(t, err)
		// Rendering is stable under re-parsing.
		text := ast.Text(stored)
		reparsed, err := ast.StoredDefinitionFromSyntax(parseFile(t, text))
		require.NoError(t, err, "input %q rendered as %q", input, text)
		assert.Equal(t, text, ast.Text(reparsed))
	}
}
