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
package ast_test

import (
	"testing"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/syntax/modelica"
	"github.com/modelscript/modelscript/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) *ast.StoredDefinition {
	file := source.NewSourceFile("test.mo", []byte(text))
	//
	tree, err := modelica.NewParser().Parse(file, uint(len(text))*2)
	require.NoError(t, err)
	//
	stored, err := ast.StoredDefinitionFromSyntax(tree.RootNode())
	require.NoError(t, err)
	//
	return stored
}

// checkRoundTrip verifies that a node's shape reconstructs an identical
// shape.
func checkRoundTrip(t *testing.T, n ast.Node) {
	shape := ast.ToShape(n)
	//
	rebuilt, err := ast.FromShape(shape)
	require.NoError(t, err)
	//
	assert.Equal(t, shape, ast.ToShape(rebuilt))
}

func Test_Shape_Tags(t *testing.T) {
	assert.Equal(t, "UNSIGNED_INTEGER", ast.NewIntegerLiteral(1).Tag())
	assert.Equal(t, "UNSIGNED_REAL", ast.NewRealLiteral(1).Tag())
	assert.Equal(t, "BOOLEAN", ast.NewBooleanLiteral(true).Tag())
	assert.Equal(t, "STRING", ast.NewStringLiteral("").Tag())
	assert.Equal(t, "IDENT", ast.NewIdentifier("x").Tag())
	assert.Equal(t, "StoredDefinition", ast.NewStoredDefinition(nil, nil).Tag())
	// An initial equation section keeps the legacy tag.
	assert.Equal(t, "InitialElementSection", ast.NewEquationSection(true, nil).Tag())
	assert.Equal(t, "EquationSection", ast.NewEquationSection(false, nil).Tag())
}

func Test_Shape_Expressions(t *testing.T) {
	for _, text := range []string{
		"1 + 2 * 3",
		"-x.y[2]",
		"if a then 1 else 2",
		"f(1, k = 2)",
		"{1.5, 2.5}",
		"[1, 2; 3, 4]",
		"1:2:10",
		"not a or b and c",
		`"text"`,
	} {
		file := source.NewSourceFile("expr.mo", []byte(text))
		//
		node, err := modelica.ParseExpression(file)
		require.NoError(t, err)
		//
		expr, err := ast.ExpressionFromSyntax(node)
		require.NoError(t, err)
		//
		checkRoundTrip(t, expr)
	}
}

func Test_Shape_Classes(t *testing.T) {
	for _, text := range []string{
		"package P end P;",
		"within A.B;\nmodel M Real x(start = 1) \"state\"; end M;",
		"type Color = enumeration(Red, Green, Blue);",
		"type Voltage = Real(unit = \"V\");",
		"model B extends A(x(start = 2)); end B;",
		"partial model M import P.Q.*; parameter Real k = 2; end M;",
		"model M Real x; equation x = 1; end M;",
		"function f input Real u; output Real y; algorithm y := u; end f;",
		"model M Real v[3] = {1.0, 2.0, 3.0}; end M;",
	} {
		checkRoundTrip(t, parse(t, text))
	}
}

func Test_Shape_InvalidTag(t *testing.T) {
	_, err := ast.FromShape(map[string]any{"@type": "NoSuchVariant"})
	require.Error(t, err)
	//
	invalid, ok := err.(*ast.InvalidNodeError)
	require.True(t, ok)
	assert.Equal(t, "NoSuchVariant", invalid.Actual)
}

func Test_Shape_JSON(t *testing.T) {
	stored := parse(t, "model M Real x = 1.5; end M;")
	//
	data, err := ast.ToJSON(stored)
	require.NoError(t, err)
	//
	rebuilt, err := ast.FromJSON(data)
	require.NoError(t, err)
	//
	assert.Equal(t, ast.ToShape(stored), ast.ToShape(rebuilt))
}

func Test_Factory_InvalidNode(t *testing.T) {
	stored := parse(t, "package P end P;")
	// The stored definition's concrete node is not a class definition.
	_, err := ast.ClassDefinitionFromSyntax(stored.Syntax())
	require.Error(t, err)
	assert.IsType(t, &ast.InvalidNodeError{}, err)
}

func Test_Factory_SubsetGate(t *testing.T) {
	// An if-expression is not a simple expression.
	file := source.NewSourceFile("expr.mo", []byte("if a then 1 else 2"))
	//
	node, err := modelica.ParseExpression(file)
	require.NoError(t, err)
	//
	_, err = ast.SimpleExpressionFromSyntax(node)
	assert.Error(t, err)
	// But it is an expression.
	_, err = ast.ExpressionFromSyntax(node)
	assert.NoError(t, err)
}

func Test_Visitor_Dispatch(t *testing.T) {
	// The default visitor returns nil for everything; a targeted override
	// sees exactly its variant.
	counter := &literalCounter{}
	expr := parse(t, "model M Real x = 1; end M;")
	//
	assert.Nil(t, expr.Accept(counter, nil))
	assert.Equal(t, 1, ast.NewIntegerLiteral(1).Accept(counter, nil))
}

type literalCounter struct {
	ast.DefaultVisitor
}

func (p *literalCounter) VisitIntegerLiteral(n *ast.IntegerLiteral, arg any) any {
	return 1
}
