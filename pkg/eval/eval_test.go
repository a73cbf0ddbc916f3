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
package eval

import (
	"testing"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, expr ast.Expression) Value {
	value, err := Evaluate(expr, EmptyResolver{})
	require.NoError(t, err)
	//
	return value
}

func binary(op ast.BinaryOperator, lhs ast.Expression, rhs ast.Expression) ast.Expression {
	return ast.NewBinaryExpression(op, lhs, rhs)
}

func Test_Eval_Literals(t *testing.T) {
	assert.Equal(t, Integer(42), evaluate(t, ast.NewIntegerLiteral(42)))
	assert.Equal(t, Real(2.5), evaluate(t, ast.NewRealLiteral(2.5)))
	assert.Equal(t, Boolean(true), evaluate(t, ast.NewBooleanLiteral(true)))
	assert.Equal(t, String("hi"), evaluate(t, ast.NewStringLiteral("hi")))
}

func Test_Eval_Arithmetic(t *testing.T) {
	one, two := ast.NewIntegerLiteral(1), ast.NewIntegerLiteral(2)
	//
	assert.Equal(t, Integer(3), evaluate(t, binary(ast.BinaryAdd, one, two)))
	assert.Equal(t, Integer(-1), evaluate(t, binary(ast.BinarySubtract, one, two)))
	assert.Equal(t, Integer(2), evaluate(t, binary(ast.BinaryMultiply, one, two)))
	// Division always yields a real.
	assert.Equal(t, Real(0.5), evaluate(t, binary(ast.BinaryDivide, one, two)))
	// Mixed operands promote to real.
	assert.Equal(t, Real(3.5), evaluate(t, binary(ast.BinaryAdd, ast.NewRealLiteral(1.5), two)))
	// Exponentiation.
	assert.Equal(t, Real(8), evaluate(t, binary(ast.BinaryExponentiate, two, ast.NewIntegerLiteral(3))))
}

func Test_Eval_DivisionByZero(t *testing.T) {
	_, err := Evaluate(binary(ast.BinaryDivide,
		ast.NewIntegerLiteral(1), ast.NewIntegerLiteral(0)), EmptyResolver{})
	assert.Error(t, err)
}

func Test_Eval_Comparison(t *testing.T) {
	one, two := ast.NewIntegerLiteral(1), ast.NewIntegerLiteral(2)
	//
	assert.Equal(t, Boolean(true), evaluate(t, binary(ast.BinaryLessThan, one, two)))
	assert.Equal(t, Boolean(false), evaluate(t, binary(ast.BinaryGreaterEqual, one, two)))
	assert.Equal(t, Boolean(true), evaluate(t, binary(ast.BinaryNotEqual, one, two)))
	assert.Equal(t, Boolean(true),
		evaluate(t, binary(ast.BinaryEqual, ast.NewStringLiteral("a"), ast.NewStringLiteral("a"))))
}

func Test_Eval_Logical(t *testing.T) {
	yes, no := ast.NewBooleanLiteral(true), ast.NewBooleanLiteral(false)
	//
	assert.Equal(t, Boolean(true), evaluate(t, binary(ast.BinaryOr, yes, no)))
	assert.Equal(t, Boolean(false), evaluate(t, binary(ast.BinaryAnd, yes, no)))
	assert.Equal(t, Boolean(true), evaluate(t, ast.NewUnaryExpression(ast.UnaryNot, no)))
}

func Test_Eval_Unary(t *testing.T) {
	assert.Equal(t, Integer(-5), evaluate(t, ast.NewUnaryExpression(ast.UnaryMinus, ast.NewIntegerLiteral(5))))
	assert.Equal(t, Real(-1.5), evaluate(t, ast.NewUnaryExpression(ast.UnaryMinus, ast.NewRealLiteral(1.5))))
	assert.Equal(t, Integer(5), evaluate(t, ast.NewUnaryExpression(ast.UnaryPlus, ast.NewIntegerLiteral(5))))
}

func Test_Eval_Range(t *testing.T) {
	r := ast.NewRangeExpression(ast.NewIntegerLiteral(1), nil, ast.NewIntegerLiteral(4))
	assert.Equal(t, Array{Integer(1), Integer(2), Integer(3), Integer(4)}, evaluate(t, r))
	//
	stepped := ast.NewRangeExpression(ast.NewIntegerLiteral(1), ast.NewIntegerLiteral(2), ast.NewIntegerLiteral(5))
	assert.Equal(t, Array{Integer(1), Integer(3), Integer(5)}, evaluate(t, stepped))
	//
	descending := ast.NewRangeExpression(ast.NewIntegerLiteral(3),
		ast.NewUnaryExpression(ast.UnaryMinus, ast.NewIntegerLiteral(1)), ast.NewIntegerLiteral(1))
	assert.Equal(t, Array{Integer(3), Integer(2), Integer(1)}, evaluate(t, descending))
}

func Test_Eval_IfExpression(t *testing.T) {
	expr := ast.NewIfExpression([]ast.IfExpressionBranch{
		{Condition: ast.NewBooleanLiteral(false), Value: ast.NewIntegerLiteral(1)},
		{Condition: ast.NewBooleanLiteral(true), Value: ast.NewIntegerLiteral(2)},
	}, ast.NewIntegerLiteral(3))
	//
	assert.Equal(t, Integer(2), evaluate(t, expr))
}

func Test_Eval_Array(t *testing.T) {
	expr := ast.NewArrayConstructor(ast.NewIntegerLiteral(1), ast.NewIntegerLiteral(2))
	assert.Equal(t, Array{Integer(1), Integer(2)}, evaluate(t, expr))
	// Elementwise operators distribute.
	scaled := binary(ast.BinaryElementwiseMultiply, expr, ast.NewIntegerLiteral(3))
	assert.Equal(t, Array{Integer(3), Integer(6)}, evaluate(t, scaled))
}

func Test_Eval_UnknownReference(t *testing.T) {
	ref := ast.NewComponentReference(false, ast.ComponentReferencePart{Identifier: "x"})
	//
	_, err := Evaluate(ref, EmptyResolver{})
	assert.Error(t, err)
}

func Test_Split_Array(t *testing.T) {
	expr := ast.NewArrayConstructor(
		ast.NewIntegerLiteral(1), ast.NewIntegerLiteral(2), ast.NewIntegerLiteral(3))
	//
	for i := uint(0); i < 3; i++ {
		slice, err := Split(expr, 3, i)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), slice.(*ast.IntegerLiteral).Value)
	}
	// Length mismatches fail.
	_, err := Split(expr, 2, 0)
	assert.Error(t, err)
}

func Test_Split_Broadcast(t *testing.T) {
	scalar := ast.NewIntegerLiteral(9)
	//
	slice, err := Split(scalar, 4, 2)
	require.NoError(t, err)
	assert.Same(t, ast.Expression(scalar), slice)
}

func Test_Split_All(t *testing.T) {
	expr := ast.NewArrayConstructor(ast.NewIntegerLiteral(1), ast.NewIntegerLiteral(2))
	//
	slices, err := SplitAll(expr, 2)
	require.NoError(t, err)
	require.Len(t, slices, 2)
	assert.Equal(t, int64(2), slices[1].(*ast.IntegerLiteral).Value)
}

func Test_Value_ToAny(t *testing.T) {
	assert.Equal(t, int64(1), ToAny(Integer(1)))
	assert.Equal(t, 2.5, ToAny(Real(2.5)))
	assert.Equal(t, true, ToAny(Boolean(true)))
	assert.Equal(t, "s", ToAny(String("s")))
	assert.Equal(t, []any{int64(1), int64(2)}, ToAny(Array{Integer(1), Integer(2)}))
	assert.Equal(t, "Color.Green", ToAny(Enum{Type: "Color", Literal: "Green", Ordinal: 2}))
}
