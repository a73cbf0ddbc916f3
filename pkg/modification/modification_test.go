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
package modification

import (
	"testing"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// element constructs an element modification "name = value".
func element(value int64, name ...string) *ElementModification {
	return NewElementModification(name, nil, ast.NewIntegerLiteral(value), nil)
}

func Test_Modification_Argument(t *testing.T) {
	m := New([]Argument{element(1, "a"), element(2, "b"), element(3, "a")}, nil, nil)
	// First-declared wins.
	arg := m.Argument("a")
	require.NotNil(t, arg)
	assert.Equal(t, "a", arg.Name())
	assert.Equal(t, int64(1), arg.Expression().(*ast.IntegerLiteral).Value)
	// Misses yield nil.
	assert.Nil(t, m.Argument("c"))
}

func Test_Modification_MergeIdentity(t *testing.T) {
	m := New([]Argument{element(1, "a")}, ast.NewIntegerLiteral(7), nil)
	// merge(m, empty) = m = merge(empty, m)
	assert.Equal(t, m.String(), Merge(m, Empty()).String())
	assert.Equal(t, m.String(), Merge(Empty(), m).String())
	assert.Equal(t, m.String(), Merge(m, nil).String())
	assert.Equal(t, m.String(), Merge(nil, m).String())
}

func Test_Modification_MergeOverride(t *testing.T) {
	outer := New([]Argument{element(1, "a"), element(2, "b")}, nil, nil)
	overriding := New([]Argument{element(3, "b"), element(4, "c")}, nil, nil)
	//
	merged := Merge(outer, overriding)
	args := merged.Arguments()
	require.Len(t, args, 3)
	// Outer-before-inner order, overriding wins on clashes.
	assert.Equal(t, "a", args[0].Name())
	assert.Equal(t, "b", args[1].Name())
	assert.Equal(t, int64(3), args[1].Expression().(*ast.IntegerLiteral).Value)
	assert.Equal(t, "c", args[2].Name())
}

func Test_Modification_MergeAssociative(t *testing.T) {
	a := New([]Argument{element(1, "x"), element(2, "y")}, ast.NewIntegerLiteral(1), nil)
	b := New([]Argument{element(3, "y"), element(4, "z")}, nil, nil)
	c := New([]Argument{element(5, "z"), element(6, "w")}, ast.NewIntegerLiteral(9), nil)
	//
	lhs := Merge(Merge(a, b), c)
	rhs := Merge(a, Merge(b, c))
	//
	assert.Equal(t, lhs.String(), rhs.String())
}

func Test_Modification_MergeExpressionFallback(t *testing.T) {
	outer := New(nil, ast.NewIntegerLiteral(1), nil)
	overriding := New(nil, nil, nil)
	// The overriding expression falls back to the outer one.
	merged := Merge(outer, overriding)
	require.NotNil(t, merged.Expression())
	assert.Equal(t, int64(1), merged.Expression().(*ast.IntegerLiteral).Value)
	// An overriding expression wins.
	merged = Merge(outer, New(nil, ast.NewIntegerLiteral(2), nil))
	assert.Equal(t, int64(2), merged.Expression().(*ast.IntegerLiteral).Value)
}

func Test_Modification_ExtractShallow(t *testing.T) {
	inner := NewElementModification([]string{"start"}, nil, ast.NewIntegerLiteral(2), nil)
	x := NewElementModification([]string{"x"}, []Argument{inner}, ast.NewIntegerLiteral(5), nil)
	m := New([]Argument{x}, nil, nil)
	//
	extracted := m.Extract("x")
	require.Len(t, extracted.Arguments(), 1)
	assert.Equal(t, "start", extracted.Arguments()[0].Name())
	assert.Equal(t, int64(5), extracted.Expression().(*ast.IntegerLiteral).Value)
	// Unmatched names yield the empty modification.
	assert.True(t, m.Extract("y").IsEmpty())
}

func Test_Modification_ExtractDotted(t *testing.T) {
	// "x.start = 2" peels to an element modification "start = 2" keyed on
	// the tail; the expression stays on the tail.
	dotted := NewElementModification([]string{"x", "start"}, nil, ast.NewIntegerLiteral(2), nil)
	m := New([]Argument{dotted}, nil, nil)
	//
	extracted := m.Extract("x")
	require.Nil(t, extracted.Expression())
	require.Len(t, extracted.Arguments(), 1)
	//
	tail := extracted.Arguments()[0].(*ElementModification)
	assert.Equal(t, "start", tail.Name())
	assert.Equal(t, int64(2), tail.Expression().(*ast.IntegerLiteral).Value)
}

func Test_Modification_SplitExpression(t *testing.T) {
	expr := ast.NewArrayConstructor(
		ast.NewIntegerLiteral(1), ast.NewIntegerLiteral(2), ast.NewIntegerLiteral(3))
	m := New(nil, expr, nil)
	//
	split, err := m.Split(3)
	require.NoError(t, err)
	require.Len(t, split, 3)
	// split(m, n)[i].expression = e.split(n, i)
	for i := 0; i < 3; i++ {
		expected, err := eval.Split(expr, 3, uint(i))
		require.NoError(t, err)
		assert.Equal(t, expected, split[i].Expression())
	}
}

func Test_Modification_SplitScalarBroadcast(t *testing.T) {
	m := New([]Argument{element(7, "start")}, nil, nil)
	//
	split, err := m.Split(2)
	require.NoError(t, err)
	//
	for _, s := range split {
		arg := s.Argument("start")
		require.NotNil(t, arg)
		assert.Equal(t, int64(7), arg.Expression().(*ast.IntegerLiteral).Value)
	}
}

func Test_Modification_SplitMismatch(t *testing.T) {
	expr := ast.NewArrayConstructor(ast.NewIntegerLiteral(1), ast.NewIntegerLiteral(2))
	m := New(nil, expr, nil)
	//
	_, err := m.Split(3)
	assert.Error(t, err)
}

func Test_Modification_Value(t *testing.T) {
	m := New(nil, ast.NewBinaryExpression(ast.BinaryAdd,
		ast.NewIntegerLiteral(1), ast.NewIntegerLiteral(2)), nil)
	//
	value, err := m.Value(eval.EmptyResolver{})
	require.NoError(t, err)
	assert.Equal(t, eval.Integer(3), value)
	// The value is computed once and cached.
	again, err := m.Value(eval.EmptyResolver{})
	require.NoError(t, err)
	assert.Equal(t, value, again)
	// No expression yields no value.
	empty, err := Empty().Value(eval.EmptyResolver{})
	require.NoError(t, err)
	assert.Nil(t, empty)
}
