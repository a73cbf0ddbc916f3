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
	"fmt"
	"math"

	"github.com/modelscript/modelscript/pkg/ast"
)

// Resolver supplies values for component references encountered during
// evaluation.  Scopes of the instance tree implement this; the empty resolver
// suffices for closed expressions.
type Resolver interface {
	// ResolveValue resolves a component reference to a value, returning false
	// when the reference is unknown.
	ResolveValue(ref *ast.ComponentReference) (Value, bool)
}

// EmptyResolver resolves nothing; evaluation of any component reference
// against it fails.
type EmptyResolver struct{}

// ResolveValue returns false for every reference.
func (EmptyResolver) ResolveValue(ref *ast.ComponentReference) (Value, bool) {
	return nil, false
}

// Evaluate computes the value of an expression against the given resolver.
func Evaluate(expr ast.Expression, resolver Resolver) (Value, error) {
	switch e := expr.(type) {
	case *ast.BooleanLiteral:
		return Boolean(e.Value), nil
	case *ast.IntegerLiteral:
		return Integer(e.Value), nil
	case *ast.RealLiteral:
		return Real(e.Value), nil
	case *ast.StringLiteral:
		return String(e.Value), nil
	case *ast.ComponentReference:
		if value, ok := resolver.ResolveValue(e); ok {
			return value, nil
		}
		//
		return nil, fmt.Errorf("cannot evaluate reference %q", e.Identifiers())
	case *ast.BinaryExpression:
		return evaluateBinary(e, resolver)
	case *ast.UnaryExpression:
		return evaluateUnary(e, resolver)
	case *ast.RangeExpression:
		return evaluateRange(e, resolver)
	case *ast.IfExpression:
		return evaluateIf(e, resolver)
	case *ast.ArrayConstructor:
		return evaluateArray(e.Elements, resolver)
	case *ast.ArrayConcatenation:
		return evaluateConcatenation(e, resolver)
	default:
		return nil, fmt.Errorf("cannot evaluate %s expression", expr.Tag())
	}
}

func evaluateArray(elements []ast.Expression, resolver Resolver) (Value, error) {
	values := make(Array, len(elements))
	//
	for i, element := range elements {
		value, err := Evaluate(element, resolver)
		if err != nil {
			return nil, err
		}
		//
		values[i] = value
	}
	//
	return values, nil
}

func evaluateConcatenation(e *ast.ArrayConcatenation, resolver Resolver) (Value, error) {
	rows := make(Array, len(e.Rows))
	//
	for i, row := range e.Rows {
		value, err := evaluateArray(row, resolver)
		if err != nil {
			return nil, err
		}
		//
		rows[i] = value
	}
	//
	return rows, nil
}

func evaluateIf(e *ast.IfExpression, resolver Resolver) (Value, error) {
	for _, branch := range e.Branches {
		condition, err := Evaluate(branch.Condition, resolver)
		if err != nil {
			return nil, err
		}
		//
		b, ok := condition.(Boolean)
		if !ok {
			return nil, fmt.Errorf("if condition evaluated to %s, expected boolean", condition)
		}
		//
		if bool(b) {
			return Evaluate(branch.Value, resolver)
		}
	}
	//
	return Evaluate(e.Else, resolver)
}

func evaluateRange(e *ast.RangeExpression, resolver Resolver) (Value, error) {
	start, err := evaluateNumeric(e.Start, resolver)
	if err != nil {
		return nil, err
	}
	//
	step := 1.0
	isReal := false
	//
	if _, ok := start.(Real); ok {
		isReal = true
	}
	//
	if e.Step != nil {
		value, err := evaluateNumeric(e.Step, resolver)
		if err != nil {
			return nil, err
		}
		//
		step = asFloat(value)
		//
		if _, ok := value.(Real); ok {
			isReal = true
		}
	}
	//
	end, err := evaluateNumeric(e.End, resolver)
	if err != nil {
		return nil, err
	}
	//
	if _, ok := end.(Real); ok {
		isReal = true
	}
	//
	if step == 0 {
		return nil, fmt.Errorf("range step is zero")
	}
	//
	var values Array
	//
	from, to := asFloat(start), asFloat(end)
	//
	for v := from; (step > 0 && v <= to) || (step < 0 && v >= to); v += step {
		if isReal {
			values = append(values, Real(v))
		} else {
			values = append(values, Integer(int64(v)))
		}
	}
	//
	return values, nil
}

func evaluateBinary(e *ast.BinaryExpression, resolver Resolver) (Value, error) {
	lhs, err := Evaluate(e.Lhs, resolver)
	if err != nil {
		return nil, err
	}
	//
	rhs, err := Evaluate(e.Rhs, resolver)
	if err != nil {
		return nil, err
	}
	//
	switch e.Operator {
	case ast.BinaryOr, ast.BinaryAnd:
		return evaluateLogical(e.Operator, lhs, rhs)
	case ast.BinaryEqual, ast.BinaryNotEqual, ast.BinaryLessThan, ast.BinaryLessEqual,
		ast.BinaryGreaterThan, ast.BinaryGreaterEqual:
		return evaluateComparison(e.Operator, lhs, rhs)
	default:
		return evaluateArithmetic(e.Operator, lhs, rhs)
	}
}

func evaluateLogical(op ast.BinaryOperator, lhs Value, rhs Value) (Value, error) {
	l, lok := lhs.(Boolean)
	r, rok := rhs.(Boolean)
	//
	if !lok || !rok {
		return nil, fmt.Errorf("operator %s requires boolean operands", op)
	}
	//
	if op == ast.BinaryOr {
		return Boolean(bool(l) || bool(r)), nil
	}
	//
	return Boolean(bool(l) && bool(r)), nil
}

func evaluateComparison(op ast.BinaryOperator, lhs Value, rhs Value) (Value, error) {
	// String comparison is confined to (in)equality.
	if l, ok := lhs.(String); ok {
		r, ok := rhs.(String)
		if !ok {
			return nil, fmt.Errorf("cannot compare %s with %s", lhs, rhs)
		}
		//
		switch op {
		case ast.BinaryEqual:
			return Boolean(l == r), nil
		case ast.BinaryNotEqual:
			return Boolean(l != r), nil
		default:
			return nil, fmt.Errorf("operator %s not defined on strings", op)
		}
	}
	//
	if !isNumeric(lhs) || !isNumeric(rhs) {
		return nil, fmt.Errorf("operator %s requires numeric operands", op)
	}
	//
	l, r := asFloat(lhs), asFloat(rhs)
	//
	switch op {
	case ast.BinaryEqual:
		return Boolean(l == r), nil
	case ast.BinaryNotEqual:
		return Boolean(l != r), nil
	case ast.BinaryLessThan:
		return Boolean(l < r), nil
	case ast.BinaryLessEqual:
		return Boolean(l <= r), nil
	case ast.BinaryGreaterThan:
		return Boolean(l > r), nil
	default:
		return Boolean(l >= r), nil
	}
}

func evaluateArithmetic(op ast.BinaryOperator, lhs Value, rhs Value) (Value, error) {
	// Elementwise operators distribute over arrays.
	if la, ok := lhs.(Array); ok {
		return mapArithmetic(op, la, rhs, true)
	}
	//
	if ra, ok := rhs.(Array); ok {
		return mapArithmetic(op, ra, lhs, false)
	}
	//
	if !isNumeric(lhs) || !isNumeric(rhs) {
		return nil, fmt.Errorf("operator %s requires numeric operands", op)
	}
	//
	l, r := asFloat(lhs), asFloat(rhs)
	//
	var result float64
	//
	switch op {
	case ast.BinaryAdd, ast.BinaryElementwiseAdd:
		result = l + r
	case ast.BinarySubtract, ast.BinaryElementwiseSubtract:
		result = l - r
	case ast.BinaryMultiply, ast.BinaryElementwiseMultiply:
		result = l * r
	case ast.BinaryDivide, ast.BinaryElementwiseDivide:
		if r == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		//
		result = l / r
	case ast.BinaryExponentiate, ast.BinaryElementwiseExponentiate:
		result = math.Pow(l, r)
	default:
		return nil, fmt.Errorf("operator %s not supported", op)
	}
	// Division and exponentiation always yield reals.
	integral := isInteger(lhs) && isInteger(rhs) &&
		op != ast.BinaryDivide && op != ast.BinaryElementwiseDivide &&
		op != ast.BinaryExponentiate && op != ast.BinaryElementwiseExponentiate
	//
	if integral {
		return Integer(int64(result)), nil
	}
	//
	return Real(result), nil
}

func mapArithmetic(op ast.BinaryOperator, items Array, scalar Value, arrayLeft bool) (Value, error) {
	values := make(Array, len(items))
	//
	for i, item := range items {
		var (
			value Value
			err   error
		)
		//
		if arrayLeft {
			value, err = evaluateArithmetic(op, item, scalar)
		} else {
			value, err = evaluateArithmetic(op, scalar, item)
		}
		//
		if err != nil {
			return nil, err
		}
		//
		values[i] = value
	}
	//
	return values, nil
}

func evaluateUnary(e *ast.UnaryExpression, resolver Resolver) (Value, error) {
	operand, err := Evaluate(e.Operand, resolver)
	if err != nil {
		return nil, err
	}
	//
	switch e.Operator {
	case ast.UnaryNot:
		b, ok := operand.(Boolean)
		if !ok {
			return nil, fmt.Errorf("operator not requires a boolean operand")
		}
		//
		return Boolean(!bool(b)), nil
	case ast.UnaryPlus, ast.UnaryElementwisePlus:
		return operand, nil
	default:
		switch v := operand.(type) {
		case Integer:
			return Integer(-v), nil
		case Real:
			return Real(-v), nil
		default:
			return nil, fmt.Errorf("operator - requires a numeric operand")
		}
	}
}

func evaluateNumeric(expr ast.Expression, resolver Resolver) (Value, error) {
	value, err := Evaluate(expr, resolver)
	if err != nil {
		return nil, err
	}
	//
	if !isNumeric(value) {
		return nil, fmt.Errorf("expected numeric value, found %s", value)
	}
	//
	return value, nil
}

func isNumeric(v Value) bool {
	switch v.(type) {
	case Integer, Real:
		return true
	default:
		return false
	}
}

func isInteger(v Value) bool {
	_, ok := v.(Integer)
	return ok
}

func asFloat(v Value) float64 {
	switch v := v.(type) {
	case Integer:
		return float64(v)
	case Real:
		return float64(v)
	default:
		return math.NaN()
	}
}
