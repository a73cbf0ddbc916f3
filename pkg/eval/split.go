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

	"github.com/modelscript/modelscript/pkg/ast"
)

// Split produces the i-th of n slices of an expression, for array-element
// specialisation.  Array forms slice along their outermost dimension; every
// other expression broadcasts unchanged to each element.
func Split(expr ast.Expression, n uint, i uint) (ast.Expression, error) {
	if i >= n {
		panic(fmt.Sprintf("split index %d out of %d", i, n))
	}
	//
	switch e := expr.(type) {
	case *ast.ArrayConstructor:
		if uint(len(e.Elements)) != n {
			return nil, fmt.Errorf("cannot split %d-element array into %d slices", len(e.Elements), n)
		}
		//
		return e.Elements[i], nil
	case *ast.ArrayConcatenation:
		if uint(len(e.Rows)) != n {
			return nil, fmt.Errorf("cannot split %d-row matrix into %d slices", len(e.Rows), n)
		}
		//
		return ast.NewArrayConstructor(e.Rows[i]...), nil
	default:
		return expr, nil
	}
}

// SplitAll produces the n-way split of an expression as a vector of slices.
func SplitAll(expr ast.Expression, n uint) ([]ast.Expression, error) {
	slices := make([]ast.Expression, n)
	//
	for i := uint(0); i < n; i++ {
		slice, err := Split(expr, n, i)
		if err != nil {
			return nil, err
		}
		//
		slices[i] = slice
	}
	//
	return slices, nil
}
