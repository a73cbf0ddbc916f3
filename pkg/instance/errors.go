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
package instance

import (
	"fmt"
)

// NameNotFoundError reports a type specifier or component reference which
// resolved to nothing during instantiation.
type NameNotFoundError struct {
	// Name which failed to resolve.
	Name string
}

// Error implements the error interface.
func (p *NameNotFoundError) Error() string {
	return fmt.Sprintf("name %q not found", p.Name)
}

// TypeMismatchError reports a resolved element which was not the expected
// instance variant, e.g. extending from a non-class.
type TypeMismatchError struct {
	// Name of the offending element.
	Name string
	// Expected variant.
	Expected string
}

// Error implements the error interface.
func (p *TypeMismatchError) Error() string {
	return fmt.Sprintf("%q is not a %s", p.Name, p.Expected)
}

// CyclicInstantiationError reports re-entering instantiation on a node which
// is already being instantiated.
type CyclicInstantiationError struct {
	// Name of the instance on which the cycle was detected.
	Name string
}

// Error implements the error interface.
func (p *CyclicInstantiationError) Error() string {
	return fmt.Sprintf("cyclic instantiation of %q", p.Name)
}
