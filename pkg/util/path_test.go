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
package util

import (
	"testing"
)

func Test_Path_01(t *testing.T) {
	path := NewRelativePath("A", "B", "C")
	//
	if path.Depth() != 3 || path.Head() != "A" || path.Tail() != "C" {
		t.Errorf("unexpected path %s", path.String())
	}
	//
	if path.IsAbsolute() {
		t.Errorf("relative path reported absolute")
	}
	//
	if path.String() != "A.B.C" {
		t.Errorf("unexpected rendering %q", path.String())
	}
}

func Test_Path_02(t *testing.T) {
	path := NewAbsolutePath("A", "B")
	//
	if !path.IsAbsolute() || path.String() != ".A.B" {
		t.Errorf("unexpected rendering %q", path.String())
	}
	// Deheading an absolute path makes it relative.
	if path.Dehead().IsAbsolute() {
		t.Errorf("deheaded path still absolute")
	}
}

func Test_Path_03(t *testing.T) {
	prefix := NewRelativePath("A", "B")
	whole := NewRelativePath("A", "B", "C")
	//
	if !prefix.PrefixOf(whole) || whole.PrefixOf(prefix) {
		t.Errorf("prefix check failed")
	}
	//
	extended := prefix.Extend("C")
	//
	if !extended.Equals(whole) {
		t.Errorf("extend failed: %s", extended.String())
	}
}

func Test_Option_01(t *testing.T) {
	some := Some(10)
	none := None[int]()
	//
	if !some.HasValue() || some.Unwrap() != 10 {
		t.Errorf("unexpected option state")
	}
	//
	if none.HasValue() || !none.IsEmpty() {
		t.Errorf("unexpected option state")
	}
	//
	if none.UnwrapOr(5) != 5 || some.UnwrapOr(5) != 10 {
		t.Errorf("unexpected default handling")
	}
}

func Test_Option_02(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic unwrapping empty option")
		}
	}()
	//
	None[string]().Unwrap()
}
