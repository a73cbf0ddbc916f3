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
	"testing"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/modification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instantiate builds and instantiates a library over the given in-memory
// files.
func instantiate(t *testing.T, root string, files map[string]string, dirs ...string) *Library {
	library := NewLibrary(memContext(files, dirs...), root)
	require.NoError(t, library.Instantiate())
	//
	return library
}

// resolve resolves a dotted name against the library root, failing the test
// on a miss.
func resolve(t *testing.T, library *Library, parts ...string) Element {
	element, err := ResolveName(library, parts, false)
	require.NoError(t, err)
	require.NotNil(t, element, "cannot resolve %v", parts)
	//
	return element
}

// component resolves a name to a component instance.
func component(t *testing.T, library *Library, parts ...string) *ComponentInstance {
	element := resolve(t, library, parts...)
	//
	c, ok := element.(*ComponentInstance)
	require.True(t, ok, "%v is not a component", parts)
	//
	return c
}

func Test_Instance_TrivialPackage(t *testing.T) {
	library := instantiate(t, "/lib/P", map[string]string{
		"/lib/P/package.mo": "package P end P;",
	})
	//
	element := resolve(t, library, "P")
	//
	class, ok := AsClass(element)
	require.True(t, ok)
	//
	p := class.(*ClassInstance)
	assert.Equal(t, "P", p.Name())
	assert.Equal(t, ast.KindPackage, p.Kind())
	assert.True(t, p.Instantiated())
	assert.Empty(t, p.DeclaredElements())
	assert.Empty(t, p.UnqualifiedImports())
}

func Test_Instance_ExtendsOverride(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  model A
    Real x(start = 1);
  end A;
  model B
    extends A(x(start = 2));
  end B;
end Lib;`,
	})
	//
	b, ok := AsClass(resolve(t, library, "Lib", "B"))
	require.True(t, ok)
	//
	elements := b.(*ClassInstance).Elements()
	require.Len(t, elements, 1)
	//
	x, ok := elements[0].(*ComponentInstance)
	require.True(t, ok)
	assert.Equal(t, "x", x.Name())
	// The override wins.
	predefined, ok := x.ClassInstance().(*PredefinedClassInstance)
	require.True(t, ok)
	//
	start, ok := predefined.Start().(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(2), start.Value)
}

func Test_Instance_ExtendsModificationInvariant(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  model A
    Real x(start = 1);
  end A;
  model B
    extends A(x(start = 2));
  end B;
end Lib;`,
	})
	//
	b, _ := AsClass(resolve(t, library, "Lib", "B"))
	//
	declared := b.(*ClassInstance).DeclaredElements()
	require.Len(t, declared, 1)
	//
	x, ok := declared[0].(*ExtendsClassInstance)
	require.True(t, ok)
	require.NotNil(t, x.ClassInstance())
	assert.True(t, x.ClassInstance().Instantiated())
	// applied modification = merge(parent.modification, clauseModification)
	expected := modification.Merge(b.Modification(), clauseModification(x.Clause()))
	assert.Equal(t, expected.String(), x.Modification().String())
}

func Test_Instance_ImportResolution(t *testing.T) {
	library := instantiate(t, "/lib/P", map[string]string{
		"/lib/P/package.mo": `package P
  model M
    import P.Q;
    Q.T t;
  end M;
end P;`,
		"/lib/P/Q/package.mo": `package Q
  model T
  end T;
end Q;`,
	})
	//
	m, _ := AsClass(resolve(t, library, "P", "M"))
	// resolveComponentReference(t) reaches the component, whose class is the
	// T defined inside P.Q.
	ref := ast.NewComponentReference(false, ast.ComponentReferencePart{Identifier: "t"})
	//
	element, err := ResolveComponentReference(m.(*ClassInstance), ref)
	require.NoError(t, err)
	//
	component, ok := element.(*ComponentInstance)
	require.True(t, ok)
	//
	class, ok := component.ClassInstance().(*ClassInstance)
	require.True(t, ok)
	assert.Equal(t, "T", class.Name())
	assert.Equal(t, ast.KindModel, class.Kind())
}

func Test_Instance_ArraySpecialisation(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  model M
    Real v[3] = {1.0, 2.0, 3.0};
  end M;
end Lib;`,
	})
	//
	v := component(t, library, "Lib", "M", "v")
	//
	array, ok := v.ClassInstance().(*ArrayClassInstance)
	require.True(t, ok)
	assert.Equal(t, []int{3}, array.Shape())
	assert.Equal(t, 3, array.Size())
	//
	elements := array.ElementInstances()
	require.Len(t, elements, 3)
	//
	for i, expected := range []float64{1.0, 2.0, 3.0} {
		predefined, ok := elements[i].(*PredefinedClassInstance)
		require.True(t, ok)
		//
		value, ok := predefined.Value().(*ast.RealLiteral)
		require.True(t, ok)
		assert.Equal(t, expected, value.Value)
	}
}

func Test_Instance_EnumerationLiteral(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  type Color = enumeration(Red, Green, Blue);
  model M
    Color c = Color.Green;
  end M;
end Lib;`,
	})
	//
	c := component(t, library, "Lib", "M", "c")
	//
	enum, ok := c.ClassInstance().(*EnumerationClassInstance)
	require.True(t, ok)
	require.Len(t, enum.Literals(), 3)
	//
	value := enum.Value()
	require.NotNil(t, value)
	assert.Equal(t, "Green", value.StringValue())
	assert.Equal(t, 2, value.Ordinal())
}

func Test_Instance_EnumerationOrdinals(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  type Color = enumeration(Red, Green, Blue);
end Lib;`,
	})
	//
	enum, ok := resolve(t, library, "Lib", "Color").(*EnumerationClassInstance)
	require.True(t, ok)
	// Ordinals are dense, counting from 1, in declaration order.
	for i, literal := range enum.Literals() {
		assert.Equal(t, i+1, literal.Ordinal())
	}
}

func Test_Instance_EnumerationNonLiteralValue(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  type Color = enumeration(Red, Green, Blue);
  model M
    Color c = 5;
  end M;
end Lib;`,
	})
	//
	c := component(t, library, "Lib", "M", "c")
	//
	enum, ok := c.ClassInstance().(*EnumerationClassInstance)
	require.True(t, ok)
	// A modification expression which is not a literal of this enumeration
	// leaves the value empty.
	assert.Nil(t, enum.Value())
}

func Test_Instance_CycleDetection(t *testing.T) {
	library := NewLibrary(memContext(map[string]string{
		"/lib/Lib/package.mo": `package Lib
  class A
    extends A;
  end A;
end Lib;`,
	}), "/lib/Lib")
	//
	err := library.Instantiate()
	require.Error(t, err)
	//
	cyclic, ok := err.(*CyclicInstantiationError)
	require.True(t, ok)
	assert.Equal(t, "A", cyclic.Name)
}

func Test_Instance_ComponentTypeCycle(t *testing.T) {
	library := NewLibrary(memContext(map[string]string{
		"/lib/Lib/package.mo": `package Lib
  class A
    A inner_;
  end A;
end Lib;`,
	}), "/lib/Lib")
	//
	err := library.Instantiate()
	require.Error(t, err)
	assert.IsType(t, &CyclicInstantiationError{}, err)
}

func Test_Instance_EmptyDirectoryPackage(t *testing.T) {
	library := instantiate(t, "/lib/Empty", map[string]string{}, "/lib/Empty")
	//
	root := library.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Empty", root.Name())
	assert.False(t, root.Unstructured())
	//
	class := root.ClassInstance()
	require.NotNil(t, class)
	assert.True(t, class.Instantiated())
	assert.Empty(t, class.DeclaredElements())
	assert.Empty(t, class.UnqualifiedImports())
}

func Test_Instance_UnstructuredEntity(t *testing.T) {
	library := instantiate(t, "/lib/A.mo", map[string]string{
		"/lib/A.mo": "model A Real x; end A;",
	})
	//
	root := library.Root()
	assert.True(t, root.Unstructured())
	assert.Equal(t, "A", root.Name())
	assert.Empty(t, root.Children())
}

func Test_Instance_UnqualifiedImportFallthrough(t *testing.T) {
	library := instantiate(t, "/lib/P", map[string]string{
		"/lib/P/package.mo": `package P
  package U
    model V
    end V;
  end U;
  model Z
  end Z;
  model M
    import P.U.*;
    V v;
    Z z;
  end M;
end P;`,
	})
	//
	v := component(t, library, "P", "M", "v")
	assert.Equal(t, "V", v.ClassInstance().Name())
	// A query the unqualified import cannot answer falls through to the
	// parent scope.
	z := component(t, library, "P", "M", "z")
	assert.Equal(t, "Z", z.ClassInstance().Name())
}

func Test_Instance_FlexibleArray(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  model M
    Real v[:];
  end M;
end Lib;`,
	})
	//
	v := component(t, library, "Lib", "M", "v")
	//
	array, ok := v.ClassInstance().(*ArrayClassInstance)
	require.True(t, ok)
	assert.Equal(t, []int{FlexibleDimension}, array.Shape())
	// A flexible dimension suppresses element expansion.
	assert.Empty(t, array.ElementInstances())
	assert.True(t, array.Instantiated())
}

func Test_Instance_ArrayShapeFromParameter(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  model M
    parameter Integer n = 2;
    Real v[n];
  end M;
end Lib;`,
	})
	//
	v := component(t, library, "Lib", "M", "v")
	//
	array, ok := v.ClassInstance().(*ArrayClassInstance)
	require.True(t, ok)
	assert.Equal(t, []int{2}, array.Shape())
	require.Len(t, array.ElementInstances(), 2)
}

func Test_Instance_ShortClassAlias(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  type Voltage = Real(unit = "V");
  model M
    Voltage u;
  end M;
end Lib;`,
	})
	//
	u := component(t, library, "Lib", "M", "u")
	//
	short, ok := u.ClassInstance().(*ShortClassInstance)
	require.True(t, ok)
	//
	predefined, ok := short.Inner().(*PredefinedClassInstance)
	require.True(t, ok)
	//
	unit, ok := predefined.Unit().(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "V", unit.Value)
}

func Test_Instance_NestedModificationThroughComponent(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  model Inner
    Real x(start = 1);
  end Inner;
  model Outer
    Inner inner_(x(start = 3));
  end Outer;
end Lib;`,
	})
	//
	inner := component(t, library, "Lib", "Outer", "inner_")
	//
	x := component(t, library, "Lib", "Outer", "inner_", "x")
	require.NotNil(t, x)
	assert.True(t, inner.Instantiated())
	//
	predefined, ok := x.ClassInstance().(*PredefinedClassInstance)
	require.True(t, ok)
	//
	start, ok := predefined.Start().(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(3), start.Value)
}

func Test_Instance_NameNotFound(t *testing.T) {
	library := NewLibrary(memContext(map[string]string{
		"/lib/Lib/package.mo": `package Lib
  model M
    NoSuchType x;
  end M;
end Lib;`,
	}), "/lib/Lib")
	//
	err := library.Instantiate()
	require.Error(t, err)
	assert.IsType(t, &NameNotFoundError{}, err)
}

func Test_Instance_PredefinedFallback(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": "package Lib end Lib;",
	})
	//
	for _, name := range []string{"Boolean", "Integer", "Real", "String"} {
		element, err := ResolveSimpleName(library, name, false, false)
		require.NoError(t, err)
		//
		predefined, ok := element.(*PredefinedClassInstance)
		require.True(t, ok)
		assert.Equal(t, name, predefined.Name())
		assert.True(t, predefined.Instantiated())
	}
	// Anything else misses.
	element, err := ResolveSimpleName(library, "Quaternion", false, false)
	require.NoError(t, err)
	assert.Nil(t, element)
}

func Test_Instance_DuplicateNamesFirstWins(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  model M
    Real x(start = 1);
    Integer x(start = 9);
  end M;
end Lib;`,
	})
	//
	x := component(t, library, "Lib", "M", "x")
	//
	predefined, ok := x.ClassInstance().(*PredefinedClassInstance)
	require.True(t, ok)
	assert.Equal(t, PredefinedReal, predefined.PredefinedKind())
}

func Test_Instance_LoadIsMonotonic(t *testing.T) {
	library := instantiate(t, "/lib/P", map[string]string{
		"/lib/P/package.mo": "package P end P;",
	})
	//
	root := library.Root()
	// Repeated loads and instantiations are no-ops.
	require.NoError(t, library.Load())
	require.NoError(t, library.Instantiate())
	assert.Same(t, root, library.Root())
}

func Test_Instance_Annotations(t *testing.T) {
	library := instantiate(t, "/lib/Lib", map[string]string{
		"/lib/Lib/package.mo": `package Lib
  model M
    annotation (experiment(StopTime = 10.0), nonsense(a = 1));
  end M;
end Lib;`,
	})
	//
	m, _ := AsClass(resolve(t, library, "Lib", "M"))
	//
	annotations := m.(*ClassInstance).Annotations()
	// Arguments outside the schema are ignored.
	require.Len(t, annotations, 1)
	assert.Equal(t, "experiment", annotations[0].Name)
	//
	experiment, ok := annotations[0].Value.(*ClassInstance)
	require.True(t, ok)
	//
	stop := experiment.Modification().Argument("StopTime")
	require.NotNil(t, stop)
	assert.Equal(t, 10.0, stop.Expression().(*ast.RealLiteral).Value)
}

func Test_Instance_EntityShadowing(t *testing.T) {
	library := instantiate(t, "/lib/P", map[string]string{
		"/lib/P/package.mo": `package P
  model Q "shadowed by the sub-entity"
  end Q;
end P;`,
		"/lib/P/Q/package.mo": "package Q end Q;",
	})
	// Sub-entities shadow the class' own elements.
	element := resolve(t, library, "P", "Q")
	//
	entity, ok := element.(*Entity)
	require.True(t, ok)
	assert.Equal(t, "Q", entity.Name())
	assert.False(t, entity.Unstructured())
}
