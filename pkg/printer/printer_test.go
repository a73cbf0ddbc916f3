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
package printer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/instance"
	"github.com/modelscript/modelscript/pkg/printer"
	"github.com/modelscript/modelscript/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noPurity() util.Option[ast.Purity] {
	return util.None[ast.Purity]()
}

func Test_Printer_Source(t *testing.T) {
	expr := ast.NewBinaryExpression(ast.BinaryAdd,
		ast.NewIntegerLiteral(1), ast.NewIntegerLiteral(2))
	//
	var buffer bytes.Buffer
	require.NoError(t, printer.Source(&buffer, expr))
	assert.Equal(t, "1 + 2", buffer.String())
}

func Test_Printer_SourceClass(t *testing.T) {
	class := ast.NewClassDefinition(ast.ClassPrefixes{}, noPurity(), ast.KindPackage,
		ast.NewLongClassSpecifier("P", false, nil, nil, "P", nil), nil)
	stored := ast.NewStoredDefinition(nil, []*ast.ClassDefinition{class})
	//
	var buffer bytes.Buffer
	require.NoError(t, printer.Source(&buffer, stored))
	assert.True(t, strings.Contains(buffer.String(), "package P"))
	assert.True(t, strings.Contains(buffer.String(), "end P"))
}

// writeLibrary materialises a library on disk and returns its root.
func writeLibrary(t *testing.T, files map[string]string) string {
	root := t.TempDir()
	//
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	//
	return filepath.Join(root, "Lib")
}

func flatten(t *testing.T, root string) string {
	library := instance.NewLibrary(instance.NewContext(), root)
	require.NoError(t, library.Instantiate())
	//
	var buffer bytes.Buffer
	require.NoError(t, printer.Library(&buffer, library))
	//
	return buffer.String()
}

func Test_Printer_Deterministic(t *testing.T) {
	root := writeLibrary(t, map[string]string{
		"Lib/package.mo": `package Lib
  type Color = enumeration(Red, Green, Blue);
  model A
    Real x(start = 1);
  end A;
  model B
    extends A(x(start = 2));
    Real v[2] = {1.0, 2.0};
    Color c = Color.Blue;
  end B;
end Lib;`,
		"Lib/Sub/package.mo": "package Sub model T end T; end Sub;",
	})
	// Two fresh instantiations of the same source print identically.
	first := flatten(t, root)
	second := flatten(t, root)
	//
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func Test_Printer_LibraryStructure(t *testing.T) {
	root := writeLibrary(t, map[string]string{
		"Lib/package.mo": `package Lib
  model M
    Real x(start = 1);
  end M;
end Lib;`,
	})
	//
	output := flatten(t, root)
	assert.True(t, strings.Contains(output, "entity Lib (package)"))
	assert.True(t, strings.Contains(output, "model M"))
	assert.True(t, strings.Contains(output, "component x : Real"))
}
