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

// Package instance implements the instantiation engine: the library loader,
// the instance tree, Modelica name resolution and the specialisation of
// classes under merged modifications.
package instance

import (
	"github.com/modelscript/modelscript/pkg/syntax"
	"github.com/modelscript/modelscript/pkg/syntax/modelica"
	"github.com/modelscript/modelscript/pkg/vfs"
)

// Context bundles the collaborators every library needs: the filesystem and
// the parser registry.  All state apart from the process logger and the
// annotation schema cache flows through here.
type Context struct {
	// FS is the filesystem collaborator.
	FS vfs.FileSystem
	// Parsers locates a parser by file extension.
	Parsers *syntax.Registry
}

// NewContext constructs a context backed by the host filesystem and the
// in-tree Modelica parser.
func NewContext() *Context {
	registry := syntax.NewRegistry()
	modelica.Register(registry)
	//
	return &Context{vfs.OS{}, registry}
}
