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
	"path"
	"sort"
	"strings"

	"github.com/modelscript/modelscript/pkg/syntax"
	"github.com/modelscript/modelscript/pkg/syntax/modelica"
	"github.com/modelscript/modelscript/pkg/vfs"
)

// memFS is an in-memory filesystem for tests: a map of file paths to
// contents, plus explicitly declared (possibly empty) directories.
// Directory listings are sorted for determinism.
type memFS struct {
	files map[string]string
	dirs  map[string]bool
}

func newMemFS(files map[string]string, dirs ...string) *memFS {
	fs := &memFS{files, make(map[string]bool)}
	//
	for _, dir := range dirs {
		fs.dirs[path.Clean(dir)] = true
	}
	// Parent directories of every file exist implicitly.
	for file := range files {
		for dir := path.Dir(file); dir != "/" && dir != "."; dir = path.Dir(dir) {
			fs.dirs[dir] = true
		}
	}
	//
	return fs
}

func (p *memFS) Resolve(name string) (string, error) {
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	//
	return path.Clean(name), nil
}

func (p *memFS) Stat(name string) (vfs.Info, error) {
	if _, ok := p.files[name]; ok {
		return vfs.Info{IsFile: true}, nil
	}
	//
	if p.dirs[name] {
		return vfs.Info{IsDirectory: true}, nil
	}
	//
	return vfs.Info{}, &vfs.Error{Path: name, Cause: fmt.Errorf("no such file or directory")}
}

func (p *memFS) Read(name string) ([]byte, error) {
	if content, ok := p.files[name]; ok {
		return []byte(content), nil
	}
	//
	return nil, &vfs.Error{Path: name, Cause: fmt.Errorf("no such file")}
}

func (p *memFS) Join(a string, b string) string {
	return path.Join(a, b)
}

func (p *memFS) ExtName(name string) string {
	return path.Ext(name)
}

func (p *memFS) ReadDir(name string) ([]vfs.Entry, error) {
	seen := make(map[string]vfs.Entry)
	//
	for file := range p.files {
		if path.Dir(file) == name {
			base := path.Base(file)
			seen[base] = vfs.Entry{Name: base, IsFile: true}
		}
	}
	//
	for dir := range p.dirs {
		if path.Dir(dir) == name {
			base := path.Base(dir)
			seen[base] = vfs.Entry{Name: base, IsDirectory: true}
		}
	}
	//
	var entries []vfs.Entry
	//
	for _, entry := range seen {
		entries = append(entries, entry)
	}
	//
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	//
	return entries, nil
}

// memContext builds a context over an in-memory filesystem.
func memContext(files map[string]string, dirs ...string) *Context {
	registry := syntax.NewRegistry()
	modelica.Register(registry)
	//
	return &Context{newMemFS(files, dirs...), registry}
}
