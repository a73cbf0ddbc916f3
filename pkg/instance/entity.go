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
	"strings"

	"github.com/modelscript/modelscript/pkg/ast"
	"github.com/modelscript/modelscript/pkg/modification"
	"github.com/modelscript/modelscript/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// packageFile is the file carrying the class definition of a structured
// (directory-form) package.
const packageFile = "package.mo"

// Entity mirrors a package or file on disk.  It owns its sub-entities and
// the AST parsed from its source; instance nodes referencing that AST must
// cache anything they need beyond the entity's lifetime.
type Entity struct {
	// Owning library (non-owning back-reference).
	library *Library
	// Enclosing scope: the parent entity, or the library at the root.
	parent Scope
	// Absolute, normalised path of this entity.
	path string
	// Indicates the file form rather than the directory form.
	unstructured bool
	// Parsed file content (owned); nil for a plain directory.
	stored *ast.StoredDefinition
	// First class definition of the parsed file, when any.
	definition *ast.ClassDefinition
	// Name of this entity.
	name string
	// Sub-entities in filesystem order (owned).
	children []*Entity
	// Class content of this entity (owned).
	class *ClassInstance
}

// loadEntity maps a filesystem path to an entity tree.
func loadEntity(library *Library, parent Scope, path string) (*Entity, error) {
	fs := library.context.FS
	//
	resolved, err := fs.Resolve(path)
	if err != nil {
		return nil, err
	}
	//
	info, err := fs.Stat(resolved)
	if err != nil {
		return nil, err
	}
	//
	p := &Entity{library: library, parent: parent, path: resolved}
	//
	switch {
	case info.IsFile && fs.ExtName(resolved) == ".mo":
		p.unstructured = true
		//
		if err := p.parse(resolved); err != nil {
			return nil, err
		}
	case info.IsDirectory:
		entries, err := fs.ReadDir(resolved)
		if err != nil {
			return nil, err
		}
		//
		for _, entry := range entries {
			if entry.Name == packageFile && entry.IsFile {
				if err := p.parse(fs.Join(resolved, entry.Name)); err != nil {
					return nil, err
				}
				//
				break
			}
		}
		//
		for _, entry := range entries {
			switch {
			case entry.IsDirectory:
			case entry.IsFile && entry.Name != packageFile && fs.ExtName(entry.Name) == ".mo":
			default:
				continue
			}
			//
			child, err := loadEntity(library, p, fs.Join(resolved, entry.Name))
			if err != nil {
				return nil, err
			}
			//
			p.children = append(p.children, child)
		}
	}
	//
	p.name = entityName(resolved, p.definition, library.context.FS.ExtName(resolved))
	//
	if p.definition != nil {
		p.class = newLongClassInstance(p, p.definition, modification.Empty())
	} else {
		p.class = newSyntheticPackage(p, p.name)
	}
	//
	log.Debugf("loaded entity %q from %q", p.name, p.path)
	//
	return p, nil
}

// parse reads and parses a Modelica file, attaching its first class
// definition to this entity.
func (p *Entity) parse(path string) error {
	fs := p.library.context.FS
	//
	bytes, err := fs.Read(path)
	if err != nil {
		return err
	}
	//
	parser, err := p.library.context.Parsers.ParserFor(fs.ExtName(path))
	if err != nil {
		return err
	}
	//
	file := source.NewSourceFile(path, bytes)
	// The hint approximates the parse buffer at twice the source size.
	tree, err := parser.Parse(file, uint(len(bytes))*2)
	if err != nil {
		return err
	}
	//
	stored, err := ast.StoredDefinitionFromSyntax(tree.RootNode())
	if err != nil {
		return err
	}
	//
	p.stored = stored
	p.definition = stored.FirstClass()
	//
	return nil
}

// entityName derives an entity's name from its class definition, falling
// back to the basename of its path.
func entityName(path string, definition *ast.ClassDefinition, ext string) string {
	if definition != nil {
		return definition.Name()
	}
	//
	base := path
	//
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	//
	return strings.TrimSuffix(base, ext)
}

// Name of this entity.
func (p *Entity) Name() string {
	return p.name
}

// Path returns the absolute, normalised path of this entity.
func (p *Entity) Path() string {
	return p.path
}

// Unstructured reports the file form rather than the directory form.
func (p *Entity) Unstructured() bool {
	return p.unstructured
}

// Definition returns the parsed class definition, when any.
func (p *Entity) Definition() *ast.ClassDefinition {
	return p.definition
}

// StoredDefinition returns the parsed file content, when any.
func (p *Entity) StoredDefinition() *ast.StoredDefinition {
	return p.stored
}

// Children returns the sub-entities in filesystem order.
func (p *Entity) Children() []*Entity {
	return p.children
}

// ClassInstance returns the class content of this entity.
func (p *Entity) ClassInstance() *ClassInstance {
	return p.class
}

// Parent returns the enclosing scope.
func (p *Entity) Parent() Scope {
	return p.parent
}

// Elements returns the visible elements of this entity: its sub-entities
// followed by the class' own elements, such that sub-packages shadow
// inherited content.
func (p *Entity) Elements() []Element {
	var elements []Element
	//
	for _, child := range p.children {
		elements = append(elements, child)
	}
	//
	if p.class != nil {
		elements = append(elements, p.class.Elements()...)
	}
	//
	return elements
}

// resolveLocal scans sub-entities before the class' own elements.
func (p *Entity) resolveLocal(id string) Element {
	for _, child := range p.children {
		if child.name == id {
			return child
		}
	}
	//
	if p.class != nil {
		return p.class.resolveLocal(id)
	}
	//
	return nil
}

// Instantiate instantiates this entity's class content, then every
// sub-entity.
func (p *Entity) Instantiate() error {
	if p.class != nil {
		if err := p.class.Instantiate(); err != nil {
			return err
		}
	}
	//
	for _, child := range p.children {
		if err := child.Instantiate(); err != nil {
			return err
		}
	}
	//
	return nil
}
