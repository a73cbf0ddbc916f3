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
	log "github.com/sirupsen/logrus"
)

// Library owns one root entity and the context through which it reaches the
// filesystem and parsers.  A library is loaded and instantiated exactly
// once; both transitions are monotonic.
type Library struct {
	// Collaborators of this library.
	context *Context
	// Filesystem root of this library.
	path string
	// Root entity, once loaded (owned).
	root *Entity
	// Indicates the entity tree has been built.
	loaded bool
	// Indicates the entity tree has been instantiated.
	instantiated bool
}

// NewLibrary constructs a library over the given filesystem root.  Nothing
// is read until Load.
func NewLibrary(context *Context, path string) *Library {
	return &Library{context: context, path: path}
}

// Context returns the collaborators of this library.
func (p *Library) Context() *Context {
	return p.context
}

// Root returns the root entity, or nil before loading.
func (p *Library) Root() *Entity {
	return p.root
}

// Load builds the entity tree by walking the filesystem root.  Repeated
// calls are no-ops.
func (p *Library) Load() error {
	if p.loaded {
		return nil
	}
	//
	log.Debugf("loading library from %q", p.path)
	//
	root, err := loadEntity(p, p, p.path)
	if err != nil {
		return err
	}
	//
	p.root = root
	p.loaded = true
	//
	return nil
}

// Instantiate loads the library and instantiates every entity.  Repeated
// calls are no-ops.
func (p *Library) Instantiate() error {
	if p.instantiated {
		return nil
	}
	//
	if err := p.Load(); err != nil {
		return err
	}
	//
	if err := p.root.Instantiate(); err != nil {
		return err
	}
	//
	p.instantiated = true
	//
	return nil
}

// Parent returns nil; the library is the root scope.
func (p *Library) Parent() Scope {
	return nil
}

// resolveLocal matches the root entity's name.
func (p *Library) resolveLocal(id string) Element {
	if p.root != nil && p.root.name == id {
		return p.root
	}
	//
	return nil
}

// Resolve answers a name query against the library root.
func (p *Library) Resolve(id string) (Element, error) {
	return ResolveSimpleName(p, id, false, false)
}
