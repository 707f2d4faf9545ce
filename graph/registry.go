// Copyright 2014 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graph

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrStoreNotRegistered    = errors.New("graph: store is not registered")
	ErrOperationNotSupported = errors.New("graph: operation is not supported")
	ErrDatabaseExists        = errors.New("graph: database already exists")
	ErrNotPersistent         = errors.New("graph: store is not persistent")
)

var storeRegistry = make(map[string]Registration)

type NewStoreFunc func(string, Options) (Graph, error)
type InitStoreFunc func(string, Options) error

type Registration struct {
	NewFunc      NewStoreFunc
	InitFunc     InitStoreFunc
	IsPersistent bool
}

// RegisterStore makes a store backend available by name. It panics on duplicates.
func RegisterStore(name string, register Registration) {
	if register.NewFunc == nil {
		panic("NewFunc must not be nil")
	}
	if _, found := storeRegistry[name]; found {
		panic(fmt.Sprintf("already registered store %q", name))
	}
	storeRegistry[name] = register
}

func NewStore(name string, dbpath string, opts Options) (Graph, error) {
	r, registered := storeRegistry[name]
	if !registered {
		return nil, fmt.Errorf("%w: %q", ErrStoreNotRegistered, name)
	}
	return r.NewFunc(dbpath, opts)
}

func InitStore(name string, dbpath string, opts Options) error {
	r, registered := storeRegistry[name]
	if !registered {
		return fmt.Errorf("%w: %q", ErrStoreNotRegistered, name)
	} else if !r.IsPersistent {
		return ErrNotPersistent
	} else if r.InitFunc == nil {
		return ErrOperationNotSupported
	}
	return r.InitFunc(dbpath, opts)
}

func IsRegistered(name string) bool {
	_, ok := storeRegistry[name]
	return ok
}

func IsPersistent(name string) bool {
	return storeRegistry[name].IsPersistent
}

func Stores() []string {
	t := make([]string, 0, len(storeRegistry))
	for n := range storeRegistry {
		t = append(t, n)
	}
	sort.Strings(t)
	return t
}
