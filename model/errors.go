// Copyright 2017 The Cayley Authors. All rights reserved.
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

package model

import (
	"errors"
	"fmt"

	"github.com/cayleygraph/quad"
)

var (
	// ErrIllegalArgument is returned for nil or type-incompatible values.
	ErrIllegalArgument = errors.New("illegal argument")
	// ErrIllegalState is returned when the graph shape does not allow the operation.
	ErrIllegalState = errors.New("illegal state")
)

// CascadeError is returned when deleting an annotation that carries its own annotations.
type CascadeError struct {
	Annotation quad.Quad
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("annotation %v %v %v has sub-annotations, clear them first",
		e.Annotation.Subject, e.Annotation.Predicate, e.Annotation.Object)
}

func (e *CascadeError) Unwrap() error { return ErrIllegalState }

func illegalArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrIllegalArgument}, args...)...)
}
