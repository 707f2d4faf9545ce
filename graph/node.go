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

import "github.com/cayleygraph/quad"

// IsIRI checks if the value is an IRI node.
func IsIRI(v quad.Value) bool {
	_, ok := v.(quad.IRI)
	return ok
}

// IsBNode checks if the value is a blank node.
func IsBNode(v quad.Value) bool {
	_, ok := v.(quad.BNode)
	return ok
}

// IsResource checks if the value is either an IRI or a blank node.
func IsResource(v quad.Value) bool {
	return IsIRI(v) || IsBNode(v)
}

// IsLiteral checks if the value is a literal.
func IsLiteral(v quad.Value) bool {
	switch v.(type) {
	case nil, quad.IRI, quad.BNode:
		return false
	}
	return true
}
