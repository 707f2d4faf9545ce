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

// Package swrl contains constants of the Semantic Web Rule Language.
package swrl

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2003/11/swrl#`
	Prefix = `swrl:`
)

const (
	Imp                      = NS + `Imp`
	Variable                 = NS + `Variable`
	AtomList                 = NS + `AtomList`
	ClassAtom                = NS + `ClassAtom`
	DataRangeAtom            = NS + `DataRangeAtom`
	IndividualPropertyAtom   = NS + `IndividualPropertyAtom`
	DatavaluedPropertyAtom   = NS + `DatavaluedPropertyAtom`
	SameIndividualAtom       = NS + `SameIndividualAtom`
	DifferentIndividualsAtom = NS + `DifferentIndividualsAtom`
	BuiltinAtom              = NS + `BuiltinAtom`
	Builtin                  = NS + `Builtin`

	Head              = NS + `head`
	Body              = NS + `body`
	ClassPredicate    = NS + `classPredicate`
	DataRange         = NS + `dataRange`
	PropertyPredicate = NS + `propertyPredicate`
	BuiltinProperty   = NS + `builtin`
	Arguments         = NS + `arguments`
	Argument1         = NS + `argument1`
	Argument2         = NS + `argument2`
)
