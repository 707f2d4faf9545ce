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

// Package xsd contains constants of the XML Schema datatypes supported by OWL 2.
package xsd

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2001/XMLSchema#`
	Prefix = `xsd:`
)

const (
	String             = NS + `string`
	NormalizedString   = NS + `normalizedString`
	Token              = NS + `token`
	Language           = NS + `language`
	Name               = NS + `Name`
	NCName             = NS + `NCName`
	NMTOKEN            = NS + `NMTOKEN`
	Boolean            = NS + `boolean`
	Decimal            = NS + `decimal`
	Integer            = NS + `integer`
	NonNegativeInteger = NS + `nonNegativeInteger`
	NonPositiveInteger = NS + `nonPositiveInteger`
	PositiveInteger    = NS + `positiveInteger`
	NegativeInteger    = NS + `negativeInteger`
	Long               = NS + `long`
	Int                = NS + `int`
	Short              = NS + `short`
	Byte               = NS + `byte`
	UnsignedLong       = NS + `unsignedLong`
	UnsignedInt        = NS + `unsignedInt`
	UnsignedShort      = NS + `unsignedShort`
	UnsignedByte       = NS + `unsignedByte`
	Double             = NS + `double`
	Float              = NS + `float`
	HexBinary          = NS + `hexBinary`
	Base64Binary       = NS + `base64Binary`
	AnyURI             = NS + `anyURI`
	DateTime           = NS + `dateTime`
	DateTimeStamp      = NS + `dateTimeStamp`
)

// Constraining facets
const (
	MinInclusive   = NS + `minInclusive`
	MaxInclusive   = NS + `maxInclusive`
	MinExclusive   = NS + `minExclusive`
	MaxExclusive   = NS + `maxExclusive`
	Length         = NS + `length`
	MinLength      = NS + `minLength`
	MaxLength      = NS + `maxLength`
	Pattern        = NS + `pattern`
	LangRange      = NS + `langRange`
	TotalDigits    = NS + `totalDigits`
	FractionDigits = NS + `fractionDigits`
)

// Datatypes lists all datatypes of the OWL 2 datatype map.
var Datatypes = []string{
	String, NormalizedString, Token, Language, Name, NCName, NMTOKEN,
	Boolean, Decimal, Integer, NonNegativeInteger, NonPositiveInteger,
	PositiveInteger, NegativeInteger, Long, Int, Short, Byte,
	UnsignedLong, UnsignedInt, UnsignedShort, UnsignedByte,
	Double, Float, HexBinary, Base64Binary, AnyURI, DateTime, DateTimeStamp,
}
