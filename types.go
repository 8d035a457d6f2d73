//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

//
// The file declares public types of the library
//

package keyrec

import (
	"context"

	"github.com/fogfish/curie/v2"
)

// ID is the partition key of a record, a compact resource identifier.
// The store keeps it as a plain text-scalar attribute.
type ID = curie.IRI

// Value is the tagged variant carried by record fields. The variant set
// mirrors the typed attributes of the store: numeric scalar, text scalar,
// string set and number set. The type is sealed, values are constructed
// from the concrete variants below.
type Value interface{ isValue() }

// Int is a numeric scalar holding a whole number.
type Int int64

// Float is a numeric scalar holding a fractional number.
type Float float64

// Text is a text scalar.
type Text string

// TextSet is a homogeneous set of text values. Duplicates are discarded
// on encoding, set semantics, not list semantics.
type TextSet []string

// NumberSet is a homogeneous set of numeric values.
type NumberSet []float64

func (Int) isValue()       {}
func (Float) isValue()     {}
func (Text) isValue()      {}
func (TextSet) isValue()   {}
func (NumberSet) isValue() {}

// Record is a native record, a transient mapping from field name to a
// tagged value. Records are built by the caller and by the decoder, no
// state persists between store calls.
type Record map[string]Value

// Getter defines read by key notation. A missing record is an absent
// result (nil Record, nil error), not an error.
type Getter interface {
	Get(context.Context, ID) (Record, error)
}

// Writer defines the write notation. Create resolves with the original
// record unchanged and silently overwrites an existing record behind the
// same key.
type Writer interface {
	Create(context.Context, Record) (Record, error)
}

// KeyVal is the key-value trait to access records.
type KeyVal interface {
	Getter
	Writer
}
