//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

package ddb

import (
	"fmt"

	"github.com/fogfish/faults"
)

const (
	errServiceIO      = faults.Type("service i/o failed")
	errInvalidKey     = faults.Type("invalid key")
	errInvalidEntity  = faults.Type("invalid entity")
	errUndefinedTable = faults.Type("undefined table")
)

// errUnsupportedType marks a record field the typed attribute format
// cannot carry. It is raised synchronously by the encoder and recovered
// by callers through the UnsupportedType marker.
func errUnsupportedType(field string, kind string) error {
	return &unsupportedType{field: field, kind: kind}
}

type unsupportedType struct {
	field string
	kind  string
}

func (e *unsupportedType) Error() string {
	return fmt.Sprintf("%s unsupported (%s)", e.kind, e.field)
}

func (e *unsupportedType) UnsupportedType() string { return e.field }
