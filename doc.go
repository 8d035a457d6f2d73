//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

// Package keyrec implements a thin record layer on top of a cloud
// key-value store's item-level API. It translates native records into
// the store's typed attribute representation and back, using an explicit
// tagged value type instead of runtime shape inspection.
//
// # Records
//
// A record is a flat mapping from field name to a tagged value. The
// supported variants mirror the typed attributes of the store:
//
//	rec := keyrec.Record{
//	  "email": keyrec.Text("verner.pleishner@example.com"),
//	  "age":   keyrec.Int(64),
//	  "rate":  keyrec.Float(1.5),
//	  "tags":  keyrec.TextSet{"demo", "keyval"},
//	}
//
// There are no nulls, no nesting, no binary attributes and no mixed
// sets. Anything else fails the encoder with an UnsupportedType error.
//
// # Storage
//
// The service/ddb package implements the KeyVal trait for AWS DynamoDB:
//
//	db := ddb.Must(ddb.New(ddb.WithTable("users"), ddb.WithHashKey("email")))
//
//	user, err := db.Get(ctx, "verner.pleishner@example.com")
//	if user == nil && err == nil {
//	  user, err = db.Create(ctx, rec)
//	}
//
// Get uses a strongly consistent read and reports a missing record as an
// absent result, not an error. Create overwrites an existing record
// behind the same key.
package keyrec
