//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

// Package ddb implements the keyrec.KeyVal trait for AWS DynamoDB.
// One Storage instance serves one logical table, each accessor call maps
// to exactly one underlying store request.
package ddb

import (
	"github.com/fogfish/opts"

	"github.com/keyrec/keyrec"
)

// Storage is a record store over a single DynamoDB table. Instances are
// created once at process start and are safe for concurrent use, there
// is no shared mutable state between calls.
type Storage struct {
	service DynamoDB
	table   string
	codec   codec
}

var _ keyrec.KeyVal = (*Storage)(nil)

// Must constraint for api factory
func Must(db *Storage, err error) *Storage {
	if err != nil {
		panic(err)
	}

	return db
}

// New creates a client to the DynamoDB table. The AWS client is taken
// from the options or bootstrapped from the default config chain.
func New(opt ...Option) (*Storage, error) {
	conf := optsDefault()
	if err := opts.Apply(&conf, opt); err != nil {
		return nil, err
	}

	if conf.service == nil {
		if err := optsDefaultService(&conf); err != nil {
			return nil, err
		}
	}

	if conf.table == "" {
		return nil, errUndefinedTable.New(nil)
	}

	return &Storage{
		service: conf.service,
		table:   conf.table,
		codec:   codec{hashKey: conf.hashKey},
	}, nil
}
