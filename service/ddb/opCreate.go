//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/keyrec/keyrec"
	"github.com/keyrec/keyrec/future"
)

// Create writes the record and resolves with it unchanged, the store's
// response is discarded. The write is unconditional, an existing record
// behind the same key is silently overwritten. Encoder failures
// propagate synchronously, before any store request is made.
func (db *Storage) Create(ctx context.Context, rec keyrec.Record) (keyrec.Record, error) {
	gen, err := db.codec.Encode(rec)
	if err != nil {
		return nil, err
	}

	req := &dynamodb.PutItemInput{
		Item:      gen,
		TableName: aws.String(db.table),
	}

	_, err = future.Send(future.Func(func() (*dynamodb.PutItemOutput, error) {
		return db.service.PutItem(ctx, req)
	})).Await(ctx)
	if err != nil {
		metricCreateFailed.Inc()
		return nil, errServiceIO.New(err)
	}
	metricCreate.Inc()

	return rec, nil
}
