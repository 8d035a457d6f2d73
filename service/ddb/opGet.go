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

// Get fetches the record behind the identifier using a strongly
// consistent read. A missing record is an absent result (nil, nil),
// not an error.
func (db *Storage) Get(ctx context.Context, id keyrec.ID) (keyrec.Record, error) {
	gen, err := db.codec.EncodeKey(id)
	if err != nil {
		return nil, err
	}

	req := &dynamodb.GetItemInput{
		Key:            gen,
		TableName:      aws.String(db.table),
		ConsistentRead: aws.Bool(true),
	}

	val, err := future.Send(future.Func(func() (*dynamodb.GetItemOutput, error) {
		return db.service.GetItem(ctx, req)
	})).Await(ctx)
	if err != nil {
		metricGetFailed.Inc()
		return nil, errServiceIO.New(err)
	}
	metricGet.Inc()

	if val.Item == nil {
		return nil, nil
	}

	rec, err := db.codec.Decode(val.Item)
	if err != nil {
		return nil, errInvalidEntity.New(err)
	}

	return rec, nil
}
