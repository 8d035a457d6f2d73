//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

// Package ddbtest provides mocks of the DynamoDB API for unit testing
// of the storage layer.
package ddbtest

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/keyrec/keyrec/service/ddb"
)

// GetItem mocks the keyed read. It checks the key and the consistent
// read flag of the request and serves returnVal, a nil returnVal mocks
// a missing item.
func GetItem(
	expectKey map[string]types.AttributeValue,
	returnVal map[string]types.AttributeValue,
) ddb.DynamoDB {
	return &ddbGetItem{expectKey: expectKey, returnVal: returnVal}
}

type ddbGetItem struct {
	ddb.DynamoDB
	expectKey map[string]types.AttributeValue
	returnVal map[string]types.AttributeValue
}

func (mock *ddbGetItem) GetItem(ctx context.Context, input *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if !aws.ToBool(input.ConsistentRead) {
		return nil, errors.New("expected strongly consistent read.")
	}

	if !reflect.DeepEqual(mock.expectKey, input.Key) {
		return nil, errors.New("unexpected key.")
	}

	if mock.returnVal == nil {
		return &dynamodb.GetItemOutput{}, nil
	}

	return &dynamodb.GetItemOutput{Item: mock.returnVal}, nil
}

// PutItem mocks the keyed write, checking the item against expectVal.
func PutItem(
	expectVal map[string]types.AttributeValue,
) ddb.DynamoDB {
	return &ddbPutItem{expectVal: expectVal}
}

type ddbPutItem struct {
	ddb.DynamoDB
	expectVal map[string]types.AttributeValue
}

func (mock *ddbPutItem) PutItem(ctx context.Context, input *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if !reflect.DeepEqual(mock.expectVal, input.Item) {
		return nil, errors.New("unexpected entity.")
	}

	return &dynamodb.PutItemOutput{}, nil
}

// Fault mocks the service failing both operations with err.
func Fault(err error) ddb.DynamoDB {
	return &ddbFault{err: err}
}

type ddbFault struct {
	ddb.DynamoDB
	err error
}

func (mock *ddbFault) GetItem(ctx context.Context, input *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return nil, mock.err
}

func (mock *ddbFault) PutItem(ctx context.Context, input *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return nil, mock.err
}

// KeyVal mocks a single-table store keyed by the hashKey attribute,
// serving reads from what writes put there. Safe for concurrent use.
func KeyVal(hashKey string) *InMemory {
	return &InMemory{
		hashKey: hashKey,
		items:   map[string]map[string]types.AttributeValue{},
	}
}

type InMemory struct {
	ddb.DynamoDB
	hashKey string
	mu      sync.Mutex
	items   map[string]map[string]types.AttributeValue
}

func (mock *InMemory) GetItem(ctx context.Context, input *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	key, ok := input.Key[mock.hashKey].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("unexpected key.")
	}

	mock.mu.Lock()
	defer mock.mu.Unlock()

	item, exists := mock.items[key.Value]
	if !exists {
		return &dynamodb.GetItemOutput{}, nil
	}

	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (mock *InMemory) PutItem(ctx context.Context, input *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	key, ok := input.Item[mock.hashKey].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("unexpected entity.")
	}

	mock.mu.Lock()
	defer mock.mu.Unlock()

	mock.items[key.Value] = input.Item
	return &dynamodb.PutItemOutput{}, nil
}
