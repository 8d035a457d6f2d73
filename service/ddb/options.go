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
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/fogfish/opts"
)

// DynamoDB declares interface of original AWS DynamoDB API used by the library
type DynamoDB interface {
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Option type to configure the storage
type Option = opts.Option[Options]

// Config Options
type Options struct {
	table   string
	hashKey string
	service DynamoDB
}

var (
	// WithTable defines the physical dynamodb table
	WithTable = opts.ForName[Options, string]("table")

	// WithHashKey defines custom name of the partition key attribute,
	// default one is "id"
	WithHashKey = opts.ForName[Options, string]("hashKey")

	// WithService sets DynamoDB client for the storage
	WithService = opts.ForType[Options, DynamoDB]()

	// WithConfig configures storage's DynamoDB client from the aws.Config
	WithConfig = opts.FMap(optsFromConfig)
)

// NewConfig creates Options with default values
func optsDefault() Options {
	return Options{
		hashKey: "id",
	}
}

func optsDefaultService(c *Options) error {
	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return err
	}
	return optsFromConfig(c, cfg)
}

func optsFromConfig(c *Options, cfg aws.Config) error {
	if c.service == nil {
		c.service = dynamodb.NewFromConfig(cfg)
	}
	return nil
}
