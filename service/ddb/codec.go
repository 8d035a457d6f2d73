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
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/keyrec/keyrec"
)

// codec translates records between native tagged values and the typed
// attribute representation of the store. Both directions are pure, the
// decoder is the left inverse of the encoder up to the decimal point
// policy of decodeNumber.
type codec struct {
	hashKey string
}

// EncodeKey builds the key attribute from the identifier
func (c codec) EncodeKey(id keyrec.ID) (map[string]types.AttributeValue, error) {
	if id == "" {
		return nil, errInvalidKey.New(fmt.Errorf("identifier cannot be empty"))
	}

	return map[string]types.AttributeValue{
		c.hashKey: &types.AttributeValueMemberS{Value: string(id)},
	}, nil
}

// Encode record to typed attributes
func (c codec) Encode(rec keyrec.Record) (map[string]types.AttributeValue, error) {
	gen := make(map[string]types.AttributeValue, len(rec))
	for field, val := range rec {
		attr, err := encodeValue(field, val)
		if err != nil {
			return nil, err
		}
		gen[field] = attr
	}

	return gen, nil
}

func encodeValue(field string, val keyrec.Value) (types.AttributeValue, error) {
	switch v := val.(type) {
	case keyrec.Int:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(v), 10)}, nil
	case keyrec.Float:
		return &types.AttributeValueMemberN{Value: formatNumber(float64(v))}, nil
	case keyrec.Text:
		return &types.AttributeValueMemberS{Value: string(v)}, nil
	case keyrec.TextSet:
		if len(v) == 0 {
			return nil, errUnsupportedType(field, "binary set")
		}
		return &types.AttributeValueMemberSS{Value: unique(v)}, nil
	case keyrec.NumberSet:
		if len(v) == 0 {
			return nil, errUnsupportedType(field, "binary set")
		}
		seq := make([]string, len(v))
		for i, f := range v {
			seq[i] = formatNumber(f)
		}
		return &types.AttributeValueMemberNS{Value: unique(seq)}, nil
	default:
		return nil, errUnsupportedType(field, "binary type")
	}
}

// Decode typed attributes to record
func (c codec) Decode(gen map[string]types.AttributeValue) (keyrec.Record, error) {
	rec := make(keyrec.Record, len(gen))
	for field, attr := range gen {
		val, err := decodeValue(field, attr)
		if err != nil {
			return nil, err
		}
		rec[field] = val
	}

	return rec, nil
}

func decodeValue(field string, attr types.AttributeValue) (keyrec.Value, error) {
	switch v := attr.(type) {
	case *types.AttributeValueMemberN:
		return decodeNumber(field, v.Value)
	case *types.AttributeValueMemberS:
		return keyrec.Text(v.Value), nil
	case *types.AttributeValueMemberSS:
		return keyrec.TextSet(v.Value), nil
	case *types.AttributeValueMemberNS:
		seq := make(keyrec.NumberSet, len(v.Value))
		for i, x := range v.Value {
			f, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q at %s: %w", x, field, err)
			}
			seq[i] = f
		}
		return seq, nil
	default:
		return nil, errUnsupportedType(field, "binary type")
	}
}

// Numeric scalars whose text carries a decimal point decode as Float,
// anything else as Int. The policy is deliberate: a whole number stored
// as "10.0" comes back as the equal-valued float, not an int.
func decodeNumber(field string, text string) (keyrec.Value, error) {
	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at %s: %w", text, field, err)
		}
		return keyrec.Float(f), nil
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q at %s: %w", text, field, err)
	}
	return keyrec.Int(i), nil
}

// shortest text that round-trips the value, 1.50 becomes "1.5" and
// 10.0 becomes "10"
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// set semantics, first occurrence wins
func unique(seq []string) []string {
	out := make([]string, 0, len(seq))
	seen := make(map[string]struct{}, len(seq))
	for _, x := range seq {
		if _, exists := seen[x]; exists {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}

	return out
}
