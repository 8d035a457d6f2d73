//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

package ddb

import (
	"errors"
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/fogfish/it"

	"github.com/keyrec/keyrec"
)

var testCodec = codec{hashKey: "id"}

func TestEncodeScalars(t *testing.T) {
	gen, err := testCodec.Encode(keyrec.Record{
		"age":   keyrec.Int(64),
		"rate":  keyrec.Float(1.5),
		"name":  keyrec.Text("Verner Pleishner"),
		"whole": keyrec.Float(10),
	})

	it.Ok(t).
		IfNil(err).
		If(gen["age"].(*types.AttributeValueMemberN).Value).Equal("64").
		If(gen["rate"].(*types.AttributeValueMemberN).Value).Equal("1.5").
		If(gen["name"].(*types.AttributeValueMemberS).Value).Equal("Verner Pleishner").
		If(gen["whole"].(*types.AttributeValueMemberN).Value).Equal("10")
}

func TestEncodeSetsDeduplicate(t *testing.T) {
	gen, err := testCodec.Encode(keyrec.Record{
		"tags":   keyrec.TextSet{"a", "a", "b"},
		"scores": keyrec.NumberSet{1.50, 1.5, 7},
	})

	it.Ok(t).
		IfNil(err).
		IfTrue(reflect.DeepEqual(
			gen["tags"],
			types.AttributeValue(&types.AttributeValueMemberSS{Value: []string{"a", "b"}}),
		)).
		IfTrue(reflect.DeepEqual(
			gen["scores"],
			types.AttributeValue(&types.AttributeValueMemberNS{Value: []string{"1.5", "7"}}),
		))
}

func TestEncodeNumberFormatting(t *testing.T) {
	for expect, val := range map[string]keyrec.Value{
		"123":  keyrec.Int(123),
		"-7":   keyrec.Int(-7),
		"1.5":  keyrec.Float(1.50),
		"10":   keyrec.Float(10.0),
		"0.25": keyrec.Float(0.25),
	} {
		gen, err := encodeValue("n", val)

		it.Ok(t).
			IfNil(err).
			If(gen.(*types.AttributeValueMemberN).Value).Equal(expect)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	for _, rec := range []keyrec.Record{
		{"tags": keyrec.TextSet{}},
		{"scores": keyrec.NumberSet{}},
		{"blob": nil},
	} {
		_, err := testCodec.Encode(rec)

		var unsupported interface{ UnsupportedType() string }
		it.Ok(t).
			IfTrue(err != nil).
			IfTrue(errors.As(err, &unsupported))
	}
}

func TestDecodeNumberPolicy(t *testing.T) {
	// a decimal point in the stored text forces a float, even for a
	// whole number
	for text, expect := range map[string]keyrec.Value{
		"64":   keyrec.Int(64),
		"-7":   keyrec.Int(-7),
		"1.5":  keyrec.Float(1.5),
		"10.0": keyrec.Float(10),
	} {
		val, err := decodeValue("n", &types.AttributeValueMemberN{Value: text})

		it.Ok(t).
			IfNil(err).
			If(val).Equal(expect)
	}
}

func TestDecodeMalformedNumber(t *testing.T) {
	for _, text := range []string{"ten", "1.5.0", "1e5"} {
		_, err := decodeValue("n", &types.AttributeValueMemberN{Value: text})

		it.Ok(t).IfTrue(err != nil)
	}
}

func TestDecodeUnsupportedAttribute(t *testing.T) {
	for _, attr := range []types.AttributeValue{
		&types.AttributeValueMemberBOOL{Value: true},
		&types.AttributeValueMemberB{Value: []byte("beef")},
		&types.AttributeValueMemberNULL{Value: true},
		&types.AttributeValueMemberM{},
		&types.AttributeValueMemberL{},
	} {
		_, err := decodeValue("blob", attr)

		it.Ok(t).IfTrue(err != nil)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	rec := keyrec.Record{
		"email":  keyrec.Text("verner.pleishner@example.com"),
		"age":    keyrec.Int(64),
		"rate":   keyrec.Float(1.5),
		"tags":   keyrec.TextSet{"demo", "keyval"},
		"scores": keyrec.NumberSet{3.5, 7.25},
	}

	gen, err := testCodec.Encode(rec)
	it.Ok(t).IfNil(err)

	out, err := testCodec.Decode(gen)
	it.Ok(t).
		IfNil(err).
		IfTrue(reflect.DeepEqual(rec, out))
}

func TestCodecRoundTripAsymmetry(t *testing.T) {
	// a whole Float scalar comes back as the equal-valued Int, the
	// accepted consequence of the decimal point policy
	gen, err := testCodec.Encode(keyrec.Record{"n": keyrec.Float(10)})
	it.Ok(t).IfNil(err)

	out, err := testCodec.Decode(gen)
	it.Ok(t).
		IfNil(err).
		If(out["n"]).Equal(keyrec.Int(10))
}

func TestEncodeKeyEmpty(t *testing.T) {
	_, err := testCodec.EncodeKey("")

	it.Ok(t).IfTrue(err != nil)
}
