// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package voter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Shape identifies which of the accepted response layouts a dataset
// body used.
type Shape int

const (
	// ShapeUnknown is any parseable document that carries none of the
	// recognized lists. It yields zero records and no error.
	ShapeUnknown Shape = iota
	// ShapeEnvelope is {"success": <truthy>, "data": [...]}.
	ShapeEnvelope
	// ShapeList is a bare top-level array.
	ShapeList
	// ShapeData is {"data": [...]} without a truthy success flag.
	ShapeData
	// ShapeVoters is {"voters": [...]}.
	ShapeVoters
)

// String returns the lower-case shape name used in log attributes.
func (shape Shape) String() string {
	switch shape {
	case ShapeEnvelope:
		return "envelope"
	case ShapeList:
		return "list"
	case ShapeData:
		return "data"
	case ShapeVoters:
		return "voters"
	default:
		return "unknown"
	}
}

// ErrNullDocument is returned by [ParseDataset] for a body that is the
// JSON literal null. Unlike other unrecognized documents it cannot be
// inspected for fields at all, so it counts as a decode failure.
var ErrNullDocument = errors.New("dataset body is null")

// ParseDataset decodes a response body and normalizes its records.
// The layouts are tried in a fixed order: envelope, bare list, data
// list, voters list. A document matching none of them returns an empty
// (non-nil) slice with [ShapeUnknown] and a nil error. Malformed JSON
// and a null document return an error.
func ParseDataset(data []byte) ([]Record, Shape, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var document any
	if err := decoder.Decode(&document); err != nil {
		return nil, ShapeUnknown, fmt.Errorf("decoding dataset: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, ShapeUnknown, fmt.Errorf("decoding dataset: unexpected data after top-level value")
	}

	elements, shape, err := locateList(document)
	if err != nil {
		return nil, ShapeUnknown, err
	}

	records := make([]Record, len(elements))
	for index, element := range elements {
		// Non-object elements normalize to an all-absent record.
		object, _ := element.(map[string]any)
		records[index] = Normalize(object, index)
	}
	return records, shape, nil
}

// locateList picks the record list out of a decoded document.
func locateList(document any) ([]any, Shape, error) {
	switch typed := document.(type) {
	case nil:
		return nil, ShapeUnknown, ErrNullDocument
	case []any:
		return typed, ShapeList, nil
	case map[string]any:
		if list, ok := typed["data"].([]any); ok {
			if truthy(typed["success"]) {
				return list, ShapeEnvelope, nil
			}
			return list, ShapeData, nil
		}
		if list, ok := typed["voters"].([]any); ok {
			return list, ShapeVoters, nil
		}
	}
	return nil, ShapeUnknown, nil
}

// truthy reports whether a decoded JSON value counts as set for the
// envelope's success flag. Arrays and objects are truthy even when
// empty.
func truthy(value any) bool {
	switch value.(type) {
	case []any, map[string]any:
		return true
	}
	return fieldText(value) != ""
}
