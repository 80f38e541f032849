package utils

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decode errors for required fields.
var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidField = errors.New("invalid required field")
)

// Object is a JSON object split into its raw fields, so each field can be
// decoded with its own strictness.
type Object map[string]json.RawMessage

// DecodeObject splits a JSON byte buffer into an Object.
func DecodeObject(data []byte) (Object, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Required reads a field whose absence or type mismatch fails the decode.
// Errors wrap ErrMissingField or ErrInvalidField.
func Required[T any](obj Object, key string) (T, error) {
	var v T
	raw, ok := obj[key]
	if !ok {
		return v, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("%w: %q: %v", ErrInvalidField, key, err)
	}
	return v, nil
}

// Optional reads a field that falls back to def when absent or of an
// unexpected type. It never fails.
func Optional[T any](obj Object, key string, def T) T {
	raw, ok := obj[key]
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}
