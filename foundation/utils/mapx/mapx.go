// File: mapx.go
// Title: Map Utilities
// Description: Generic map helpers and decoding of loosely typed maps into
//              structs through mapstructure.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-12 v0.2.0: Added Decode, trimmed the unused helpers
// - 2026-10-18 v0.2.1: EmptyFalsyText option for weakly typed string fields

package mapx

import (
	"cmp"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/mitchellh/mapstructure"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
)

// Keys returns a slice of all keys from the map
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// Merge combines maps; later maps win on key conflicts
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	result := make(map[K]V)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// DecodeOptions controls Decode
type DecodeOptions struct {
	// TagName is the struct tag to read field names from (default "mapstructure")
	TagName string

	// WeaklyTyped allows conversions such as "16" -> 16
	WeaklyTyped bool

	// ErrorUnused fails on keys that match no field
	ErrorUnused bool

	// EmptyFalsyText decodes false and numeric zero into "" for string
	// fields instead of "0", so weak typing cannot turn them into text
	EmptyFalsyText bool
}

var errSkipHook = errors.New("hook does not apply")

// Decode copies a loosely typed map (as produced by YAML, TOML or JSON
// decoding) into the struct pointed to by out. Fields implementing
// encoding.TextUnmarshaler are filled from strings and numbers.
func Decode(input interface{}, out interface{}, opts DecodeOptions) error {
	tag := opts.TagName
	if tag == "" {
		tag = "mapstructure"
	}

	var hooks []mapstructure.DecodeHookFunc
	if opts.EmptyFalsyText {
		hooks = append(hooks, falsyTextHookFunc())
	}
	hooks = append(hooks, jsonNumberHookFunc(), textUnmarshalerHookFunc())

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          tag,
		Result:           out,
		WeaklyTypedInput: opts.WeaklyTyped,
		ErrorUnused:      opts.ErrorUnused,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(hooks...),
	})
	if err != nil {
		return mdwerror.Wrap(err, "failed to create decoder").
			WithCode(mdwerror.CodeInternal).
			WithOperation("mapx.Decode")
	}

	if err := dec.Decode(input); err != nil {
		return mdwerror.Wrap(err, "failed to decode map").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("mapx.Decode")
	}
	return nil
}

// jsonNumberHookFunc turns json.Number into int64 or float64 for numeric targets
func jsonNumberHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		n, ok := data.(json.Number)
		if !ok || isTextUnmarshaler(t) {
			return data, nil
		}
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return n.Int64()
		case reflect.Float32, reflect.Float64:
			return n.Float64()
		default:
			return n.String(), nil
		}
	}
}

// falsyTextHookFunc maps false and numeric zero to "" for plain string targets
func falsyTextHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String || isTextUnmarshaler(t) {
			return data, nil
		}
		if isFalsy(data) {
			return "", nil
		}
		return data, nil
	}
}

func isFalsy(data interface{}) bool {
	switch v := data.(type) {
	case bool:
		return !v
	case json.Number:
		n, err := v.Float64()
		return err == nil && n == 0
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	default:
		return false
	}
}

func isTextUnmarshaler(t reflect.Type) bool {
	_, ok := reflect.New(t).Interface().(encoding.TextUnmarshaler)
	return ok
}

// textUnmarshalerHookFunc fills TextUnmarshaler targets from scalar input
func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if !isTextUnmarshaler(t) {
			return data, nil
		}

		text, err := scalarText(data)
		if errors.Is(err, errSkipHook) {
			return data, nil
		}
		if err != nil {
			return nil, err
		}

		result := reflect.New(t)
		if err := result.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
			return nil, err
		}
		return result.Elem().Interface(), nil
	}
}

func scalarText(data interface{}) (string, error) {
	switch v := data.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case bool:
		return "", fmt.Errorf("cannot use boolean %t as text", v)
	default:
		return "", errSkipHook
	}
}
