// File: mapx_test.go
// Title: Map Utilities Tests
// Description: Tests for the map helpers and Decode.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-12 v0.2.0: Tests for Decode

package mapx

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
)

// upper is a TextUnmarshaler used to observe the hook
type upper string

func (u *upper) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return mdwerror.New("empty").WithCode(mdwerror.CodeInvalidInput)
	}
	*u = upper(strings.ToUpper(string(text)))
	return nil
}

type target struct {
	Name  string `mapstructure:"name"`
	Count int    `mapstructure:"count"`
	Code  upper  `mapstructure:"code"`
	Items []item `mapstructure:"items"`
}

type item struct {
	Label string `mapstructure:"label"`
}

func TestKeysHelpers(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}

	if got := SortedKeys(m); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("SortedKeys = %v", got)
	}
	if Keys[string, int](nil) != nil {
		t.Error("Keys(nil) should be nil")
	}

	clone := Clone(m)
	clone["a"] = 100
	if m["a"] != 1 {
		t.Error("Clone must not share storage")
	}

	merged := Merge(map[string]int{"a": 1, "b": 1}, map[string]int{"b": 2})
	if !reflect.DeepEqual(merged, map[string]int{"a": 1, "b": 2}) {
		t.Errorf("Merge = %v", merged)
	}
}

func TestDecode(t *testing.T) {
	input := map[string]interface{}{
		"name":  "pc",
		"count": "3",
		"code":  "abc",
		"items": []interface{}{
			map[string]interface{}{"label": "one"},
			map[string]interface{}{"label": "two"},
		},
	}

	var out target
	if err := Decode(input, &out, DecodeOptions{WeaklyTyped: true}); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.Name != "pc" || out.Count != 3 || out.Code != "ABC" {
		t.Errorf("unexpected result: %+v", out)
	}
	if len(out.Items) != 2 || out.Items[1].Label != "two" {
		t.Errorf("items = %+v", out.Items)
	}
}

func TestDecodeNumbersIntoTextUnmarshaler(t *testing.T) {
	tests := []struct {
		value interface{}
		want  upper
	}{
		{int(12), "12"},
		{int64(1500), "1500"},
		{float64(99.9), "99.9"},
		{json.Number("1.50"), "1.50"},
	}
	for _, tt := range tests {
		var out target
		if err := Decode(map[string]interface{}{"code": tt.value}, &out, DecodeOptions{}); err != nil {
			t.Fatalf("Decode(%v): %v", tt.value, err)
		}
		if out.Code != tt.want {
			t.Errorf("Decode(%v) = %q, want %q", tt.value, out.Code, tt.want)
		}
	}
}

func TestDecodeJSONNumberIntoInt(t *testing.T) {
	var out target
	if err := Decode(map[string]interface{}{"count": json.Number("7")}, &out, DecodeOptions{}); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.Count != 7 {
		t.Errorf("count = %d", out.Count)
	}
}

func TestDecodeEmptyFalsyText(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"false", false, ""},
		{"int zero", 0, ""},
		{"int64 zero", int64(0), ""},
		{"float zero", 0.0, ""},
		{"json zero", json.Number("0"), ""},
		{"text zero", "0", "0"},
		{"true", true, "1"},
		{"number", 7, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out target
			input := map[string]interface{}{"name": tt.value, "count": 0}
			if err := Decode(input, &out, DecodeOptions{WeaklyTyped: true, EmptyFalsyText: true}); err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if out.Name != tt.want {
				t.Errorf("name = %q, want %q", out.Name, tt.want)
			}
		})
	}

	var out target
	if err := Decode(map[string]interface{}{"name": false}, &out, DecodeOptions{WeaklyTyped: true}); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.Name != "0" {
		t.Errorf("without EmptyFalsyText name = %q, want weakly typed \"0\"", out.Name)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]interface{}
		opts  DecodeOptions
	}{
		{"strict type", map[string]interface{}{"count": "x"}, DecodeOptions{WeaklyTyped: true}},
		{"unused key", map[string]interface{}{"colour": "red"}, DecodeOptions{ErrorUnused: true}},
		{"text unmarshal failure", map[string]interface{}{"code": ""}, DecodeOptions{}},
		{"boolean as text", map[string]interface{}{"code": true}, DecodeOptions{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out target
			err := Decode(tt.input, &out, tt.opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}
