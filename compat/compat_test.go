package compat_test

import (
	"errors"
	"reflect"
	"testing"

	jsondoc "github.com/espkit/jsondoc/v2"
	"github.com/espkit/jsondoc/v2/compat"
)

// Pointer assignments compile only when the aliased type is identical to its
// target, so a drift from alias to defined type breaks the build here.
var (
	_ *jsondoc.Array                = (*compat.JsonArray)(nil)
	_ *jsondoc.Document             = (*compat.JsonDocument)(nil)
	_ *jsondoc.Object               = (*compat.JsonObject)(nil)
	_ *jsondoc.Variant              = (*compat.JsonVariant)(nil)
	_ *jsondoc.DeserializationError = (*compat.DeserializationError)(nil)
	_ *jsondoc.DynamicDocument      = (*compat.DynamicJsonDocument)(nil)
)

func TestLegacyAliasIdentity(t *testing.T) {
	pairs := []struct {
		name            string
		legacy, current reflect.Type
	}{
		{"JsonArray", reflect.TypeOf(compat.JsonArray{}), reflect.TypeOf(jsondoc.Array{})},
		{"JsonDocument", reflect.TypeOf(compat.JsonDocument{}), reflect.TypeOf(jsondoc.Document{})},
		{"JsonObject", reflect.TypeOf(compat.JsonObject{}), reflect.TypeOf(jsondoc.Object{})},
		{"JsonVariant", reflect.TypeOf(compat.JsonVariant{}), reflect.TypeOf(jsondoc.Variant{})},
		{"DeserializationError", reflect.TypeOf(compat.DeserializationError{}), reflect.TypeOf(jsondoc.DeserializationError{})},
		{"DynamicJsonDocument", reflect.TypeOf(compat.DynamicJsonDocument{}), reflect.TypeOf(jsondoc.DynamicDocument{})},
	}
	for _, p := range pairs {
		if p.legacy != p.current {
			t.Fatalf("%s: alias resolves to %v, want %v", p.name, p.legacy, p.current)
		}
		if p.legacy.Size() != p.current.Size() {
			t.Fatalf("%s: size %d != %d", p.name, p.legacy.Size(), p.current.Size())
		}
	}
}

func TestLegacyNamesEndToEnd(t *testing.T) {
	var doc compat.JsonDocument
	err := jsondoc.Deserialize(&doc, []byte(`{"sensor":"gps","readings":[1,2,3]}`))
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	var obj compat.JsonObject
	obj, ok := doc.Root().Object()
	if !ok {
		t.Fatalf("expected object root")
	}
	if s, _ := obj.Get("sensor").String(); s != "gps" {
		t.Fatalf("sensor = %q, want gps", s)
	}
	var arr compat.JsonArray
	arr, ok = obj.Get("readings").Array()
	if !ok || arr.Size() != 3 {
		t.Fatalf("expected 3 readings, got %d (ok=%v)", arr.Size(), ok)
	}
	var v compat.JsonVariant = arr.At(2)
	if i, _ := v.Int(); i != 3 {
		t.Fatalf("readings[2] = %d, want 3", i)
	}
}

func TestLegacyDeserializationError(t *testing.T) {
	var doc compat.JsonDocument
	err := jsondoc.Deserialize(&doc, nil)
	if err == nil {
		t.Fatalf("expected error for empty input")
	}
	var de *compat.DeserializationError
	if !errors.As(err, &de) {
		t.Fatalf("error does not unwrap to the legacy error type: %v", err)
	}
	if de.Code() != jsondoc.CodeEmptyInput {
		t.Fatalf("code = %q, want %q", de.Code(), jsondoc.CodeEmptyInput)
	}
}

func TestLegacyDynamicDocumentCapacity(t *testing.T) {
	doc := jsondoc.NewDynamic(2)
	var legacy *compat.DynamicJsonDocument = doc // identical type, no conversion
	err := jsondoc.Deserialize(legacy, []byte(`{"a":1,"b":2,"c":3}`))
	if err == nil {
		t.Fatalf("expected no_memory for capacity 2")
	}
	de, ok := jsondoc.AsDeserializationError(err)
	if !ok || de.Code() != jsondoc.CodeNoMemory {
		t.Fatalf("code = %v, want %q", err, jsondoc.CodeNoMemory)
	}
	if !legacy.Overflowed() {
		t.Fatalf("expected overflow flag")
	}
}
