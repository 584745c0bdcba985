package jsondoc_test

import (
	"encoding/json"
	"strings"
	"testing"

	jsondoc "github.com/espkit/jsondoc/v2"
)

func TestDeserialize_Object(t *testing.T) {
	doc := jsondoc.New()
	err := jsondoc.Deserialize(doc, []byte(`{"id":"boiler","enabled":true,"setpoint":21.5,"tags":["heat","zone1"]}`))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	obj, ok := doc.Root().Object()
	if !ok {
		t.Fatalf("expected object root, got kind %v", doc.Root().Kind())
	}
	if s, _ := obj.Get("id").String(); s != "boiler" {
		t.Fatalf("id = %q", s)
	}
	if b, _ := obj.Get("enabled").Bool(); !b {
		t.Fatalf("enabled = false")
	}
	if f, _ := obj.Get("setpoint").Float(); f != 21.5 {
		t.Fatalf("setpoint = %v", f)
	}
	arr, ok := obj.Get("tags").Array()
	if !ok || arr.Size() != 2 {
		t.Fatalf("tags size = %d", arr.Size())
	}
	if s, _ := arr.At(1).String(); s != "zone1" {
		t.Fatalf("tags[1] = %q", s)
	}
}

func TestDeserialize_Scalars(t *testing.T) {
	cases := []struct {
		in   string
		kind jsondoc.Kind
	}{
		{`null`, jsondoc.KindNull},
		{`true`, jsondoc.KindBool},
		{`42`, jsondoc.KindNumber},
		{`"hi"`, jsondoc.KindString},
		{`[]`, jsondoc.KindArray},
		{`{}`, jsondoc.KindObject},
	}
	for _, c := range cases {
		doc := jsondoc.New()
		if err := jsondoc.Deserialize(doc, []byte(c.in)); err != nil {
			t.Fatalf("%s: err: %v", c.in, err)
		}
		if k := doc.Root().Kind(); k != c.kind {
			t.Fatalf("%s: kind = %v, want %v", c.in, k, c.kind)
		}
	}
}

func TestDeserialize_NumberPreserved(t *testing.T) {
	doc := jsondoc.New()
	if err := jsondoc.Deserialize(doc, []byte(`{"n":9007199254740993}`)); err != nil {
		t.Fatalf("err: %v", err)
	}
	num, ok := doc.Root().Get("n").Number()
	if !ok || num != json.Number("9007199254740993") {
		t.Fatalf("n = %q", num)
	}
	if i, ok := doc.Root().Get("n").Int(); !ok || i != 9007199254740993 {
		t.Fatalf("int = %d ok=%v", i, ok)
	}
}

func TestDeserialize_KeyOrderPreserved(t *testing.T) {
	doc := jsondoc.New()
	if err := jsondoc.Deserialize(doc, []byte(`{"z":1,"a":2,"m":3}`)); err != nil {
		t.Fatalf("err: %v", err)
	}
	obj, _ := doc.Root().Object()
	keys := obj.Keys()
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Fatalf("keys = %v", keys)
	}
}

func TestDeserialize_DuplicateKeyLastWins(t *testing.T) {
	doc := jsondoc.New()
	if err := jsondoc.Deserialize(doc, []byte(`{"a":1,"a":2}`)); err != nil {
		t.Fatalf("err: %v", err)
	}
	obj, _ := doc.Root().Object()
	if obj.Size() != 1 {
		t.Fatalf("size = %d", obj.Size())
	}
	if i, _ := obj.Get("a").Int(); i != 2 {
		t.Fatalf("a = %d", i)
	}
}

func TestDeserialize_EmptyInput(t *testing.T) {
	for _, in := range [][]byte{nil, {}, []byte("  \n\t ")} {
		doc := jsondoc.New()
		err := jsondoc.Deserialize(doc, in)
		de, ok := jsondoc.AsDeserializationError(err)
		if !ok || de.Code() != jsondoc.CodeEmptyInput {
			t.Fatalf("%q: err = %v, want %s", in, err, jsondoc.CodeEmptyInput)
		}
	}
}

func TestDeserialize_IncompleteInput(t *testing.T) {
	for _, in := range []string{`{"a":`, `[1,2`, `{"a"`, `"unterminated`} {
		doc := jsondoc.New()
		err := jsondoc.Deserialize(doc, []byte(in))
		de, ok := jsondoc.AsDeserializationError(err)
		if !ok {
			t.Fatalf("%q: err = %v, want DeserializationError", in, err)
		}
		if de.Code() != jsondoc.CodeIncompleteInput && de.Code() != jsondoc.CodeInvalidInput {
			t.Fatalf("%q: code = %s", in, de.Code())
		}
		if doc.Root().Kind() != jsondoc.KindNull {
			t.Fatalf("%q: document not cleared after failure", in)
		}
	}
}

func TestDeserialize_InvalidInput(t *testing.T) {
	doc := jsondoc.New()
	err := jsondoc.Deserialize(doc, []byte(`{"a":tru}`))
	de, ok := jsondoc.AsDeserializationError(err)
	if !ok || de.Code() != jsondoc.CodeInvalidInput {
		t.Fatalf("err = %v, want %s", err, jsondoc.CodeInvalidInput)
	}
	if de.Unwrap() == nil {
		t.Fatalf("expected decoder cause")
	}
}

func TestDeserialize_TooDeep(t *testing.T) {
	in := strings.Repeat("[", 11) + strings.Repeat("]", 11)
	doc := jsondoc.New()
	err := jsondoc.Deserialize(doc, []byte(in))
	de, ok := jsondoc.AsDeserializationError(err)
	if !ok || de.Code() != jsondoc.CodeTooDeep {
		t.Fatalf("err = %v, want %s", err, jsondoc.CodeTooDeep)
	}

	// Same input passes once the limit is raised.
	if err := jsondoc.Deserialize(doc, []byte(in), jsondoc.DeserializeOpt{MaxDepth: 16}); err != nil {
		t.Fatalf("with MaxDepth 16: %v", err)
	}
}

func TestDeserialize_AtDefaultLimit(t *testing.T) {
	in := strings.Repeat("[", 10) + strings.Repeat("]", 10)
	doc := jsondoc.New()
	if err := jsondoc.Deserialize(doc, []byte(in)); err != nil {
		t.Fatalf("depth 10 should pass: %v", err)
	}
}

func TestDeserialize_NoMemory(t *testing.T) {
	doc := jsondoc.NewDynamic(3)
	err := jsondoc.Deserialize(doc, []byte(`[1,2,3,4]`))
	de, ok := jsondoc.AsDeserializationError(err)
	if !ok || de.Code() != jsondoc.CodeNoMemory {
		t.Fatalf("err = %v, want %s", err, jsondoc.CodeNoMemory)
	}
	if !doc.Overflowed() {
		t.Fatalf("expected overflow flag")
	}

	// The same document works again after Clear against smaller input.
	doc.Clear()
	if err := jsondoc.Deserialize(doc, []byte(`[1,2]`)); err != nil {
		t.Fatalf("after clear: %v", err)
	}
	if doc.Overflowed() {
		t.Fatalf("overflow flag should reset")
	}
}

func TestDeserialize_TrailingInputIgnored(t *testing.T) {
	doc := jsondoc.New()
	if err := jsondoc.Deserialize(doc, []byte(`{"a":1} trailing garbage`)); err != nil {
		t.Fatalf("err: %v", err)
	}
	if i, _ := doc.Root().Get("a").Int(); i != 1 {
		t.Fatalf("a = %d", i)
	}
}

func TestDeserialize_ReplacesPreviousContent(t *testing.T) {
	doc := jsondoc.New()
	if err := jsondoc.Deserialize(doc, []byte(`{"old":true}`)); err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := jsondoc.Deserialize(doc, []byte(`{"new":true}`)); err != nil {
		t.Fatalf("err: %v", err)
	}
	obj, _ := doc.Root().Object()
	if obj.Has("old") || !obj.Has("new") {
		t.Fatalf("keys = %v", obj.Keys())
	}
}

func TestDeserializeReader(t *testing.T) {
	doc := jsondoc.New()
	if err := jsondoc.DeserializeReader(doc, strings.NewReader(`[true,false]`)); err != nil {
		t.Fatalf("err: %v", err)
	}
	if doc.Root().Size() != 2 {
		t.Fatalf("size = %d", doc.Root().Size())
	}
}

func TestDeserialize_MaxBytes(t *testing.T) {
	doc := jsondoc.New()
	err := jsondoc.Deserialize(doc, []byte(`{"a":"0123456789"}`), jsondoc.DeserializeOpt{MaxBytes: 5})
	de, ok := jsondoc.AsDeserializationError(err)
	if !ok || de.Code() != jsondoc.CodeIncompleteInput {
		t.Fatalf("err = %v, want %s", err, jsondoc.CodeIncompleteInput)
	}
}
