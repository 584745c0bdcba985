//go:build jsondoc_stdjson

package codec

import (
	"encoding/json"
	"io"
)

// Fallback backend based on encoding/json, selected with the jsondoc_stdjson
// build tag.

type (
	Decoder = json.Decoder
	Delim   = json.Delim
	Number  = json.Number
	Token   = json.Token
)

// NewTokenDecoder returns a token decoder with number preservation enabled.
func NewTokenDecoder(r io.Reader) *Decoder {
	d := json.NewDecoder(r)
	d.UseNumber()
	return d
}

func Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

func Valid(b []byte) bool { return json.Valid(b) }

// DriverName identifies the active backend.
func DriverName() string { return "encoding/json" }
