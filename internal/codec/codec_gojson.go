//go:build !jsondoc_stdjson

package codec

import (
	"io"

	j "github.com/goccy/go-json"
)

// Default codec backend based on goccy/go-json. go-json keeps its token types
// identical to their encoding/json counterparts, so callers can type-switch
// on Delim and Number regardless of the active driver.

type (
	Decoder = j.Decoder
	Delim   = j.Delim
	Number  = j.Number
	Token   = j.Token
)

// NewTokenDecoder returns a token decoder with number preservation enabled.
func NewTokenDecoder(r io.Reader) *Decoder {
	d := j.NewDecoder(r)
	d.UseNumber()
	return d
}

func Marshal(v any) ([]byte, error) { return j.Marshal(v) }

func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return j.MarshalIndent(v, prefix, indent)
}

func Valid(b []byte) bool { return j.Valid(b) }

// DriverName identifies the active backend.
func DriverName() string { return "go-json" }
