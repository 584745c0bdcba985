// Package compat restores the legacy v1-era names of the jsondoc API.
//
// Earlier major versions exported the document model under Json-prefixed
// names. v2 moved to the unprefixed names in the root package; code written
// against the old surface keeps compiling by importing this package,
// optionally as a dot import:
//
//	import . "github.com/espkit/jsondoc/v2/compat"
//
//	var doc JsonDocument
//	err := jsondoc.Deserialize(&doc, data)
//
// The package contains nothing but type aliases. Each alias is identical to
// its target — same type, same method set — and has no runtime cost.
package compat
