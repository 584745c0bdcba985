// Package jsondoc implements a small mutable JSON document model:
//
//   - A discriminated-union Variant over null/bool/number/string/array/object
//   - Document as the growable root holder, with an optional value budget
//     retained from the sized-document API (NewDynamic)
//   - Deserialize/Serialize with nesting-depth and capacity enforcement, plus
//     a YAML input path for YAML-configured consumers
//   - A stable error model via DeserializationError (string code, cause)
//
// Design policy:
//   - Keep only public APIs in the root package; codec backends live under
//     internal/codec and are selected at build time.
//   - Legacy v1-era names (JsonArray, JsonDocument, ...) live in the compat
//     subpackage as pure type aliases; nothing else re-exports them.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc := jsondoc.New()
//	if err := jsondoc.Deserialize(doc, data); err != nil { ... }
//	obj, _ := doc.Root().Object()
//	name, _ := obj.Get("name").String()
//
//	out, err := jsondoc.Serialize(doc)
package jsondoc
