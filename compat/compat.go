package compat

import jsondoc "github.com/espkit/jsondoc/v2"

// Deprecated: use jsondoc.Array.
type JsonArray = jsondoc.Array

// Deprecated: use jsondoc.Document.
type JsonDocument = jsondoc.Document

// Deprecated: use jsondoc.Object.
type JsonObject = jsondoc.Object

// Deprecated: use jsondoc.Variant.
type JsonVariant = jsondoc.Variant

// Deprecated: use jsondoc.DeserializationError.
type DeserializationError = jsondoc.DeserializationError

// Deprecated: use jsondoc.DynamicDocument.
type DynamicJsonDocument = jsondoc.DynamicDocument
