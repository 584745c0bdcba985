package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DeserializeYAML parses a YAML document into doc using the same value model,
// depth limit and value budget as Deserialize. Only the first document of a
// multi-document stream is read. Mapping keys are rendered to strings; key
// order follows sorted string order since the YAML decoder hands mappings
// back as Go maps.
func DeserializeYAML(doc *Document, data []byte, opts ...DeserializeOpt) error {
	var opt DeserializeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	maxDepth := opt.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultNestingLimit
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		data = data[:opt.MaxBytes]
	}

	doc.Clear()
	if len(bytes.TrimSpace(data)) == 0 {
		return newError(CodeEmptyInput, nil)
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return newError(CodeInvalidInput, err)
	}
	n, err := yamlValue(doc, raw, 1, maxDepth)
	if err != nil {
		doc.Clear()
		if de, ok := AsDeserializationError(err); ok && de.Code() == CodeNoMemory {
			doc.over = true
		}
		return err
	}
	doc.root = n
	return nil
}

func yamlValue(doc *Document, raw any, depth, maxDepth int) (*node, error) {
	n := doc.alloc()
	if n == nil {
		return nil, newError(CodeNoMemory, nil)
	}
	switch v := raw.(type) {
	case nil:
		// null node
	case bool:
		n.kind, n.b = KindBool, v
	case string:
		n.kind, n.str = KindString, v
	case int:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatInt(int64(v), 10))
	case int64:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatInt(v, 10))
	case uint64:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatUint(v, 10))
	case float64:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatFloat(v, 'g', -1, 64))
	case []any:
		if depth > maxDepth {
			return nil, newError(CodeTooDeep, nil)
		}
		n.kind = KindArray
		n.arr = []*node{}
		for _, el := range v {
			child, err := yamlValue(doc, el, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			n.arr = append(n.arr, child)
		}
	case map[string]any:
		if depth > maxDepth {
			return nil, newError(CodeTooDeep, nil)
		}
		n.kind = KindObject
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n.obj = []member{}
		for _, k := range keys {
			child, err := yamlValue(doc, v[k], depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			n.obj = append(n.obj, member{key: k, val: child})
		}
	case map[any]any:
		// Older decoder behavior; keys may be any scalar.
		if depth > maxDepth {
			return nil, newError(CodeTooDeep, nil)
		}
		n.kind = KindObject
		keys := make([]string, 0, len(v))
		byKey := make(map[string]any, len(v))
		for k, val := range v {
			ks := fmt.Sprint(k)
			keys = append(keys, ks)
			byKey[ks] = val
		}
		sort.Strings(keys)
		n.obj = []member{}
		for _, k := range keys {
			child, err := yamlValue(doc, byKey[k], depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			n.obj = append(n.obj, member{key: k, val: child})
		}
	default:
		return nil, newError(CodeInvalidInput, fmt.Errorf("jsondoc: yaml value of type %T has no JSON representation", raw))
	}
	return n, nil
}
