package condql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/condql/internal/types"
)

// FromValue converts a dynamic Go value into a condition literal.
//
// Strings, numbers, booleans, nil and Raw become Scalars. Slices and arrays
// become Lists. Maps with string keys become Maps with their keys sorted,
// since Go map iteration order is random; build a Map directly or decode
// YAML/JSON when key order matters. Expressions become Nodes.
func FromValue(v any) (Condition, error) {
	return fromValue(v, 0)
}

// FromYAML decodes a YAML document into a condition literal.
// Mapping order is preserved.
func FromYAML(data []byte) (Condition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode condition: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, types.NewInvalidConditionError("document is empty")
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return nil, types.NewInvalidConditionError("document is empty")
	}
	return fromNode(root, 0)
}

// FromJSON decodes a JSON document into a condition literal.
// Object key order is preserved. Numbers follow the same rules as YAML:
// integers become int64, other numbers float64, and integers too large for
// int64 stay json.Number.
func FromJSON(data []byte) (Condition, error) {
	if !json.Valid(data) {
		return nil, types.NewInvalidConditionError("malformed JSON document")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return fromJSON(dec, 0)
}

func fromValue(v any, depth int) (Condition, error) {
	if depth > DefaultMaxDepth {
		return nil, types.NewInvalidConditionError("nesting exceeds maximum depth %d", DefaultMaxDepth)
	}

	switch val := v.(type) {
	case nil:
		return types.Scalar{}, nil
	case types.Condition:
		return val, nil
	case types.Expr:
		return types.Node{Expr: val}, nil
	case types.Raw, json.Number, []byte:
		return types.Scalar{Value: val}, nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := make(types.Map, 0, len(keys))
		for _, k := range keys {
			sub, err := fromValue(val[k], depth+1)
			if err != nil {
				return nil, fmt.Errorf("key '%s': %w", k, err)
			}
			m = append(m, types.Entry{Key: k, Value: sub})
		}
		return m, nil
	case []any:
		return listFrom(len(val), func(i int) any { return val[i] }, depth)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return types.Scalar{Value: v}, nil
	case reflect.Slice, reflect.Array:
		return listFrom(rv.Len(), func(i int) any { return rv.Index(i).Interface() }, depth)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, types.NewInvalidConditionError("map keys must be strings, got %s", rv.Type().Key())
		}
		generic := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			generic[iter.Key().String()] = iter.Value().Interface()
		}
		return fromValue(generic, depth)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return types.Scalar{}, nil
		}
		return fromValue(rv.Elem().Interface(), depth)
	default:
		return nil, types.NewInvalidConditionError("unsupported literal type %T", v)
	}
}

func listFrom(n int, at func(int) any, depth int) (Condition, error) {
	list := make(types.List, 0, n)
	for i := 0; i < n; i++ {
		sub, err := fromValue(at(i), depth+1)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		list = append(list, sub)
	}
	return list, nil
}

func fromNode(n *yaml.Node, depth int) (Condition, error) {
	if depth > DefaultMaxDepth {
		return nil, types.NewInvalidConditionError("nesting exceeds maximum depth %d", DefaultMaxDepth)
	}

	switch n.Kind {
	case yaml.AliasNode:
		return fromNode(n.Alias, depth+1)

	case yaml.ScalarNode:
		return types.Scalar{Value: scalarValue(n)}, nil

	case yaml.SequenceNode:
		list := make(types.List, 0, len(n.Content))
		for i, item := range n.Content {
			sub, err := fromNode(item, depth+1)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			list = append(list, sub)
		}
		return list, nil

	case yaml.MappingNode:
		m := make(types.Map, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, types.NewInvalidConditionError("line %d: mapping keys must be scalars", key.Line)
			}
			sub, err := fromNode(value, depth+1)
			if err != nil {
				return nil, fmt.Errorf("key '%s': %w", key.Value, err)
			}
			m = append(m, types.Entry{Key: key.Value, Value: sub})
		}
		return m, nil

	default:
		return nil, types.NewInvalidConditionError("line %d: unsupported node", n.Line)
	}
}

// fromJSON reads one value from the token stream. The document has already
// been validated, so delimiters and keys arrive well-formed.
func fromJSON(dec *json.Decoder, depth int) (Condition, error) {
	if depth > DefaultMaxDepth {
		return nil, types.NewInvalidConditionError("nesting exceeds maximum depth %d", DefaultMaxDepth)
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode condition: %w", err)
	}

	switch t := tok.(type) {
	case json.Delim:
		if t == '[' {
			list := types.List{}
			for i := 0; dec.More(); i++ {
				sub, err := fromJSON(dec, depth+1)
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
				list = append(list, sub)
			}
			if err := closeJSON(dec); err != nil {
				return nil, err
			}
			return list, nil
		}

		m := types.Map{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("decode condition: %w", err)
			}
			key, _ := keyTok.(string)
			sub, err := fromJSON(dec, depth+1)
			if err != nil {
				return nil, fmt.Errorf("key '%s': %w", key, err)
			}
			m = append(m, types.Entry{Key: key, Value: sub})
		}
		if err := closeJSON(dec); err != nil {
			return nil, err
		}
		return m, nil

	case json.Number:
		return types.Scalar{Value: numberValue(t)}, nil

	default:
		// string, bool or nil
		return types.Scalar{Value: t}, nil
	}
}

func closeJSON(dec *json.Decoder) error {
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode condition: %w", err)
	}
	return nil
}

// numberValue narrows a JSON number to int64 or float64 where it fits.
func numberValue(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if !strings.ContainsAny(string(n), ".eE") {
		return n
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n
}

// scalarValue resolves a YAML scalar by its tag.
func scalarValue(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i
		}
		return json.Number(n.Value)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return f
		}
	}
	return n.Value
}
