package themeconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
)

// object is a read cursor over one mapping of the raw tree. It remembers
// which keys were consulted so the rest can be kept as Extensions.
type object struct {
	path string
	raw  map[string]any
	seen map[string]bool
}

func newObject(path string, raw map[string]any) *object {
	return &object{path: path, raw: raw, seen: make(map[string]bool)}
}

func (o *object) at(key string) string {
	return joinPath(o.path, key)
}

// lookup treats a nil value the same as an absent key.
func (o *object) lookup(key string) (any, bool) {
	o.seen[key] = true
	v, ok := o.raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (o *object) keys() []string {
	keys := make([]string, 0, len(o.raw))
	for k := range o.raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (o *object) requireString(key string) (string, error) {
	v, ok := o.lookup(key)
	if !ok {
		return "", missingField(o.at(key))
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidType(o.at(key), "string", v)
	}
	return s, nil
}

func (o *object) optionalString(key string) (string, error) {
	v, ok := o.lookup(key)
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidType(o.at(key), "string", v)
	}
	return s, nil
}

func (o *object) optionalBool(key string, def bool) (bool, error) {
	v, ok := o.lookup(key)
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, invalidType(o.at(key), "boolean", v)
	}
	return b, nil
}

func (o *object) requireObject(key string) (*object, error) {
	child, ok, err := o.optionalObject(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, missingField(o.at(key))
	}
	return child, nil
}

func (o *object) optionalObject(key string) (*object, bool, error) {
	v, ok := o.lookup(key)
	if !ok {
		return nil, false, nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, false, invalidType(o.at(key), "mapping", v)
	}
	return newObject(o.at(key), m), true, nil
}

// extensions returns deep copies of every key nothing looked up.
func (o *object) extensions() Extensions {
	var ext Extensions
	for k, v := range o.raw {
		if o.seen[k] {
			continue
		}
		if ext == nil {
			ext = make(Extensions)
		}
		ext[k] = deepCopy(v)
	}
	return ext
}

// asMap accepts any map keyed by strings. YAML and TOML decoders do not all
// agree on the concrete map type.
func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		if k.Kind() == reflect.Interface {
			k = k.Elem()
		}
		if k.Kind() != reflect.String {
			return nil, false
		}
		out[k.String()] = iter.Value().Interface()
	}
	return out, true
}

func asSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asInt reports the integer value of v. Floats qualify only when integral.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return intFromInt64(n)
	case uint:
		return intFromUint64(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return intFromUint64(uint64(n))
	case uint64:
		return intFromUint64(n)
	case float32:
		return intFromFloat(float64(n))
	case float64:
		return intFromFloat(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return intFromInt64(i)
		}
		if f, err := n.Float64(); err == nil {
			return intFromFloat(f)
		}
	}
	return 0, false
}

func intFromInt64(n int64) (int, bool) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func intFromUint64(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func intFromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return intFromInt64(int64(f))
}

// deepCopy detaches v from the decoded tree. Numbers come out as int64, or
// float64 when not integral, so every format encodes them the same way.
func deepCopy(v any) any {
	switch t := v.(type) {
	case nil, string, bool:
		return v
	case []byte:
		return bytes.Clone(t)
	}
	if n, ok := normalizeNumber(v); ok {
		return n
	}
	if m, ok := asMap(v); ok {
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = deepCopy(val)
		}
		return out
	}
	if s, ok := asSlice(v); ok {
		out := make([]any, len(s))
		for i, val := range s {
			out[i] = deepCopy(val)
		}
		return out
	}
	return v
}

func normalizeNumber(v any) (any, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToNumber(uint64(n)), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToNumber(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return f, true
		}
		return n.String(), true
	}
	return nil, false
}

func uintToNumber(n uint64) any {
	if n > math.MaxInt64 {
		return float64(n)
	}
	return int64(n)
}

func joinPath(parent, key string) string {
	if !isPlainKey(key) {
		return parent + "[" + strconv.Quote(key) + "]"
	}
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

func isPlainKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case (r >= '0' && r <= '9') || r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
