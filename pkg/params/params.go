package params

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Parameters is an insertion-ordered key/value store of request configuration
type Parameters struct {
	keys   []string
	values map[string]any
}

// New creates an empty parameter store
func New() *Parameters {
	return &Parameters{
		keys:   make([]string, 0),
		values: make(map[string]any),
	}
}

// FromMap creates a parameter store from a map. Keys are inserted in sorted
// order since Go maps carry no order of their own.
func FromMap(m map[string]any) *Parameters {
	p := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.Set(k, m[k])
	}
	return p
}

// Set stores value under key, overwriting any previous value while keeping
// the key's original position.
func (p *Parameters) Set(key string, value any) *Parameters {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value stored under key, or nil when absent
func (p *Parameters) Get(key string) any {
	return p.values[key]
}

// Has reports whether key has been set
func (p *Parameters) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the keys in insertion order
func (p *Parameters) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of stored keys
func (p *Parameters) Len() int {
	return len(p.keys)
}

// String returns the value under key coerced to a string. Absent and nil
// values yield "".
func (p *Parameters) String(key string) string {
	switch v := p.values[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Bool returns the value under key coerced to a bool. Strings are parsed with
// strconv.ParseBool; anything unparseable is false.
func (p *Parameters) Bool(key string) bool {
	switch v := p.values[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	case int:
		return v != 0
	default:
		return false
	}
}

// Int64 returns the value under key coerced to an int64 and whether the
// coercion succeeded.
func (p *Parameters) Int64(key string) (int64, bool) {
	switch v := p.values[key].(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint32:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
