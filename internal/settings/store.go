package settings

import (
	"fmt"
	"sort"
	"strings"
)

// Lazy is a deferred setting value. It is evaluated against the store on
// every fetch, so it may reference settings registered after it.
type Lazy func(s *Store) any

// Store holds settings by name. A key is either unset, set to nil, or set to
// a value; the three states are kept apart so that an explicit nil, false or
// "" never falls through to a fallback.
//
// Lazy values must not reference themselves; there is no cycle detection.
type Store struct {
	values map[string]any
}

// New creates an empty Store.
func New() *Store {
	return &Store{values: make(map[string]any)}
}

// Set registers value (or a Lazy) under name, replacing any previous value.
func (s *Store) Set(name string, value any) {
	s.values[name] = value
}

// IsSet reports whether name has been registered, even to nil.
func (s *Store) IsSet(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Lookup returns the evaluated value of name and whether it was set.
func (s *Store) Lookup(name string) (any, bool) {
	v, ok := s.values[name]
	if !ok {
		return nil, false
	}
	return s.eval(v), true
}

// Fetch returns the evaluated value of name, or nil when it is unset.
func (s *Store) Fetch(name string) any {
	v, _ := s.Lookup(name)
	return v
}

// FetchOr returns the value of name when it is set. Otherwise fallback is
// evaluated if it is a Lazy, or returned as-is.
func (s *Store) FetchOr(name string, fallback any) any {
	if v, ok := s.Lookup(name); ok {
		return v
	}
	return s.eval(fallback)
}

// String returns name interpolated into a string: nil becomes "".
func (s *Store) String(name string) string {
	return Stringify(s.Fetch(name))
}

// Bool returns the truthiness of name. Only true, numbers other than zero,
// non-empty lists, and strings other than "" and "false" are truthy.
//
// The string "false" is false here even though it interpolates as "false";
// values read from files, the environment and overrides are already decoded
// to bools, so this only matters for strings passed to Set.
func (s *Store) Bool(name string) bool {
	return Truthy(s.Fetch(name))
}

// Strings returns name as a list: a YAML sequence yields its elements, any
// other value is split on whitespace.
func (s *Store) Strings(name string) []string {
	switch v := s.Fetch(name).(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if str := strings.TrimSpace(Stringify(e)); str != "" {
				out = append(out, str)
			}
		}
		return out
	default:
		return strings.Fields(Stringify(v))
	}
}

// Keys returns every registered name in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve evaluates every registered setting.
func (s *Store) Resolve() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = s.eval(v)
	}
	return out
}

// Merge copies every key of values into the store.
func (s *Store) Merge(values map[string]any) {
	for k, v := range values {
		s.values[k] = v
	}
}


func (s *Store) eval(v any) any {
	switch fn := v.(type) {
	case Lazy:
		return fn(s)
	case func(*Store) any:
		return fn(s)
	case func() any:
		return fn()
	default:
		return v
	}
}

// Stringify renders a resolved value the way it is interpolated into
// commands and templates.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = Stringify(e)
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(val)
	}
}

// IsScalar reports whether v can be interpolated as a single word.
func IsScalar(v any) bool {
	switch v.(type) {
	case nil, bool, string, int, int64, uint64, float64:
		return true
	default:
		return false
	}
}

// Truthy reports whether a resolved value enables a feature.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != "" && !strings.EqualFold(val, "false")
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}
