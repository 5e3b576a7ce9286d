package config

import (
	"maps"
	"slices"
	"time"
)

// Config is a flat set of named settings.
//
// Accessors return their default when the key is absent or holds a value
// of another type; the OK variants tell the two apart when paired with Has.
// Unknown reports keys a caller does not recognize.
type Config struct {
	values map[string]any
}

// New wraps values. A nil map yields an empty Config.
func New(values map[string]any) Config {
	if values == nil {
		values = map[string]any{}
	}
	return Config{values: values}
}

// lookup returns the value under key when it has type T.
func lookup[T any](c Config, key string) (T, bool) {
	v, ok := c.values[key].(T)
	return v, ok
}

// String returns the string under key, or def.
func (c Config) String(key, def string) string {
	if v, ok := c.StringOK(key); ok {
		return v
	}
	return def
}

// StringOK returns the string under key and whether it was one.
func (c Config) StringOK(key string) (string, bool) {
	return lookup[string](c, key)
}

// Bool returns the boolean under key, or def.
func (c Config) Bool(key string, def bool) bool {
	if v, ok := c.BoolOK(key); ok {
		return v
	}
	return def
}

// BoolOK returns the boolean under key and whether it was one.
func (c Config) BoolOK(key string) (bool, bool) {
	return lookup[bool](c, key)
}

// Duration returns the duration under key, or def. Strings are parsed with
// time.ParseDuration ("1m30s"); plain numbers count seconds.
func (c Config) Duration(key string, def time.Duration) time.Duration {
	if v, ok := c.DurationOK(key); ok {
		return v
	}
	return def
}

// DurationOK returns the duration under key and whether it could be read
// as one.
func (c Config) DurationOK(key string) (time.Duration, bool) {
	switch v := c.values[key].(type) {
	case time.Duration:
		return v, true
	case string:
		d, err := time.ParseDuration(v)
		return d, err == nil
	case int:
		return time.Duration(v) * time.Second, true
	case int64:
		return time.Duration(v) * time.Second, true
	case float64:
		return time.Duration(v * float64(time.Second)), true
	}
	return 0, false
}

// Strings returns the list of strings under key, or def when the value is
// not a list or any element is not a string.
func (c Config) Strings(key string, def []string) []string {
	if v, ok := c.StringsOK(key); ok {
		return v
	}
	return def
}

// StringsOK returns the list of strings under key and whether it was one.
func (c Config) StringsOK(key string) ([]string, bool) {
	if s, ok := lookup[[]string](c, key); ok {
		return s, true
	}
	items, ok := lookup[[]any](c, key)
	if !ok {
		return nil, false
	}

	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// Has reports whether key is set.
func (c Config) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Keys returns every configured key, sorted.
func (c Config) Keys() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Unknown returns the configured keys missing from known, sorted.
func (c Config) Unknown(known ...string) []string {
	var out []string
	for _, k := range c.Keys() {
		if !slices.Contains(known, k) {
			out = append(out, k)
		}
	}
	return out
}
