package field

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Accessor reads a single field of an item.
type Accessor[T any] func(item T) any

// Accessors maps field names to their readers.
type Accessors[T any] map[string]Accessor[T]

// Value reads the named field. ok is false when no accessor is registered.
func (a Accessors[T]) Value(item T, name string) (any, bool) {
	get, ok := a[name]
	if !ok || get == nil {
		return nil, false
	}
	return get(item), true
}

// Has reports whether an accessor is registered for name.
func (a Accessors[T]) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Names returns the registered field names in sorted order.
func (a Accessors[T]) Names() []string {
	names := make([]string, 0, len(a))
	for n := range a {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Text renders a field value for text matching.
// Missing and zero-like values (nil, "", false, 0) render as "".
func Text(v any) string {
	if IsZero(v) {
		return ""
	}
	return String(v)
}

// String renders a field value without collapsing zero-like values.
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []string:
		return strings.Join(x, ",")
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// Number converts any Go numeric kind to float64.
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// IsZero reports whether v is nil, an empty string, false, zero or NaN.
func IsZero(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	}
	if n, ok := Number(v); ok {
		return n == 0 || math.IsNaN(n)
	}
	return false
}
