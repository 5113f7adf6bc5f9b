package filter

import (
	"slices"
	"sort"

	"github.com/orbit-connect/orbitcore/internal/domain/search/field"
)

// Kind is the shape of a filter value.
type Kind uint8

// Filter value kinds.
const (
	KindNone Kind = iota
	KindString
	KindList
	KindNumber
	KindBool
)

// Value is a single filter criterion: a scalar or a list of accepted strings.
type Value struct {
	kind Kind
	str  string
	list []string
	num  float64
	flag bool
}

// String creates an exact string criterion.
func String(s string) Value { return Value{kind: KindString, str: s} }

// List creates a membership criterion.
func List(values ...string) Value { return Value{kind: KindList, list: values} }

// Number creates an exact numeric criterion.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool creates an exact boolean criterion.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Kind returns the value shape.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string scalar.
func (v Value) Str() string { return v.str }

// Values returns the accepted list values.
func (v Value) Values() []string { return v.list }

// Num returns the numeric scalar.
func (v Value) Num() float64 { return v.num }

// Flag returns the boolean scalar.
func (v Value) Flag() bool { return v.flag }

// IsEmpty reports whether the value imposes no constraint.
// Numeric zero and false are real constraints.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindString:
		return v.str == ""
	case KindList:
		return len(v.list) == 0
	case KindNumber, KindBool:
		return false
	default:
		return true
	}
}

// Matches compares a field value against the criterion.
// Lists test membership of the stringified field; scalars use strict
// equality without cross-type coercion. Absent fields never match.
func (v Value) Matches(fieldValue any, present bool) bool {
	if !present {
		return false
	}
	switch v.kind {
	case KindList:
		return slices.Contains(v.list, field.String(fieldValue))
	case KindString:
		s, ok := fieldValue.(string)
		return ok && s == v.str
	case KindNumber:
		n, ok := field.Number(fieldValue)
		return ok && n == v.num
	case KindBool:
		b, ok := fieldValue.(bool)
		return ok && b == v.flag
	default:
		return false
	}
}

// Criteria maps field names to filter values. All active entries must pass.
type Criteria map[string]Value

// Active returns the keys of non-empty criteria in sorted order.
func (c Criteria) Active() []string {
	keys := make([]string, 0, len(c))
	for k, v := range c {
		if v.IsEmpty() {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsEmpty reports whether no criterion is active.
func (c Criteria) IsEmpty() bool { return len(c.Active()) == 0 }

// Predicate overrides the generic comparison for one key.
type Predicate[T any] func(item T, v Value) bool

// Predicates maps field names to custom predicates.
type Predicates[T any] map[string]Predicate[T]
