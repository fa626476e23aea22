// Package schema declares the decoration schemas as composable nodes.
//
// A Node turns one generic JSON value (nil, bool, float64, string, []any or
// map[string]any, see Normalize) into its normalized form and records every
// problem it finds in the ErrorTree handed to it. Nodes never panic on bad
// input and never mutate the value they are given.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Node interface {
	Parse(value any, errs *ErrorTree) any
}

const requiredMessage = "Required"

func typeMessage(expected string, value any) string {
	return fmt.Sprintf("Expected %s, received %s", expected, kindOf(value))
}

func kindOf(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case float64:
		if math.IsNaN(v) {
			return "nan"
		}
		return "number"
	}
	if _, ok := toFloat(value); ok {
		return "number"
	}
	return fmt.Sprintf("%T", value)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

type check[T any] struct {
	ok  func(T) bool
	msg string
}

// with returns a copy of checks with c appended, so derived nodes never share
// a backing array with the node they were built from.
func with[T any](checks []check[T], c check[T]) []check[T] {
	out := make([]check[T], 0, len(checks)+1)
	out = append(out, checks...)
	return append(out, c)
}

// maxSafeInteger is the largest integer a float64 holds exactly.
const maxSafeInteger = 1<<53 - 1

// NumberNode accepts JSON numbers.
type NumberNode struct {
	integer bool
	checks  []check[float64]
}

func Number() NumberNode {
	return NumberNode{}
}

// Int accepts numbers without a fractional part.
func Int() NumberNode {
	return NumberNode{integer: true}
}

// Min is inclusive.
func (n NumberNode) Min(min float64, msg string) NumberNode {
	n.checks = with(n.checks, check[float64]{ok: func(f float64) bool { return f >= min }, msg: msg})
	return n
}

// Max is inclusive.
func (n NumberNode) Max(max float64, msg string) NumberNode {
	n.checks = with(n.checks, check[float64]{ok: func(f float64) bool { return f <= max }, msg: msg})
	return n
}

func (n NumberNode) Positive(msg string) NumberNode {
	n.checks = with(n.checks, check[float64]{ok: func(f float64) bool { return f > 0 }, msg: msg})
	return n
}

func (n NumberNode) Parse(value any, errs *ErrorTree) any {
	f, ok := toFloat(value)
	if !ok || math.IsNaN(f) {
		errs.Add(typeMessage("number", value))
		return nil
	}
	if n.integer {
		switch {
		case math.IsInf(f, 0) || f != math.Trunc(f):
			errs.Add("Expected integer, received float")
		case math.Abs(f) > maxSafeInteger:
			errs.Add("Number must be a safe integer")
		}
	}
	for _, c := range n.checks {
		if !c.ok(f) {
			errs.Add(c.msg)
		}
	}
	return f
}

// StringNode accepts JSON strings.
type StringNode struct {
	checks []check[string]
}

func String() StringNode {
	return StringNode{}
}

// Min bounds the length in characters.
func (s StringNode) Min(min int, msg string) StringNode {
	s.checks = with(s.checks, check[string]{ok: func(v string) bool { return utf8.RuneCountInString(v) >= min }, msg: msg})
	return s
}

// URL requires an absolute URL.
func (s StringNode) URL(msg string) StringNode {
	s.checks = with(s.checks, check[string]{ok: isURL, msg: msg})
	return s
}

func (s StringNode) UUID(msg string) StringNode {
	s.checks = with(s.checks, check[string]{ok: func(v string) bool {
		_, err := uuid.Parse(v)
		return err == nil && len(v) == 36
	}, msg: msg})
	return s
}

func (s StringNode) Parse(value any, errs *ErrorTree) any {
	v, ok := value.(string)
	if !ok {
		errs.Add(typeMessage("string", value))
		return nil
	}
	for _, c := range s.checks {
		if !c.ok(v) {
			errs.Add(c.msg)
		}
	}
	return v
}

func isURL(v string) bool {
	u, err := url.Parse(v)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != "" || u.Path != ""
}

// BoolNode accepts JSON booleans.
type BoolNode struct{}

func Bool() BoolNode {
	return BoolNode{}
}

func (BoolNode) Parse(value any, errs *ErrorTree) any {
	v, ok := value.(bool)
	if !ok {
		errs.Add(typeMessage("boolean", value))
		return nil
	}
	return v
}

// EnumNode accepts one of a fixed set of strings. Comparison is exact: no
// trimming and no case folding.
type EnumNode struct {
	values []string
	msg    string
}

// Enum reports msg for any value outside values, including non-strings.
func Enum(msg string, values ...string) EnumNode {
	return EnumNode{values: append([]string(nil), values...), msg: msg}
}

func (e EnumNode) Values() []string {
	return append([]string(nil), e.values...)
}

func (e EnumNode) Contains(v string) bool {
	for _, allowed := range e.values {
		if v == allowed {
			return true
		}
	}
	return false
}

func (e EnumNode) Parse(value any, errs *ErrorTree) any {
	v, ok := value.(string)
	if !ok || !e.Contains(v) {
		errs.Add(e.msg)
		return nil
	}
	return v
}

// ArrayNode accepts JSON arrays whose items all match item.
type ArrayNode struct {
	item Node
}

func Array(item Node) ArrayNode {
	return ArrayNode{item: item}
}

func (a ArrayNode) Parse(value any, errs *ErrorTree) any {
	items, ok := value.([]any)
	if !ok {
		errs.Add(typeMessage("array", value))
		return nil
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = a.item.Parse(item, errs.Child(strconv.Itoa(i)))
	}
	return out
}
