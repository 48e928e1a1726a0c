// Package jv provides the core model for exploring, searching, and diffing
// JSON documents: an insertion-ordered value representation, canonical path
// addressing, a recursive structural diff, recursive substring search, and a
// navigable tree model shared by the terminal and browser renderers.
package jv

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind discriminates the six JSON value shapes.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Member is one key/value pair of an object. Members keep the order in which
// they appeared in the source document.
type Member struct {
	Key   string
	Value *Value
}

// Value is one node of a parsed JSON document. Values are immutable once
// constructed; components share them freely without copying.
type Value struct {
	kind    Kind
	boolv   bool
	num     json.Number
	str     string
	items   []*Value
	members []Member
}

// Null returns the JSON null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// NewBool returns a JSON boolean value.
func NewBool(b bool) *Value {
	return &Value{kind: KindBool, boolv: b}
}

// NewNumber returns a JSON number value. The textual representation is kept
// so output round-trips exactly, but equality is numeric.
func NewNumber(n json.Number) *Value {
	return &Value{kind: KindNumber, num: n}
}

// NewString returns a JSON string value.
func NewString(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// NewArray returns a JSON array with the given items in order.
func NewArray(items ...*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// NewObject returns a JSON object with the given members in order.
// Keys are assumed unique; with duplicate keys the last occurrence wins
// on lookup.
func NewObject(members ...Member) *Value {
	return &Value{kind: KindObject, members: members}
}

// Kind reports the shape of the value.
func (v *Value) Kind() Kind { return v.kind }

// IsContainer reports whether the value is an object or an array.
func (v *Value) IsContainer() bool {
	return v.kind == KindArray || v.kind == KindObject
}

// Bool returns the boolean payload. Valid only for KindBool.
func (v *Value) Bool() bool { return v.boolv }

// Number returns the number payload. Valid only for KindNumber.
func (v *Value) Number() json.Number { return v.num }

// Str returns the string payload. Valid only for KindString.
func (v *Value) Str() string { return v.str }

// Len returns the number of items or members for containers, 0 otherwise.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	}
	return 0
}

// Items returns the array items in order. Valid only for KindArray.
func (v *Value) Items() []*Value { return v.items }

// Elem returns the array item at i, or nil if out of range.
func (v *Value) Elem(i int) *Value {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return nil
	}
	return v.items[i]
}

// Members returns the object members in insertion order.
func (v *Value) Members() []Member { return v.members }

// Keys returns the object keys in insertion order.
func (v *Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// Get returns the member value for key. With duplicate keys the last
// occurrence wins.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	for i := len(v.members) - 1; i >= 0; i-- {
		if v.members[i].Key == key {
			return v.members[i].Value, true
		}
	}
	return nil, false
}

// Equal reports deep structural equality. Numbers compare by numeric value,
// not by textual representation, so 1 and 1.0 are equal. Objects compare by
// key set and per-key values; member order does not participate.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolv == o.boolv
	case KindNumber:
		return numberEqual(v.num, o.num)
	case KindString:
		return v.str == o.str
	case KindArray:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(o.members) {
			return false
		}
		for _, m := range v.members {
			ov, ok := o.Get(m.Key)
			if !ok || !m.Value.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

func numberEqual(a, b json.Number) bool {
	if a == b {
		return true
	}
	af, aerr := a.Float64()
	bf, berr := b.Float64()
	if aerr != nil || berr != nil {
		return false
	}
	return af == bf
}

// Summary returns a short display form: the one-line JSON rendering for
// scalars, or a count summary for containers.
func (v *Value) Summary() string {
	switch v.kind {
	case KindArray:
		return fmt.Sprintf("[%d items]", len(v.items))
	case KindObject:
		return fmt.Sprintf("{%d keys}", len(v.members))
	}
	return Minify(v)
}

// MarshalJSON renders the value as one-line JSON with member order preserved.
func (v *Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil, "", 0), nil
}

// Minify renders v as JSON with no whitespace between tokens. Non-ASCII
// characters are left unescaped.
func Minify(v *Value) string {
	return string(v.appendJSON(nil, "", 0))
}

// Format renders v as 2-space-indented JSON with member order preserved and
// non-ASCII characters left unescaped.
func Format(v *Value) string {
	return string(v.appendJSON(nil, "  ", 0))
}

// appendJSON appends the JSON rendering of v to dst. An empty indent
// produces compact output.
func (v *Value) appendJSON(dst []byte, indent string, depth int) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		return strconv.AppendBool(dst, v.boolv)
	case KindNumber:
		return append(dst, v.num.String()...)
	case KindString:
		return appendQuoted(dst, v.str)
	case KindArray:
		if len(v.items) == 0 {
			return append(dst, "[]"...)
		}
		dst = append(dst, '[')
		for i, item := range v.items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendNewlineIndent(dst, indent, depth+1)
			dst = item.appendJSON(dst, indent, depth+1)
		}
		dst = appendNewlineIndent(dst, indent, depth)
		return append(dst, ']')
	case KindObject:
		if len(v.members) == 0 {
			return append(dst, "{}"...)
		}
		dst = append(dst, '{')
		for i, m := range v.members {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendNewlineIndent(dst, indent, depth+1)
			dst = appendQuoted(dst, m.Key)
			dst = append(dst, ':')
			if indent != "" {
				dst = append(dst, ' ')
			}
			dst = m.Value.appendJSON(dst, indent, depth+1)
		}
		dst = appendNewlineIndent(dst, indent, depth)
		return append(dst, '}')
	}
	return dst
}

func appendNewlineIndent(dst []byte, indent string, depth int) []byte {
	if indent == "" {
		return dst
	}
	dst = append(dst, '\n')
	for range depth {
		dst = append(dst, indent...)
	}
	return dst
}

// appendQuoted appends s as a JSON string literal. Only quotes, backslashes,
// and control characters are escaped; non-ASCII passes through untouched.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			if r < 0x20 {
				dst = append(dst, fmt.Sprintf("\\u%04x", r)...)
			} else {
				dst = append(dst, string(r)...)
			}
		}
	}
	return append(dst, '"')
}

// FromAny converts a value decoded into Go's generic JSON shapes
// (map[string]any, []any, string, bool, float64, json.Number, nil) into a
// Value. Map iteration has no defined order, so object members are sorted by
// key; use the jsonio decoder when source order matters.
func FromAny(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(t), nil
	case float64:
		return NewNumber(json.Number(strconv.FormatFloat(t, 'g', -1, 64))), nil
	case int:
		return NewNumber(json.Number(strconv.Itoa(t))), nil
	case int64:
		return NewNumber(json.Number(strconv.FormatInt(t, 10))), nil
	case []any:
		items := make([]*Value, len(t))
		for i, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return NewArray(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(t))
		for _, k := range keys {
			v, err := FromAny(t[k])
			if err != nil {
				return nil, err
			}
			members = append(members, Member{Key: k, Value: v})
		}
		return NewObject(members...), nil
	}
	return nil, fmt.Errorf("unsupported value type %T", x)
}

// ScalarText returns the clipboard-friendly text of a scalar: the raw string
// for strings, "null" for null, and the JSON rendering otherwise. Containers
// render as indented JSON.
func (v *Value) ScalarText() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNull:
		return "null"
	case KindArray, KindObject:
		return Format(v)
	}
	return Minify(v)
}

// Preview returns a single-line preview of a scalar for tree labels.
// Long strings are truncated and newlines and tabs are shown escaped.
func (v *Value) Preview() string {
	switch v.kind {
	case KindString:
		s := v.str
		if len(s) > 100 {
			// Truncate on a rune boundary so multibyte text stays valid.
			cut := 97
			for cut > 0 && !utf8.RuneStart(s[cut]) {
				cut--
			}
			s = s[:cut] + "..."
		}
		s = strings.ReplaceAll(s, "\n", "\\n")
		s = strings.ReplaceAll(s, "\t", "\\t")
		return `"` + s + `"`
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.Bool())
	case KindNumber:
		return v.num.String()
	}
	return v.Summary()
}
