package jv

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// KeySegment returns a segment addressing an object member.
func KeySegment(key string) Segment {
	return Segment{Key: key}
}

// IndexSegment returns a segment addressing an array element.
func IndexSegment(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

// Equal reports whether two segments address the same step.
func (s Segment) Equal(o Segment) bool {
	if s.IsIndex != o.IsIndex {
		return false
	}
	if s.IsIndex {
		return s.Index == o.Index
	}
	return s.Key == o.Key
}

// Path addresses a position in a JSON value, root-relative. The empty path
// denotes the document root. Paths are pure values with no pointer into any
// tree, so they survive tree rebuilds.
type Path []Segment

// identifierPattern matches keys that render in dotted form.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// String renders the canonical path form: "$" for the root, ".key" for
// identifier-safe keys, `["key"]` for keys with spaces, dots, or other
// non-identifier characters, and "[n]" for indices. Only double quotes are
// escaped inside bracketed keys.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p {
		if s.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
			continue
		}
		if identifierPattern.MatchString(s.Key) {
			b.WriteByte('.')
			b.WriteString(s.Key)
		} else {
			b.WriteString(`["`)
			b.WriteString(strings.ReplaceAll(s.Key, `"`, `\"`))
			b.WriteString(`"]`)
		}
	}
	return b.String()
}

// Child returns a copy of p extended by an object key.
func (p Path) Child(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, KeySegment(key))
}

// Element returns a copy of p extended by an array index.
func (p Path) Element(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, IndexSegment(i))
}

// Equal reports whether two paths address the same position.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// ParsePath parses the canonical string form back into a Path.
func ParsePath(s string) (Path, error) {
	if s == "" || s[0] != '$' {
		return nil, fmt.Errorf("parse path %q: must start with $", s)
	}
	rest := s[1:]
	var p Path
	for rest != "" {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			end := 0
			for end < len(rest) && rest[end] != '.' && rest[end] != '[' {
				end++
			}
			key := rest[:end]
			if !identifierPattern.MatchString(key) {
				return nil, fmt.Errorf("parse path %q: invalid key %q", s, key)
			}
			p = append(p, KeySegment(key))
			rest = rest[end:]
		case '[':
			if len(rest) > 1 && rest[1] == '"' {
				key, remainder, err := parseQuotedKey(rest[2:])
				if err != nil {
					return nil, fmt.Errorf("parse path %q: %w", s, err)
				}
				p = append(p, KeySegment(key))
				rest = remainder
				continue
			}
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("parse path %q: unterminated index", s)
			}
			idx, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("parse path %q: invalid index %q", s, rest[1:end])
			}
			p = append(p, IndexSegment(idx))
			rest = rest[end+1:]
		default:
			return nil, fmt.Errorf("parse path %q: unexpected character %q", s, rest[0])
		}
	}
	return p, nil
}

// parseQuotedKey consumes a bracketed key body up to its closing `"]`,
// unescaping \" along the way. It returns the key and the unconsumed tail.
func parseQuotedKey(s string) (string, string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && s[i+1] == '"' {
				b.WriteByte('"')
				i++
				continue
			}
			b.WriteByte('\\')
		case '"':
			if i+1 < len(s) && s[i+1] == ']' {
				return b.String(), s[i+2:], nil
			}
			return "", "", fmt.Errorf("expected ] after closing quote")
		default:
			b.WriteByte(s[i])
		}
	}
	return "", "", fmt.Errorf("unterminated quoted key")
}

// PathNotFoundError reports a resolve or navigate step that could not be
// taken. Prefix is the deepest resolvable ancestor path.
type PathNotFoundError struct {
	Prefix  Path
	Segment Segment
	Kind    Kind
}

func (e *PathNotFoundError) Error() string {
	if e.Segment.IsIndex {
		return fmt.Sprintf("path not found: no index %d under %s (%s)", e.Segment.Index, e.Prefix, e.Kind)
	}
	return fmt.Sprintf("path not found: no key %q under %s (%s)", e.Segment.Key, e.Prefix, e.Kind)
}

// Resolve walks p from v and returns the value it addresses. Object steps
// require the current value to be an object holding the key; index steps
// require an array with the index in range. On failure the returned error is
// a *PathNotFoundError carrying the failing prefix.
func Resolve(v *Value, p Path) (*Value, error) {
	current := v
	for i, seg := range p {
		fail := func() (*Value, error) {
			return nil, &PathNotFoundError{Prefix: p[:i], Segment: seg, Kind: current.Kind()}
		}
		if seg.IsIndex {
			if current.Kind() != KindArray {
				return fail()
			}
			next := current.Elem(seg.Index)
			if next == nil {
				return fail()
			}
			current = next
			continue
		}
		if current.Kind() != KindObject {
			return fail()
		}
		next, ok := current.Get(seg.Key)
		if !ok {
			return fail()
		}
		current = next
	}
	return current, nil
}
