package jv

import "strings"

// SearchResult is one key or value substring match.
type SearchResult struct {
	Path         Path
	MatchedKey   bool
	MatchedValue bool
	// Display is the scalar rendering or a summary of the compound value
	// at Path.
	Display string
}

// Search recursively scans v for key and string-value substring matches and
// returns results in a single deterministic traversal order: pre-order,
// insertion order for objects, index order for arrays. A pair whose key and
// value both match yields one result, not two. An empty query matches
// nothing. Matching is case-folded unless caseSensitive is set.
func Search(v *Value, query string, caseSensitive bool) []SearchResult {
	if query == "" {
		return nil
	}
	matches := func(text string) bool {
		if caseSensitive {
			return strings.Contains(text, query)
		}
		return strings.Contains(strings.ToLower(text), strings.ToLower(query))
	}

	var out []SearchResult
	var walk func(v *Value, path Path)
	walk = func(v *Value, path Path) {
		switch v.Kind() {
		case KindObject:
			for _, m := range v.Members() {
				memberPath := path.Child(m.Key)
				keyHit := matches(m.Key)
				valueHit := m.Value.Kind() == KindString && matches(m.Value.Str())
				if keyHit || valueHit {
					out = append(out, SearchResult{
						Path:         memberPath,
						MatchedKey:   keyHit,
						MatchedValue: valueHit,
						Display:      m.Value.Summary(),
					})
				}
				if m.Value.IsContainer() {
					walk(m.Value, memberPath)
				}
			}
		case KindArray:
			for i, item := range v.Items() {
				itemPath := path.Element(i)
				if item.Kind() == KindString && matches(item.Str()) {
					out = append(out, SearchResult{
						Path:         itemPath,
						MatchedValue: true,
						Display:      item.Summary(),
					})
				} else if item.IsContainer() {
					walk(item, itemPath)
				}
			}
		case KindString:
			// A bare string document root can itself match.
			if matches(v.Str()) {
				out = append(out, SearchResult{
					Path:         path,
					MatchedValue: true,
					Display:      v.Summary(),
				})
			}
		}
	}
	walk(v, Path{})
	return out
}

// SearchCursor navigates a result list as an ordered, 0-indexed, cyclic
// sequence: stepping past the last result wraps to the first and stepping
// before the first wraps to the last.
type SearchCursor struct {
	results []SearchResult
	index   int
}

// NewSearchCursor returns a cursor positioned on the first result.
func NewSearchCursor(results []SearchResult) *SearchCursor {
	return &SearchCursor{results: results}
}

// Len returns the number of results.
func (c *SearchCursor) Len() int { return len(c.results) }

// Results returns the underlying ordered result list.
func (c *SearchCursor) Results() []SearchResult { return c.results }

// Index returns the current 0-based position.
func (c *SearchCursor) Index() int { return c.index }

// Current returns the result under the cursor.
func (c *SearchCursor) Current() (SearchResult, bool) {
	if len(c.results) == 0 {
		return SearchResult{}, false
	}
	return c.results[c.index], true
}

// Next advances the cursor, wrapping past the last result.
func (c *SearchCursor) Next() (SearchResult, bool) {
	if len(c.results) == 0 {
		return SearchResult{}, false
	}
	c.index = (c.index + 1) % len(c.results)
	return c.results[c.index], true
}

// Prev steps the cursor back, wrapping before the first result.
func (c *SearchCursor) Prev() (SearchResult, bool) {
	if len(c.results) == 0 {
		return SearchResult{}, false
	}
	c.index = (c.index - 1 + len(c.results)) % len(c.results)
	return c.results[c.index], true
}
