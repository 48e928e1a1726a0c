// Package query applies RFC 9535 JSONPath expressions to JSON documents
// using the theory/jsonpath engine.
package query

import (
	"encoding/json"

	"github.com/theory/jsonpath"

	"github.com/akarpov/jv"
)

// Apply evaluates expr against the raw JSON document and returns the
// selected value. A single selected node is returned as-is; multiple nodes
// are wrapped in an array. A malformed expression yields a *jv.QueryError;
// an expression selecting nothing yields jv.ErrNoQueryResult, which callers
// report distinctly from an error.
//
// The engine selects over generic Go values, so object member order in query
// output is lexicographic rather than source order.
func Apply(raw []byte, expr string) (*jv.Value, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, &jv.QueryError{Expr: expr, Err: err}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	nodes := path.Select(doc)
	switch len(nodes) {
	case 0:
		return nil, jv.ErrNoQueryResult
	case 1:
		return jv.FromAny(nodes[0])
	}
	return jv.FromAny([]any(nodes))
}
