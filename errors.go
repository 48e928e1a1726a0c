package jv

import (
	"errors"
	"fmt"
)

// ErrNoInput is returned when neither a file argument nor piped stdin is
// available.
var ErrNoInput = errors.New("no input provided: pass a file path or pipe JSON to stdin")

// ErrNoQueryResult is returned when a query expression is valid but selects
// nothing. It is reported distinctly from a query error.
var ErrNoQueryResult = errors.New("query returned no results")

// InputError reports a missing or unreadable input source. Input errors are
// fatal for the whole run.
type InputError struct {
	Source string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ParseError reports malformed JSON with the position of the first invalid
// token. Parse errors are fatal and surface before any tree or diff
// operation begins.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON at line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

// QueryError reports a malformed query expression.
type QueryError struct {
	Expr string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q: %v", e.Expr, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// SchemaError reports a schema validation failure at a document path.
type SchemaError struct {
	Path string
	Msg  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema validation failed at %s: %s", e.Path, e.Msg)
}
