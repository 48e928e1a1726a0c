// Package jsonio reads JSON documents from files or standard input and
// decodes them into jv values with object member order preserved.
package jsonio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akarpov/jv"
)

// ReadDocument loads and parses a document from path, or from standard input
// when path is empty. It returns jv.ErrNoInput (wrapped in a *jv.InputError)
// when there is no file and stdin is an interactive terminal.
func ReadDocument(path string) (*jv.Document, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &jv.InputError{Source: path, Err: err}
		}
		return ParseDocument(data, filepath.Base(path), path)
	}

	info, err := os.Stdin.Stat()
	if err != nil {
		return nil, &jv.InputError{Source: "stdin", Err: err}
	}
	if info.Mode()&os.ModeCharDevice != 0 {
		return nil, &jv.InputError{Source: "stdin", Err: jv.ErrNoInput}
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, &jv.InputError{Source: "stdin", Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &jv.InputError{Source: "stdin", Err: jv.ErrNoInput}
	}
	return ParseDocument(data, "stdin", "")
}

// ParseDocument parses data into a document with the given display name and
// optional on-disk path.
func ParseDocument(data []byte, source, path string) (*jv.Document, error) {
	value, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return &jv.Document{Value: value, Source: source, Path: path, Raw: data}, nil
}

// Parse decodes a single JSON value. Object members keep their source order.
// Malformed input produces a *jv.ParseError carrying the line and column of
// the first invalid token.
func Parse(data []byte) (*jv.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := parseValue(dec)
	if err != nil {
		return nil, parseError(data, dec, err)
	}

	// A document is exactly one value; anything but EOF after it is
	// trailing garbage.
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, parseError(data, dec, err)
	}
	return value, nil
}

func parseValue(dec *json.Decoder) (*jv.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (*jv.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var members []jv.Member
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %v, not a string", keyTok)
				}
				child, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				members = append(members, jv.Member{Key: key, Value: child})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return jv.NewObject(members...), nil
		case '[':
			var items []*jv.Value
			for dec.More() {
				item, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return jv.NewArray(items...), nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case nil:
		return jv.Null(), nil
	case bool:
		return jv.NewBool(t), nil
	case json.Number:
		return jv.NewNumber(t), nil
	case string:
		return jv.NewString(t), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// parseError converts a decoder failure into a *jv.ParseError with line and
// column information.
func parseError(data []byte, dec *json.Decoder, err error) error {
	offset := dec.InputOffset()
	msg := err.Error()

	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
		msg = syntaxErr.Error()
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		offset = int64(len(data))
		msg = "unexpected end of input"
	}

	line, col := lineCol(data, offset)
	return &jv.ParseError{Line: line, Col: col, Msg: msg}
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	consumed := data[:offset]
	line := bytes.Count(consumed, []byte{'\n'}) + 1
	lastNL := bytes.LastIndexByte(consumed, '\n')
	return line, int(offset) - lastNL
}
