// Package schema validates documents against JSON Schema files using the
// santhosh-tekuri/jsonschema compiler.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/akarpov/jv"
)

// Validate checks the raw JSON document against the schema at schemaPath.
// A failing document yields a *jv.SchemaError carrying the canonical path of
// the deepest failing location and the validator's message.
func Validate(raw []byte, schemaPath string) error {
	compiler := jsonschema.NewCompiler()
	sch, err := compiler.Compile(schemaPath)
	if err != nil {
		return fmt.Errorf("compile schema %s: %w", schemaPath, err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode document for validation: %w", err)
	}

	err = sch.Validate(instance)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		leaf := deepest(verr)
		return &jv.SchemaError{
			Path: instancePath(leaf.InstanceLocation),
			Msg:  leaf.Error(),
		}
	}
	return err
}

// deepest follows the first cause chain to the most specific failure.
func deepest(verr *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	return verr
}

// instancePath converts the validator's instance location into the canonical
// path form used everywhere else.
func instancePath(location []string) string {
	p := jv.Path{}
	for _, seg := range location {
		if idx, err := strconv.Atoi(seg); err == nil {
			p = p.Element(idx)
		} else {
			p = p.Child(seg)
		}
	}
	return p.String()
}
