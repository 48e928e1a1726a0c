package jv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/jv"
)

func TestDiff_Identical(t *testing.T) {
	t.Parallel()

	a := mustParse(t, `{"a":1,"b":[1,2],"c":{"d":null}}`)
	b := mustParse(t, `{"a":1,"b":[1,2],"c":{"d":null}}`)
	assert.Empty(t, jv.Diff(a, b))
}

func TestDiff_KeyOrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	a := mustParse(t, `{"x":1,"y":2}`)
	b := mustParse(t, `{"y":2,"x":1}`)
	assert.Empty(t, jv.Diff(a, b))
}

func TestDiff_Scenario(t *testing.T) {
	t.Parallel()

	before := mustParse(t, `{"a":1,"b":[1,2]}`)
	after := mustParse(t, `{"a":2,"b":[1,2,3]}`)

	entries := jv.Diff(before, after)
	require.Len(t, entries, 2)

	assert.Equal(t, "$.a", entries[0].Path.String())
	assert.Equal(t, jv.DiffChanged, entries[0].Kind)
	assert.Equal(t, "1", jv.Minify(entries[0].Before))
	assert.Equal(t, "2", jv.Minify(entries[0].After))

	assert.Equal(t, "$.b[2]", entries[1].Path.String())
	assert.Equal(t, jv.DiffAdded, entries[1].Kind)
	assert.Nil(t, entries[1].Before)
	assert.Equal(t, "3", jv.Minify(entries[1].After))
}

func TestDiff_AddedAndRemovedKeys(t *testing.T) {
	t.Parallel()

	before := mustParse(t, `{"gone":1,"kept":2}`)
	after := mustParse(t, `{"kept":2,"new":3}`)

	entries := jv.Diff(before, after)
	require.Len(t, entries, 2)

	byPath := map[string]jv.DiffEntry{}
	for _, e := range entries {
		byPath[e.Path.String()] = e
	}
	assert.Equal(t, jv.DiffRemoved, byPath["$.gone"].Kind)
	assert.Equal(t, jv.DiffAdded, byPath["$.new"].Kind)
}

func TestDiff_KindChangeIsSingleEntry(t *testing.T) {
	t.Parallel()

	// A container replaced by a scalar does not recurse.
	before := mustParse(t, `{"v":{"a":1,"b":2}}`)
	after := mustParse(t, `{"v":7}`)

	entries := jv.Diff(before, after)
	require.Len(t, entries, 1)
	assert.Equal(t, "$.v", entries[0].Path.String())
	assert.Equal(t, jv.DiffChanged, entries[0].Kind)
}

func TestDiff_NestedArrayElements(t *testing.T) {
	t.Parallel()

	before := mustParse(t, `[{"id":1},{"id":2},{"id":3}]`)
	after := mustParse(t, `[{"id":1},{"id":9}]`)

	entries := jv.Diff(before, after)
	require.Len(t, entries, 2)
	assert.Equal(t, "$[1].id", entries[0].Path.String())
	assert.Equal(t, jv.DiffChanged, entries[0].Kind)
	assert.Equal(t, "$[2]", entries[1].Path.String())
	assert.Equal(t, jv.DiffRemoved, entries[1].Kind)
}

func TestDiff_Asymmetry(t *testing.T) {
	t.Parallel()

	a := mustParse(t, `{"only":1}`)
	b := mustParse(t, `{}`)

	forward := jv.Diff(a, b)
	backward := jv.Diff(b, a)
	require.Len(t, forward, 1)
	require.Len(t, backward, 1)
	assert.Equal(t, jv.DiffRemoved, forward[0].Kind)
	assert.Equal(t, jv.DiffAdded, backward[0].Kind)
}

func TestDiff_Deterministic(t *testing.T) {
	t.Parallel()

	before := mustParse(t, `{"c":1,"a":2,"b":3}`)
	after := mustParse(t, `{"c":9,"a":8,"b":7}`)

	first := jv.Diff(before, after)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, jv.Diff(before, after))
	}
}
