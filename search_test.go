package jv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/jv"
)

func TestSearch_EmptyQuery(t *testing.T) {
	t.Parallel()

	v := mustParse(t, `{"a":"b"}`)
	assert.Nil(t, jv.Search(v, "", false))
}

func TestSearch_KeysAndValues(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"name":"alice","age":30,"tags":["admin","alpha"]}`)

	results := jv.Search(doc, "al", false)
	require.Len(t, results, 2)

	assert.Equal(t, "$.name", results[0].Path.String())
	assert.False(t, results[0].MatchedKey)
	assert.True(t, results[0].MatchedValue)

	assert.Equal(t, "$.tags[1]", results[1].Path.String())
	assert.True(t, results[1].MatchedValue)
}

func TestSearch_ValueMatchesAcrossContainers(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"name":"Alice","tags":["admin","alice-team"]}`)

	results := jv.Search(doc, "alice", false)
	require.Len(t, results, 2)
	assert.Equal(t, "$.name", results[0].Path.String())
	assert.True(t, results[0].MatchedValue)
	assert.Equal(t, "$.tags[1]", results[1].Path.String())
	assert.True(t, results[1].MatchedValue)
}

func TestSearch_KeyAndValueMatchIsOneResult(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"color":"colorful"}`)
	results := jv.Search(doc, "color", false)
	require.Len(t, results, 1)
	assert.True(t, results[0].MatchedKey)
	assert.True(t, results[0].MatchedValue)
}

func TestSearch_CaseSensitivity(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"Name":"Alice"}`)

	assert.Len(t, jv.Search(doc, "alice", false), 1)
	assert.Empty(t, jv.Search(doc, "alice", true))
	assert.Len(t, jv.Search(doc, "Alice", true), 1)
}

func TestSearch_NonStringScalarsIgnored(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"n":30,"b":true,"x":null}`)
	assert.Empty(t, jv.Search(doc, "30", false))
	assert.Empty(t, jv.Search(doc, "true", false))
}

func TestSearch_PreOrderTraversal(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"zzz_first":{"inner":"zzz"},"aaa_second":"zzz"}`)
	results := jv.Search(doc, "zzz", false)
	require.Len(t, results, 3)
	assert.Equal(t, "$.zzz_first", results[0].Path.String())
	assert.Equal(t, "$.zzz_first.inner", results[1].Path.String())
	assert.Equal(t, "$.aaa_second", results[2].Path.String())
}

func TestSearch_BareStringRoot(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `"hello"`)
	results := jv.Search(doc, "ell", false)
	require.Len(t, results, 1)
	assert.Equal(t, "$", results[0].Path.String())
}

func TestSearchCursor_Cyclic(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `["aa","ab","ac"]`)
	cursor := jv.NewSearchCursor(jv.Search(doc, "a", false))
	require.Equal(t, 3, cursor.Len())

	first, ok := cursor.Current()
	require.True(t, ok)
	assert.Equal(t, "$[0]", first.Path.String())

	r, _ := cursor.Next()
	assert.Equal(t, "$[1]", r.Path.String())
	r, _ = cursor.Next()
	assert.Equal(t, "$[2]", r.Path.String())
	r, _ = cursor.Next()
	assert.Equal(t, "$[0]", r.Path.String(), "next past the end wraps to the first result")

	r, _ = cursor.Prev()
	assert.Equal(t, "$[2]", r.Path.String(), "prev before the first wraps to the last result")
}

func TestSearchCursor_Empty(t *testing.T) {
	t.Parallel()

	cursor := jv.NewSearchCursor(nil)
	_, ok := cursor.Current()
	assert.False(t, ok)
	_, ok = cursor.Next()
	assert.False(t, ok)
	_, ok = cursor.Prev()
	assert.False(t, ok)
}
