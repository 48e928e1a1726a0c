package jsonio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/jv"
	"github.com/akarpov/jv/jsonio"
)

func TestParse_OrderPreserved(t *testing.T) {
	t.Parallel()

	v, err := jsonio.Parse([]byte(`{"z":1,"a":{"y":2,"b":3},"m":4}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, v.Keys())

	inner, ok := v.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, inner.Keys())
}

func TestParse_Scalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		kind jv.Kind
	}{
		{`null`, jv.KindNull},
		{`false`, jv.KindBool},
		{`3.14`, jv.KindNumber},
		{`"s"`, jv.KindString},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			v, err := jsonio.Parse([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParse_SyntaxErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := jsonio.Parse([]byte("{\n  \"a\": 1,\n  \"b\": }\n}"))
	var perr *jv.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Line)
	assert.Contains(t, err.Error(), "invalid JSON at line 3")
}

func TestParse_TruncatedInput(t *testing.T) {
	t.Parallel()

	_, err := jsonio.Parse([]byte(`{"a": [1, 2`))
	var perr *jv.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Msg, "unexpected end of input")
}

func TestParse_TrailingData(t *testing.T) {
	t.Parallel()

	_, err := jsonio.Parse([]byte(`{"a":1} {"b":2}`))
	var perr *jv.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParse_NumbersKeepSourceText(t *testing.T) {
	t.Parallel()

	v, err := jsonio.Parse([]byte(`123456789012345678901234567890`))
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", v.Number().String())
}

func TestReadDocument_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ok":true}`), 0o644))

	doc, err := jsonio.ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "data.json", doc.Source)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, jv.KindObject, doc.Value.Kind())
	assert.Equal(t, []byte(`{"ok":true}`), doc.Raw)
}

func TestReadDocument_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := jsonio.ReadDocument(filepath.Join(t.TempDir(), "nope.json"))
	var ierr *jv.InputError
	require.ErrorAs(t, err, &ierr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadDocument_InvalidFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o644))

	_, err := jsonio.ReadDocument(path)
	var perr *jv.ParseError
	require.ErrorAs(t, err, &perr)
}
