package chroma_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/jv/chroma"
)

func TestHighlight(t *testing.T) {
	t.Parallel()

	t.Run("emits colored output containing the source text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := chroma.Highlight(&buf, `{"name": "alice"}`, chroma.StyleDark)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "name")
		assert.Contains(t, out, "alice")
		assert.Contains(t, out, "\x1b[", "terminal256 formatter should emit escape sequences")
	})

	t.Run("unknown style falls back instead of failing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := chroma.Highlight(&buf, `[1, 2, 3]`, "no-such-style")
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "1")
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := chroma.Highlight(&buf, "", chroma.StyleLight)
		require.NoError(t, err)
	})
}

func TestStyleForTheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, chroma.StyleLight, chroma.StyleForTheme("light"))
	assert.Equal(t, chroma.StyleDark, chroma.StyleForTheme("dark"))
	assert.Equal(t, chroma.StyleDark, chroma.StyleForTheme(""))
}
