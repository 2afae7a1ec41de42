package build

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContext_DocumentsSorted(t *testing.T) {
	c := NewContext()
	c.AddDocument("z")
	c.AddDocument("a")
	c.AddDocument("m")
	c.AddDocument("a") // duplicates collapse
	require.Equal(t, []string{"a", "m", "z"}, c.Documents())
}

func TestContext_ChangedFlagLifecycle(t *testing.T) {
	c := NewContext()
	require.False(t, c.ConsumeStylesheetChanged())

	c.MarkStylesheetChanged()
	require.True(t, c.ConsumeStylesheetChanged())
	// Consumed exactly once.
	require.False(t, c.ConsumeStylesheetChanged())
}

func TestContext_Assets(t *testing.T) {
	c := NewContext()
	c.SetAssets("/out/_static", "style.abc.css", "tabs.js")
	require.Equal(t, "/out/_static", c.StaticDir())
	require.Equal(t, "style.abc.css", c.Stylesheet())
	require.Equal(t, "tabs.js", c.Script())
}
