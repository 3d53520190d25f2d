package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTopics() fstest.MapFS {
	return fstest.MapFS{
		"paths-d.md":         {Data: []byte("# paths.d\n\nOne entry per line.\n")},
		"expansion.txt":      {Data: []byte("Variables are expanded once.")},
		"option-root.txt":    {Data: []byte("The directory to scan.")},
		"nested/config.md":   {Data: []byte("# Config")},
		"ignored.json":       {Data: []byte("{}")},
		"nested/notes.draft": {Data: []byte("draft")},
	}
}

func TestTopicManager_Load(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(sampleTopics(), Options{})
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"config", "expansion", "option-root", "paths-d"}, tm.ListTopics())

		topic, ok := tm.GetTopic("expansion")
		require.True(t, ok)
		assert.Equal(t, "Variables are expanded once.", topic.Content)
		assert.Equal(t, ".txt", topic.Ext())
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(sampleTopics(), Options{Extensions: []string{".draft"}})
		require.NoError(t, tm.Load())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("nil source", func(t *testing.T) {
		tm := New(nil, Options{})
		require.NoError(t, tm.Load())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicFlagStyle(t *testing.T) {
	tm := New(sampleTopics(), Options{})
	require.NoError(t, tm.Load())

	for _, name := range []string{"root", "--root", "-root", "option-root"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-root", topic.Name)
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestTopicManager_WriteIndex(t *testing.T) {
	tm := New(sampleTopics(), Options{})
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	tm.WriteIndex(&buf, "app")

	out := buf.String()
	assert.Contains(t, out, "Available help topics:")
	assert.Contains(t, out, "  paths-d\n")
	assert.Contains(t, out, "Options:\n  --root\n")
	assert.Contains(t, out, "'app help <topic>'")
	assert.NotContains(t, out, "  option-root")

	buf.Reset()
	New(nil, Options{}).WriteIndex(&buf, "app")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

type upperRenderer struct{ exts []string }

func (r *upperRenderer) Render(content, ext string) string {
	r.exts = append(r.exts, ext)
	return "rendered:" + content
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "app", Short: "test app"}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "a subcommand", Run: func(*cobra.Command, []string) {}})
	return root
}

func runHelp(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"help"}, args...))
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestInitialize(t *testing.T) {
	renderer := &upperRenderer{}
	root := newRoot()
	_, err := Initialize(root, sampleTopics(), Options{Renderer: renderer})
	require.NoError(t, err)

	t.Run("topic", func(t *testing.T) {
		out := runHelp(t, root, "paths-d")
		assert.Equal(t, "rendered:# paths.d\n\nOne entry per line.\n", out)
		assert.Contains(t, renderer.exts, ".md")
	})

	t.Run("topic list", func(t *testing.T) {
		out := runHelp(t, root, "topics")
		assert.Contains(t, out, "expansion")
	})

	t.Run("command falls back to cobra help", func(t *testing.T) {
		out := runHelp(t, root, "sub")
		assert.Contains(t, out, "a subcommand")
	})

	t.Run("no args shows root help", func(t *testing.T) {
		out := runHelp(t, root)
		assert.Contains(t, out, "test app")
	})
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# x", (&PlainRenderer{}).Render("# x", ".md"))
}

func TestGlamourRenderer(t *testing.T) {
	r := NewGlamourRenderer(true)
	assert.Equal(t, "notty", r.Style)

	// non-markdown passes through
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := r.Render("# Title\n\nBody text.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Body text.")
}
