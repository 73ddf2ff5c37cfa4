package xmltree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendocset/xmltree"
	"github.com/opendocset/xmltree/node"
)

func TestSerialize(t *testing.T) {
	t.Run("TextChild", func(t *testing.T) {
		r := node.NewElement("r")
		require.NoError(t, r.AddChild(node.NewText([]byte("hi"))))

		str, err := xmltree.Serialize(r)
		require.NoError(t, err)
		require.Equal(t, "<r>hi</r>", str)
	})

	t.Run("SelfClosing", func(t *testing.T) {
		str, err := xmltree.Serialize(node.NewElement("r"))
		require.NoError(t, err)
		require.Equal(t, "<r/>", str)
	})

	t.Run("Attributes", func(t *testing.T) {
		e := node.NewElement("w:pPr")
		e.SetAttribute("w:val", "1")
		e.SetAttribute("w:type", "dxa")

		str, err := xmltree.Serialize(e)
		require.NoError(t, err)
		require.Equal(t, `<w:pPr w:val="1" w:type="dxa"/>`, str)
	})

	t.Run("Nested", func(t *testing.T) {
		root := node.NewElement("p")
		inner := node.NewElement("b")
		require.NoError(t, inner.AddChild(node.NewText([]byte("x"))))
		require.NoError(t, root.AddChild(node.NewText([]byte("a"))))
		require.NoError(t, root.AddChild(inner))
		require.NoError(t, root.AddChild(node.NewText([]byte("c"))))

		str, err := xmltree.Serialize(root)
		require.NoError(t, err)
		require.Equal(t, "<p>a<b>x</b>c</p>", str)
	})

	t.Run("TextEscaped", func(t *testing.T) {
		r := node.NewElement("r")
		require.NoError(t, r.AddChild(node.NewText([]byte(`1 < 2 & "so on"`))))

		str, err := xmltree.Serialize(r)
		require.NoError(t, err)
		require.Equal(t, "<r>1 &lt; 2 &amp; &quot;so on&quot;</r>", str)
	})

	t.Run("EmptyText", func(t *testing.T) {
		str, err := xmltree.Serialize(node.NewText(nil))
		require.NoError(t, err)
		require.Equal(t, "", str)
	})

	t.Run("CorruptNode", func(t *testing.T) {
		_, err := xmltree.Serialize(node.NewElement(node.TextNodeName))
		require.ErrorIs(t, err, node.ErrCorruptNode)
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := xmltree.Serialize(nil)
		require.ErrorIs(t, err, node.ErrNilNode)
	})
}

func TestDeepCloneSerializesIdentically(t *testing.T) {
	root := node.NewElement("p")
	root.SetAttribute("class", "body")
	inner := node.NewElement("b")
	require.NoError(t, inner.AddChild(node.NewText([]byte("x"))))
	require.NoError(t, root.AddChild(node.NewText([]byte("a"))))
	require.NoError(t, root.AddChild(inner))

	clone, err := node.Clone(root, true)
	require.NoError(t, err)

	want, err := xmltree.Serialize(root)
	require.NoError(t, err)
	got, err := xmltree.Serialize(clone)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// mutating the clone must not leak into the original's output
	require.NoError(t, clone.AddChild(node.NewText([]byte("zzz"))))
	again, err := xmltree.Serialize(root)
	require.NoError(t, err)
	require.Equal(t, want, again)
}

func TestInsertSerializesInOrder(t *testing.T) {
	root := node.NewElement("run")
	require.NoError(t, root.AddChild(node.NewElement("a")))
	require.NoError(t, root.AddChild(node.NewElement("c")))
	require.NoError(t, root.InsertChild(node.NewElement("b"), 1))

	str, err := xmltree.Serialize(root)
	require.NoError(t, err)
	require.Equal(t, "<run><a/><b/><c/></run>", str)
}

// Splitting a paragraph-like structure around a nested marker keeps the
// tag context on both halves: concatenating the serialized halves walks
// the original children exactly once, split at the marker's top-level
// ancestor.
func TestSplitAroundNestedMarker(t *testing.T) {
	build := func(t *testing.T) (*node.Element, node.Node) {
		t.Helper()
		root := node.NewElement("p")
		inner := node.NewElement("b")
		require.NoError(t, inner.AddChild(node.NewText([]byte("x"))))
		require.NoError(t, root.AddChild(node.NewText([]byte("a"))))
		require.NoError(t, root.AddChild(inner))
		require.NoError(t, root.AddChild(node.NewText([]byte("c"))))
		return root, inner
	}

	t.Run("BeforeMarker", func(t *testing.T) {
		root, marker := build(t)
		clone, err := node.SplitByChild(root, marker, false, false)
		require.NoError(t, err)

		cloneStr, err := xmltree.Serialize(clone)
		require.NoError(t, err)
		require.Equal(t, "<p>a</p>", cloneStr)

		rootStr, err := xmltree.Serialize(root)
		require.NoError(t, err)
		require.Equal(t, "<p><b>x</b>c</p>", rootStr)
	})

	t.Run("AfterMarker", func(t *testing.T) {
		root, marker := build(t)
		clone, err := node.SplitByChild(root, marker, true, false)
		require.NoError(t, err)

		rootStr, err := xmltree.Serialize(root)
		require.NoError(t, err)
		require.Equal(t, "<p>a</p>", rootStr)

		cloneStr, err := xmltree.Serialize(clone)
		require.NoError(t, err)
		require.Equal(t, "<p><b>x</b>c</p>", cloneStr)
	})
}
