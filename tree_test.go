package jv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/jv"
)

const treeFixture = `{
	"name": "alice",
	"address": {"city": "Oslo", "zip": "0150"},
	"tags": ["admin", "ops"]
}`

func TestNewTree_DepthOne(t *testing.T) {
	t.Parallel()

	tree := jv.NewTree(mustParse(t, treeFixture), 1)
	root := tree.Root()

	assert.True(t, tree.Expanded(root))
	require.Len(t, tree.Children(root), 3)

	for _, child := range tree.Children(root) {
		assert.False(t, tree.Expanded(child), "children at the depth bound stay collapsed")
	}
}

func TestNewTree_DepthZero(t *testing.T) {
	t.Parallel()

	tree := jv.NewTree(mustParse(t, treeFixture), 0)
	assert.False(t, tree.Expanded(tree.Root()))
	assert.Equal(t, []jv.NodeID{tree.Root()}, tree.Visible())
}

func TestNewTree_ExpandAll(t *testing.T) {
	t.Parallel()

	tree := jv.NewTree(mustParse(t, treeFixture), jv.DepthAll)
	// root + 3 members + 2 address members + 2 tags
	assert.Len(t, tree.Visible(), 8)
}

func TestTree_LazyChildren(t *testing.T) {
	t.Parallel()

	tree := jv.NewTree(mustParse(t, treeFixture), 1)

	var address jv.NodeID
	for _, child := range tree.Children(tree.Root()) {
		if tree.Path(child).String() == "$.address" {
			address = child
		}
	}

	assert.True(t, tree.HasChildren(address))
	assert.Empty(t, tree.Children(address), "collapsed node has no built children yet")

	tree.Expand(address)
	children := tree.Children(address)
	require.Len(t, children, 2)

	// Expanding again must not regenerate ids.
	tree.Collapse(address)
	tree.Expand(address)
	assert.Equal(t, children, tree.Children(address))
}

func TestTree_ExpandToDepthOverridesManualState(t *testing.T) {
	t.Parallel()

	tree := jv.NewTree(mustParse(t, treeFixture), jv.DepthAll)

	var address jv.NodeID
	for _, child := range tree.Children(tree.Root()) {
		if tree.Path(child).String() == "$.address" {
			address = child
		}
	}
	tree.Collapse(address)

	tree.ExpandToDepth(tree.Root(), 2)
	assert.True(t, tree.Expanded(address), "depth rule wins over prior manual collapse")
}

func TestTree_NavigateTo(t *testing.T) {
	t.Parallel()

	t.Run("expands ancestors to reach the target", func(t *testing.T) {
		t.Parallel()
		tree := jv.NewTree(mustParse(t, treeFixture), 0)
		path, err := jv.ParsePath("$.address.city")
		require.NoError(t, err)

		id, ok := tree.NavigateTo(path)
		require.True(t, ok)
		assert.Equal(t, "$.address.city", tree.Path(id).String())
		assert.True(t, tree.Expanded(tree.Parent(id)))
	})

	t.Run("partial resolution lands on deepest ancestor", func(t *testing.T) {
		t.Parallel()
		tree := jv.NewTree(mustParse(t, treeFixture), 0)
		path, err := jv.ParsePath("$.address.country")
		require.NoError(t, err)

		id, ok := tree.NavigateTo(path)
		assert.False(t, ok)
		assert.Equal(t, "$.address", tree.Path(id).String())
	})
}

func TestTree_CursorMovement(t *testing.T) {
	t.Parallel()

	tree := jv.NewTree(mustParse(t, treeFixture), 1)
	visible := tree.Visible()
	require.Len(t, visible, 4)

	first := visible[0]
	last := visible[len(visible)-1]

	assert.Equal(t, first, tree.Prev(first), "prev at the top does not move")
	assert.Equal(t, last, tree.Next(last), "next at the bottom does not move")
	assert.Equal(t, visible[1], tree.Next(first))
	assert.Equal(t, visible[2], tree.Prev(visible[3]))
}

func TestTree_ParentAndFirstChild(t *testing.T) {
	t.Parallel()

	tree := jv.NewTree(mustParse(t, treeFixture), 1)
	root := tree.Root()

	assert.Equal(t, jv.NoNode, tree.Parent(root))

	firstChild := tree.FirstChild(root)
	assert.NotEqual(t, root, firstChild)
	assert.Equal(t, root, tree.Parent(firstChild))

	// A collapsed container is its own first child.
	var address jv.NodeID
	for _, child := range tree.Children(root) {
		if tree.Path(child).String() == "$.address" {
			address = child
		}
	}
	assert.Equal(t, address, tree.FirstChild(address))
}

func TestTree_LeafExpandIsNoOp(t *testing.T) {
	t.Parallel()

	tree := jv.NewTree(mustParse(t, treeFixture), 1)
	leaf := tree.FirstChild(tree.Root()) // $.name
	tree.Expand(leaf)
	assert.False(t, tree.Expanded(leaf))
	assert.Empty(t, tree.Children(leaf))
}
