package mzip

import (
	"github.com/chronos-tachyon/assert"
)

// NodeIndex addresses a Node inside a Tree.
type NodeIndex int32

// NoNode marks a missing child.
const NoNode = NodeIndex(-1)

// placeholderSymbol is the payload of every internal node.  It is never
// rendered; the grammar tells leaves and internal nodes apart by brackets.
const placeholderSymbol = Symbol(0)

// Node is one node of a code tree.  A leaf has no children.  Trees built by
// BuildTree give every internal node two children; trees read back by
// ParseTree may also contain internal nodes with a single Left child.
type Node struct {
	Symbol Symbol
	Left   NodeIndex
	Right  NodeIndex
	Weight uint64
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// Tree is a code tree stored as an arena of nodes.  Children are referenced
// by index and there are no parent links.
type Tree struct {
	nodes []Node
	root  NodeIndex
}

// Root returns the index of the root node.
func (t *Tree) Root() NodeIndex {
	return t.root
}

// Node returns the node at index i.
func (t *Tree) Node(i NodeIndex) Node {
	return t.nodes[i]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Weight returns the summed frequency of every leaf.  Parsed trees carry no
// weights.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].Weight
}

func (t *Tree) addLeaf(s Symbol, weight uint64) NodeIndex {
	t.nodes = append(t.nodes, Node{Symbol: s, Left: NoNode, Right: NoNode, Weight: weight})
	return NodeIndex(len(t.nodes) - 1)
}

func (t *Tree) addInternal(left, right NodeIndex, weight uint64) NodeIndex {
	t.nodes = append(t.nodes, Node{Symbol: placeholderSymbol, Left: left, Right: right, Weight: weight})
	return NodeIndex(len(t.nodes) - 1)
}

// BuildTree runs the greedy Huffman construction over st.
//
// The queue is seeded with one leaf per symbol, in st.Symbols() order.  Then
// the two lightest fragments are repeatedly merged: the first one extracted
// becomes the Right child (the "1" branch) and the second one the Left child
// (the "0" branch).  Input with a single distinct symbol yields a tree that
// is a single leaf.
//
// BuildTree fails only with ErrEmptyInput.
//
func BuildTree(st SymbolTable) (*Tree, error) {
	symbols := st.Symbols()
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}

	// n leaves always produce n-1 internal nodes.
	t := &Tree{nodes: make([]Node, 0, 2*len(symbols)-1)}

	var q MergeQueue
	for _, s := range symbols {
		q.Insert(t.addLeaf(s, st.Count(s)), st.Count(s))
	}

	for q.Len() > 1 {
		first, firstWeight := q.ExtractMin()
		second, secondWeight := q.ExtractMin()
		sum := firstWeight + secondWeight
		q.Insert(t.addInternal(second, first, sum), sum)
	}

	t.root, _ = q.ExtractMin()
	assert.Assertf(len(t.nodes) == 2*len(symbols)-1, "built %d nodes from %d symbols", len(t.nodes), len(symbols))
	return t, nil
}
