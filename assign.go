package mzip

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its codeword.  A Code with Size 0 means the
// symbol does not occur in the tree.
type CodeTable struct {
	codes   [NumSymbols]Code
	numLeaf int
	minSize byte
	maxSize byte
}

// AssignCodes walks t breadth-first from the root, giving the Right child of
// every internal node its parent's codeword plus "1" and the Left child its
// parent's codeword plus "0".  A tree consisting of a single leaf gets the
// one-bit codeword "0".
//
// The resulting table depends only on the shape of t: the codeword of a leaf
// is the sequence of branches on its path from the root, whatever order the
// nodes are visited in.
//
func AssignCodes(t *Tree) CodeTable {
	var ct CodeTable

	root := t.Node(t.Root())
	if root.IsLeaf() {
		ct.set(root.Symbol, MakeCode(1, 0))
		return ct
	}

	type visit struct {
		index NodeIndex
		code  Code
	}

	queue := make([]visit, 0, t.Len())
	queue = append(queue, visit{t.Root(), Code{}})
	for len(queue) != 0 {
		v := queue[0]
		queue = queue[1:]

		n := t.Node(v.index)
		if n.IsLeaf() {
			ct.set(n.Symbol, v.code)
			continue
		}
		if n.Right != NoNode {
			queue = append(queue, visit{n.Right, v.code.Append(true)})
		}
		if n.Left != NoNode {
			queue = append(queue, visit{n.Left, v.code.Append(false)})
		}
	}
	return ct
}

func (ct *CodeTable) set(s Symbol, hc Code) {
	assert.Assertf(hc.Size != 0, "empty codeword for symbol %d", s)
	assert.Assertf(ct.codes[s.Byte()].Size == 0, "symbol %d appears twice in the tree", s)
	ct.codes[s.Byte()] = hc
	if ct.numLeaf == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.numLeaf++
}

// Lookup returns the codeword of s, if s has one.
func (ct CodeTable) Lookup(s Symbol) (Code, bool) {
	hc := ct.codes[s.Byte()]
	return hc, hc.Size != 0
}

// Len returns the number of symbols with a codeword.
func (ct CodeTable) Len() int {
	return ct.numLeaf
}

// MinSize is the bit length of the shortest codeword.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest codeword.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// WeightedLength returns the encoded length in bits of an input with the
// frequencies in st, i.e. the sum of count × codeword size.
func (ct CodeTable) WeightedLength(st SymbolTable) uint64 {
	var sum uint64
	for _, s := range st.Symbols() {
		sum += st.Count(s) * uint64(ct.codes[s.Byte()].Size)
	}
	return sum
}

// Dump writes a programmer-readable listing of every codeword, one
// "<token>: <bits>" line per symbol in byte order, to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for i := 0; i < NumSymbols; i++ {
		hc := ct.codes[i]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\t%d: %s\n", i, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
