package mzip

import (
	"strconv"
	"strings"
)

// The tree grammar:
//
//     tree      ::= leafToken | "(" tree " " tree ")" | "(" tree ")"
//     leafToken ::= decimal 0..255
//
// A node with two children renders as "(L R)", left child first.  A node
// with one child renders as "(C)".  A leaf renders as Symbol.Token().
// Internal nodes are always bracketed and leaves never are, so a leaf whose
// value equals the internal placeholder is still unambiguous as long as the
// parser goes by bracket structure alone.

// String renders t in the tree grammar.
func (t *Tree) String() string {
	var b strings.Builder
	t.render(&b, t.root)
	return b.String()
}

func (t *Tree) render(b *strings.Builder, i NodeIndex) {
	n := t.nodes[i]
	switch {
	case n.IsLeaf():
		b.WriteString(n.Symbol.Token())
	case n.Left != NoNode && n.Right != NoNode:
		b.WriteByte('(')
		t.render(b, n.Left)
		b.WriteByte(' ')
		t.render(b, n.Right)
		b.WriteByte(')')
	case n.Left != NoNode:
		b.WriteByte('(')
		t.render(b, n.Left)
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		t.render(b, n.Right)
		b.WriteByte(')')
	}
}

// ParseTree reads a tree written in the tree grammar.  The single child of a
// "(C)" node is stored as its Left child.
//
// Every error wraps ErrMalformedArtifact.
//
func ParseTree(text string) (*Tree, error) {
	p := treeParser{text: text, tree: &Tree{}}
	root, err := p.parseNode(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.text) {
		return nil, malformedf(p.pos, "unexpected %q after tree", p.text[p.pos:])
	}
	p.tree.root = root
	return p.tree, nil
}

type treeParser struct {
	text string
	pos  int
	tree *Tree
	seen [NumSymbols]bool
}

func (p *treeParser) parseNode(depth int) (NodeIndex, error) {
	if p.pos >= len(p.text) {
		return NoNode, malformedf(p.pos, "unexpected end of tree")
	}

	ch := p.text[p.pos]
	switch {
	case ch == '(':
		// Each bracket adds one bit to the codewords below it.
		if depth >= MaxCodeSize {
			return NoNode, malformedf(p.pos, "tree nested deeper than %d", MaxCodeSize)
		}
		p.pos++
		left, err := p.parseNode(depth + 1)
		if err != nil {
			return NoNode, err
		}
		right := NoNode
		if p.pos < len(p.text) && p.text[p.pos] == ' ' {
			p.pos++
			right, err = p.parseNode(depth + 1)
			if err != nil {
				return NoNode, err
			}
		}
		if p.pos >= len(p.text) || p.text[p.pos] != ')' {
			return NoNode, p.unexpected("')'")
		}
		p.pos++
		return p.tree.addInternal(left, right, 0), nil

	case ch >= '0' && ch <= '9':
		start := p.pos
		for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
			p.pos++
		}
		value, err := strconv.ParseUint(p.text[start:p.pos], 10, 8)
		if err != nil {
			return NoNode, malformedf(start, "leaf token %q is not in 0..255", p.text[start:p.pos])
		}
		if p.seen[value] {
			return NoNode, malformedf(start, "leaf %d appears more than once", value)
		}
		p.seen[value] = true
		return p.tree.addLeaf(SymbolOf(byte(value)), 0), nil

	default:
		return NoNode, p.unexpected("'(' or leaf token")
	}
}

func (p *treeParser) unexpected(want string) error {
	if p.pos >= len(p.text) {
		return malformedf(p.pos, "expected %s, got end of tree", want)
	}
	return malformedf(p.pos, "expected %s, got %q", want, p.text[p.pos])
}
