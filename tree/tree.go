// Package tree arranges the parts of a message into an ordered tree. Each node
// records whether its part is an enveloped message, that is, a message/rfc822
// body parsed again as a message of its own.
package tree

import (
	"github.com/zostay/go-mailparse/part"
)

// Node wraps one part of the tree. Every node except the root wraps a part
// with at least one header field.
type Node struct {
	part      *part.Part
	enveloped bool
	children  []*Node
}

// Part returns the part held by the node.
func (n *Node) Part() *part.Part {
	return n.part
}

// Enveloped returns true if the part held is an enveloped message.
func (n *Node) Enveloped() bool {
	return n.enveloped
}

// Children returns the child nodes in the order they appear in the message.
func (n *Node) Children() []*Node {
	return n.children
}

// Tree is the annotated part tree of a message.
type Tree struct {
	root *Node
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Flatten returns every part of the tree in depth-first pre-order, starting
// with the root.
func (t *Tree) Flatten() []*part.Part {
	parts := make([]*part.Part, 0, 8)
	_ = Walker(func(_, _ int, n *Node) error {
		parts = append(parts, n.part)
		return nil
	}).Walk(t)
	return parts
}

// EnvelopedEmail returns the first enveloped part among the direct children
// of the root or nil. Enveloped parts further down are not considered.
func (t *Tree) EnvelopedEmail() *part.Part {
	for _, c := range t.root.children {
		if c.enveloped {
			return c.part
		}
	}
	return nil
}

// HasEnvelopedEmail returns true if EnvelopedEmail would return a part.
func (t *Tree) HasEnvelopedEmail() bool {
	return t.EnvelopedEmail() != nil
}
