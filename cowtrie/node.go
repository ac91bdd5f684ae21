package cowtrie

import (
	"fmt"
	"io"
	"strings"
)

// box keeps a value together with its static type, so that a lookup can only
// recover it as exactly the type it was stored with.
type box[T any] struct {
	val T
}

// unbox views a type-erased payload as T.
func unbox[T any](payload any) (T, bool) {
	if b, ok := payload.(*box[T]); ok {
		return b.val, true
	}

	var zero T
	return zero, false
}

// node is one trie position. A node with a nil payload is a plain node,
// otherwise it is a value node.
type node struct {
	children
	payload any // *box[T] or nil
}

func (n *node) hasValue() bool {
	return n.payload != nil
}

// child returns nil for a nil receiver, so walks can run off the tree.
func (n *node) child(label byte) *node {
	if n == nil {
		return nil
	}
	return n.get(label)
}

// withChild returns a copy of n (or of an empty node if n is nil) with the child
// at label pointing to c. The payload is carried over.
func (n *node) withChild(label byte, c *node) *node {
	if n == nil {
		var empty children
		return &node{children: empty.with(label, c)}
	}

	return &node{
		children: n.with(label, c),
		payload:  n.payload,
	}
}

// dump writes an indented rendering of the subtree
func (n *node) dump(w io.Writer, label string, depth int) {
	indent := strings.Repeat("  ", depth)

	if n.hasValue() {
		fmt.Fprintf(w, "%s%s = %v\n", indent, label, valueOf(n.payload))
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, label)
	}

	for _, l := range n.labels() {
		n.get(l).dump(w, fmt.Sprintf("%q", l), depth+1)
	}
}

// valueOf returns the payload's value as an interface
func valueOf(payload any) any {
	if v, ok := payload.(interface{ value() any }); ok {
		return v.value()
	}
	return nil
}

func (b *box[T]) value() any {
	return b.val
}
