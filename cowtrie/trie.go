package cowtrie

import (
	"io"
)

// Trie is one immutable version of the key-value mapping.
// The zero value is an empty trie ready to use.
type Trie struct {
	root *node
}

// New returns the empty trie.
func New() Trie {
	return Trie{}
}

// Empty reports whether the trie holds no keys.
func (t Trie) Empty() bool {
	return t.root == nil
}

// find walks the key and returns the node it lands on, or nil.
func (t Trie) find(key string) *node {
	cur := t.root

	for i := 0; i < len(key) && cur != nil; i++ {
		cur = cur.get(key[i])
	}

	return cur
}

// Get returns the value stored under key. It reports false if the key has no
// value or the value was stored with a type other than T.
func Get[T any](t Trie, key string) (T, bool) {
	if n := t.find(key); n != nil && n.hasValue() {
		return unbox[T](n.payload)
	}

	var zero T
	return zero, false
}

// Has reports whether key has a value of any type.
func (t Trie) Has(key string) bool {
	n := t.find(key)
	return n != nil && n.hasValue()
}

// Lookup returns the value stored under key as an interface.
func (t Trie) Lookup(key string) (any, bool) {
	if n := t.find(key); n != nil && n.hasValue() {
		return valueOf(n.payload), true
	}
	return nil, false
}

// Put returns a new version of t where key maps to val.
// Only the nodes on the path to key are copied, the rest is shared with t.
func Put[T any](t Trie, key string, val T) Trie {
	// descend: path[i] is the existing node at depth i (nil once off the tree)
	var (
		path = make([]*node, len(key))
		cur  = t.root
	)

	for i := 0; i < len(key); i++ {
		path[i] = cur
		cur = cur.child(key[i])
	}

	// the new value node keeps the children of the node it replaces
	built := &node{payload: &box[T]{val: val}}
	if cur != nil {
		built.children = cur.children
	}

	// ascend
	for i := len(key) - 1; i >= 0; i-- {
		built = path[i].withChild(key[i], built)
	}

	return Trie{root: built}
}

// Remove returns a new version of t without a value for key. Branches left
// without values are pruned. If key has no value, t itself is returned.
func Remove(t Trie, key string) Trie {
	var (
		path = make([]*node, len(key))
		cur  = t.root
	)

	for i := 0; i < len(key); i++ {
		if cur == nil {
			return t
		}
		path[i] = cur
		cur = cur.get(key[i])
	}

	if cur == nil || !cur.hasValue() {
		return t
	}

	// demote the value node, or drop it entirely if it is a leaf
	var built *node
	if cur.len() > 0 {
		built = &node{children: cur.children}
	}

	for i := len(key) - 1; i >= 0; i-- {
		parent := path[i]

		if built != nil {
			built = parent.withChild(key[i], built)
			continue
		}

		rest := parent.without(key[i])
		if rest.len() == 0 && !parent.hasValue() {
			continue // collapse parent as well
		}

		built = &node{children: rest, payload: parent.payload}
	}

	return Trie{root: built}
}

// Dump writes a human readable rendering of the trie, one node per line.
func (t Trie) Dump(w io.Writer) {
	if t.root == nil {
		_, _ = io.WriteString(w, "<empty>\n")
		return
	}
	t.root.dump(w, "<root>", 0)
}
