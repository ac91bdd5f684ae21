package cowtrie

// entries collects every key-value pair reachable from the root.
func entries(t Trie) map[string]any {
	out := map[string]any{}

	var walk func(n *node, key []byte)
	walk = func(n *node, key []byte) {
		if n.hasValue() {
			out[string(key)] = valueOf(n.payload)
		}
		for _, l := range n.labels() {
			walk(n.get(l), append(key, l))
		}
	}

	if t.root != nil {
		walk(t.root, nil)
	}

	return out
}

// deadNodes counts plain nodes without children (must always be zero).
func deadNodes(t Trie) int {
	var walk func(n *node) int
	walk = func(n *node) int {
		cnt := 0
		if !n.hasValue() && n.len() == 0 {
			cnt++
		}
		for _, c := range n.nodes {
			cnt += walk(c)
		}
		return cnt
	}

	if t.root == nil {
		return 0
	}
	return walk(t.root)
}

// countNodes counts distinct nodes reachable from the given versions.
func countNodes(versions ...Trie) int {
	seen := map[*node]struct{}{}

	var walk func(n *node)
	walk = func(n *node) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		for _, c := range n.nodes {
			walk(c)
		}
	}

	for _, t := range versions {
		if t.root != nil {
			walk(t.root)
		}
	}

	return len(seen)
}
