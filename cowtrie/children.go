package cowtrie

import (
	"github.com/hideo55/go-popcount"
)

// children is an immutable sparse array of 256 child slots.
// Methods returning children never modify the receiver.
type children struct {
	bitmap [4]uint64 // 256 bits, one per label
	nodes  []*node   // ordered by label
}

func split(label byte) (ofs byte, bit byte) {
	return label >> 6, label & 0x3F // 0x3F == 0011 1111
}

func (c children) has(label byte) bool {
	ofs, bit := split(label)
	return (c.bitmap[ofs]>>bit)&1 != 0
}

// rank is the index in nodes of the slot for label (set or not)
func (c children) rank(label byte) int {
	ofs, bit := split(label)
	cnt := popcount.Count(c.bitmap[ofs] & ((1 << bit) - 1))

	for j := byte(0); j < ofs; j++ {
		cnt += popcount.Count(c.bitmap[j])
	}

	return int(cnt)
}

func (c children) get(label byte) *node {
	if !c.has(label) {
		return nil
	}
	return c.nodes[c.rank(label)]
}

func (c children) len() int {
	return len(c.nodes)
}

// with returns a copy having child at label (replaced or inserted).
func (c children) with(label byte, child *node) children {
	var (
		idx = c.rank(label)
		out = children{bitmap: c.bitmap}
	)

	if c.has(label) {
		out.nodes = make([]*node, len(c.nodes))
		copy(out.nodes, c.nodes)
		out.nodes[idx] = child

		return out
	}

	ofs, bit := split(label)
	out.bitmap[ofs] |= 1 << bit

	out.nodes = make([]*node, len(c.nodes)+1)
	copy(out.nodes[:idx], c.nodes[:idx])
	out.nodes[idx] = child
	copy(out.nodes[idx+1:], c.nodes[idx:])

	return out
}

// without returns a copy lacking the child at label.
func (c children) without(label byte) children {
	if !c.has(label) {
		return c
	}

	var (
		idx = c.rank(label)
		out = children{bitmap: c.bitmap}
	)

	ofs, bit := split(label)
	out.bitmap[ofs] &^= 1 << bit

	if len(c.nodes) > 1 {
		out.nodes = make([]*node, len(c.nodes)-1)
		copy(out.nodes[:idx], c.nodes[:idx])
		copy(out.nodes[idx:], c.nodes[idx+1:])
	}

	return out
}

// labels lists the set labels in ascending order.
func (c children) labels() []byte {
	out := make([]byte, 0, len(c.nodes))

	for ofs, bmp := range c.bitmap {
		for bit := 0; bmp != 0; bit++ {
			if bmp&1 != 0 {
				out = append(out, byte(ofs<<6|bit))
			}
			bmp >>= 1
		}
	}

	return out
}
