package cowtrie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildren_WithWithout(t *testing.T) {
	t.Parallel()

	var (
		c     children
		nodes = map[byte]*node{}
	)

	// labels spanning all four bitmap words, inserted out of order
	for _, l := range []byte{255, 0, 64, 63, 128, 1, 191, 192} {
		n := &node{}
		nodes[l] = n
		c = c.with(l, n)
	}

	require.Equal(t, 8, c.len())
	assert.Equal(t, []byte{0, 1, 63, 64, 128, 191, 192, 255}, c.labels())

	for l, n := range nodes {
		assert.Same(t, n, c.get(l), fmt.Sprint(l))
	}

	assert.Nil(t, c.get(2))
	assert.Nil(t, c.get(254))

	// removing leaves the receiver untouched
	d := c.without(64)

	assert.Equal(t, 7, d.len())
	assert.Nil(t, d.get(64))
	assert.Same(t, nodes[128], d.get(128))
	assert.Same(t, nodes[64], c.get(64))
	assert.Equal(t, 8, c.len())

	// removing an absent label is a no-op
	e := d.without(64)
	assert.Equal(t, d.labels(), e.labels())
}

func TestChildren_Replace(t *testing.T) {
	t.Parallel()

	var (
		c     children
		one   = &node{}
		two   = &node{}
		other = &node{}
	)

	c = c.with('a', one).with('b', other)
	d := c.with('a', two)

	assert.Same(t, one, c.get('a'))
	assert.Same(t, two, d.get('a'))
	assert.Same(t, other, d.get('b'))
	assert.Equal(t, 2, d.len())
}

func TestChildren_Rank(t *testing.T) {
	t.Parallel()

	var c children
	for _, l := range []byte{3, 70, 140, 200} {
		c = c.with(l, &node{})
	}

	for _, tcase := range []*struct {
		Label   byte
		ExpRank int
	}{
		{0, 0},
		{3, 0},
		{4, 1},
		{70, 1},
		{71, 2},
		{140, 2},
		{199, 3},
		{200, 3},
		{255, 4},
	} {
		assert.Equal(t, tcase.ExpRank, c.rank(tcase.Label), fmt.Sprint(tcase.Label))
	}
}
