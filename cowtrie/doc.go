// Package cowtrie implements a persistent (copy-on-write) trie mapping byte strings
// to values of arbitrary types.
//
// Every Put or Remove returns a new Trie version and leaves the receiver untouched.
// Versions share all subtrees that are not on the modified path:
//
//	v1 := cowtrie.Put(cowtrie.New(), "ab", 1)
//	v2 := cowtrie.Put(v1, "ac", 2)
//
//	          v1                   v2
//	          |                    |
//	        [root]               [root']
//	          | a                  | a
//	         [.]                  [.']
//	          | b               b /  \ c
//	        [ab=1] <-------------'   [ac=2]
//
// Nodes are never modified once they are reachable from a returned Trie, so any
// number of goroutines may read any versions, and build new versions from them,
// without locking. Publishing one of several competing versions as "the current
// one" needs external synchronization (see package triestore).
//
// Edge labels are single bytes. A node keeps its children in a 256-bit presence
// bitmap and a dense slice of child pointers ordered by label:
//
//	bitmap:   [ 4 x uint64 ]   bit b is set iff there is a child for label b
//	children: [ *node ... ]   child for label b is at popcount(bitmap bits below b)
//
// Values are stored together with their static type. A Get for a different type
// reports the key as absent.
package cowtrie
