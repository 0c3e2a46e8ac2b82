// Package merkle folds an ordered list of hex digests into a single root.
//
// The leaf layer is padded once by duplicating its last digest when its length
// is odd. Digests are then consumed from the front of a queue two at a time;
// the parent is the hash of the two hex strings concatenated (first + second)
// and is pushed to the back of the queue. The last digest left is the root.
// Pairing is positional, so reordering the leaves changes the root.
package merkle

import (
	"errors"

	"github.com/luca-patrignani/powchain/hashing"
)

var (
	ErrNoLeaves        = errors.New("merkle: no leaves")
	ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")
)

// Step is one sibling on the path from a leaf to the root.
// Left is true when the sibling was the first element of the pair.
type Step struct {
	Sibling string `json:"sibling"`
	Left    bool   `json:"left"`
}

// Proof is the ordered list of siblings needed to rebuild the root from a leaf.
type Proof []Step

// Parent hashes a pair of digests.
func Parent(first, second string) string {
	return hashing.MustSum(first + second)
}

// Root returns the root of leaves, or hashing.ZeroHash when there are none.
func Root(leaves []string) string {
	if len(leaves) == 0 {
		return hashing.ZeroHash
	}
	queue := pad(leaves)
	for len(queue) > 1 {
		queue = append(queue[2:], Parent(queue[0], queue[1]))
	}
	return queue[0]
}

// Prove returns the inclusion proof of leaves[index].
func Prove(leaves []string, index int) (Proof, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}
	if index < 0 || index >= len(leaves) {
		return nil, ErrIndexOutOfRange
	}

	type node struct {
		hash   string
		onPath bool
	}
	padded := pad(leaves)
	queue := make([]node, len(padded))
	for i, h := range padded {
		queue[i] = node{hash: h, onPath: i == index}
	}

	var proof Proof
	for len(queue) > 1 {
		first, second := queue[0], queue[1]
		switch {
		case first.onPath:
			proof = append(proof, Step{Sibling: second.hash})
		case second.onPath:
			proof = append(proof, Step{Sibling: first.hash, Left: true})
		}
		queue = append(queue[2:], node{
			hash:   Parent(first.hash, second.hash),
			onPath: first.onPath || second.onPath,
		})
	}
	return proof, nil
}

// Verify reports whether leaf together with proof rebuilds root.
func Verify(root, leaf string, proof Proof) bool {
	h := leaf
	for _, s := range proof {
		if s.Left {
			h = Parent(s.Sibling, h)
		} else {
			h = Parent(h, s.Sibling)
		}
	}
	return h == root
}

func pad(leaves []string) []string {
	out := make([]string, len(leaves), len(leaves)+1)
	copy(out, leaves)
	if len(out)%2 == 1 {
		out = append(out, out[len(out)-1])
	}
	return out
}
