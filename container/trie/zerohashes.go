package trie

import (
	"github.com/lidofinance/beacon-exit-verifier/crypto/hash"
)

// MaxTrieDepth is the deepest trie this package will build. It covers the
// validator registry limit of 2^40 with room to spare.
const MaxTrieDepth = 64

// ZeroHashes is a representation of all the "zero" values of a trie at
// each of its depths: ZeroHashes[0] is the zero leaf, ZeroHashes[i+1] the
// hash of two ZeroHashes[i] siblings.
var ZeroHashes [][32]byte

func init() {
	ZeroHashes = make([][32]byte, MaxTrieDepth+1)
	for i := 0; i < MaxTrieDepth; i++ {
		ZeroHashes[i+1] = hash.Hash(append(ZeroHashes[i][:], ZeroHashes[i][:]...))
	}
}
