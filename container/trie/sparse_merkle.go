// Package trie defines utilities for sparse merkle tries for Ethereum consensus.
package trie

import (
	"fmt"

	"github.com/lidofinance/beacon-exit-verifier/crypto/hash"
	"github.com/lidofinance/beacon-exit-verifier/encoding/bytesutil"
	"github.com/pkg/errors"
)

// SparseMerkleTrie implements a sparse, general purpose Merkle trie to be used
// for building proof fixtures and recomputing subtree roots. Empty positions
// are padded with zero hashes, so a trie of any depth can be built from a
// handful of occupied leaves.
type SparseMerkleTrie struct {
	depth         uint
	branches      [][][]byte
	originalItems [][]byte // list of provided items before hashing them into leaves.
}

// NewTrie returns a new merkle trie filled with zerohashes to use.
func NewTrie(depth uint64) (*SparseMerkleTrie, error) {
	var zeroBytes [32]byte
	items := [][]byte{zeroBytes[:]}
	return GenerateTrieFromItems(items, depth)
}

// GenerateTrieFromItems constructs a Merkle trie from a sequence of byte slices.
func GenerateTrieFromItems(items [][]byte, depth uint64) (*SparseMerkleTrie, error) {
	if len(items) == 0 {
		return nil, errors.New("no items provided to generate Merkle trie")
	}
	if depth >= MaxTrieDepth {
		return nil, errors.New("supported merkle trie depth exceeded (max uint64 depth is 63)")
	}
	leaves := items
	layers := make([][][]byte, depth+1)
	transformedLeaves := make([][]byte, len(leaves))
	for i := range leaves {
		arr := bytesutil.ToBytes32(leaves[i])
		transformedLeaves[i] = arr[:]
	}
	layers[0] = transformedLeaves
	for i := uint64(0); i < depth; i++ {
		if len(layers[i])%2 == 1 {
			layers[i] = append(layers[i], ZeroHashes[i][:])
		}
		updatedValues := make([][]byte, 0)
		for j := 0; j < len(layers[i]); j += 2 {
			concat := hash.Hash(append(layers[i][j], layers[i][j+1]...))
			updatedValues = append(updatedValues, concat[:])
		}
		layers[i+1] = updatedValues
	}
	return &SparseMerkleTrie{
		branches:      layers,
		originalItems: items,
		depth:         uint(depth),
	}, nil
}

// Items returns the original items passed in when creating the Merkle trie.
func (m *SparseMerkleTrie) Items() [][]byte {
	return m.originalItems
}

// Root of the Merkle trie. Unlike the deposit contract trie, no length is
// mixed in here; list length mixing is the concern of the SSZ layer.
func (m *SparseMerkleTrie) Root() [32]byte {
	return bytesutil.ToBytes32(m.branches[len(m.branches)-1][0])
}

// NumOfItems returns the num of items stored in the sparse merkle trie.
func (m *SparseMerkleTrie) NumOfItems() int {
	return len(m.originalItems)
}

// Insert an item into the trie.
func (m *SparseMerkleTrie) Insert(item []byte, index int) error {
	if index < 0 {
		return fmt.Errorf("negative index provided: %d", index)
	}
	for index >= len(m.branches[0]) {
		m.branches[0] = append(m.branches[0], ZeroHashes[0][:])
	}
	someItem := bytesutil.ToBytes32(item)
	m.branches[0][index] = someItem[:]
	if index >= len(m.originalItems) {
		m.originalItems = append(m.originalItems, someItem[:])
	} else {
		m.originalItems[index] = someItem[:]
	}
	currentIndex := index
	root := bytesutil.ToBytes32(item)
	for i := 0; i < int(m.depth); i++ {
		isLeft := currentIndex%2 == 0
		neighborIdx := currentIndex ^ 1
		var neighbor []byte
		if neighborIdx >= len(m.branches[i]) {
			neighbor = ZeroHashes[i][:]
		} else {
			neighbor = m.branches[i][neighborIdx]
		}
		if isLeft {
			root = hash.Hash(append(root[:], neighbor...))
		} else {
			root = hash.Hash(append(neighbor, root[:]...))
		}
		parentIdx := currentIndex / 2
		if len(m.branches[i+1]) == 0 || parentIdx >= len(m.branches[i+1]) {
			newItem := root
			m.branches[i+1] = append(m.branches[i+1], newItem[:])
		} else {
			newItem := root
			m.branches[i+1][parentIdx] = newItem[:]
		}
		currentIndex = parentIdx
	}
	return nil
}

// MerkleProof computes the sibling branch for the leaf at the given index,
// ordered from the leaf's own level up to the level below the root. The
// result feeds directly into generalized-index proof verification.
func (m *SparseMerkleTrie) MerkleProof(index int) ([][32]byte, error) {
	if index < 0 {
		return nil, fmt.Errorf("merkle index is negative: %d", index)
	}
	leaves := m.branches[0]
	if index >= len(leaves) {
		return nil, fmt.Errorf("merkle index out of range in trie, max range: %d, received: %d", len(leaves), index)
	}
	merkleIndex := uint(index)
	proof := make([][32]byte, m.depth)
	for i := uint(0); i < m.depth; i++ {
		subIndex := (merkleIndex >> i) ^ 1
		if subIndex < uint(len(m.branches[i])) {
			proof[i] = bytesutil.ToBytes32(m.branches[i][subIndex])
		} else {
			proof[i] = ZeroHashes[i]
		}
	}
	return proof, nil
}

// Copy performs a deep copy of the trie.
func (m *SparseMerkleTrie) Copy() *SparseMerkleTrie {
	dstBranches := make([][][]byte, len(m.branches))
	for i1, srcB1 := range m.branches {
		dstBranches[i1] = bytesutil.SafeCopy2dBytes(srcB1)
	}

	return &SparseMerkleTrie{
		depth:         m.depth,
		branches:      dstBranches,
		originalItems: bytesutil.SafeCopy2dBytes(m.originalItems),
	}
}
