// Package merkle verifies single-branch Merkle inclusion proofs addressed
// by generalized indices.
package merkle

import (
	"github.com/lidofinance/beacon-exit-verifier/crypto/hash"
	"github.com/lidofinance/beacon-exit-verifier/math/gindex"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidProofLength means the number of sibling hashes does not match
	// the depth encoded in the generalized index.
	ErrInvalidProofLength = errors.New("invalid proof length")
	// ErrInvalidProof means the proof does not reduce the leaf to the expected root.
	ErrInvalidProof = errors.New("proof does not match the root")
)

// CalculateRoot folds a leaf up through its sibling branch, ordering each
// two-to-one hash by the corresponding path bit of the generalized index.
// Proof hashes are consumed from the leaf's own level upward.
func CalculateRoot(leaf [32]byte, gi gindex.GIndex, proof [][32]byte) ([32]byte, error) {
	depth := gi.Depth()
	if uint64(len(proof)) != depth {
		return [32]byte{}, ErrInvalidProofLength
	}
	hasher := hash.NewHasherFunc(hash.CustomSHA256Hasher())
	node := leaf
	for i := uint64(0); i < depth; i++ {
		if gi.PathBit(i) {
			node = hasher.Combi(proof[i], node)
		} else {
			node = hasher.Combi(node, proof[i])
		}
	}
	return node, nil
}

// VerifyProof verifies a single merkle branch against the expected root.
func VerifyProof(leaf [32]byte, gi gindex.GIndex, proof [][32]byte, root [32]byte) error {
	calculated, err := CalculateRoot(leaf, gi, proof)
	if err != nil {
		return err
	}
	if calculated != root {
		return ErrInvalidProof
	}
	return nil
}
