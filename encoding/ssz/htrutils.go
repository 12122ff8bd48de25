// Package ssz defines HashTreeRoot utility functions according to the
// Ethereum Simple Serialize specification.
package ssz

import (
	"github.com/lidofinance/beacon-exit-verifier/crypto/hash"
	"github.com/lidofinance/beacon-exit-verifier/encoding/bytesutil"
)

// Uint64Root computes the HashTreeRoot Merkleization of
// a simple uint64 value according to the Ethereum
// Simple Serialize specification.
func Uint64Root(val uint64) [32]byte {
	return bytesutil.ToBytes32(bytesutil.Uint64ToBytesLittleEndian(val))
}

// BoolRoot computes the HashTreeRoot Merkleization of a boolean value.
func BoolRoot(val bool) [32]byte {
	var root [32]byte
	if val {
		root[0] = 1
	}
	return root
}

// PubkeyRoot computes the HashTreeRoot Merkleization of a 48-byte BLS
// public key: two 32-byte chunks, the second zero-padded, combined once.
func PubkeyRoot(pubkey [48]byte) [32]byte {
	hasher := hash.NewHasherFunc(hash.CustomSHA256Hasher())
	return hasher.Combi(bytesutil.ToBytes32(pubkey[:32]), bytesutil.ToBytes32(pubkey[32:]))
}

// MixInLength appends hash length to root.
func MixInLength(root [32]byte, length []byte) [32]byte {
	var hashArray [64]byte
	copy(hashArray[:32], root[:])
	copy(hashArray[32:], length)
	return hash.Hash(hashArray[:])
}
