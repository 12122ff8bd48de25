package ssz_test

import (
	"testing"

	"github.com/lidofinance/beacon-exit-verifier/container/trie"
	"github.com/lidofinance/beacon-exit-verifier/crypto/hash"
	"github.com/lidofinance/beacon-exit-verifier/encoding/bytesutil"
	"github.com/lidofinance/beacon-exit-verifier/encoding/ssz"
	"github.com/stretchr/testify/require"
)

func TestUint64Root(t *testing.T) {
	root := ssz.Uint64Root(0x0102030405060708)
	expected := [32]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	require.Equal(t, expected, root)
}

func TestBoolRoot(t *testing.T) {
	require.Equal(t, [32]byte{}, ssz.BoolRoot(false))
	require.Equal(t, [32]byte{1}, ssz.BoolRoot(true))
}

func TestPubkeyRoot(t *testing.T) {
	var pubkey [48]byte
	for i := range pubkey {
		pubkey[i] = byte(i + 1)
	}
	var padded [64]byte
	copy(padded[:], pubkey[:])
	require.Equal(t, hash.Hash(padded[:]), ssz.PubkeyRoot(pubkey))
}

func TestMixInLength(t *testing.T) {
	root := hash.Hash([]byte("root"))
	mixed := ssz.MixInLength(root, bytesutil.Uint64ToBytesLittleEndian(7))

	var rhs [32]byte
	rhs[0] = 7
	hasher := hash.NewHasherFunc(hash.CustomSHA256Hasher())
	require.Equal(t, hasher.Combi(root, rhs), mixed)
}

func TestBitwiseMerkleize_MatchesReferenceTrie(t *testing.T) {
	chunks := make([][32]byte, 5)
	items := make([][]byte, len(chunks))
	for i := range chunks {
		chunks[i] = hash.Hash([]byte{byte(i)})
		items[i] = chunks[i][:]
	}

	root, err := ssz.BitwiseMerkleize(chunks, 5, 8)
	require.NoError(t, err)

	tr, err := trie.GenerateTrieFromItems(items, 3)
	require.NoError(t, err)
	require.Equal(t, tr.Root(), root)
}

func TestBitwiseMerkleize_OverLimit(t *testing.T) {
	chunks := make([][32]byte, 3)
	_, err := ssz.BitwiseMerkleize(chunks, 3, 2)
	require.Error(t, err)
}

func TestDepth(t *testing.T) {
	tests := []struct {
		in  uint64
		out uint8
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {8192, 13},
	}
	for _, tt := range tests {
		require.Equal(t, tt.out, ssz.Depth(tt.in), "depth of %d", tt.in)
	}
}
