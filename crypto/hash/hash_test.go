package hash_test

import (
	"crypto/sha256"
	"testing"

	"github.com/lidofinance/beacon-exit-verifier/crypto/hash"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	msg := []byte("hello world")
	require.Equal(t, sha256.Sum256(msg), hash.Hash(msg))
	require.Equal(t, sha256.Sum256(nil), hash.Hash(nil))
}

func TestCustomSHA256Hasher(t *testing.T) {
	hashFn := hash.CustomSHA256Hasher()
	msg := []byte("hello world")
	require.Equal(t, hash.Hash(msg), hashFn(msg))
	// The closure reuses its hasher across calls.
	require.Equal(t, hash.Hash(msg), hashFn(msg))
}

func TestHasherFunc_Combi(t *testing.T) {
	hasher := hash.NewHasherFunc(hash.CustomSHA256Hasher())
	a := hash.Hash([]byte("a"))
	b := hash.Hash([]byte("b"))
	expected := hash.Hash(append(a[:], b[:]...))
	require.Equal(t, expected, hasher.Combi(a, b))
}

func TestHasherFunc_MixIn(t *testing.T) {
	hasher := hash.NewHasherFunc(hash.CustomSHA256Hasher())
	a := hash.Hash([]byte("a"))
	i := uint64(42)
	mixed := hasher.MixIn(a, i)
	require.NotEqual(t, a, mixed)
	require.Equal(t, mixed, hasher.MixIn(a, i))
	require.NotEqual(t, mixed, hasher.MixIn(a, i+1))
}
