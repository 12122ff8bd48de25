package types_test

import (
	"testing"

	beacontypes "github.com/lidofinance/beacon-exit-verifier/beacon/types"
	"github.com/lidofinance/beacon-exit-verifier/container/trie"
	"github.com/lidofinance/beacon-exit-verifier/crypto/hash"
	"github.com/lidofinance/beacon-exit-verifier/encoding/ssz"
	"github.com/stretchr/testify/require"
)

func TestBeaconBlockHeader_HashTreeRoot(t *testing.T) {
	header := &beacontypes.BeaconBlockHeader{
		Slot:          100,
		ProposerIndex: 7,
		ParentRoot:    hash.Hash([]byte("parent")),
		StateRoot:     hash.Hash([]byte("state")),
		BodyRoot:      hash.Hash([]byte("body")),
	}
	root, err := header.HashTreeRoot()
	require.NoError(t, err)

	slotRoot := ssz.Uint64Root(100)
	proposerRoot := ssz.Uint64Root(7)
	items := [][]byte{
		slotRoot[:],
		proposerRoot[:],
		header.ParentRoot[:],
		header.StateRoot[:],
		header.BodyRoot[:],
	}
	tr, err := trie.GenerateTrieFromItems(items, 3)
	require.NoError(t, err)
	require.Equal(t, tr.Root(), root)
}

func TestBeaconBlockHeader_RootChangesWithSlot(t *testing.T) {
	header := &beacontypes.BeaconBlockHeader{Slot: 1}
	r1, err := header.HashTreeRoot()
	require.NoError(t, err)
	header.Slot = 2
	r2, err := header.HashTreeRoot()
	require.NoError(t, err)
	require.NotEqual(t, r1, r2)
}

func TestValidator_HashTreeRootWithPubkey(t *testing.T) {
	var pubkey [48]byte
	pubkey[0] = 0xab
	validator := &beacontypes.Validator{
		WithdrawalCredentials:      hash.Hash([]byte("credentials")),
		EffectiveBalance:           32_000_000_000,
		Slashed:                    false,
		ActivationEligibilityEpoch: 3,
		ActivationEpoch:            4,
		WithdrawableEpoch:          beacontypes.FarFutureEpoch,
	}
	root, err := validator.HashTreeRootWithPubkey(pubkey)
	require.NoError(t, err)

	pubkeyRoot := ssz.PubkeyRoot(pubkey)
	effectiveBalanceRoot := ssz.Uint64Root(32_000_000_000)
	slashedRoot := ssz.BoolRoot(false)
	eligibilityRoot := ssz.Uint64Root(3)
	activationRoot := ssz.Uint64Root(4)
	exitRoot := ssz.Uint64Root(uint64(beacontypes.FarFutureEpoch))
	withdrawableRoot := ssz.Uint64Root(uint64(beacontypes.FarFutureEpoch))
	items := [][]byte{
		pubkeyRoot[:],
		validator.WithdrawalCredentials[:],
		effectiveBalanceRoot[:],
		slashedRoot[:],
		eligibilityRoot[:],
		activationRoot[:],
		exitRoot[:],
		withdrawableRoot[:],
	}
	tr, err := trie.GenerateTrieFromItems(items, 3)
	require.NoError(t, err)
	require.Equal(t, tr.Root(), root)
}

func TestValidator_RootDependsOnPubkey(t *testing.T) {
	validator := &beacontypes.Validator{}
	var pk1, pk2 [48]byte
	pk2[47] = 1
	r1, err := validator.HashTreeRootWithPubkey(pk1)
	require.NoError(t, err)
	r2, err := validator.HashTreeRootWithPubkey(pk2)
	require.NoError(t, err)
	require.NotEqual(t, r1, r2)
}
