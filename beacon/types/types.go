// Package types holds the consensus containers and witness inputs the
// verifier operates on.
package types

import (
	"github.com/lidofinance/beacon-exit-verifier/encoding/ssz"
	eth2types "github.com/prysmaticlabs/eth2-types"
)

// FarFutureEpoch marks an epoch that has not been scheduled, per the
// consensus specification.
const FarFutureEpoch = eth2types.Epoch(^uint64(0))

// BeaconBlockHeader is a commitment to one beacon chain state.
type BeaconBlockHeader struct {
	Slot          eth2types.Slot
	ProposerIndex eth2types.ValidatorIndex
	ParentRoot    [32]byte
	StateRoot     [32]byte
	BodyRoot      [32]byte
}

// HashTreeRoot computes the Merkleization of the header according to the
// Ethereum Simple Serialize specification.
func (h *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	fieldRoots := [][32]byte{
		ssz.Uint64Root(uint64(h.Slot)),
		ssz.Uint64Root(uint64(h.ProposerIndex)),
		h.ParentRoot,
		h.StateRoot,
		h.BodyRoot,
	}
	return ssz.BitwiseMerkleize(fieldRoots, uint64(len(fieldRoots)), uint64(len(fieldRoots)))
}

// Validator carries the provable part of the consensus Validator container.
// The pubkey is supplied out of band (from the decoded exit request) and the
// exit epoch is pinned to FarFutureEpoch: a witness for a validator that has
// already initiated an exit will simply fail verification.
type Validator struct {
	WithdrawalCredentials      [32]byte
	EffectiveBalance           uint64
	Slashed                    bool
	ActivationEligibilityEpoch eth2types.Epoch
	ActivationEpoch            eth2types.Epoch
	WithdrawableEpoch          eth2types.Epoch
}

// HashTreeRootWithPubkey computes the Merkleization of the full 8-field
// Validator container, Capella-onward layout, from the witness fields plus
// the externally supplied pubkey.
func (v *Validator) HashTreeRootWithPubkey(pubkey [48]byte) ([32]byte, error) {
	fieldRoots := [][32]byte{
		ssz.PubkeyRoot(pubkey),
		v.WithdrawalCredentials,
		ssz.Uint64Root(v.EffectiveBalance),
		ssz.BoolRoot(v.Slashed),
		ssz.Uint64Root(uint64(v.ActivationEligibilityEpoch)),
		ssz.Uint64Root(uint64(v.ActivationEpoch)),
		ssz.Uint64Root(uint64(FarFutureEpoch)),
		ssz.Uint64Root(uint64(v.WithdrawableEpoch)),
	}
	return ssz.BitwiseMerkleize(fieldRoots, uint64(len(fieldRoots)), uint64(len(fieldRoots)))
}

// ProvableBeaconBlockHeader is a header together with the timestamp key under
// which an external root source attests to its hash.
type ProvableBeaconBlockHeader struct {
	Header         *BeaconBlockHeader
	RootsTimestamp uint64
}

// HistoricalHeaderWitness proves an older header against the state root of a
// recently provable one via the historical summaries tree.
type HistoricalHeaderWitness struct {
	Header *BeaconBlockHeader
	Proof  [][32]byte
}

// ValidatorWitness proves one validator record under a trusted state root and
// names the exit request the record answers for.
type ValidatorWitness struct {
	ExitRequestIndex uint64
	Validator        Validator
	Proof            [][32]byte
}
