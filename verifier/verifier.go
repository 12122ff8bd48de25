// Package verifier proves validator exit delays against trusted beacon block
// roots. It is a pure, synchronous evaluator: each call reads its inputs and
// the two injected collaborators (root source, exit request registry) and
// either returns one report per witness or fails the whole call.
package verifier

import (
	"context"
	"math/bits"

	"github.com/lidofinance/beacon-exit-verifier/beacon/merkle"
	beacontypes "github.com/lidofinance/beacon-exit-verifier/beacon/types"
	"github.com/lidofinance/beacon-exit-verifier/config/params"
	"github.com/lidofinance/beacon-exit-verifier/exitrequests"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/sirupsen/logrus"
)

// Report is the outcome of one successfully evaluated witness.
type Report struct {
	ModuleID                 uint64
	NodeOperatorID           uint64
	ProofSlotTimestamp       uint64
	Pubkey                   [exitrequests.PubkeyLength]byte
	SecondsSinceEligibleExit uint64
}

// Verifier checks validator witnesses against roots attested by the root
// source and derives exit delay reports. It holds no mutable state and is
// safe for concurrent use.
type Verifier struct {
	cfg        *params.Config
	gi         *GIndexProvider
	rootSource RootSource
	registry   ExitRequestRegistry
}

// New constructs a verifier over a validated config and its two
// collaborators.
func New(cfg *params.Config, rootSource RootSource, registry ExitRequestRegistry) (*Verifier, error) {
	if cfg == nil {
		return nil, errors.New("verifier: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rootSource == nil {
		return nil, errors.New("verifier: nil root source")
	}
	if registry == nil {
		return nil, errors.New("verifier: nil exit request registry")
	}
	return &Verifier{
		cfg:        cfg,
		gi:         NewGIndexProvider(cfg),
		rootSource: rootSource,
		registry:   registry,
	}, nil
}

// GIndexProvider exposes the fork-aware index resolver backing the verifier.
func (v *Verifier) GIndexProvider() *GIndexProvider {
	return v.gi
}

// VerifyExitDelays proves every witness against the state committed to by
// the provable header and returns one report per witness, in witness order.
// Any failure aborts the whole call; there is no partial result.
func (v *Verifier) VerifyExitDelays(
	ctx context.Context,
	provable *beacontypes.ProvableBeaconBlockHeader,
	witnesses []beacontypes.ValidatorWitness,
	batch *exitrequests.Batch,
) ([]Report, error) {
	if err := v.verifyProvableHeader(ctx, provable); err != nil {
		verificationFailuresTotal.Inc()
		return nil, err
	}
	reports, err := v.evaluate(ctx, provable.Header.StateRoot, provable.Header.Slot, witnesses, batch)
	if err != nil {
		verificationFailuresTotal.Inc()
		return nil, err
	}
	return reports, nil
}

// VerifyHistoricalExitDelays first proves an older header against the state
// of a recently provable one via the historical summaries tree, then treats
// the older header's state root as the trusted root for the witnesses.
func (v *Verifier) VerifyHistoricalExitDelays(
	ctx context.Context,
	provable *beacontypes.ProvableBeaconBlockHeader,
	oldBlock *beacontypes.HistoricalHeaderWitness,
	witnesses []beacontypes.ValidatorWitness,
	batch *exitrequests.Batch,
) ([]Report, error) {
	reports, err := v.verifyHistorical(ctx, provable, oldBlock, witnesses, batch)
	if err != nil {
		verificationFailuresTotal.Inc()
		return nil, err
	}
	return reports, nil
}

func (v *Verifier) verifyHistorical(
	ctx context.Context,
	provable *beacontypes.ProvableBeaconBlockHeader,
	oldBlock *beacontypes.HistoricalHeaderWitness,
	witnesses []beacontypes.ValidatorWitness,
	batch *exitrequests.Batch,
) ([]Report, error) {
	if err := v.verifyProvableHeader(ctx, provable); err != nil {
		return nil, err
	}
	if err := v.checkSlotSupported(oldBlock.Header.Slot); err != nil {
		return nil, err
	}
	gi, err := v.gi.HistoricalBlockRootGIndex(provable.Header.Slot, oldBlock.Header.Slot)
	if err != nil {
		return nil, err
	}
	leaf, err := oldBlock.Header.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not hash old block header")
	}
	if err := merkle.VerifyProof(leaf, gi, oldBlock.Proof, provable.Header.StateRoot); err != nil {
		return nil, errors.Wrapf(err, "old block header at slot %d", oldBlock.Header.Slot)
	}
	// The old header is now proven; its state root becomes the trusted root.
	return v.evaluate(ctx, oldBlock.Header.StateRoot, oldBlock.Header.Slot, witnesses, batch)
}

// verifyProvableHeader establishes trust in a header: its slot must be
// supported and its hash tree root must equal the root the root source
// attests for the given timestamp.
func (v *Verifier) verifyProvableHeader(ctx context.Context, provable *beacontypes.ProvableBeaconBlockHeader) error {
	if err := v.checkSlotSupported(provable.Header.Slot); err != nil {
		return err
	}
	root, err := v.rootSource.BlockRoot(ctx, provable.RootsTimestamp)
	if err != nil {
		return errors.Wrapf(ErrRootNotFound, "timestamp %d: %v", provable.RootsTimestamp, err)
	}
	if root == ([32]byte{}) {
		return errors.Wrapf(ErrRootNotFound, "timestamp %d", provable.RootsTimestamp)
	}
	leaf, err := provable.Header.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash block header")
	}
	if leaf != root {
		return errors.Wrapf(ErrInvalidBlockHeader, "slot %d", provable.Header.Slot)
	}
	return nil
}

func (v *Verifier) checkSlotSupported(slot types.Slot) error {
	if slot < v.cfg.FirstSupportedSlot {
		return errors.Wrapf(ErrUnsupportedSlot, "slot %d, first supported %d", slot, v.cfg.FirstSupportedSlot)
	}
	return nil
}

// evaluate proves each witness under the trusted state root and derives its
// exit delay. Witnesses are evaluated in order; the first failure aborts the
// batch.
func (v *Verifier) evaluate(
	ctx context.Context,
	stateRoot [32]byte,
	slot types.Slot,
	witnesses []beacontypes.ValidatorWitness,
	batch *exitrequests.Batch,
) ([]Report, error) {
	requests, err := exitrequests.Decode(batch)
	if err != nil {
		return nil, err
	}
	deliveries, err := v.registry.DeliveryTimestamps(ctx, batch.Hash())
	if err != nil {
		return nil, err
	}
	proofTimestamp := v.cfg.GenesisTime + uint64(slot)*v.cfg.SecondsPerSlot

	reports := make([]Report, 0, len(witnesses))
	for i := range witnesses {
		w := &witnesses[i]
		if w.ExitRequestIndex >= uint64(len(requests)) {
			return nil, errors.Wrapf(ErrExitRequestIndexOutOfRange,
				"witness %d references request %d of %d", i, w.ExitRequestIndex, len(requests))
		}
		request := &requests[w.ExitRequestIndex]

		gi, err := v.gi.ValidatorGIndex(request.ValidatorIndex, slot)
		if err != nil {
			return nil, err
		}
		leaf, err := w.Validator.HashTreeRootWithPubkey(request.Pubkey)
		if err != nil {
			return nil, errors.Wrapf(err, "could not hash validator %d", request.ValidatorIndex)
		}
		if err := merkle.VerifyProof(leaf, gi, w.Proof, stateRoot); err != nil {
			return nil, errors.Wrapf(err, "validator %d under state root at slot %d", request.ValidatorIndex, slot)
		}
		witnessesVerifiedTotal.Inc()

		if w.ExitRequestIndex >= uint64(len(deliveries)) || deliveries[w.ExitRequestIndex] == 0 {
			return nil, errors.Wrapf(exitrequests.ErrRequestsNotDelivered, "request %d", w.ExitRequestIndex)
		}
		deliveryTimestamp := deliveries[w.ExitRequestIndex]

		// The earliest moment a voluntary exit could have been requested for
		// this validator, or the actual request delivery, whichever is later.
		// A pending validator carries FAR_FUTURE_EPOCH as its activation
		// epoch; the sum overflows uint64 and the exit cannot be eligible.
		overflow, activationSeconds := bits.Mul64(uint64(w.Validator.ActivationEpoch), v.cfg.SlotsPerEpoch*v.cfg.SecondsPerSlot)
		eligibleExitTimestamp, carry1 := bits.Add64(v.cfg.GenesisTime, activationSeconds, 0)
		eligibleExitTimestamp, carry2 := bits.Add64(eligibleExitTimestamp, v.cfg.ShardCommitteePeriodSeconds, 0)
		if overflow != 0 || carry1 != 0 || carry2 != 0 {
			return nil, errors.Wrapf(ErrExitIsNotEligible,
				"validator %d: activation epoch %d not reached", request.ValidatorIndex, w.Validator.ActivationEpoch)
		}
		referenceTimestamp := eligibleExitTimestamp
		if deliveryTimestamp > referenceTimestamp {
			referenceTimestamp = deliveryTimestamp
		}

		if proofTimestamp <= referenceTimestamp {
			return nil, errors.Wrapf(ErrExitIsNotEligible,
				"validator %d: proof timestamp %d, reference %d", request.ValidatorIndex, proofTimestamp, referenceTimestamp)
		}

		reports = append(reports, Report{
			ModuleID:                 request.ModuleID,
			NodeOperatorID:           request.NodeOperatorID,
			ProofSlotTimestamp:       proofTimestamp,
			Pubkey:                   request.Pubkey,
			SecondsSinceEligibleExit: proofTimestamp - referenceTimestamp,
		})
		reportsEmittedTotal.Inc()
	}

	log.WithFields(logrus.Fields{
		"slot":     slot,
		"reports":  len(reports),
		"requests": len(requests),
	}).Debug("Verified exit delay batch")
	return reports, nil
}
