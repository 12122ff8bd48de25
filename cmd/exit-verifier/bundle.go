package main

import (
	"encoding/json"
	"io/ioutil"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	beacontypes "github.com/lidofinance/beacon-exit-verifier/beacon/types"
	"github.com/lidofinance/beacon-exit-verifier/encoding/bytesutil"
	"github.com/lidofinance/beacon-exit-verifier/exitrequests"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
)

// The bundle file carries everything one verification call needs, in beacon
// API style JSON: integers as decimal strings, roots and byte strings as
// 0x hex.
type proofBundleJson struct {
	Header           headerJson             `json:"header"`
	RootsTimestamp   string                 `json:"roots_timestamp"`
	BlockRoot        string                 `json:"block_root" hex:"true"`
	HistoricalHeader *historicalWitnessJson `json:"historical_header,omitempty"`
	Witnesses        []validatorWitnessJson `json:"witnesses"`
	ExitRequests     exitRequestsJson       `json:"exit_requests"`
	Deliveries       []string               `json:"deliveries"`
}

type headerJson struct {
	Slot          string `json:"slot"`
	ProposerIndex string `json:"proposer_index"`
	ParentRoot    string `json:"parent_root" hex:"true"`
	StateRoot     string `json:"state_root" hex:"true"`
	BodyRoot      string `json:"body_root" hex:"true"`
}

type historicalWitnessJson struct {
	Header headerJson `json:"header"`
	Proof  []string   `json:"proof" hex:"true"`
}

type validatorWitnessJson struct {
	ExitRequestIndex           string   `json:"exit_request_index"`
	WithdrawalCredentials      string   `json:"withdrawal_credentials" hex:"true"`
	EffectiveBalance           string   `json:"effective_balance"`
	Slashed                    bool     `json:"slashed"`
	ActivationEligibilityEpoch string   `json:"activation_eligibility_epoch"`
	ActivationEpoch            string   `json:"activation_epoch"`
	WithdrawableEpoch          string   `json:"withdrawable_epoch"`
	Proof                      []string `json:"proof" hex:"true"`
}

type exitRequestsJson struct {
	Data       string `json:"data" hex:"true"`
	DataFormat string `json:"data_format"`
}

func readProofBundle(path string) (*proofBundleJson, error) {
	raw, err := ioutil.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read proof bundle")
	}
	bundle := &proofBundleJson{}
	if err := json.Unmarshal(raw, bundle); err != nil {
		return nil, errors.Wrap(err, "could not parse proof bundle")
	}
	return bundle, nil
}

func parseUint(field, val string) (uint64, error) {
	v, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "could not parse %s %q", field, val)
	}
	return v, nil
}

func parseRoot(field, val string) ([32]byte, error) {
	raw, err := hexutil.Decode(val)
	if err != nil {
		return [32]byte{}, errors.Wrapf(err, "could not parse %s %q", field, val)
	}
	if len(raw) != 32 {
		return [32]byte{}, errors.Errorf("%s: expected 32 bytes, got %d", field, len(raw))
	}
	return bytesutil.ToBytes32(raw), nil
}

func parseProof(field string, vals []string) ([][32]byte, error) {
	proof := make([][32]byte, len(vals))
	for i, v := range vals {
		root, err := parseRoot(field, v)
		if err != nil {
			return nil, err
		}
		proof[i] = root
	}
	return proof, nil
}

func (h *headerJson) toHeader() (*beacontypes.BeaconBlockHeader, error) {
	slot, err := parseUint("slot", h.Slot)
	if err != nil {
		return nil, err
	}
	proposerIndex, err := parseUint("proposer_index", h.ProposerIndex)
	if err != nil {
		return nil, err
	}
	parentRoot, err := parseRoot("parent_root", h.ParentRoot)
	if err != nil {
		return nil, err
	}
	stateRoot, err := parseRoot("state_root", h.StateRoot)
	if err != nil {
		return nil, err
	}
	bodyRoot, err := parseRoot("body_root", h.BodyRoot)
	if err != nil {
		return nil, err
	}
	return &beacontypes.BeaconBlockHeader{
		Slot:          types.Slot(slot),
		ProposerIndex: types.ValidatorIndex(proposerIndex),
		ParentRoot:    parentRoot,
		StateRoot:     stateRoot,
		BodyRoot:      bodyRoot,
	}, nil
}

func (w *validatorWitnessJson) toWitness() (beacontypes.ValidatorWitness, error) {
	var out beacontypes.ValidatorWitness
	exitRequestIndex, err := parseUint("exit_request_index", w.ExitRequestIndex)
	if err != nil {
		return out, err
	}
	withdrawalCredentials, err := parseRoot("withdrawal_credentials", w.WithdrawalCredentials)
	if err != nil {
		return out, err
	}
	effectiveBalance, err := parseUint("effective_balance", w.EffectiveBalance)
	if err != nil {
		return out, err
	}
	activationEligibilityEpoch, err := parseUint("activation_eligibility_epoch", w.ActivationEligibilityEpoch)
	if err != nil {
		return out, err
	}
	activationEpoch, err := parseUint("activation_epoch", w.ActivationEpoch)
	if err != nil {
		return out, err
	}
	withdrawableEpoch, err := parseUint("withdrawable_epoch", w.WithdrawableEpoch)
	if err != nil {
		return out, err
	}
	proof, err := parseProof("witness proof", w.Proof)
	if err != nil {
		return out, err
	}
	out = beacontypes.ValidatorWitness{
		ExitRequestIndex: exitRequestIndex,
		Validator: beacontypes.Validator{
			WithdrawalCredentials:      withdrawalCredentials,
			EffectiveBalance:           effectiveBalance,
			Slashed:                    w.Slashed,
			ActivationEligibilityEpoch: types.Epoch(activationEligibilityEpoch),
			ActivationEpoch:            types.Epoch(activationEpoch),
			WithdrawableEpoch:          types.Epoch(withdrawableEpoch),
		},
		Proof: proof,
	}
	return out, nil
}

func (e *exitRequestsJson) toBatch() (*exitrequests.Batch, error) {
	data, err := hexutil.Decode(e.Data)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse exit request data")
	}
	format, err := parseUint("data_format", e.DataFormat)
	if err != nil {
		return nil, err
	}
	return &exitrequests.Batch{Data: data, DataFormat: format}, nil
}
