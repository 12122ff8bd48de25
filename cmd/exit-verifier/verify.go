package main

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
	beacontypes "github.com/lidofinance/beacon-exit-verifier/beacon/types"
	"github.com/lidofinance/beacon-exit-verifier/config/params"
	"github.com/lidofinance/beacon-exit-verifier/exitrequests"
	"github.com/lidofinance/beacon-exit-verifier/verifier"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var verifyFlags = struct {
	ConfigPath string
	ProofPath  string
}{}

var verifyCmd = &cli.Command{
	Name:   "verify",
	Usage:  "verify the exit delay proofs in a bundle and print the resulting reports",
	Action: cliActionVerify,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to the verifier config yaml; mainnet values are used when omitted",
			Destination: &verifyFlags.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "proof",
			Usage:       "path to the json proof bundle",
			Destination: &verifyFlags.ProofPath,
			Required:    true,
		},
	},
}

// staticRootSource serves a single attested root for a single timestamp,
// standing in for the on-chain root oracle when verifying offline bundles.
type staticRootSource struct {
	timestamp uint64
	root      [32]byte
}

func (s *staticRootSource) BlockRoot(_ context.Context, timestamp uint64) ([32]byte, error) {
	if timestamp != s.timestamp {
		return [32]byte{}, errors.Errorf("no root recorded for timestamp %d", timestamp)
	}
	return s.root, nil
}

func loadConfig(path string) (*params.Config, error) {
	if path == "" {
		return params.MainnetConfig(), nil
	}
	return params.LoadConfigFile(path)
}

func cliActionVerify(cliCtx *cli.Context) error {
	cfg, err := loadConfig(verifyFlags.ConfigPath)
	if err != nil {
		return err
	}
	bundle, err := readProofBundle(verifyFlags.ProofPath)
	if err != nil {
		return err
	}

	header, err := bundle.Header.toHeader()
	if err != nil {
		return err
	}
	rootsTimestamp, err := parseUint("roots_timestamp", bundle.RootsTimestamp)
	if err != nil {
		return err
	}
	blockRoot, err := parseRoot("block_root", bundle.BlockRoot)
	if err != nil {
		return err
	}
	batch, err := bundle.ExitRequests.toBatch()
	if err != nil {
		return err
	}

	witnesses := make([]beacontypes.ValidatorWitness, 0, len(bundle.Witnesses))
	for i := range bundle.Witnesses {
		w, err := bundle.Witnesses[i].toWitness()
		if err != nil {
			return err
		}
		witnesses = append(witnesses, w)
	}

	registry := exitrequests.NewDeliveryLog()
	batchHash := batch.Hash()
	registry.RecordBatch(batchHash, batch.Count())
	for i, delivery := range bundle.Deliveries {
		timestamp, err := parseUint("delivery timestamp", delivery)
		if err != nil {
			return err
		}
		if timestamp == 0 {
			continue
		}
		if err := registry.MarkDelivered(batchHash, i, timestamp); err != nil {
			return err
		}
	}

	v, err := verifier.New(cfg, &staticRootSource{timestamp: rootsTimestamp, root: blockRoot}, registry)
	if err != nil {
		return err
	}

	provable := &beacontypes.ProvableBeaconBlockHeader{Header: header, RootsTimestamp: rootsTimestamp}
	var reports []verifier.Report
	if bundle.HistoricalHeader != nil {
		oldHeader, err := bundle.HistoricalHeader.Header.toHeader()
		if err != nil {
			return err
		}
		proof, err := parseProof("historical proof", bundle.HistoricalHeader.Proof)
		if err != nil {
			return err
		}
		oldBlock := &beacontypes.HistoricalHeaderWitness{Header: oldHeader, Proof: proof}
		reports, err = v.VerifyHistoricalExitDelays(cliCtx.Context, provable, oldBlock, witnesses, batch)
		if err != nil {
			return err
		}
	} else {
		reports, err = v.VerifyExitDelays(cliCtx.Context, provable, witnesses, batch)
		if err != nil {
			return err
		}
	}

	for i := range reports {
		report := &reports[i]
		log.WithFields(logrus.Fields{
			"moduleId":                 report.ModuleID,
			"nodeOperatorId":           report.NodeOperatorID,
			"pubkey":                   hexutil.Encode(report.Pubkey[:]),
			"proofSlotTimestamp":       report.ProofSlotTimestamp,
			"secondsSinceEligibleExit": report.SecondsSinceEligibleExit,
		}).Info("Exit delay proven")
	}
	return nil
}
