package main

import (
	"fmt"

	"github.com/lidofinance/beacon-exit-verifier/verifier"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/urfave/cli/v2"
)

var gindexFlags = struct {
	ConfigPath     string
	Slot           uint64
	ValidatorIndex uint64
	RecentSlot     uint64
	TargetSlot     uint64
}{}

var gindexCmd = &cli.Command{
	Name:   "gindex",
	Usage:  "print the generalized index of a validator record or a historical block root",
	Action: cliActionGIndex,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to the verifier config yaml; mainnet values are used when omitted",
			Destination: &gindexFlags.ConfigPath,
		},
		&cli.Uint64Flag{
			Name:        "slot",
			Usage:       "state slot the validator record is proven under",
			Destination: &gindexFlags.Slot,
		},
		&cli.Uint64Flag{
			Name:        "validator-index",
			Usage:       "position of the validator record in the registry",
			Destination: &gindexFlags.ValidatorIndex,
		},
		&cli.Uint64Flag{
			Name:        "recent-slot",
			Usage:       "slot of the recently provable state (historical lookup)",
			Destination: &gindexFlags.RecentSlot,
		},
		&cli.Uint64Flag{
			Name:        "target-slot",
			Usage:       "older slot whose block root is looked up (historical lookup)",
			Destination: &gindexFlags.TargetSlot,
		},
	},
}

func cliActionGIndex(_ *cli.Context) error {
	cfg, err := loadConfig(gindexFlags.ConfigPath)
	if err != nil {
		return err
	}
	provider := verifier.NewGIndexProvider(cfg)
	switch {
	case gindexFlags.RecentSlot != 0 || gindexFlags.TargetSlot != 0:
		gi, err := provider.HistoricalBlockRootGIndex(
			types.Slot(gindexFlags.RecentSlot), types.Slot(gindexFlags.TargetSlot))
		if err != nil {
			return err
		}
		fmt.Printf("historical block root gindex: %s (raw %#x, depth %d)\n", gi, gi.Index(), gi.Depth())
	case gindexFlags.Slot != 0:
		gi, err := provider.ValidatorGIndex(
			types.ValidatorIndex(gindexFlags.ValidatorIndex), types.Slot(gindexFlags.Slot))
		if err != nil {
			return err
		}
		fmt.Printf("validator gindex: %s (raw %#x, depth %d)\n", gi, gi.Index(), gi.Depth())
	default:
		return errors.New("either --slot or --recent-slot/--target-slot must be provided")
	}
	return nil
}
