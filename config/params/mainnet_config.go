package params

import (
	"github.com/lidofinance/beacon-exit-verifier/math/gindex"
	types "github.com/prysmaticlabs/eth2-types"
)

const (
	mainnetGenesisTime    = 1606824023
	mainnetSecondsPerSlot = 12
	mainnetSlotsPerEpoch  = 32

	// Capella activated at epoch 194048, Electra at epoch 364032.
	mainnetCapellaSlot = types.Slot(194048 * mainnetSlotsPerEpoch)
	mainnetElectraSlot = types.Slot(364032 * mainnetSlotsPerEpoch)
)

// MainnetConfig returns the verifier config for Ethereum mainnet. The
// generalized index constants address the Capella-era state layout (prev)
// and the widened Electra-era layout (curr); they are fixture-verified
// constants, not values recomputed at run time.
func MainnetConfig() *Config {
	return &Config{
		FirstSupportedSlot:          mainnetCapellaSlot,
		PivotSlot:                   mainnetElectraSlot,
		CapellaSlot:                 mainnetCapellaSlot,
		SlotsPerHistoricalRoot:      8192,
		SlotsPerEpoch:               mainnetSlotsPerEpoch,
		SecondsPerSlot:              mainnetSecondsPerSlot,
		GenesisTime:                 mainnetGenesisTime,
		ShardCommitteePeriodSeconds: 256 * mainnetSlotsPerEpoch * mainnetSecondsPerSlot,
		LocatorAddress:              "0xC1d0b3DE6792Bf6b4b37EccdcC24e45d5069e90b",
		GIFirstValidator: GIndexPair{
			Prev: gindex.MustNew(0x560000000000, 40),
			Curr: gindex.MustNew(0x960000000000, 40),
		},
		GIFirstHistoricalSummary: GIndexPair{
			Prev: gindex.MustNew(0x76000000, 24),
			Curr: gindex.MustNew(0xb6000000, 24),
		},
		GIFirstBlockRootInSummary: GIndexPair{
			Prev: gindex.MustNew(0x4000, 13),
			Curr: gindex.MustNew(0x6000, 13),
		},
	}
}
