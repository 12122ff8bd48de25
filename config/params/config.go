// Package params defines the chain and tree-layout constants the verifier
// needs to locate and check beacon state leaves.
package params

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/lidofinance/beacon-exit-verifier/math/gindex"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
)

var (
	// ErrInvalidPivotSlot is returned when the pivot slot precedes the first supported slot.
	ErrInvalidPivotSlot = errors.New("params: pivot slot precedes first supported slot")
	// ErrInvalidCapellaSlot is returned when the Capella slot follows the first supported slot.
	ErrInvalidCapellaSlot = errors.New("params: capella slot follows first supported slot")
	// ErrZeroLocatorAddress is returned when the locator handle is unset.
	ErrZeroLocatorAddress = errors.New("params: locator address is zero")
)

// GIndexPair holds the prev/curr-fork variants of a generalized index
// constant. The tree layout of validator and summary structures changed at
// the pivot slot, so every constant exists in two versions.
type GIndexPair struct {
	Prev gindex.GIndex `yaml:"PREV"`
	Curr gindex.GIndex `yaml:"CURR"`
}

// ForSlot selects the variant matching the fork the given slot belongs to.
func (p GIndexPair) ForSlot(slot, pivotSlot types.Slot) gindex.GIndex {
	if slot < pivotSlot {
		return p.Prev
	}
	return p.Curr
}

// Config contains the constants required to prove validator records and
// historical block roots. It is fixed at construction and never mutated.
type Config struct {
	FirstSupportedSlot          types.Slot `yaml:"FIRST_SUPPORTED_SLOT"`
	PivotSlot                   types.Slot `yaml:"PIVOT_SLOT"`
	CapellaSlot                 types.Slot `yaml:"CAPELLA_SLOT"`
	SlotsPerHistoricalRoot      uint64     `yaml:"SLOTS_PER_HISTORICAL_ROOT"`
	SlotsPerEpoch               uint64     `yaml:"SLOTS_PER_EPOCH"`
	SecondsPerSlot              uint64     `yaml:"SECONDS_PER_SLOT"`
	GenesisTime                 uint64     `yaml:"GENESIS_TIME"`
	ShardCommitteePeriodSeconds uint64     `yaml:"SHARD_COMMITTEE_PERIOD_SECONDS"`
	LocatorAddress              string     `yaml:"LOCATOR_ADDRESS"`

	GIFirstValidator          GIndexPair `yaml:"GI_FIRST_VALIDATOR"`
	GIFirstHistoricalSummary  GIndexPair `yaml:"GI_FIRST_HISTORICAL_SUMMARY"`
	GIFirstBlockRootInSummary GIndexPair `yaml:"GI_FIRST_BLOCK_ROOT_IN_SUMMARY"`
}

// Validate enforces the construction invariants. A config failing any of
// these is unusable and must be corrected, never retried.
func (c *Config) Validate() error {
	if c.PivotSlot < c.FirstSupportedSlot {
		return ErrInvalidPivotSlot
	}
	if c.CapellaSlot > c.FirstSupportedSlot {
		return ErrInvalidCapellaSlot
	}
	if c.LocatorAddress == "" {
		return ErrZeroLocatorAddress
	}
	if !common.IsHexAddress(c.LocatorAddress) {
		return errors.Errorf("params: malformed locator address %q", c.LocatorAddress)
	}
	if common.HexToAddress(c.LocatorAddress) == (common.Address{}) {
		return ErrZeroLocatorAddress
	}
	return nil
}

// Locator returns the registry collaborator handle.
func (c *Config) Locator() common.Address {
	return common.HexToAddress(c.LocatorAddress)
}

// Copy returns a deep copy of the config.
func (c *Config) Copy() *Config {
	config := *c
	return &config
}
