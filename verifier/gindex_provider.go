package verifier

import (
	"github.com/lidofinance/beacon-exit-verifier/config/params"
	"github.com/lidofinance/beacon-exit-verifier/math/gindex"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
)

// GIndexProvider computes generalized indices for validator records and
// historical block roots under the fork-dependent tree layout. The per-fork
// constants come from the config and are fixture-verified values; the
// provider only shifts and concatenates them.
type GIndexProvider struct {
	cfg *params.Config
}

// NewGIndexProvider returns a provider over the given config.
func NewGIndexProvider(cfg *params.Config) *GIndexProvider {
	return &GIndexProvider{cfg: cfg}
}

// ValidatorGIndex returns the generalized index of the nth validator record
// in the state committed to at stateSlot.
func (p *GIndexProvider) ValidatorGIndex(n types.ValidatorIndex, stateSlot types.Slot) (gindex.GIndex, error) {
	first := p.cfg.GIFirstValidator.ForSlot(stateSlot, p.cfg.PivotSlot)
	gi, err := first.Shr(uint64(n))
	if err != nil {
		return 0, errors.Wrapf(err, "validator index %d", n)
	}
	return gi, nil
}

// HistoricalBlockRootGIndex returns the generalized index, relative to the
// state root at recentSlot, of the block root for targetSlot inside the
// historical summaries tree. Summaries accumulate from the Capella slot, one
// per SlotsPerHistoricalRoot period; a summary only exists once its full
// period is behind recentSlot.
func (p *GIndexProvider) HistoricalBlockRootGIndex(recentSlot, targetSlot types.Slot) (gindex.GIndex, error) {
	if targetSlot < p.cfg.CapellaSlot {
		return 0, errors.Wrapf(ErrHistoricalSummaryDoesNotExist,
			"target slot %d precedes capella slot %d", targetSlot, p.cfg.CapellaSlot)
	}
	adjustedTargetSlot := uint64(targetSlot - p.cfg.CapellaSlot)
	summaryIndex := adjustedTargetSlot / p.cfg.SlotsPerHistoricalRoot
	rootIndex := adjustedTargetSlot % p.cfg.SlotsPerHistoricalRoot

	// The summary covering the target period is appended only when the
	// period is complete.
	summaryAppendedSlot := uint64(p.cfg.CapellaSlot) + (summaryIndex+1)*p.cfg.SlotsPerHistoricalRoot
	if summaryAppendedSlot > uint64(recentSlot) {
		return 0, errors.Wrapf(ErrHistoricalSummaryDoesNotExist,
			"summary %d not yet appended at slot %d", summaryIndex, recentSlot)
	}

	summaryGI, err := p.cfg.GIFirstHistoricalSummary.ForSlot(targetSlot, p.cfg.PivotSlot).Shr(summaryIndex)
	if err != nil {
		return 0, errors.Wrapf(err, "summary index %d", summaryIndex)
	}
	rootGI, err := p.cfg.GIFirstBlockRootInSummary.ForSlot(targetSlot, p.cfg.PivotSlot).Shr(rootIndex)
	if err != nil {
		return 0, errors.Wrapf(err, "root index %d", rootIndex)
	}
	return gindex.Concat(summaryGI, rootGI)
}
