package verifier

import (
	"testing"

	"github.com/lidofinance/beacon-exit-verifier/config/params"
	"github.com/lidofinance/beacon-exit-verifier/math/gindex"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/stretchr/testify/require"
)

// testConfig mirrors mainnet tree layout but with fork boundaries pulled in
// close to genesis so fixtures stay small.
func testConfig() *params.Config {
	cfg := params.MainnetConfig()
	cfg.FirstSupportedSlot = 8192
	cfg.CapellaSlot = 8192
	cfg.PivotSlot = 106496
	return cfg
}

func TestValidatorGIndex(t *testing.T) {
	provider := NewGIndexProvider(testConfig())

	tests := []struct {
		name      string
		index     types.ValidatorIndex
		stateSlot types.Slot
		want      gindex.GIndex
	}{
		{
			name:      "first validator before pivot",
			index:     0,
			stateSlot: 8192,
			want:      gindex.MustNew(0x560000000000, 40),
		},
		{
			name:      "offset validator before pivot",
			index:     123,
			stateSlot: 106495,
			want:      gindex.MustNew(0x560000000000+123, 40),
		},
		{
			name:      "first validator at pivot",
			index:     0,
			stateSlot: 106496,
			want:      gindex.MustNew(0x960000000000, 40),
		},
		{
			name:      "offset validator after pivot",
			index:     5,
			stateSlot: 200000,
			want:      gindex.MustNew(0x960000000005, 40),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := provider.ValidatorGIndex(tt.index, tt.stateSlot)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHistoricalBlockRootGIndex(t *testing.T) {
	provider := NewGIndexProvider(testConfig())

	tests := []struct {
		name       string
		recentSlot types.Slot
		targetSlot types.Slot
		want       gindex.GIndex
	}{
		{
			name:       "first summary first root",
			recentSlot: 106495,
			targetSlot: 8192,
			want:       gindex.GIndex(0x1d80000000000d),
		},
		{
			name:       "first summary second root",
			recentSlot: 106495,
			targetSlot: 8193,
			want:       gindex.GIndex(0x1d80000000010d),
		},
		{
			name:       "post-pivot summary",
			recentSlot: 114688,
			targetSlot: 106496,
			want:       gindex.GIndex(0x2d80000320000d),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := provider.HistoricalBlockRootGIndex(tt.recentSlot, tt.targetSlot)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHistoricalBlockRootGIndex_SummaryDoesNotExist(t *testing.T) {
	provider := NewGIndexProvider(testConfig())

	// The summary covering the target period has not been appended yet.
	_, err := provider.HistoricalBlockRootGIndex(8192, 8192)
	require.True(t, errors.Is(err, ErrHistoricalSummaryDoesNotExist))

	// One slot short of the append boundary.
	_, err = provider.HistoricalBlockRootGIndex(16383, 8192)
	require.True(t, errors.Is(err, ErrHistoricalSummaryDoesNotExist))

	// Target precedes the start of the summaries accumulator.
	_, err = provider.HistoricalBlockRootGIndex(106495, 8191)
	require.True(t, errors.Is(err, ErrHistoricalSummaryDoesNotExist))
}
