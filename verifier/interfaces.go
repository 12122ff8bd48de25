package verifier

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// RootSource maps a timestamp to a trusted beacon block root. It models the
// EIP-4788 style oracle the verifier relies on; a missing entry is reported
// as an error or a zero root.
type RootSource interface {
	BlockRoot(ctx context.Context, timestamp uint64) ([32]byte, error)
}

// ExitRequestRegistry exposes, per entry of a committed exit request batch,
// when that entry was delivered. A zero timestamp means not delivered yet.
type ExitRequestRegistry interface {
	DeliveryTimestamps(ctx context.Context, batchHash common.Hash) ([]uint64, error)
}
