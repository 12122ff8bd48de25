package exitrequests

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// DeliveryLog is an in-memory delivery history keyed by batch hash. It stands
// in for the on-chain exit request registry in tests and offline tooling. A
// zero timestamp means the entry has not been delivered yet.
type DeliveryLog struct {
	mu      sync.RWMutex
	history map[common.Hash][]uint64
}

// NewDeliveryLog returns an empty delivery log.
func NewDeliveryLog() *DeliveryLog {
	return &DeliveryLog{history: make(map[common.Hash][]uint64)}
}

// RecordBatch registers a batch of the given size with no deliveries yet.
func (d *DeliveryLog) RecordBatch(batchHash common.Hash, count int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.history[batchHash]; !ok {
		d.history[batchHash] = make([]uint64, count)
	}
}

// MarkDelivered stores the delivery timestamp for one entry of a batch.
func (d *DeliveryLog) MarkDelivered(batchHash common.Hash, index int, timestamp uint64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	timestamps, ok := d.history[batchHash]
	if !ok {
		return ErrRequestsNotDelivered
	}
	if index < 0 || index >= len(timestamps) {
		return errors.Errorf("exitrequests: delivery index %d out of range for batch of %d", index, len(timestamps))
	}
	timestamps[index] = timestamp
	return nil
}

// DeliveryTimestamps returns the per-index delivery timestamps of a batch.
// An unknown batch hash fails with ErrRequestsNotDelivered.
func (d *DeliveryLog) DeliveryTimestamps(_ context.Context, batchHash common.Hash) ([]uint64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	timestamps, ok := d.history[batchHash]
	if !ok {
		return nil, errors.Wrapf(ErrRequestsNotDelivered, "no delivery history for batch %#x", batchHash)
	}
	out := make([]uint64, len(timestamps))
	copy(out, timestamps)
	return out, nil
}
