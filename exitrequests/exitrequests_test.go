package exitrequests

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/stretchr/testify/require"
)

func testPubkey(seed byte) [PubkeyLength]byte {
	var pk [PubkeyLength]byte
	for i := range pk {
		pk[i] = seed
	}
	return pk
}

func TestEncodeDecode(t *testing.T) {
	requests := []ExitRequest{
		{ModuleID: 1, NodeOperatorID: 0, ValidatorIndex: 0, Pubkey: testPubkey(0x01)},
		{ModuleID: maxModuleID, NodeOperatorID: maxNodeOperatorID, ValidatorIndex: ^types.ValidatorIndex(0), Pubkey: testPubkey(0x02)},
		{ModuleID: 7, NodeOperatorID: 1 << 33, ValidatorIndex: 123456, Pubkey: testPubkey(0x03)},
	}
	batch, err := Encode(requests)
	require.NoError(t, err)
	require.Equal(t, uint64(DataFormatList), batch.DataFormat)
	require.Equal(t, len(requests)*entryLength, len(batch.Data))
	require.Equal(t, len(requests), batch.Count())

	decoded, err := Decode(batch)
	require.NoError(t, err)
	require.Equal(t, requests, decoded)
}

func TestEncode_FieldRanges(t *testing.T) {
	_, err := Encode([]ExitRequest{{ModuleID: 0, NodeOperatorID: 1}})
	require.True(t, errors.Is(err, ErrInvalidRequestsData))

	_, err = Encode([]ExitRequest{{ModuleID: maxModuleID + 1}})
	require.True(t, errors.Is(err, ErrInvalidRequestsData))

	_, err = Encode([]ExitRequest{{ModuleID: 1, NodeOperatorID: maxNodeOperatorID + 1}})
	require.True(t, errors.Is(err, ErrInvalidRequestsData))
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(&Batch{Data: make([]byte, entryLength), DataFormat: 2})
	require.True(t, errors.Is(err, ErrUnsupportedDataFormat))

	_, err = Decode(&Batch{Data: nil, DataFormat: DataFormatList})
	require.True(t, errors.Is(err, ErrInvalidRequestsDataLength))

	_, err = Decode(&Batch{Data: make([]byte, entryLength+1), DataFormat: DataFormatList})
	require.True(t, errors.Is(err, ErrInvalidRequestsDataLength))
}

func TestBatchHash(t *testing.T) {
	requests := []ExitRequest{{ModuleID: 1, NodeOperatorID: 2, ValidatorIndex: 3, Pubkey: testPubkey(0x04)}}
	batch, err := Encode(requests)
	require.NoError(t, err)

	h := batch.Hash()
	require.Equal(t, h, batch.Hash())

	// The format tag is part of the commitment.
	other := &Batch{Data: batch.Data, DataFormat: batch.DataFormat + 1}
	require.NotEqual(t, h, other.Hash())

	// So is every byte of the payload.
	mutated := make([]byte, len(batch.Data))
	copy(mutated, batch.Data)
	mutated[20] ^= 0x01
	require.NotEqual(t, h, (&Batch{Data: mutated, DataFormat: batch.DataFormat}).Hash())
}

func TestDeliveryLog(t *testing.T) {
	ctx := context.Background()
	batch, err := Encode([]ExitRequest{
		{ModuleID: 1, NodeOperatorID: 1, ValidatorIndex: 1, Pubkey: testPubkey(0x05)},
		{ModuleID: 1, NodeOperatorID: 2, ValidatorIndex: 2, Pubkey: testPubkey(0x06)},
	})
	require.NoError(t, err)

	deliveryLog := NewDeliveryLog()
	_, err = deliveryLog.DeliveryTimestamps(ctx, batch.Hash())
	require.True(t, errors.Is(err, ErrRequestsNotDelivered))

	err = deliveryLog.MarkDelivered(batch.Hash(), 0, 1000)
	require.True(t, errors.Is(err, ErrRequestsNotDelivered))

	deliveryLog.RecordBatch(batch.Hash(), batch.Count())
	timestamps, err := deliveryLog.DeliveryTimestamps(ctx, batch.Hash())
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 0}, timestamps)

	require.NoError(t, deliveryLog.MarkDelivered(batch.Hash(), 1, 1234))
	require.Error(t, deliveryLog.MarkDelivered(batch.Hash(), 2, 1234))

	timestamps, err = deliveryLog.DeliveryTimestamps(ctx, batch.Hash())
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1234}, timestamps)

	// Returned slices are copies, not views into the log.
	timestamps[0] = 9999
	again, err := deliveryLog.DeliveryTimestamps(ctx, batch.Hash())
	require.NoError(t, err)
	require.Equal(t, uint64(0), again[0])
}
