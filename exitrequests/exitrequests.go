// Package exitrequests decodes validator exit request batches and tracks
// their delivery history. A batch is an opaque byte string committed to by a
// keccak hash; the hash keys the delivery history consulted by the verifier.
package exitrequests

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/lidofinance/beacon-exit-verifier/encoding/bytesutil"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
)

// DataFormatList identifies the packed list encoding of exit requests.
const DataFormatList = 1

// PubkeyLength is the length of a BLS validator public key.
const PubkeyLength = 48

// Each packed entry is moduleId (3 bytes) | nodeOperatorId (5 bytes) |
// validatorIndex (8 bytes) | pubkey (48 bytes), all big endian.
const entryLength = 64

const (
	maxModuleID       = 1<<24 - 1
	maxNodeOperatorID = 1<<40 - 1
)

var (
	// ErrUnsupportedDataFormat is returned for any format other than DataFormatList.
	ErrUnsupportedDataFormat = errors.New("exitrequests: unsupported data format")
	// ErrInvalidRequestsDataLength is returned when the data is not a whole number of entries.
	ErrInvalidRequestsDataLength = errors.New("exitrequests: data length is not a multiple of the entry size")
	// ErrInvalidRequestsData is returned for out-of-range field values at encode time.
	ErrInvalidRequestsData = errors.New("exitrequests: request field out of range")
	// ErrRequestsNotDelivered is returned when a batch, or an entry within it,
	// has no recorded delivery yet.
	ErrRequestsNotDelivered = errors.New("exitrequests: requests not delivered")
)

// ExitRequest is one decoded entry of an exit request batch.
type ExitRequest struct {
	ModuleID       uint64
	NodeOperatorID uint64
	ValidatorIndex types.ValidatorIndex
	Pubkey         [PubkeyLength]byte
}

// Batch is an encoded exit request list together with its format tag.
type Batch struct {
	Data       []byte
	DataFormat uint64
}

// Hash computes the keccak commitment of the batch, the key into the
// delivery history: keccak256(uint256(dataFormat) || data).
func (b *Batch) Hash() common.Hash {
	buf := make([]byte, 32, 32+len(b.Data))
	binary.BigEndian.PutUint64(buf[24:], b.DataFormat)
	buf = append(buf, b.Data...)
	return crypto.Keccak256Hash(buf)
}

// Count returns the number of entries in the batch.
func (b *Batch) Count() int {
	return len(b.Data) / entryLength
}

// Decode unpacks the batch into its entries.
func Decode(b *Batch) ([]ExitRequest, error) {
	if b.DataFormat != DataFormatList {
		return nil, ErrUnsupportedDataFormat
	}
	if len(b.Data) == 0 || len(b.Data)%entryLength != 0 {
		return nil, ErrInvalidRequestsDataLength
	}
	requests := make([]ExitRequest, 0, len(b.Data)/entryLength)
	for off := 0; off < len(b.Data); off += entryLength {
		entry := b.Data[off : off+entryLength]
		req := ExitRequest{
			ModuleID:       uint64(entry[0])<<16 | uint64(entry[1])<<8 | uint64(entry[2]),
			NodeOperatorID: uint64(entry[3])<<32 | uint64(binary.BigEndian.Uint32(entry[4:8])),
			ValidatorIndex: types.ValidatorIndex(binary.BigEndian.Uint64(entry[8:16])),
			Pubkey:         bytesutil.ToBytes48(entry[16:64]),
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// Encode packs the entries into a batch in list format.
func Encode(requests []ExitRequest) (*Batch, error) {
	data := make([]byte, 0, len(requests)*entryLength)
	for i := range requests {
		req := &requests[i]
		if req.ModuleID == 0 || req.ModuleID > maxModuleID {
			return nil, errors.Wrapf(ErrInvalidRequestsData, "module id %d", req.ModuleID)
		}
		if req.NodeOperatorID > maxNodeOperatorID {
			return nil, errors.Wrapf(ErrInvalidRequestsData, "node operator id %d", req.NodeOperatorID)
		}
		var entry [entryLength]byte
		entry[0] = byte(req.ModuleID >> 16)
		entry[1] = byte(req.ModuleID >> 8)
		entry[2] = byte(req.ModuleID)
		entry[3] = byte(req.NodeOperatorID >> 32)
		binary.BigEndian.PutUint32(entry[4:8], uint32(req.NodeOperatorID))
		binary.BigEndian.PutUint64(entry[8:16], uint64(req.ValidatorIndex))
		copy(entry[16:], req.Pubkey[:])
		data = append(data, entry[:]...)
	}
	return &Batch{Data: data, DataFormat: DataFormatList}, nil
}
