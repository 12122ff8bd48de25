package bytesutil_test

import (
	"testing"

	"github.com/lidofinance/beacon-exit-verifier/encoding/bytesutil"
	"github.com/stretchr/testify/require"
)

func TestToBytes32(t *testing.T) {
	require.Equal(t, [32]byte{1, 2, 3}, bytesutil.ToBytes32([]byte{1, 2, 3}))
	require.Equal(t, [32]byte{}, bytesutil.ToBytes32(nil))

	// Oversized input is truncated.
	long := make([]byte, 40)
	long[33] = 0xff
	require.Equal(t, [32]byte{}, bytesutil.ToBytes32(long))
}

func TestToBytes48(t *testing.T) {
	in := []byte{0xaa, 0xbb}
	out := bytesutil.ToBytes48(in)
	require.Equal(t, byte(0xaa), out[0])
	require.Equal(t, byte(0xbb), out[1])
	require.Equal(t, byte(0), out[47])
}

func TestUint64ToBytesLittleEndian(t *testing.T) {
	require.Equal(t, []byte{5, 0, 0, 0, 0, 0, 0, 0}, bytesutil.Uint64ToBytesLittleEndian(5))
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, bytesutil.Uint64ToBytesLittleEndian(^uint64(0)))
}

func TestSafeCopyBytes(t *testing.T) {
	require.Nil(t, bytesutil.SafeCopyBytes(nil))
	src := []byte{1, 2, 3}
	cp := bytesutil.SafeCopyBytes(src)
	require.Equal(t, src, cp)
	cp[0] = 9
	require.Equal(t, byte(1), src[0])
}

func TestSafeCopy2dBytes(t *testing.T) {
	require.Nil(t, bytesutil.SafeCopy2dBytes(nil))
	src := [][]byte{{1}, {2, 3}}
	cp := bytesutil.SafeCopy2dBytes(src)
	require.Equal(t, src, cp)
	cp[0][0] = 9
	require.Equal(t, byte(1), src[0][0])
}
