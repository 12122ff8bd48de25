// Package gindex implements arithmetic over generalized indices, the
// path-and-depth encoding of node positions in a binary Merkle tree used
// across Ethereum consensus data structures. The root carries index 1, a
// left child 2i and a right child 2i+1.
package gindex

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// GIndex packs a raw generalized index together with the width exponent of
// the subtree the node belongs to. The raw index occupies the upper 56 bits
// and the exponent the lowest byte, so packed values can be compared and
// transported as plain integers.
type GIndex uint64

const maxIndexBits = 56

var (
	// ErrInvalidIndex is returned for a zero raw index, which encodes no node.
	ErrInvalidIndex = errors.New("gindex: raw index cannot be zero")
	// ErrDepthOverflow is returned when a raw index would not fit the packed representation.
	ErrDepthOverflow = errors.New("gindex: index depth exceeds packed representation")
	// ErrIndexOutOfRange is returned when a sibling shift leaves the subtree width.
	ErrIndexOutOfRange = errors.New("gindex: shifted index out of subtree range")
)

// New packs a raw generalized index with the given width exponent.
func New(index uint64, pow uint8) (GIndex, error) {
	if index == 0 {
		return 0, ErrInvalidIndex
	}
	if bits.Len64(index) > maxIndexBits {
		return 0, ErrDepthOverflow
	}
	return GIndex(index<<8 | uint64(pow)), nil
}

// MustNew packs a raw generalized index and panics on invalid input. It is
// intended for static configuration values.
func MustNew(index uint64, pow uint8) GIndex {
	g, err := New(index, pow)
	if err != nil {
		panic(err)
	}
	return g
}

// Index returns the raw generalized index.
func (g GIndex) Index() uint64 {
	return uint64(g) >> 8
}

// Pow returns the width exponent of the node's subtree.
func (g GIndex) Pow() uint8 {
	return uint8(g)
}

// Width returns the number of sibling positions at the node's level.
func (g GIndex) Width() uint64 {
	return uint64(1) << g.Pow()
}

// Depth returns the number of tree levels between the node and the root.
func (g GIndex) Depth() uint64 {
	return uint64(bits.Len64(g.Index())) - 1
}

// IsRoot returns true for the tree root.
func (g GIndex) IsRoot() bool {
	return g.Index() == 1
}

// PathBit returns the bit of the raw index at the given level counted from
// the least significant bit, excluding the implicit leading one. Level 0 is
// the node's own level, level 1 its parent, and so on. A set bit means the
// node at that level is a right child.
func (g GIndex) PathBit(level uint64) bool {
	return g.Index()&(uint64(1)<<level) != 0
}

// Shr moves the index n positions to the right among its siblings, staying
// within the subtree width recorded in the exponent.
func (g GIndex) Shr(n uint64) (GIndex, error) {
	i := g.Index()
	w := g.Width()
	if i%w+n >= w {
		return 0, ErrIndexOutOfRange
	}
	return New(i+n, g.Pow())
}

// Shl moves the index n positions to the left among its siblings.
func (g GIndex) Shl(n uint64) (GIndex, error) {
	i := g.Index()
	if n > i%g.Width() {
		return 0, ErrIndexOutOfRange
	}
	return New(i-n, g.Pow())
}

// Concat composes two generalized indices: the inner node addressed relative
// to the subtree rooted at the outer node. Given outer 2^La+pa and inner
// 2^Lb+pb the result is 2^(La+Lb) + pa*2^Lb + pb. The result keeps the
// inner exponent, since sibling shifts below the concatenation point happen
// at the inner node's level.
func Concat(outer, inner GIndex) (GIndex, error) {
	innerDepth := inner.Depth()
	if outer.Depth()+innerDepth+1 > maxIndexBits {
		return 0, ErrDepthOverflow
	}
	idx := outer.Index()<<innerDepth | (inner.Index() - uint64(1)<<innerDepth)
	return New(idx, inner.Pow())
}

// String renders the packed value as 0x-prefixed hex.
func (g GIndex) String() string {
	return fmt.Sprintf("%#x", uint64(g))
}

// UnmarshalYAML parses a packed generalized index from a 0x-prefixed hex
// string, allowing the fork constants to be supplied via config files.
func (g *GIndex) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := FromHexString(raw)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// FromHexString parses a packed generalized index from 0x-prefixed hex.
func FromHexString(s string) (GIndex, error) {
	if !strings.HasPrefix(s, "0x") {
		return 0, errors.Errorf("gindex: hex string %q missing 0x prefix", s)
	}
	v, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "gindex: could not parse %q", s)
	}
	packed := GIndex(v)
	if packed.Index() == 0 {
		return 0, ErrInvalidIndex
	}
	return packed, nil
}
