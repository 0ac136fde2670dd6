package coding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario from spec.md §8: appendBits then byte-align padding.
func TestBitStreamAppendBitsScenario(t *testing.T) {
	s := NewBitStream()
	s.AppendBits(0b0000000000001, 13)
	require.Equal(t, 13, s.Len())
	if rem := s.Len() % 8; rem != 0 {
		s.AppendBits(0, 8-rem)
	}
	require.Equal(t, bitsOf(s), "0000000000001000")
}

func TestBitStreamBitAtRoundTrip(t *testing.T) {
	s := NewBitStream()
	s.AppendBits(0xA5, 8)
	s.AppendBits(0x3, 2)
	want := "10100101" + "11"
	require.Equal(t, want, bitsOf(s))
	for i, want := range want {
		wantBit := byte(0)
		if want == '1' {
			wantBit = 1
		}
		require.Equal(t, wantBit, s.BitAt(i), "bit %d", i)
	}
}

func TestBitStreamSetBitAt(t *testing.T) {
	s := NewBitStream()
	s.AppendBits(0, 8)
	s.SetBitAt(3, 1)
	require.Equal(t, byte(1), s.BitAt(3))
	s.SetBitAt(3, 0)
	require.Equal(t, byte(0), s.BitAt(3))
}

func TestBitStreamBitAtOutOfRangePanics(t *testing.T) {
	s := NewBitStream()
	s.AppendBits(1, 1)
	require.Panics(t, func() { s.BitAt(1) })
}

func TestBitStreamAppendStream(t *testing.T) {
	a := NewBitStream()
	a.AppendBits(0b101, 3)
	b := NewBitStream()
	b.AppendBits(0b11, 2)
	a.AppendStream(b)
	require.Equal(t, "10111", bitsOf(a))
}

// SplitIntoBlocks preserves concatenation and the documented size
// split: the first count-(byteLen mod count) blocks get the smaller
// size, per spec.md §4.1 and the invariant in §8.
func TestBitStreamSplitIntoBlocksPreservesConcatenation(t *testing.T) {
	s := NewBitStream()
	data := []byte{1, 2, 3, 4, 5, 6, 7}
	for _, b := range data {
		s.AppendBits(uint32(b), 8)
	}
	blocks := s.SplitIntoBlocks(3)
	require.Len(t, blocks, 3)

	var got []byte
	for _, b := range blocks {
		got = append(got, b...)
	}
	require.Equal(t, data, got)

	// 7 bytes / 3 blocks: base=2, extra=1 -> first 2 blocks get 2
	// bytes, last block gets 3.
	require.Len(t, blocks[0], 2)
	require.Len(t, blocks[1], 2)
	require.Len(t, blocks[2], 3)
}

func TestBitStreamSplitIntoBlocksRequiresByteAlignment(t *testing.T) {
	s := NewBitStream()
	s.AppendBits(1, 3)
	require.Panics(t, func() { s.SplitIntoBlocks(1) })
}

// bitsOf renders every bit in s as a '0'/'1' string, for test
// readability.
func bitsOf(s *BitStream) string {
	out := make([]byte, s.Len())
	for i := range out {
		if s.BitAt(i) == 1 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
