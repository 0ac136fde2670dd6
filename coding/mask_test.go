package coding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// N1: a run of 5 identical modules in one row contributes run-2 = 3.
// The background is a checkerboard so no other row or column run
// reaches length 5; only the forced run at the start of row 9 does.
func TestRunPenaltyContributesRunMinusTwo(t *testing.T) {
	c := NewCanvas(1)
	for r := 0; r < c.size; r++ {
		for cc := 0; cc < c.size; cc++ {
			c.set(r, cc, Data, byte((r+cc)%2))
		}
	}
	for cc := 0; cc < 5; cc++ {
		c.set(9, cc, Data, dark)
	}
	require.Equal(t, 3, c.runPenalty())
}

// N2: every 2x2 block of one color contributes 3, counted with
// overlapping windows (a 3x3 uniform block is 4 overlapping 2x2
// windows, 4*3=12).
func TestBlockPenaltyCountsOverlappingWindows(t *testing.T) {
	c := NewCanvas(1)
	for r := 0; r < c.size; r++ {
		for cc := 0; cc < c.size; cc++ {
			c.set(r, cc, Data, byte((r+cc)%2))
		}
	}
	for r := 0; r < 3; r++ {
		for cc := 0; cc < 3; cc++ {
			c.set(r, cc, Data, dark)
		}
	}
	require.Equal(t, 12, c.blockPenalty())
}

// N4: percent dark exactly 50% contributes zero.
func TestBalancePenaltyZeroAtFiftyPercent(t *testing.T) {
	c := NewCanvas(1)
	half := len(c.cells) / 2
	for i := range c.cells {
		if i < half {
			c.cells[i].Value = dark
		}
	}
	require.Equal(t, 0, c.balancePenalty())
}

func TestBalancePenaltyFormula(t *testing.T) {
	c := NewCanvas(1)
	// all dark: 100% -> |100-50|=50 -> 10*floor(50/5)=100
	for i := range c.cells {
		c.cells[i].Value = dark
	}
	require.Equal(t, 100, c.balancePenalty())
}

// Invariant from spec.md §8 #7: auto-mask picks the minimum-penalty
// candidate deterministically (ties go to the lowest index, and
// re-running with the same input picks the same mask).
func TestChooseMaskIsDeterministicAndMinimal(t *testing.T) {
	msg := []byte("THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG 0123456789")
	canvas1, err := Encode(msg, Options{Ecc: M, Mode: Alphanumeric, Mask: AutoMask})
	require.NoError(t, err)
	canvas2, err := Encode(msg, Options{Ecc: M, Mode: Alphanumeric, Mask: AutoMask})
	require.NoError(t, err)

	for r := 0; r < canvas1.size; r++ {
		for cc := 0; cc < canvas1.size; cc++ {
			require.Equal(t, canvas1.cellAt(r, cc), canvas2.cellAt(r, cc), "(%d,%d)", r, cc)
		}
	}

	best := canvas1.penalty()
	for m := 0; m < MaskCount; m++ {
		other, err := Encode(msg, Options{Ecc: M, Mode: Alphanumeric, Mask: m})
		require.NoError(t, err)
		require.GreaterOrEqual(t, other.penalty(), best)
	}
}

func TestMaskFunctionsMatchStandardFormulas(t *testing.T) {
	cases := []struct {
		mask     int
		r, c     int
		inverted bool
	}{
		{0, 0, 0, true},
		{0, 0, 1, false},
		{1, 0, 0, true},
		{1, 1, 0, false},
		{2, 0, 3, true},
		{2, 0, 1, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.inverted, maskFunctions[tc.mask](tc.r, tc.c),
			"mask %d at (%d,%d)", tc.mask, tc.r, tc.c)
	}
}
