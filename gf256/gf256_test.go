package gf256

import "testing"

import "github.com/stretchr/testify/require"

func TestExpLogRoundTrip(t *testing.T) {
	for i := 1; i < 256; i++ {
		require.Equal(t, byte(i), Exp(Log(byte(i))), "byte %d", i)
	}
}

func TestMulIdentity(t *testing.T) {
	for i := 1; i < 256; i++ {
		require.Equal(t, byte(i), Mul(byte(i), 1))
	}
	require.Equal(t, byte(0), Mul(0, 42))
}

// Scenario from spec.md §8: RS on a 16-byte data block with k=28.
func TestGenerateECCScenario(t *testing.T) {
	data := []byte{64, 196, 132, 84, 196, 196, 242, 194, 4, 132, 20, 37, 34, 16, 236, 17}
	want := []byte{
		16, 85, 12, 231, 54, 54, 140, 70, 118, 84, 10, 174, 235, 197, 99, 218,
		12, 254, 246, 4, 190, 56, 39, 217, 115, 189, 193, 24,
	}
	got := GenerateECC(data, 28)
	require.Equal(t, want, got)
}

func TestGenerateECCLength(t *testing.T) {
	for _, k := range []int{7, 10, 13, 17, 22, 28, 30} {
		ecc := GenerateECC([]byte{1, 2, 3, 4, 5}, k)
		require.Len(t, ecc, k)
	}
}
