package coding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func convertBits(t *testing.T, mode EncodingMode, data []byte) string {
	t.Helper()
	s := NewBitStream()
	if err := mode.convert(data, s); err != nil {
		t.Fatalf("convert: %v", err)
	}
	return bitsOf(s)
}

// Scenario from spec.md §8.
func TestNumericScenario(t *testing.T) {
	require.Equal(t, "000111101101110010001001110", convertBits(t, Numeric, []byte("12345678")))
}

// Scenario from spec.md §8.
func TestAlphanumericScenario(t *testing.T) {
	require.Equal(t, "0110000101101111000110011000", convertBits(t, Alphanumeric, []byte("HELLO")))
}

// Scenario from spec.md §8: UTF-8 input "Хабр" in byte mode.
func TestByteScenario(t *testing.T) {
	want := "1101000010100101110100001011000011010000101100011101000110000000"
	require.Equal(t, want, convertBits(t, Byte, []byte("Хабр")))
}

func TestNumericSupports(t *testing.T) {
	require.True(t, Numeric.Supports([]byte("0123456789")))
	require.False(t, Numeric.Supports([]byte("12a")))
	require.False(t, Numeric.Supports([]byte("1 2")))
}

func TestAlphanumericSupports(t *testing.T) {
	require.True(t, Alphanumeric.Supports([]byte("HELLO WORLD $%*+-./:")))
	require.False(t, Alphanumeric.Supports([]byte("hello")))
}

func TestByteSupportsEverything(t *testing.T) {
	require.True(t, Byte.Supports([]byte{0, 1, 2, 255}))
	require.True(t, Byte.Supports(nil))
}

// Invariant from spec.md §8: convert followed by decoding the emitted
// groups in the mode's own grouping recovers the original input.
func TestNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "12", "123", "1234", "00001234567890"} {
		data := []byte(s)
		bits := convertBits(t, Numeric, data)
		require.Equal(t, decodeNumericBits(bits, len(data)), s)
	}
}

func decodeNumericBits(bits string, n int) string {
	out := make([]byte, 0, n)
	i := 0
	for len(out) < n {
		switch n - len(out) {
		case 1:
			out = append(out, byte(mustParseBits(bits[i:i+4]))+'0')
			i += 4
		case 2:
			v := mustParseBits(bits[i : i+7])
			out = append(out, byte(v/10)+'0', byte(v%10)+'0')
			i += 7
		default:
			v := mustParseBits(bits[i : i+10])
			out = append(out, byte(v/100)+'0', byte(v/10%10)+'0', byte(v%10)+'0')
			i += 10
		}
	}
	return string(out)
}

func mustParseBits(s string) int {
	v := 0
	for _, c := range s {
		v <<= 1
		if c == '1' {
			v |= 1
		}
	}
	return v
}

func TestCountFieldWidth(t *testing.T) {
	require.Equal(t, 10, Numeric.countFieldWidth(1))
	require.Equal(t, 12, Numeric.countFieldWidth(10))
	require.Equal(t, 14, Numeric.countFieldWidth(27))
	require.Equal(t, 9, Alphanumeric.countFieldWidth(1))
	require.Equal(t, 8, Byte.countFieldWidth(9))
	require.Equal(t, 16, Byte.countFieldWidth(10))
}
