// Package coding implements the QR Model-2 encoding pipeline: mode
// selection and bit packing, Reed-Solomon error correction, version
// estimation, block interleaving, canvas layout and data placement, and
// penalty-based automatic mask selection.
//
// The package is grounded on github.com/unixdj/qr/coding's pipeline
// (Bits, Mode, Plan, Encoder) and on original_source/myqro's Context /
// EncodeProvider / Canvas, generalized to the Cell-grid Canvas data
// model spec.md mandates instead of unixdj-qr's packed bitmap.
package coding

import "strconv"

// EncodingMode selects how a message's bytes are packed into the QR
// payload. Kanji is intentionally absent: the spec's non-goals exclude
// it, and myqro's EncodeProviderFactory rejects it outright rather than
// silently downgrading to byte mode.
type EncodingMode int

const (
	Numeric EncodingMode = iota
	Alphanumeric
	Byte
)

// Indicator returns the 4-bit mode indicator written before the
// character-count field.
func (m EncodingMode) Indicator() uint32 {
	switch m {
	case Numeric:
		return 0b0001
	case Alphanumeric:
		return 0b0010
	case Byte:
		return 0b0100
	}
	return 0
}

func (m EncodingMode) String() string {
	switch m {
	case Numeric:
		return "numeric"
	case Alphanumeric:
		return "alphanumeric"
	case Byte:
		return "byte"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// EccLevel is a QR error-correction level, from least to most tolerant
// of errors.
type EccLevel int

const (
	L EccLevel = iota
	M
	Q
	H
)

func (l EccLevel) String() string {
	if l >= L && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// RecoveryPercent returns the nominal percentage of codewords that can
// be corrupted and still recovered at this level.
func (l EccLevel) RecoveryPercent() int {
	return [4]int{7, 15, 25, 30}[l]
}

// ParseEccLevel parses a single-letter (case-insensitive) ECC level.
func ParseEccLevel(s string) (EccLevel, error) {
	switch s {
	case "l", "L":
		return L, nil
	case "m", "M":
		return M, nil
	case "q", "Q":
		return Q, nil
	case "h", "H":
		return H, nil
	}
	return 0, newError(InvalidArgument, "invalid ECC level %q", s)
}

// Version is a QR symbol version in [1,40].
type Version int

const (
	MinVersion Version = 1
	MaxVersion Version = 40
)

// Size returns the number of modules on a side of a symbol of version v.
func (v Version) Size() int { return 21 + 4*(int(v)-1) }

// sizeClass returns the character-count-field size class (0,1,2) for
// versions [1-9],[10-26],[27-40] respectively, per the standard.
func (v Version) sizeClass() int {
	switch {
	case v <= 9:
		return 0
	case v <= 26:
		return 1
	default:
		return 2
	}
}
