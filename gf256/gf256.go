// Package gf256 implements arithmetic over GF(256) with the primitive
// polynomial used by the QR standard (x^8 + x^4 + x^3 + x^2 + 1, 0x11d)
// and Reed-Solomon encoding of error-correction codewords.
//
// The field tables and the encoder are grounded on the polynomial
// long-division algorithm used by github.com/unixdj/qr/coding (via its
// gf256.Field/NewRSEncoder) and on myqro's GenerateCorrectionBlock
// (original_source/myqro/src/datastream.cpp), which implement the same
// division in the same order.
package gf256

import "sync"

const poly = 0x11d

// exp[i] = α^i for i in [0,254]; exp is extended to [0,509] so callers
// can index exp[a+b] without reducing mod 255 on every multiply.
// log[i] = the exponent e such that α^e = i, for i in [1,255]; log[0] is
// undefined and must never be indexed.
var (
	expTab [510]byte
	logTab [256]byte
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		expTab[i] = byte(x)
		logTab[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= poly
		}
	}
	for i := 255; i < len(expTab); i++ {
		expTab[i] = expTab[i-255]
	}
}

// Exp returns α^e, e taken mod 255.
func Exp(e int) byte {
	for e < 0 {
		e += 255
	}
	return expTab[e%255]
}

// Log returns the exponent e such that α^e = b. Log panics if b is 0.
func Log(b byte) int {
	if b == 0 {
		panic("gf256: log of zero")
	}
	return int(logTab[b])
}

// Mul returns the product of a and b in GF(256).
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTab[int(logTab[a])+int(logTab[b])]
}

// generator caches Reed-Solomon generator polynomials in log form, one
// per ECC-byte count k. Polynomial coefficients are stored as exponents
// so GenerateECC can add exponents instead of multiplying field
// elements, exactly as the standard's reference division does.
var (
	genMu    sync.Mutex
	genCache = map[int][]int{}
)

// generatorPoly returns the degree-k generator polynomial
// g(x) = (x - α^0)(x - α^1)...(x - α^(k-1)), represented as k+1
// exponents of its coefficients with the leading 1 coefficient implied
// and omitted (so generatorPoly(k) has length k, matching the
// GeneratingPolynomial table in myqro's defines.hpp).
func generatorPoly(k int) []int {
	genMu.Lock()
	defer genMu.Unlock()
	if g, ok := genCache[k]; ok {
		return g
	}
	// coeffs holds the polynomial in GF(256) element form, highest
	// degree first, length k+1, leading coefficient always 1.
	coeffs := make([]byte, 1, k+1)
	coeffs[0] = 1
	for i := 0; i < k; i++ {
		root := Exp(i)
		next := make([]byte, len(coeffs)+1)
		for j, c := range coeffs {
			next[j] ^= c
			next[j+1] ^= Mul(c, root)
		}
		coeffs = next
	}
	g := make([]int, k)
	for i := 0; i < k; i++ {
		g[i] = Log(coeffs[i+1])
	}
	genCache[k] = g
	return g
}

// GenerateECC returns the k error-correction bytes for data, computed by
// polynomial long division in GF(256) against the degree-k Reed-Solomon
// generator polynomial, as specified by the QR standard. The generator
// for k is built on first use and cached, so any positive k is
// accepted, not only the ECC-bytes-per-block lengths the standard's
// version/level tables use; k < 1 panics, since a bad ECC-byte count is
// a programmer error, never a user input.
func GenerateECC(data []byte, k int) []byte {
	if k < 1 {
		panic("gf256: ECC length must be positive")
	}
	poly := generatorPoly(k)
	n := len(data)
	if n < k {
		n = k
	}
	r := make([]byte, n)
	copy(r, data)
	for i := 0; i < len(data); i++ {
		a := r[0]
		copy(r, r[1:])
		r[len(r)-1] = 0
		if a == 0 {
			continue
		}
		b := Log(a)
		for j := 0; j < k; j++ {
			c := (poly[j] + b) % 255
			r[j] ^= Exp(c)
		}
	}
	return r[:k]
}
