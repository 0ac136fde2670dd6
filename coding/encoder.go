package coding

import (
	"github.com/sirupsen/logrus"

	"github.com/go-qr/qrforge/gf256"
)

// AutoMask tells Encode to evaluate all eight mask patterns and keep
// the one with the lowest penalty, the feature myqro's
// Encoder::Encode explicitly leaves unimplemented ("Automatic mask
// choice is not implemented yet", encoder.cpp) and spec.md §9 directs
// this repo to add.
const AutoMask = -1

// padBytes are the two codewords Encode alternates to fill unused
// data capacity, grounded on myqro's AddRequiredVersionTailBytes
// (encode_provider.cpp), which uses the same two bytes in the same
// order.
var padBytes = [2]byte{0xEC, 0x11}

// Options configures an Encode call, replacing myqro's
// default-argument Context/EncodeProvider constructors with a single
// explicit struct per SPEC_FULL.md §4.10.
type Options struct {
	Ecc    EccLevel
	Mode   EncodingMode
	Mask   int // a value in [0,7], or AutoMask
	Logger *logrus.Logger
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return Log
}

// Encode runs the full pipeline described in spec.md §4.4–§4.7: mode
// validation, version estimation, header and terminator, padding,
// block split and Reed–Solomon, interleaving, canvas layout, and mask
// selection, grounded end-to-end on myqro's Encoder::Encode +
// EncodeProvider::Encode with automatic mask selection added.
func Encode(message []byte, opts Options) (*Canvas, error) {
	logger := opts.logger()

	if !opts.Mode.Supports(message) {
		return nil, newError(InputNotRepresentable, "%s mode does not support input %q", opts.Mode, preview(message))
	}
	if opts.Mask != AutoMask && (opts.Mask < 0 || opts.Mask >= MaskCount) {
		return nil, newError(InvalidArgument, "mask index %d out of range [0,%d]", opts.Mask, MaskCount-1)
	}

	version, err := estimateVersion(message, opts.Mode, opts.Ecc)
	if err != nil {
		return nil, err
	}
	logger.Debugf("estimated version=%d ecc=%s mode=%s", version, opts.Ecc, opts.Mode)

	stream, err := buildStream(message, opts.Mode, version, opts.Ecc)
	if err != nil {
		return nil, err
	}

	vl := vtab[opts.Ecc][version]
	logger.Debugf("blocks=%d ecc_per_block=%d data_bytes=%d", vl.nblock, vl.eccPerBlock, vl.dataBytes)

	final, err := interleave(stream, vl)
	if err != nil {
		return nil, err
	}

	canvas := NewCanvas(version)
	canvas.placeFunctionPatterns()
	canvas.fillData(final)

	result, chosenMask := canvas.chooseMask(opts.Ecc, opts.Mask, logger)
	logger.Infof("encoded version=%d ecc=%s mode=%s mask=%d", version, opts.Ecc, opts.Mode, chosenMask)
	return result, nil
}

// estimateVersion picks the smallest version whose data capacity fits
// the mode header plus payload, bumping once if the header itself
// (whose width depends on the version bucket) pushes the total past
// the initial estimate's capacity. Grounded on
// EncodeProvider::EstimateVersion + PrepareServiceFields's one-version
// bump check.
func estimateVersion(message []byte, mode EncodingMode, ecc EccLevel) (Version, error) {
	payloadBits := mode.encodedLength(message)

	v := MinVersion
	for ; v <= MaxVersion; v++ {
		if dataCapacityBits(v, ecc) > payloadBits {
			break
		}
	}
	if v > MaxVersion {
		return 0, newError(CapacityExceeded, "payload of %d bits exceeds version 40 capacity at ECC level %s", payloadBits, ecc)
	}

	headerBits := 4 + mode.countFieldWidth(v) + payloadBits
	if headerBits > dataCapacityBits(v, ecc) {
		v++
		if v > MaxVersion {
			return 0, newError(CapacityExceeded, "payload of %d bits with header does not fit any version at ECC level %s", payloadBits, ecc)
		}
	}
	return v, nil
}

// buildStream assembles the mode indicator, character count, payload,
// explicit terminator, byte-alignment padding, and fill bytes into one
// byte-aligned BitStream sized exactly to the version/ECC data
// capacity. Grounded on PrepareServiceFields (header) and
// AddTailZeros/AddRequiredVersionTailBytes (termination/padding),
// with the terminator made explicit per spec.md §9 instead of relying
// solely on byte alignment.
func buildStream(message []byte, mode EncodingMode, version Version, ecc EccLevel) (*BitStream, error) {
	stream := NewBitStream()
	stream.AppendBits(mode.Indicator(), 4)
	stream.AppendBits(uint32(len(message)), mode.countFieldWidth(version))
	if err := mode.convert(message, stream); err != nil {
		return nil, err
	}

	capacityBits := dataCapacityBits(version, ecc)
	if stream.Len() > capacityBits {
		return nil, newError(CapacityExceeded, "header+payload of %d bits exceeds %d-bit capacity at version %d level %s",
			stream.Len(), capacityBits, version, ecc)
	}

	terminator := 4
	if remaining := capacityBits - stream.Len(); remaining < terminator {
		terminator = remaining
	}
	if terminator > 0 {
		stream.AppendBits(0, terminator)
	}

	if rem := stream.Len() % 8; rem != 0 {
		stream.AppendBits(0, 8-rem)
	}

	capacityBytes := capacityBits / 8
	idx := 0
	for stream.Len()/8 < capacityBytes {
		stream.AppendBits(uint32(padBytes[idx%2]), 8)
		idx++
	}
	return stream, nil
}

// interleave splits stream into vl.nblock blocks, computes a
// Reed–Solomon ECC block for each, then emits the final codeword
// stream data-byte-by-column across all blocks followed by
// ECC-byte-by-column across all ECC blocks, per spec.md §4.4 step 7.
// Grounded on PrepareBlocks + PrepareOutput, merged into one pass
// since this package computes ECC and interleaves in the same call.
func interleave(stream *BitStream, vl versionLevel) (*BitStream, error) {
	blocks := stream.SplitIntoBlocks(vl.nblock)

	eccBlocks := make([][]byte, vl.nblock)
	maxDataLen := 0
	for i, b := range blocks {
		eccBlocks[i] = gf256.GenerateECC(b, vl.eccPerBlock)
		if len(b) > maxDataLen {
			maxDataLen = len(b)
		}
	}

	final := NewBitStream()
	for col := 0; col < maxDataLen; col++ {
		for _, b := range blocks {
			if col < len(b) {
				final.AppendBits(uint32(b[col]), 8)
			}
		}
	}
	for col := 0; col < vl.eccPerBlock; col++ {
		for _, eb := range eccBlocks {
			final.AppendBits(uint32(eb[col]), 8)
		}
	}
	return final, nil
}

// chooseMask evaluates mask index fixedMask (or, when fixedMask is
// AutoMask, all eight candidates) against a clone of c that already
// has its data modules filled, writing format/version information for
// each candidate before scoring it, per spec.md §4.7. It returns the
// winning canvas and the mask index chosen. Grounded on
// Canvas::Penalty's per-candidate logging, generalized into the
// selection loop myqro's Encoder never implements.
func (c *Canvas) chooseMask(level EccLevel, fixedMask int, logger *logrus.Logger) (*Canvas, int) {
	if fixedMask != AutoMask {
		cand := c.candidateFor(level, fixedMask)
		return cand, fixedMask
	}

	var best *Canvas
	bestMask := 0
	bestPenalty := 0
	for m := 0; m < MaskCount; m++ {
		cand := c.candidateFor(level, m)
		p := cand.penalty()
		logger.Debugf("mask candidate %d penalty %d", m, p)
		if best == nil || p < bestPenalty {
			best, bestMask, bestPenalty = cand, m, p
		}
	}
	logger.Debugf("selected mask %d penalty %d", bestMask, bestPenalty)
	return best, bestMask
}

func (c *Canvas) candidateFor(level EccLevel, mask int) *Canvas {
	cand := c.clone()
	cand.applyMask(mask)
	cand.fillFormatInfo(level, mask)
	if cand.version >= 7 {
		cand.fillVersionInfo()
	}
	return cand
}
