package coding

// alphaValue maps the 45-character alphanumeric set to its QR code
// point value, grounded on myqro's AlphaNumericEncodeProvider::chars_
// map (encode_provider.cpp). A value of 0xff marks an unsupported
// byte.
var alphaValue [256]byte

func init() {
	for i := range alphaValue {
		alphaValue[i] = 0xff
	}
	const set = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
	for i := 0; i < len(set); i++ {
		alphaValue[set[i]] = byte(i)
	}
}

// Supports reports whether data can be represented in mode m, the
// equivalent of myqro's EncodeProvider::IsDataSupported for each
// concrete provider. Per spec.md §9 and the non-goals, Kanji is never
// a valid EncodingMode value in this package, so there is nothing to
// reject here explicitly; callers that accept a mode name from the CLI
// reject "kanji" before it ever reaches this package.
func (m EncodingMode) Supports(data []byte) bool {
	switch m {
	case Numeric:
		for _, c := range data {
			if c < '0' || c > '9' {
				return false
			}
		}
		return true
	case Alphanumeric:
		for _, c := range data {
			if alphaValue[c] == 0xff {
				return false
			}
		}
		return true
	case Byte:
		return true
	}
	return false
}

// convert appends the payload bits for data in mode m to stream: mode
// indicator and character-count header are not included, the driver
// adds those. This is the tagged-union encoder spec.md §9 recommends in
// place of virtual dispatch, grounded on myqro's three
// ConvertInput implementations (encode_provider.cpp) collapsed into one
// switch.
func (m EncodingMode) convert(data []byte, stream *BitStream) *Error {
	if !m.Supports(data) {
		return newError(InputNotRepresentable, "%s mode does not support input %q", m, preview(data))
	}
	switch m {
	case Numeric:
		for i := 0; i < len(data); i += 3 {
			tail := len(data) - i
			switch tail {
			case 1:
				stream.AppendBits(uint32(data[i]-'0'), 4)
			case 2:
				v := uint32(data[i]-'0')*10 + uint32(data[i+1]-'0')
				stream.AppendBits(v, 7)
			default:
				v := uint32(data[i]-'0')*100 + uint32(data[i+1]-'0')*10 + uint32(data[i+2]-'0')
				stream.AppendBits(v, 10)
			}
		}
	case Alphanumeric:
		for i := 0; i < len(data); i += 2 {
			if len(data)-i == 1 {
				stream.AppendBits(uint32(alphaValue[data[i]]), 6)
				continue
			}
			v := uint32(alphaValue[data[i]])*45 + uint32(alphaValue[data[i+1]])
			stream.AppendBits(v, 11)
		}
	case Byte:
		for _, c := range data {
			stream.AppendBits(uint32(c), 8)
		}
	default:
		return newError(InputNotRepresentable, "unsupported encoding mode %s", m)
	}
	return nil
}

// preview returns a short printable prefix of data for error messages,
// mirroring myqro's practice of echoing the offending input in
// Error("Unsupported data for {}: {}", ...).
func preview(data []byte) string {
	const max = 32
	if len(data) <= max {
		return string(data)
	}
	return string(data[:max]) + "..."
}

// countFieldWidth returns the character-count field width in bits for
// mode m at QR version v, per the standard's three version buckets
// [1-9],[10-26],[27-40], grounded on myqro's DataSizeFieldWidth table
// (defines.hpp).
func (m EncodingMode) countFieldWidth(v Version) int {
	class := v.sizeClass()
	switch m {
	case Numeric:
		return [3]int{10, 12, 14}[class]
	case Alphanumeric:
		return [3]int{9, 11, 13}[class]
	case Byte:
		return [3]int{8, 16, 16}[class]
	}
	return 0
}

// encodedLength returns the number of payload bits convert would emit
// for data in mode m, without writing anything, used by the driver's
// version-fitting loop.
func (m EncodingMode) encodedLength(data []byte) int {
	switch m {
	case Numeric:
		switch len(data) % 3 {
		case 0:
			return len(data) / 3 * 10
		case 1:
			return len(data)/3*10 + 4
		default:
			return len(data)/3*10 + 7
		}
	case Alphanumeric:
		return len(data)/2*11 + len(data)%2*6
	case Byte:
		return len(data) * 8
	}
	return 0
}
