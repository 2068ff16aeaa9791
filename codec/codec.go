package codec

// EncodedLen returns the number of encoded bytes produced from n raw
// bytes.
func EncodedLen(n int) int {
	return n * 2
}

// DecodedLen returns the number of raw bytes recovered from n encoded
// bytes, or ErrOddLength if n is not a multiple of the 2-byte unit.
func DecodedLen(n int) (int, error) {
	if n%2 != 0 {
		return 0, ErrOddLength
	}
	return n / 2, nil
}

// Encode encodes src into dst, which must be at least
// EncodedLen(len(src)) bytes, and returns the number of bytes written.
// The line level starts High; no state survives between calls. On a
// capacity failure nothing is written.
func Encode(dst, src []byte) (int, error) {
	need := EncodedLen(len(src))
	if len(dst) < need {
		return 0, &CapacityError{Op: "encode", Need: need, Have: len(dst)}
	}
	level := initialLevel
	for i, b := range src {
		var unit uint16
		unit, level = encodeByte(b, level)
		dst[2*i] = byte(unit >> 8)
		dst[2*i+1] = byte(unit)
	}
	return need, nil
}

// Decode decodes src into dst, which must be at least len(src)/2
// bytes, and returns the number of bytes written. It fails with
// ErrOddLength on odd-length input and with *CapacityError when dst is
// too small; in either case nothing is written. An *InvalidSymbolError
// aborts the pass, leaving the already-decoded prefix in dst.
func Decode(dst, src []byte) (int, error) {
	need, err := DecodedLen(len(src))
	if err != nil {
		return 0, err
	}
	if len(dst) < need {
		return 0, &CapacityError{Op: "decode", Need: need, Have: len(dst)}
	}
	level := initialLevel
	for i := 0; i < need; i++ {
		unit := uint16(src[2*i])<<8 | uint16(src[2*i+1])
		b, next, err := decodeByte(unit, level)
		if err != nil {
			if sym, ok := err.(*InvalidSymbolError); ok {
				sym.Offset += i * 8
			}
			return 0, err
		}
		dst[i] = b
		level = next
	}
	return need, nil
}

// EncodeBytes encodes src into a freshly allocated buffer.
func EncodeBytes(src []byte) []byte {
	dst := make([]byte, EncodedLen(len(src)))
	if _, err := Encode(dst, src); err != nil {
		panic(err) // capacity is exact
	}
	return dst
}

// DecodeBytes decodes src into a freshly allocated buffer.
func DecodeBytes(src []byte) ([]byte, error) {
	n, err := DecodedLen(len(src))
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	if _, err := Decode(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}
