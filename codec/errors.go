package codec

import (
	"errors"
	"fmt"
)

// ErrOddLength is returned by Decode and DecodedLen when the encoded
// input has an odd number of bytes. Encoded data is always produced in
// 2-byte units, so an odd length means the stream is truncated or
// misaligned.
var ErrOddLength = errors.New("cdp: encoded input has odd length")

// CapacityError reports an output buffer too small for the transform
// ratio. It is detected before any byte is written.
type CapacityError struct {
	Op   string // "encode" or "decode"
	Need int
	Have int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("cdp: output buffer too small to %s: need %d bytes, have %d", e.Op, e.Need, e.Have)
}

// InvalidSymbolError reports a two-bit line symbol outside {01, 10} in
// encoded input. Offset is the index of the offending symbol in the
// encoded stream (8 symbols per unit), or -1 when the error did not
// come from a buffer decode.
type InvalidSymbolError struct {
	Symbol Symbol
	Offset int
}

func (e *InvalidSymbolError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("cdp: invalid line symbol %02b", uint8(e.Symbol))
	}
	return fmt.Sprintf("cdp: invalid line symbol %02b at symbol %d", uint8(e.Symbol), e.Offset)
}
