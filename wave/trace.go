// Package wave expands CDP-encoded streams into the level driven on
// the physical line, half-bit cell by half-bit cell. This is the view
// a logic analyzer would show, and what the plotting tools render.
package wave

import "github.com/driftline/cdp/codec"

// Trace returns the line level for every half-bit cell of an encoded
// stream, in transmission order. Each encoded unit contributes 16
// half-cells; a trailing odd byte (not a whole unit) is ignored.
func Trace(encoded []byte) []codec.SignalLevel {
	out := make([]codec.SignalLevel, 0, len(encoded)*8)
	for i := 0; i+1 < len(encoded); i += 2 {
		unit := uint16(encoded[i])<<8 | uint16(encoded[i+1])
		for _, sym := range codec.UnitSymbols(unit) {
			out = append(out, sym.First(), sym.Second())
		}
	}
	return out
}

// HasCellTransitions reports whether every bit cell of the encoded
// stream contains a mid-cell transition, i.e. whether all line symbols
// are valid. Encoder output always satisfies this.
func HasCellTransitions(encoded []byte) bool {
	for i := 0; i+1 < len(encoded); i += 2 {
		unit := uint16(encoded[i])<<8 | uint16(encoded[i+1])
		for _, sym := range codec.UnitSymbols(unit) {
			if !sym.Valid() {
				return false
			}
		}
	}
	return true
}
