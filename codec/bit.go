package codec

// EncodeBit encodes one data bit against the current line level and
// returns the line symbol together with the level the line is left at.
//
// If the bit equals the current level the line falls across the cell
// (symbol 10); otherwise it rises (symbol 01). Either way the cell
// contains a transition, which is what a receiver recovers its clock
// from. The returned level is the second half-cell of the symbol.
func EncodeBit(bit byte, level SignalLevel) (Symbol, SignalLevel) {
	if SignalLevel(bit&1) == level {
		return SymbolFall, Low
	}
	return SymbolRise, High
}

// DecodeBit is the inverse of EncodeBit: a falling cell decodes to the
// current level, a rising cell to its inverse. Symbols 00 and 11 never
// come out of an encoder and are rejected with *InvalidSymbolError.
func DecodeBit(sym Symbol, level SignalLevel) (byte, SignalLevel, error) {
	switch sym {
	case SymbolFall:
		return byte(level), Low, nil
	case SymbolRise:
		return byte(level.Invert()), High, nil
	default:
		return 0, level, &InvalidSymbolError{Symbol: sym, Offset: -1}
	}
}
