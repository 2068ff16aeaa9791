package codec

// symbolPositions holds, in transmission order (raw bit 0 first), the
// unit bit position of each symbol's first half-cell; the second
// half-cell sits at position+1. The LSB nibble of the raw byte lands in
// the high byte of the unit and the MSB nibble in the low byte, so a
// big-endian unit puts the LSB nibble's cells on the wire first. This
// layout is the wire format and must not be rearranged.
var symbolPositions = [8]uint{8, 10, 12, 14, 0, 2, 4, 6}

// encodeByte encodes the 8 bits of b, LSB first, into a 16-bit unit.
func encodeByte(b byte, level SignalLevel) (uint16, SignalLevel) {
	var unit uint16
	for i, pos := range symbolPositions {
		var sym Symbol
		sym, level = EncodeBit(b>>i, level)
		unit |= uint16(sym>>1) << pos
		unit |= uint16(sym&1) << (pos + 1)
	}
	return unit, level
}

// decodeByte reassembles and decodes the 8 symbols of a unit in
// transmission order. On an invalid symbol the returned error carries
// the symbol's index within the unit.
func decodeByte(unit uint16, level SignalLevel) (byte, SignalLevel, error) {
	var out byte
	for i, pos := range symbolPositions {
		sym := Symbol((unit>>pos)&1)<<1 | Symbol((unit>>(pos+1))&1)
		bit, next, err := DecodeBit(sym, level)
		if err != nil {
			return 0, level, &InvalidSymbolError{Symbol: sym, Offset: i}
		}
		out |= bit << i
		level = next
	}
	return out, level, nil
}

// UnitSymbols splits an encoded unit into its 8 line symbols in
// transmission order. The symbols are returned as found; call Valid to
// check them.
func UnitSymbols(unit uint16) [8]Symbol {
	var syms [8]Symbol
	for i, pos := range symbolPositions {
		syms[i] = Symbol((unit>>pos)&1)<<1 | Symbol((unit>>(pos+1))&1)
	}
	return syms
}
