package codec

import "testing"

func TestEncodeBitTruthTable(t *testing.T) {
	cases := []struct {
		bit       byte
		level     SignalLevel
		sym       Symbol
		nextLevel SignalLevel
	}{
		{0, Low, SymbolFall, Low},
		{0, High, SymbolRise, High},
		{1, Low, SymbolRise, High},
		{1, High, SymbolFall, Low},
	}
	for _, c := range cases {
		sym, next := EncodeBit(c.bit, c.level)
		if sym != c.sym || next != c.nextLevel {
			t.Errorf("EncodeBit(%d, %v) = %v, %v; want %v, %v",
				c.bit, c.level, sym, next, c.sym, c.nextLevel)
		}
		if !sym.Valid() {
			t.Errorf("EncodeBit(%d, %v) produced invalid symbol %02b", c.bit, c.level, uint8(sym))
		}
		if sym.First() == sym.Second() {
			t.Errorf("symbol %v has no mid-cell transition", sym)
		}
		if next != sym.Second() {
			t.Errorf("next level %v does not match second half-cell %v", next, sym.Second())
		}
	}
}

func TestBitRoundTrip(t *testing.T) {
	for _, level := range []SignalLevel{Low, High} {
		for bit := byte(0); bit <= 1; bit++ {
			sym, encLevel := EncodeBit(bit, level)
			out, decLevel, err := DecodeBit(sym, level)
			if err != nil {
				t.Fatalf("DecodeBit(%v, %v): %v", sym, level, err)
			}
			if out != bit {
				t.Errorf("bit %d from level %v came back as %d", bit, level, out)
			}
			if encLevel != decLevel {
				t.Errorf("encoder left level %v but decoder left %v", encLevel, decLevel)
			}
		}
	}
}

func TestDecodeBitInvalid(t *testing.T) {
	for _, sym := range []Symbol{0b00, 0b11} {
		for _, level := range []SignalLevel{Low, High} {
			_, next, err := DecodeBit(sym, level)
			symErr, ok := err.(*InvalidSymbolError)
			if !ok {
				t.Fatalf("DecodeBit(%02b, %v) = %v; want *InvalidSymbolError", uint8(sym), level, err)
			}
			if symErr.Symbol != sym {
				t.Errorf("error reports symbol %02b, want %02b", uint8(symErr.Symbol), uint8(sym))
			}
			if next != level {
				t.Errorf("level changed to %v on invalid symbol", next)
			}
		}
	}
}

func TestSignalLevelInvert(t *testing.T) {
	if Low.Invert() != High || High.Invert() != Low {
		t.Error("Invert is not an involution over {Low, High}")
	}
}
