// Package codec implements Conditional DePhase (CDP) line coding, also
// known as Differential Manchester Code, as used by IEEE 802.5.
//
// Each data bit becomes a two-bit line symbol, so the encoded stream is
// twice the size of the raw stream and every bit cell carries a signal
// transition that a receiver can recover its clock from. The only state
// is the current line level, which starts High and is threaded through
// an entire buffer operation.
package codec

import "fmt"

// SignalLevel is the logical level driven on the line during one
// half-bit cell.
type SignalLevel uint8

const (
	Low  SignalLevel = 0
	High SignalLevel = 1
)

// initialLevel is the line level assumed at the start of every encode
// or decode call.
const initialLevel = High

func (l SignalLevel) Invert() SignalLevel {
	return l ^ 1
}

func (l SignalLevel) String() string {
	switch l {
	case Low:
		return "Low"
	case High:
		return "High"
	default:
		panic(fmt.Sprintf("invalid signal level: %d", uint8(l)))
	}
}

// Symbol is the two-half-cell line symbol encoding one data bit. The
// high bit is the level driven during the first half of the cell, the
// low bit the level during the second half. Only SymbolRise and
// SymbolFall are valid on the wire; 00 and 11 would drive a cell with
// no transition.
type Symbol uint8

const (
	// SymbolRise drives the line low, then high.
	SymbolRise Symbol = 0b01
	// SymbolFall drives the line high, then low.
	SymbolFall Symbol = 0b10
)

func (s Symbol) Valid() bool {
	return s == SymbolRise || s == SymbolFall
}

// First returns the level driven during the first half of the bit cell.
func (s Symbol) First() SignalLevel {
	return SignalLevel(s>>1) & 1
}

// Second returns the level driven during the second half of the bit
// cell. For a valid symbol this is also the reference level for the
// next bit.
func (s Symbol) Second() SignalLevel {
	return SignalLevel(s) & 1
}

func (s Symbol) String() string {
	switch s {
	case SymbolRise:
		return "Rise"
	case SymbolFall:
		return "Fall"
	default:
		return fmt.Sprintf("Invalid(%02b)", uint8(s))
	}
}
