package util

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestStringBits(t *testing.T) {
	if got := StringBits([]byte{0x74}); got != "01110100" {
		t.Errorf("StringBits(0x74) = %q", got)
	}
	if got := StringBits([]byte{0x5A, 0xA6}); got != "01011010 10100110" {
		t.Errorf("StringBits(0x5A 0xA6) = %q", got)
	}
	if got := StringBits(nil); got != "" {
		t.Errorf("StringBits(nil) = %q", got)
	}
}

func TestParseBits(t *testing.T) {
	data, err := ParseBits("01011010\t10100110\n")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{0x5A, 0xA6}) {
		t.Errorf("parsed % 02X", data)
	}

	if _, err := ParseBits("0101x010"); err == nil {
		t.Error("accepted a non-binary character")
	}
	if _, err := ParseBits("0101"); err == nil {
		t.Error("accepted a partial byte")
	}
}

func TestBitsRoundTrip(t *testing.T) {
	rand.Seed(234)
	data := make([]byte, 128)
	_, _ = rand.Read(data)

	back, err := ParseBits(StringBits(data))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, data) {
		t.Error("mismatched data values")
	}
}
