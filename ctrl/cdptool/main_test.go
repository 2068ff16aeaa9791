package main

import (
	"bytes"
	"testing"
)

func TestParseFormatSymmetry(t *testing.T) {
	data := []byte{0x5A, 0xA6, 0x00, 0xFF}
	for _, format := range []string{"raw", "hex", "bits"} {
		text, err := formatText(format, data)
		if err != nil {
			t.Fatalf("format %s: %v", format, err)
		}
		back, err := parseText(format, text)
		if err != nil {
			t.Fatalf("parse %s: %v", format, err)
		}
		if !bytes.Equal(back, data) {
			t.Errorf("%s round trip: % 02X", format, back)
		}
	}
}

func TestParseTextHexWhitespace(t *testing.T) {
	data, err := parseText("hex", []byte("5a a6\n00"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{0x5A, 0xA6, 0x00}) {
		t.Errorf("parsed % 02X", data)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := parseText("base64", nil); err == nil {
		t.Error("parseText accepted an unknown format")
	}
	if _, err := formatText("base64", nil); err == nil {
		t.Error("formatText accepted an unknown format")
	}
}
