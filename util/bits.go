// Package util provides binary-text helpers shared by the CDP command
// line tools and tests.
package util

import (
	"fmt"
	"strings"
)

const BitsPerByte = 8

// StringBits renders data as binary text, one group of 8 characters
// per byte, most significant bit first, groups separated by a space.
func StringBits(data []byte) string {
	var out strings.Builder
	for i, b := range data {
		if i > 0 {
			out.WriteByte(' ')
		}
		for bit := BitsPerByte - 1; bit >= 0; bit-- {
			if b&(1<<bit) != 0 {
				out.WriteByte('1')
			} else {
				out.WriteByte('0')
			}
		}
	}
	return out.String()
}

// ParseBits parses binary text back into bytes, most significant bit
// first within each group of 8. Whitespace is ignored; anything else
// besides '0' and '1' is an error, as is a bit count that does not
// fill whole bytes.
func ParseBits(s string) ([]byte, error) {
	var out []byte
	var cur byte
	count := 0
	for _, r := range s {
		switch r {
		case '0', '1':
			cur = cur<<1 | byte(r-'0')
			count++
			if count == BitsPerByte {
				out = append(out, cur)
				cur = 0
				count = 0
			}
		case ' ', '\t', '\n', '\r':
			// separators
		default:
			return nil, fmt.Errorf("invalid character %q in binary text", r)
		}
	}
	if count != 0 {
		return nil, fmt.Errorf("binary text has %d trailing bits; need a multiple of %d", count, BitsPerByte)
	}
	return out, nil
}
