package utils

import "unicode/utf8"

// RepairText fixes the near-universal mojibake in Instagram exports: text
// whose UTF-8 bytes were decoded one-byte-per-character as latin-1. Each
// code point is reinterpreted as a raw byte and the byte sequence is decoded
// as UTF-8 again. If any code point exceeds a single byte, or the rebuilt
// sequence is not valid UTF-8, the input is returned unchanged.
func RepairText(s string) string {
	multibyte := false
	for _, r := range s {
		if r > 0xFF {
			// Already genuine multi-byte text, nothing to repair.
			return s
		}
		if r > 0x7F {
			multibyte = true
		}
	}
	if !multibyte {
		return s
	}

	raw := make([]byte, 0, len(s))
	for _, r := range s {
		raw = append(raw, byte(r))
	}
	if !utf8.Valid(raw) {
		return s
	}
	return string(raw)
}
