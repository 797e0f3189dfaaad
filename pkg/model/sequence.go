// Nucleotide helpers shared by the region tree

package model

import (
	"strings"
	"unicode/utf8"
)

// IUPAC complement table. Lower-case input is normalised before lookup.
var complementTable = map[byte]byte{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D', 'N': 'N', 'X': 'X',
}

// ComplementBase returns the IUPAC complement of c. Anything outside the
// table maps to 'N'.
func ComplementBase(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if comp, ok := complementTable[c]; ok {
		return comp
	}
	return 'N'
}

// ComplementSequence complements every character of s without reversing it.
// Non-ASCII characters count as one unknown base each.
func ComplementSequence(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, c := range s {
		if c < utf8.RuneSelf {
			sb.WriteByte(ComplementBase(byte(c)))
		} else {
			sb.WriteByte('N')
		}
	}
	return sb.String()
}

// ReverseSequence returns s with its characters in reverse order.
func ReverseSequence(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func ReverseComplement(s string) string {
	return ReverseSequence(ComplementSequence(s))
}

// placeholder builds the filler used for undetermined content.
func placeholder(c string, n int64) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(c, int(n))
}
