package rawhdr

import "strings"

type byteClass uint8

const (
	cInvalid byteClass = iota
	cToken             // allowed in names and values
	cValue             // allowed in values only
)

var classTable [256]byteClass

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch {
		case (b >= '0' && b <= '9') ||
			(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
			strings.ContainsRune("!#$%&'*+-.^_`|~", rune(b)):
			classTable[b] = cToken
		case b == ' ' || b == '\t' || (b >= 0x21 && b <= 0x7E) || b >= 0x80:
			classTable[b] = cValue
		}
	}
}

func validNameByte(b byte) bool { return classTable[b] == cToken }

func validValueByte(b byte) bool { return classTable[b] != cInvalid }

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// equalFoldASCII compares a and b byte-wise under ASCII case folding. Unlike
// strings.EqualFold it never folds non-ASCII runes, so a multi-byte rune can
// only match itself.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}
