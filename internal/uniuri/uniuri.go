// Package uniuri generates random string tokens from crypto/rand.
package uniuri

import (
	"crypto/rand"
)

const (
	// StdLen is a standard length of a uniuri string to achieve ~95 bits of entropy.
	StdLen = 16

	// MapperLen is the length of group mapper tokens registered on the
	// editing service.
	MapperLen = 10
)

var (
	// StdChars is a set of standard characters allowed in a uniuri string.
	StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

	// LowerChars is the lowercase alphabet used for group mapper tokens.
	LowerChars = []byte("abcdefghijklmnopqrstuvwxyz")
)

// New returns a new random string of the standard length, consisting of
// standard characters.
func New() string {
	return NewLenChars(StdLen, StdChars)
}

// NewMapper returns a new random lowercase token suitable as an idempotent
// group mapper on the editing service.
func NewMapper() string {
	return NewLenChars(MapperLen, LowerChars)
}

// NewLenChars returns a new random string of the provided length, consisting
// of the provided byte slice of allowed characters (maximum 256).
func NewLenChars(length int, chars []byte) string {
	if length == 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > 256 {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	// Reject bytes above maxRb to avoid modulo bias.
	maxRb := 255 - (256 % clen)

	out := make([]byte, length)
	buf := make([]byte, length+(length/4)+1)

	var i int

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			c := int(rb)
			if c > maxRb {
				continue
			}

			out[i] = chars[c%clen]
			i++

			if i == length {
				return string(out)
			}
		}
	}
}
