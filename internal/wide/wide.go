// Package wide converts between Go strings and the null-terminated
// UTF-16LE representation the Windows credential vault stores secret
// blobs in.
//
// The byte-size contract matters: a blob holding n UTF-16 code units
// (terminator included) is exactly 2n bytes. Getting that factor wrong
// does not fail the vault write; it silently corrupts every credential
// read back later. Decode therefore refuses anything that is not a
// byte-exact, valid UTF-16 sequence.
package wide

import (
	"fmt"
	"unicode/utf16"
)

// EncodingError reports a blob that cannot be interpreted as a
// null-terminated UTF-16LE string.
type EncodingError struct {
	Reason string
	Size   int // byte length of the offending input
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("wide: %s (%d bytes)", e.Reason, e.Size)
}

// Encode converts s to UTF-16 code units with a single trailing NUL.
func Encode(s string) []uint16 {
	units := utf16.Encode([]rune(s))
	return append(units, 0)
}

// EncodeBytes returns the little-endian byte form of Encode(s).
// The result is always 2*(code units + 1) bytes long.
func EncodeBytes(s string) []byte {
	units := Encode(s)
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		buf[2*i] = byte(u)
		buf[2*i+1] = byte(u >> 8)
	}
	return buf
}

// Decode reinterprets data as little-endian UTF-16 code units and
// decodes them to a string, stripping exactly one trailing NUL if
// present. size is the byte length the caller believes the blob has;
// it must match len(data) and be even. Unpaired surrogates fail the
// decode rather than being replaced.
func Decode(data []byte, size int) (string, error) {
	if size != len(data) {
		return "", &EncodingError{
			Reason: fmt.Sprintf("declared size %d does not match buffer length %d", size, len(data)),
			Size:   len(data),
		}
	}
	if size%2 != 0 {
		return "", &EncodingError{Reason: "odd byte count", Size: size}
	}

	units := make([]uint16, size/2)
	for i := range units {
		units[i] = uint16(data[2*i]) | uint16(data[2*i+1])<<8
	}
	if n := len(units); n > 0 && units[n-1] == 0 {
		units = units[:n-1]
	}
	if err := validate(units); err != nil {
		return "", err
	}
	return string(utf16.Decode(units)), nil
}

// validate rejects unpaired surrogates, which utf16.Decode would
// otherwise silently replace with U+FFFD.
func validate(units []uint16) error {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return &EncodingError{
					Reason: fmt.Sprintf("unpaired high surrogate at code unit %d", i),
					Size:   2 * len(units),
				}
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF:
			return &EncodingError{
				Reason: fmt.Sprintf("unpaired low surrogate at code unit %d", i),
				Size:   2 * len(units),
			}
		}
	}
	return nil
}
