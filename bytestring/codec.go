package bytestring

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zlib"
)

// ErrInvalidHex is wrapped by FromHex errors.
var ErrInvalidHex = errors.New("invalid hex")

const hexDigits = "0123456789abcdef"

// Compress returns the zlib encoding of s.
func (s *String) Compress() (*String, error) {
	out := &String{}
	zw := zlib.NewWriter(out)
	if _, err := zw.Write(s.b); err != nil {
		return nil, errors.Wrap(err, "compress")
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "compress")
	}
	return out, nil
}

// Uncompress decodes the zlib stream in s. When originalLength is not
// negative the decoded size must match it.
func (s *String) Uncompress(originalLength int) (*String, error) {
	zr, err := zlib.NewReader(bytes.NewReader(s.b))
	if err != nil {
		return nil, errors.Wrap(err, "uncompress")
	}
	defer zr.Close()

	out := &String{}
	if originalLength > 0 {
		out.Reserve(originalLength)
	}
	if _, err := io.Copy(out, zr); err != nil {
		return nil, errors.Wrap(err, "uncompress")
	}
	if originalLength >= 0 && out.Len() != originalLength {
		return nil, errors.Newf("uncompress: got %d bytes, want %d", out.Len(), originalLength)
	}
	return out, nil
}

// ToHex returns s as lowercase hex digits, two per byte.
func (s *String) ToHex() *String {
	b := make([]byte, 2*len(s.b), 2*len(s.b)+1)
	for i, c := range s.b {
		b[2*i] = hexDigits[c>>4]
		b[2*i+1] = hexDigits[c&0x0f]
	}
	out := &String{}
	out.setBytes(b)
	return out
}

// FromHex decodes hex digits of either case. The error wraps ErrInvalidHex.
func (s *String) FromHex() (*String, error) {
	if len(s.b)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidHex, "odd length %d", len(s.b))
	}
	b := make([]byte, len(s.b)/2, len(s.b)/2+1)
	for i := range b {
		hi, lo := unhex(s.b[2*i]), unhex(s.b[2*i+1])
		if hi > 0x0f || lo > 0x0f {
			return nil, errors.Wrapf(ErrInvalidHex, "bad digit in %q at %d", s.b[2*i:2*i+2], 2*i)
		}
		b[i] = hi<<4 | lo
	}
	out := &String{}
	out.setBytes(b)
	return out, nil
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c|0x20 && c|0x20 <= 'f':
		return c|0x20 - 'a' + 10
	}
	return 0xff
}
