package scan

import (
	"fmt"
	"math"
)

// Format tags the integer encodings the scanner understands.
type Format int

const (
	// Dec is a plain run of decimal digits.
	Dec Format = iota
	// Hex is a plain run of hexadecimal digits.
	Hex
	// Bin is a plain run of binary digits.
	Bin
	// BE is fixed-width big-endian binary: 4 raw bytes for 32-bit reads,
	// 8 for 64-bit.
	BE
	// Lex is the self-delimiting decimal encoding: a digit-count prefix
	// followed by that many decimal digits. Counts of nine or more are
	// escaped with a leading '9' and a lex-encoded count.
	Lex
	// LexHex is Lex with hexadecimal magnitude digits.
	LexHex
)

func errorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrFormat}, args...)...)
}

func digitVal(c int, base uint64) (uint64, bool) {
	v := hexVal(c)
	if v < 0 || uint64(v) >= base {
		return 0, false
	}
	return uint64(v), true
}

func (f Format) base() uint64 {
	switch f {
	case Hex, LexHex:
		return 16
	case Bin:
		return 2
	default:
		return 10
	}
}

// ScanUint64 reads a 64-bit unsigned value in the given format. For the
// plain text formats at least one digit must be present; on failure the
// offending character is left on the stream. For BE and the lex formats a
// failure may leave the position undefined.
func (s *Source) ScanUint64(f Format) (uint64, error) {
	switch f {
	case Dec, Hex, Bin:
		return s.scanDigits(f.base(), math.MaxInt32)
	case BE:
		return s.scanBigEndian(8)
	case Lex, LexHex:
		return s.scanLex(f.base())
	default:
		panic(fmt.Sprintf("scan: unknown format %d", f))
	}
}

// ScanUint32 reads a 32-bit unsigned value in the given format. A value
// that does not fit 32 bits is a format error.
func (s *Source) ScanUint32(f Format) (uint32, error) {
	if f == BE {
		v, err := s.scanBigEndian(4)
		return uint32(v), err
	}
	v, err := s.ScanUint64(f)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, errorf("value %d overflows 32 bits", v)
	}
	return uint32(v), nil
}

// ScanLexDigits reads a lex digit-count prefix: a single digit 0 through 8,
// or a '9' escape followed by a lex-encoded count.
func (s *Source) ScanLexDigits() (uint64, error) {
	c := s.Read()
	v, ok := digitVal(c, 10)
	if !ok {
		s.Unread()
		return 0, errorf("lex digit count expected")
	}
	if v < 9 {
		return v, nil
	}
	return s.scanLex(10)
}

// ScanNegativeLex32 reads a strictly negative lex-encoded 32-bit value, if
// one is present. When the leading 'n' marker is absent the stream is
// unchanged and (0, nil) is returned. After the marker, a zero magnitude or
// a magnitude that cannot fit a signed 32-bit value is a format error and
// the stream position is undefined.
func (s *Source) ScanNegativeLex32() (int32, error) {
	if s.Read() != 'n' {
		s.Unread()
		return 0, nil
	}
	mag, err := s.scanLex(10)
	if err != nil {
		return 0, err
	}
	if mag == 0 {
		return 0, errorf("zero magnitude after negation marker")
	}
	if mag > uint64(math.MaxInt32) {
		return 0, errorf("negated magnitude %d overflows 32 bits", mag)
	}
	return -int32(mag), nil
}

func (s *Source) scanDigits(base uint64, maxDigits int) (uint64, error) {
	var v uint64
	n := 0
	for n < maxDigits {
		c := s.Read()
		d, ok := digitVal(c, base)
		if !ok {
			s.Unread()
			break
		}
		if v > (math.MaxUint64-d)/base {
			return 0, errorf("value overflows 64 bits")
		}
		v = v*base + d
		n++
	}
	if n == 0 {
		return 0, errorf("digit expected")
	}
	return v, nil
}

func (s *Source) scanBigEndian(width int) (uint64, error) {
	var v uint64
	for i := 0; i < width; i++ {
		c := s.Read()
		if c == EOF {
			return 0, errorf("truncated %d-byte big-endian value", width)
		}
		v = v<<8 | uint64(c)
	}
	return v, nil
}

func (s *Source) scanLex(base uint64) (uint64, error) {
	count, err := s.ScanLexDigits()
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil // zero encodes as a bare "0"
	}
	if count > 20 {
		return 0, errorf("lex digit count %d too large", count)
	}
	var v uint64
	for i := uint64(0); i < count; i++ {
		c := s.Read()
		d, ok := digitVal(c, base)
		if !ok {
			return 0, errorf("lex magnitude truncated after %d of %d digits", i, count)
		}
		if v > (math.MaxUint64-d)/base {
			return 0, errorf("lex value overflows 64 bits")
		}
		v = v*base + d
	}
	return v, nil
}
