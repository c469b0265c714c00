// Package scan implements the character-stream scanner used to load and
// save configuration and grid snapshots: single-character lookahead with
// one-level pushback, set-based character-class consumption, and the
// fixed-width and self-delimiting ("lex") integer encodings.
//
// Scan failures are the recoverable error class: operations return an error
// wrapping ErrFormat and document whether the stream position is restored
// (the caller may try another grammar) or left undefined (partial
// consumption happened; do not continue). Broken invariants such as a double
// unread are API misuse and panic instead.
package scan

import (
	"errors"
	"io"
	"strings"
)

// ErrFormat is wrapped by every recoverable malformed-input error.
var ErrFormat = errors.New("scan: malformed input")

// EOF is the value Read returns once the underlying reader is exhausted.
const EOF = -1

// WhitespaceSet is the character-class spec matching whitespace: space,
// newline, tab and vertical tab.
const WhitespaceSet = "[ \n\t\v]"

// NonWhitespaceSet matches everything WhitespaceSet does not.
const NonWhitespaceSet = "[^ \n\t\v]"

// Source reads characters from an io.Reader with one character of pushback.
type Source struct {
	r      io.Reader
	buf    [1]byte
	read   int
	last   int
	unread bool
}

// NewSource wraps the reader in a scanner.
func NewSource(r io.Reader) *Source {
	return &Source{r: r, last: EOF}
}

// NewStringSource is a convenience for scanning in-memory text.
func NewStringSource(s string) *Source {
	return NewSource(strings.NewReader(s))
}

// Read returns the next character, or EOF. If Unread was called since the
// previous Read, the same character is returned again.
func (s *Source) Read() int {
	if s.unread {
		s.unread = false
	} else {
		s.last = s.readByte()
	}
	s.read++
	return s.last
}

// Unread pushes the last-read character back so the next Read returns it
// again. Only one level of pushback exists; unreading twice without an
// intervening Read is a programming error and panics.
func (s *Source) Unread() {
	if s.unread {
		panic("scan: double unread")
	}
	s.unread = true
	s.read--
}

// Peek returns the next character without consuming it.
func (s *Source) Peek() int {
	c := s.Read()
	s.Unread()
	return c
}

// BytesRead returns how many characters have been consumed. An unread
// character counts as never having been read.
func (s *Source) BytesRead() int { return s.read }

func (s *Source) readByte() int {
	for {
		n, err := s.r.Read(s.buf[:1])
		if n == 1 {
			return int(s.buf[0])
		}
		if err != nil {
			return EOF
		}
	}
}

// SkipWhitespace consumes any run of whitespace characters and returns how
// many were skipped.
func (s *Source) SkipWhitespace() int {
	return s.SkipSet(WhitespaceSet)
}

// ScanIdentifier scans an identifier: an alphanumeric-plus-underscore token
// that does not start with a digit. Leading whitespace is skipped. When no
// identifier is present the stream is left at the offending character.
func (s *Source) ScanIdentifier() (string, error) {
	s.SkipWhitespace()
	var b strings.Builder
	if s.ScanSet(&b, "[_a-zA-Z]") <= 0 {
		return "", errorf("identifier expected")
	}
	s.ScanSet(&b, "[_a-zA-Z0-9]")
	return b.String(), nil
}

// ScanHexString scans a run of hexadecimal digits after optional whitespace.
func (s *Source) ScanHexString() (string, error) {
	s.SkipWhitespace()
	var b strings.Builder
	if s.ScanSet(&b, "[a-fA-F0-9]") <= 0 {
		return "", errorf("hex string expected")
	}
	return b.String(), nil
}

// ScanBinaryString scans a run of '0' and '1' after optional whitespace.
func (s *Source) ScanBinaryString() (string, error) {
	s.SkipWhitespace()
	var b strings.Builder
	if s.ScanSet(&b, "[01]") <= 0 {
		return "", errorf("binary string expected")
	}
	return b.String(), nil
}

// ScanDoubleQuotedString scans a double-quoted string using %XX hex escapes
// for non-printable characters plus '"' and '%'. On a missing opening quote
// the stream is unchanged; any later failure (unterminated string, bad
// escape digit) leaves the position undefined.
func (s *Source) ScanDoubleQuotedString() (string, error) {
	s.SkipWhitespace()
	if s.Read() != '"' {
		s.Unread()
		return "", errorf("double-quoted string expected")
	}
	var b strings.Builder
	for {
		c := s.Read()
		if c == EOF || c == '\n' {
			return "", errorf("unterminated string")
		}
		switch c {
		case '"':
			return b.String(), nil
		case '%':
			v := 0
			for i := 0; i < 2; i++ {
				d := hexVal(s.Read())
				if d < 0 {
					return "", errorf("bad %%XX escape")
				}
				v = v<<4 | d
			}
			b.WriteByte(byte(v))
		default:
			b.WriteByte(byte(c))
		}
	}
}

func hexVal(c int) int {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return -1
}
