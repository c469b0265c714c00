package scan

import (
	"fmt"
	"strings"
)

// charSet is a parsed "[...]" character-class spec: explicit characters,
// a-b ranges, and a leading '^' for negation.
type charSet struct {
	member [256]bool
	negate bool
}

func (cs *charSet) matches(c int) bool {
	if c < 0 || c > 255 {
		return false
	}
	return cs.member[c] != cs.negate
}

// parseSet compiles a set spec. A malformed spec is a programming error, not
// a data error, so it panics.
func parseSet(spec string) charSet {
	var cs charSet
	if len(spec) < 2 || spec[0] != '[' || spec[len(spec)-1] != ']' {
		panic(fmt.Sprintf("scan: bad set spec %q", spec))
	}
	body := spec[1 : len(spec)-1]
	if strings.HasPrefix(body, "^") {
		cs.negate = true
		body = body[1:]
	}
	for i := 0; i < len(body); i++ {
		lo := body[i]
		hi := lo
		if i+2 < len(body) && body[i+1] == '-' {
			hi = body[i+2]
			i += 2
		}
		if hi < lo {
			panic(fmt.Sprintf("scan: inverted range %c-%c in set spec %q", lo, hi, spec))
		}
		for c := int(lo); c <= int(hi); c++ {
			cs.member[c] = true
		}
	}
	return cs
}

// ScanSet consumes the longest run of characters matched by the set spec,
// appending them to dst (which may be nil to discard). It returns the number
// of characters consumed; the first non-matching character is left on the
// stream.
func (s *Source) ScanSet(dst *strings.Builder, spec string) int {
	cs := parseSet(spec)
	n := 0
	for {
		c := s.Read()
		if !cs.matches(c) {
			s.Unread()
			return n
		}
		if dst != nil {
			dst.WriteByte(byte(c))
		}
		n++
	}
}

// SkipSet consumes and discards characters matched by the set spec,
// returning the number skipped.
func (s *Source) SkipSet(spec string) int {
	return s.ScanSet(nil, spec)
}
