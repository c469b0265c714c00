package scan

import (
	"fmt"
	"io"
	"strconv"
)

// Writer-side encodings, so tunables and atom templates round-trip through
// the same formats the Source reads.

// WriteLex writes v in the self-delimiting decimal encoding.
func WriteLex(w io.Writer, v uint64) error {
	return writeLex(w, v, 10)
}

// WriteLexHex writes v in the self-delimiting hexadecimal encoding.
func WriteLexHex(w io.Writer, v uint64) error {
	return writeLex(w, v, 16)
}

// WriteNegativeLex32 writes a strictly negative value as an 'n' marker
// followed by the lex-encoded magnitude. Zero and positive values are
// invalid here and panic; the encoding has no representation for them.
func WriteNegativeLex32(w io.Writer, v int32) error {
	if v >= 0 {
		panic(fmt.Sprintf("scan: WriteNegativeLex32 of non-negative %d", v))
	}
	if _, err := io.WriteString(w, "n"); err != nil {
		return err
	}
	return WriteLex(w, uint64(-int64(v)))
}

// WriteBE32 writes v as 4 raw big-endian bytes.
func WriteBE32(w io.Writer, v uint32) error {
	buf := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	_, err := w.Write(buf[:])
	return err
}

// WriteBE64 writes v as 8 raw big-endian bytes.
func WriteBE64(w io.Writer, v uint64) error {
	if err := WriteBE32(w, uint32(v>>32)); err != nil {
		return err
	}
	return WriteBE32(w, uint32(v))
}

func writeLex(w io.Writer, v uint64, base int) error {
	if v == 0 {
		_, err := io.WriteString(w, "0")
		return err
	}
	digits := strconv.FormatUint(v, base)
	n := len(digits)
	if n < 9 {
		if _, err := io.WriteString(w, strconv.Itoa(n)); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, "9"); err != nil {
			return err
		}
		if err := writeLex(w, uint64(n), 10); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, digits)
	return err
}
