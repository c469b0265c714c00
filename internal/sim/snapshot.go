package sim

import (
	"fmt"
	"io"

	"atom-ca/internal/atom"
	"atom-ca/internal/bits"
	"atom-ca/internal/scan"
)

// snapshotMagic opens every snapshot stream. The trailing digit is the
// format version.
const snapshotMagic = "ACA1"

// WriteSnapshot persists the world through the lex/big-endian stream
// encoding: magic, dimensions and element tunables as lex decimals, then the
// default-atom templates and every site's atom as raw big-endian words.
func (w *World) WriteSnapshot(out io.Writer) error {
	if _, err := io.WriteString(out, snapshotMagic); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	for _, v := range []uint64{
		uint64(w.w),
		uint64(w.h),
		uint64(w.fish.DefaultBirthAge()),
		uint64(w.shark.DefaultBirthAge()),
		uint64(w.shark.EnergyPerFish()),
	} {
		if err := scan.WriteLex(out, v); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	for _, template := range []atom.Atom{
		w.empty.DefaultAtom(),
		w.fish.DefaultAtom(),
		w.shark.DefaultAtom(),
	} {
		if err := writeAtom(out, template); err != nil {
			return err
		}
	}
	for i := range w.atoms {
		if err := writeAtom(out, w.atoms[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadSnapshot restores a world previously written by WriteSnapshot. The
// snapshot's dimensions must match this world's; tunables are applied to the
// element singletons and the recorded templates are checked against the
// rebuilt ones, so a snapshot from an incompatible element catalog is
// rejected instead of silently misread. All failures are recoverable; on
// error the world keeps its prior state except where noted.
func (w *World) ReadSnapshot(in io.Reader) error {
	src := scan.NewSource(in)

	var magic [len(snapshotMagic)]byte
	for i := range magic {
		c := src.Read()
		if c == scan.EOF {
			return fmt.Errorf("snapshot: %w: truncated magic", scan.ErrFormat)
		}
		magic[i] = byte(c)
	}
	if string(magic[:]) != snapshotMagic {
		return fmt.Errorf("snapshot: %w: bad magic %q", scan.ErrFormat, magic)
	}

	header := make([]uint64, 5)
	for i := range header {
		v, err := src.ScanUint64(scan.Lex)
		if err != nil {
			return fmt.Errorf("snapshot header: %w", err)
		}
		header[i] = v
	}
	width, height := int(header[0]), int(header[1])
	if width != w.w || height != w.h {
		return fmt.Errorf("snapshot: %w: dimensions %dx%d do not match world %dx%d",
			scan.ErrFormat, width, height, w.w, w.h)
	}

	w.cfg.Params.FishBirthAge = int(header[2])
	w.cfg.Params.SharkBirthAge = int(header[3])
	w.cfg.Params.SharkEnergyPerFish = int(header[4])
	w.fish.SetDefaultBirthAge(uint32(header[2]))
	w.shark.SetDefaultBirthAge(uint32(header[3]))
	w.shark.SetEnergyPerFish(uint32(header[4]))
	w.reg.RefreshDefaultAtom(w.fish)
	w.reg.RefreshDefaultAtom(w.shark)

	for _, want := range []atom.Atom{
		w.empty.DefaultAtom(),
		w.fish.DefaultAtom(),
		w.shark.DefaultAtom(),
	} {
		got, err := readAtom(src)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("snapshot: %w: default-atom template mismatch for type %d",
				scan.ErrFormat, want.Type())
		}
	}

	restored := make([]atom.Atom, width*height)
	for i := range restored {
		a, err := readAtom(src)
		if err != nil {
			return err
		}
		if int(a.Type()) >= w.reg.Len() {
			return fmt.Errorf("snapshot: %w: unknown type code %d at site %d",
				scan.ErrFormat, a.Type(), i)
		}
		restored[i] = a
	}
	w.atoms = restored
	w.refreshDisplay()
	return nil
}

func writeAtom(out io.Writer, a atom.Atom) error {
	for i := 0; i < bits.Words; i++ {
		if err := scan.WriteBE32(out, a.Word(i)); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	return nil
}

func readAtom(src *scan.Source) (atom.Atom, error) {
	var a atom.Atom
	for i := 0; i < bits.Words; i++ {
		v, err := src.ScanUint32(scan.BE)
		if err != nil {
			return atom.Atom{}, fmt.Errorf("snapshot atom: %w", err)
		}
		a.SetWord(i, v)
	}
	return a, nil
}
