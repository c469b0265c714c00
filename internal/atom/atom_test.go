package atom

import (
	"testing"

	"atom-ca/internal/bits"

	"github.com/stretchr/testify/assert"
)

func TestNewCarriesTypeTag(t *testing.T) {
	a := New(0x2a)
	assert.Equal(t, uint32(0x2a), a.Type())

	b := New(MaxType)
	assert.Equal(t, uint32(MaxType), b.Type())
}

func TestElementFieldsLeaveTagIntact(t *testing.T) {
	f := bits.NewField(FirstStateBit, 12)
	a := New(7)
	a.Set(f, 0xabc)

	assert.Equal(t, uint32(7), a.Type())
	assert.Equal(t, uint32(0xabc), a.Get(f))
}

func TestAtomsAreValues(t *testing.T) {
	f := bits.NewField(FirstStateBit, 8)
	a := New(1)
	a.Set(f, 5)

	b := a // copy
	b.Set(f, 9)

	assert.Equal(t, uint32(5), a.Get(f))
	assert.Equal(t, uint32(9), b.Get(f))
}

func TestWordRoundTrip(t *testing.T) {
	a := New(3)
	f := bits.NewField(FirstStateBit, 20)
	a.Set(f, 0xfedcb)

	var b Atom
	for i := 0; i < bits.Words; i++ {
		b.SetWord(i, a.Word(i))
	}
	assert.Equal(t, a, b)
}
