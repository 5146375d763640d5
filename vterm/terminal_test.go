package vterm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingAllocator struct{ calls int }

func (f *failingAllocator) Alloc(n int) ([]Cell, error) {
	f.calls++
	return nil, errors.New("out of memory")
}

func (f *failingAllocator) Free(buf []Cell) {}

func TestNewSurfacesAllocationFailure(t *testing.T) {
	alloc := &failingAllocator{}
	_, err := New(Callbacks{}, WithAllocator(alloc))
	require.Error(t, err)
	assert.Equal(t, 1, alloc.calls)
}

type trackingAllocator struct {
	defaultAllocator
	freed [][]Cell
}

func (a *trackingAllocator) Free(buf []Cell) {
	a.freed = append(a.freed, buf)
}

func TestSetModeFreesPreviousBuffer(t *testing.T) {
	alloc := &trackingAllocator{}
	vt, err := New(Callbacks{}, WithAllocator(alloc))
	require.NoError(t, err)

	require.NoError(t, vt.SetMode(Mode{ScrW: 40, ScrH: 25, Flags: ModeScroll}))
	assert.Len(t, alloc.freed, 1)

	vt.Shutdown()
	assert.Len(t, alloc.freed, 2)
}

func TestLegacyModeSet(t *testing.T) {
	var gotModeChange Mode
	vt, err := New(Callbacks{
		ModeChange: func(vt *Terminal, m Mode) { gotModeChange = m },
	})
	require.NoError(t, err)

	vt.Write([]byte("\x1B[=3h"))
	assert.Equal(t, Mode{ScrW: 80, ScrH: 25, Flags: ModeScroll | ModeColor}, vt.Mode())
	assert.Equal(t, vt.Mode(), gotModeChange)
	assert.Equal(t, Cursor{0, 0}, vt.Cursor())
}

func TestModeSetIgnoredWithoutEqualsPrefix(t *testing.T) {
	vt, err := New(Callbacks{})
	require.NoError(t, err)
	before := vt.Mode()

	vt.Write([]byte("\x1B[3h"))
	assert.Equal(t, before, vt.Mode())
}

func TestUnrecognizedLegacyModeCollapsesToZero(t *testing.T) {
	vt, err := New(Callbacks{})
	require.NoError(t, err)

	vt.Write([]byte("\x1B[=99h"))
	assert.Equal(t, Mode{ScrW: 40, ScrH: 25, Flags: ModeScroll}, vt.Mode())
}

func TestUserContext(t *testing.T) {
	vt, err := New(Callbacks{}, WithUserContext("session-1"))
	require.NoError(t, err)
	assert.Equal(t, "session-1", vt.UserContext())
}

func TestASCIICallbackForBelAndDel(t *testing.T) {
	var got []byte
	vt, err := New(Callbacks{
		ASCII: func(vt *Terminal, chr byte) { got = append(got, chr) },
	})
	require.NoError(t, err)

	vt.Write([]byte{0x07, 0x7F})
	assert.Equal(t, []byte{0x07, 0x7F}, got)
}

func TestTabAdvancesToFourColumnStop(t *testing.T) {
	vt, err := New(Callbacks{})
	require.NoError(t, err)

	vt.Write([]byte("ab\tc"))
	assert.Equal(t, byte('c'), vt.Cell(4, 0).Chr)
	assert.Equal(t, Cursor{X: 5, Y: 0}, vt.Cursor())
}
