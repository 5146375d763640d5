package vterm

// ModeFlag is a bit in Mode.Flags.
type ModeFlag uint8

const (
	ModeColor ModeFlag = 1 << iota
	ModeScroll
)

// Mode describes the screen geometry and the two legacy feature flags the
// core's `CSI = <n> h` command can toggle between.
type Mode struct {
	ScrW  int
	ScrH  int
	Flags ModeFlag
}

// DefaultMode is 80x25 with color and scrolling enabled, matching
// vterm_init's hardcoded defaults.
var DefaultMode = Mode{ScrW: 80, ScrH: 25, Flags: ModeColor | ModeScroll}

// legacyModes is the `CSI = <n> h` table from spec.md §4.6 / vterm_csi_mode.
// Index 0..3 map directly to the argument value; anything else collapses to
// mode 0, matching the C switch's implicit default (falling out having only
// touched vt->mode.flags = 0 before the switch, which vterm_csi_mode never
// actually reaches for other values since mode stays 0 when argv_map[0] is
// false — preserved here as "unrecognized == 0").
var legacyModes = [4]Mode{
	{ScrW: 40, ScrH: 25, Flags: ModeScroll},
	{ScrW: 40, ScrH: 25, Flags: ModeScroll | ModeColor},
	{ScrW: 80, ScrH: 25, Flags: ModeScroll},
	{ScrW: 80, ScrH: 25, Flags: ModeScroll | ModeColor},
}

// Allocator is the host's memory allocator for the cell buffer, the Go
// equivalent of the C library's mem_alloc/mem_free function-pointer pair
// (see DESIGN.md "Callback surface vs polymorphism"). It is the only
// required capability: Terminal construction fails without one.
type Allocator interface {
	// Alloc returns a freshly zero-valued (empty-cell) buffer of n cells.
	// Implementations that can exhaust memory should return a non-nil error
	// rather than panicking, so callers can surface an allocation failure
	// instead of losing the previous buffer.
	Alloc(n int) ([]Cell, error)
	// Free releases a buffer previously returned by Alloc. It is always
	// called with the buffer Terminal is about to stop using.
	Free(buf []Cell)
}

// defaultAllocator backs the cell buffer with plain Go slices. Free is a
// no-op; the garbage collector reclaims the slice once unreferenced.
type defaultAllocator struct{}

func (defaultAllocator) Alloc(n int) ([]Cell, error) {
	buf := make([]Cell, n)
	for i := range buf {
		buf[i] = emptyCell
	}
	return buf, nil
}

func (defaultAllocator) Free(buf []Cell) {}

// DefaultAllocator is the Allocator used when Terminal is constructed
// without one explicitly; it never fails.
var DefaultAllocator Allocator = defaultAllocator{}
