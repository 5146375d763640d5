package vterm

// Callbacks is the host contract: a record of function pointers rather than
// an interface with a vtable, so a host can wire only the events it cares
// about. Every field is optional except the Allocator passed to New — all
// other callbacks are nil-checked before being invoked.
type Callbacks struct {
	// DrawCell is invoked for every cell whose visible state changed.
	DrawCell func(vt *Terminal, chr byte, x, y int, attrib Attribute)
	// SetCursor is invoked after every cursor mutation.
	SetCursor func(vt *Terminal, cursor Cursor)
	// ModeChange is invoked after a mode transition (reserved; SetMode calls
	// it after the buffer has been reallocated and cleared).
	ModeChange func(vt *Terminal, newMode Mode)
	// Response delivers one byte of an outgoing response sequence at a
	// time, so the host can multiplex it into its outbound channel without
	// buffering a whole reply.
	Response func(vt *Terminal, chr byte)
	// ASCII is invoked for BEL and DEL with the literal byte.
	ASCII func(vt *Terminal, chr byte)
	// MiscSequence is invoked for a CSI final the dispatcher does not handle,
	// carrying the prefix character (0 if none) and the final byte.
	MiscSequence func(vt *Terminal, prefix byte, final byte)
}

func (c Callbacks) drawCell(vt *Terminal, chr byte, x, y int, attrib Attribute) {
	if c.DrawCell != nil {
		c.DrawCell(vt, chr, x, y, attrib)
	}
}

func (c Callbacks) setCursor(vt *Terminal, cursor Cursor) {
	if c.SetCursor != nil {
		c.SetCursor(vt, cursor)
	}
}

func (c Callbacks) modeChange(vt *Terminal, newMode Mode) {
	if c.ModeChange != nil {
		c.ModeChange(vt, newMode)
	}
}

func (c Callbacks) response(vt *Terminal, chr byte) {
	if c.Response != nil {
		c.Response(vt, chr)
	}
}

func (c Callbacks) ascii(vt *Terminal, chr byte) {
	if c.ASCII != nil {
		c.ASCII(vt, chr)
	}
}

func (c Callbacks) miscSequence(vt *Terminal, prefix, final byte) {
	if c.MiscSequence != nil {
		c.MiscSequence(vt, prefix, final)
	}
}
