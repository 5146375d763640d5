package vterm

// dispatchCSI is called with the CSI final byte once the parser reaches
// ENDVAL and the byte isn't ';'. It implements the dispatch table from
// spec.md §4.4.
func (t *Terminal) dispatchCSI(final byte) {
	switch final {
	case 'A', 'B', 'C', 'D':
		t.csiCursorMove(final)
	case 'G':
		t.csiCHA()
	case 'H':
		t.csiCUP()
	case 'J':
		t.csiED()
	case 'K':
		t.csiEL()
	case 'T':
		n := t.argDef(0, 1)
		t.scroll(n)
	case 'm':
		t.csiSGR()
	case 'h':
		t.csiMode()
	case 'n':
		t.csiDSR()
	case '7', 's':
		t.decSaveCursor()
	case '8', 'u':
		t.decRestoreCursor()
	default:
		t.cb.miscSequence(t, t.p.prefixChr, final)
	}
}

// csiCursorMove implements CUU/CUD/CUF/CUB: A/B act on y, C/D on x; B/C
// add, A/D subtract. Distance defaults to 1, result clamped to [0, max].
// Horizontal motion clamps to scr_w, the same transient pending-wrap value
// print() already resolves on the next printable byte. Vertical motion has
// no such resolver — nothing wraps cursor.Y — so it clamps to scr_h-1 to
// keep the cursor always inside a valid cell row.
func (t *Terminal) csiCursorMove(final byte) {
	vertical := final == 'A' || final == 'B'
	direction := 1
	if final == 'A' || final == 'D' {
		direction = -1
	}
	dist := t.argDef(0, 1)

	max := t.mode.ScrW
	cur := &t.cursor.X
	if vertical {
		max = t.mode.ScrH - 1
		cur = &t.cursor.Y
	}

	value := *cur + direction*dist
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	*cur = value
	t.cb.setCursor(t, t.cursor)
}

// csiCHA implements CHA (cursor horizontal absolute). It preserves the
// original's quirk of clamping to scr_h-1 (not scr_w-1) when the argument
// is >= scr_w.
func (t *Terminal) csiCHA() {
	arg := t.argDef(0, 1)
	if arg >= t.mode.ScrW {
		arg = t.mode.ScrH - 1
	}
	t.cursor.X = arg
	t.cb.setCursor(t, t.cursor)
}

// csiCUP implements CUP (cursor position), 1-based arguments clamped before
// the 0-based store. x clamps to scr_w and y to scr_h, so the stored cursor
// is at most (scr_w-1, scr_h-1).
func (t *Terminal) csiCUP() {
	x := t.argDef(0, 1)
	y := t.argDef(1, 1)
	if x > t.mode.ScrW {
		x = t.mode.ScrW
	}
	if y >= t.mode.ScrH {
		y = t.mode.ScrH
	}
	t.cursor.X = x - 1
	t.cursor.Y = y - 1
	t.cb.setCursor(t, t.cursor)
}

// csiED implements ED (erase in display).
func (t *Terminal) csiED() {
	switch t.argDef(0, 0) {
	case 0:
		t.clear(t.cursor.X, t.cursor.Y, t.mode.ScrW, t.mode.ScrH-1)
	case 1:
		t.clear(0, 0, t.cursor.X, t.cursor.Y)
	case 2:
		t.clear(0, 0, t.mode.ScrW, t.mode.ScrH-1)
	}
}

// csiEL implements EL (erase in line).
func (t *Terminal) csiEL() {
	switch t.argDef(0, 0) {
	case 0:
		t.clear(t.cursor.X, t.cursor.Y, t.mode.ScrW, t.cursor.Y)
	case 1:
		t.clear(0, t.cursor.Y, t.cursor.X, t.cursor.Y)
	case 2:
		t.clear(0, t.cursor.Y, t.mode.ScrW, t.cursor.Y)
	}
}

// csiMode implements `CSI = <n> h`: the command is ignored unless the
// parser's prefix character is '=', and any value outside 0..3 collapses
// to mode 0.
func (t *Terminal) csiMode() {
	if t.p.prefixChr != '=' {
		return
	}
	n := t.arg(0, 0)
	if n < 0 || n > 3 {
		n = 0
	}
	_ = t.setMode(legacyModes[n])
}
