package vterm

// clear resets every cell whose linear index i satisfies
// x0 + y0*scr_w <= i < x1 + y1*scr_h to the empty cell and emits DrawCell
// for each. Note the deliberate asymmetry: the start index multiplies y0 by
// scr_w, but the end index multiplies y1 by scr_h, as the original C's
// `end = x1 + y1*scr_h` does. Full-screen clears are invoked as
// clear(0, 0, scr_w, scr_h-1), so on a grid wider than it is tall the span
// ends at scr_w + (scr_h-1)*scr_h (680 of the 2000 cells for 80x25) and the
// cells past it keep their content. This mirrors vterm_clear exactly and
// must not be "corrected" to x1+y1*scr_w; doing so would change which cells
// a partial clear touches.
func (t *Terminal) clear(x0, y0, x1, y1 int) {
	beg := x0 + y0*t.mode.ScrW
	end := x1 + y1*t.mode.ScrH
	for i := beg; i < end; i++ {
		if i < 0 || i >= len(t.cells) {
			continue
		}
		t.cells[i] = emptyCell
		x, y := i%t.mode.ScrW, i/t.mode.ScrW
		t.cb.drawCell(t, emptyCell.Chr, x, y, emptyCell.Attrib)
	}
}

// scroll vertically scrolls content up by n lines, clamped to scr_h. Rows
// [n, scr_h) move to [0, scr_h-n); rows [scr_h-n, scr_h) are cleared. The
// cursor's y is reduced by min(y, n) and a SetCursor is emitted once.
func (t *Terminal) scroll(n int) {
	if n > t.mode.ScrH {
		n = t.mode.ScrH
	}
	line := t.mode.ScrH - n
	end := t.mode.ScrW * line

	for i := 0; i < end; i++ {
		t.cells[i] = t.cells[i+n*t.mode.ScrW]
		x, y := i%t.mode.ScrW, i/t.mode.ScrW
		t.cb.drawCell(t, t.cells[i].Chr, x, y, t.cells[i].Attrib)
	}

	for i := end; i < t.mode.ScrW*t.mode.ScrH; i++ {
		t.cells[i] = emptyCell
		x, y := i%t.mode.ScrW, i/t.mode.ScrW
		t.cb.drawCell(t, emptyCell.Chr, x, y, emptyCell.Attrib)
	}

	if t.cursor.Y >= n {
		t.cursor.Y -= n
	} else {
		t.cursor.Y = 0
	}
	t.cb.setCursor(t, t.cursor)
}

// newline moves the cursor one line down, optionally with a carriage
// return first. Hitting the bottom either scrolls (ModeScroll set) or
// clears the whole screen and homes the cursor.
func (t *Terminal) newline(cr bool) {
	if cr {
		t.cursor.X = 0
	}
	t.cursor.Y++

	if t.cursor.Y == t.mode.ScrH {
		if t.mode.Flags&ModeScroll != 0 {
			t.scroll(1)
			return
		}
		t.clear(0, 0, t.mode.ScrW, t.mode.ScrH-1)
		t.cursor.X, t.cursor.Y = 0, 0
	}
	t.cb.setCursor(t, t.cursor)
}
