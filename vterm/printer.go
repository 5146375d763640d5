package vterm

// print handles one byte in the non-escape path: C0 control codes and
// printable writes, with auto-wrap when the cursor has reached the pending
// position x == scr_w. This is the Printer component from spec.md §4.2.
func (t *Terminal) print(c byte) {
	switch c {
	case chrBEL, chrDEL:
		t.cb.ascii(t, c)

	case chrBS:
		if t.cursor.X >= 1 {
			t.cursor.X--
			t.cb.setCursor(t, t.cursor)
		}

	case chrHT:
		tab := 4 - (t.cursor.X % 4)
		for i := 0; i < tab; i++ {
			t.print(' ')
		}

	case chrLF:
		t.newline(true)

	case chrVT:
		t.newline(false)

	case chrFF:
		t.clear(0, 0, t.mode.ScrW, t.mode.ScrH-1)
		t.cursor.X, t.cursor.Y = 0, 0
		t.cb.setCursor(t, t.cursor)

	case chrCR:
		t.cursor.X = 0
		t.cb.setCursor(t, t.cursor)

	default:
		if t.cursor.X >= t.mode.ScrW {
			t.newline(true)
		}
		idx := t.index(t.cursor.X, t.cursor.Y)
		cell := Cell{Chr: c, Attrib: t.curAttrib}
		t.cells[idx] = cell
		t.cb.setCursor(t, t.cursor)
		t.cb.drawCell(t, cell.Chr, t.cursor.X, t.cursor.Y, cell.Attrib)
		t.cursor.X++
	}
}
