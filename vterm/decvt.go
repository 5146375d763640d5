package vterm

// decSaveCursor implements DECSC (`7` or `s`): push the cursor onto the
// bounded save stack. Overflow is silently discarded.
func (t *Terminal) decSaveCursor() {
	if t.curStackN >= maxCursorStack {
		return
	}
	t.curStack[t.curStackN] = t.cursor
	t.curStackN++
}

// decRestoreCursor implements DECRC (`8` or `u`): pop the saved cursor and
// apply it. Pop on empty is a no-op.
func (t *Terminal) decRestoreCursor() {
	if t.curStackN == 0 {
		return
	}
	t.curStackN--
	t.cursor = t.curStack[t.curStackN]
	t.cb.setCursor(t, t.cursor)
}
