package vterm

import "strconv"

// csiDSR implements Device Status Report. Only the cursor-position query
// (CSI 6 n) is implemented; anything else is silently ignored (there is no
// "unknown DSR code" callback).
func (t *Terminal) csiDSR() {
	if t.arg(0, 0) != 6 {
		return
	}
	t.respondCursorPosition()
}

// respondCursorPosition writes ESC '[' <scr_h> ';' <scr_w> 'R' through the
// Response callback one byte at a time. Decimal conversion is unpadded,
// minimum one digit.
func (t *Terminal) respondCursorPosition() {
	t.cb.response(t, chrESC)
	t.cb.response(t, chrCSI)
	t.writeDecimal(t.mode.ScrH)
	t.cb.response(t, ';')
	t.writeDecimal(t.mode.ScrW)
	t.cb.response(t, 'R')
}

func (t *Terminal) writeDecimal(v int) {
	var buf [20]byte
	b := strconv.AppendUint(buf[:0], uint64(v), 10)
	for _, c := range b {
		t.cb.response(t, c)
	}
}
