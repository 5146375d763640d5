// Package vterm implements the byte-stream core of an embeddable terminal
// emulator: an escape-sequence parser, a cell grid with cursor and
// save/restore stack, and a dispatcher for the CSI commands it recognizes.
// It is byte-oriented and 8-bit clean — it does not decode UTF-8 — and has
// no opinion about rendering, fonts, or physical I/O; those are host
// concerns reached through Callbacks.
package vterm
