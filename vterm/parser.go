package vterm

// parserState is the parser's tagged state, modeled as a sum type over four
// values rather than via inheritance or a growable token buffer.
type parserState int

const (
	stateEscape parserState = iota
	stateBracket
	stateAttrib
	stateEndval
)

// maxArgs bounds the CSI argument accumulator. argp never advances past
// maxArgs-1; surplus semicolon-separated arguments are silently clamped.
const maxArgs = 8

// parser holds the CSI recognizer's accumulating state between bytes.
type parser struct {
	state     parserState
	prefixChr byte
	argp      int
	argv      [maxArgs]uint32
	argvSet   [maxArgs]bool
}

// reset returns the parser to its initial ESCAPE state with a clean
// argument accumulator; New calls it at construction.
func (p *parser) reset() {
	*p = parser{state: stateEscape}
}

// processByte feeds one byte through the four-state CSI recognizer,
// forwarding bytes outside of a recognized escape sequence to the Printer.
// This is the Parser/Dispatcher component from spec.md §2's decomposition.
func (t *Terminal) processByte(c byte) {
	switch t.p.state {
	case stateEscape:
		if c == chrESC {
			t.p.argp = 0
			t.p.argv[0] = 0
			t.p.argvSet[0] = false
			t.p.state = stateBracket
			return
		}
		t.print(c)

	case stateBracket:
		if c == '[' {
			t.p.state = stateAttrib
			return
		}
		t.p.prefixChr = 0
		t.p.state = stateEscape
		t.print(c)

	case stateAttrib:
		switch {
		case c == '<' || c == '=' || c == '>' || c == '?':
			t.p.prefixChr = c
		case c >= '0' && c <= '9':
			t.p.argv[t.p.argp] = t.p.argv[t.p.argp]*10 + uint32(c-'0')
			t.p.argvSet[t.p.argp] = true
		default:
			if t.p.argp < maxArgs-1 {
				t.p.argp++
			}
			t.p.argv[t.p.argp] = 0
			t.p.argvSet[t.p.argp] = false
			t.p.state = stateEndval
			t.endval(c)
			return
		}

	case stateEndval:
		t.endval(c)
	}
}

// endval handles the byte that arrived while in ENDVAL: another argument
// separator loops back to ATTRIB, anything else is the CSI final byte and
// is dispatched.
func (t *Terminal) endval(c byte) {
	if c == ';' {
		t.p.state = stateAttrib
		return
	}
	t.dispatchCSI(c)
	t.p.prefixChr = 0
	t.p.state = stateEscape
}

// arg returns argv[i] when explicitly present, else def. A present-but-zero
// argument and an omitted argument are NOT treated identically here; motion
// commands apply the "zero behaves like omitted" rule themselves where
// spec.md calls for it.
func (t *Terminal) arg(i, def int) int {
	if i < 0 || i > t.p.argp {
		return def
	}
	if !t.p.argvSet[i] {
		return def
	}
	return int(t.p.argv[i])
}

// argDef returns arg(i, def), additionally folding an explicit zero to def
// — the "zero behaves like omitted" convention spec.md §4.4 specifies for
// motion/erase commands.
func (t *Terminal) argDef(i, def int) int {
	v := t.arg(i, def)
	if v == 0 {
		return def
	}
	return v
}
