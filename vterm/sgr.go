package vterm

// csiSGR implements Select Graphic Rendition (spec.md §4.5). It iterates
// argv[0:argp) — NOT argv[0:argp], a half-open range whose upper bound is
// the count of *completed* arguments rather than the highest populated
// index. A present-but-zero argument (or one whose slot was never touched,
// i.e. omitted) resets current_attrib to default and continues to the next
// argument; this is why both bare `CSI m` and explicit `CSI 0 m` reset.
func (t *Terminal) csiSGR() {
	n := t.p.argp
	if n > maxArgs {
		n = maxArgs
	}
	for i := 0; i < n; i++ {
		if !t.p.argvSet[i] || t.p.argv[i] == 0 {
			t.curAttrib = DefaultAttribute
			continue
		}
		t.applySGRArg(int(t.p.argv[i]))
	}
}

func (t *Terminal) applySGRArg(a int) {
	switch a {
	case 1:
		t.curAttrib.Flags |= AttrBold
	case 2:
		t.curAttrib.Flags &^= AttrBold
		t.curAttrib.Flags |= AttrDim
	case 3:
		t.curAttrib.Flags |= AttrItalic
	case 4:
		t.curAttrib.Flags |= AttrUnderline
	case 5:
		t.curAttrib.Flags &^= AttrFastBlink
		t.curAttrib.Flags |= AttrSlowBlink
	case 6:
		t.curAttrib.Flags &^= AttrSlowBlink
		t.curAttrib.Flags |= AttrFastBlink
	case 7:
		t.curAttrib.Flags |= AttrInvert
	case 8:
		t.curAttrib.Flags |= AttrHidden
	case 9:
		t.curAttrib.Flags |= AttrStrike
	case 21:
		t.curAttrib.Flags |= AttrUnderline
		t.curAttrib.Flags |= AttrDoubleUnderline
	case 22:
		t.curAttrib.Flags &^= AttrBold
		t.curAttrib.Flags &^= AttrDim
	case 23:
		t.curAttrib.Flags &^= AttrItalic
	case 24:
		t.curAttrib.Flags &^= AttrUnderline
		t.curAttrib.Flags &^= AttrDoubleUnderline
	case 25:
		t.curAttrib.Flags &^= AttrSlowBlink
		t.curAttrib.Flags &^= AttrFastBlink
	case 27:
		t.curAttrib.Flags &^= AttrInvert
	case 28:
		t.curAttrib.Flags &^= AttrHidden
	case 29:
		t.curAttrib.Flags &^= AttrStrike
	}

	if a >= 90 && a <= 107 {
		t.curAttrib.Flags |= AttrBright
	}

	color := Color(a % 10)
	resetColor := color == 9
	color %= 8
	switch a / 10 {
	case 3, 9:
		if resetColor {
			t.curAttrib.Fg = DefaultAttribute.Fg
		} else {
			t.curAttrib.Fg = color
		}
	case 4, 10:
		if resetColor {
			t.curAttrib.Bg = DefaultAttribute.Bg
		} else {
			t.curAttrib.Bg = color
		}
	}
}
