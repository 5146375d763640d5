package config

import (
	"fmt"

	"github.com/ravenscar-systems/vterm/vterm"
)

// RGB is a host-side color a vterm.Color index resolves to.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette maps the core's eight named color indices, plus their bright
// variants, to RGB for hosts that render vterm's 3-bit colors.
type Palette struct {
	Black   RGB `toml:"black"`
	Red     RGB `toml:"red"`
	Green   RGB `toml:"green"`
	Yellow  RGB `toml:"yellow"`
	Blue    RGB `toml:"blue"`
	Magenta RGB `toml:"magenta"`
	Cyan    RGB `toml:"cyan"`
	White   RGB `toml:"white"`

	BrightBlack   RGB `toml:"bright_black"`
	BrightRed     RGB `toml:"bright_red"`
	BrightGreen   RGB `toml:"bright_green"`
	BrightYellow  RGB `toml:"bright_yellow"`
	BrightBlue    RGB `toml:"bright_blue"`
	BrightMagenta RGB `toml:"bright_magenta"`
	BrightCyan    RGB `toml:"bright_cyan"`
	BrightWhite   RGB `toml:"bright_white"`
}

// DefaultPalette is a standard VGA-style 16-color palette.
func DefaultPalette() Palette {
	return Palette{
		Black:   RGB{0x00, 0x00, 0x00},
		Red:     RGB{0xaa, 0x00, 0x00},
		Green:   RGB{0x00, 0xaa, 0x00},
		Yellow:  RGB{0xaa, 0x55, 0x00},
		Blue:    RGB{0x00, 0x00, 0xaa},
		Magenta: RGB{0xaa, 0x00, 0xaa},
		Cyan:    RGB{0x00, 0xaa, 0xaa},
		White:   RGB{0xaa, 0xaa, 0xaa},

		BrightBlack:   RGB{0x55, 0x55, 0x55},
		BrightRed:     RGB{0xff, 0x55, 0x55},
		BrightGreen:   RGB{0x55, 0xff, 0x55},
		BrightYellow:  RGB{0xff, 0xff, 0x55},
		BrightBlue:    RGB{0x55, 0x55, 0xff},
		BrightMagenta: RGB{0xff, 0x55, 0xff},
		BrightCyan:    RGB{0x55, 0xff, 0xff},
		BrightWhite:   RGB{0xff, 0xff, 0xff},
	}
}

// Resolve returns the RGB for a vterm.Color index, honoring the BRIGHT
// attribute flag by selecting the bright variant.
func (p Palette) Resolve(c vterm.Color, bright bool) RGB {
	table := [8]RGB{p.Black, p.Red, p.Green, p.Yellow, p.Blue, p.Magenta, p.Cyan, p.White}
	brightTable := [8]RGB{
		p.BrightBlack, p.BrightRed, p.BrightGreen, p.BrightYellow,
		p.BrightBlue, p.BrightMagenta, p.BrightCyan, p.BrightWhite,
	}
	if int(c) < 0 || int(c) >= 8 {
		return table[vterm.ColorWhite]
	}
	if bright {
		return brightTable[c]
	}
	return table[c]
}
