package kterm

// Color is a 4-bit VGA text-mode color index (0-15), matching the
// foreground/background nibbles the source packs into a single attribute
// byte.
type Color uint8

// The 16 standard VGA text-mode colors. Indices and names follow the
// source's vga_textmode_defs.h convention: 0-7 are the low-intensity set,
// 8-15 are the corresponding bright/high-intensity set.
const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGrey
	ColorDarkGrey
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightMagenta
	ColorLightBrown
	ColorWhite
)

// Attribute is the packed VGA text-mode attribute byte: background color in
// the high nibble, foreground color in the low nibble.
type Attribute uint8

// MakeAttribute packs a foreground and background color into an Attribute.
// Only the low 4 bits of each color are used.
func MakeAttribute(fg, bg Color) Attribute {
	return Attribute(fg&0x0f) | Attribute(bg&0x0f)<<4
}

// Foreground returns the attribute's foreground color.
func (a Attribute) Foreground() Color {
	return Color(a & 0x0f)
}

// Background returns the attribute's background color.
func (a Attribute) Background() Color {
	return Color(a>>4) & 0x0f
}

// DefaultAttribute is light grey text on a black background, the source's
// boot-time default.
var DefaultAttribute = MakeAttribute(ColorLightGrey, ColorBlack)

// RGB is the 24-bit color an [ImageBackend] (and any other Backend that
// renders to a real display) resolves a [Color] to. It is intentionally not
// image/color.Color — the palette below is the only consumer, and a named
// struct keeps the dependency on the standard library image package out of
// this file entirely.
type RGB struct {
	R, G, B uint8
}

// vgaPalette is the standard 16-color VGA text-mode RGB palette, used by
// Backend implementations that render onto real pixels (see ImageBackend).
// It carries no relation to the terminal engine's own state.
var vgaPalette = [16]RGB{
	ColorBlack:        {0, 0, 0},
	ColorBlue:         {0, 0, 170},
	ColorGreen:        {0, 170, 0},
	ColorCyan:         {0, 170, 170},
	ColorRed:          {170, 0, 0},
	ColorMagenta:      {170, 0, 170},
	ColorBrown:        {170, 85, 0},
	ColorLightGrey:    {170, 170, 170},
	ColorDarkGrey:     {85, 85, 85},
	ColorLightBlue:    {85, 85, 255},
	ColorLightGreen:   {85, 255, 85},
	ColorLightCyan:    {85, 255, 255},
	ColorLightRed:     {255, 85, 85},
	ColorLightMagenta: {255, 85, 255},
	ColorLightBrown:   {255, 255, 85},
	ColorWhite:        {255, 255, 255},
}

// RGB resolves a Color to its standard VGA palette RGB triple. Indices
// outside [0,16) are masked to 4 bits, so the result is always defined.
func (c Color) RGB() RGB {
	return vgaPalette[c&0x0f]
}
