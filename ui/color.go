package ui

// Colors are packed as 0xRRGGBBAA.

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// Hex parses a hex color string (e.g., "#FF5500" or "FF550080").
// Returns 0 on invalid input.
func Hex(s string) uint32 {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	if len(s) != 6 && len(s) != 8 {
		return 0
	}

	var color uint32
	for _, c := range s {
		color <<= 4
		switch {
		case c >= '0' && c <= '9':
			color |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			color |= uint32(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			color |= uint32(c - 'A' + 10)
		default:
			return 0
		}
	}

	// Add alpha if not provided
	if len(s) == 6 {
		color = (color << 8) | 0xFF
	}

	return color
}

// WithAlpha replaces a color's alpha channel with the given opacity (0.0 to 1.0).
func WithAlpha(color uint32, opacity float32) uint32 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return (color &^ 0xFF) | uint32(opacity*255+0.5)
}

// Common colors (Tailwind-inspired).
var (
	ColorTransparent = uint32(0x00000000)
	ColorWhite       = uint32(0xFFFFFFFF)
	ColorBlack       = uint32(0x000000FF)

	// Grays
	ColorGray100 = uint32(0xF3F4F6FF)
	ColorGray200 = uint32(0xE5E7EBFF)
	ColorGray300 = uint32(0xD1D5DBFF)
	ColorGray400 = uint32(0x9CA3AFFF)
	ColorGray500 = uint32(0x6B7280FF)
	ColorGray600 = uint32(0x4B5563FF)
	ColorGray700 = uint32(0x374151FF)
	ColorGray800 = uint32(0x1F2937FF)
	ColorGray900 = uint32(0x111827FF)

	// Blues
	ColorBlue400 = uint32(0x60A5FAFF)
	ColorBlue500 = uint32(0x3B82F6FF)
	ColorBlue600 = uint32(0x2563EBFF)

	// Reds
	ColorRed400 = uint32(0xF87171FF)
	ColorRed500 = uint32(0xEF4444FF)

	// Yellows
	ColorYellow400 = uint32(0xFACC15FF)

	// Greens
	ColorGreen400 = uint32(0x4ADE80FF)
	ColorGreen500 = uint32(0x22C55EFF)
)
