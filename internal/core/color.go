package core

// Color is a semantic foreground color for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorGold          // coin body, score
	ColorAmber         // coin glow
	ColorRed           // obstacle bars
	ColorCrimson       // obstacle caps and game over banner
	ColorWhite         // prompts, coin glyph
	ColorGray          // secondary text
	ColorTrace         // background chart line
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorGold:
		return "gold"
	case ColorAmber:
		return "amber"
	case ColorRed:
		return "red"
	case ColorCrimson:
		return "crimson"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorTrace:
		return "trace"
	default:
		return "unknown"
	}
}
