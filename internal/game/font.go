package game

// digitGlyphs is a 3x5 block font for the HUD score.
var digitGlyphs = [10][5]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", "███", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

const (
	glyphW   = 3
	glyphH   = 5
	glyphGap = 1
)

// bigNumberWidth returns the width in cells of n drawn with digitGlyphs.
func bigNumberWidth(n int) int {
	digits := len(itoaDigits(n))
	return digits*glyphW + (digits-1)*glyphGap
}

// itoaDigits returns the decimal digits of a non-negative n, most significant first.
func itoaDigits(n int) []int {
	if n <= 0 {
		return []int{0}
	}
	var out []int
	for n > 0 {
		out = append([]int{n % 10}, out...)
		n /= 10
	}
	return out
}
