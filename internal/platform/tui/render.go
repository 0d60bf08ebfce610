package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crypto-flap/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (256-color palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorGold:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorAmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	core.ColorCrimson: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorTrace:   lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells of the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.CellAt(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.CellAt(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
