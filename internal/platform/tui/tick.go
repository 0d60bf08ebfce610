// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH. It owns the frame clock, input mapping, audio cues and the run ledger;
// the game itself only sees InputFrames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation frame.
type TickMsg time.Time

// tickCmd schedules the next frame after one frame duration.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
