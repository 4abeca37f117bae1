// Package views implements the §4.6 renderers: pure functions from
// AppState to the line slices internal/layout turns into a frame.
package views

import "github.com/charmbracelet/lipgloss"

var (
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cyanStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	greenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	redStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	yellowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	boldStyle     = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

const (
	glyphCursor   = "❯ "
	glyphSelected = "● "
	glyphOK       = "✓"
	glyphUnset    = "*"
)

// brailleFrames is the 10-frame spinner the core loop's timer cycles
// through (§4.6).
var brailleFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// LoadingMessages is the whimsical pool the core loop shuffles once per
// process and rotates through on the ~1s timer (§4.6).
var LoadingMessages = []string{
	"Waking the reading robots",
	"Untangling your highlights",
	"Polishing the bookshelf",
	"Consulting the archive",
	"Reticulating splines",
	"Summoning the document",
	"Counting dog-eared pages",
	"Brewing a fresh query",
	"Sorting the marginalia",
	"Dusting off the index",
	"Herding stray tags",
	"Checking the card catalog",
	"Warming up the parser",
	"Negotiating with the server",
	"Flipping through the stacks",
	"Aligning the highlights",
}

// SpinnerFrame returns the glyph for a given tick count.
func SpinnerFrame(tick int) string {
	return brailleFrames[tick%len(brailleFrames)]
}
