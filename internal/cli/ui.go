package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - package names
	colorGreen = lipgloss.Color("35")  // Green - healthy values
	colorRed   = lipgloss.Color("167") // Soft red - errors, deprecations
	colorGray  = lipgloss.Color("245") // Gray - headers
	colorDim   = lipgloss.Color("240") // Dim gray - borders, muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

const iconError = "✗"

// =============================================================================
// Status Output
// =============================================================================

// printError prints an error line to w.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}
