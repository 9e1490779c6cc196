package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorGray  = lipgloss.Color("245")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const iconSuccess = "✓"

// field is one key/value line of a report.
type field struct {
	key   string
	value any
}

// printReport writes a titled block of aligned key/value lines.
func printReport(w io.Writer, title string, fields ...field) {
	fmt.Fprintln(w, styleTitle.Render(title))
	for _, f := range fields {
		fmt.Fprintf(w, "  %s %s\n", styleKey.Render(f.key), styleNumber.Render(fmt.Sprint(f.value)))
	}
}

// printWritten reports a finished output file.
func printWritten(w io.Writer, path string) {
	fmt.Fprintf(w, "%s wrote %s\n", styleSuccess.Render(iconSuccess), path)
}
