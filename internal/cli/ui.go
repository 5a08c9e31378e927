package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette and Styles
// =============================================================================

var (
	colorAccent = lipgloss.Color("36")  // teal
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorFail   = lipgloss.Color("167") // soft red
	colorText   = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
)

var (
	// StyleTitle renders file names and section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorFaint)

	// StyleValue renders paths and values.
	StyleValue = lipgloss.NewStyle().Foreground(colorText)

	// StyleNumber renders node ids and counts.
	StyleNumber = lipgloss.NewStyle().Foreground(colorAccent)

	// StyleWarning renders warning text.
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)

	styleKey = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
)

const iconArrow = "→"

// =============================================================================
// Status Lines
// =============================================================================

type status struct {
	icon string
	mark lipgloss.Style
	body *lipgloss.Style
}

var (
	statusSuccess = status{icon: "✓", mark: lipgloss.NewStyle().Foreground(colorOK)}
	statusError   = status{icon: "✗", mark: lipgloss.NewStyle().Foreground(colorFail)}
	statusWarning = status{icon: "!", mark: lipgloss.NewStyle().Foreground(colorWarn), body: &StyleWarning}
	statusInfo    = status{icon: "›", mark: lipgloss.NewStyle().Foreground(colorMuted)}
)

func (s status) print(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.body != nil {
		msg = s.body.Render(msg)
	}
	fmt.Fprintln(w, s.mark.Render(s.icon)+" "+msg)
}

func printSuccess(w io.Writer, format string, args ...any) { statusSuccess.print(w, format, args...) }
func printError(w io.Writer, format string, args ...any)   { statusError.print(w, format, args...) }
func printWarning(w io.Writer, format string, args ...any) { statusWarning.print(w, format, args...) }
func printInfo(w io.Writer, format string, args ...any)    { statusInfo.print(w, format, args...) }

// printDetail prints an indented secondary line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written file.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a label column followed by a value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Graph Output
// =============================================================================

// printStats prints "N nodes · M edges · K components".
func printStats(w io.Writer, nodes, edges, components int) {
	parts := []string{
		plural(nodes, "node"),
		plural(edges, "edge"),
		plural(components, "component"),
	}
	for i, p := range parts {
		parts[i] = StyleDim.Render(p)
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// printComponents lists components one per line, numbered from 1 and
// prefixed with their size.
func printComponents(w io.Writer, comps [][]int) {
	width := len(strconv.Itoa(len(comps)))
	for i, comp := range comps {
		label := StyleDim.Render(fmt.Sprintf("%*d (%d)", width, i+1, len(comp)))
		fmt.Fprintln(w, label+" "+formatIDs(comp, ", "))
	}
}

// formatIDs joins ids with sep, e.g. "0 → 1 → 2" or "0, 1, 2".
func formatIDs(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = StyleNumber.Render(strconv.Itoa(id))
	}
	return strings.Join(parts, sep)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
