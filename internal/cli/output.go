package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reactcli/react-cli/pkg/version"
)

// CLI output styles for consistent terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#61DAFB"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string  { return cliSuccess.Render("✓") }
func symError() string    { return cliError.Render("✗") }
func symWarning() string  { return cliWarn.Render("!") }
func symProgress() string { return cliMuted.Render("○") }

type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines aligns values after the longest key.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p.key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = cliMuted.Render(fmt.Sprintf("%-*s", width, p.key)) + "  " + p.value
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard draws a bordered box with a check-marked title.
func renderSuccessCard(title string, details ...string) string {
	content := symSuccess() + " " + cliSuccess.Bold(true).Render(title)
	if len(details) > 0 {
		content += "\n\n" + strings.Join(details, "\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2).
		Render(content)
}

// printBanner writes the welcome banner.
func printBanner(w io.Writer) {
	banner := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#61DAFB"}).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(cliPrimary.GetForeground()).
		Padding(1, 6).
		Align(lipgloss.Center).
		Render("Welcome to React CLI\n" + cliMuted.Render(version.GetVersion()))
	_, _ = fmt.Fprintln(w, banner)
	_, _ = fmt.Fprintln(w)
}
