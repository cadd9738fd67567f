package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const markdownWrap = 80

// RenderMarkdown renders md for the terminal. In headless or no-color mode,
// or if rendering fails, the markdown source is returned as is.
func RenderMarkdown(theme *Theme, hm *HeadlessManager, md string) string {
	if theme.NoColor || hm.IsHeadless() {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.Mode),
		glamour.WithWordWrap(markdownWrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}
