// Package wizard provides the interactive huh-based prompts that collect
// a project name and library selections.
package wizard

import (
	"errors"

	"github.com/reactcli/react-cli/internal/catalog"
)

// Result holds the user's answers.
type Result struct {
	ProjectName     string
	UILibraries     []string
	StateManagement []string
	CommonLibraries []string
}

// Selections returns the answers keyed by catalog category ID.
func (r *Result) Selections() catalog.Selections {
	return catalog.Selections{
		catalog.CategoryUI:     r.UILibraries,
		catalog.CategoryState:  r.StateManagement,
		catalog.CategoryCommon: r.CommonLibraries,
	}
}

// Options configures Run.
type Options struct {
	// Intro is shown in the instructions note before the first question.
	Intro string
	// Preset pre-fills the answers.
	Preset Result
}

// Brand colors (dark background variants).
const (
	ColorPrimary   = "#61DAFB"
	ColorSecondary = "#A78BFA"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#374151"
)

// ErrCancelled is returned when the user cancels the wizard.
var ErrCancelled = errors.New("wizard cancelled by user")

// Instructions is the markdown shown before the first question.
const Instructions = `## Instructions

- Use **SPACE** to select multiple options
- Press **ENTER** to proceed to the next step
- **None** means no additions from that category
`
