package wizard

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/reactcli/react-cli/internal/catalog"
	"github.com/reactcli/react-cli/internal/core/project"
)

const (
	introTitle = "Please read the instructions below and press ENTER to continue"
	nameTitle  = "Enter the name of your project:"
)

// errEmptyName is shown under the name input until a non-blank name is entered.
var errEmptyName = errors.New("Project name cannot be empty.")

// Run asks every question in order and returns the answers.
// Each question runs as its own huh.Form.
func Run(cat *catalog.Catalog, opts Options) (*Result, error) {
	theme := newWizardTheme()
	result := opts.Preset

	forms := []*huh.Form{
		huh.NewForm(huh.NewGroup(buildIntroNote(opts.Intro))),
		huh.NewForm(huh.NewGroup(buildNameField(&result.ProjectName))),
	}
	for _, c := range cat.Categories() {
		forms = append(forms, huh.NewForm(huh.NewGroup(buildCategoryField(&c, selectionFor(&result, c.ID)))))
	}

	for _, form := range forms {
		if err := form.WithTheme(theme).WithAccessible(false).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	result.ProjectName = project.NormalizeName(result.ProjectName)
	normalize(&result)
	return &result, nil
}

func buildIntroNote(intro string) *huh.Note {
	return huh.NewNote().
		Title(introTitle).
		Description(intro).
		Next(true).
		NextLabel("Continue")
}

func buildNameField(value *string) *huh.Input {
	return huh.NewInput().
		Title(nameTitle).
		Value(value).
		Validate(validateProjectName)
}

// validateProjectName accepts any name that survives normalization as a
// single directory segment.
func validateProjectName(s string) error {
	name := project.NormalizeName(s)
	if name == "" {
		return errEmptyName
	}
	if err := project.ValidateName(name); err != nil {
		return fmt.Errorf("%q cannot be used as a directory name", name)
	}
	return nil
}

func buildCategoryField(c *catalog.Category, value *[]string) *huh.MultiSelect[string] {
	return huh.NewMultiSelect[string]().
		Title(c.Title).
		Options(buildOptions(c)...).
		Value(value)
}

// buildOptions renders featured choices green and the None choice red.
func buildOptions(c *catalog.Category) []huh.Option[string] {
	featured := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
	none := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Bold(true)

	opts := make([]huh.Option[string], len(c.Choices))
	for i, ch := range c.Choices {
		label := ch.Label
		switch {
		case ch.IsNone():
			label = none.Render(label)
		case ch.Featured:
			label = featured.Render(label)
		}
		opts[i] = huh.NewOption(label, ch.Value)
	}
	return opts
}

func selectionFor(r *Result, categoryID string) *[]string {
	switch categoryID {
	case catalog.CategoryUI:
		return &r.UILibraries
	case catalog.CategoryState:
		return &r.StateManagement
	case catalog.CategoryCommon:
		return &r.CommonLibraries
	}
	return new([]string)
}

// normalize replaces nil selections with empty slices and trims each value.
func normalize(r *Result) {
	for _, sel := range []*[]string{&r.UILibraries, &r.StateManagement, &r.CommonLibraries} {
		out := make([]string, 0, len(*sel))
		for _, v := range *sel {
			if v = strings.TrimSpace(v); v != "" && !slices.Contains(out, v) {
				out = append(out, v)
			}
		}
		*sel = out
	}
}

// Normalize applies the same cleanup Run performs to answers gathered
// without prompting.
func Normalize(r Result) Result {
	r.ProjectName = project.NormalizeName(r.ProjectName)
	normalize(&r)
	return r
}

// newWizardTheme creates a huh.Theme with react-cli branding.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#0E7490", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(primary).Bold(true).MarginBottom(1)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("[x] ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("[ ] ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#111827"}).
		Background(primary)
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
