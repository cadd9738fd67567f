package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/reactcli/react-cli/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the libraries offered by the wizard",
		Long: `List every category, its choices and the package.json dependencies
each choice adds. Choices marked "no packages" are accepted but add nothing.`,
		Args: cobra.NoArgs,
		RunE: runCatalog,
	}
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	var cat *catalog.Catalog
	if deps != nil {
		cat = deps.Catalog
	}
	if cat == nil {
		var err error
		if cat, err = catalog.Load(); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderCatalog(cat))
	return nil
}

// renderCatalog lists each category with aligned choice labels.
func renderCatalog(cat *catalog.Catalog) string {
	heading := cliPrimary.Bold(true)
	featured := cliSuccess.Bold(true)
	none := cliError.Bold(true)

	var b strings.Builder
	for i, c := range cat.Categories() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", heading.Render(c.Title), cliMuted.Render("["+c.ID+"]"))

		width := 0
		for _, ch := range c.Choices {
			width = max(width, lipgloss.Width(ch.Label))
		}
		for _, ch := range c.Choices {
			label := fmt.Sprintf("%-*s", width, ch.Label)
			switch {
			case ch.IsNone():
				label = none.Render(label)
			case ch.Featured:
				label = featured.Render(label)
			}
			fmt.Fprintf(&b, "  %s  %s\n", label, describePackages(ch))
		}
	}
	return b.String()
}

func describePackages(ch catalog.Choice) string {
	if ch.IsNone() {
		return cliMuted.Render("adds nothing from this category")
	}
	if len(ch.Packages) == 0 {
		return cliMuted.Render("no packages")
	}
	parts := make([]string, len(ch.Packages))
	for i, p := range ch.Packages {
		parts[i] = p.Name + "@" + p.Version
	}
	return strings.Join(parts, ", ")
}
