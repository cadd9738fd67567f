package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/reactcli/react-cli/internal/catalog"
	"github.com/reactcli/react-cli/internal/cli/wizard"
	"github.com/reactcli/react-cli/internal/core/project"
	"github.com/reactcli/react-cli/internal/template"
	"github.com/reactcli/react-cli/internal/ui"
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [project-name]",
		Short: "Create a new React project (same as running react-cli)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCreate,
	}
	addCreateFlags(cmd)
	return cmd
}

func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("ui", nil, `UI libraries to add (e.g. MUI,"Chakra UI")`)
	cmd.Flags().StringSlice("state", nil, "State management libraries to add (e.g. Redux)")
	cmd.Flags().StringSlice("common", nil, "Common libraries to add (e.g. axios,lodash)")
	cmd.Flags().Bool("non-interactive", false, "Skip the wizard; use the argument and flags only")
	cmd.Flags().String("package-manager", project.DefaultPackageManager, "Package manager used to install dependencies (npm, yarn, pnpm, bun)")
	cmd.Flags().Bool("skip-install", false, "Create the project without installing dependencies")
	cmd.Flags().String("template", "", "Template directory to use instead of the bundled one")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if deps == nil || deps.Config == nil {
		return errNoDeps
	}
	cfg := deps.Config
	out := cmd.OutOrStdout()

	cat := deps.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Load(); err != nil {
			return err
		}
	}

	printBanner(out)

	answers := wizard.Result{
		UILibraries:     getStringSliceFlag(cmd, "ui"),
		StateManagement: getStringSliceFlag(cmd, "state"),
		CommonLibraries: getStringSliceFlag(cmd, "common"),
	}
	if len(args) > 0 {
		answers.ProjectName = args[0]
	}

	if getBoolFlag(cmd, "non-interactive") || deps.Headless.IsHeadless() {
		answers = wizard.Normalize(answers)
		if answers.ProjectName == "" {
			return fmt.Errorf("%w: pass it as the first argument in non-interactive mode", project.ErrEmptyProjectName)
		}
	} else {
		intro := ui.RenderMarkdown(deps.Theme, deps.Headless, wizard.Instructions)
		res, err := deps.RunWizard(cat, wizard.Options{Intro: intro, Preset: answers})
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(out, cliWarn.Render("Project creation cancelled."))
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}
		answers = *res
	}

	if err := project.ValidateName(answers.ProjectName); err != nil {
		return fmt.Errorf("project name %q: %w", answers.ProjectName, err)
	}

	for _, w := range unknownSelections(cat, answers.Selections()) {
		_, _ = fmt.Fprintf(out, "%s %s\n", symWarning(), cliWarn.Render(w))
	}

	src := deps.Template
	if cfg.TemplateDir != "" {
		var err error
		if src, err = template.OpenTemplateDir(cfg.TemplateDir); err != nil {
			return err
		}
	}
	if src == nil {
		return template.ErrTemplateNotFound
	}

	wd, err := deps.WorkDir()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	if parent, ok := project.FindEnclosingPackage(deps.Fs, wd); ok {
		_, _ = fmt.Fprintf(out, "%s %s\n", symWarning(),
			cliWarn.Render(fmt.Sprintf("Creating the project inside the npm package at %s.", parent)))
	}
	if exists, _ := afero.DirExists(deps.Fs, filepath.Join(wd, answers.ProjectName)); exists {
		_, _ = fmt.Fprintf(out, "%s %s\n", symWarning(),
			cliWarn.Render(fmt.Sprintf("Directory %s already exists; template files will be overwritten.", answers.ProjectName)))
	}

	var installer project.Installer
	if !cfg.SkipInstall {
		installer, err = deps.NewInstaller(cfg.PackageManager, cmd.InOrStdin(), out, cmd.ErrOrStderr(), deps.Logger)
		if err != nil {
			return err
		}
	}

	progress := deps.Progress
	if progress == nil {
		progress = ui.NewProgressWriter(deps.Theme, deps.Headless, out)
	}

	scaffolder := project.NewScaffolder(
		cat,
		template.NewMaterializer(src, deps.Fs, deps.Logger),
		deps.Fs,
		installer,
		project.WithReporter(newConsoleReporter(out, progress)),
		project.WithLogger(deps.Logger),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, _ = fmt.Fprintf(out, "Creating project: %s...\n", cliPrimary.Render(answers.ProjectName))

	result, err := scaffolder.Run(ctx, project.Options{
		ProjectName: answers.ProjectName,
		BaseDir:     wd,
		Selections:  answers.Selections(),
		SkipInstall: cfg.SkipInstall,
	})
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	printSummary(out, result, cfg.PackageManager)
	return nil
}

// unknownSelections describes selected values that are not in the catalog.
func unknownSelections(cat *catalog.Catalog, sel catalog.Selections) []string {
	var msgs []string
	for _, c := range cat.Categories() {
		for _, v := range sel[c.ID] {
			if _, ok := c.Choice(v); !ok {
				msgs = append(msgs, fmt.Sprintf("Unknown %s selection %q ignored.", c.ID, v))
			}
		}
	}
	return msgs
}

// printSummary writes the success card and next steps.
func printSummary(out io.Writer, res *project.Result, manager string) {
	for _, w := range res.Warnings {
		_, _ = fmt.Fprintf(out, "%s %s\n", symWarning(), cliWarn.Render(w))
	}

	added := "none"
	if len(res.AddedDependencies) > 0 {
		names := make([]string, len(res.AddedDependencies))
		for i, p := range res.AddedDependencies {
			names[i] = p.Name + "@" + p.Version
		}
		added = strings.Join(names, ", ")
	}
	install := "completed"
	switch {
	case res.InstallSkipped:
		install = "skipped"
	case res.InstallErr != nil:
		install = "failed"
	}

	details := renderKeyValueLines([]kvPair{
		{"Directory", res.ProjectDir},
		{"Files", fmt.Sprintf("%d copied", len(res.Files))},
		{"Dependencies", added},
		{"Install", install},
	})
	title := fmt.Sprintf("Project %s created and setup completed!", res.ProjectName)
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard(title, details))
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprint(out, ui.RenderMarkdown(deps.Theme, deps.Headless,
		nextStepsMarkdown(res.ProjectName, manager, res.InstallSkipped || res.InstallErr != nil)))
}

func nextStepsMarkdown(name, manager string, needsInstall bool) string {
	md := "## Next steps\n\n```sh\ncd " + name + "\n"
	if needsInstall {
		md += manager + " install\n"
	}
	md += manager + " run dev\n```\n"
	return md
}
