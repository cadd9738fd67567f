package cli

import (
	"fmt"
	"io"

	"github.com/reactcli/react-cli/internal/core/project"
	"github.com/reactcli/react-cli/internal/ui"
)

// consoleReporter prints scaffolding progress. Template copying drives a
// progress bar; the install step hands the terminal to the package manager.
type consoleReporter struct {
	out      io.Writer
	progress ui.Progress
	bar      ui.ProgressBar
}

func newConsoleReporter(out io.Writer, progress ui.Progress) *consoleReporter {
	return &consoleReporter{out: out, progress: progress}
}

func (r *consoleReporter) StepStart(step project.Step) {
	if step == project.StepInstall {
		_, _ = fmt.Fprintln(r.out, cliPrimary.Render("Installing dependencies..."))
	}
}

func (r *consoleReporter) FileCopied(rel string, _, total int) {
	if r.bar == nil {
		r.bar = r.progress.Start(project.StepMaterialize.String(), total)
	}
	r.bar.SetTitle(rel)
	r.bar.Increment(1)
}

func (r *consoleReporter) StepComplete(step project.Step, detail string) {
	r.finishBar()
	switch {
	case step == project.StepInstall && detail == "skipped":
		_, _ = fmt.Fprintf(r.out, "%s %s\n", symProgress(), cliMuted.Render("Dependency installation skipped."))
	case step == project.StepInstall:
		_, _ = fmt.Fprintf(r.out, "%s %s\n", symSuccess(), cliSuccess.Render("Dependencies installed successfully!"))
	case detail != "":
		_, _ = fmt.Fprintf(r.out, "%s %s %s\n", symSuccess(), step, cliMuted.Render("("+detail+")"))
	default:
		_, _ = fmt.Fprintf(r.out, "%s %s\n", symSuccess(), step)
	}
}

func (r *consoleReporter) StepError(step project.Step, err error) {
	r.finishBar()
	if step == project.StepInstall {
		_, _ = fmt.Fprintf(r.out, "%s %s\n", symError(), cliError.Render("Error installing dependencies."))
		_, _ = fmt.Fprintf(r.out, "  %s\n", cliMuted.Render(err.Error()))
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s %s: %s\n", symError(), step, cliError.Render(err.Error()))
}

func (r *consoleReporter) finishBar() {
	if r.bar != nil {
		r.bar.Done()
		r.bar = nil
	}
}
