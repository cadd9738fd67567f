package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Progress creates progress indicators.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar
}

// ProgressBar tracks completion of a fixed number of units.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// progressImpl implements the Progress interface.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress that writes to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: os.Stdout}
}

// NewProgressWriter creates a Progress that writes to w.
func NewProgressWriter(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// Start returns an animated bar on a terminal and a line-per-step bar otherwise.
func (p *progressImpl) Start(title string, total int) ProgressBar {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newHeadlessProgressBar(title, total, p.writer)
	}
	return newInteractiveProgressBar(p.theme, title, total, p.writer)
}

// --- interactiveProgressBar ---

type progressIncrMsg int

type progressTitleMsg string

type progressDoneMsg struct{}

// progressModel is the bubbletea Model for the animated progress bar.
type progressModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newProgressModel(theme *Theme, title string, total int) progressModel {
	opts := []progress.Option{progress.WithWidth(40)}
	if theme.NoColor {
		opts = append(opts, progress.WithDefaultGradient())
	} else {
		opts = append(opts, progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary))
	}
	return progressModel{bar: progress.New(opts...), title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressIncrMsg:
		m.current = min(m.current+int(msg), m.total)
		return m, nil
	case progressTitleMsg:
		m.title = string(msg)
		return m, nil
	case progressDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return m.bar.ViewAs(m.percent()) + " " + fmt.Sprintf("[%d/%d] %s\n", m.current, m.total, m.title)
}

func (m progressModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.current) / float64(m.total)
}

// interactiveProgressBar implements ProgressBar with an animated bubbles progress bar.
// The program reads no input so Ctrl-C keeps its default signal behavior.
type interactiveProgressBar struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveProgressBar(theme *Theme, title string, total int, w io.Writer) *interactiveProgressBar {
	m := newProgressModel(theme, title, total)
	p := tea.NewProgram(m, tea.WithOutput(w), tea.WithInput(nil), tea.WithoutSignalHandler())

	pb := &interactiveProgressBar{program: p}

	go func() {
		_, _ = p.Run()
	}()

	return pb
}

// Increment advances the progress by n.
func (b *interactiveProgressBar) Increment(n int) {
	b.program.Send(progressIncrMsg(n))
}

// SetTitle updates the progress bar title.
func (b *interactiveProgressBar) SetTitle(title string) {
	b.program.Send(progressTitleMsg(title))
}

// Done completes the progress bar and waits for the program to exit.
func (b *interactiveProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(progressDoneMsg{})
		b.program.Wait()
	})
}

// --- headlessProgressBar ---

// headlessProgressBar implements ProgressBar with plain text log output.
type headlessProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
	done    bool
}

func newHeadlessProgressBar(title string, total int, w io.Writer) *headlessProgressBar {
	return &headlessProgressBar{title: title, total: total, writer: w}
}

// Increment advances the progress by n and writes a log line.
func (b *headlessProgressBar) Increment(n int) {
	b.current = min(b.current+n, b.total)
	b.print()
}

// SetTitle updates the progress bar title.
func (b *headlessProgressBar) SetTitle(title string) {
	b.title = title
}

// Done completes the progress bar. Only the first call prints.
func (b *headlessProgressBar) Done() {
	if b.done {
		return
	}
	b.done = true
	if b.current == b.total {
		return
	}
	b.current = b.total
	b.print()
}

func (b *headlessProgressBar) print() {
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}
