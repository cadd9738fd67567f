package project

// Step identifies one stage of the scaffolding workflow.
type Step int

const (
	// StepMaterialize copies the template into the project directory.
	StepMaterialize Step = iota
	// StepPatchSource writes the project name into the entry component.
	StepPatchSource
	// StepPatchManifest updates package.json.
	StepPatchManifest
	// StepInstall runs the package manager.
	StepInstall
)

// String returns a human-readable step name.
func (s Step) String() string {
	switch s {
	case StepMaterialize:
		return "Copy template"
	case StepPatchSource:
		return "Update " + AppEntryFile
	case StepPatchManifest:
		return "Update " + ManifestFile
	case StepInstall:
		return "Install dependencies"
	default:
		return "Unknown step"
	}
}

// Reporter receives progress notifications from the Scaffolder.
type Reporter interface {
	// StepStart is called before a step runs.
	StepStart(step Step)
	// StepComplete is called after a step succeeds. detail may be empty.
	StepComplete(step Step, detail string)
	// StepError is called when a step fails.
	StepError(step Step, err error)
	// FileCopied is called after each template file is written.
	FileCopied(rel string, done, total int)
}

// NoOpReporter discards all notifications.
type NoOpReporter struct{}

func (NoOpReporter) StepStart(Step)              {}
func (NoOpReporter) StepComplete(Step, string)   {}
func (NoOpReporter) StepError(Step, error)       {}
func (NoOpReporter) FileCopied(string, int, int) {}
