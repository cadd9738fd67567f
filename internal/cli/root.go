package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reactcli/react-cli/internal/config"
	"github.com/reactcli/react-cli/pkg/version"
)

var errNoDeps = errors.New("dependencies not initialized")

// NewRootCmd builds the command tree. Each call returns fresh commands
// with unparsed flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "react-cli [project-name]",
		Short: "Scaffold a React + Vite project",
		Long: `react-cli creates a React project from a bundled Vite template.

It asks for a project name and optional UI, state management and utility
libraries, copies the template into ./<project-name>, writes the chosen
libraries into package.json and installs dependencies.

Examples:
  react-cli                                  Run the interactive wizard
  react-cli my-app --non-interactive --ui MUI --state Redux
  react-cli my-app --skip-install            Create files without installing`,
		Args:              cobra.MaximumNArgs(1),
		Version:           version.GetVersion(),
		PersistentPreRunE: loadConfig,
		RunE:              runCreate,
		SilenceUsage:      true,
	}
	root.SetVersionTemplate(fmt.Sprintf("react-cli %s\n", version.GetFullVersion()))

	root.PersistentFlags().String("config", "", "Config file (default $HOME/.react-cli.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Write debug logs to stderr")

	addCreateFlags(root)
	root.AddCommand(newCreateCmd())
	root.AddCommand(newCatalogCmd())
	return root
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return NewRootCmd().Execute()
}

// loadConfig layers defaults, the config file, REACT_CLI_* variables and
// flags into deps.Config, then applies --verbose to the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return errNoDeps
	}

	v := config.New()
	path := getStringFlag(cmd, "config")
	if path == "" {
		path = config.FilePath()
	}
	if err := config.ReadFile(v, path); err != nil {
		return err
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	deps.Config = cfg

	if cfg.Verbose {
		deps.Logger = verboseLogger(cmd.ErrOrStderr())
	}
	deps.Logger.Debug("configuration loaded",
		"file", path,
		"package_manager", cfg.PackageManager,
		"skip_install", cfg.SkipInstall,
		"template_dir", cfg.TemplateDir,
	)
	return nil
}

func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

func getStringSliceFlag(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return nil
	}
	return val
}
