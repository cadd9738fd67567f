package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/reactcli/react-cli/internal/core/project"
)

// Configuration keys. Each maps to a REACT_CLI_<KEY> environment variable.
const (
	KeyPackageManager = "package_manager"
	KeySkipInstall    = "skip_install"
	KeyTemplateDir    = "template_dir"
	KeyVerbose        = "verbose"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "REACT_CLI"

const (
	fileName = ".react-cli"
	fileType = "yaml"
)

// Config holds the resolved settings for one run.
type Config struct {
	PackageManager string `mapstructure:"package_manager"`
	SkipInstall    bool   `mapstructure:"skip_install"`
	TemplateDir    string `mapstructure:"template_dir"`
	Verbose        bool   `mapstructure:"verbose"`
}

// FilePath returns the user config file path (~/.react-cli.yaml).
func FilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return fileName + "." + fileType
	}
	return filepath.Join(home, fileName+"."+fileType)
}

// New returns a viper instance with defaults and environment lookup applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPackageManager, project.DefaultPackageManager)
	v.SetDefault(KeySkipInstall, false)
	v.SetDefault(KeyTemplateDir, "")
	v.SetDefault(KeyVerbose, false)

	v.SetConfigType(fileType)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// ReadFile merges the YAML file at path into v. A missing file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}
	return nil
}

// BindFlags binds the command-line flags that override configuration keys.
// Flags absent from the set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		KeyPackageManager: "package-manager",
		KeySkipInstall:    "skip-install",
		KeyTemplateDir:    "template",
		KeyVerbose:        "verbose",
	}
	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load decodes v into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.PackageManager = strings.TrimSpace(cfg.PackageManager)
	cfg.TemplateDir = strings.TrimSpace(cfg.TemplateDir)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	if cfg.PackageManager == "" {
		return &ValidationError{Field: KeyPackageManager, Message: "must not be empty"}
	}
	if !project.IsSupportedPackageManager(cfg.PackageManager) {
		return &ValidationError{
			Field:   KeyPackageManager,
			Message: "must be one of: " + strings.Join(project.SupportedPackageManagers(), ", "),
			Value:   cfg.PackageManager,
		}
	}
	return nil
}
