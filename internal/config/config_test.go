package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Config{PackageManager: "npm"}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("REACT_CLI_PACKAGE_MANAGER", "pnpm")
	t.Setenv("REACT_CLI_SKIP_INSTALL", "true")

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.PackageManager != "pnpm" {
		t.Errorf("PackageManager = %q, want pnpm", cfg.PackageManager)
	}
	if !cfg.SkipInstall {
		t.Error("SkipInstall = false, want true")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".react-cli.yaml")
	content := "package_manager: yarn\ntemplate_dir: /srv/templates/react\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	v := New()
	if err := ReadFile(v, path); err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.PackageManager != "yarn" {
		t.Errorf("PackageManager = %q, want yarn", cfg.PackageManager)
	}
	if cfg.TemplateDir != "/srv/templates/react" {
		t.Errorf("TemplateDir = %q", cfg.TemplateDir)
	}
}

func TestReadFile_Missing(t *testing.T) {
	v := New()
	if err := ReadFile(v, filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("ReadFile() on missing file error: %v", err)
	}
}

func TestReadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".react-cli.yaml")
	if err := os.WriteFile(path, []byte("package_manager: [npm\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := ReadFile(New(), path)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("ReadFile() error = %v, want ErrInvalidYAML", err)
	}
}

func TestBindFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("package-manager", "npm", "")
	flags.Bool("skip-install", false, "")
	flags.String("template", "", "")
	flags.Bool("verbose", false, "")

	v := New()
	if err := BindFlags(v, flags); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}
	if err := flags.Parse([]string{"--package-manager=bun", "--skip-install", "--template=./tpl", "--verbose"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Config{PackageManager: "bun", SkipInstall: true, TemplateDir: "./tpl", Verbose: true}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestBindFlags_UnsetFlagKeepsEnv(t *testing.T) {
	t.Setenv("REACT_CLI_PACKAGE_MANAGER", "yarn")
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("package-manager", "npm", "")

	v := New()
	if err := BindFlags(v, flags); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.PackageManager != "yarn" {
		t.Errorf("PackageManager = %q, want env value yarn", cfg.PackageManager)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"npm", Config{PackageManager: "npm"}, false},
		{"bun", Config{PackageManager: "bun"}, false},
		{"empty", Config{}, true},
		{"unknown", Config{PackageManager: "maven"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not match ErrInvalidConfig", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != KeyPackageManager {
				t.Errorf("error = %#v, want ValidationError on %s", err, KeyPackageManager)
			}
		})
	}
}

func TestFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got := FilePath()
	if !strings.HasPrefix(got, home) || filepath.Base(got) != ".react-cli.yaml" {
		t.Errorf("FilePath() = %q, want %s/.react-cli.yaml", got, home)
	}
}
