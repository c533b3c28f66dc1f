package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uxsprint/boilerplate/internal/branding"
)

// File and directory names inside the base directory.
const (
	ConfigFileName = "project-config.json"
	TemplatesDir   = "templates"
)

// configCandidates are tried in order by FindConfig.
var configCandidates = []string{
	ConfigFileName,
	"project-config.yaml",
	"project-config.yml",
}

// DocFiles are copied verbatim from the base directory into every new project.
var DocFiles = []string{"METHODOLOGY.md", "README.md"}

// BaseDir returns the boilerplate base directory. An explicit override wins,
// then the UXSPRINT_BASE_DIR environment variable, then the directory of the
// running executable.
func BaseDir(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	if v := os.Getenv(branding.EnvVar("base_dir")); v != "" {
		return filepath.Abs(v)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// FindConfig returns the first config file present in base. When none exists
// it returns the path of project-config.json so the caller reports that name.
func FindConfig(base string) string {
	for _, name := range configCandidates {
		p := filepath.Join(base, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return filepath.Join(base, ConfigFileName)
}

// TemplatesPath returns the template root inside base.
func TemplatesPath(base string) string {
	return filepath.Join(base, TemplatesDir)
}

// TargetDir returns where a project named by slug is created. Without an
// output root the project becomes a sibling of the base directory.
func TargetDir(base, outputRoot, slug string) (string, error) {
	if slug == "" {
		return "", fmt.Errorf("project name produces an empty directory name")
	}
	if outputRoot != "" {
		return filepath.Abs(filepath.Join(outputRoot, slug))
	}
	return filepath.Join(filepath.Dir(filepath.Clean(base)), slug), nil
}
