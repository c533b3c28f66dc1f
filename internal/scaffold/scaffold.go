package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	cp "github.com/otiai10/copy"
	"github.com/uxsprint/boilerplate/internal/layout"
	"github.com/uxsprint/boilerplate/internal/platform"
	"github.com/uxsprint/boilerplate/internal/project"
)

// TemplateMarker is the file name suffix that marks a renderable template.
const TemplateMarker = ".template"

// Action says what Generate does with an entry.
type Action int

const (
	// ActionRender renders a .template file and writes it without the marker.
	ActionRender Action = iota
	// ActionCopy copies a template-tree file verbatim.
	ActionCopy
	// ActionDoc copies a documentation file from the base directory verbatim.
	ActionDoc
)

func (a Action) String() string {
	switch a {
	case ActionRender:
		return "render"
	case ActionCopy:
		return "copy"
	default:
		return "doc"
	}
}

// Entry is one file Generate writes.
type Entry struct {
	Source string // path of the file to read
	Dest   string // destination path relative to the output directory
	Action Action
}

// Options configures Generate.
type Options struct {
	TemplatesDir string
	DocsDir      string // directory holding layout.DocFiles; empty skips them
	OutputDir    string
	Config       *project.Config
	DryRun       bool
	Logger       *log.Logger
}

// Result holds the outcome of a generation. File lists hold destination paths
// relative to OutputDir in the order they were written.
type Result struct {
	OutputDir string
	Rendered  []string
	Copied    []string
	Docs      []string
	DryRun    bool
}

// Files returns every destination path in write order.
func (r *Result) Files() []string {
	files := make([]string, 0, len(r.Rendered)+len(r.Copied)+len(r.Docs))
	files = append(files, r.Rendered...)
	files = append(files, r.Copied...)
	return append(files, r.Docs...)
}

// IsTemplate reports whether name carries the template marker. A bare
// ".template" dotfile is not a template.
func IsTemplate(name string) bool {
	return len(name) > len(TemplateMarker) && strings.HasSuffix(name, TemplateMarker)
}

// Plan lists the files Generate would write, template-tree files first in
// lexical order, then the documentation files found in docsDir.
func Plan(templatesDir, docsDir string) ([]Entry, error) {
	info, err := os.Stat(templatesDir)
	if err != nil {
		return nil, fmt.Errorf("template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", templatesDir)
	}

	var entries []Entry
	err = filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isRegularFile(path, d) {
			return nil
		}

		rel, err := filepath.Rel(templatesDir, path)
		if err != nil {
			return err
		}

		entry := Entry{Source: path, Dest: rel, Action: ActionCopy}
		if IsTemplate(d.Name()) {
			entry.Action = ActionRender
			entry.Dest = strings.TrimSuffix(rel, TemplateMarker)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", templatesDir, err)
	}

	if docsDir == "" {
		return entries, nil
	}
	for _, name := range layout.DocFiles {
		src := filepath.Join(docsDir, name)
		if info, err := os.Stat(src); err == nil && info.Mode().IsRegular() {
			entries = append(entries, Entry{Source: src, Dest: name, Action: ActionDoc})
		}
	}
	return entries, nil
}

// isRegularFile reports whether a walked entry is a regular file, following
// symlinks. Symlinked directories are not descended into.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Generate writes the planned files into opts.OutputDir, creating it if
// needed. Existing files outside the plan are left alone; colliding paths are
// overwritten. The first failure stops the run and files already written stay.
func Generate(opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = project.New()
	}

	entries, err := Plan(opts.TemplatesDir, opts.DocsDir)
	if err != nil {
		return nil, err
	}

	result := &Result{OutputDir: opts.OutputDir, DryRun: opts.DryRun}

	if !opts.DryRun {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	for _, e := range entries {
		if !opts.DryRun {
			dst := filepath.Join(opts.OutputDir, e.Dest)
			if err := writeEntry(e, dst, cfg); err != nil {
				return result, err
			}
			logger.Debug("wrote file", "action", e.Action, "src", e.Source, "dst", dst)
		}

		switch e.Action {
		case ActionRender:
			result.Rendered = append(result.Rendered, e.Dest)
		case ActionCopy:
			result.Copied = append(result.Copied, e.Dest)
		case ActionDoc:
			result.Docs = append(result.Docs, e.Dest)
		}
	}

	return result, nil
}

var copyOptions = cp.Options{
	PreserveTimes: true,
	OnSymlink:     func(string) cp.SymlinkAction { return cp.Deep },
}

func writeEntry(e Entry, dst string, cfg *project.Config) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}

	if e.Action != ActionRender {
		if err := cp.Copy(e.Source, dst, copyOptions); err != nil {
			return fmt.Errorf("copying %s to %s: %w", e.Source, dst, err)
		}
		return nil
	}

	data, err := os.ReadFile(e.Source)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", e.Source, err)
	}
	if err := os.WriteFile(dst, []byte(Render(string(data), cfg)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return platform.MatchMode(dst, e.Source)
}
