package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/uxsprint/boilerplate/internal/config"
	"github.com/uxsprint/boilerplate/internal/layout"
	"github.com/uxsprint/boilerplate/internal/project"
	"github.com/uxsprint/boilerplate/internal/prompt"
	"github.com/uxsprint/boilerplate/internal/scaffold"
)

var (
	setupOutputRoot string
	setupDefaults   bool
	setupDryRun     bool
)

func init() {
	rootCmd.Flags().StringVar(&setupOutputRoot, "output-root", "", "Directory to create the project in (default: the boilerplate's parent directory)")
	rootCmd.Flags().BoolVar(&setupDefaults, "defaults", false, "Use the values in project-config.json without prompting")
	rootCmd.Flags().BoolVar(&setupDryRun, "dry-run", false, "List the files that would be written without writing them")
}

func runSetup(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	base, err := resolveBaseDir()
	if err != nil {
		return err
	}

	cfgPath := layout.FindConfig(base)
	logger.Debug("loading project config", "path", cfgPath)
	cfg, err := project.Load(cfgPath)
	if err != nil {
		return err
	}

	if setupDefaults {
		prompt.AcceptDefaults(cfg, out)
	} else if err := prompt.Collect(cfg, cmd.InOrStdin(), out); err != nil {
		return fmt.Errorf("collecting project values: %w", err)
	}

	outputRoot := setupOutputRoot
	if outputRoot == "" {
		outputRoot = config.Get(config.KeyOutputRoot)
	}
	projectName := cfg.Text(project.FieldProjectName)
	target, err := layout.TargetDir(base, outputRoot, project.Slug(projectName))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nCreating project in: %s\n", target)

	result, err := scaffold.Generate(scaffold.Options{
		TemplatesDir: layout.TemplatesPath(base),
		DocsDir:      base,
		OutputDir:    target,
		Config:       cfg,
		DryRun:       setupDryRun,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	printResult(out, projectName, result)
	return nil
}

func printResult(w io.Writer, projectName string, result *scaffold.Result) {
	if result.DryRun {
		fmt.Fprintf(w, "\nDry run: would write %d files to %s/\n", len(result.Files()), result.OutputDir)
		for _, f := range result.Files() {
			fmt.Fprintf(w, "  %s\n", filepath.ToSlash(f))
		}
		return
	}

	fmt.Fprintf(w, "\nProject '%s' created successfully!\n", projectName)
	fmt.Fprintf(w, "Location: %s\n", result.OutputDir)
	fmt.Fprintf(w, "  %d rendered, %d copied, %d documentation files\n",
		len(result.Rendered), len(result.Copied), len(result.Docs))

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintln(w, "  1. cd into the project directory")
	fmt.Fprintln(w, "  2. Initialize git: git init")
	fmt.Fprintln(w, "  3. Review and customize the generated files")
	fmt.Fprintln(w, "  4. Start your UX sprint!")
}
