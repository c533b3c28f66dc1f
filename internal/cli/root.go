package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/uxsprint/boilerplate/internal/branding"
	"github.com/uxsprint/boilerplate/internal/config"
	"github.com/uxsprint/boilerplate/internal/layout"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Flags shared by every command.
var (
	baseDirFlag string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new UX sprint project next to the boilerplate checkout.

It reads project-config.json, asks you to confirm or change each value, then
copies the templates/ tree into the new project, filling in {{placeholders}}
in every *.template file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runSetup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseDirFlag, "base-dir", "", "Boilerplate directory holding project-config.json and templates/ (default: the executable's directory)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log every file written")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// resolveBaseDir applies flag, setting, then executable-directory precedence.
func resolveBaseDir() (string, error) {
	override := baseDirFlag
	if override == "" {
		override = config.Get(config.KeyBaseDir)
	}
	return layout.BaseDir(override)
}

// newLogger returns the diagnostics logger. --verbose forces debug level;
// otherwise the log_level setting applies.
func newLogger(w io.Writer) *log.Logger {
	level := log.WarnLevel
	if parsed, err := log.ParseLevel(config.Get(config.KeyLogLevel)); err == nil {
		level = parsed
	}
	if verboseFlag {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  level,
	})
}
