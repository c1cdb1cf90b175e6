// Package cli implements the gemini command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	clierrors "github.com/dacian3/gemini-cli/internal/errors"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gemini",
	Short: "Gemini CLI system prompt tooling",
	Long: `gemini resolves the system prompt sent to the model at startup.

The prompt is composed from a built-in instruction body, fragments selected
by the runtime environment (sandbox kind, git repository), and hierarchical
GEMINI.md context files. Two switches control persistence:

  GEMINI_SYSTEM_MD        replace the built-in prompt with a file on disk
  GEMINI_WRITE_SYSTEM_MD  write the composed default prompt to disk

Each accepts 0/false (off), 1/true (default location ~/.gemini/system.md),
or a path.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints structured errors in their
// user-facing form.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var cliErr *clierrors.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintln(os.Stderr, cliErr.UserMessage())
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newCompressionCmd())
	rootCmd.AddCommand(newMemoryCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// initConfig reads in the settings file and GEMINI_* environment variables.
func initConfig() {
	viper.AddConfigPath(".gemini")
	viper.AddConfigPath("$HOME/.gemini")
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")

	viper.SetEnvPrefix("GEMINI")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// initLogging configures the default slog logger: text for interactive
// stderr, JSON when piped.
func initLogging() {
	level := slog.LevelWarn
	if verbose || viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
