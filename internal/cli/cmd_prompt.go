package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dacian3/gemini-cli/internal/config"
	"github.com/dacian3/gemini-cli/internal/detect"
	"github.com/dacian3/gemini-cli/internal/memory"
	"github.com/dacian3/gemini-cli/internal/prompt"
)

// promptOutput is the --json shape of a resolved prompt.
type promptOutput struct {
	Prompt      string             `json:"prompt"`
	Sandbox     detect.SandboxKind `json:"sandbox"`
	IsGitRepo   bool               `json:"is_git_repo"`
	MemoryFiles int                `json:"memory_files"`
}

func newPromptCmd() *cobra.Command {
	var (
		noMemory bool
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the resolved system prompt",
		Long: `Resolve the system prompt exactly as a session startup would: apply the
override and write-back switches, select environment fragments, and append
hierarchical GEMINI.md context.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("determine working directory: %w", err)
			}
			facts := detect.Snapshot(cwd, os.Getenv)

			var userMemory string
			var memoryFiles int
			if !noMemory {
				loader := memory.NewLoader(settings.ContextFileName)
				userMemory, memoryFiles, err = loader.Load(cmd.Context())
				if err != nil {
					return err
				}
			}

			resolver := prompt.NewResolver()
			resolved, err := resolver.Resolve(prompt.Config{
				Override:  settings.SystemPrompt,
				WriteBack: settings.WriteSystemPrompt,
			}, facts, userMemory)
			if err != nil {
				return err
			}

			slog.Debug("resolved system prompt",
				"bytes", len(resolved),
				"sandbox", facts.Sandbox,
				"git_repo", facts.IsGitRepo,
				"memory_files", memoryFiles)

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(promptOutput{
					Prompt:      resolved,
					Sandbox:     facts.Sandbox,
					IsGitRepo:   facts.IsGitRepo,
					MemoryFiles: memoryFiles,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noMemory, "no-memory", false, "skip hierarchical context files")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}
