package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacian3/gemini-cli/internal/config"
	"github.com/dacian3/gemini-cli/internal/memory"
)

func newMemoryCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "memory",
		Short: "List discovered context files",
		Long: `List the GEMINI.md context files that would be appended to the system
prompt, in load order: the global file, ancestors of the working directory,
then subdirectories.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			loader := memory.NewLoader(settings.ContextFileName)

			if show {
				combined, count, err := loader.Load(cmd.Context())
				if err != nil {
					return err
				}
				if count == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No context files found.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), combined)
				return nil
			}

			paths, err := loader.Discover()
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No context files found.")
				return nil
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print combined context content")
	return cmd
}
