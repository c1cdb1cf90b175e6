package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacian3/gemini-cli/internal/prompt"
)

func newCompressionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compression",
		Short: "Print the chat history compression prompt",
		Long: `Print the fixed instructions used to summarize a long conversation into
the state snapshot schema. The output takes no configuration and never
changes between invocations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), prompt.CompressionPrompt())
			return nil
		},
	}
}
