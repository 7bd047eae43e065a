package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lintgate/fnlen/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List measured functions and their line spans",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, args)
			if err != nil {
				return err
			}

			return workflow.List(domain.ListArgs{
				Paths:     opts.paths,
				MaxLines:  opts.maxLines,
				Extension: opts.extension,
				Exclude:   opts.exclude,
				Threads:   opts.threads,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
