package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lintgate/fnlen/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the last persisted check report",
		Long:  viewLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := resolveOptions(cmd, nil)
			if err != nil {
				return err
			}

			return workflow.View(domain.ViewArgs{Reports: opts.reports})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
