package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lintgate/fnlen/internal/domain"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check function lengths and persist a report",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, args)
			if err != nil {
				return err
			}

			return workflow.Check(domain.CheckArgs{
				Paths:     opts.paths,
				MaxLines:  opts.maxLines,
				Extension: opts.extension,
				Exclude:   opts.exclude,
				Threads:   opts.threads,
				Reports:   opts.reports,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
