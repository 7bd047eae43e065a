// Package cmd provides the root command and CLI setup for fnlen.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintgate/fnlen/internal/adapter"
	"github.com/lintgate/fnlen/internal/config"
	"github.com/lintgate/fnlen/internal/controller"
	"github.com/lintgate/fnlen/internal/domain"
	m "github.com/lintgate/fnlen/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

var maxLinesFlag int
var extensionFlag string
var parallelFlag int
var excludeFlags []string
var configFlag string
var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
// Running it bare performs a check over the default source directory, which
// keeps the tool a drop-in CI gate.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fnlen [paths...]",
		Short:         "Function length CI gate",
		Long:          rootLongDescription,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
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
			})
		},
	}

	registerScanFlags(cmd)

	return cmd
}

// registerScanFlags attaches the shared scan flags. They are persistent so
// every subcommand picks them up.
func registerScanFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVarP(&maxLinesFlag, "max-lines", "m", 120, "maximum permitted function length in lines")
	cmd.PersistentFlags().StringVarP(&extensionFlag, "ext", "e", ".ts", "source file extension to scan")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for file scanning")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching glob (can be repeated)")
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a TOML config file")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", ".fnlen-reports", "directory for persisted reports")
}

// scanOptions is the resolved view of defaults, config file, and flags.
type scanOptions struct {
	paths     []m.Path
	maxLines  int
	extension string
	exclude   []string
	threads   int
	reports   m.Path
}

// resolveOptions merges built-in defaults, an optional config file, and
// explicit flags, in that precedence order.
func resolveOptions(cmd *cobra.Command, args []string) (scanOptions, error) {
	cfg := config.Default()

	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return scanOptions{}, fmt.Errorf("load config: %w", err)
		}

		cfg = loaded
	} else if loaded, err := config.Load(config.DefaultFileName); err == nil {
		cfg = loaded
	} else if !os.IsNotExist(err) {
		return scanOptions{}, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()

	if flags.Changed("max-lines") {
		cfg.MaxLines = maxLinesFlag
	}

	if flags.Changed("ext") {
		cfg.Extension = extensionFlag
	}

	if flags.Changed("parallel") {
		cfg.Parallel = parallelFlag
	}

	if flags.Changed("reports") {
		cfg.ReportsDir = reportsOutputDirFlag
	}

	paths := parsePaths(args)
	if len(paths) == 0 {
		for _, dir := range cfg.SourceDirs {
			paths = append(paths, m.Path(dir))
		}
	}

	return scanOptions{
		paths:     paths,
		maxLines:  cfg.MaxLines,
		extension: cfg.Extension,
		exclude:   append(append([]string{}, cfg.Exclude...), excludeFlags...),
		threads:   cfg.Parallel,
		reports:   m.Path(cfg.ReportsDir),
	}, nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). A failed check gate exits 1
// without an operational error message; everything else reports the error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, domain.ErrViolations) {
			_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}

		os.Exit(1)
	}
}
