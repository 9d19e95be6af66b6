package comment

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/project-copacetic/report-table/pkg/config"
	"github.com/spf13/cobra"
)

// NewBuildCmd returns the command that builds the pull request comment table.
func NewBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a Markdown results table from downloaded Playwright report directories",
		Long: heredoc.Doc(`
			Build scans the reports root for one subdirectory per test run, reads the
			summary.txt of each run and renders a Markdown table sorted by version.

			The table is appended to the file named by GITHUB_ENV as a multi-line
			variable, or printed to standard output.`),
		Example: heredoc.Doc(`
			report-table build --root all-reports
			report-table build --output stdout --skip-probe`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return Build(cmd.Context(), opts)
		},
	}
	config.AddFlags(buildCmd.Flags())
	return buildCmd
}
