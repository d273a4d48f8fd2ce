package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
)

// NewRootCommand builds the folio command tree. The -a, -d and -t flags
// mirror the ones read by config.LoadConfig so both parsers agree.
func NewRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "folio",
		Short: "Administer the portfolio API from the command line",
		Long: `folio signs in as the portfolio administrator and manages content:
blogs, projects, education, experience and extracurricular entries,
plus uploaded images.

The session token is kept in a local SQLite file between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Open(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.config.ServerURL, "server", "a", a.config.ServerURL, "base URL of the portfolio API")
	pf.StringVarP(&a.config.DatabasePath, "db", "d", a.config.DatabasePath, "path of the local session database")
	pf.DurationVarP(&a.config.RequestTimeout, "timeout", "t", a.config.RequestTimeout, "timeout for content requests")
	pf.StringVarP(&a.configFile, "config", "c", "", "JSON config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newStatusCmd(a),
		newHealthCmd(a),
		newImageCmd(a),
	)
	for _, c := range models.Collections {
		root.AddCommand(newCollectionCmd(a, c))
	}
	return root
}
