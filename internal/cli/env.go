package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdrender/internal/configloader"
	"github.com/yaklabco/mdrender/internal/logging"
)

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List supported environment variables",
		Long: `List the environment variables mdrender reads.

Environment variables override config files and are themselves overridden
by CLI flags.`,
		Run: func(_ *cobra.Command, _ []string) {
			logger := logging.NewInteractive()

			vars := configloader.ListEnvVars()
			names := make([]string, 0, len(vars))
			for name := range vars {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				logger.Info(name, "description", vars[name])
			}
		},
	}
}
