package cli

import (
	"fmt"

	"github.com/controlplane-com/chamados-sql/pkg/import/config"
	"github.com/spf13/cobra"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chamados-sql version %s (column layout v%d)\n", Version, config.ColumnsVersion)
		},
	}
}
