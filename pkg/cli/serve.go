package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/controlplane-com/chamados-sql/pkg/api"
	"github.com/spf13/cobra"
)

func newServeCmd(global *globalOptions) *cobra.Command {
	var listenAddr string
	var authToken string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion over HTTP",
		Long: `serve exposes POST /api/convert, which takes a ticket export as the request
body and returns the SQL script, and GET /api/health.

When a token is set (--token or AUTH_TOKEN), /api/convert requires
"Authorization: Bearer <token>".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, global, nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := api.NewRouter(api.NewHandler(cfg), authToken)
			return api.Serve(ctx, listenAddr, router)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", ":8080", "Address to listen on")
	cmd.Flags().StringVar(&authToken, "token", os.Getenv("AUTH_TOKEN"), "Bearer token required by /api/convert")

	return cmd
}
