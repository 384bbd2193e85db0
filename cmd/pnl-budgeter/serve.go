package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pnlgo/pnl-budgeter/internal/server"
)

func newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation engine as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := buildLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if listen == "" {
				listen = viper.GetString("listen")
			}

			srv := &http.Server{
				Addr:              listen,
				Handler:           server.New(newEngine(logger), logger).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("serving P&L calculation API", zap.String("addr", listen))
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default :8080)")
	return cmd
}
