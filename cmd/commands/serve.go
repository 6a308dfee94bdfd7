package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ncobase/echoapi/logging/logger"
	"github.com/ncobase/echoapi/server"
	"github.com/ncobase/echoapi/version"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var (
		host       string
		port       int
		routerKind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("router") {
				cfg.Server.Router = routerKind
			}

			logger.SetVersion(version.GetVersionInfo().Version)
			app, cleanup, err := server.InitializeApp(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize server: %w", err)
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port")
	cmd.Flags().StringVar(&routerKind, "router", "", "router: gin or mux")
	return cmd
}
