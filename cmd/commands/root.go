package commands

import (
	"fmt"

	"github.com/ncobase/echoapi/config"
	"github.com/ncobase/echoapi/ecode"
	"github.com/spf13/cobra"
)

const configFlag = "config"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "echoapi",
		Short:         "Consistent JSON response envelopes for HTTP APIs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "config file path")

	rootCmd.AddCommand(
		NewServeCommand(),
		NewCheckCommand(),
		NewRenderCommand(),
		NewPublishCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}

// loadConfig loads the configuration named by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString(configFlag)
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadTable loads the table at path, or the configured table when path is empty.
func loadTable(cmd *cobra.Command, path string) (*ecode.Table, error) {
	if path != "" {
		return ecode.LoadFile(path)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return cfg.Errors.Table()
}
