package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ncobase/echoapi/ecode"
	"github.com/spf13/cobra"
)

const defaultPublishPath = "errors.yaml"

// NewPublishCommand creates the publish command
func NewPublishCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "publish [path]",
		Short: "Write the default error table for editing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultPublishPath
			if len(args) > 0 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
			if err := os.WriteFile(path, ecode.DefaultSource(), 0644); err != nil {
				return fmt.Errorf("failed to write error table: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Error table published to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
