package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Short: "Validate an error table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			table, err := loadTable(cmd, path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, code := range table.Codes() {
				entry, err := table.Lookup(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%q\t%d\t%s\n", code, entry.HTTP.Code, entry.Message)
			}
			fmt.Fprintf(out, "%d error codes OK\n", table.Len())
			return nil
		},
	}
}
