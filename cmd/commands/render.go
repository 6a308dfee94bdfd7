package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/ncobase/echoapi/ecode"
	"github.com/ncobase/echoapi/net/resp"
	"github.com/spf13/cobra"
)

// NewRenderCommand creates the render command
func NewRenderCommand() *cobra.Command {
	var (
		tablePath string
		data      string
		httpOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "render <code>",
		Short: "Render the response configured for an error code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload map[string]any
			if data != "" {
				if err := json.Unmarshal([]byte(data), &payload); err != nil {
					return fmt.Errorf("invalid --data: %w", err)
				}
			}

			var (
				res *resp.Response
				err error
			)
			if httpOnly {
				status, convErr := strconv.Atoi(args[0])
				if convErr != nil {
					return fmt.Errorf("%w: %q is not an HTTP status", ecode.ErrInvalidCode, args[0])
				}
				res, err = resp.HTTPError(status, payload, nil)
			} else {
				table, loadErr := loadTable(cmd, tablePath)
				if loadErr != nil {
					return loadErr
				}
				res, err = resp.New(table).FindError(ecode.ParseCode(args[0]), payload, nil)
			}
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "error table file (default: configured table)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "additional data as a JSON object")
	cmd.Flags().BoolVar(&httpOnly, "http", false, "render the plain HTTP error for a status code")
	return cmd
}

// printResponse writes the status line, headers in key order, and body.
func printResponse(w io.Writer, res *resp.Response) error {
	body, err := res.Bytes()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "HTTP %d\n", res.Status)
	keys := make([]string, 0, len(res.Header))
	for k := range res.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range res.Header[k] {
			fmt.Fprintf(w, "%s: %s\n", k, v)
		}
	}
	fmt.Fprintf(w, "\n%s\n", body)
	return nil
}
