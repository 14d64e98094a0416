package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"scenedeck/internal/ipc"
)

func newFiltersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "filters <source>",
		Short: "List a source's filter chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ListFilters(args[0])
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(resp.Filters))
				for _, filter := range resp.Filters {
					rows = append(rows, []string{
						strconv.Itoa(filter.Index),
						filter.Name,
						filter.Kind,
						yesNo(filter.Enabled),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"#", "Filter", "Kind", "Enabled"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newScreenshotCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "screenshot <source>",
		Short: "Capture a source image and write it to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Screenshot(args[0])
				if err != nil {
					return err
				}
				if resp.ImageData == "" {
					return fmt.Errorf("no screenshot available for %q", args[0])
				}
				data, err := decodeImageDataURI(resp.ImageData)
				if err != nil {
					return err
				}
				path := outPath
				if path == "" {
					path = "screenshot.webp"
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write screenshot: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, len(data))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file path (default screenshot.webp)")
	return cmd
}

// decodeImageDataURI strips a data:image/...;base64, prefix when present and
// decodes the payload.
func decodeImageDataURI(uri string) ([]byte, error) {
	payload := uri
	if idx := strings.Index(uri, "base64,"); idx >= 0 {
		payload = uri[idx+len("base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode screenshot payload: %w", err)
	}
	return data, nil
}
