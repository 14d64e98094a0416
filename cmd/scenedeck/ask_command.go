package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scenedeck/internal/ipc"
)

func newAskCommand(ctx *commandContext) *cobra.Command {
	var apply bool
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the director for production advice",
		Long: "Ask the director for production advice. When the reply contains a scene\n" +
			"suggestion it is printed but never executed; pass --apply to switch to the\n" +
			"suggested scene after the reply.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Ask(message)
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				fmt.Fprintln(stdout, resp.Text)
				if resp.SuggestedScene == "" {
					return nil
				}
				fmt.Fprintf(stdout, "\nSuggested scene: %s\n", resp.SuggestedScene)
				if !apply {
					fmt.Fprintln(stdout, "Run with --apply to switch, or use: scenedeck scene switch")
					return nil
				}
				if err := client.ApplyDirective(resp.SuggestedScene); err != nil {
					return err
				}
				fmt.Fprintf(stdout, "Applied: switched to %s\n", resp.SuggestedScene)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&apply, "apply", false, "Apply the suggested scene switch after the reply")
	return cmd
}
