package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"scenedeck/internal/ipc"
)

func newItemCommand(ctx *commandContext) *cobra.Command {
	itemCmd := &cobra.Command{
		Use:   "item",
		Short: "Inspect and control items of the current scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List items of the current scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				snap, err := client.Snapshot()
				if err != nil {
					return err
				}
				s := snap.Snapshot
				rows := make([][]string, 0, len(s.SceneItems))
				for _, item := range s.SceneItems {
					rows = append(rows, []string{
						strconv.Itoa(item.ID),
						item.SourceName,
						item.SourceKind,
						yesNo(item.Enabled),
						yesNo(item.Locked),
					})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Scene: %s\n", s.CurrentScene)
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Source", "Kind", "Visible", "Locked"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <scene> <item-id>",
		Short: "Make a scene item visible",
		Args:  cobra.ExactArgs(2),
		RunE:  setItemEnabled(ctx, true),
	}

	hideCmd := &cobra.Command{
		Use:   "hide <scene> <item-id>",
		Short: "Hide a scene item",
		Args:  cobra.ExactArgs(2),
		RunE:  setItemEnabled(ctx, false),
	}

	var removeYes bool
	removeCmd := &cobra.Command{
		Use:   "remove <scene> <item-id>",
		Short: "Delete an item from a scene",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[1])
			}
			if !removeYes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete item %d from scene %q?", itemID, args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.RemoveSceneItem(args[0], itemID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed item %d from %s\n", itemID, args[0])
				return nil
			})
		},
	}
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")

	itemCmd.AddCommand(listCmd, showCmd, hideCmd, removeCmd)
	return itemCmd
}

func setItemEnabled(ctx *commandContext, enabled bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		itemID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[1])
		}
		return ctx.withClient(func(client *ipc.Client) error {
			return client.SetSceneItemEnabled(args[0], itemID, enabled)
		})
	}
}

// confirm reads one y/N answer from the command's stdin.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
