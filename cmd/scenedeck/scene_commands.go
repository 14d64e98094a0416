package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scenedeck/internal/ipc"
)

func newSceneCommand(ctx *commandContext) *cobra.Command {
	sceneCmd := &cobra.Command{
		Use:   "scene",
		Short: "Inspect and control scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List scenes in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				snap, err := client.Snapshot()
				if err != nil {
					return err
				}
				s := snap.Snapshot
				rows := make([][]string, 0, len(s.Scenes))
				for _, scene := range s.Scenes {
					marker := ""
					if scene.Name == s.CurrentScene {
						marker = "program"
					} else if s.StudioMode && scene.Name == s.PreviewScene {
						marker = "preview"
					}
					rows = append(rows, []string{strconv.Itoa(scene.Index), scene.Name, marker})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"#", "Scene", "Active"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	switchCmd := &cobra.Command{
		Use:   "switch <scene>",
		Short: "Switch to a scene (preview in studio mode, program otherwise)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.SwitchScene(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s\n", args[0])
				return nil
			})
		},
	}

	programCmd := &cobra.Command{
		Use:   "program <scene>",
		Short: "Set the program scene directly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				return client.SetProgramScene(args[0])
			})
		},
	}

	previewCmd := &cobra.Command{
		Use:   "preview <scene>",
		Short: "Set the preview scene (studio mode only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				return client.SetPreviewScene(args[0])
			})
		},
	}

	createCmd := &cobra.Command{
		Use:   "create <scene>",
		Short: "Create a new scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.CreateScene(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created scene %s\n", args[0])
				return nil
			})
		},
	}

	var removeYes bool
	removeCmd := &cobra.Command{
		Use:   "remove <scene>",
		Short: "Delete a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !removeYes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete scene %q?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.RemoveScene(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed scene %s\n", args[0])
				return nil
			})
		},
	}
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")

	renameCmd := &cobra.Command{
		Use:   "rename <scene> <new-name>",
		Short: "Rename a scene",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.RenameScene(args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", args[0], args[1])
				return nil
			})
		},
	}

	sceneCmd.AddCommand(listCmd, switchCmd, programCmd, previewCmd, createCmd, removeCmd, renameCmd)
	return sceneCmd
}
