package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scenedeck/internal/ipc"
)

func newMixerCommand(ctx *commandContext) *cobra.Command {
	mixerCmd := &cobra.Command{
		Use:   "mixer",
		Short: "Inspect and control the audio mixer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List audio inputs with levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				snap, err := client.Snapshot()
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(snap.Snapshot.Inputs))
				for _, input := range snap.Snapshot.Inputs {
					muted := ""
					if input.Muted {
						muted = "muted"
					}
					rows = append(rows, []string{
						input.Name,
						input.Kind,
						fmt.Sprintf("%.1f dB", input.VolumeDb),
						muted,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Input", "Kind", "Volume", "Mute"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	volumeCmd := &cobra.Command{
		Use:   "volume <input> <db>",
		Short: "Set an input's volume in dB (clamped to -60..0)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid dB value %q", args[1])
			}
			return ctx.withClient(func(client *ipc.Client) error {
				return client.SetVolume(args[0], db)
			})
		},
	}

	muteCmd := &cobra.Command{
		Use:   "mute <input>",
		Short: "Mute an input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				return client.SetMute(args[0], true)
			})
		},
	}

	unmuteCmd := &cobra.Command{
		Use:   "unmute <input>",
		Short: "Unmute an input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				return client.SetMute(args[0], false)
			})
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <input>",
		Short: "Toggle an input's mute flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				return client.ToggleMute(args[0])
			})
		},
	}

	mixerCmd.AddCommand(listCmd, volumeCmd, muteCmd, unmuteCmd, toggleCmd)
	return mixerCmd
}
