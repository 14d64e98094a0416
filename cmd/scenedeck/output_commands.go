package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scenedeck/internal/ipc"
)

func newOutputCommand(ctx *commandContext) *cobra.Command {
	outputCmd := &cobra.Command{
		Use:   "output",
		Short: "Toggle streaming, recording, virtual camera, and replay buffer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	outputCmd.AddCommand(
		newToggleOutputCommand(ctx, "stream", ipc.OutputStream, "Toggle the streaming output"),
		newToggleOutputCommand(ctx, "record", ipc.OutputRecord, "Toggle the recording output"),
		newToggleOutputCommand(ctx, "virtualcam", ipc.OutputVirtualCam, "Toggle the virtual camera"),
		newToggleOutputCommand(ctx, "replay", ipc.OutputReplayBuffer, "Toggle the replay buffer"),
		newRecordPauseCommand(ctx),
		newReplaySaveCommand(ctx),
	)
	return outputCmd
}

func newToggleOutputCommand(ctx *commandContext, use, output, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.ToggleOutput(output); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Toggled %s\n", use)
				return nil
			})
		},
	}
}

func newRecordPauseCommand(ctx *commandContext) *cobra.Command {
	var resume bool
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause the active recording (or resume with --resume)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.RecordPause(resume); err != nil {
					return err
				}
				if resume {
					fmt.Fprintln(cmd.OutOrStdout(), "Recording resumed")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Recording paused")
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&resume, "resume", false, "Resume instead of pausing")
	return cmd
}

func newReplaySaveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save-replay",
		Short: "Save the replay buffer to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SaveReplay()
				if err != nil {
					return err
				}
				if resp.Path == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Replay save requested (no path reported)")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Replay saved to %s\n", resp.Path)
				return nil
			})
		},
	}
}
