package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"scenedeck/internal/ipc"
)

func newStudioCommand(ctx *commandContext) *cobra.Command {
	studioCmd := &cobra.Command{
		Use:   "studio",
		Short: "Control studio mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	onCmd := &cobra.Command{
		Use:   "on",
		Short: "Enable studio mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				return client.SetStudioMode(true)
			})
		},
	}

	offCmd := &cobra.Command{
		Use:   "off",
		Short: "Disable studio mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				return client.SetStudioMode(false)
			})
		},
	}

	goCmd := &cobra.Command{
		Use:   "go",
		Short: "Send preview to program with the active transition",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.TriggerTransition(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Transition triggered")
				return nil
			})
		},
	}

	studioCmd.AddCommand(onCmd, offCmd, goCmd)
	return studioCmd
}

func newTransitionCommand(ctx *commandContext) *cobra.Command {
	transitionCmd := &cobra.Command{
		Use:   "transition",
		Short: "Inspect and set the scene transition",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				snap, err := client.Snapshot()
				if err != nil {
					return err
				}
				t := snap.Snapshot.Transition
				stdout := cmd.OutOrStdout()
				fmt.Fprintf(stdout, "Current:   %s\n", t.CurrentName)
				fmt.Fprintf(stdout, "Duration:  %d ms\n", t.DurationMillis)
				if len(t.AvailableKinds) > 0 {
					fmt.Fprintf(stdout, "Available: %s\n", strings.Join(t.AvailableKinds, ", "))
				}
				return nil
			})
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <transition>",
		Short: "Select the active transition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				return client.SetTransition(args[0])
			})
		},
	}

	durationCmd := &cobra.Command{
		Use:   "duration <millis>",
		Short: "Set the transition duration in milliseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			millis, err := strconv.Atoi(args[0])
			if err != nil || millis < 0 {
				return fmt.Errorf("invalid duration %q", args[0])
			}
			return ctx.withClient(func(client *ipc.Client) error {
				return client.SetTransitionDuration(millis)
			})
		},
	}

	transitionCmd.AddCommand(setCmd, durationCmd)
	return transitionCmd
}
