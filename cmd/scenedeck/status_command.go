package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scenedeck/internal/ipc"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon and studio status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				status, err := client.Status()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				colorize := shouldColorize(stdout)

				for _, line := range renderSectionHeader("Daemon", colorize) {
					fmt.Fprintln(stdout, line)
				}
				fmt.Fprintln(stdout, renderStatusLine("Running", boolKind(status.Running), "", colorize))
				fmt.Fprintln(stdout, renderStatusLine("Connected", boolKind(status.Connected), status.Address, colorize))
				fmt.Fprintln(stdout, renderStatusLine("PID", statusInfo, strconv.Itoa(status.PID), colorize))

				if !status.Connected {
					return nil
				}

				snap, err := client.Snapshot()
				if err != nil {
					return err
				}
				s := snap.Snapshot

				fmt.Fprintln(stdout)
				for _, line := range renderSectionHeader("Studio", colorize) {
					fmt.Fprintln(stdout, line)
				}
				fmt.Fprintln(stdout, renderStatusLine("Program", statusInfo, s.CurrentScene, colorize))
				if s.StudioMode {
					fmt.Fprintln(stdout, renderStatusLine("Preview", statusInfo, s.PreviewScene, colorize))
				}
				fmt.Fprintln(stdout, renderStatusLine("Studio mode", statusInfo, onOff(s.StudioMode), colorize))
				fmt.Fprintln(stdout, renderStatusLine("Streaming", boolKind(s.Outputs.Streaming), s.Stats.Timecode, colorize))
				recording := "recording"
				if s.Outputs.RecordPaused {
					recording = "paused"
				}
				if !s.Outputs.Recording {
					recording = ""
				}
				fmt.Fprintln(stdout, renderStatusLine("Recording", boolKind(s.Outputs.Recording), recording, colorize))
				fmt.Fprintln(stdout, renderStatusLine("Virtual cam", boolKind(s.Outputs.VirtualCamActive), "", colorize))
				fmt.Fprintln(stdout, renderStatusLine("Replay buffer", boolKind(s.Outputs.ReplayBuffering), "", colorize))
				fmt.Fprintln(stdout, renderStatusLine("CPU", statusInfo, fmt.Sprintf("%.1f%%", s.Stats.CPUPercent), colorize))
				fmt.Fprintln(stdout, renderStatusLine("FPS", statusInfo, fmt.Sprintf("%.1f", s.Stats.FPS), colorize))
				return nil
			})
		},
	}
}

func boolKind(value bool) statusKind {
	if value {
		return statusOK
	}
	return statusInfo
}

func newConnectCommand(ctx *commandContext) *cobra.Command {
	var address string
	var password string
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect the daemon to the studio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				addr := address
				pass := password
				if addr == "" {
					if cfg, err := ctx.ensureConfig(); err == nil {
						addr = cfg.OBS.Address
						if pass == "" {
							pass = cfg.OBS.Password
						}
					}
				}
				resp, err := client.Connect(addr, pass)
				if err != nil {
					return err
				}
				if !resp.Connected {
					return fmt.Errorf("connect failed: %s", resp.Message)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s\n", addr)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "Studio WebSocket address (host:port or ws:// URL)")
	cmd.Flags().StringVar(&password, "password", "", "Studio WebSocket password")
	return cmd
}

func newDisconnectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Disconnect the daemon from the studio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.Disconnect(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Disconnected")
				return nil
			})
		},
	}
}

func newRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Force a full studio state re-fetch",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.Refresh(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Refreshed")
				return nil
			})
		},
	}
}
