package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"log/slog"

	"scenedeck/internal/daemon"
	"scenedeck/internal/logging"
)

// Server exposes daemon control via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	svc := &service{daemon: d, logger: logging.NewComponentLogger(logger, "ipc"), ctx: ctx}
	if err := rpcServer.RegisterName("Scenedeck", svc); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		daemon:    d,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed",
					logging.Error(err),
					logging.String(logging.FieldEventType, "ipc_accept_failed"))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err),
			logging.String(logging.FieldEventType, "ipc_socket_cleanup_failed"))
	}
}

type service struct {
	daemon *daemon.Daemon
	logger *slog.Logger
	ctx    context.Context
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	status := s.daemon.Status()
	resp.Running = status.Running
	resp.Connected = status.Connected
	resp.Address = status.Address
	resp.LockPath = status.LockPath
	resp.PID = status.PID
	return nil
}

func (s *service) Snapshot(_ SnapshotRequest, resp *SnapshotResponse) error {
	resp.Snapshot = s.daemon.Snapshot()
	return nil
}

func (s *service) Connect(req ConnectRequest, resp *ConnectResponse) error {
	if err := s.daemon.Connect(req.Address, req.Password); err != nil {
		resp.Connected = false
		resp.Message = err.Error()
		return nil
	}
	resp.Connected = true
	resp.Message = "connected"
	s.logger.Info("connected via IPC",
		logging.String("address", req.Address),
		logging.String(logging.FieldEventType, "session_connect"))
	return nil
}

func (s *service) Disconnect(_ DisconnectRequest, resp *DisconnectResponse) error {
	s.daemon.Disconnect()
	resp.Disconnected = true
	s.logger.Info("disconnected via IPC",
		logging.String(logging.FieldEventType, "session_disconnect"))
	return nil
}

func (s *service) Refresh(_ RefreshRequest, _ *RefreshResponse) error {
	return s.daemon.Refresh()
}

func (s *service) SwitchScene(req SwitchSceneRequest, _ *SwitchSceneResponse) error {
	return s.daemon.SwitchScene(req.Scene)
}

func (s *service) SetProgramScene(req SetProgramSceneRequest, _ *SetProgramSceneResponse) error {
	return s.daemon.SetProgramScene(req.Scene)
}

func (s *service) SetPreviewScene(req SetPreviewSceneRequest, _ *SetPreviewSceneResponse) error {
	return s.daemon.SetPreviewScene(req.Scene)
}

func (s *service) CreateScene(req CreateSceneRequest, _ *CreateSceneResponse) error {
	return s.daemon.CreateScene(req.Scene)
}

func (s *service) RemoveScene(req RemoveSceneRequest, _ *RemoveSceneResponse) error {
	return s.daemon.RemoveScene(req.Scene)
}

func (s *service) RenameScene(req RenameSceneRequest, _ *RenameSceneResponse) error {
	return s.daemon.RenameScene(req.Scene, req.NewName)
}

func (s *service) SetVolume(req SetVolumeRequest, _ *SetVolumeResponse) error {
	return s.daemon.SetVolume(req.Input, req.VolumeDb)
}

func (s *service) SetMute(req SetMuteRequest, _ *SetMuteResponse) error {
	return s.daemon.SetMute(req.Input, req.Muted)
}

func (s *service) ToggleMute(req ToggleMuteRequest, _ *ToggleMuteResponse) error {
	return s.daemon.ToggleMute(req.Input)
}

func (s *service) ToggleOutput(req ToggleOutputRequest, _ *ToggleOutputResponse) error {
	switch req.Output {
	case OutputStream:
		return s.daemon.ToggleStream()
	case OutputRecord:
		return s.daemon.ToggleRecord()
	case OutputVirtualCam:
		return s.daemon.ToggleVirtualCam()
	case OutputReplayBuffer:
		return s.daemon.ToggleReplayBuffer()
	default:
		return fmt.Errorf("unknown output %q", req.Output)
	}
}

func (s *service) RecordPause(req RecordPauseRequest, _ *RecordPauseResponse) error {
	if req.Resume {
		return s.daemon.ResumeRecord()
	}
	return s.daemon.PauseRecord()
}

func (s *service) SaveReplay(_ SaveReplayRequest, resp *SaveReplayResponse) error {
	path, err := s.daemon.SaveReplayBuffer()
	if err != nil {
		return err
	}
	resp.Path = path
	return nil
}

func (s *service) SetStudioMode(req SetStudioModeRequest, _ *SetStudioModeResponse) error {
	return s.daemon.SetStudioMode(req.Enabled)
}

func (s *service) SetTransition(req SetTransitionRequest, _ *SetTransitionResponse) error {
	return s.daemon.SetTransition(req.Transition)
}

func (s *service) SetTransitionDuration(req SetTransitionDurationRequest, _ *SetTransitionDurationResponse) error {
	return s.daemon.SetTransitionDuration(req.DurationMillis)
}

func (s *service) TriggerTransition(_ TriggerTransitionRequest, _ *TriggerTransitionResponse) error {
	return s.daemon.TriggerTransition()
}

func (s *service) RemoveSceneItem(req RemoveSceneItemRequest, _ *RemoveSceneItemResponse) error {
	return s.daemon.RemoveSceneItem(req.Scene, req.ItemID)
}

func (s *service) SetSceneItemEnabled(req SetSceneItemEnabledRequest, _ *SetSceneItemEnabledResponse) error {
	return s.daemon.SetSceneItemEnabled(req.Scene, req.ItemID, req.Enabled)
}

func (s *service) ListFilters(req ListFiltersRequest, resp *ListFiltersResponse) error {
	filters, err := s.daemon.ListFilters(req.Source)
	if err != nil {
		return err
	}
	resp.Filters = filters
	return nil
}

func (s *service) Screenshot(req ScreenshotRequest, resp *ScreenshotResponse) error {
	image, err := s.daemon.Screenshot(req.Source)
	if err != nil {
		return err
	}
	resp.ImageData = image
	return nil
}

func (s *service) Ask(req AskRequest, resp *AskResponse) error {
	reply, err := s.daemon.Ask(s.ctx, req.Message)
	if err != nil {
		return err
	}
	resp.Text = reply.Text
	if reply.Suggestion != nil {
		resp.SuggestedScene = reply.Suggestion.Scene
	}
	return nil
}

func (s *service) ApplyDirective(req ApplyDirectiveRequest, _ *ApplyDirectiveResponse) error {
	return s.daemon.ApplyDirective(req.Scene)
}
