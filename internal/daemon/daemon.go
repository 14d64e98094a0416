package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"scenedeck/internal/config"
	"scenedeck/internal/control"
	"scenedeck/internal/director"
	"scenedeck/internal/logging"
	"scenedeck/internal/obsws"
	"scenedeck/internal/state"
)

// ErrNotConnected reports an intent issued without a live session.
var ErrNotConnected = errors.New("daemon: no active session")

// Daemon owns the control session and its reconciler.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc

	// connectMu serializes the disconnect/dial/assign sequence so
	// overlapping connect intents cannot leak a live session.
	connectMu sync.Mutex

	mu         sync.Mutex
	session    *obsws.Session
	facade     *control.Client
	reconciler *state.Reconciler
	director   *director.Director
}

// Status represents daemon runtime information.
type Status struct {
	Running   bool
	Connected bool
	Address   string
	LockPath  string
	PID       int
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("daemon requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := os.MkdirAll(cfg.Paths.RuntimeDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure runtime directory: %w", err)
	}
	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Start acquires the single-instance lock and, when an address is
// configured, attempts the initial connection. A failed initial connect is
// logged and left to the operator; the daemon stays up so a later connect
// intent can retry with fresh credentials.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another scenedeckd instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	d.running.Store(true)
	d.logger.Info("scenedeck daemon started", logging.String("lock", d.lockPath))

	if d.cfg.OBS.Address != "" {
		if err := d.Connect(d.cfg.OBS.Address, d.cfg.OBS.Password); err != nil {
			d.logger.Warn("initial connect failed",
				logging.String("address", d.cfg.OBS.Address),
				logging.Error(err),
				logging.String(logging.FieldEventType, "initial_connect_failed"),
			)
		}
	}
	return nil
}

// Stop tears the session down and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}
	d.Disconnect()
	if d.cancel != nil {
		d.cancel()
	}
	d.running.Store(false)
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("release lock", logging.Error(err))
	}
	d.logger.Info("scenedeck daemon stopped")
}

// Connect opens a fresh session to the studio, replacing any existing one.
func (d *Daemon) Connect(address, password string) error {
	if !d.running.Load() {
		return errors.New("daemon not running")
	}
	d.connectMu.Lock()
	defer d.connectMu.Unlock()
	d.teardown()

	connectCtx, cancel := context.WithTimeout(d.ctx, time.Duration(d.cfg.OBS.ConnectTimeoutSeconds)*time.Second)
	defer cancel()

	session, err := obsws.Connect(connectCtx, address, password,
		obsws.WithLogger(d.logger),
		obsws.WithConnectTimeout(time.Duration(d.cfg.OBS.ConnectTimeoutSeconds)*time.Second),
	)
	if err != nil {
		return err
	}

	facade := control.NewClient(session, d.logger)
	reconciler := state.New(facade, session, d.logger,
		state.WithPollInterval(time.Duration(d.cfg.Workflow.PollIntervalMillis)*time.Millisecond),
	)
	chat := director.NewClient(director.ClientConfig{
		APIKey:         d.cfg.Director.APIKey,
		BaseURL:        d.cfg.Director.BaseURL,
		Model:          d.cfg.Director.Model,
		Referer:        d.cfg.Director.Referer,
		Title:          d.cfg.Director.Title,
		TimeoutSeconds: d.cfg.Director.TimeoutSeconds,
	})
	dir := director.New(chat, facade, reconciler.Snapshot, d.logger)

	if err := reconciler.Start(d.ctx); err != nil {
		session.Close()
		return fmt.Errorf("start reconciler: %w", err)
	}

	d.mu.Lock()
	d.session = session
	d.facade = facade
	d.reconciler = reconciler
	d.director = dir
	d.mu.Unlock()

	d.logger.Info("connected to studio", logging.String("address", address))
	return nil
}

// Disconnect stops the reconciler and closes the session. Pending calls are
// abandoned; their results are discarded.
func (d *Daemon) Disconnect() {
	d.connectMu.Lock()
	defer d.connectMu.Unlock()
	d.teardown()
}

func (d *Daemon) teardown() {
	d.mu.Lock()
	session := d.session
	reconciler := d.reconciler
	d.session = nil
	d.facade = nil
	d.reconciler = nil
	d.director = nil
	d.mu.Unlock()

	if reconciler != nil {
		reconciler.Stop()
	}
	if session != nil {
		session.Close()
		d.logger.Info("disconnected from studio")
	}
}

// Connected reports whether a live session exists.
func (d *Daemon) Connected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session != nil && d.session.Connected()
}

// Snapshot returns the reconciler's current view, or a zero snapshot when
// disconnected.
func (d *Daemon) Snapshot() state.Snapshot {
	d.mu.Lock()
	reconciler := d.reconciler
	d.mu.Unlock()
	if reconciler == nil {
		return state.Snapshot{}
	}
	return reconciler.Snapshot()
}

// Status returns daemon runtime information.
func (d *Daemon) Status() Status {
	return Status{
		Running:   d.running.Load(),
		Connected: d.Connected(),
		Address:   d.cfg.OBS.Address,
		LockPath:  d.lockPath,
		PID:       os.Getpid(),
	}
}

// LogPath returns the daemon log file location.
func (d *Daemon) LogPath() string {
	return filepath.Join(d.cfg.Paths.LogDir, "scenedeck.log")
}

func (d *Daemon) parts() (*control.Client, *state.Reconciler, *director.Director, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.facade == nil {
		return nil, nil, nil, ErrNotConnected
	}
	return d.facade, d.reconciler, d.director, nil
}

// callCtx bounds one intent call. Reconciler-owned fetches stay unbounded;
// this only applies at the intent boundary where a CLI caller is waiting.
func (d *Daemon) callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(d.ctx, time.Duration(d.cfg.OBS.CallTimeoutSeconds)*time.Second)
}
