package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"scenedeck/internal/config"
	"scenedeck/internal/logging"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.OBS.Address = "" // no studio during tests
	cfg.Paths.RuntimeDir = dir
	cfg.Paths.LogDir = dir
	return &cfg
}

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(nil, logging.NewNop()); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestStartStopLifecycle(t *testing.T) {
	d, err := New(testConfig(t), logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	status := d.Status()
	if !status.Running {
		t.Fatal("not running after Start")
	}
	if status.Connected {
		t.Fatal("connected without a studio")
	}

	if err := d.Start(context.Background()); err == nil {
		t.Fatal("second Start did not fail")
	}

	d.Stop()
	if d.Status().Running {
		t.Fatal("still running after Stop")
	}
}

func TestSecondInstanceBlockedByLock(t *testing.T) {
	cfg := testConfig(t)

	first, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := first.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer first.Stop()

	second, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := second.Start(context.Background()); err == nil {
		second.Stop()
		t.Fatal("second instance acquired the lock")
	}
}

func TestIntentsFailWithoutSession(t *testing.T) {
	d, err := New(testConfig(t), logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer d.Stop()

	if err := d.SwitchScene("Interview"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("SwitchScene err = %v", err)
	}
	if err := d.ToggleStream(); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("ToggleStream err = %v", err)
	}
	if err := d.Refresh(); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("Refresh err = %v", err)
	}
	if _, err := d.Ask(context.Background(), "hello"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("Ask err = %v", err)
	}
}

func TestSnapshotZeroWhenDisconnected(t *testing.T) {
	d, err := New(testConfig(t), logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	snap := d.Snapshot()
	if snap.Connected || len(snap.Scenes) != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}
}

type wsFrame struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d"`
}

// startFakeStudio serves the obs-websocket handshake and answers every
// request with an empty success. Each closed connection sends on the
// returned channel.
func startFakeStudio(t *testing.T) (addr string, closed chan struct{}, shutdown func()) {
	t.Helper()
	upgrader := websocket.Upgrader{Subprotocols: []string{"obswebsocket.json"}}
	closed = make(chan struct{}, 4)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		write := func(op int, payload any) error {
			data, err := json.Marshal(payload)
			if err != nil {
				return err
			}
			return conn.WriteJSON(wsFrame{Op: op, D: data})
		}
		if err := write(0, map[string]any{"obsWebSocketVersion": "5.5.2", "rpcVersion": 1}); err != nil {
			return
		}
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		if err := write(2, map[string]any{"negotiatedRpcVersion": 1}); err != nil {
			return
		}
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				closed <- struct{}{}
				return
			}
			var frame wsFrame
			if err := json.Unmarshal(data, &frame); err != nil || frame.Op != 6 {
				continue
			}
			var req struct {
				RequestType string `json:"requestType"`
				RequestID   string `json:"requestId"`
			}
			if err := json.Unmarshal(frame.D, &req); err != nil {
				continue
			}
			write(7, map[string]any{
				"requestType":   req.RequestType,
				"requestId":     req.RequestID,
				"requestStatus": map[string]any{"result": true, "code": 100},
			})
		}
	}))
	return strings.TrimPrefix(server.URL, "http://"), closed, server.Close
}

func TestConcurrentConnectsKeepOneSession(t *testing.T) {
	addr, closedConns, shutdown := startFakeStudio(t)
	defer shutdown()

	d, err := New(testConfig(t), logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer d.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := d.Connect(addr, ""); err != nil {
				t.Errorf("Connect: %v", err)
			}
		}()
	}
	wg.Wait()

	if !d.Connected() {
		t.Fatal("no live session after concurrent connects")
	}
	select {
	case <-closedConns:
	case <-time.After(2 * time.Second):
		t.Fatal("replaced session was never closed")
	}
}
