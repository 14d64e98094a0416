package obsws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// fakeRemote runs an obs-websocket v5 handshake and then hands the connection
// to serve for request/event traffic.
type fakeRemote struct {
	t        *testing.T
	password string
	serve    func(conn *websocket.Conn)
}

func (f *fakeRemote) start() *httptest.Server {
	upgrader := websocket.Upgrader{Subprotocols: []string{subprotocol}}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			f.t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		hello := map[string]any{
			"obsWebSocketVersion": "5.5.2",
			"rpcVersion":          1,
		}
		var salt, challenge string
		if f.password != "" {
			salt, challenge = "c2FsdA==", "Y2hhbGxlbmdl"
			hello["authentication"] = map[string]string{"challenge": challenge, "salt": salt}
		}
		if err := writeEnvelope(conn, opHello, hello); err != nil {
			f.t.Errorf("write hello: %v", err)
			return
		}

		var identify identifyPayload
		if err := readPayload(conn, opIdentify, &identify); err != nil {
			f.t.Errorf("read identify: %v", err)
			return
		}
		if identify.RPCVersion != rpcVersion {
			f.t.Errorf("rpc version = %d, want %d", identify.RPCVersion, rpcVersion)
		}
		if f.password != "" {
			want := authResponse(f.password, salt, challenge)
			if identify.Authentication != want {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(4009, "authentication failed"),
					time.Now().Add(time.Second))
				return
			}
		}
		if err := writeEnvelope(conn, opIdentified, identifiedPayload{NegotiatedRPCVersion: rpcVersion}); err != nil {
			f.t.Errorf("write identified: %v", err)
			return
		}

		if f.serve != nil {
			f.serve(conn)
		}
	}))
}

func wsAddress(server *httptest.Server) string {
	return strings.TrimPrefix(server.URL, "http://")
}

func TestConnectAuthenticates(t *testing.T) {
	remote := &fakeRemote{t: t, password: "hunter2"}
	server := remote.start()
	defer server.Close()

	session, err := Connect(context.Background(), wsAddress(server), "hunter2")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer session.Close()

	if !session.Connected() {
		t.Fatal("expected session to report connected")
	}
}

func TestConnectRejectsBadPassword(t *testing.T) {
	remote := &fakeRemote{t: t, password: "hunter2"}
	server := remote.start()
	defer server.Close()

	_, err := Connect(context.Background(), wsAddress(server), "wrong")
	if err == nil {
		t.Fatal("expected authentication failure")
	}
	var connErr *ConnError
	if !errors.As(err, &connErr) {
		t.Fatalf("error type = %T, want *ConnError", err)
	}
	if connErr.Stage != "authenticate" {
		t.Fatalf("stage = %q, want authenticate", connErr.Stage)
	}
}

func TestCallRoundTrip(t *testing.T) {
	remote := &fakeRemote{t: t}
	remote.serve = func(conn *websocket.Conn) {
		var req requestPayload
		if err := readPayload(conn, opRequest, &req); err != nil {
			return
		}
		if req.RequestType != "GetVersion" {
			t.Errorf("request type = %q, want GetVersion", req.RequestType)
		}
		resp := map[string]any{
			"requestType":   req.RequestType,
			"requestId":     req.RequestID,
			"requestStatus": map[string]any{"result": true, "code": 100},
			"responseData":  map[string]any{"obsVersion": "31.0.0"},
		}
		writeEnvelope(conn, opResponse, resp)
	}
	server := remote.start()
	defer server.Close()

	session, err := Connect(context.Background(), wsAddress(server), "")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer session.Close()

	var out struct {
		OBSVersion string `json:"obsVersion"`
	}
	if err := session.Call(context.Background(), "GetVersion", nil, &out); err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out.OBSVersion != "31.0.0" {
		t.Fatalf("obsVersion = %q, want 31.0.0", out.OBSVersion)
	}
}

func TestCallSurfacesRequestError(t *testing.T) {
	remote := &fakeRemote{t: t}
	remote.serve = func(conn *websocket.Conn) {
		var req requestPayload
		if err := readPayload(conn, opRequest, &req); err != nil {
			return
		}
		resp := map[string]any{
			"requestType": req.RequestType,
			"requestId":   req.RequestID,
			"requestStatus": map[string]any{
				"result":  false,
				"code":    600,
				"comment": "No source was found by the name of `Missing`.",
			},
		}
		writeEnvelope(conn, opResponse, resp)
	}
	server := remote.start()
	defer server.Close()

	session, err := Connect(context.Background(), wsAddress(server), "")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer session.Close()

	err = session.Call(context.Background(), "GetSourceScreenshot", map[string]any{"sourceName": "Missing"}, nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.Code != 600 {
		t.Fatalf("code = %d, want 600", reqErr.Code)
	}
	if reqErr.RequestType != "GetSourceScreenshot" {
		t.Fatalf("request type = %q", reqErr.RequestType)
	}
}

func TestEventDispatch(t *testing.T) {
	events := make(chan struct{})
	remote := &fakeRemote{t: t}
	remote.serve = func(conn *websocket.Conn) {
		<-events
		payload := map[string]any{
			"eventType": "CurrentProgramSceneChanged",
			"eventData": map[string]any{"sceneName": "Interview"},
		}
		writeEnvelope(conn, opEvent, payload)
		<-events
	}
	server := remote.start()
	defer server.Close()

	session, err := Connect(context.Background(), wsAddress(server), "")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer session.Close()

	received := make(chan string, 1)
	session.Subscribe("CurrentProgramSceneChanged", func(data json.RawMessage) {
		var payload struct {
			SceneName string `json:"sceneName"`
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			t.Errorf("decode event: %v", err)
		}
		received <- payload.SceneName
	})

	events <- struct{}{}
	select {
	case name := <-received:
		if name != "Interview" {
			t.Fatalf("scene = %q, want Interview", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	close(events)
}

func TestEventHandlerCanIssueCalls(t *testing.T) {
	events := make(chan struct{})
	remote := &fakeRemote{t: t}
	remote.serve = func(conn *websocket.Conn) {
		<-events
		writeEnvelope(conn, opEvent, map[string]any{
			"eventType": "CurrentProgramSceneChanged",
			"eventData": map[string]any{"sceneName": "Interview"},
		})
		for {
			var req requestPayload
			if err := readPayload(conn, opRequest, &req); err != nil {
				return
			}
			writeEnvelope(conn, opResponse, map[string]any{
				"requestType":   req.RequestType,
				"requestId":     req.RequestID,
				"requestStatus": map[string]any{"result": true, "code": 100},
				"responseData":  map[string]any{"sceneItems": []any{}},
			})
		}
	}
	server := remote.start()
	defer server.Close()

	session, err := Connect(context.Background(), wsAddress(server), "")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer session.Close()

	// A scene-change handler refetches over the same session; the call's
	// response arrives on the socket the handler was dispatched from.
	done := make(chan error, 1)
	session.Subscribe("CurrentProgramSceneChanged", func(json.RawMessage) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		done <- session.Call(ctx, "GetSceneItemList", map[string]any{"sceneName": "Interview"}, nil)
	})

	events <- struct{}{}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("call from event handler: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("call from event handler never completed")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	session := &Session{
		handlers: make(map[string]map[int]EventHandler),
		closed:   make(chan struct{}),
	}
	calls := 0
	id := session.Subscribe("InputMuteStateChanged", func(json.RawMessage) { calls++ })
	session.dispatch(eventPayload{EventType: "InputMuteStateChanged"})
	session.Unsubscribe("InputMuteStateChanged", id)
	session.dispatch(eventPayload{EventType: "InputMuteStateChanged"})
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func TestCloseFailsPendingCall(t *testing.T) {
	release := make(chan struct{})
	remote := &fakeRemote{t: t}
	remote.serve = func(conn *websocket.Conn) {
		var req requestPayload
		if err := readPayload(conn, opRequest, &req); err != nil {
			return
		}
		<-release
	}
	server := remote.start()
	defer server.Close()

	session, err := Connect(context.Background(), wsAddress(server), "")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- session.Call(context.Background(), "StartStream", nil, nil)
	}()
	time.Sleep(50 * time.Millisecond)
	session.Close()

	select {
	case err := <-done:
		if !errors.Is(err, ErrClosed) {
			t.Fatalf("error = %v, want ErrClosed", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("call did not fail after close")
	}
	close(release)

	if session.Connected() {
		t.Fatal("session still reports connected after close")
	}
	if err := session.Call(context.Background(), "StartStream", nil, nil); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("error = %v, want ErrNotConnected", err)
	}
}

func TestAuthResponseDerivation(t *testing.T) {
	// Fixed vector computed from the documented derivation.
	got := authResponse("supersecretpassword", "PZVbYpvAnZut2SS6JNJytDm9", "ztTBnnuqrqaKDzRM3xcVdbYm")
	want := "zZgWipvwSGrw748kHN4gNpBC1IaeiiWX3Hjkrm849Sc="
	if got != want {
		t.Fatalf("authResponse = %q, want %q", got, want)
	}
}
