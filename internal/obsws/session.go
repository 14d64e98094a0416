package obsws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"scenedeck/internal/logging"
)

const defaultConnectTimeout = 10 * time.Second

// EventHandler receives the raw payload of one subscribed event.
type EventHandler func(data json.RawMessage)

// Session is one identified connection to the remote studio. All methods are
// safe for concurrent use.
type Session struct {
	logger *slog.Logger
	conn   *websocket.Conn

	writeMu sync.Mutex

	mu            sync.Mutex
	pending       map[string]chan responsePayload
	handlers      map[string]map[int]EventHandler
	nextHandlerID int

	eventMu    sync.Mutex
	eventQueue []eventPayload
	eventWake  chan struct{}

	closed    chan struct{}
	closeOnce sync.Once
}

// Option customizes session construction.
type Option func(*dialSettings)

type dialSettings struct {
	logger         *slog.Logger
	connectTimeout time.Duration
}

// WithLogger attaches a logger to the session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *dialSettings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConnectTimeout overrides the handshake timeout (defaults to 10s).
func WithConnectTimeout(timeout time.Duration) Option {
	return func(s *dialSettings) {
		if timeout > 0 {
			s.connectTimeout = timeout
		}
	}
}

// Connect opens a WebSocket connection to address, authenticates with the
// shared password, and returns an identified session. A bare host:port is
// treated as ws://host:port.
func Connect(ctx context.Context, address, password string, opts ...Option) (*Session, error) {
	settings := dialSettings{
		logger:         logging.NewNop(),
		connectTimeout: defaultConnectTimeout,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	url := strings.TrimSpace(address)
	if !strings.HasPrefix(url, "ws://") && !strings.HasPrefix(url, "wss://") {
		url = "ws://" + url
	}

	dialer := websocket.Dialer{
		Subprotocols:     []string{subprotocol},
		HandshakeTimeout: settings.connectTimeout,
	}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, &ConnError{Stage: "dial " + url, Err: err}
	}

	deadline := time.Now().Add(settings.connectTimeout)
	if err := conn.SetReadDeadline(deadline); err != nil {
		conn.Close()
		return nil, &ConnError{Stage: "set deadline", Err: err}
	}

	var hello helloPayload
	if err := readPayload(conn, opHello, &hello); err != nil {
		conn.Close()
		return nil, &ConnError{Stage: "hello", Err: err}
	}

	identify := identifyPayload{
		RPCVersion:         rpcVersion,
		EventSubscriptions: eventSubscriptionAll,
	}
	if hello.Authentication != nil {
		identify.Authentication = authResponse(password, hello.Authentication.Salt, hello.Authentication.Challenge)
	}
	if err := writeEnvelope(conn, opIdentify, identify); err != nil {
		conn.Close()
		return nil, &ConnError{Stage: "identify", Err: err}
	}

	var identified identifiedPayload
	if err := readPayload(conn, opIdentified, &identified); err != nil {
		conn.Close()
		return nil, &ConnError{Stage: "authenticate", Err: err}
	}

	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		conn.Close()
		return nil, &ConnError{Stage: "clear deadline", Err: err}
	}

	session := &Session{
		logger:   logging.NewComponentLogger(settings.logger, "obsws"),
		conn:     conn,
		pending:   make(map[string]chan responsePayload),
		handlers:  make(map[string]map[int]EventHandler),
		eventWake: make(chan struct{}, 1),
		closed:    make(chan struct{}),
	}
	session.logger.Info("session identified",
		logging.String("address", url),
		logging.String("obs_websocket_version", hello.OBSWebSocketVersion),
		logging.Int("rpc_version", identified.NegotiatedRPCVersion),
	)
	go session.readLoop()
	go session.dispatchLoop()
	return session, nil
}

// Connected reports whether the session can still issue requests.
func (s *Session) Connected() bool {
	select {
	case <-s.closed:
		return false
	default:
		return true
	}
}

// Call issues a correlated request and decodes the response data into out
// when out is non-nil. A remote rejection surfaces as *RequestError. Calls
// abandoned by a closing session fail with ErrClosed.
func (s *Session) Call(ctx context.Context, requestType string, params any, out any) error {
	if !s.Connected() {
		return ErrNotConnected
	}

	id := uuid.NewString()
	ch := make(chan responsePayload, 1)

	s.mu.Lock()
	s.pending[id] = ch
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
	}()

	payload := requestPayload{RequestType: requestType, RequestID: id, RequestData: params}
	s.writeMu.Lock()
	err := writeEnvelope(s.conn, opRequest, payload)
	s.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("send %s: %w", requestType, err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.closed:
		return ErrClosed
	case resp := <-ch:
		if !resp.RequestStatus.Result {
			return &RequestError{
				RequestType: requestType,
				Code:        resp.RequestStatus.Code,
				Comment:     resp.RequestStatus.Comment,
			}
		}
		if out == nil || len(resp.ResponseData) == 0 {
			return nil
		}
		if err := json.Unmarshal(resp.ResponseData, out); err != nil {
			return fmt.Errorf("decode %s response: %w", requestType, err)
		}
		return nil
	}
}

// Subscribe registers a handler for one event type and returns a token for
// Unsubscribe. Handlers run on a dedicated dispatch goroutine, once per
// matching event, in the order events arrive. A handler may issue calls on
// the session; the socket reader keeps running underneath it.
func (s *Session) Subscribe(eventType string, handler EventHandler) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextHandlerID++
	id := s.nextHandlerID
	if s.handlers[eventType] == nil {
		s.handlers[eventType] = make(map[int]EventHandler)
	}
	s.handlers[eventType][id] = handler
	return id
}

// Unsubscribe detaches a handler registered with Subscribe.
func (s *Session) Unsubscribe(eventType string, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if handlers, ok := s.handlers[eventType]; ok {
		delete(handlers, id)
		if len(handlers) == 0 {
			delete(s.handlers, eventType)
		}
	}
}

// Close tears the connection down. Pending calls fail with ErrClosed.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closed)
		s.writeMu.Lock()
		_ = s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "client closed"),
			time.Now().Add(time.Second),
		)
		s.writeMu.Unlock()
		err = s.conn.Close()
	})
	return err
}

func (s *Session) readLoop() {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if s.Connected() {
				s.logger.Warn("read loop ended",
					logging.Error(err),
					logging.String(logging.FieldEventType, "session_read_failed"),
				)
			}
			s.Close()
			return
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			s.logger.Warn("discarding malformed frame", logging.Error(err))
			continue
		}

		switch env.Op {
		case opResponse:
			var resp responsePayload
			if err := json.Unmarshal(env.D, &resp); err != nil {
				s.logger.Warn("discarding malformed response", logging.Error(err))
				continue
			}
			s.mu.Lock()
			ch, ok := s.pending[resp.RequestID]
			s.mu.Unlock()
			if ok {
				ch <- resp
			}
		case opEvent:
			var event eventPayload
			if err := json.Unmarshal(env.D, &event); err != nil {
				s.logger.Warn("discarding malformed event", logging.Error(err))
				continue
			}
			s.enqueueEvent(event)
		}
	}
}

// enqueueEvent hands an event to the dispatch loop so a slow or re-entrant
// handler never stalls the socket reader.
func (s *Session) enqueueEvent(event eventPayload) {
	s.eventMu.Lock()
	s.eventQueue = append(s.eventQueue, event)
	s.eventMu.Unlock()
	select {
	case s.eventWake <- struct{}{}:
	default:
	}
}

func (s *Session) dispatchLoop() {
	for {
		s.eventMu.Lock()
		if len(s.eventQueue) == 0 {
			s.eventMu.Unlock()
			select {
			case <-s.closed:
				return
			case <-s.eventWake:
			}
			continue
		}
		event := s.eventQueue[0]
		s.eventQueue = s.eventQueue[1:]
		s.eventMu.Unlock()
		s.dispatch(event)
	}
}

func (s *Session) dispatch(event eventPayload) {
	s.mu.Lock()
	registered := s.handlers[event.EventType]
	ids := make([]int, 0, len(registered))
	for id := range registered {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]EventHandler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, registered[id])
	}
	s.mu.Unlock()

	for _, handler := range handlers {
		handler(event.EventData)
	}
}

func writeEnvelope(conn *websocket.Conn, op int, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	return conn.WriteJSON(envelope{Op: op, D: data})
}

func readPayload(conn *websocket.Conn, wantOp int, out any) error {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return err
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode frame: %w", err)
	}
	if env.Op != wantOp {
		return fmt.Errorf("unexpected opcode %d, want %d", env.Op, wantOp)
	}
	if err := json.Unmarshal(env.D, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
