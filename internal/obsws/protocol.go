package obsws

import "encoding/json"

// obs-websocket v5 opcodes.
const (
	opHello      = 0
	opIdentify   = 1
	opIdentified = 2
	opEvent      = 5
	opRequest    = 6
	opResponse   = 7
)

// rpcVersion is the protocol revision this client negotiates.
const rpcVersion = 1

// subprotocol is the WebSocket subprotocol for JSON framing.
const subprotocol = "obswebsocket.json"

// eventSubscriptionAll requests every non-high-volume event category.
const eventSubscriptionAll = (1 << 11) - 1

type envelope struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d"`
}

type helloPayload struct {
	OBSWebSocketVersion string `json:"obsWebSocketVersion"`
	RPCVersion          int    `json:"rpcVersion"`
	Authentication      *struct {
		Challenge string `json:"challenge"`
		Salt      string `json:"salt"`
	} `json:"authentication"`
}

type identifyPayload struct {
	RPCVersion         int    `json:"rpcVersion"`
	Authentication     string `json:"authentication,omitempty"`
	EventSubscriptions int    `json:"eventSubscriptions"`
}

type identifiedPayload struct {
	NegotiatedRPCVersion int `json:"negotiatedRpcVersion"`
}

type requestPayload struct {
	RequestType string `json:"requestType"`
	RequestID   string `json:"requestId"`
	RequestData any    `json:"requestData,omitempty"`
}

type responsePayload struct {
	RequestType   string `json:"requestType"`
	RequestID     string `json:"requestId"`
	RequestStatus struct {
		Result  bool   `json:"result"`
		Code    int    `json:"code"`
		Comment string `json:"comment"`
	} `json:"requestStatus"`
	ResponseData json.RawMessage `json:"responseData"`
}

type eventPayload struct {
	EventType string          `json:"eventType"`
	EventData json.RawMessage `json:"eventData"`
}
