package control

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"scenedeck/internal/logging"
	"scenedeck/internal/obsws"
)

// fakeCaller records calls and replays canned responses keyed by request
// type.
type fakeCaller struct {
	connected bool
	responses map[string]any
	errs      map[string]error
	calls     []recordedCall
}

type recordedCall struct {
	requestType string
	params      any
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{
		connected: true,
		responses: make(map[string]any),
		errs:      make(map[string]error),
	}
}

func (f *fakeCaller) Call(_ context.Context, requestType string, params any, out any) error {
	f.calls = append(f.calls, recordedCall{requestType: requestType, params: params})
	if err, ok := f.errs[requestType]; ok {
		return err
	}
	resp, ok := f.responses[requestType]
	if !ok || out == nil {
		return nil
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (f *fakeCaller) Connected() bool {
	return f.connected
}

func (f *fakeCaller) lastCall() recordedCall {
	if len(f.calls) == 0 {
		return recordedCall{}
	}
	return f.calls[len(f.calls)-1]
}

func TestGetSceneListOrdersFromResponse(t *testing.T) {
	caller := newFakeCaller()
	caller.responses["GetSceneList"] = map[string]any{
		"currentProgramSceneName": "Interview",
		"scenes": []map[string]any{
			{"sceneName": "Break", "sceneIndex": 0},
			{"sceneName": "Interview", "sceneIndex": 1},
		},
	}
	client := NewClient(caller, logging.NewNop())

	list, err := client.GetSceneList(context.Background())
	if err != nil {
		t.Fatalf("GetSceneList: %v", err)
	}
	if list.CurrentProgramSceneName != "Interview" {
		t.Fatalf("program = %q", list.CurrentProgramSceneName)
	}
	if len(list.Scenes) != 2 || list.Scenes[0].SceneName != "Break" {
		t.Fatalf("scenes = %+v", list.Scenes)
	}
}

func TestReplayBufferStatusDegradesToInactive(t *testing.T) {
	caller := newFakeCaller()
	caller.errs["GetReplayBufferStatus"] = &obsws.RequestError{
		RequestType: "GetReplayBufferStatus",
		Code:        604,
		Comment:     "The replay buffer output is not configured.",
	}
	client := NewClient(caller, logging.NewNop())

	status := client.GetReplayBufferStatus(context.Background())
	if status.OutputActive {
		t.Fatal("expected inactive replay buffer")
	}
}

func TestReplayBufferActionsSwallowUnsupported(t *testing.T) {
	caller := newFakeCaller()
	rejection := &obsws.RequestError{RequestType: "x", Code: 604}
	caller.errs["StartReplayBuffer"] = rejection
	caller.errs["ToggleReplayBuffer"] = rejection
	caller.errs["SaveReplayBuffer"] = rejection
	caller.errs["GetLastReplayBufferReplay"] = rejection
	client := NewClient(caller, logging.NewNop())

	// None of these may panic or surface the rejection.
	client.StartReplayBuffer(context.Background())
	client.ToggleReplayBuffer(context.Background())
	client.SaveReplayBuffer(context.Background())
	if path := client.GetLastReplayBufferReplay(context.Background()); path.SavedReplayPath != "" {
		t.Fatalf("path = %q, want empty", path.SavedReplayPath)
	}
}

func TestScreenshotEmptyWhenDisconnected(t *testing.T) {
	caller := newFakeCaller()
	caller.connected = false
	client := NewClient(caller, logging.NewNop())

	shot := client.GetSourceScreenshot(context.Background(), "Interview")
	if shot.ImageData != "" {
		t.Fatalf("image data = %q, want empty", shot.ImageData)
	}
	if len(caller.calls) != 0 {
		t.Fatalf("expected no remote call, got %d", len(caller.calls))
	}
}

func TestScreenshotEmptyOnFailure(t *testing.T) {
	caller := newFakeCaller()
	caller.errs["GetSourceScreenshot"] = errors.New("source not found")
	client := NewClient(caller, logging.NewNop())

	shot := client.GetSourceScreenshot(context.Background(), "Missing")
	if shot.ImageData != "" {
		t.Fatalf("image data = %q, want empty", shot.ImageData)
	}
}

func TestScreenshotRequestsFixedFrame(t *testing.T) {
	caller := newFakeCaller()
	caller.responses["GetSourceScreenshot"] = map[string]any{
		"imageData": "data:image/webp;base64,AAAA",
	}
	client := NewClient(caller, logging.NewNop())

	shot := client.GetSourceScreenshot(context.Background(), "Interview")
	if shot.ImageData == "" {
		t.Fatal("expected image data")
	}

	data, err := json.Marshal(caller.lastCall().params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	var params struct {
		ImageFormat             string `json:"imageFormat"`
		ImageWidth              int    `json:"imageWidth"`
		ImageHeight             int    `json:"imageHeight"`
		ImageCompressionQuality int    `json:"imageCompressionQuality"`
	}
	if err := json.Unmarshal(data, &params); err != nil {
		t.Fatalf("unmarshal params: %v", err)
	}
	if params.ImageFormat != "webp" || params.ImageWidth != 480 || params.ImageHeight != 270 || params.ImageCompressionQuality != 50 {
		t.Fatalf("params = %+v", params)
	}
}

func TestSpecialInputNames(t *testing.T) {
	special := SpecialInputs{
		Desktop1: "Desktop Audio",
		Mic1:     "Mic/Aux",
		Mic2:     "Mic/Aux", // duplicates survive here, dedup happens downstream
	}
	names := special.Names()
	if len(names) != 3 {
		t.Fatalf("names = %v", names)
	}
}

func TestVolumeSetterSendsDb(t *testing.T) {
	caller := newFakeCaller()
	client := NewClient(caller, logging.NewNop())

	if err := client.SetInputVolume(context.Background(), "Mic/Aux", -12.5); err != nil {
		t.Fatalf("SetInputVolume: %v", err)
	}
	data, err := json.Marshal(caller.lastCall().params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	var params struct {
		InputName     string  `json:"inputName"`
		InputVolumeDb float64 `json:"inputVolumeDb"`
	}
	if err := json.Unmarshal(data, &params); err != nil {
		t.Fatalf("unmarshal params: %v", err)
	}
	if params.InputName != "Mic/Aux" || params.InputVolumeDb != -12.5 {
		t.Fatalf("params = %+v", params)
	}
}
