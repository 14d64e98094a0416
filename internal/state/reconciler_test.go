package state

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"scenedeck/internal/control"
	"scenedeck/internal/logging"
	"scenedeck/internal/obsws"
)

type fakeFacade struct {
	scenes      control.SceneList
	studio      control.StudioMode
	transitions control.TransitionList
	kinds       control.InputKindList
	profiles    control.ProfileList
	collections control.SceneCollectionList

	sceneItems map[string]control.SceneItemList
	inputs     control.InputList
	special    control.SpecialInputs
	volumes    map[string]control.InputVolume
	mutes      map[string]control.InputMute
	volumeErrs map[string]error

	screenshot control.Screenshot
	stats      control.Stats
	stream     control.StreamStatus
	record     control.RecordStatus
	vcam       control.OutputActive
	replay     control.OutputActive

	sceneListErr error
	statsErr     error

	sceneItemCalls []string
}

func newFakeFacade() *fakeFacade {
	return &fakeFacade{
		sceneItems: make(map[string]control.SceneItemList),
		volumes:    make(map[string]control.InputVolume),
		mutes:      make(map[string]control.InputMute),
		volumeErrs: make(map[string]error),
	}
}

func (f *fakeFacade) GetSceneList(context.Context) (control.SceneList, error) {
	return f.scenes, f.sceneListErr
}

func (f *fakeFacade) GetStudioModeEnabled(context.Context) (control.StudioMode, error) {
	return f.studio, nil
}

func (f *fakeFacade) GetSceneTransitionList(context.Context) (control.TransitionList, error) {
	return f.transitions, nil
}

func (f *fakeFacade) GetInputKindList(context.Context) (control.InputKindList, error) {
	return f.kinds, nil
}

func (f *fakeFacade) GetProfileList(context.Context) (control.ProfileList, error) {
	return f.profiles, nil
}

func (f *fakeFacade) GetSceneCollectionList(context.Context) (control.SceneCollectionList, error) {
	return f.collections, nil
}

func (f *fakeFacade) GetSceneItemList(_ context.Context, sceneName string) (control.SceneItemList, error) {
	f.sceneItemCalls = append(f.sceneItemCalls, sceneName)
	return f.sceneItems[sceneName], nil
}

func (f *fakeFacade) GetInputList(context.Context, string) (control.InputList, error) {
	return f.inputs, nil
}

func (f *fakeFacade) GetSpecialInputs(context.Context) (control.SpecialInputs, error) {
	return f.special, nil
}

func (f *fakeFacade) GetInputVolume(_ context.Context, inputName string) (control.InputVolume, error) {
	if err, ok := f.volumeErrs[inputName]; ok {
		return control.InputVolume{}, err
	}
	return f.volumes[inputName], nil
}

func (f *fakeFacade) GetInputMute(_ context.Context, inputName string) (control.InputMute, error) {
	return f.mutes[inputName], nil
}

func (f *fakeFacade) GetSourceScreenshot(context.Context, string) control.Screenshot {
	return f.screenshot
}

func (f *fakeFacade) GetStats(context.Context) (control.Stats, error) {
	return f.stats, f.statsErr
}

func (f *fakeFacade) GetStreamStatus(context.Context) (control.StreamStatus, error) {
	return f.stream, nil
}

func (f *fakeFacade) GetRecordStatus(context.Context) (control.RecordStatus, error) {
	return f.record, nil
}

func (f *fakeFacade) GetVirtualCamStatus(context.Context) (control.OutputActive, error) {
	return f.vcam, nil
}

func (f *fakeFacade) GetReplayBufferStatus(context.Context) control.OutputActive {
	return f.replay
}

// fakeEvents captures handlers so tests can feed events directly.
type fakeEvents struct {
	handlers map[string]map[int]obsws.EventHandler
	nextID   int
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{handlers: make(map[string]map[int]obsws.EventHandler)}
}

func (f *fakeEvents) Subscribe(eventType string, handler obsws.EventHandler) int {
	f.nextID++
	if f.handlers[eventType] == nil {
		f.handlers[eventType] = make(map[int]obsws.EventHandler)
	}
	f.handlers[eventType][f.nextID] = handler
	return f.nextID
}

func (f *fakeEvents) Unsubscribe(eventType string, id int) {
	delete(f.handlers[eventType], id)
}

func (f *fakeEvents) emit(t *testing.T, eventType string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	for _, handler := range f.handlers[eventType] {
		handler(data)
	}
}

func seededFacade() *fakeFacade {
	facade := newFakeFacade()
	facade.scenes = control.SceneList{
		CurrentProgramSceneName: "Interview",
		CurrentPreviewSceneName: "Break",
		Scenes: []control.Scene{
			{SceneName: "Interview", SceneIndex: 0},
			{SceneName: "Break", SceneIndex: 1},
		},
	}
	facade.transitions = control.TransitionList{
		CurrentSceneTransitionName:     "Fade",
		CurrentSceneTransitionDuration: 300,
		Transitions:                    []control.Transition{{TransitionName: "Fade"}, {TransitionName: "Cut"}},
	}
	facade.kinds = control.InputKindList{InputKinds: []string{"ffmpeg_source"}}
	facade.profiles = control.ProfileList{Profiles: []string{"Default"}}
	facade.collections = control.SceneCollectionList{SceneCollections: []string{"Main"}}
	facade.sceneItems["Interview"] = control.SceneItemList{SceneItems: []control.SceneItem{
		{SceneItemID: 1, SourceName: "Camera", InputKind: "v4l2_input", SceneItemEnabled: true},
	}}
	return facade
}

func TestBootstrapPopulatesSnapshot(t *testing.T) {
	facade := seededFacade()
	facade.inputs = control.InputList{Inputs: []control.Input{
		{InputName: "Mic/Aux", InputKind: "pulse_input_capture"},
	}}
	facade.volumes["Mic/Aux"] = control.InputVolume{InputVolumeDb: -6}
	facade.mutes["Mic/Aux"] = control.InputMute{InputMuted: true}

	r := New(facade, newFakeEvents(), logging.NewNop())
	if err := r.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	snap := r.Snapshot()
	if snap.CurrentScene != "Interview" || snap.PreviewScene != "Break" {
		t.Fatalf("scenes = %q/%q", snap.CurrentScene, snap.PreviewScene)
	}
	if len(snap.Scenes) != 2 {
		t.Fatalf("scene pool = %+v", snap.Scenes)
	}
	if snap.Transition.CurrentName != "Fade" || snap.Transition.DurationMillis != 300 {
		t.Fatalf("transition = %+v", snap.Transition)
	}
	if len(snap.Transition.AvailableKinds) != 2 {
		t.Fatalf("available transitions = %v", snap.Transition.AvailableKinds)
	}
	if len(snap.SceneItems) != 1 || snap.SceneItems[0].SourceName != "Camera" {
		t.Fatalf("scene items = %+v", snap.SceneItems)
	}
	if len(snap.Inputs) != 1 || snap.Inputs[0].VolumeDb != -6 || !snap.Inputs[0].Muted {
		t.Fatalf("inputs = %+v", snap.Inputs)
	}
	if len(snap.Profiles) != 1 || len(snap.SceneCollections) != 1 {
		t.Fatalf("profiles/collections = %v/%v", snap.Profiles, snap.SceneCollections)
	}
}

func TestBootstrapAbortsOnFirstFailure(t *testing.T) {
	facade := seededFacade()
	facade.sceneListErr = errors.New("socket closed")

	r := New(facade, newFakeEvents(), logging.NewNop())
	if err := r.Bootstrap(context.Background()); err == nil {
		t.Fatal("expected bootstrap error")
	}
	if len(facade.sceneItemCalls) != 0 {
		t.Fatalf("scene items fetched despite aborted bootstrap: %v", facade.sceneItemCalls)
	}
}

func TestRefreshInputsDeduplicatesSpecialInputs(t *testing.T) {
	facade := seededFacade()
	facade.inputs = control.InputList{Inputs: []control.Input{
		{InputName: "Desktop Audio", InputKind: "pulse_output_capture"},
		{InputName: "Webcam", InputKind: "v4l2_input"},
	}}
	facade.special = control.SpecialInputs{Desktop1: "Desktop Audio", Mic1: "Mic/Aux"}

	r := New(facade, newFakeEvents(), logging.NewNop())
	r.RefreshInputs(context.Background())

	snap := r.Snapshot()
	if len(snap.Inputs) != 3 {
		t.Fatalf("inputs = %+v, want 3 entries", snap.Inputs)
	}
	byName := make(map[string]InputState, len(snap.Inputs))
	for _, input := range snap.Inputs {
		byName[input.Name] = input
	}
	if byName["Desktop Audio"].Kind != "pulse_output_capture" {
		t.Fatalf("catalog entry overwritten: %+v", byName["Desktop Audio"])
	}
	if byName["Mic/Aux"].Kind != synthesizedKind {
		t.Fatalf("synthesized kind = %q, want %q", byName["Mic/Aux"].Kind, synthesizedKind)
	}
}

func TestRefreshInputsDefaultsFailedEnrichment(t *testing.T) {
	facade := seededFacade()
	facade.inputs = control.InputList{Inputs: []control.Input{
		{InputName: "A"}, {InputName: "B"}, {InputName: "C"},
	}}
	facade.volumes["A"] = control.InputVolume{InputVolumeDb: -3}
	facade.volumes["C"] = control.InputVolume{InputVolumeDb: -9}
	facade.mutes["C"] = control.InputMute{InputMuted: true}
	facade.volumeErrs["B"] = errors.New("no audio")

	r := New(facade, newFakeEvents(), logging.NewNop())
	r.RefreshInputs(context.Background())

	snap := r.Snapshot()
	if len(snap.Inputs) != 3 {
		t.Fatalf("inputs = %+v, want all 3 rows", snap.Inputs)
	}
	if snap.Inputs[0].VolumeDb != -3 {
		t.Fatalf("A volume = %v", snap.Inputs[0].VolumeDb)
	}
	if snap.Inputs[1].VolumeDb != 0 || snap.Inputs[1].Muted {
		t.Fatalf("B not defaulted: %+v", snap.Inputs[1])
	}
	if snap.Inputs[2].VolumeDb != -9 || !snap.Inputs[2].Muted {
		t.Fatalf("C = %+v", snap.Inputs[2])
	}
}

func TestVolumeEventMergesTargetedRow(t *testing.T) {
	facade := seededFacade()
	facade.inputs = control.InputList{Inputs: []control.Input{
		{InputName: "Mic/Aux"}, {InputName: "Desktop Audio"},
	}}
	events := newFakeEvents()

	r := New(facade, events, logging.NewNop())
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer r.Stop()

	events.emit(t, "InputVolumeChanged", map[string]any{
		"inputName":     "Mic/Aux",
		"inputVolumeDb": -18.0,
	})
	events.emit(t, "InputMuteStateChanged", map[string]any{
		"inputName":  "Mic/Aux",
		"inputMuted": true,
	})

	snap := r.Snapshot()
	var mic InputState
	for _, input := range snap.Inputs {
		if input.Name == "Mic/Aux" {
			mic = input
		}
	}
	if mic.VolumeDb != -18 {
		t.Fatalf("volume = %v, want -18", mic.VolumeDb)
	}
	if !mic.Muted {
		t.Fatal("mute event not merged")
	}
}

func TestProgramSceneChangeRefetchesItems(t *testing.T) {
	facade := seededFacade()
	facade.sceneItems["Break"] = control.SceneItemList{SceneItems: []control.SceneItem{
		{SceneItemID: 7, SourceName: "BRB Card", SceneItemEnabled: true},
	}}
	events := newFakeEvents()

	r := New(facade, events, logging.NewNop())
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer r.Stop()

	events.emit(t, "CurrentProgramSceneChanged", map[string]any{"sceneName": "Break"})

	snap := r.Snapshot()
	if snap.CurrentScene != "Break" {
		t.Fatalf("current scene = %q", snap.CurrentScene)
	}
	if len(snap.SceneItems) != 1 || snap.SceneItems[0].SourceName != "BRB Card" {
		t.Fatalf("scene items = %+v", snap.SceneItems)
	}
}

func TestOutputEventsMergeFlags(t *testing.T) {
	facade := seededFacade()
	events := newFakeEvents()

	r := New(facade, events, logging.NewNop())
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer r.Stop()

	events.emit(t, "StreamStateChanged", map[string]any{"outputActive": true})
	events.emit(t, "VirtualcamStateChanged", map[string]any{"outputActive": true})
	events.emit(t, "StudioModeStateChanged", map[string]any{"studioModeEnabled": true})

	snap := r.Snapshot()
	if !snap.Outputs.Streaming || !snap.Outputs.VirtualCamActive || !snap.StudioMode {
		t.Fatalf("flags = %+v studio=%v", snap.Outputs, snap.StudioMode)
	}
}

func TestPollTickMergesBulkState(t *testing.T) {
	facade := seededFacade()
	facade.screenshot = control.Screenshot{ImageData: "data:image/webp;base64,AAAA"}
	facade.stats = control.Stats{CPUUsage: 12.5, ActiveFPS: 60}
	facade.stream = control.StreamStatus{OutputActive: true, OutputTimecode: "00:04:13.000"}
	facade.record = control.RecordStatus{OutputActive: true, OutputPaused: true}
	facade.replay = control.OutputActive{OutputActive: true}

	r := New(facade, newFakeEvents(), logging.NewNop())
	if err := r.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	r.pollTick(context.Background())

	snap := r.Snapshot()
	if snap.ProgramScreenshot == "" {
		t.Fatal("screenshot not merged")
	}
	if snap.Stats.CPUPercent != 12.5 || snap.Stats.FPS != 60 || snap.Stats.Timecode != "00:04:13.000" {
		t.Fatalf("stats = %+v", snap.Stats)
	}
	if !snap.Outputs.Streaming || !snap.Outputs.Recording || !snap.Outputs.RecordPaused || !snap.Outputs.ReplayBuffering {
		t.Fatalf("outputs = %+v", snap.Outputs)
	}

	// An empty capture keeps the previous frame.
	facade.screenshot = control.Screenshot{}
	r.pollTick(context.Background())
	if r.Snapshot().ProgramScreenshot == "" {
		t.Fatal("empty capture overwrote previous frame")
	}
}

func TestPollTickIdempotentAgainstUnchangedRemote(t *testing.T) {
	facade := seededFacade()
	facade.screenshot = control.Screenshot{ImageData: "data:image/webp;base64,AAAA"}
	facade.stats = control.Stats{CPUUsage: 12.5, ActiveFPS: 60}
	facade.stream = control.StreamStatus{OutputActive: true, OutputTimecode: "00:04:13.000"}
	facade.record = control.RecordStatus{OutputActive: true}
	facade.inputs = control.InputList{Inputs: []control.Input{
		{InputName: "Mic/Aux", InputKind: "pulse_input_capture"},
	}}
	facade.volumes["Mic/Aux"] = control.InputVolume{InputVolumeDb: -6}

	r := New(facade, newFakeEvents(), logging.NewNop())
	if err := r.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	r.pollTick(context.Background())
	first := r.Snapshot()
	r.pollTick(context.Background())
	second := r.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("snapshots diverged across ticks:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestPollTickToleratesStatsFailure(t *testing.T) {
	facade := seededFacade()
	facade.statsErr = errors.New("busy")
	facade.stream = control.StreamStatus{OutputActive: true}

	r := New(facade, newFakeEvents(), logging.NewNop())
	r.pollTick(context.Background())

	if !r.Snapshot().Outputs.Streaming {
		t.Fatal("stats failure blocked the stream fetch")
	}
}

func TestStopUnsubscribesAndMarksDisconnected(t *testing.T) {
	facade := seededFacade()
	events := newFakeEvents()

	r := New(facade, events, logging.NewNop(), WithPollInterval(10*time.Millisecond))
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !r.Snapshot().Connected {
		t.Fatal("expected connected snapshot after start")
	}
	r.Stop()

	if r.Snapshot().Connected {
		t.Fatal("snapshot still connected after stop")
	}
	for eventType, handlers := range events.handlers {
		if len(handlers) != 0 {
			t.Fatalf("handlers still registered for %s", eventType)
		}
	}
}

func TestSnapshotIsolatedFromLaterMutation(t *testing.T) {
	facade := seededFacade()
	r := New(facade, newFakeEvents(), logging.NewNop())
	if err := r.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	snap := r.Snapshot()
	before := snap.Scenes[0].Name

	facade.scenes.Scenes[0].SceneName = "Renamed"
	if err := r.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	if snap.Scenes[0].Name != before {
		t.Fatal("earlier snapshot mutated by later refresh")
	}
}

func TestClampVolumeDb(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-120, -60},
		{-60, -60},
		{-12.5, -12.5},
		{0, 0},
		{6, 0},
	}
	for _, tc := range cases {
		if got := ClampVolumeDb(tc.in); got != tc.want {
			t.Errorf("ClampVolumeDb(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
