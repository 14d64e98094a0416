package state

import "encoding/json"

// Event types delivered by the remote's push feed.
const (
	eventProgramSceneChanged = "CurrentProgramSceneChanged"
	eventPreviewSceneChanged = "CurrentPreviewSceneChanged"
	eventInputVolumeChanged  = "InputVolumeChanged"
	eventInputMuteChanged    = "InputMuteStateChanged"
	eventStreamStateChanged  = "StreamStateChanged"
	eventRecordStateChanged  = "RecordStateChanged"
	eventVirtualCamChanged   = "VirtualcamStateChanged"
	eventReplayBufferChanged = "ReplayBufferStateChanged"
	eventStudioModeChanged   = "StudioModeStateChanged"
)

type sceneChangedEvent struct {
	SceneName string `json:"sceneName"`
}

type volumeChangedEvent struct {
	InputName     string  `json:"inputName"`
	InputVolumeDb float64 `json:"inputVolumeDb"`
}

type muteChangedEvent struct {
	InputName  string `json:"inputName"`
	InputMuted bool   `json:"inputMuted"`
}

type outputStateEvent struct {
	OutputActive bool `json:"outputActive"`
}

type studioModeEvent struct {
	StudioModeEnabled bool `json:"studioModeEnabled"`
}

// subscribe registers the push-event handlers. Each handler performs a
// targeted merge into the snapshot, never a full refetch, so interactive
// controls stay latency-free. The one exception is a program scene change,
// which refetches the new scene's item stack because items are not tracked
// incrementally.
func (r *Reconciler) subscribe() {
	r.on(eventProgramSceneChanged, func(data json.RawMessage) {
		var event sceneChangedEvent
		if json.Unmarshal(data, &event) != nil {
			return
		}
		r.mu.Lock()
		r.snap.CurrentScene = event.SceneName
		r.mu.Unlock()
		r.RefreshSceneItems(r.ctx, event.SceneName)
	})

	r.on(eventPreviewSceneChanged, func(data json.RawMessage) {
		var event sceneChangedEvent
		if json.Unmarshal(data, &event) != nil {
			return
		}
		r.mu.Lock()
		r.snap.PreviewScene = event.SceneName
		r.mu.Unlock()
	})

	r.on(eventInputVolumeChanged, func(data json.RawMessage) {
		var event volumeChangedEvent
		if json.Unmarshal(data, &event) != nil {
			return
		}
		r.mu.Lock()
		for i := range r.snap.Inputs {
			if r.snap.Inputs[i].Name == event.InputName {
				r.snap.Inputs[i].VolumeDb = event.InputVolumeDb
				break
			}
		}
		r.mu.Unlock()
	})

	r.on(eventInputMuteChanged, func(data json.RawMessage) {
		var event muteChangedEvent
		if json.Unmarshal(data, &event) != nil {
			return
		}
		r.mu.Lock()
		for i := range r.snap.Inputs {
			if r.snap.Inputs[i].Name == event.InputName {
				r.snap.Inputs[i].Muted = event.InputMuted
				break
			}
		}
		r.mu.Unlock()
	})

	r.on(eventStreamStateChanged, func(data json.RawMessage) {
		var event outputStateEvent
		if json.Unmarshal(data, &event) != nil {
			return
		}
		r.mu.Lock()
		r.snap.Outputs.Streaming = event.OutputActive
		r.mu.Unlock()
	})

	r.on(eventRecordStateChanged, func(data json.RawMessage) {
		var event outputStateEvent
		if json.Unmarshal(data, &event) != nil {
			return
		}
		r.mu.Lock()
		r.snap.Outputs.Recording = event.OutputActive
		r.mu.Unlock()
	})

	r.on(eventVirtualCamChanged, func(data json.RawMessage) {
		var event outputStateEvent
		if json.Unmarshal(data, &event) != nil {
			return
		}
		r.mu.Lock()
		r.snap.Outputs.VirtualCamActive = event.OutputActive
		r.mu.Unlock()
	})

	r.on(eventReplayBufferChanged, func(data json.RawMessage) {
		var event outputStateEvent
		if json.Unmarshal(data, &event) != nil {
			return
		}
		r.mu.Lock()
		r.snap.Outputs.ReplayBuffering = event.OutputActive
		r.mu.Unlock()
	})

	r.on(eventStudioModeChanged, func(data json.RawMessage) {
		var event studioModeEvent
		if json.Unmarshal(data, &event) != nil {
			return
		}
		r.mu.Lock()
		r.snap.StudioMode = event.StudioModeEnabled
		r.mu.Unlock()
	})
}

func (r *Reconciler) on(eventType string, handler func(json.RawMessage)) {
	id := r.events.Subscribe(eventType, handler)
	r.mu.Lock()
	r.subs = append(r.subs, subscription{eventType: eventType, id: id})
	r.mu.Unlock()
}
