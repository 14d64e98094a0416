package ipc

import "scenedeck/internal/state"

// Snapshot mirrors the reconciler's studio view for IPC callers.
type Snapshot = state.Snapshot

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse carries daemon runtime information.
type StatusResponse struct {
	Running   bool   `json:"running"`
	Connected bool   `json:"connected"`
	Address   string `json:"address"`
	LockPath  string `json:"lock_path"`
	PID       int    `json:"pid"`
}

// SnapshotRequest fetches the current studio snapshot.
type SnapshotRequest struct{}

// SnapshotResponse carries the studio snapshot.
type SnapshotResponse struct {
	Snapshot Snapshot `json:"snapshot"`
}

// ConnectRequest opens a session to the studio. Empty fields fall back to the
// daemon's configured address and password.
type ConnectRequest struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

// ConnectResponse reports the connect outcome.
type ConnectResponse struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
}

// DisconnectRequest closes the active session.
type DisconnectRequest struct{}

// DisconnectResponse acknowledges a disconnect.
type DisconnectResponse struct {
	Disconnected bool `json:"disconnected"`
}

// RefreshRequest forces a full state re-fetch.
type RefreshRequest struct{}

// RefreshResponse acknowledges a refresh.
type RefreshResponse struct{}

// SwitchSceneRequest routes a scene change by studio mode.
type SwitchSceneRequest struct {
	Scene string `json:"scene"`
}

// SwitchSceneResponse acknowledges a scene switch.
type SwitchSceneResponse struct{}

// SetProgramSceneRequest changes the program scene unconditionally.
type SetProgramSceneRequest struct {
	Scene string `json:"scene"`
}

// SetProgramSceneResponse acknowledges a program change.
type SetProgramSceneResponse struct{}

// SetPreviewSceneRequest changes the preview scene.
type SetPreviewSceneRequest struct {
	Scene string `json:"scene"`
}

// SetPreviewSceneResponse acknowledges a preview change.
type SetPreviewSceneResponse struct{}

// CreateSceneRequest adds a scene.
type CreateSceneRequest struct {
	Scene string `json:"scene"`
}

// CreateSceneResponse acknowledges scene creation.
type CreateSceneResponse struct{}

// RemoveSceneRequest deletes a scene.
type RemoveSceneRequest struct {
	Scene string `json:"scene"`
}

// RemoveSceneResponse acknowledges scene removal.
type RemoveSceneResponse struct{}

// RenameSceneRequest renames a scene.
type RenameSceneRequest struct {
	Scene   string `json:"scene"`
	NewName string `json:"new_name"`
}

// RenameSceneResponse acknowledges a rename.
type RenameSceneResponse struct{}

// SetVolumeRequest adjusts an input's level in dB.
type SetVolumeRequest struct {
	Input    string  `json:"input"`
	VolumeDb float64 `json:"volume_db"`
}

// SetVolumeResponse acknowledges a volume change.
type SetVolumeResponse struct{}

// SetMuteRequest sets an input's mute flag.
type SetMuteRequest struct {
	Input string `json:"input"`
	Muted bool   `json:"muted"`
}

// SetMuteResponse acknowledges a mute change.
type SetMuteResponse struct{}

// ToggleMuteRequest flips an input's mute flag.
type ToggleMuteRequest struct {
	Input string `json:"input"`
}

// ToggleMuteResponse acknowledges a mute toggle.
type ToggleMuteResponse struct{}

// Output names accepted by ToggleOutputRequest.
const (
	OutputStream       = "stream"
	OutputRecord       = "record"
	OutputVirtualCam   = "virtualcam"
	OutputReplayBuffer = "replay"
)

// ToggleOutputRequest flips one of the studio outputs.
type ToggleOutputRequest struct {
	Output string `json:"output"`
}

// ToggleOutputResponse acknowledges an output toggle.
type ToggleOutputResponse struct{}

// RecordPauseRequest pauses or resumes an active recording.
type RecordPauseRequest struct {
	Resume bool `json:"resume"`
}

// RecordPauseResponse acknowledges a pause or resume.
type RecordPauseResponse struct{}

// SaveReplayRequest flushes the replay buffer to disk.
type SaveReplayRequest struct{}

// SaveReplayResponse carries the saved replay path, empty when the replay
// output is unavailable.
type SaveReplayResponse struct {
	Path string `json:"path"`
}

// SetStudioModeRequest enables or disables studio mode.
type SetStudioModeRequest struct {
	Enabled bool `json:"enabled"`
}

// SetStudioModeResponse acknowledges a studio mode change.
type SetStudioModeResponse struct{}

// SetTransitionRequest selects the active scene transition.
type SetTransitionRequest struct {
	Transition string `json:"transition"`
}

// SetTransitionResponse acknowledges a transition change.
type SetTransitionResponse struct{}

// SetTransitionDurationRequest sets the transition duration.
type SetTransitionDurationRequest struct {
	DurationMillis int `json:"duration_millis"`
}

// SetTransitionDurationResponse acknowledges a duration change.
type SetTransitionDurationResponse struct{}

// TriggerTransitionRequest fires the studio mode transition.
type TriggerTransitionRequest struct{}

// TriggerTransitionResponse acknowledges a triggered transition.
type TriggerTransitionResponse struct{}

// RemoveSceneItemRequest deletes an item from a scene.
type RemoveSceneItemRequest struct {
	Scene  string `json:"scene"`
	ItemID int    `json:"item_id"`
}

// RemoveSceneItemResponse acknowledges item removal.
type RemoveSceneItemResponse struct{}

// SetSceneItemEnabledRequest shows or hides a scene item.
type SetSceneItemEnabledRequest struct {
	Scene   string `json:"scene"`
	ItemID  int    `json:"item_id"`
	Enabled bool   `json:"enabled"`
}

// SetSceneItemEnabledResponse acknowledges a visibility change.
type SetSceneItemEnabledResponse struct{}

// ListFiltersRequest fetches a source's filter chain.
type ListFiltersRequest struct {
	Source string `json:"source"`
}

// FilterEntry mirrors the reconciler's filter record for IPC callers.
type FilterEntry = state.FilterEntry

// ListFiltersResponse carries a source's filters.
type ListFiltersResponse struct {
	Filters []FilterEntry `json:"filters"`
}

// ScreenshotRequest captures a source image.
type ScreenshotRequest struct {
	Source string `json:"source"`
}

// ScreenshotResponse carries the capture as a base64 data URI, empty when the
// capture failed.
type ScreenshotResponse struct {
	ImageData string `json:"image_data"`
}

// AskRequest sends an operator message to the director.
type AskRequest struct {
	Message string `json:"message"`
}

// AskResponse carries the director's reply and any extracted scene
// suggestion. The suggestion is advisory only.
type AskResponse struct {
	Text           string `json:"text"`
	SuggestedScene string `json:"suggested_scene"`
}

// ApplyDirectiveRequest executes a previously returned scene suggestion.
type ApplyDirectiveRequest struct {
	Scene string `json:"scene"`
}

// ApplyDirectiveResponse acknowledges an applied suggestion.
type ApplyDirectiveResponse struct{}
