package control

// Scene is one entry of the studio's ordered scene list.
type Scene struct {
	SceneName  string `json:"sceneName"`
	SceneIndex int    `json:"sceneIndex"`
}

// SceneList is the scene catalog plus the program and preview selections.
type SceneList struct {
	CurrentProgramSceneName string  `json:"currentProgramSceneName"`
	CurrentPreviewSceneName string  `json:"currentPreviewSceneName"`
	Scenes                  []Scene `json:"scenes"`
}

// GroupList names the studio's source groups.
type GroupList struct {
	Groups []string `json:"groups"`
}

// SceneItem is one source placed within a scene. IDs are scene-scoped and
// stable across source renames.
type SceneItem struct {
	SceneItemID      int    `json:"sceneItemId"`
	SceneItemIndex   int    `json:"sceneItemIndex"`
	SourceName       string `json:"sourceName"`
	InputKind        string `json:"inputKind"`
	SceneItemEnabled bool   `json:"sceneItemEnabled"`
	SceneItemLocked  bool   `json:"sceneItemLocked"`
}

// SceneItemList is the ordered item stack of one scene.
type SceneItemList struct {
	SceneItems []SceneItem `json:"sceneItems"`
}

// Input is one addressable source endpoint.
type Input struct {
	InputName string `json:"inputName"`
	InputKind string `json:"inputKind"`
}

// InputList is the raw input catalog.
type InputList struct {
	Inputs []Input `json:"inputs"`
}

// InputKindList names the available input kinds.
type InputKindList struct {
	InputKinds []string `json:"inputKinds"`
}

// SpecialInputs names the global audio endpoints (desktop/mic defaults).
// Unconfigured slots are empty strings.
type SpecialInputs struct {
	Desktop1 string `json:"desktop1"`
	Desktop2 string `json:"desktop2"`
	Mic1     string `json:"mic1"`
	Mic2     string `json:"mic2"`
	Mic3     string `json:"mic3"`
	Mic4     string `json:"mic4"`
}

// Names returns the configured special input names in slot order.
func (s SpecialInputs) Names() []string {
	var names []string
	for _, name := range []string{s.Desktop1, s.Desktop2, s.Mic1, s.Mic2, s.Mic3, s.Mic4} {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// InputVolume is the volume of one input in both multiplier and dB form.
type InputVolume struct {
	InputVolumeMul float64 `json:"inputVolumeMul"`
	InputVolumeDb  float64 `json:"inputVolumeDb"`
}

// InputMute is the mute flag of one input.
type InputMute struct {
	InputMuted bool `json:"inputMuted"`
}

// InputAudioTracks maps track numbers to membership.
type InputAudioTracks struct {
	InputAudioTracks map[string]bool `json:"inputAudioTracks"`
}

// InputSettings is the settings blob of one input.
type InputSettings struct {
	InputKind     string         `json:"inputKind"`
	InputSettings map[string]any `json:"inputSettings"`
}

// Filter is one entry in a source's filter chain. Chain order is significant.
type Filter struct {
	FilterName     string         `json:"filterName"`
	FilterKind     string         `json:"filterKind"`
	FilterIndex    int            `json:"filterIndex"`
	FilterEnabled  bool           `json:"filterEnabled"`
	FilterSettings map[string]any `json:"filterSettings"`
}

// FilterList is one source's filter chain.
type FilterList struct {
	Filters []Filter `json:"filters"`
}

// Transition is one available scene transition.
type Transition struct {
	TransitionName         string `json:"transitionName"`
	TransitionKind         string `json:"transitionKind"`
	TransitionFixed        bool   `json:"transitionFixed"`
	TransitionConfigurable bool   `json:"transitionConfigurable"`
}

// TransitionList is the transition catalog plus the current selection.
type TransitionList struct {
	CurrentSceneTransitionName     string       `json:"currentSceneTransitionName"`
	CurrentSceneTransitionKind     string       `json:"currentSceneTransitionKind"`
	CurrentSceneTransitionDuration int          `json:"currentSceneTransitionDuration"`
	Transitions                    []Transition `json:"transitions"`
}

// TransitionKindList names the available transition kinds.
type TransitionKindList struct {
	TransitionKinds []string `json:"transitionKinds"`
}

// TransitionCursor is the progress of an ongoing transition in [0, 1].
type TransitionCursor struct {
	TransitionCursor float64 `json:"transitionCursor"`
}

// MediaStatus is the playback state of one media input.
type MediaStatus struct {
	MediaState    string `json:"mediaState"`
	MediaDuration int64  `json:"mediaDuration"`
	MediaCursor   int64  `json:"mediaCursor"`
}

// StreamStatus is the state of the streaming output.
type StreamStatus struct {
	OutputActive       bool   `json:"outputActive"`
	OutputReconnecting bool   `json:"outputReconnecting"`
	OutputTimecode     string `json:"outputTimecode"`
	OutputDuration     int64  `json:"outputDuration"`
	OutputBytes        int64  `json:"outputBytes"`
}

// RecordStatus is the state of the recording output.
type RecordStatus struct {
	OutputActive   bool   `json:"outputActive"`
	OutputPaused   bool   `json:"outputPaused"`
	OutputTimecode string `json:"outputTimecode"`
	OutputDuration int64  `json:"outputDuration"`
	OutputBytes    int64  `json:"outputBytes"`
}

// OutputActive is the minimal activity flag shared by virtual-cam and
// replay-buffer status queries.
type OutputActive struct {
	OutputActive bool `json:"outputActive"`
}

// ReplayPath is the file path of the most recently saved replay.
type ReplayPath struct {
	SavedReplayPath string `json:"savedReplayPath"`
}

// StudioMode is the studio-mode flag.
type StudioMode struct {
	StudioModeEnabled bool `json:"studioModeEnabled"`
}

// Stats is one sample of the studio's runtime statistics.
type Stats struct {
	CPUUsage               float64 `json:"cpuUsage"`
	MemoryUsage            float64 `json:"memoryUsage"`
	ActiveFPS              float64 `json:"activeFps"`
	AverageFrameRenderTime float64 `json:"averageFrameRenderTime"`
	RenderTotalFrames      int64   `json:"renderTotalFrames"`
	RenderSkippedFrames    int64   `json:"renderSkippedFrames"`
}

// Version describes the remote studio build.
type Version struct {
	OBSVersion          string `json:"obsVersion"`
	OBSWebSocketVersion string `json:"obsWebSocketVersion"`
	Platform            string `json:"platform"`
	RPCVersion          int    `json:"rpcVersion"`
}

// HotkeyList names the studio's registered hotkeys.
type HotkeyList struct {
	Hotkeys []string `json:"hotkeys"`
}

// Screenshot is one encoded preview frame. The image is an opaque data URL;
// no decoding happens on this side.
type Screenshot struct {
	ImageData string `json:"imageData"`
}

// SourceActive reports whether a source is currently rendering.
type SourceActive struct {
	VideoActive  bool `json:"videoActive"`
	VideoShowing bool `json:"videoShowing"`
}

// ProfileList is the profile catalog plus the current selection.
type ProfileList struct {
	CurrentProfileName string   `json:"currentProfileName"`
	Profiles           []string `json:"profiles"`
}

// SceneCollectionList is the scene-collection catalog plus the current
// selection.
type SceneCollectionList struct {
	CurrentSceneCollectionName string   `json:"currentSceneCollectionName"`
	SceneCollections           []string `json:"sceneCollections"`
}

// VideoSettings is the studio's canvas and output geometry.
type VideoSettings struct {
	FPSNumerator   int `json:"fpsNumerator"`
	FPSDenominator int `json:"fpsDenominator"`
	BaseWidth      int `json:"baseWidth"`
	BaseHeight     int `json:"baseHeight"`
	OutputWidth    int `json:"outputWidth"`
	OutputHeight   int `json:"outputHeight"`
}

// StreamServiceSettings is the stream destination configuration.
type StreamServiceSettings struct {
	StreamServiceType     string         `json:"streamServiceType"`
	StreamServiceSettings map[string]any `json:"streamServiceSettings"`
}

// RecordDirectory is the recording output directory.
type RecordDirectory struct {
	RecordDirectory string `json:"recordDirectory"`
}
