package state

// SceneRef is one entry of the ordered scene list. Order is the display
// order reported by the remote.
type SceneRef struct {
	Name  string
	Index int
}

// SceneItem is one source placed in the current scene. The ID is unique
// within its owning scene only.
type SceneItem struct {
	ID         int
	SourceName string
	SourceKind string
	Enabled    bool
	Locked     bool
}

// InputState is one addressable audio endpoint with its live mixer state.
// Names are globally unique after special-input deduplication.
type InputState struct {
	Name        string
	Kind        string
	VolumeDb    float64
	Muted       bool
	MonitorType string
}

// TransitionState is the current transition selection.
type TransitionState struct {
	CurrentName    string
	AvailableKinds []string
	DurationMillis int
}

// OutputFlags are the independently toggled output activity flags.
type OutputFlags struct {
	Streaming        bool
	Recording        bool
	RecordPaused     bool
	ReplayBuffering  bool
	VirtualCamActive bool
}

// StatsSnapshot is one transient statistics sample, replaced wholesale each
// poll tick.
type StatsSnapshot struct {
	CPUPercent float64
	FPS        float64
	Timecode   string
}

// FilterEntry is one filter in a source's chain, in chain order.
type FilterEntry struct {
	Name    string
	Kind    string
	Enabled bool
	Index   int
}

// Snapshot is the authoritative local view of remote state.
type Snapshot struct {
	Connected bool

	Scenes       []SceneRef
	CurrentScene string
	PreviewScene string
	StudioMode   bool

	SceneItems []SceneItem
	Inputs     []InputState

	Transition TransitionState
	Outputs    OutputFlags
	Stats      StatsSnapshot

	ProgramScreenshot string

	InputKinds       []string
	Profiles         []string
	SceneCollections []string
}

// clone deep-copies the snapshot so readers never alias reconciler-owned
// slices.
func (s Snapshot) clone() Snapshot {
	out := s
	out.Scenes = append([]SceneRef(nil), s.Scenes...)
	out.SceneItems = append([]SceneItem(nil), s.SceneItems...)
	out.Inputs = append([]InputState(nil), s.Inputs...)
	out.Transition.AvailableKinds = append([]string(nil), s.Transition.AvailableKinds...)
	out.InputKinds = append([]string(nil), s.InputKinds...)
	out.Profiles = append([]string(nil), s.Profiles...)
	out.SceneCollections = append([]string(nil), s.SceneCollections...)
	return out
}

// ClampVolumeDb bounds a dB value to the [-60, 0] meter range used for
// display. Stored values may sit outside the range transiently during
// remote-driven changes.
func ClampVolumeDb(volumeDb float64) float64 {
	if volumeDb < -60 {
		return -60
	}
	if volumeDb > 0 {
		return 0
	}
	return volumeDb
}
