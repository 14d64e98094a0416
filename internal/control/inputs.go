package control

import "context"

type inputNameParams struct {
	InputName string `json:"inputName"`
}

// GetInputList returns the raw input catalog, optionally filtered by kind.
func (c *Client) GetInputList(ctx context.Context, inputKind string) (InputList, error) {
	var out InputList
	var params any
	if inputKind != "" {
		params = struct {
			InputKind string `json:"inputKind"`
		}{inputKind}
	}
	err := c.caller.Call(ctx, "GetInputList", params, &out)
	return out, err
}

// GetInputKindList returns the available input kinds.
func (c *Client) GetInputKindList(ctx context.Context) (InputKindList, error) {
	var out InputKindList
	params := struct {
		Unversioned bool `json:"unversioned"`
	}{true}
	err := c.caller.Call(ctx, "GetInputKindList", params, &out)
	return out, err
}

// GetSpecialInputs returns the global audio endpoints (desktop/mic defaults).
func (c *Client) GetSpecialInputs(ctx context.Context) (SpecialInputs, error) {
	var out SpecialInputs
	err := c.caller.Call(ctx, "GetSpecialInputs", nil, &out)
	return out, err
}

// CreateInput adds a new input to the named scene and returns nothing; the
// resulting scene item is learned back through the next item refresh.
func (c *Client) CreateInput(ctx context.Context, sceneName, inputName, inputKind string, settings map[string]any) error {
	params := struct {
		SceneName        string         `json:"sceneName"`
		InputName        string         `json:"inputName"`
		InputKind        string         `json:"inputKind"`
		InputSettings    map[string]any `json:"inputSettings,omitempty"`
		SceneItemEnabled bool           `json:"sceneItemEnabled"`
	}{sceneName, inputName, inputKind, settings, true}
	return c.caller.Call(ctx, "CreateInput", params, nil)
}

// RemoveInput deletes the named input everywhere it is referenced.
func (c *Client) RemoveInput(ctx context.Context, inputName string) error {
	return c.caller.Call(ctx, "RemoveInput", inputNameParams{InputName: inputName}, nil)
}

// SetInputName renames an input.
func (c *Client) SetInputName(ctx context.Context, inputName, newInputName string) error {
	params := struct {
		InputName    string `json:"inputName"`
		NewInputName string `json:"newInputName"`
	}{inputName, newInputName}
	return c.caller.Call(ctx, "SetInputName", params, nil)
}

// GetInputSettings returns the settings blob of one input.
func (c *Client) GetInputSettings(ctx context.Context, inputName string) (InputSettings, error) {
	var out InputSettings
	err := c.caller.Call(ctx, "GetInputSettings", inputNameParams{InputName: inputName}, &out)
	return out, err
}

// SetInputSettings overlays settings onto one input.
func (c *Client) SetInputSettings(ctx context.Context, inputName string, settings map[string]any) error {
	params := struct {
		InputName     string         `json:"inputName"`
		InputSettings map[string]any `json:"inputSettings"`
		Overlay       bool           `json:"overlay"`
	}{inputName, settings, true}
	return c.caller.Call(ctx, "SetInputSettings", params, nil)
}

// GetInputVolume returns the volume of one input.
func (c *Client) GetInputVolume(ctx context.Context, inputName string) (InputVolume, error) {
	var out InputVolume
	err := c.caller.Call(ctx, "GetInputVolume", inputNameParams{InputName: inputName}, &out)
	return out, err
}

// SetInputVolume sets the volume of one input in dB. Fire-and-forget: the
// canonical value is learned back through the event feed or the next poll,
// because the studio is the source of truth for concurrent external changes.
func (c *Client) SetInputVolume(ctx context.Context, inputName string, volumeDb float64) error {
	params := struct {
		InputName     string  `json:"inputName"`
		InputVolumeDb float64 `json:"inputVolumeDb"`
	}{inputName, volumeDb}
	return c.caller.Call(ctx, "SetInputVolume", params, nil)
}

// GetInputMute returns the mute flag of one input.
func (c *Client) GetInputMute(ctx context.Context, inputName string) (InputMute, error) {
	var out InputMute
	err := c.caller.Call(ctx, "GetInputMute", inputNameParams{InputName: inputName}, &out)
	return out, err
}

// SetInputMute sets the mute flag of one input. Fire-and-forget like
// SetInputVolume.
func (c *Client) SetInputMute(ctx context.Context, inputName string, muted bool) error {
	params := struct {
		InputName  string `json:"inputName"`
		InputMuted bool   `json:"inputMuted"`
	}{inputName, muted}
	return c.caller.Call(ctx, "SetInputMute", params, nil)
}

// ToggleInputMute flips the mute flag of one input.
func (c *Client) ToggleInputMute(ctx context.Context, inputName string) error {
	return c.caller.Call(ctx, "ToggleInputMute", inputNameParams{InputName: inputName}, nil)
}

// SetInputAudioSyncOffset sets the audio sync offset of one input in
// milliseconds.
func (c *Client) SetInputAudioSyncOffset(ctx context.Context, inputName string, offsetMillis int) error {
	params := struct {
		InputName            string `json:"inputName"`
		InputAudioSyncOffset int    `json:"inputAudioSyncOffset"`
	}{inputName, offsetMillis}
	return c.caller.Call(ctx, "SetInputAudioSyncOffset", params, nil)
}

// SetInputAudioMonitorType sets the monitoring mode of one input.
func (c *Client) SetInputAudioMonitorType(ctx context.Context, inputName, monitorType string) error {
	params := struct {
		InputName   string `json:"inputName"`
		MonitorType string `json:"monitorType"`
	}{inputName, monitorType}
	return c.caller.Call(ctx, "SetInputAudioMonitorType", params, nil)
}

// GetInputAudioTracks returns the track membership of one input.
func (c *Client) GetInputAudioTracks(ctx context.Context, inputName string) (InputAudioTracks, error) {
	var out InputAudioTracks
	err := c.caller.Call(ctx, "GetInputAudioTracks", inputNameParams{InputName: inputName}, &out)
	return out, err
}

// SetInputAudioTracks sets the track membership of one input.
func (c *Client) SetInputAudioTracks(ctx context.Context, inputName string, tracks map[string]bool) error {
	params := struct {
		InputName        string          `json:"inputName"`
		InputAudioTracks map[string]bool `json:"inputAudioTracks"`
	}{inputName, tracks}
	return c.caller.Call(ctx, "SetInputAudioTracks", params, nil)
}
