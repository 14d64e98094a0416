package daemon

import (
	"context"

	"scenedeck/internal/director"
	"scenedeck/internal/state"
)

// SwitchScene routes a scene change according to the current studio mode:
// preview when studio mode is on, program otherwise.
func (d *Daemon) SwitchScene(sceneName string) error {
	facade, reconciler, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	if reconciler.Snapshot().StudioMode {
		return facade.SetCurrentPreviewScene(ctx, sceneName)
	}
	return facade.SetCurrentProgramScene(ctx, sceneName)
}

// SetProgramScene changes the program scene unconditionally.
func (d *Daemon) SetProgramScene(sceneName string) error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.SetCurrentProgramScene(ctx, sceneName)
}

// SetPreviewScene changes the preview scene. Only meaningful in studio mode.
func (d *Daemon) SetPreviewScene(sceneName string) error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.SetCurrentPreviewScene(ctx, sceneName)
}

// CreateScene adds a scene and refreshes the scene pool.
func (d *Daemon) CreateScene(sceneName string) error {
	facade, reconciler, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	if err := facade.CreateScene(ctx, sceneName); err != nil {
		return err
	}
	return reconciler.Bootstrap(ctx)
}

// RemoveScene deletes a scene and refreshes the scene pool.
func (d *Daemon) RemoveScene(sceneName string) error {
	facade, reconciler, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	if err := facade.RemoveScene(ctx, sceneName); err != nil {
		return err
	}
	return reconciler.Bootstrap(ctx)
}

// RenameScene renames a scene and refreshes the scene pool.
func (d *Daemon) RenameScene(sceneName, newName string) error {
	facade, reconciler, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	if err := facade.SetSceneName(ctx, sceneName, newName); err != nil {
		return err
	}
	return reconciler.Bootstrap(ctx)
}

// SetVolume adjusts an input's level in dB, clamped to the mixer range.
func (d *Daemon) SetVolume(inputName string, volumeDb float64) error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.SetInputVolume(ctx, inputName, state.ClampVolumeDb(volumeDb))
}

// SetMute sets an input's mute flag.
func (d *Daemon) SetMute(inputName string, muted bool) error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.SetInputMute(ctx, inputName, muted)
}

// ToggleMute flips an input's mute flag.
func (d *Daemon) ToggleMute(inputName string) error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.ToggleInputMute(ctx, inputName)
}

// ToggleStream flips the streaming output.
func (d *Daemon) ToggleStream() error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.ToggleStream(ctx)
}

// ToggleRecord flips the recording output.
func (d *Daemon) ToggleRecord() error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.ToggleRecord(ctx)
}

// PauseRecord pauses an active recording.
func (d *Daemon) PauseRecord() error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.PauseRecord(ctx)
}

// ResumeRecord resumes a paused recording.
func (d *Daemon) ResumeRecord() error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.ResumeRecord(ctx)
}

// ToggleVirtualCam flips the virtual camera output.
func (d *Daemon) ToggleVirtualCam() error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.ToggleVirtualCam(ctx)
}

// ToggleReplayBuffer flips the replay buffer. A no-op when the studio lacks
// the replay output.
func (d *Daemon) ToggleReplayBuffer() error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	facade.ToggleReplayBuffer(ctx)
	return nil
}

// SaveReplayBuffer writes the current replay buffer to disk and returns the
// saved file path, empty when the replay output is missing.
func (d *Daemon) SaveReplayBuffer() (string, error) {
	facade, _, _, err := d.parts()
	if err != nil {
		return "", err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	facade.SaveReplayBuffer(ctx)
	return facade.GetLastReplayBufferReplay(ctx).SavedReplayPath, nil
}

// SetStudioMode enables or disables studio mode.
func (d *Daemon) SetStudioMode(enabled bool) error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.SetStudioModeEnabled(ctx, enabled)
}

// SetTransition selects the active scene transition.
func (d *Daemon) SetTransition(transitionName string) error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.SetCurrentSceneTransition(ctx, transitionName)
}

// SetTransitionDuration sets the active transition duration in milliseconds.
func (d *Daemon) SetTransitionDuration(durationMillis int) error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.SetCurrentSceneTransitionDuration(ctx, durationMillis)
}

// TriggerTransition fires the studio mode transition, sending preview to
// program.
func (d *Daemon) TriggerTransition() error {
	facade, _, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.TriggerStudioModeTransition(ctx)
}

// RemoveSceneItem deletes an item from a scene and refetches that scene's
// item list.
func (d *Daemon) RemoveSceneItem(sceneName string, sceneItemID int) error {
	facade, reconciler, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	if err := facade.RemoveSceneItem(ctx, sceneName, sceneItemID); err != nil {
		return err
	}
	reconciler.RefreshSceneItems(ctx, sceneName)
	return nil
}

// SetSceneItemEnabled shows or hides an item and refetches that scene's item
// list.
func (d *Daemon) SetSceneItemEnabled(sceneName string, sceneItemID int, enabled bool) error {
	facade, reconciler, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	if err := facade.SetSceneItemEnabled(ctx, sceneName, sceneItemID, enabled); err != nil {
		return err
	}
	reconciler.RefreshSceneItems(ctx, sceneName)
	return nil
}

// CreateInput adds an input to a scene and refreshes the input registry.
func (d *Daemon) CreateInput(sceneName, inputName, inputKind string, settings map[string]any) error {
	facade, reconciler, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	if err := facade.CreateInput(ctx, sceneName, inputName, inputKind, settings); err != nil {
		return err
	}
	reconciler.RefreshInputs(ctx)
	reconciler.RefreshSceneItems(ctx, sceneName)
	return nil
}

// RemoveInput deletes an input and refreshes the input registry.
func (d *Daemon) RemoveInput(inputName string) error {
	facade, reconciler, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	if err := facade.RemoveInput(ctx, inputName); err != nil {
		return err
	}
	reconciler.RefreshInputs(ctx)
	return nil
}

// ListFilters returns the filter chain of a source.
func (d *Daemon) ListFilters(sourceName string) ([]state.FilterEntry, error) {
	facade, _, _, err := d.parts()
	if err != nil {
		return nil, err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	list, err := facade.GetSourceFilterList(ctx, sourceName)
	if err != nil {
		return nil, err
	}
	entries := make([]state.FilterEntry, 0, len(list.Filters))
	for _, f := range list.Filters {
		entries = append(entries, state.FilterEntry{
			Name:    f.FilterName,
			Kind:    f.FilterKind,
			Enabled: f.FilterEnabled,
			Index:   f.FilterIndex,
		})
	}
	return entries, nil
}

// Screenshot captures a source as a base64 data URI, empty when the capture
// fails or no source is named.
func (d *Daemon) Screenshot(sourceName string) (string, error) {
	facade, _, _, err := d.parts()
	if err != nil {
		return "", err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return facade.GetSourceScreenshot(ctx, sourceName).ImageData, nil
}

// Refresh re-fetches the full studio state on demand.
func (d *Daemon) Refresh() error {
	_, reconciler, _, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return reconciler.Bootstrap(ctx)
}

// Ask sends an operator message to the director and returns the reply with
// any extracted scene suggestion. Suggestions are never executed here.
func (d *Daemon) Ask(ctx context.Context, message string) (director.Reply, error) {
	_, _, dir, err := d.parts()
	if err != nil {
		return director.Reply{}, err
	}
	return dir.Ask(ctx, message)
}

// ApplyDirective executes a previously returned scene suggestion.
func (d *Daemon) ApplyDirective(sceneName string) error {
	_, _, dir, err := d.parts()
	if err != nil {
		return err
	}
	ctx, cancel := d.callCtx()
	defer cancel()
	return dir.Apply(ctx, director.Suggestion{Scene: sceneName})
}
