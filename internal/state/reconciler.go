package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"scenedeck/internal/control"
	"scenedeck/internal/logging"
	"scenedeck/internal/obsws"
)

const defaultPollInterval = 1500 * time.Millisecond

// synthesizedKind marks input entries synthesized from the special-input
// map for global audio endpoints missing from the raw input list.
const synthesizedKind = "global_audio"

// Facade is the slice of the command catalog the reconciler reads through.
type Facade interface {
	GetSceneList(ctx context.Context) (control.SceneList, error)
	GetStudioModeEnabled(ctx context.Context) (control.StudioMode, error)
	GetSceneTransitionList(ctx context.Context) (control.TransitionList, error)
	GetInputKindList(ctx context.Context) (control.InputKindList, error)
	GetProfileList(ctx context.Context) (control.ProfileList, error)
	GetSceneCollectionList(ctx context.Context) (control.SceneCollectionList, error)
	GetSceneItemList(ctx context.Context, sceneName string) (control.SceneItemList, error)
	GetInputList(ctx context.Context, inputKind string) (control.InputList, error)
	GetSpecialInputs(ctx context.Context) (control.SpecialInputs, error)
	GetInputVolume(ctx context.Context, inputName string) (control.InputVolume, error)
	GetInputMute(ctx context.Context, inputName string) (control.InputMute, error)
	GetSourceScreenshot(ctx context.Context, sourceName string) control.Screenshot
	GetStats(ctx context.Context) (control.Stats, error)
	GetStreamStatus(ctx context.Context) (control.StreamStatus, error)
	GetRecordStatus(ctx context.Context) (control.RecordStatus, error)
	GetVirtualCamStatus(ctx context.Context) (control.OutputActive, error)
	GetReplayBufferStatus(ctx context.Context) control.OutputActive
}

// EventSource is the transport's event feed. *obsws.Session satisfies it.
type EventSource interface {
	Subscribe(eventType string, handler obsws.EventHandler) int
	Unsubscribe(eventType string, id int)
}

// Reconciler keeps a Snapshot converged with the remote studio.
type Reconciler struct {
	facade Facade
	events EventSource
	logger *slog.Logger

	pollInterval time.Duration

	mu   sync.Mutex
	snap Snapshot
	subs []subscription

	running bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

type subscription struct {
	eventType string
	id        int
}

// Option customizes reconciler construction.
type Option func(*Reconciler)

// WithPollInterval overrides the bulk poll cadence (defaults to 1.5s).
func WithPollInterval(interval time.Duration) Option {
	return func(r *Reconciler) {
		if interval > 0 {
			r.pollInterval = interval
		}
	}
}

// New constructs a reconciler over one session's façade and event feed.
func New(facade Facade, events EventSource, logger *slog.Logger, opts ...Option) *Reconciler {
	r := &Reconciler{
		facade:       facade,
		events:       events,
		logger:       logging.NewComponentLogger(logger, "reconciler"),
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Snapshot returns a copy of the current state.
func (r *Reconciler) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap.clone()
}

// Start subscribes the event handlers, runs the bootstrap fetch, and starts
// the poll loop. A bootstrap failure is logged, not fatal: the poll loop and
// events will converge the snapshot as the remote becomes responsive.
func (r *Reconciler) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return errors.New("reconciler already running")
	}
	r.running = true
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.snap.Connected = true
	r.mu.Unlock()

	r.subscribe()

	if err := r.Bootstrap(r.ctx); err != nil {
		r.logger.Warn("bootstrap fetch failed",
			logging.Error(err),
			logging.String(logging.FieldEventType, "bootstrap_failed"),
		)
	}

	r.wg.Add(1)
	go r.pollLoop()
	return nil
}

// Stop detaches all event handlers and cancels the poll loop. In-flight
// calls are not cancelled; their late writes are harmless once the session
// is gone.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.snap.Connected = false
	cancel := r.cancel
	subs := r.subs
	r.subs = nil
	r.mu.Unlock()

	for _, sub := range subs {
		r.events.Unsubscribe(sub.eventType, sub.id)
	}
	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// Bootstrap performs the full-state fetch: scene catalog, studio mode,
// transitions, input kinds, profiles, and scene collections, then the scene
// items of the current scene and the enriched input list. It runs once after
// connect and again on manual refresh.
func (r *Reconciler) Bootstrap(ctx context.Context) error {
	sceneList, err := r.facade.GetSceneList(ctx)
	if err != nil {
		return fmt.Errorf("fetch scenes: %w", err)
	}
	studio, err := r.facade.GetStudioModeEnabled(ctx)
	if err != nil {
		return fmt.Errorf("fetch studio mode: %w", err)
	}
	transitions, err := r.facade.GetSceneTransitionList(ctx)
	if err != nil {
		return fmt.Errorf("fetch transitions: %w", err)
	}
	kinds, err := r.facade.GetInputKindList(ctx)
	if err != nil {
		return fmt.Errorf("fetch input kinds: %w", err)
	}
	profiles, err := r.facade.GetProfileList(ctx)
	if err != nil {
		return fmt.Errorf("fetch profiles: %w", err)
	}
	collections, err := r.facade.GetSceneCollectionList(ctx)
	if err != nil {
		return fmt.Errorf("fetch scene collections: %w", err)
	}

	transitionKinds := make([]string, 0, len(transitions.Transitions))
	for _, t := range transitions.Transitions {
		transitionKinds = append(transitionKinds, t.TransitionName)
	}

	r.mu.Lock()
	scenes := make([]SceneRef, 0, len(sceneList.Scenes))
	for _, s := range sceneList.Scenes {
		scenes = append(scenes, SceneRef{Name: s.SceneName, Index: s.SceneIndex})
	}
	r.snap.Scenes = scenes
	r.snap.CurrentScene = sceneList.CurrentProgramSceneName
	r.snap.PreviewScene = sceneList.CurrentPreviewSceneName
	r.snap.StudioMode = studio.StudioModeEnabled
	r.snap.Transition = TransitionState{
		CurrentName:    transitions.CurrentSceneTransitionName,
		AvailableKinds: transitionKinds,
		DurationMillis: transitions.CurrentSceneTransitionDuration,
	}
	r.snap.InputKinds = kinds.InputKinds
	r.snap.Profiles = profiles.Profiles
	r.snap.SceneCollections = collections.SceneCollections
	current := r.snap.CurrentScene
	r.mu.Unlock()

	r.RefreshSceneItems(ctx, current)
	r.RefreshInputs(ctx)
	return nil
}

// RefreshSceneItems refetches the full item stack of the named scene. Items
// are not tracked incrementally; scene changes trigger this refetch.
func (r *Reconciler) RefreshSceneItems(ctx context.Context, sceneName string) {
	if sceneName == "" {
		return
	}
	list, err := r.facade.GetSceneItemList(ctx, sceneName)
	if err != nil {
		r.logger.Warn("scene item refresh failed",
			logging.String("scene", sceneName),
			logging.Error(err),
			logging.String(logging.FieldEventType, "scene_items_refresh_failed"),
		)
		return
	}
	items := make([]SceneItem, 0, len(list.SceneItems))
	for _, item := range list.SceneItems {
		items = append(items, SceneItem{
			ID:         item.SceneItemID,
			SourceName: item.SourceName,
			SourceKind: item.InputKind,
			Enabled:    item.SceneItemEnabled,
			Locked:     item.SceneItemLocked,
		})
	}
	r.mu.Lock()
	r.snap.SceneItems = items
	r.mu.Unlock()
}

// RefreshInputs rebuilds the enriched input list: the raw catalog plus
// synthesized entries for global audio endpoints not already present,
// deduplicated by name, each enriched with its live volume and mute state.
// A single input's enrichment failure defaults that input to 0 dB/unmuted
// rather than omitting the row; partial data beats missing rows in the
// mixer.
func (r *Reconciler) RefreshInputs(ctx context.Context) {
	raw, err := r.facade.GetInputList(ctx, "")
	if err != nil {
		r.logger.Warn("input refresh failed",
			logging.Error(err),
			logging.String(logging.FieldEventType, "input_refresh_failed"),
		)
		return
	}
	special, err := r.facade.GetSpecialInputs(ctx)
	if err != nil {
		r.logger.Warn("special input fetch failed",
			logging.Error(err),
			logging.String(logging.FieldEventType, "input_refresh_failed"),
		)
		return
	}

	seen := make(map[string]struct{}, len(raw.Inputs))
	combined := make([]control.Input, 0, len(raw.Inputs))
	for _, input := range raw.Inputs {
		if _, ok := seen[input.InputName]; ok {
			continue
		}
		seen[input.InputName] = struct{}{}
		combined = append(combined, input)
	}
	for _, name := range special.Names() {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		combined = append(combined, control.Input{InputName: name, InputKind: synthesizedKind})
	}

	inputs := make([]InputState, 0, len(combined))
	for _, input := range combined {
		entry := InputState{Name: input.InputName, Kind: input.InputKind}
		volume, volErr := r.facade.GetInputVolume(ctx, input.InputName)
		mute, muteErr := r.facade.GetInputMute(ctx, input.InputName)
		if volErr != nil || muteErr != nil {
			r.logger.Debug("input enrichment failed, using defaults",
				logging.String("input", input.InputName),
				logging.Error(errors.Join(volErr, muteErr)),
			)
		} else {
			entry.VolumeDb = volume.InputVolumeDb
			entry.Muted = mute.InputMuted
		}
		inputs = append(inputs, entry)
	}

	r.mu.Lock()
	r.snap.Inputs = inputs
	r.mu.Unlock()
}

func (r *Reconciler) pollLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.pollTick(r.ctx)
		}
	}
}

// pollTick performs the bulk refresh in a fixed order. Each sub-fetch
// failure is caught at its own call site so one failure never blocks the
// others or a later tick.
func (r *Reconciler) pollTick(ctx context.Context) {
	r.mu.Lock()
	current := r.snap.CurrentScene
	r.mu.Unlock()

	shot := r.facade.GetSourceScreenshot(ctx, current)
	if shot.ImageData != "" {
		r.mu.Lock()
		r.snap.ProgramScreenshot = shot.ImageData
		r.mu.Unlock()
	}

	if stats, err := r.facade.GetStats(ctx); err != nil {
		r.warnPoll("stats", err)
	} else {
		r.mu.Lock()
		r.snap.Stats.CPUPercent = stats.CPUUsage
		r.snap.Stats.FPS = stats.ActiveFPS
		r.mu.Unlock()
	}

	if stream, err := r.facade.GetStreamStatus(ctx); err != nil {
		r.warnPoll("stream status", err)
	} else {
		r.mu.Lock()
		r.snap.Outputs.Streaming = stream.OutputActive
		r.snap.Stats.Timecode = stream.OutputTimecode
		r.mu.Unlock()
	}

	if record, err := r.facade.GetRecordStatus(ctx); err != nil {
		r.warnPoll("record status", err)
	} else {
		r.mu.Lock()
		r.snap.Outputs.Recording = record.OutputActive
		r.snap.Outputs.RecordPaused = record.OutputPaused
		r.mu.Unlock()
	}

	if vcam, err := r.facade.GetVirtualCamStatus(ctx); err != nil {
		r.warnPoll("virtual cam status", err)
	} else {
		r.mu.Lock()
		r.snap.Outputs.VirtualCamActive = vcam.OutputActive
		r.mu.Unlock()
	}

	replay := r.facade.GetReplayBufferStatus(ctx)
	r.mu.Lock()
	r.snap.Outputs.ReplayBuffering = replay.OutputActive
	r.mu.Unlock()
}

func (r *Reconciler) warnPoll(what string, err error) {
	r.logger.Warn("poll fetch failed, skipping for this tick",
		logging.String("fetch", what),
		logging.Error(err),
		logging.String(logging.FieldEventType, "poll_fetch_failed"),
	)
}
