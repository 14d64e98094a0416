package control

import (
	"context"

	"scenedeck/internal/logging"
)

// GetStreamStatus returns the streaming output state.
func (c *Client) GetStreamStatus(ctx context.Context) (StreamStatus, error) {
	var out StreamStatus
	err := c.caller.Call(ctx, "GetStreamStatus", nil, &out)
	return out, err
}

// StartStream starts the streaming output.
func (c *Client) StartStream(ctx context.Context) error {
	return c.caller.Call(ctx, "StartStream", nil, nil)
}

// StopStream stops the streaming output.
func (c *Client) StopStream(ctx context.Context) error {
	return c.caller.Call(ctx, "StopStream", nil, nil)
}

// ToggleStream flips the streaming output.
func (c *Client) ToggleStream(ctx context.Context) error {
	return c.caller.Call(ctx, "ToggleStream", nil, nil)
}

// GetRecordStatus returns the recording output state.
func (c *Client) GetRecordStatus(ctx context.Context) (RecordStatus, error) {
	var out RecordStatus
	err := c.caller.Call(ctx, "GetRecordStatus", nil, &out)
	return out, err
}

// StartRecord starts the recording output.
func (c *Client) StartRecord(ctx context.Context) error {
	return c.caller.Call(ctx, "StartRecord", nil, nil)
}

// StopRecord stops the recording output.
func (c *Client) StopRecord(ctx context.Context) error {
	return c.caller.Call(ctx, "StopRecord", nil, nil)
}

// ToggleRecord flips the recording output.
func (c *Client) ToggleRecord(ctx context.Context) error {
	return c.caller.Call(ctx, "ToggleRecord", nil, nil)
}

// PauseRecord pauses an active recording.
func (c *Client) PauseRecord(ctx context.Context) error {
	return c.caller.Call(ctx, "PauseRecord", nil, nil)
}

// ResumeRecord resumes a paused recording.
func (c *Client) ResumeRecord(ctx context.Context) error {
	return c.caller.Call(ctx, "ResumeRecord", nil, nil)
}

// GetVirtualCamStatus returns the virtual camera state.
func (c *Client) GetVirtualCamStatus(ctx context.Context) (OutputActive, error) {
	var out OutputActive
	err := c.caller.Call(ctx, "GetVirtualCamStatus", nil, &out)
	return out, err
}

// StartVirtualCam starts the virtual camera.
func (c *Client) StartVirtualCam(ctx context.Context) error {
	return c.caller.Call(ctx, "StartVirtualCam", nil, nil)
}

// StopVirtualCam stops the virtual camera.
func (c *Client) StopVirtualCam(ctx context.Context) error {
	return c.caller.Call(ctx, "StopVirtualCam", nil, nil)
}

// ToggleVirtualCam flips the virtual camera.
func (c *Client) ToggleVirtualCam(ctx context.Context) error {
	return c.caller.Call(ctx, "ToggleVirtualCam", nil, nil)
}

// The replay-buffer capability is absent on some studio configurations, and
// the remote rejects the whole request family there. Callers must never see
// that rejection: status queries report inactive and action triggers become
// no-ops.

// GetReplayBufferStatus returns the replay-buffer state, reporting inactive
// when the capability is unavailable.
func (c *Client) GetReplayBufferStatus(ctx context.Context) OutputActive {
	var out OutputActive
	if err := c.caller.Call(ctx, "GetReplayBufferStatus", nil, &out); err != nil {
		c.warnReplay("GetReplayBufferStatus", err)
		return OutputActive{}
	}
	return out
}

// StartReplayBuffer starts the replay buffer when available.
func (c *Client) StartReplayBuffer(ctx context.Context) {
	if err := c.caller.Call(ctx, "StartReplayBuffer", nil, nil); err != nil {
		c.warnReplay("StartReplayBuffer", err)
	}
}

// StopReplayBuffer stops the replay buffer when available.
func (c *Client) StopReplayBuffer(ctx context.Context) {
	if err := c.caller.Call(ctx, "StopReplayBuffer", nil, nil); err != nil {
		c.warnReplay("StopReplayBuffer", err)
	}
}

// ToggleReplayBuffer flips the replay buffer when available.
func (c *Client) ToggleReplayBuffer(ctx context.Context) {
	if err := c.caller.Call(ctx, "ToggleReplayBuffer", nil, nil); err != nil {
		c.warnReplay("ToggleReplayBuffer", err)
	}
}

// SaveReplayBuffer persists the rolling replay when available.
func (c *Client) SaveReplayBuffer(ctx context.Context) {
	if err := c.caller.Call(ctx, "SaveReplayBuffer", nil, nil); err != nil {
		c.warnReplay("SaveReplayBuffer", err)
	}
}

// GetLastReplayBufferReplay returns the path of the most recently saved
// replay, or an empty path when the capability is unavailable.
func (c *Client) GetLastReplayBufferReplay(ctx context.Context) ReplayPath {
	var out ReplayPath
	if err := c.caller.Call(ctx, "GetLastReplayBufferReplay", nil, &out); err != nil {
		c.warnReplay("GetLastReplayBufferReplay", err)
		return ReplayPath{}
	}
	return out
}

func (c *Client) warnReplay(requestType string, err error) {
	c.logger.Warn("replay buffer unavailable",
		logging.String("request_type", requestType),
		logging.Error(err),
		logging.String(logging.FieldEventType, "replay_buffer_degraded"),
	)
}
