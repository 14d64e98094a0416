package control

import (
	"context"

	"scenedeck/internal/logging"
)

// Screenshot retrieval is fixed at a small webp frame so a ~1.5s poll stays
// cheap in bandwidth and latency.
const (
	screenshotFormat  = "webp"
	screenshotWidth   = 480
	screenshotHeight  = 270
	screenshotQuality = 50
)

// GetVersion returns the remote studio build description.
func (c *Client) GetVersion(ctx context.Context) (Version, error) {
	var out Version
	err := c.caller.Call(ctx, "GetVersion", nil, &out)
	return out, err
}

// GetStats returns one runtime statistics sample.
func (c *Client) GetStats(ctx context.Context) (Stats, error) {
	var out Stats
	err := c.caller.Call(ctx, "GetStats", nil, &out)
	return out, err
}

// GetHotkeyList returns the registered hotkey names.
func (c *Client) GetHotkeyList(ctx context.Context) (HotkeyList, error) {
	var out HotkeyList
	err := c.caller.Call(ctx, "GetHotkeyList", nil, &out)
	return out, err
}

// TriggerHotkeyByName triggers a hotkey by its registered name.
func (c *Client) TriggerHotkeyByName(ctx context.Context, hotkeyName string) error {
	params := struct {
		HotkeyName string `json:"hotkeyName"`
	}{hotkeyName}
	return c.caller.Call(ctx, "TriggerHotkeyByName", params, nil)
}

// BroadcastCustomEvent broadcasts an arbitrary payload to every connected
// control client.
func (c *Client) BroadcastCustomEvent(ctx context.Context, eventData map[string]any) error {
	params := struct {
		EventData map[string]any `json:"eventData"`
	}{eventData}
	return c.caller.Call(ctx, "BroadcastCustomEvent", params, nil)
}

// GetSourceScreenshot captures a preview frame of the named source. Failures
// and disconnected sessions yield an empty screenshot so rendering can fall
// back to a placeholder.
func (c *Client) GetSourceScreenshot(ctx context.Context, sourceName string) Screenshot {
	if sourceName == "" || !c.caller.Connected() {
		return Screenshot{}
	}
	params := struct {
		SourceName              string `json:"sourceName"`
		ImageFormat             string `json:"imageFormat"`
		ImageWidth              int    `json:"imageWidth"`
		ImageHeight             int    `json:"imageHeight"`
		ImageCompressionQuality int    `json:"imageCompressionQuality"`
	}{sourceName, screenshotFormat, screenshotWidth, screenshotHeight, screenshotQuality}

	var out Screenshot
	if err := c.caller.Call(ctx, "GetSourceScreenshot", params, &out); err != nil {
		c.logger.Debug("screenshot unavailable",
			logging.String("source", sourceName),
			logging.Error(err),
		)
		return Screenshot{}
	}
	return out
}

// GetSourceActive reports whether a source is rendering, degrading to
// inactive when the query fails.
func (c *Client) GetSourceActive(ctx context.Context, sourceName string) SourceActive {
	params := struct {
		SourceName string `json:"sourceName"`
	}{sourceName}
	var out SourceActive
	if err := c.caller.Call(ctx, "GetSourceActive", params, &out); err != nil {
		return SourceActive{}
	}
	return out
}
