package control

import "context"

// GetMediaInputStatus returns the playback state of one media input.
func (c *Client) GetMediaInputStatus(ctx context.Context, inputName string) (MediaStatus, error) {
	var out MediaStatus
	err := c.caller.Call(ctx, "GetMediaInputStatus", inputNameParams{InputName: inputName}, &out)
	return out, err
}

// SetMediaInputCursor seeks one media input to an absolute position in
// milliseconds.
func (c *Client) SetMediaInputCursor(ctx context.Context, inputName string, cursorMillis int64) error {
	params := struct {
		InputName   string `json:"inputName"`
		MediaCursor int64  `json:"mediaCursor"`
	}{inputName, cursorMillis}
	return c.caller.Call(ctx, "SetMediaInputCursor", params, nil)
}

// OffsetMediaInputCursor seeks one media input relative to its current
// position.
func (c *Client) OffsetMediaInputCursor(ctx context.Context, inputName string, offsetMillis int64) error {
	params := struct {
		InputName         string `json:"inputName"`
		MediaCursorOffset int64  `json:"mediaCursorOffset"`
	}{inputName, offsetMillis}
	return c.caller.Call(ctx, "OffsetMediaInputCursor", params, nil)
}

// TriggerMediaInputAction triggers a playback action (play, pause, restart,
// stop, next, previous) on one media input.
func (c *Client) TriggerMediaInputAction(ctx context.Context, inputName, mediaAction string) error {
	params := struct {
		InputName   string `json:"inputName"`
		MediaAction string `json:"mediaAction"`
	}{inputName, mediaAction}
	return c.caller.Call(ctx, "TriggerMediaInputAction", params, nil)
}
