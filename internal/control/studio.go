package control

import "context"

// GetStudioModeEnabled returns the studio-mode flag.
func (c *Client) GetStudioModeEnabled(ctx context.Context) (StudioMode, error) {
	var out StudioMode
	err := c.caller.Call(ctx, "GetStudioModeEnabled", nil, &out)
	return out, err
}

// SetStudioModeEnabled enables or disables studio mode.
func (c *Client) SetStudioModeEnabled(ctx context.Context, enabled bool) error {
	params := struct {
		StudioModeEnabled bool `json:"studioModeEnabled"`
	}{enabled}
	return c.caller.Call(ctx, "SetStudioModeEnabled", params, nil)
}
