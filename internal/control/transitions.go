package control

import "context"

// GetSceneTransitionList returns the transition catalog and current selection.
func (c *Client) GetSceneTransitionList(ctx context.Context) (TransitionList, error) {
	var out TransitionList
	err := c.caller.Call(ctx, "GetSceneTransitionList", nil, &out)
	return out, err
}

// GetTransitionKindList returns the available transition kinds.
func (c *Client) GetTransitionKindList(ctx context.Context) (TransitionKindList, error) {
	var out TransitionKindList
	err := c.caller.Call(ctx, "GetTransitionKindList", nil, &out)
	return out, err
}

// SetCurrentSceneTransition selects the named transition.
func (c *Client) SetCurrentSceneTransition(ctx context.Context, transitionName string) error {
	params := struct {
		TransitionName string `json:"transitionName"`
	}{transitionName}
	return c.caller.Call(ctx, "SetCurrentSceneTransition", params, nil)
}

// SetCurrentSceneTransitionDuration sets the transition duration in
// milliseconds.
func (c *Client) SetCurrentSceneTransitionDuration(ctx context.Context, durationMillis int) error {
	params := struct {
		TransitionDuration int `json:"transitionDuration"`
	}{durationMillis}
	return c.caller.Call(ctx, "SetCurrentSceneTransitionDuration", params, nil)
}

// TriggerStudioModeTransition promotes the preview scene to program.
func (c *Client) TriggerStudioModeTransition(ctx context.Context) error {
	return c.caller.Call(ctx, "TriggerStudioModeTransition", nil, nil)
}

// GetSceneTransitionCursor returns the progress of an ongoing transition.
func (c *Client) GetSceneTransitionCursor(ctx context.Context) (TransitionCursor, error) {
	var out TransitionCursor
	err := c.caller.Call(ctx, "GetSceneTransitionCursor", nil, &out)
	return out, err
}
