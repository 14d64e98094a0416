package control

import "context"

type sceneNameParams struct {
	SceneName string `json:"sceneName"`
}

// GetSceneList returns the scene catalog and the program/preview selections.
func (c *Client) GetSceneList(ctx context.Context) (SceneList, error) {
	var out SceneList
	err := c.caller.Call(ctx, "GetSceneList", nil, &out)
	return out, err
}

// GetGroupList returns the source groups.
func (c *Client) GetGroupList(ctx context.Context) (GroupList, error) {
	var out GroupList
	err := c.caller.Call(ctx, "GetGroupList", nil, &out)
	return out, err
}

// SetCurrentProgramScene switches the program output to the named scene.
func (c *Client) SetCurrentProgramScene(ctx context.Context, sceneName string) error {
	return c.caller.Call(ctx, "SetCurrentProgramScene", sceneNameParams{SceneName: sceneName}, nil)
}

// SetCurrentPreviewScene stages the named scene in preview. Only valid while
// studio mode is enabled.
func (c *Client) SetCurrentPreviewScene(ctx context.Context, sceneName string) error {
	return c.caller.Call(ctx, "SetCurrentPreviewScene", sceneNameParams{SceneName: sceneName}, nil)
}

// CreateScene adds a new empty scene.
func (c *Client) CreateScene(ctx context.Context, sceneName string) error {
	return c.caller.Call(ctx, "CreateScene", sceneNameParams{SceneName: sceneName}, nil)
}

// RemoveScene deletes the named scene.
func (c *Client) RemoveScene(ctx context.Context, sceneName string) error {
	return c.caller.Call(ctx, "RemoveScene", sceneNameParams{SceneName: sceneName}, nil)
}

// SetSceneName renames a scene.
func (c *Client) SetSceneName(ctx context.Context, sceneName, newSceneName string) error {
	params := struct {
		SceneName    string `json:"sceneName"`
		NewSceneName string `json:"newSceneName"`
	}{sceneName, newSceneName}
	return c.caller.Call(ctx, "SetSceneName", params, nil)
}
