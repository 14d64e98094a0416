package control

import "context"

type sceneItemParams struct {
	SceneName   string `json:"sceneName"`
	SceneItemID int    `json:"sceneItemId"`
}

// GetSceneItemList returns the ordered item stack of the named scene.
func (c *Client) GetSceneItemList(ctx context.Context, sceneName string) (SceneItemList, error) {
	var out SceneItemList
	err := c.caller.Call(ctx, "GetSceneItemList", sceneNameParams{SceneName: sceneName}, &out)
	return out, err
}

// GetGroupSceneItemList returns the item stack of the named group.
func (c *Client) GetGroupSceneItemList(ctx context.Context, groupName string) (SceneItemList, error) {
	var out SceneItemList
	err := c.caller.Call(ctx, "GetGroupSceneItemList", sceneNameParams{SceneName: groupName}, &out)
	return out, err
}

// GetSceneItemTransform returns the transform blob of one scene item.
func (c *Client) GetSceneItemTransform(ctx context.Context, sceneName string, sceneItemID int) (map[string]any, error) {
	var out struct {
		SceneItemTransform map[string]any `json:"sceneItemTransform"`
	}
	err := c.caller.Call(ctx, "GetSceneItemTransform", sceneItemParams{sceneName, sceneItemID}, &out)
	return out.SceneItemTransform, err
}

// SetSceneItemTransform replaces transform fields of one scene item.
func (c *Client) SetSceneItemTransform(ctx context.Context, sceneName string, sceneItemID int, transform map[string]any) error {
	params := struct {
		SceneName          string         `json:"sceneName"`
		SceneItemID        int            `json:"sceneItemId"`
		SceneItemTransform map[string]any `json:"sceneItemTransform"`
	}{sceneName, sceneItemID, transform}
	return c.caller.Call(ctx, "SetSceneItemTransform", params, nil)
}

// SetSceneItemEnabled shows or hides one scene item.
func (c *Client) SetSceneItemEnabled(ctx context.Context, sceneName string, sceneItemID int, enabled bool) error {
	params := struct {
		SceneName        string `json:"sceneName"`
		SceneItemID      int    `json:"sceneItemId"`
		SceneItemEnabled bool   `json:"sceneItemEnabled"`
	}{sceneName, sceneItemID, enabled}
	return c.caller.Call(ctx, "SetSceneItemEnabled", params, nil)
}

// SetSceneItemLocked locks or unlocks one scene item.
func (c *Client) SetSceneItemLocked(ctx context.Context, sceneName string, sceneItemID int, locked bool) error {
	params := struct {
		SceneName       string `json:"sceneName"`
		SceneItemID     int    `json:"sceneItemId"`
		SceneItemLocked bool   `json:"sceneItemLocked"`
	}{sceneName, sceneItemID, locked}
	return c.caller.Call(ctx, "SetSceneItemLocked", params, nil)
}

// SetSceneItemIndex reorders one scene item within its scene.
func (c *Client) SetSceneItemIndex(ctx context.Context, sceneName string, sceneItemID, index int) error {
	params := struct {
		SceneName      string `json:"sceneName"`
		SceneItemID    int    `json:"sceneItemId"`
		SceneItemIndex int    `json:"sceneItemIndex"`
	}{sceneName, sceneItemID, index}
	return c.caller.Call(ctx, "SetSceneItemIndex", params, nil)
}

// SetSceneItemBlendMode changes the blend mode of one scene item.
func (c *Client) SetSceneItemBlendMode(ctx context.Context, sceneName string, sceneItemID int, blendMode string) error {
	params := struct {
		SceneName          string `json:"sceneName"`
		SceneItemID        int    `json:"sceneItemId"`
		SceneItemBlendMode string `json:"sceneItemBlendMode"`
	}{sceneName, sceneItemID, blendMode}
	return c.caller.Call(ctx, "SetSceneItemBlendMode", params, nil)
}

// RemoveSceneItem deletes one scene item from its scene.
func (c *Client) RemoveSceneItem(ctx context.Context, sceneName string, sceneItemID int) error {
	return c.caller.Call(ctx, "RemoveSceneItem", sceneItemParams{sceneName, sceneItemID}, nil)
}
