package control

import "context"

type profileNameParams struct {
	ProfileName string `json:"profileName"`
}

type sceneCollectionParams struct {
	SceneCollectionName string `json:"sceneCollectionName"`
}

// GetProfileList returns the profile catalog and current selection.
func (c *Client) GetProfileList(ctx context.Context) (ProfileList, error) {
	var out ProfileList
	err := c.caller.Call(ctx, "GetProfileList", nil, &out)
	return out, err
}

// SetCurrentProfile switches the active profile.
func (c *Client) SetCurrentProfile(ctx context.Context, profileName string) error {
	return c.caller.Call(ctx, "SetCurrentProfile", profileNameParams{ProfileName: profileName}, nil)
}

// CreateProfile adds a new profile.
func (c *Client) CreateProfile(ctx context.Context, profileName string) error {
	return c.caller.Call(ctx, "CreateProfile", profileNameParams{ProfileName: profileName}, nil)
}

// GetSceneCollectionList returns the scene-collection catalog and current
// selection.
func (c *Client) GetSceneCollectionList(ctx context.Context) (SceneCollectionList, error) {
	var out SceneCollectionList
	err := c.caller.Call(ctx, "GetSceneCollectionList", nil, &out)
	return out, err
}

// SetCurrentSceneCollection switches the active scene collection.
func (c *Client) SetCurrentSceneCollection(ctx context.Context, name string) error {
	return c.caller.Call(ctx, "SetCurrentSceneCollection", sceneCollectionParams{SceneCollectionName: name}, nil)
}

// CreateSceneCollection adds a new scene collection.
func (c *Client) CreateSceneCollection(ctx context.Context, name string) error {
	return c.caller.Call(ctx, "CreateSceneCollection", sceneCollectionParams{SceneCollectionName: name}, nil)
}

// GetVideoSettings returns the canvas and output geometry.
func (c *Client) GetVideoSettings(ctx context.Context) (VideoSettings, error) {
	var out VideoSettings
	err := c.caller.Call(ctx, "GetVideoSettings", nil, &out)
	return out, err
}

// SetVideoSettings replaces the canvas and output geometry.
func (c *Client) SetVideoSettings(ctx context.Context, settings VideoSettings) error {
	return c.caller.Call(ctx, "SetVideoSettings", settings, nil)
}

// GetStreamServiceSettings returns the stream destination configuration.
func (c *Client) GetStreamServiceSettings(ctx context.Context) (StreamServiceSettings, error) {
	var out StreamServiceSettings
	err := c.caller.Call(ctx, "GetStreamServiceSettings", nil, &out)
	return out, err
}

// SetStreamServiceSettings replaces the stream destination configuration.
func (c *Client) SetStreamServiceSettings(ctx context.Context, settings StreamServiceSettings) error {
	return c.caller.Call(ctx, "SetStreamServiceSettings", settings, nil)
}

// GetRecordDirectory returns the recording output directory.
func (c *Client) GetRecordDirectory(ctx context.Context) (RecordDirectory, error) {
	var out RecordDirectory
	err := c.caller.Call(ctx, "GetRecordDirectory", nil, &out)
	return out, err
}

// SetRecordDirectory changes the recording output directory.
func (c *Client) SetRecordDirectory(ctx context.Context, directory string) error {
	params := struct {
		RecordDirectory string `json:"recordDirectory"`
	}{directory}
	return c.caller.Call(ctx, "SetRecordDirectory", params, nil)
}
