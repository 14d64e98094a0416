package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Status retrieves daemon runtime information.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call("Scenedeck.Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Snapshot retrieves the current studio snapshot.
func (c *Client) Snapshot() (*SnapshotResponse, error) {
	var resp SnapshotResponse
	if err := c.client.Call("Scenedeck.Snapshot", SnapshotRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Connect opens a session to the studio.
func (c *Client) Connect(address, password string) (*ConnectResponse, error) {
	var resp ConnectResponse
	req := ConnectRequest{Address: address, Password: password}
	if err := c.client.Call("Scenedeck.Connect", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Disconnect closes the active session.
func (c *Client) Disconnect() error {
	var resp DisconnectResponse
	return c.client.Call("Scenedeck.Disconnect", DisconnectRequest{}, &resp)
}

// Refresh forces a full state re-fetch.
func (c *Client) Refresh() error {
	var resp RefreshResponse
	return c.client.Call("Scenedeck.Refresh", RefreshRequest{}, &resp)
}

// SwitchScene routes a scene change by studio mode.
func (c *Client) SwitchScene(scene string) error {
	var resp SwitchSceneResponse
	return c.client.Call("Scenedeck.SwitchScene", SwitchSceneRequest{Scene: scene}, &resp)
}

// SetProgramScene changes the program scene unconditionally.
func (c *Client) SetProgramScene(scene string) error {
	var resp SetProgramSceneResponse
	return c.client.Call("Scenedeck.SetProgramScene", SetProgramSceneRequest{Scene: scene}, &resp)
}

// SetPreviewScene changes the preview scene.
func (c *Client) SetPreviewScene(scene string) error {
	var resp SetPreviewSceneResponse
	return c.client.Call("Scenedeck.SetPreviewScene", SetPreviewSceneRequest{Scene: scene}, &resp)
}

// CreateScene adds a scene.
func (c *Client) CreateScene(scene string) error {
	var resp CreateSceneResponse
	return c.client.Call("Scenedeck.CreateScene", CreateSceneRequest{Scene: scene}, &resp)
}

// RemoveScene deletes a scene.
func (c *Client) RemoveScene(scene string) error {
	var resp RemoveSceneResponse
	return c.client.Call("Scenedeck.RemoveScene", RemoveSceneRequest{Scene: scene}, &resp)
}

// RenameScene renames a scene.
func (c *Client) RenameScene(scene, newName string) error {
	var resp RenameSceneResponse
	req := RenameSceneRequest{Scene: scene, NewName: newName}
	return c.client.Call("Scenedeck.RenameScene", req, &resp)
}

// SetVolume adjusts an input's level in dB.
func (c *Client) SetVolume(input string, volumeDb float64) error {
	var resp SetVolumeResponse
	req := SetVolumeRequest{Input: input, VolumeDb: volumeDb}
	return c.client.Call("Scenedeck.SetVolume", req, &resp)
}

// SetMute sets an input's mute flag.
func (c *Client) SetMute(input string, muted bool) error {
	var resp SetMuteResponse
	req := SetMuteRequest{Input: input, Muted: muted}
	return c.client.Call("Scenedeck.SetMute", req, &resp)
}

// ToggleMute flips an input's mute flag.
func (c *Client) ToggleMute(input string) error {
	var resp ToggleMuteResponse
	return c.client.Call("Scenedeck.ToggleMute", ToggleMuteRequest{Input: input}, &resp)
}

// ToggleOutput flips one of the studio outputs.
func (c *Client) ToggleOutput(output string) error {
	var resp ToggleOutputResponse
	return c.client.Call("Scenedeck.ToggleOutput", ToggleOutputRequest{Output: output}, &resp)
}

// RecordPause pauses or resumes an active recording.
func (c *Client) RecordPause(resume bool) error {
	var resp RecordPauseResponse
	return c.client.Call("Scenedeck.RecordPause", RecordPauseRequest{Resume: resume}, &resp)
}

// SaveReplay flushes the replay buffer to disk.
func (c *Client) SaveReplay() (*SaveReplayResponse, error) {
	var resp SaveReplayResponse
	if err := c.client.Call("Scenedeck.SaveReplay", SaveReplayRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetStudioMode enables or disables studio mode.
func (c *Client) SetStudioMode(enabled bool) error {
	var resp SetStudioModeResponse
	return c.client.Call("Scenedeck.SetStudioMode", SetStudioModeRequest{Enabled: enabled}, &resp)
}

// SetTransition selects the active scene transition.
func (c *Client) SetTransition(transition string) error {
	var resp SetTransitionResponse
	return c.client.Call("Scenedeck.SetTransition", SetTransitionRequest{Transition: transition}, &resp)
}

// SetTransitionDuration sets the transition duration in milliseconds.
func (c *Client) SetTransitionDuration(durationMillis int) error {
	var resp SetTransitionDurationResponse
	req := SetTransitionDurationRequest{DurationMillis: durationMillis}
	return c.client.Call("Scenedeck.SetTransitionDuration", req, &resp)
}

// TriggerTransition fires the studio mode transition.
func (c *Client) TriggerTransition() error {
	var resp TriggerTransitionResponse
	return c.client.Call("Scenedeck.TriggerTransition", TriggerTransitionRequest{}, &resp)
}

// RemoveSceneItem deletes an item from a scene.
func (c *Client) RemoveSceneItem(scene string, itemID int) error {
	var resp RemoveSceneItemResponse
	req := RemoveSceneItemRequest{Scene: scene, ItemID: itemID}
	return c.client.Call("Scenedeck.RemoveSceneItem", req, &resp)
}

// SetSceneItemEnabled shows or hides a scene item.
func (c *Client) SetSceneItemEnabled(scene string, itemID int, enabled bool) error {
	var resp SetSceneItemEnabledResponse
	req := SetSceneItemEnabledRequest{Scene: scene, ItemID: itemID, Enabled: enabled}
	return c.client.Call("Scenedeck.SetSceneItemEnabled", req, &resp)
}

// ListFilters fetches a source's filter chain.
func (c *Client) ListFilters(source string) (*ListFiltersResponse, error) {
	var resp ListFiltersResponse
	if err := c.client.Call("Scenedeck.ListFilters", ListFiltersRequest{Source: source}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Screenshot captures a source image.
func (c *Client) Screenshot(source string) (*ScreenshotResponse, error) {
	var resp ScreenshotResponse
	if err := c.client.Call("Scenedeck.Screenshot", ScreenshotRequest{Source: source}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ask sends an operator message to the director.
func (c *Client) Ask(message string) (*AskResponse, error) {
	var resp AskResponse
	if err := c.client.Call("Scenedeck.Ask", AskRequest{Message: message}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ApplyDirective executes a previously returned scene suggestion.
func (c *Client) ApplyDirective(scene string) error {
	var resp ApplyDirectiveResponse
	return c.client.Call("Scenedeck.ApplyDirective", ApplyDirectiveRequest{Scene: scene}, &resp)
}
