package control

import "context"

type sourceFilterParams struct {
	SourceName string `json:"sourceName"`
	FilterName string `json:"filterName"`
}

// GetSourceFilterList returns the filter chain of one source in chain order.
func (c *Client) GetSourceFilterList(ctx context.Context, sourceName string) (FilterList, error) {
	var out FilterList
	params := struct {
		SourceName string `json:"sourceName"`
	}{sourceName}
	err := c.caller.Call(ctx, "GetSourceFilterList", params, &out)
	return out, err
}

// GetSourceFilter returns one filter including its settings.
func (c *Client) GetSourceFilter(ctx context.Context, sourceName, filterName string) (Filter, error) {
	var out Filter
	err := c.caller.Call(ctx, "GetSourceFilter", sourceFilterParams{sourceName, filterName}, &out)
	out.FilterName = filterName
	return out, err
}

// CreateSourceFilter appends a filter to one source's chain.
func (c *Client) CreateSourceFilter(ctx context.Context, sourceName, filterName, filterKind string, settings map[string]any) error {
	params := struct {
		SourceName     string         `json:"sourceName"`
		FilterName     string         `json:"filterName"`
		FilterKind     string         `json:"filterKind"`
		FilterSettings map[string]any `json:"filterSettings,omitempty"`
	}{sourceName, filterName, filterKind, settings}
	return c.caller.Call(ctx, "CreateSourceFilter", params, nil)
}

// RemoveSourceFilter deletes one filter from a source's chain.
func (c *Client) RemoveSourceFilter(ctx context.Context, sourceName, filterName string) error {
	return c.caller.Call(ctx, "RemoveSourceFilter", sourceFilterParams{sourceName, filterName}, nil)
}

// SetSourceFilterEnabled enables or disables one filter.
func (c *Client) SetSourceFilterEnabled(ctx context.Context, sourceName, filterName string, enabled bool) error {
	params := struct {
		SourceName    string `json:"sourceName"`
		FilterName    string `json:"filterName"`
		FilterEnabled bool   `json:"filterEnabled"`
	}{sourceName, filterName, enabled}
	return c.caller.Call(ctx, "SetSourceFilterEnabled", params, nil)
}

// SetSourceFilterIndex moves one filter within its chain.
func (c *Client) SetSourceFilterIndex(ctx context.Context, sourceName, filterName string, index int) error {
	params := struct {
		SourceName  string `json:"sourceName"`
		FilterName  string `json:"filterName"`
		FilterIndex int    `json:"filterIndex"`
	}{sourceName, filterName, index}
	return c.caller.Call(ctx, "SetSourceFilterIndex", params, nil)
}

// SetSourceFilterSettings overlays settings onto one filter.
func (c *Client) SetSourceFilterSettings(ctx context.Context, sourceName, filterName string, settings map[string]any) error {
	params := struct {
		SourceName     string         `json:"sourceName"`
		FilterName     string         `json:"filterName"`
		FilterSettings map[string]any `json:"filterSettings"`
		Overlay        bool           `json:"overlay"`
	}{sourceName, filterName, settings, true}
	return c.caller.Call(ctx, "SetSourceFilterSettings", params, nil)
}
