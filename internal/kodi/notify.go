package kodi

import "context"

const notificationDisplayTime = 3000 // ms

// ShowNotification pops a toast in the Kodi GUI.
func (c *Client) ShowNotification(ctx context.Context, title, message string, isError bool) error {
	image := "info"
	if isError {
		image = "error"
	}
	params := map[string]any{
		"title":       title,
		"message":     message,
		"image":       image,
		"displaytime": notificationDisplayTime,
	}
	return c.Call(ctx, "GUI.ShowNotification", params, nil)
}

// Notifier shows sync notices in the Kodi GUI under a fixed title.
type Notifier struct {
	client  *Client
	title   string
	enabled bool
}

// NewNotifier returns a Notifier; a disabled one accepts and drops every notice.
func NewNotifier(client *Client, title string, enabled bool) *Notifier {
	return &Notifier{client: client, title: title, enabled: enabled}
}

func (n *Notifier) Notify(ctx context.Context, message string, isError bool) error {
	if !n.enabled || n.client == nil {
		return nil
	}
	return n.client.ShowNotification(ctx, n.title, message, isError)
}
