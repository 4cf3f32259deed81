package ApiClient

import (
	"context"
	"fmt"

	"Tractor/Models"
)

func (c *Client) GetNotifications(ctx context.Context) ([]Models.Notification, error) {
	var notifications []Models.Notification
	err := c.do(ctx, "GET", "/notifications", nil, &notifications)
	return notifications, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id uint) error {
	return c.do(ctx, "PUT", fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, "PUT", "/notifications/mark-all-read", nil, nil)
}
