package notificationhub

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/SeaCloudHub/enquiry/domain/notification"
	"github.com/SeaCloudHub/enquiry/pkg/config"
	"github.com/go-resty/resty/v2"
)

const sender = "enquiry"

type NotificationHub struct {
	host   *url.URL
	token  string
	client *resty.Client
}

func NewNotificationHub(cfg *config.Config) (*NotificationHub, error) {
	u, err := url.Parse(cfg.NotificationHub.Endpoint)
	if err != nil {
		return nil, err
	}

	return &NotificationHub{
		host:   u,
		token:  cfg.NotificationHub.Token,
		client: resty.New().SetBaseURL(u.String()).SetTimeout(5 * time.Second),
	}, nil
}

func (n *NotificationHub) pushNotification(ctx context.Context, notificationReq NotificationRequest) error {
	req := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(notificationReq)

	if n.token != "" {
		req.SetAuthToken(n.token)
	}

	resp, err := req.Post("/api/internal/notifications")
	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("failed to push notification: %s", resp.Status())
	}

	return nil
}

func (n *NotificationHub) SendNotification(ctx context.Context, notifications []notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	return n.pushNotification(ctx, NotificationRequest{
		From:          sender,
		Notifications: notifications,
	})
}
