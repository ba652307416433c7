package notification

import "context"

type Notification struct {
	CustomerID uint64 `json:"customer_id"`
	Event      string `json:"event"`
	Content    string `json:"content"`
}

type Service interface {
	SendNotification(ctx context.Context, notifications []Notification) error
}
