package listeners

import (
	"context"
	"fmt"

	"github.com/SeaCloudHub/enquiry/domain"
	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/SeaCloudHub/enquiry/domain/notification"
)

type NotificationListener struct {
	notificationService notification.Service
}

func NewNotificationListener(notificationService notification.Service) NotificationListener {
	return NotificationListener{notificationService: notificationService}
}

func (l NotificationListener) EventHandler(ctx context.Context, event domain.BaseDomainEvent) error {
	var n notification.Notification

	switch e := event.(type) {
	case customer.CustomerCreatedEvent:
		n = notification.Notification{
			CustomerID: e.CustomerID,
			Event:      e.EventName(),
			Content:    fmt.Sprintf("Welcome %s", e.Name),
		}
	case customer.TransactionAddedEvent:
		n = notification.Notification{
			CustomerID: e.CustomerID,
			Event:      e.EventName(),
			Content: fmt.Sprintf("Transaction of %s %s: %s",
				e.Amount.StringFixed(2), e.CurrencyCode, e.Status),
		}
	default:
		return nil
	}

	return l.notificationService.SendNotification(ctx, []notification.Notification{n})
}
