package listeners

import (
	"context"

	"github.com/SeaCloudHub/enquiry/domain"
)

type EventListener interface {
	EventHandler(ctx context.Context, event domain.BaseDomainEvent) error
}
