package listeners

import (
	"context"

	"github.com/SeaCloudHub/enquiry/domain"
	"go.uber.org/zap"
)

type LoggingListener struct {
	logger *zap.SugaredLogger
}

func NewLoggingListener(logger *zap.SugaredLogger) LoggingListener {
	return LoggingListener{logger: logger}
}

func (l LoggingListener) EventHandler(ctx context.Context, event domain.BaseDomainEvent) error {
	l.logger.Infow("domain event dispatched",
		zap.String("event", event.EventName()),
		zap.Any("payload", event),
	)

	return nil
}
