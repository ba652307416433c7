package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/SeaCloudHub/enquiry/adapters/event/listeners"
	"github.com/SeaCloudHub/enquiry/adapters/redisstore"
	"github.com/SeaCloudHub/enquiry/pkg/config"
	"github.com/SeaCloudHub/enquiry/pkg/logger"
	"go.uber.org/zap"
)

// eventwatch tails the customer event channel and logs every envelope.
func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	redis, err := redisstore.NewConnection(redisstore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatalf("cannot connect to redis: %v", err)
	}
	defer redis.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pubsub, err := redisstore.NewRedisClient(redis).Subscribe(ctx, cfg.Redis.EventChannel)
	if err != nil {
		applog.Fatal(err)
	}
	defer pubsub.Close()

	applog.Infof("watching %s", cfg.Redis.EventChannel)

	for {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			applog.Fatalf("cannot receive message: %v", err)
		}

		var envelope listeners.Envelope
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			applog.Warnf("cannot unmarshal payload: %v", err)
			continue
		}

		applog.Infow("event received",
			zap.String("id", envelope.ID.String()),
			zap.String("name", envelope.Name),
			zap.Time("occurred_at", envelope.OccurredAt),
			zap.ByteString("payload", envelope.Payload),
		)
	}
}
