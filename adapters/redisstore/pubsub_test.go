package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/SeaCloudHub/enquiry/adapters/redisstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPubSub(t *testing.T) {
	_, client := setupRedis(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	svc := redisstore.NewRedisClient(client)

	sub, err := svc.Subscribe(ctx, "customer.events")
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, svc.Publish(ctx, "customer.events", `{"name":"CustomerCreated"}`))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "customer.events", msg.Channel)
	assert.Equal(t, `{"name":"CustomerCreated"}`, msg.Payload)
}
