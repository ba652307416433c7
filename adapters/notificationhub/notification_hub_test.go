package notificationhub_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SeaCloudHub/enquiry/adapters/notificationhub"
	"github.com/SeaCloudHub/enquiry/domain/notification"
	"github.com/SeaCloudHub/enquiry/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendNotification(t *testing.T) {
	var (
		got  notificationhub.NotificationRequest
		auth string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/internal/notifications", r.URL.Path)
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.NotificationHub.Endpoint = srv.URL
	cfg.NotificationHub.Token = "secret"

	hub, err := notificationhub.NewNotificationHub(cfg)
	require.NoError(t, err)

	err = hub.SendNotification(context.Background(), []notification.Notification{
		{CustomerID: 123456, Event: "CustomerCreated", Content: "welcome"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "enquiry", got.From)
	require.Len(t, got.Notifications, 1)
	assert.Equal(t, uint64(123456), got.Notifications[0].CustomerID)
}

func TestSendNotificationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.NotificationHub.Endpoint = srv.URL

	hub, err := notificationhub.NewNotificationHub(cfg)
	require.NoError(t, err)

	err = hub.SendNotification(context.Background(), []notification.Notification{{CustomerID: 1}})

	assert.Error(t, err)
}
