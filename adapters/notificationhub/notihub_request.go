package notificationhub

import "github.com/SeaCloudHub/enquiry/domain/notification"

type NotificationRequest struct {
	From          string                      `json:"from"`
	Notifications []notification.Notification `json:"notifications"`
}
