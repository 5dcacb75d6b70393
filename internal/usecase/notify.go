package usecase

// NotificationPublisher hands interaction events to the notification queue.
// *queue.Client satisfies it; delivery is owned by an external consumer.
type NotificationPublisher interface {
	PublishNotificationTask(task map[string]interface{}) error
}
