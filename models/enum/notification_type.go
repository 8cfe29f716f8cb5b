package enum

// NotificationType classifies a back-office notification.
type NotificationType string

const (
	NotificationTypeOrder    NotificationType = "order"
	NotificationTypeCustomer NotificationType = "customer"
	NotificationTypeProduct  NotificationType = "product"
	NotificationTypeSystem   NotificationType = "system"
	NotificationTypeReview   NotificationType = "review"
)
