package enum

// NotificationType classifies operator notifications.
type NotificationType string

const (
	NotificationStockLow           NotificationType = "stock_low"
	NotificationTransactionSuccess NotificationType = "transaction_success"
)

// Valid checks if the notification type is valid
func (t NotificationType) Valid() bool {
	return t == NotificationStockLow || t == NotificationTransactionSuccess
}

// String returns the string representation
func (t NotificationType) String() string {
	return string(t)
}
