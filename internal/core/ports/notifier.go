package ports

import (
	"context"

	"tripmanager/internal/core/domain/model/order"
)

// Notifier delivers outbound notifications about order lifecycle events.
// Delivery is best-effort: callers log failures but never roll back the
// state change that triggered the notification.
type Notifier interface {
	// NotifyOrderStatusChanged informs the order's owner that the order
	// status changed.
	NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order) error
}
