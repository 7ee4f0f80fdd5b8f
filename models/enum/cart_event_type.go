package enum

// CartEventType 表示購物車變動事件的類型
type CartEventType string

const (
	CartEventTypeItemAdded       CartEventType = "item_added"
	CartEventTypeItemRemoved     CartEventType = "item_removed"
	CartEventTypeQuantityUpdated CartEventType = "quantity_updated"
	CartEventTypeCartCleared     CartEventType = "cart_cleared"
)
