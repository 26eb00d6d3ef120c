package models

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing" // Order placed, not yet dispatched
	OrderStatusShipped    OrderStatus = "Shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "Delivered"  // Customer received the items
)

// Valid reports whether s is one of the fixed order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// OrderLine references a product in an order. HasBeenReviewed only ever moves
// from false to true.
type OrderLine struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	HasBeenReviewed bool   `json:"hasBeenReviewed"`
}

type Order struct {
	ID     string      `json:"id"`
	UserID string      `json:"userId"`
	Date   string      `json:"date"`
	Status OrderStatus `json:"status"`
	Items  []OrderLine `json:"items"`
	Total  float64     `json:"total"`
}

func (o Order) Clone() Order {
	c := o
	c.Items = append([]OrderLine(nil), o.Items...)
	return c
}

// Line returns the index of the line for productID, or -1.
func (o Order) Line(productID string) int {
	for i, item := range o.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
