package model

import "gorm.io/gorm"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is a buyer's purchase of a single product. Status moves forward
// only (pending → confirmed → shipped → delivered); cancel is allowed
// from pending.
type Order struct {
	gorm.Model
	BuyerID      uint        `gorm:"index;not null" json:"buyerId"`
	SellerID     uint        `gorm:"index;not null" json:"sellerId"`
	ProductID    uint        `gorm:"index;not null" json:"productId"`
	Quantity     int         `gorm:"not null" json:"quantity"`
	UnitPrice    int64       `gorm:"not null" json:"unitPrice"`
	Total        int64       `gorm:"not null" json:"total"`
	Status       OrderStatus `gorm:"type:enum('pending','confirmed','shipped','delivered','cancelled');default:'pending'" json:"status"`
	ContactPhone string      `gorm:"size:20" json:"contactPhone"`
	Address      string      `gorm:"type:text" json:"address"`
}

func (Order) TableName() string {
	return "orders"
}

// CanTransition reports whether an order may move from its current status
// to the requested one.
func (o *Order) CanTransition(next OrderStatus) bool {
	switch o.Status {
	case OrderPending:
		return next == OrderConfirmed || next == OrderCancelled
	case OrderConfirmed:
		return next == OrderShipped
	case OrderShipped:
		return next == OrderDelivered
	default:
		return false
	}
}
