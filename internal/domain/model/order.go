package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusの値チェック
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusShipping, OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

// 許可される遷移：
// pending  → shipping / cancelled
// shipping → completed / cancelled
// completed / cancelled は終端
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusShipping || next == OrderStatusCancelled
	case OrderStatusShipping:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	default:
		return false
	}
}

type Order struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64       `gorm:"not null;index" json:"user_id"`
	Total     float64     `gorm:"not null" json:"total"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}
