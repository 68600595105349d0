package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderListFilter struct {
	UserID *int64
}

// 注文＋注文者のusername（一覧表示用のjoin結果）
type OrderWithUser struct {
	Order    model.Order
	Username string
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//usernameをjoinして id降順
	ListWithUser(ctx context.Context, f OrderListFilter) ([]OrderWithUser, error)
	ListRecentWithUser(ctx context.Context, limit int) ([]OrderWithUser, error)

	CountAll(ctx context.Context) (int64, error)
	SumTotalByStatus(ctx context.Context, status model.OrderStatus) (float64, error)
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
