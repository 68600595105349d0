package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 最新注文は5件固定（ページングなし）
const recentOrdersLimit = 5

type DashboardUsecase struct {
	orders   repo.OrderRepository
	products repo.ProductRepository
}

// DI
func NewDashboardUsecase(orders repo.OrderRepository, products repo.ProductRepository) *DashboardUsecase {
	return &DashboardUsecase{orders: orders, products: products}
}

type RecentOrderOutput struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardStats struct {
	TotalRevenue  float64             `json:"total_revenue"`
	TotalOrders   int64               `json:"total_orders"`
	TotalProducts int64               `json:"total_products"`
	RecentOrders  []RecentOrderOutput `json:"recent_orders"`
}

// 読み取りのみ。売上はcompletedの注文だけを合計する
func (u *DashboardUsecase) Stats(ctx context.Context) (DashboardStats, error) {
	revenue, err := u.orders.SumTotalByStatus(ctx, model.OrderStatusCompleted)
	if err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totalOrders, err := u.orders.CountAll(ctx)
	if err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//在庫合計（非公開の商品も含む）
	totalProducts, err := u.products.SumQuantity(ctx)
	if err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	recent, err := u.orders.ListRecentWithUser(ctx, recentOrdersLimit)
	if err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	recentOuts := make([]RecentOrderOutput, 0, len(recent))
	for _, o := range recent {
		recentOuts = append(recentOuts, RecentOrderOutput{
			ID:        o.Order.ID,
			Username:  o.Username,
			Total:     o.Order.Total,
			Status:    string(o.Order.Status),
			CreatedAt: o.Order.CreatedAt,
		})
	}

	return DashboardStats{
		TotalRevenue:  revenue,
		TotalOrders:   totalOrders,
		TotalProducts: totalProducts,
		RecentOrders:  recentOuts,
	}, nil
}
