package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// join結果のスキャン用
type orderUserRow struct {
	ID        int64
	UserID    int64
	Username  string
	Total     float64
	Status    model.OrderStatus
	CreatedAt time.Time
}

func (row orderUserRow) toOrderWithUser() repo.OrderWithUser {
	return repo.OrderWithUser{
		Order: model.Order{
			ID:        row.ID,
			UserID:    row.UserID,
			Total:     row.Total,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
		},
		Username: row.Username,
	}
}

// 注文＋usernameをid降順で返す
func (r *OrderGormRepository) ListWithUser(ctx context.Context, f repo.OrderListFilter) ([]repo.OrderWithUser, error) {
	q := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.id, orders.user_id, users.username, orders.total, orders.status, orders.created_at").
		Joins("JOIN users ON users.id = orders.user_id")

	if f.UserID != nil {
		q = q.Where("orders.user_id = ?", *f.UserID)
	}

	var rows []orderUserRow
	if err := q.Order("orders.id desc").Scan(&rows).Error; err != nil {
		return []repo.OrderWithUser{}, err
	}

	out := make([]repo.OrderWithUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toOrderWithUser())
	}
	return out, nil
}

func (r *OrderGormRepository) ListRecentWithUser(ctx context.Context, limit int) ([]repo.OrderWithUser, error) {
	var rows []orderUserRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.id, orders.user_id, users.username, orders.total, orders.status, orders.created_at").
		Joins("JOIN users ON users.id = orders.user_id").
		Order("orders.id desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return []repo.OrderWithUser{}, err
	}

	out := make([]repo.OrderWithUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toOrderWithUser())
	}
	return out, nil
}

func (r *OrderGormRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// 指定statusの合計金額。行なしは0
func (r *OrderGormRepository) SumTotalByStatus(ctx context.Context, status model.OrderStatus) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}
