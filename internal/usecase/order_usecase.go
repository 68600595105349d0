package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

// 注文1行の入力。idは商品ID（ワイヤ形式は旧フロントに合わせる）
type OrderItemInput struct {
	ProductID int64 `json:"id"`
	Qty       int64 `json:"qty"`
}

type CreateOrderInput struct {
	UserID int64
	Items  []OrderItemInput
}

type CreateOrderOutput struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderItemOutput struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int64   `json:"qty"`
}

type OrderOutput struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Username  string            `json:"username"`
	Total     float64           `json:"total"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderItemOutput `json:"items"`
}

// 在庫チェック→減算→注文＋明細の保存を1トランザクションで行う。
// totalはクライアントの申告値を使わず、注文時点の価格から計算し直す
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error) {
	if in.UserID <= 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if len(in.Items) == 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "items required")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Qty <= 0 {
			return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item")
		}
	}

	var out CreateOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderItems := make([]model.OrderItem, 0, len(in.Items))
		var total float64

		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("product %d not found", it.ProductID))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			if p.Quantity < it.Qty {
				return NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("insufficient stock for %q: only %d left", p.Name, p.Quantity))
			}

			//条件付き減算。同時注文で先を越されたらここで止まる
			ok, err := r.Products().DecrementStockIfEnough(ctx, it.ProductID, it.Qty)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("insufficient stock for %q: only %d left", p.Name, p.Quantity))
			}

			//スナップショット（後の商品編集の影響を受けない）
			orderItems = append(orderItems, model.OrderItem{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Qty:       it.Qty,
			})

			total += p.Price * float64(it.Qty)
		}

		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:    in.UserID,
			Total:     total,
			Status:    model.OrderStatusPending,
			CreatedAt: now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = CreateOrderOutput{
			ID:        orderID,
			UserID:    in.UserID,
			Total:     total,
			Status:    string(model.OrderStatusPending),
			CreatedAt: now,
		}
		return nil
	})

	if err != nil {
		return CreateOrderOutput{}, err
	}
	return out, nil
}

// 注文一覧（username付き、id降順）。userIDを渡すとそのユーザーだけ
func (u *OrderUsecase) ListOrders(ctx context.Context, userID *int64) ([]OrderOutput, error) {
	if userID != nil && *userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListWithUser(ctx, repo.OrderListFilter{UserID: userID})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.Order.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// ステータス更新。値チェック＋遷移チェック（同じ値はno-opで成功）
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, statusValue string) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	newStatus, ok := model.ParseOrderStatus(statusValue)
	if !ok {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// すでに同じなら何もしない（200）
		if o.Status == newStatus {
			return nil
		}

		if !o.Status.CanTransitionTo(newStatus) {
			return NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("cannot change status from %s to %s", o.Status, newStatus))
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, newStatus); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "order not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func toOrderOutput(o repo.OrderWithUser, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Qty:       it.Qty,
		})
	}

	return OrderOutput{
		ID:        o.Order.ID,
		UserID:    o.Order.UserID,
		Username:  o.Username,
		Total:     o.Order.Total,
		Status:    string(o.Order.Status),
		CreatedAt: o.Order.CreatedAt,
		Items:     outItems,
	}
}
