package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Brand    string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string // newest(default) / price_asc / price_desc
	Skip     int
	Limit    int
}

// 商品の永続化だけを約束。
type ProductRepository interface {
	//is_active=true のみ
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)

	//詳細は is_active を見ない
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	CreateBulk(ctx context.Context, ps []model.Product) error

	//部分更新。fieldsに入っているキーだけ上書き
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error

	//is_active=false にするだけ
	SoftDelete(ctx context.Context, id int64) error

	Count(ctx context.Context) (int64, error)

	//在庫合計（is_activeを問わず全行）
	SumQuantity(ctx context.Context) (int64, error)

	//アシスタント用：公開中の全商品
	ListActive(ctx context.Context) ([]model.Product, error)

	//在庫が足りるときだけ減らす（足りないなら false）
	DecrementStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
}
