package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

const defaultListLimit = 100

type ProductUsecase struct {
	products repo.ProductRepository
}

// DI
func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Brand    string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	Skip     int
	Limit    int
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	if in.Skip < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "skip must be >= 0")
	}
	if in.Limit <= 0 {
		in.Limit = defaultListLimit
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return nil, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}
	switch in.SortBy {
	case "", "newest", "price_asc", "price_desc":
	default:
		return nil, NewHTTPError(http.StatusBadRequest, "invalid sort_by")
	}

	items, err := u.products.List(ctx, repo.ProductListQuery{
		Brand:    strings.TrimSpace(in.Brand),
		Search:   strings.TrimSpace(in.Search),
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		SortBy:   in.SortBy,
		Skip:     in.Skip,
		Limit:    in.Limit,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return items, nil
}

// 詳細はis_activeを問わず返す（管理画面が非公開商品も開くため）
func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type CreateProductInput struct {
	Name      string
	Brand     string
	Price     float64
	OldPrice  *float64
	Image     string
	Quantity  int64
	IsActive  bool
	RAM       string
	Storage   string
	Condition string
	Chip      string
	Screen    string
	Battery   string
	Desc      *string
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	required := []struct {
		field string
		value string
	}{
		{"name", in.Name},
		{"brand", in.Brand},
		{"image", in.Image},
		{"ram", in.RAM},
		{"storage", in.Storage},
		{"condition", in.Condition},
		{"chip", in.Chip},
		{"screen", in.Screen},
		{"battery", in.Battery},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, f.field+" required")
		}
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Quantity < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "quantity must be >= 0")
	}

	now := time.Now()
	p, err := u.products.Create(ctx, model.Product{
		Name:      strings.TrimSpace(in.Name),
		Brand:     strings.TrimSpace(in.Brand),
		Price:     in.Price,
		OldPrice:  in.OldPrice,
		Image:     in.Image,
		Quantity:  in.Quantity,
		IsActive:  in.IsActive,
		RAM:       in.RAM,
		Storage:   in.Storage,
		Condition: in.Condition,
		Chip:      in.Chip,
		Screen:    in.Screen,
		Battery:   in.Battery,
		Desc:      in.Desc,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 部分更新の入力。nilのフィールドは触らない。
// JSONのnullもnilに落ちるので「null＝未指定」扱い（descを空にするときは""を送る）
type UpdateProductInput struct {
	Name      *string
	Brand     *string
	Price     *float64
	OldPrice  *float64
	Image     *string
	Quantity  *int64
	IsActive  *bool
	RAM       *string
	Storage   *string
	Condition *string
	Chip      *string
	Screen    *string
	Battery   *string
	Desc      *string
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in UpdateProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Price != nil && *in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "quantity must be >= 0")
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Brand != nil {
		fields["brand"] = *in.Brand
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.OldPrice != nil {
		fields["old_price"] = *in.OldPrice
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.Quantity != nil {
		fields["quantity"] = *in.Quantity
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	if in.RAM != nil {
		fields["ram"] = *in.RAM
	}
	if in.Storage != nil {
		fields["storage"] = *in.Storage
	}
	if in.Condition != nil {
		fields["condition"] = *in.Condition
	}
	if in.Chip != nil {
		fields["chip"] = *in.Chip
	}
	if in.Screen != nil {
		fields["screen"] = *in.Screen
	}
	if in.Battery != nil {
		fields["battery"] = *in.Battery
	}
	if in.Desc != nil {
		fields["desc"] = *in.Desc
	}

	//どの更新でもupdated_atは必ず進める
	fields["updated_at"] = time.Now()

	err := u.products.UpdateFields(ctx, productID, fields)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 再実行しても成功する（既に非公開でも200）
func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.products.SoftDelete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
