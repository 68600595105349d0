package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type SeedUsecase struct {
	products repo.ProductRepository
}

// DI
func NewSeedUsecase(products repo.ProductRepository) *SeedUsecase {
	return &SeedUsecase{products: products}
}

// カタログが空のときだけサンプル3件を入れる。
// 戻り値は「今回seedしたかどうか」
func (u *SeedUsecase) Seed(ctx context.Context) (bool, error) {
	count, err := u.products.Count(ctx)
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if count > 0 {
		return false, nil
	}

	if err := u.products.CreateBulk(ctx, sampleProducts(time.Now())); err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return true, nil
}

func sampleProducts(now time.Time) []model.Product {
	return []model.Product{
		{
			Name:      "iPhone 15 Pro Max",
			Brand:     "Apple",
			Price:     34990000,
			OldPrice:  floatPtr(36990000),
			Image:     "https://cdn.tgdd.vn/Products/Images/42/305658/iphone-15-pro-max-blue-thumbnew-600x600.jpg",
			RAM:       "8GB",
			Storage:   "256GB",
			Condition: "New 100%",
			Chip:      "A17 Pro",
			Screen:    "6.7 inch OLED",
			Battery:   "4422 mAh",
			Quantity:  10,
			IsActive:  true,
			Desc:      strPtr("iPhone 15 Pro Max with a titanium build and the A17 Pro chip."),
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			Name:      "Samsung Galaxy S24 Ultra",
			Brand:     "Samsung",
			Price:     29990000,
			OldPrice:  floatPtr(33990000),
			Image:     "https://cdn.tgdd.vn/Products/Images/42/307172/samsung-galaxy-s24-ultra-grey-thumbnew-600x600.jpg",
			RAM:       "12GB",
			Storage:   "512GB",
			Condition: "Like New",
			Chip:      "Snapdragon 8 Gen 3",
			Screen:    "6.8 inch AMOLED",
			Battery:   "5000 mAh",
			Quantity:  5,
			IsActive:  true,
			Desc:      strPtr("Galaxy AI on board, with the trusty S-Pen."),
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			Name:      "Xiaomi 14 Ultra",
			Brand:     "Xiaomi",
			Price:     24990000,
			Image:     "https://cdn.tgdd.vn/Products/Images/42/317530/xiaomi-14-ultra-black-thumbnew-600x600.jpg",
			RAM:       "16GB",
			Storage:   "512GB",
			Condition: "99%",
			Chip:      "Snapdragon 8 Gen 3",
			Screen:    "6.73 inch AMOLED",
			Battery:   "5000 mAh",
			Quantity:  20,
			IsActive:  true,
			Desc:      strPtr("Flagship photography with Leica optics."),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
