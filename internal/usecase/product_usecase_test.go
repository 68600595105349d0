package usecase_test

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validCreateInput() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Name:      "iPhone 15 Pro Max",
		Brand:     "Apple",
		Price:     34990000,
		Image:     "https://example.com/iphone.jpg",
		Quantity:  10,
		IsActive:  true,
		RAM:       "8GB",
		Storage:   "256GB",
		Condition: "New 100%",
		Chip:      "A17 Pro",
		Screen:    "6.7 inch OLED",
		Battery:   "4422 mAh",
	}
}

// =====================
// List tests
// =====================

func TestProductUsecase_List_InvalidSortBy(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{SortBy: "price"})
	assertErrContains(t, err, "invalid sort_by")

	products.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestProductUsecase_List_MinAboveMax(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	minP := float64(100)
	maxP := float64(50)

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{MinPrice: &minP, MaxPrice: &maxP})
	assertErrContains(t, err, "min_price must be <= max_price")
}

func TestProductUsecase_List_DefaultLimit(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("List", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.Limit == 100 && q.Skip == 0
	})).Return([]model.Product{}, nil)

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{})
	assert.NoError(t, err)

	products.AssertExpectations(t)
}

// =====================
// Get tests
// =====================

// 非公開の商品も詳細は返す
func TestProductUsecase_Get_ReturnsInactive(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7, Name: "old phone", IsActive: false}, nil)

	p, err := uc.GetProduct(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.False(t, p.IsActive)
}

func TestProductUsecase_Get_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(context.Background(), 99)
	assertErrContains(t, err, "product not found")
}

// =====================
// Create tests
// =====================

func TestProductUsecase_Create_MissingName(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	in := validCreateInput()
	in.Name = "  "

	_, err := uc.CreateProduct(context.Background(), in)
	assertErrContains(t, err, "name required")

	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUsecase_Create_NegativePrice(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	in := validCreateInput()
	in.Price = -1

	_, err := uc.CreateProduct(context.Background(), in)
	assertErrContains(t, err, "price must be >= 0")
}

func TestProductUsecase_Create_Success(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "iPhone 15 Pro Max" && p.Brand == "Apple" && !p.CreatedAt.IsZero()
	})).Return(model.Product{ID: 1, Name: "iPhone 15 Pro Max"}, nil)

	p, err := uc.CreateProduct(context.Background(), validCreateInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	products.AssertExpectations(t)
}

// =====================
// Update tests
// =====================

// nilのフィールドは更新対象に含めない。updated_atは常に入る
func TestProductUsecase_Update_PartialFieldsOnly(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	price := float64(19990000)

	products.On("UpdateFields", mock.Anything, int64(3), mock.MatchedBy(func(fields map[string]interface{}) bool {
		if _, ok := fields["price"]; !ok {
			return false
		}
		if _, ok := fields["updated_at"]; !ok {
			return false
		}
		_, hasName := fields["name"]
		return !hasName && len(fields) == 2
	})).Return(nil)
	products.On("FindByID", mock.Anything, int64(3)).Return(model.Product{ID: 3, Price: price}, nil)

	p, err := uc.UpdateProduct(context.Background(), 3, usecase.UpdateProductInput{Price: &price})
	assert.NoError(t, err)
	assert.Equal(t, price, p.Price)

	products.AssertExpectations(t)
}

func TestProductUsecase_Update_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	name := "renamed"

	products.On("UpdateFields", mock.Anything, int64(99), mock.Anything).Return(repo.ErrNotFound)

	_, err := uc.UpdateProduct(context.Background(), 99, usecase.UpdateProductInput{Name: &name})
	assertErrContains(t, err, "product not found")
}

func TestProductUsecase_Update_NegativeQuantity(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	qty := int64(-5)

	_, err := uc.UpdateProduct(context.Background(), 3, usecase.UpdateProductInput{Quantity: &qty})
	assertErrContains(t, err, "quantity must be >= 0")

	products.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

// =====================
// Delete tests
// =====================

func TestProductUsecase_Delete_Success(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("SoftDelete", mock.Anything, int64(3)).Return(nil)

	err := uc.DeleteProduct(context.Background(), 3)
	assert.NoError(t, err)

	products.AssertExpectations(t)
}

func TestProductUsecase_Delete_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("SoftDelete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	err := uc.DeleteProduct(context.Background(), 99)
	assertErrContains(t, err, "product not found")
}

func TestProductUsecase_Delete_DBError(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("SoftDelete", mock.Anything, int64(3)).Return(errors.New("boom"))

	err := uc.DeleteProduct(context.Background(), 3)
	assertErrContains(t, err, "db error")
}
