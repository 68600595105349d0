package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 投稿者が解決できないときの表示名（通常は起きない）
const unknownUsername = "Unknown"

type ReviewUsecase struct {
	reviews repo.ReviewRepository
	users   repo.UserRepository
}

// DI
func NewReviewUsecase(reviews repo.ReviewRepository, users repo.UserRepository) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, users: users}
}

type CreateReviewInput struct {
	UserID    int64
	ProductID int64
	Rating    int
	Comment   string
}

type ReviewOutput struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

// user/productの存在はあえて確認しない（現状の割り切り）
func (u *ReviewUsecase) CreateReview(ctx context.Context, in CreateReviewInput) (ReviewOutput, error) {
	if in.UserID <= 0 {
		return ReviewOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if in.ProductID <= 0 {
		return ReviewOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return ReviewOutput{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	review := &model.Review{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now(),
	}
	if err := u.reviews.Create(ctx, review); err != nil {
		return ReviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	username := unknownUsername
	user, err := u.users.FindByID(ctx, in.UserID)
	if err == nil {
		username = user.Username
	} else if !errors.Is(err, repo.ErrNotFound) {
		return ReviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ReviewOutput{
		ID:        review.ID,
		UserID:    review.UserID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		Username:  username,
	}, nil
}

// 新しい順、username付き
func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID int64) ([]ReviewOutput, error) {
	if productID <= 0 {
		return []ReviewOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	rows, err := u.reviews.ListByProductWithUser(ctx, productID)
	if err != nil {
		return []ReviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ReviewOutput, 0, len(rows))
	for _, row := range rows {
		outs = append(outs, ReviewOutput{
			ID:        row.Review.ID,
			UserID:    row.Review.UserID,
			ProductID: row.Review.ProductID,
			Rating:    row.Review.Rating,
			Comment:   row.Review.Comment,
			CreatedAt: row.Review.CreatedAt,
			Username:  row.Username,
		})
	}
	return outs, nil
}
