package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, review *model.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return err
	}
	return nil
}

type reviewUserRow struct {
	ID        int64
	UserID    int64
	ProductID int64
	Rating    int
	Comment   string
	CreatedAt time.Time
	Username  string
}

// レビュー＋投稿者usernameを新しい順で返す
func (r *ReviewGormRepository) ListByProductWithUser(ctx context.Context, productID int64) ([]repo.ReviewWithUser, error) {
	var rows []reviewUserRow
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.id, reviews.user_id, reviews.product_id, reviews.rating, reviews.comment, reviews.created_at, users.username").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at desc").
		Scan(&rows).Error
	if err != nil {
		return []repo.ReviewWithUser{}, err
	}

	out := make([]repo.ReviewWithUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, repo.ReviewWithUser{
			Review: model.Review{
				ID:        row.ID,
				UserID:    row.UserID,
				ProductID: row.ProductID,
				Rating:    row.Rating,
				Comment:   row.Comment,
				CreatedAt: row.CreatedAt,
			},
			Username: row.Username,
		})
	}
	return out, nil
}
