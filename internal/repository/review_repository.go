package repository

import (
	"app/internal/domain/model"
	"context"
)

// レビュー＋投稿者のusername
type ReviewWithUser struct {
	Review   model.Review
	Username string
}

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error

	//新しい順
	ListByProductWithUser(ctx context.Context, productID int64) ([]ReviewWithUser, error)
}
