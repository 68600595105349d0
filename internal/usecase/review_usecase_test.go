package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewUsecase_Create_RatingOutOfRange(t *testing.T) {
	reviews := new(ReviewRepoMock)
	users := new(UserRepoMock)
	uc := usecase.NewReviewUsecase(reviews, users)

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.CreateReview(context.Background(), usecase.CreateReviewInput{
			UserID: 1, ProductID: 1, Rating: rating,
		})
		assertErrContains(t, err, "rating must be between 1 and 5")
	}

	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewUsecase_Create_ResolvesUsername(t *testing.T) {
	reviews := new(ReviewRepoMock)
	users := new(UserRepoMock)
	uc := usecase.NewReviewUsecase(reviews, users)

	reviews.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Review) bool {
		return r.UserID == 3 && r.ProductID == 7 && r.Rating == 5 && !r.CreatedAt.IsZero()
	})).Return(nil)
	users.On("FindByID", mock.Anything, int64(3)).Return(model.User{ID: 3, Username: "alice"}, nil)

	out, err := uc.CreateReview(context.Background(), usecase.CreateReviewInput{
		UserID: 3, ProductID: 7, Rating: 5, Comment: "great phone",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, "great phone", out.Comment)

	reviews.AssertExpectations(t)
	users.AssertExpectations(t)
}

// 投稿者が消えていてもレビュー自体は返す
func TestReviewUsecase_Create_UnknownUserFallback(t *testing.T) {
	reviews := new(ReviewRepoMock)
	users := new(UserRepoMock)
	uc := usecase.NewReviewUsecase(reviews, users)

	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("FindByID", mock.Anything, int64(3)).Return(model.User{}, repo.ErrNotFound)

	out, err := uc.CreateReview(context.Background(), usecase.CreateReviewInput{
		UserID: 3, ProductID: 7, Rating: 4,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Unknown", out.Username)
}

func TestReviewUsecase_ListByProduct(t *testing.T) {
	reviews := new(ReviewRepoMock)
	users := new(UserRepoMock)
	uc := usecase.NewReviewUsecase(reviews, users)

	reviews.On("ListByProductWithUser", mock.Anything, int64(7)).Return([]repo.ReviewWithUser{
		{Review: model.Review{ID: 2, UserID: 3, ProductID: 7, Rating: 5, Comment: "newer"}, Username: "alice"},
		{Review: model.Review{ID: 1, UserID: 4, ProductID: 7, Rating: 3, Comment: "older"}, Username: "bob"},
	}, nil)

	outs, err := uc.ListByProduct(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(outs))
	assert.Equal(t, "alice", outs[0].Username)
	assert.Equal(t, "newer", outs[0].Comment)
}

func TestReviewUsecase_ListByProduct_InvalidID(t *testing.T) {
	uc := usecase.NewReviewUsecase(new(ReviewRepoMock), new(UserRepoMock))

	_, err := uc.ListByProduct(context.Background(), 0)
	assertErrContains(t, err, "invalid product_id")
}
