package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testChatPrompt = "You are a phone store assistant."

func TestChatUsecase_CatalogError_ReturnsFallback(t *testing.T) {
	products := new(ProductRepoMock)
	client := new(CompletionClientMock)
	uc := usecase.NewChatUsecase(products, client, testChatPrompt)

	products.On("ListActive", mock.Anything).Return([]model.Product(nil), errors.New("boom"))

	reply := uc.Chat(context.Background(), "hello")
	assert.Contains(t, reply, "try again in a moment")

	client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestChatUsecase_ClientError_ReturnsFallback(t *testing.T) {
	products := new(ProductRepoMock)
	client := new(CompletionClientMock)
	uc := usecase.NewChatUsecase(products, client, testChatPrompt)

	products.On("ListActive", mock.Anything).Return([]model.Product{}, nil)
	client.On("Complete", mock.Anything, mock.Anything, "hello").Return("", errors.New("upstream 429"))

	reply := uc.Chat(context.Background(), "hello")
	assert.Contains(t, reply, "try again in a moment")
}

func TestChatUsecase_EmptyReply_ReturnsFallback(t *testing.T) {
	products := new(ProductRepoMock)
	client := new(CompletionClientMock)
	uc := usecase.NewChatUsecase(products, client, testChatPrompt)

	products.On("ListActive", mock.Anything).Return([]model.Product{}, nil)
	client.On("Complete", mock.Anything, mock.Anything, "hello").Return("   \n", nil)

	reply := uc.Chat(context.Background(), "hello")
	assert.Contains(t, reply, "try again in a moment")
}

// systemプロンプトにカタログ行とマーカーの書式説明が入ること
func TestChatUsecase_Success_BuildsCatalogPrompt(t *testing.T) {
	products := new(ProductRepoMock)
	client := new(CompletionClientMock)
	uc := usecase.NewChatUsecase(products, client, testChatPrompt)

	desc := "Flagship photography with Leica optics."
	products.On("ListActive", mock.Anything).Return([]model.Product{
		{
			ID: 3, Name: "Xiaomi 14 Ultra", Price: 24990000,
			RAM: "16GB", Storage: "512GB", Chip: "Snapdragon 8 Gen 3",
			Battery: "5000 mAh", Screen: "6.73 inch AMOLED", Condition: "99%",
			Quantity: 20, Desc: &desc, Image: "https://example.com/x14u.jpg",
		},
	}, nil)

	client.On("Complete", mock.Anything, mock.MatchedBy(func(system string) bool {
		return strings.Contains(system, testChatPrompt) &&
			strings.Contains(system, "STORE CATALOG:") &&
			strings.Contains(system, "ID:3|Name:Xiaomi 14 Ultra|Price:24990000") &&
			strings.Contains(system, "@@PRODUCT|ID|Name|Price|ImageURL@@")
	}), "cheapest flagship?").Return("Try the Xiaomi 14 Ultra!\n@@PRODUCT|3|Xiaomi 14 Ultra|24990000|https://example.com/x14u.jpg@@", nil)

	reply := uc.Chat(context.Background(), "cheapest flagship?")
	assert.Contains(t, reply, "Xiaomi 14 Ultra")
	assert.Contains(t, reply, "@@PRODUCT|3|")

	client.AssertExpectations(t)
}
