package usecase

import (
	"context"
	"fmt"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 外部の補完API（OpenRouterなど）を呼ぶ約束
type CompletionClient interface {
	Complete(ctx context.Context, system string, user string) (string, error)
}

// チャットUIに生のエラーを出さないための固定文言
const fallbackReply = "Sorry, the assistant is a little overloaded right now. Please try again in a moment!"

// フロントが商品カードとしてパースするインラインマーカーの書式。
// 検証はしない、モデルへのお願いベースの約束
const productMarkerRule = "" +
	"RESPONSE RULES:\n" +
	"1. When you recommend a product, you MUST append one marker line per product at the end of your reply:\n" +
	"   @@PRODUCT|ID|Name|Price|ImageURL@@\n" +
	"   (one marker per line, one line per product).\n" +
	"2. When the customer asks for details, answer in plain text based on the catalog specs; no marker unless you are recommending again.\n" +
	"3. Never reply with raw JSON. Plain text and @@PRODUCT@@ markers only.\n" +
	"4. Keep replies short and friendly."

type ChatUsecase struct {
	products     repo.ProductRepository
	client       CompletionClient
	systemPrompt string
}

// DI
func NewChatUsecase(products repo.ProductRepository, client CompletionClient, systemPrompt string) *ChatUsecase {
	return &ChatUsecase{
		products:     products,
		client:       client,
		systemPrompt: systemPrompt,
	}
}

// 公開中のカタログをコンテキストにして補完を呼ぶ。
// どんな失敗でもfallback文言を返す（このエンドポイントは常に200）
func (u *ChatUsecase) Chat(ctx context.Context, message string) string {
	products, err := u.products.ListActive(ctx)
	if err != nil {
		return fallbackReply
	}

	system := u.buildSystemPrompt(products)

	reply, err := u.client.Complete(ctx, system, message)
	if err != nil || strings.TrimSpace(reply) == "" {
		return fallbackReply
	}
	return reply
}

func (u *ChatUsecase) buildSystemPrompt(products []model.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		desc := ""
		if p.Desc != nil {
			desc = *p.Desc
		}
		lines = append(lines, fmt.Sprintf(
			"ID:%d|Name:%s|Price:%.0f|Specs:%s/%s, chip %s, battery %s, screen %s, condition %s|Stock:%d|Desc:%s|Image:%s",
			p.ID, p.Name, p.Price, p.RAM, p.Storage, p.Chip, p.Battery, p.Screen, p.Condition, p.Quantity, desc, p.Image,
		))
	}

	var b strings.Builder
	b.WriteString(u.systemPrompt)
	b.WriteString("\n\nSTORE CATALOG:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString(productMarkerRule)
	return b.String()
}
