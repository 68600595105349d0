package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AIアシスタントのAPI
type ChatHandler struct {
	uc *usecase.ChatUsecase
}

// DI
func NewChatHandler(uc *usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/ai/chat", h.chat)
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// 失敗してもfallback文言で常に200を返す
func (h *ChatHandler) chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	reply := h.uc.Chat(c.Request().Context(), req.Message)
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}
