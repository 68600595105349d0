package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// サンプルデータ投入（dev用）
type SeedHandler struct {
	uc *usecase.SeedUsecase
}

// DI
func NewSeedHandler(uc *usecase.SeedUsecase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

func (h *SeedHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/seed", h.seed)
}

func (h *SeedHandler) seed(c echo.Context) error {
	seeded, err := h.uc.Seed(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	if !seeded {
		return c.JSON(http.StatusOK, MessageResponse{Message: "products already exist, nothing to seed"})
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "sample products seeded"})
}
