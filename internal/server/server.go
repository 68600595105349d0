package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ルート登録に必要なハンドラ一式
type Handlers struct {
	Product   *handler.ProductHandler
	Auth      *handler.AuthHandler
	Order     *handler.OrderHandler
	Review    *handler.ReviewHandler
	Dashboard *handler.DashboardHandler
	Chat      *handler.ChatHandler
	Upload    *handler.UploadHandler
	Seed      *handler.SeedHandler
}

func Start(addr string, staticDir string, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	//dev用。全オリジン許可
	e.Use(middleware.CORS())

	//アップロード画像の配信
	e.Static("/static", staticDir)

	h.Product.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Review.RegisterRoutes(e)
	h.Dashboard.RegisterRoutes(e)
	h.Chat.RegisterRoutes(e)
	h.Upload.RegisterRoutes(e)
	h.Seed.RegisterRoutes(e)

	return e.Start(addr)
}
