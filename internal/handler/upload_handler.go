package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// 画像アップロード。保存先はローカルディスク（dev用）
type UploadHandler struct {
	staticDir     string
	publicBaseURL string
}

// DI
func NewUploadHandler(staticDir string, publicBaseURL string) *UploadHandler {
	return &UploadHandler{staticDir: staticDir, publicBaseURL: publicBaseURL}
}

func (h *UploadHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/upload", h.upload)
}

func (h *UploadHandler) upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
	}
	defer src.Close()

	//衝突しない名前に付け替える（元のファイル名は信用しない）
	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dir := filepath.Join(h.staticDir, "images")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"url": h.publicBaseURL + "/static/images/" + name,
	})
}
