package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func parseIDParam(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// /products のAPI
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
	e.POST("/products", h.create)
	e.PUT("/products/:id", h.update)
	e.DELETE("/products/:id", h.delete)
}

func (h *ProductHandler) list(c echo.Context) error {
	in := usecase.ListProductsInput{
		Brand:  c.QueryParam("brand"),
		Search: c.QueryParam("search"),
		SortBy: c.QueryParam("sort_by"),
	}

	if v := c.QueryParam("min_price"); v != "" {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_price"})
		}
		in.MinPrice = &x
	}
	if v := c.QueryParam("max_price"); v != "" {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid max_price"})
		}
		in.MaxPrice = &x
	}
	if v := c.QueryParam("skip"); v != "" {
		x, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid skip"})
		}
		in.Skip = x
	}
	if v := c.QueryParam("limit"); v != "" {
		x, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		in.Limit = x
	}

	out, err := h.uc.ListProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type productCreateRequest struct {
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Price     float64  `json:"price"`
	OldPrice  *float64 `json:"old_price"`
	Image     string   `json:"image"`
	Quantity  int64    `json:"quantity"`
	IsActive  bool     `json:"is_active"`
	RAM       string   `json:"ram"`
	Storage   string   `json:"storage"`
	Condition string   `json:"condition"`
	Chip      string   `json:"chip"`
	Screen    string   `json:"screen"`
	Battery   string   `json:"battery"`
	Desc      *string  `json:"desc"`
}

func (h *ProductHandler) create(c echo.Context) error {
	//未指定時のデフォルト（旧スキーマと同じ）
	req := productCreateRequest{Quantity: 10, IsActive: true}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:      req.Name,
		Brand:     req.Brand,
		Price:     req.Price,
		OldPrice:  req.OldPrice,
		Image:     req.Image,
		Quantity:  req.Quantity,
		IsActive:  req.IsActive,
		RAM:       req.RAM,
		Storage:   req.Storage,
		Condition: req.Condition,
		Chip:      req.Chip,
		Screen:    req.Screen,
		Battery:   req.Battery,
		Desc:      req.Desc,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

type productUpdateRequest struct {
	Name      *string  `json:"name"`
	Brand     *string  `json:"brand"`
	Price     *float64 `json:"price"`
	OldPrice  *float64 `json:"old_price"`
	Image     *string  `json:"image"`
	Quantity  *int64   `json:"quantity"`
	IsActive  *bool    `json:"is_active"`
	RAM       *string  `json:"ram"`
	Storage   *string  `json:"storage"`
	Condition *string  `json:"condition"`
	Chip      *string  `json:"chip"`
	Screen    *string  `json:"screen"`
	Battery   *string  `json:"battery"`
	Desc      *string  `json:"desc"`
}

func (h *ProductHandler) update(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req productUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:      req.Name,
		Brand:     req.Brand,
		Price:     req.Price,
		OldPrice:  req.OldPrice,
		Image:     req.Image,
		Quantity:  req.Quantity,
		IsActive:  req.IsActive,
		RAM:       req.RAM,
		Storage:   req.Storage,
		Condition: req.Condition,
		Chip:      req.Chip,
		Screen:    req.Screen,
		Battery:   req.Battery,
		Desc:      req.Desc,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "product deleted (soft delete)"})
}
