package handler

import (
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const maxProductPageSize = 100

type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves the public catalog and its admin maintenance.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// ProductRequest is shared by create and update; omitted fields stay unchanged on update.
type ProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" validate:"omitempty,max=5000"`
	Price         *decimal.Decimal `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Discount      *int             `json:"discount" validate:"omitempty,min=0,max=100"`
	Images        []string         `json:"images" validate:"omitempty,dive,url"`
	CategoryID    *string          `json:"category_id"`
	Rating        *float64         `json:"rating" validate:"omitempty,min=0,max=5"`
	Reviews       *int             `json:"reviews" validate:"omitempty,min=0"`
	Stock         *int             `json:"stock" validate:"omitempty,min=0"`
	Featured      *bool            `json:"featured"`
	Trending      *bool            `json:"trending"`
	IsActive      *bool            `json:"is_active"`
}

func (r *ProductRequest) toInput() (*usecase.ProductInput, bool) {
	input := &usecase.ProductInput{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Discount:      r.Discount,
		Images:        r.Images,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		Stock:         r.Stock,
		Featured:      r.Featured,
		Trending:      r.Trending,
		IsActive:      r.IsActive,
	}

	if r.CategoryID != nil {
		// "" clears the category.
		id := uuid.Nil
		if raw := strings.TrimSpace(*r.CategoryID); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				return nil, false
			}
			id = parsed
		}
		input.CategoryID = &id
	}

	return input, true
}

type CategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Image string `json:"image" validate:"omitempty,url"`
}

func productFilter(c echo.Context) entity.ProductFilter {
	limit := intQuery(c, "limit", 0)
	if limit < 0 || limit > maxProductPageSize {
		limit = maxProductPageSize
	}
	offset := max(intQuery(c, "offset", 0), 0)

	return entity.ProductFilter{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Search:   strings.TrimSpace(c.QueryParam("search")),
		Featured: boolQuery(c, "featured"),
		Trending: boolQuery(c, "trending"),
		Limit:    limit,
		Offset:   offset,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context(), productFilter(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "product")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	category, err := h.catalogUC.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// AdminListProducts includes inactive products.
func (h *CatalogHandler) AdminListProducts(c echo.Context) error {
	filter := productFilter(c)
	filter.IncludeInactive = true

	products, err := h.catalogUC.AdminListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	input, ok, err := h.bindProduct(c)
	if !ok {
		return err
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "product")
	}
	input, ok, err := h.bindProduct(c)
	if !ok {
		return err
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// bindProduct returns ok=false with the already-written error response.
func (h *CatalogHandler) bindProduct(c echo.Context) (*usecase.ProductInput, bool, error) {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return nil, false, response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, false, response.ValidationError(c, err)
	}

	input, ok := req.toInput()
	if !ok {
		return nil, false, response.InvalidID(c, "category")
	}

	return input, true, nil
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "product")
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Product deleted")
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), &usecase.CategoryInput{Name: req.Name, Image: req.Image})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "category")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), id, &usecase.CategoryInput{Name: req.Name, Image: req.Image})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "category")
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Category deleted")
}
