package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListProducts_ParsesFilter(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC})

	featured := true
	catalogUC.EXPECT().
		ListProducts(mock.Anything, entity.ProductFilter{
			Category: "Sarees",
			Search:   "silk",
			Featured: &featured,
			Limit:    maxProductPageSize,
			Offset:   0,
		}).
		Return([]*usecase.ProductView{{Product: &entity.Product{Name: "Silk saree"}}}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/v1/products?category=Sarees&search=+silk+&featured=true&trending=maybe&limit=5000&offset=-3",
	})

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Silk saree")
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC})

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/", params: map[string]string{"id": "42"}})
	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)

	id := uuid.New()
	catalogUC.EXPECT().GetProduct(mock.Anything, id).Return(nil, domainerrors.ErrProductNotFound)
	c, rec = newTestContext(testRequest{method: http.MethodGet, target: "/", params: map[string]string{"id": id.String()}})
	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandler_AdminListProducts_IncludesInactive(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC})

	catalogUC.EXPECT().
		AdminListProducts(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
			return f.IncludeInactive
		})).
		Return([]*entity.Product{}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/admin/products", principal: staff(entity.RoleAdmin)})
	require.NoError(t, h.AdminListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_UpdateProduct_CategoryHandling(t *testing.T) {
	productID := uuid.New()
	categoryID := uuid.New()

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantInput func(in *usecase.ProductInput) bool
	}{
		{
			name:     "empty category clears it",
			body:     `{"category_id":"","price":"1299.50"}`,
			wantCode: http.StatusOK,
			wantInput: func(in *usecase.ProductInput) bool {
				return in.CategoryID != nil && *in.CategoryID == uuid.Nil &&
					in.Price != nil && in.Price.Equal(decimal.RequireFromString("1299.5"))
			},
		},
		{
			name:     "category id is parsed",
			body:     `{"category_id":"` + categoryID.String() + `"}`,
			wantCode: http.StatusOK,
			wantInput: func(in *usecase.ProductInput) bool {
				return in.CategoryID != nil && *in.CategoryID == categoryID && in.Name == nil
			},
		},
		{
			name:     "malformed category id",
			body:     `{"category_id":"shoes"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "discount out of range",
			body:     `{"discount":150}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogUC := mockUC.NewMockCatalogUsecase(t)
			h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC})
			if tt.wantInput != nil {
				catalogUC.EXPECT().
					UpdateProduct(mock.Anything, productID, mock.MatchedBy(tt.wantInput)).
					Return(&entity.Product{ID: productID}, nil)
			}

			c, rec := newTestContext(testRequest{
				method: http.MethodPatch,
				target: "/",
				body:   tt.body,
				params: map[string]string{"id": productID.String()},
			})

			require.NoError(t, h.UpdateProduct(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestCatalogHandler_CreateCategory_Conflict(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC})

	catalogUC.EXPECT().
		CreateCategory(mock.Anything, &usecase.CategoryInput{Name: "Kurtas"}).
		Return(nil, domainerrors.ErrCategoryAlreadyExists)

	c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/", body: `{"name":"Kurtas"}`})
	require.NoError(t, h.CreateCategory(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
