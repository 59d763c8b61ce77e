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

func TestCustomizationHandler_Submit(t *testing.T) {
	body := `{"product_name":"Silk Saree","text":"Gold peacock on the pallu","name":"Asha","email":"asha@example.com","phone":"9876543210","address":"12 MG Road","pincode":"411001"}`

	t.Run("guest", func(t *testing.T) {
		customizationUC := mockUC.NewMockCustomizationUsecase(t)
		h := NewCustomizationHandler(CustomizationHandlerParams{CustomizationUC: customizationUC})

		customizationUC.EXPECT().
			Submit(mock.Anything, (*uuid.UUID)(nil), mock.MatchedBy(func(sub *entity.CustomizationSubmission) bool {
				return sub.ProductName == "Silk Saree" && sub.Contact.Pincode == "411001"
			})).
			Return(&usecase.CustomizationOutput{Order: &entity.Order{OrderNumber: "CUST-1718000000000"}}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/", body: body})
		require.NoError(t, h.Submit(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var out usecase.CustomizationOutput
		decodeData(t, rec, &out)
		assert.Equal(t, "CUST-1718000000000", out.Order.OrderNumber)
	})

	t.Run("signed in", func(t *testing.T) {
		customizationUC := mockUC.NewMockCustomizationUsecase(t)
		h := NewCustomizationHandler(CustomizationHandlerParams{CustomizationUC: customizationUC})

		customizationUC.EXPECT().
			Submit(mock.Anything, &testUserID, mock.Anything).
			Return(&usecase.CustomizationOutput{}, nil)

		c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/", body: body, principal: shopper()})
		require.NoError(t, h.Submit(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("bad image url", func(t *testing.T) {
		h := NewCustomizationHandler(CustomizationHandlerParams{CustomizationUC: mockUC.NewMockCustomizationUsecase(t)})

		c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/", body: `{"image":"not a url"}`})
		require.NoError(t, h.Submit(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Code)
	})
}

func TestCustomizationHandler_Quote(t *testing.T) {
	customizationUC := mockUC.NewMockCustomizationUsecase(t)
	h := NewCustomizationHandler(CustomizationHandlerParams{CustomizationUC: customizationUC})
	id := uuid.New()

	customizationUC.EXPECT().
		Quote(mock.Anything, id, mock.MatchedBy(func(p decimal.Decimal) bool { return p.Equal(decimal.NewFromInt(2500)) })).
		Return(&usecase.CustomizationOutput{}, nil)
	c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/", body: `{"price":"2500"}`, params: map[string]string{"id": id.String()}})
	require.NoError(t, h.Quote(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	customizationUC.EXPECT().
		Quote(mock.Anything, id, mock.MatchedBy(func(p decimal.Decimal) bool { return p.IsZero() })).
		Return(nil, domainerrors.ErrInvalidQuote)
	c, rec = newTestContext(testRequest{method: http.MethodPost, target: "/", body: `{"price":0}`, params: map[string]string{"id": id.String()}})
	require.NoError(t, h.Quote(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUOTE", decodeError(t, rec).Code)
}

func TestCustomizationHandler_Review(t *testing.T) {
	customizationUC := mockUC.NewMockCustomizationUsecase(t)
	h := NewCustomizationHandler(CustomizationHandlerParams{CustomizationUC: customizationUC})
	id := uuid.New()

	customizationUC.EXPECT().
		Review(mock.Anything, id, entity.CustomizationStatusApproved, "looks good").
		Return(&entity.CustomizationRequest{ID: id, Status: entity.CustomizationStatusApproved}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPatch,
		target: "/",
		body:   `{"status":"approved","notes":"looks good"}`,
		params: map[string]string{"id": id.String()},
	})
	require.NoError(t, h.Review(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
