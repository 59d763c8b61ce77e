package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testUserID = uuid.MustParse("6f1c2f0e-8f5a-4d55-9a57-0a4f0b3e2c11")

type testRequest struct {
	method    string
	target    string
	body      string
	principal *deliverycontext.Principal
	headers   map[string]string
	params    map[string]string
}

func shopper() *deliverycontext.Principal {
	return &deliverycontext.Principal{UserID: testUserID, Role: entity.RoleUser}
}

func staff(role entity.Role) *deliverycontext.Principal {
	return &deliverycontext.Principal{UserID: testUserID, Role: role}
}

// newTestContext builds an echo context the way the router would hand it to a handler.
func newTestContext(tr testRequest) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}
	req := httptest.NewRequest(tr.method, tr.target, body)
	if tr.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range tr.headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if len(tr.params) > 0 {
		names := make([]string, 0, len(tr.params))
		values := make([]string, 0, len(tr.params))
		for k, v := range tr.params {
			names = append(names, k)
			values = append(values, v)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if tr.principal != nil {
		deliverycontext.SetPrincipal(c, *tr.principal)
	}

	return c, rec
}

// decodeData unwraps the success envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)

	return envelope.Error
}

func TestCartOwner(t *testing.T) {
	c, _ := newTestContext(testRequest{method: http.MethodGet, target: "/", principal: shopper(),
		headers: map[string]string{deliverycontext.HeaderGuestCartID: "guest-1"}})
	owner := cartOwner(c)
	require.NotNil(t, owner.UserID)
	require.Equal(t, testUserID, *owner.UserID)
	require.Empty(t, owner.GuestToken)

	c, _ = newTestContext(testRequest{method: http.MethodGet, target: "/",
		headers: map[string]string{deliverycontext.HeaderGuestCartID: " guest-1 "}})
	require.Equal(t, entity.CartOwner{GuestToken: "guest-1"}, cartOwner(c))

	c, _ = newTestContext(testRequest{method: http.MethodGet, target: "/",
		headers: map[string]string{deliverycontext.HeaderGuestCartID: strings.Repeat("x", maxGuestTokenLength+1)}})
	require.Empty(t, cartOwner(c).Key())
}
