package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"finance-dashboard/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// newTestEcho returns an echo instance carrying the application validator
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newAuthedContext builds a request context as RequireAuth would leave it
func newAuthedContext(e *echo.Echo, method, target string, body interface{}, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req = httptest.NewRequest(method, target, nil)
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set("user_id", userID)
	}
	return c, rec
}

func decodeErrorCode(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		return ""
	}
	return resp.Error.Code
}
