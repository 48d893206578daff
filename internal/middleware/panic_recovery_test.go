package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-dashboard/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo   *echo.Echo
	logs   *bytes.Buffer
	logger *slog.Logger
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.logs = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.logs, nil))
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) newContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath(path)
	return c, rec
}

func (s *PanicRecoveryTestSuite) TestRecoversWithSystemError() {
	c, rec := s.newContext("/api/v1/sync")
	c.Set(TraceIDContextKey, "trace-sync-1")

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		panic("nil summary")
	})

	s.NotPanics(func() {
		_ = handler(c)
	})

	s.Equal(http.StatusInternalServerError, rec.Code)
	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal(string(errors.SystemInternalError), errorResponse.Error.Code)
	s.Equal("trace-sync-1", errorResponse.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestLogsTraceAndUser() {
	userID := uuid.New()
	c, _ := s.newContext("/api/v1/recurring/sync")
	c.Set(TraceIDContextKey, "trace-recurring-1")
	c.Set(UserIDContextKey, userID)

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		panic("index out of range")
	})
	_ = handler(c)

	var entry map[string]any
	s.Require().NoError(json.Unmarshal(s.logs.Bytes(), &entry))
	s.Equal("panic recovered", entry["msg"])
	s.Equal("ERROR", entry["level"])
	s.Equal("trace-recurring-1", entry["trace_id"])
	s.Equal(userID.String(), entry["user_id"])
	s.Equal("index out of range", entry["panic"])
	s.Equal("/api/v1/recurring/sync", entry["path"])
	s.NotEmpty(entry["stack_trace"])
}

func (s *PanicRecoveryTestSuite) TestCountsAPIError() {
	const path = "/api/v1/transactions/auto-categorize"
	counter := apiErrorsTotal.WithLabelValues(string(errors.SystemInternalError), path, "500")
	before := testutil.ToFloat64(counter)

	c, _ := s.newContext(path)
	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		panic("categorizer exploded")
	})
	_ = handler(c)

	s.Equal(before+1, testutil.ToFloat64(counter))
}

func (s *PanicRecoveryTestSuite) TestNoTraceID() {
	c, _ := s.newContext("/api/v1/accounts")

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		panic("test panic")
	})
	_ = handler(c)

	var entry map[string]any
	s.Require().NoError(json.Unmarshal(s.logs.Bytes(), &entry))
	s.Equal("unknown", entry["trace_id"])
	s.NotContains(entry, "user_id")
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseIsNotRewritten() {
	c, rec := s.newContext("/api/v1/sync")

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		c.Response().WriteHeader(http.StatusOK)
		panic("after headers")
	})

	s.NotPanics(func() {
		_ = handler(c)
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestNormalFlow() {
	c, rec := s.newContext("/api/v1/recurring")

	handler := PanicRecovery(s.logger)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.logs.String())
}

func (s *PanicRecoveryTestSuite) TestDifferentPanicTypes() {
	testCases := []struct {
		name      string
		panicWith interface{}
	}{
		{"string", "string panic"},
		{"error", http.ErrHandlerTimeout},
		{"int", 42},
		{"nil", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.newContext("/api/v1/sync")

			handler := PanicRecovery(nil)(func(c echo.Context) error {
				panic(tc.panicWith)
			})

			s.NotPanics(func() {
				_ = handler(c)
			})
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}
