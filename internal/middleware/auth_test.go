package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) createTokenService(duration time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: duration,
	})
}

func (s *AuthMiddlewareSuite) serve(authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(RequireAuth(s.tokenService)(next)(c))
	return rec
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	userID := uuid.New()
	token, _, err := s.tokenService.GenerateAccessToken(userID, "test@example.com")
	s.Require().NoError(err)

	rec := s.serve("Bearer "+token, func(c echo.Context) error {
		s.Equal(userID, c.Get(UserIDContextKey))
		s.Equal("test@example.com", c.Get(UserEmailContextKey))
		return okHandler(c)
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec := s.serve("", func(c echo.Context) error {
		s.Fail("handler must not run")
		return nil
	})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	for _, header := range []string{"Basic abc", "Bearer", "token-without-scheme"} {
		s.Run(header, func() {
			rec := s.serve(header, okHandler)
			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
		})
	}
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidToken() {
	rec := s.serve("Bearer not.a.jwt", okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedByAnotherKey() {
	other := s.createTokenService(time.Hour)
	token, _, err := other.GenerateAccessToken(uuid.New(), "other@example.com")
	s.Require().NoError(err)

	rec := s.serve("Bearer "+token, okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	s.tokenService = s.createTokenService(-time.Minute)
	token, _, err := s.tokenService.GenerateAccessToken(uuid.New(), "late@example.com")
	s.Require().NoError(err)

	rec := s.serve("Bearer "+token, okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthExpiredToken), s.errorCode(rec))
}
