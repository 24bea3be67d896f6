package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"property-ledger/internal/config"
	"property-ledger/internal/errors"
	"property-ledger/internal/models"
	"property-ledger/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	cfg      *config.AuthConfig
	verifier *services.TokenVerifier
	e        *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.cfg = &config.AuthConfig{
		PublicKey:     publicKey,
		DevSigningKey: privateKey,
		Issuer:        "https://id.example.com",
		DevTokenTTL:   time.Hour,
	}
	s.verifier = services.NewTokenVerifier(s.cfg)
	s.e = echo.New()
}

// serve runs RequireAuth in front of a handler that echoes the landlord it saw
func (s *AuthMiddlewareSuite) serve(authHeader string) (*httptest.ResponseRecorder, string) {
	var seen string
	handler := RequireAuth(s.verifier)(func(c echo.Context) error {
		seen, _ = c.Get(LandlordIDContextKey).(string)
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/utility-bills", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	// SendError writes the response and returns nil
	s.NoError(handler(s.e.NewContext(req, rec)))
	return rec, seen
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, _, err := s.verifier.MintDevToken("landlord_1", "owner@example.com", "Owner")
	s.Require().NoError(err)

	rec, landlordID := s.serve("Bearer " + token)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("landlord_1", landlordID)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	rec, landlordID := s.serve("")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingToken), s.errorCode(rec))
	s.Empty(landlordID)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_NotBearer() {
	rec, _ := s.serve("Basic dXNlcjpwYXNz")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	rec, _ := s.serve("Bearer invalid.jwt.token")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	past := time.Now().Add(-2 * time.Hour)
	claims := models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   "landlord_1",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.cfg.DevSigningKey)
	s.Require().NoError(err)

	rec, landlordID := s.serve("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthExpiredToken), s.errorCode(rec))
	s.Empty(landlordID)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_WrongSigningKey() {
	otherKey, _, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	other := services.NewTokenVerifier(&config.AuthConfig{
		PublicKey:     &otherKey.PublicKey,
		DevSigningKey: otherKey,
		Issuer:        s.cfg.Issuer,
		DevTokenTTL:   time.Hour,
	})
	token, _, err := other.MintDevToken("landlord_1", "", "")
	s.Require().NoError(err)

	rec, _ := s.serve("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingSubject() {
	claims := models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.cfg.DevSigningKey)
	s.Require().NoError(err)

	rec, _ := s.serve("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidToken), s.errorCode(rec))
}
