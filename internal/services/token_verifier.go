package services

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"property-ledger/internal/config"
	"property-ledger/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("token is expired")
	ErrEmptyToken            = errors.New("empty token")
	ErrMissingSubject        = errors.New("token has no subject")
	ErrInvalidAuthHeader     = errors.New("invalid authorization header format")
	ErrSigningKeyUnavailable = errors.New("no signing key configured")
)

var _ TokenVerifierInterface = (*TokenVerifier)(nil)

// TokenVerifier validates RS256 bearer tokens from the identity provider.
// The token subject is the landlord ID.
type TokenVerifier struct {
	publicKey  *rsa.PublicKey
	signingKey *rsa.PrivateKey
	issuer     string
	audience   string
	devTTL     time.Duration
}

// NewTokenVerifier creates a verifier from auth configuration. Issuer and
// audience are only enforced when configured.
func NewTokenVerifier(cfg *config.AuthConfig) *TokenVerifier {
	return &TokenVerifier{
		publicKey:  cfg.PublicKey,
		signingKey: cfg.DevSigningKey,
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		devTTL:     cfg.DevTokenTTL,
	}
}

// Verify parses and validates a token and returns its claims
func (tv *TokenVerifier) Verify(tokenString string) (*models.IdentityClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tv.issuer != "" {
		opts = append(opts, jwt.WithIssuer(tv.issuer))
	}
	if tv.audience != "" {
		opts = append(opts, jwt.WithAudience(tv.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.IdentityClaims{}, tv.keyFunc, opts...)
	if err != nil {
		return nil, tv.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.IdentityClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.LandlordID() == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the token from a Bearer Authorization header
func (tv *TokenVerifier) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// MintDevToken signs a token for landlordID with the locally generated key.
// It fails when the verifier was configured with the identity provider's key only.
func (tv *TokenVerifier) MintDevToken(landlordID, email, name string) (string, time.Time, error) {
	if tv.signingKey == nil {
		return "", time.Time{}, ErrSigningKeyUnavailable
	}
	if landlordID == "" {
		return "", time.Time{}, ErrMissingSubject
	}

	now := time.Now()
	expiresAt := now.Add(tv.devTTL)

	claims := models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tv.issuer,
			Subject:   landlordID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		Email: email,
		Name:  name,
	}
	if tv.audience != "" {
		claims.Audience = jwt.ClaimStrings{tv.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenString, err := token.SignedString(tv.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

func (tv *TokenVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return tv.publicKey, nil
}

func (tv *TokenVerifier) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
