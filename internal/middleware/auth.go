package middleware

import (
	stderrors "errors"

	"property-ledger/internal/errors"
	"property-ledger/internal/handlers"
	"property-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// LandlordIDContextKey holds the token subject that scopes every query
	LandlordIDContextKey = handlers.LandlordIDContextKey
	// LandlordEmailContextKey holds the email claim, when the token carries one
	LandlordEmailContextKey = "landlord_email"
)

// RequireAuth creates a middleware that requires a valid identity provider
// bearer token and stores the landlord it identifies on the context
func RequireAuth(verifier services.TokenVerifierInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := verifier.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				switch {
				case stderrors.Is(err, services.ErrExpiredToken):
					return handlers.SendError(c, errors.AuthExpiredToken)
				case stderrors.Is(err, services.ErrMissingSubject):
					return handlers.SendError(c, errors.AuthInvalidToken, errors.WithDetails("Token has no subject"))
				default:
					return handlers.SendError(c, errors.AuthInvalidToken)
				}
			}

			c.Set(LandlordIDContextKey, claims.LandlordID())
			c.Set(LandlordEmailContextKey, claims.Email)

			return next(c)
		}
	}
}
