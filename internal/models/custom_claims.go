package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims are the claims read from identity provider access tokens.
// The subject is the landlord ID that scopes every query.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// LandlordID returns the token subject
func (c *IdentityClaims) LandlordID() string {
	return c.Subject
}
