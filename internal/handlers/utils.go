package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when landlord context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// LandlordIDContextKey is where the auth middleware stores the token subject
const LandlordIDContextKey = "landlord_id"

// getLandlordIDFromContext extracts the authenticated landlord ID.
// Returns ErrUnauthorized if it is missing or empty.
func getLandlordIDFromContext(c echo.Context) (string, error) {
	landlordID, ok := c.Get(LandlordIDContextKey).(string)
	if !ok || landlordID == "" {
		return "", ErrUnauthorized
	}
	return landlordID, nil
}

// parseUUIDParam parses a path parameter as a UUID
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}
