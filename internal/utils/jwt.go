package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrNoUserIDClaim              = errors.New("token carries no user id")
)

// UserIDClaim is the custom claim holding the identity provider's user ID.
// When absent the standard "sub" claim is used.
const UserIDClaim = "user_id"

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// UserIDFromToken returns the stable user identifier carried by an identity
// token.
//
// The signature is NOT verified: the identity provider has already done that
// on the client, and the identifier is only used locally as key-derivation
// input. Never use this to authorise access to server-side resources.
//
// Example usage:
//
//	uid, err := utils.UserIDFromToken(rawIDToken)
func UserIDFromToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	if uid, ok := claims[UserIDClaim].(string); ok && uid != "" {
		return uid, nil
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("read subject: %w", err)
	}
	if sub == "" {
		return "", ErrNoUserIDClaim
	}

	return sub, nil
}
