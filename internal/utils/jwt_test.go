package utils

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"extra spaces", "  Bearer   abc  ", "abc", false},
		{"empty", "", "", true},
		{"no token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Fatalf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func TestUserIDFromToken_UserIDClaim(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"user_id": "uid-123", "sub": "other"})

	got, err := UserIDFromToken(token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != "uid-123" {
		t.Errorf("expected 'uid-123', got '%s'", got)
	}
}

func TestUserIDFromToken_SubjectFallback(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "uid-456"})

	got, err := UserIDFromToken(token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != "uid-456" {
		t.Errorf("expected 'uid-456', got '%s'", got)
	}
}

func TestUserIDFromToken_NoIdentity(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"iss": "idp"})

	_, err := UserIDFromToken(token)
	if !errors.Is(err, ErrNoUserIDClaim) {
		t.Fatalf("expected ErrNoUserIDClaim, got %v", err)
	}
}

func TestUserIDFromToken_Malformed(t *testing.T) {
	if _, err := UserIDFromToken("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
