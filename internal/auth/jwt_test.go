package auth

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	secret := "test-secret"

	tok, err := GenerateAccessToken("user-1", "admin@portfolio.com", secret)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	claims, err := ValidateAccessToken(tok, secret)
	if err != nil {
		t.Fatalf("ValidateAccessToken error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, "user-1")
	}
	if claims.Email != "admin@portfolio.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateAccessToken("user-1", "admin@portfolio.com", "right-secret")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	if _, err := ValidateAccessToken(tok, "wrong-secret"); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestAccessTokenMalformed(t *testing.T) {
	t.Parallel()

	if _, err := ValidateAccessToken("not.a.jwt", "secret"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}

func TestAccessTokenExpired(t *testing.T) {
	t.Parallel()

	secret := "secret"
	claims := Claims{
		UserID: "user-1",
		Email:  "admin@portfolio.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-16 * time.Minute)),
			Issuer:    "portfolio-api",
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := ValidateAccessToken(tok, secret); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

// A token minted now must still verify 14 minutes in, and must be rejected
// 16 minutes in.
func TestAccessTokenExpiryBoundary(t *testing.T) {
	t.Parallel()

	secret := "secret"
	mintedAt := time.Now()

	tok, err := GenerateAccessToken("user-1", "admin@portfolio.com", secret)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	parseAt := func(at time.Time) error {
		_, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithTimeFunc(func() time.Time { return at }))
		return err
	}

	if err := parseAt(mintedAt.Add(14 * time.Minute)); err != nil {
		t.Fatalf("token rejected at +14m: %v", err)
	}
	if err := parseAt(mintedAt.Add(16 * time.Minute)); err == nil {
		t.Fatal("token accepted at +16m, expected rejection")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	t.Parallel()

	tok, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}
	if len(tok) != 128 {
		t.Fatalf("length mismatch: got %d want 128", len(tok))
	}

	raw, err := hex.DecodeString(tok)
	if err != nil {
		t.Fatalf("token is not hex: %v", err)
	}
	if len(raw) != 64 {
		t.Fatalf("decoded length mismatch: got %d want 64", len(raw))
	}
}

func TestGenerateRefreshTokenUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := GenerateRefreshToken()
		if err != nil {
			t.Fatalf("GenerateRefreshToken error: %v", err)
		}
		if seen[tok] {
			t.Fatalf("duplicate refresh token generated: %s", tok)
		}
		seen[tok] = true
	}
}

func TestRefreshExpiry(t *testing.T) {
	t.Parallel()

	expiry := RefreshExpiry()
	want := time.Now().Add(RefreshTokenExpiry)
	if diff := expiry.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("expiry %v not near %v", expiry, want)
	}
}
