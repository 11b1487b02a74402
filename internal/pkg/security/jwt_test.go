package security

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("64f0c2a5e13b4a0001020304")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "64f0c2a5e13b4a0001020304" {
		t.Fatalf("unexpected user id %q", claims.UserID)
	}
	if claims.Issuer != "Vidstream" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
	if time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Fatalf("token already expired")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("64f0c2a5e13b4a0001020304")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]
	if _, err = ValidateToken(tampered); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}

	if _, err = ValidateToken("not-a-token"); err == nil {
		t.Fatalf("expected garbage token to be rejected")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	savedExpiration := jwtExpirationTime
	jwtExpirationTime = -time.Hour
	defer func() { jwtExpirationTime = savedExpiration }()

	token, err := GenerateToken("64f0c2a5e13b4a0001020304")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err = ValidateToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken("64f0c2a5e13b4a0001020304")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	signature, err := ExtractSignature(token)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if signature != strings.Split(token, ".")[2] {
		t.Fatalf("unexpected signature %q", signature)
	}

	if _, err = ExtractSignature("two.parts"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}
