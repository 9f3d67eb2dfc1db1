package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifyRoundTrip(t *testing.T) {
	v := NewVerifier(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"userId": "user-42",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	userID, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("userID = %q; want user-42", userID)
	}
}

func TestVerifyRejections(t *testing.T) {
	v := NewVerifier(testSecret)

	cases := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage token", "not.a.jwt"},
		{"wrong secret", signToken(t, "other-secret", jwt.MapClaims{
			"userId": "user-42",
			"exp":    time.Now().Add(time.Hour).Unix(),
		})},
		{"expired token", signToken(t, testSecret, jwt.MapClaims{
			"userId": "user-42",
			"exp":    time.Now().Add(-time.Minute).Unix(),
		})},
		{"missing userId claim", signToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := v.Verify(c.token); !errors.Is(err, ErrRejected) {
				t.Fatalf("Verify(%q) error = %v; want ErrRejected", c.name, err)
			}
		})
	}
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	v := NewVerifier(testSecret)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"userId": "user-42"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := v.Verify(signed); !errors.Is(err, ErrRejected) {
		t.Fatalf("Verify accepted alg=none token: %v", err)
	}
}
