// Package auth validates bearer credentials into stable user identifiers.
// Token issuance and credential storage live in a separate service; this
// package only consumes tokens that service signed.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrRejected covers every verification failure: bad signature, expired
// token, wrong algorithm, missing identity claim. Callers treat a rejected
// credential as anonymous or as 401 depending on the operation.
var ErrRejected = errors.New("credential rejected")

// tokenClaims mirrors the claim set the auth service signs. The user
// identifier lives in the userId claim.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Verifier checks HMAC-signed bearer tokens against a shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for tokens signed with the given secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify decodes and validates a bearer token and returns the user
// identifier it carries. Only HS256 is accepted; any failure is reported
// as ErrRejected so callers cannot distinguish why a credential failed.
func (v *Verifier) Verify(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrRejected
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRejected, err)
	}

	if claims.UserID == "" {
		return "", fmt.Errorf("%w: token has no userId claim", ErrRejected)
	}

	return claims.UserID, nil
}
