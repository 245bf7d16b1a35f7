package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried by an access token.
type Claims struct {
	UserID int64  `json:"-"`
	Email  string `json:"email"`
}

// TokenClaims is the on-the-wire claim set of an access token.
//
// The user id travels in the standard "sub" claim; the e-mail is a private
// claim. Expiry, issuance time and issuer come from [jwt.RegisteredClaims].
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity converts the wire claims back into [Claims].
//
// Returns an error if the subject claim is missing or is not a base-10 int64.
func (t *TokenClaims) Identity() (Claims, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return Claims{}, fmt.Errorf("error extracting subject from token: %w", err)
	}
	if subject == "" {
		return Claims{}, fmt.Errorf("empty subject in token")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return Claims{}, fmt.Errorf("error converting subject to user id: %w", err)
	}

	return Claims{UserID: userID, Email: t.Email}, nil
}

// Token is an issued access token.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// ExpiresAt is the moment after which the token no longer verifies.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
