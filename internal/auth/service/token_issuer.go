package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomo-auth/backend/internal/common/clock"
	"github.com/tomo-auth/backend/internal/common/jwtverify"
)

// TokenIssuer mints self-contained HS256 bearer tokens carrying the user id
// in the sub claim. There is no server-side session table: validity is
// decided solely by the signature (and by exp, when a TTL is configured).
type TokenIssuer struct {
	jwtSecret []byte
	clock     clock.Clock
	tokenTTL  time.Duration
}

// NewTokenIssuer creates an issuer. A zero tokenTTL means issued tokens
// carry no exp claim and never expire.
func NewTokenIssuer(jwtSecret string, tokenTTL time.Duration, clk clock.Clock) *TokenIssuer {
	return &TokenIssuer{
		jwtSecret: []byte(jwtSecret),
		clock:     clk,
		tokenTTL:  tokenTTL,
	}
}

func (ti *TokenIssuer) Issue(userID string) (string, error) {
	now := ti.clock.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
	}
	if ti.tokenTTL > 0 {
		claims["exp"] = now.Add(ti.tokenTTL).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := t.SignedString(ti.jwtSecret)
	if err != nil {
		return "", err
	}

	incrementTokensIssued()
	return tokenString, nil
}

// Verify returns the user id from a valid token. All failure modes surface
// as a single opaque error.
func (ti *TokenIssuer) Verify(tokenString string) (string, error) {
	claims, err := jwtverify.ParseToken(tokenString, ti.jwtSecret)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
