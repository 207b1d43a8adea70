package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skytrails/travel-platform/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// JWTCodec signs and verifies HS256 tokens carrying email and role claims.
// Every cooperating process must hold the same secret for verification to
// succeed.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTCodec(secret []byte, ttl time.Duration) *JWTCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTCodec{secret: secret, ttl: ttl, now: time.Now}
}

func (c *JWTCodec) Mint(email string, role domain.Role) (string, error) {
	now := c.now().UTC()
	claims := jwt.MapClaims{
		"email": email,
		"role":  string(role),
		"iat":   now.Unix(),
		"exp":   now.Add(c.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify decodes and checks the token, returning the embedded claims.
// Failures are collapsed into three terminal outcomes: expired, bad
// signature, or malformed.
func (c *JWTCodec) Verify(token string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())

	switch {
	case err == nil && tkn.Valid:
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.Claims{}, domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.Claims{}, domain.ErrBadSignature
	default:
		return domain.Claims{}, domain.ErrMalformedToken
	}

	return claimsFromMap(claims)
}

// claimsFromMap converts raw JWT claims into domain claims. Tokens whose
// role is outside the known enum are rejected as malformed rather than
// passed through.
func claimsFromMap(m jwt.MapClaims) (domain.Claims, error) {
	email, _ := m["email"].(string)
	roleStr, _ := m["role"].(string)

	role, err := domain.ParseRole(roleStr)
	if err != nil || email == "" {
		return domain.Claims{}, domain.ErrMalformedToken
	}

	out := domain.Claims{Email: email, Role: role}
	if exp, expErr := m.GetExpirationTime(); expErr == nil && exp != nil {
		out.ExpiresAt = exp.Time.UTC()
	}
	if iat, iatErr := m.GetIssuedAt(); iatErr == nil && iat != nil {
		out.IssuedAt = iat.Time.UTC()
	}
	return out, nil
}
