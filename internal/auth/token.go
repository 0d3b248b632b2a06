package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the full identity payload carried by a token. The token is
// self-contained: there is no server-side session or revocation list.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "user" or "admin"
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	School string `json:"school"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies identity tokens with a shared HMAC
// secret. It holds no mutable state and is safe for concurrent use.
type TokenService struct {
	hmac []byte
	ttl  time.Duration
	now  func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{hmac: []byte(secret), ttl: ttl, now: time.Now}
}

// NewTokenServiceWithClock is test-only for deterministic issue/expiry.
func NewTokenServiceWithClock(secret string, ttl time.Duration, now func() time.Time) *TokenService {
	return &TokenService{hmac: []byte(secret), ttl: ttl, now: now}
}

// Issue signs a token carrying the given identity fields. It fails only
// when the signing backend does.
func (s *TokenService) Issue(userID, role, name, email, phone, school string) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		Name:   name,
		Email:  email,
		Phone:  phone,
		School: school,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.hmac)
}

// Verify parses and validates a token. A bad signature, a malformed
// token, and expiry all come back as a plain error; callers treat any
// error as "not authenticated".
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.hmac, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	c, ok := token.Claims.(*Claims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return c, nil
}
