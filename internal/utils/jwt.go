package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenIssuer is stamped into every token and required on validation.
const tokenIssuer = "reimbursement-api"

// ErrInvalidToken is returned for tokens that parse but fail claim checks.
var ErrInvalidToken = errors.New("invalid token")

// JWTClaims identifies the employee a token was issued to.
type JWTClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTUtil issues and checks HS256 tokens signed with a shared secret.
type JWTUtil struct {
	secretKey []byte
	ttl       time.Duration
	parser    *jwt.Parser
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, expirationHours int64) *JWTUtil {
	return &JWTUtil{
		secretKey: []byte(secretKey),
		ttl:       time.Duration(expirationHours) * time.Hour,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(tokenIssuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// GenerateToken signs a token identifying the employee and their role.
func (ju *JWTUtil) GenerateToken(userID int, username, role string) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ju.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ju.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses tokenString and returns its claims. Tokens signed with
// any method other than HS256, from another issuer, or past expiry are rejected.
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := ju.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return ju.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || claims.Username == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
