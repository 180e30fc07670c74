package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Roopkumar213/KNG/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// TokenTTL is the lifetime of an issued bearer token.
const TokenTTL = 24 * time.Hour

// Claims are the payload of an issued token.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type AuthService struct {
	userRepo *repository.UserRepository
	audit    *AuditService
	secret   []byte
}

func NewAuthService(userRepo *repository.UserRepository, audit *AuditService, secret string) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		audit:    audit,
		secret:   []byte(secret),
	}
}

// Login verifies the credentials and returns a signed token. Every attempt,
// successful or not, appends exactly one audit entry. The distinct errors
// exist for auditing; handlers must collapse them into one generic 401.
func (s *AuthService) Login(email, password, ip string) (string, error) {
	if email == "" || password == "" {
		attempted := email
		if attempted == "" {
			attempted = "unknown"
		}
		s.audit.Record(EventLoginFail, fmt.Sprintf("Missing credentials for %s", attempted), nil, ip)
		return "", ErrMissingCredentials
	}

	user, err := s.userRepo.GetByEmail(email)
	if errors.Is(err, repository.ErrNotFound) {
		s.audit.Record(EventLoginFail, fmt.Sprintf("User not found: %s", email), nil, ip)
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.audit.Record(EventLoginFail, fmt.Sprintf("Invalid password: %s", email), &user.ID, ip)
		return "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return "", err
	}

	s.audit.Record(EventLoginSuccess, fmt.Sprintf("Admin login: %s", email), &user.ID, ip)
	return token, nil
}

// IssueToken signs a token for the user, valid for TokenTTL.
func (s *AuthService) IssueToken(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken checks signature, algorithm and expiry. Callers must not
// distinguish failure reasons to the client.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
