package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Roopkumar213/KNG/internal/database"
	"github.com/Roopkumar213/KNG/internal/repository"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(":memory:")
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Init(); err != nil {
		t.Fatalf("db.Init() error = %v", err)
	}
	return db
}

func newTestAuthService(t *testing.T) (*AuthService, *repository.AuditRepository) {
	t.Helper()
	db := newTestDB(t)
	auditRepo := repository.NewAuditRepository(db)
	userRepo := repository.NewUserRepository(db)
	audit := NewAuditService(auditRepo)
	return NewAuthService(userRepo, audit, "test-secret"), auditRepo
}

func TestAuthService_HashPassword(t *testing.T) {
	svc := &AuthService{}

	password := "testpassword123"
	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "" {
		t.Error("HashPassword() returned empty string")
	}
	if hash == password {
		t.Error("HashPassword() returned plain password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		t.Errorf("Hash verification failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrongpassword")); err == nil {
		t.Error("Hash verification should fail for wrong password")
	}
}

func TestAuthService_IssueAndValidateToken(t *testing.T) {
	svc := &AuthService{secret: []byte("test-secret")}

	token, err := svc.IssueToken(42)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("IssueToken() returned empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}

	until := time.Until(claims.ExpiresAt.Time)
	if until < 23*time.Hour || until > 25*time.Hour {
		t.Errorf("token expiry %v from now, want ~24h", until)
	}
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	svc := &AuthService{secret: []byte("test-secret")}

	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken(expired) error = %v, want ErrInvalidToken", err)
	}
}

func TestAuthService_ValidateToken_BadSignature(t *testing.T) {
	svc := &AuthService{secret: []byte("test-secret")}

	other := &AuthService{secret: []byte("other-secret")}
	token, err := other.IssueToken(1)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken(bad signature) error = %v, want ErrInvalidToken", err)
	}
}

func TestAuthService_ValidateToken_WrongAlgorithm(t *testing.T) {
	svc := &AuthService{secret: []byte("test-secret")}

	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken(HS512) error = %v, want ErrInvalidToken", err)
	}
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := &AuthService{secret: []byte("test-secret")}

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken(%q) error = %v, want ErrInvalidToken", tok, err)
		}
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, auditRepo := newTestAuthService(t)

	token, err := svc.Login(database.DefaultAdminEmail, database.DefaultAdminPassword, "127.0.0.1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}

	entries, err := auditRepo.ListRecent(50)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want exactly 1", len(entries))
	}
	entry := entries[0]
	if entry.EventType != EventLoginSuccess {
		t.Errorf("EventType = %q, want %q", entry.EventType, EventLoginSuccess)
	}
	if entry.UserID == nil {
		t.Error("UserID = nil, want resolved admin id")
	}
	if !strings.Contains(entry.Description, database.DefaultAdminEmail) {
		t.Errorf("Description = %q, should name the email", entry.Description)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, auditRepo := newTestAuthService(t)

	_, err := svc.Login("ghost@example.com", "whatever", "10.0.0.1")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("Login() error = %v, want ErrUserNotFound", err)
	}

	entries, _ := auditRepo.ListRecent(50)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want exactly 1", len(entries))
	}
	if entries[0].EventType != EventLoginFail {
		t.Errorf("EventType = %q, want %q", entries[0].EventType, EventLoginFail)
	}
	if entries[0].UserID != nil {
		t.Errorf("UserID = %v, want nil for unknown email", *entries[0].UserID)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, auditRepo := newTestAuthService(t)

	_, err := svc.Login(database.DefaultAdminEmail, "wrong-password", "10.0.0.1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}

	entries, _ := auditRepo.ListRecent(50)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want exactly 1", len(entries))
	}
	if entries[0].EventType != EventLoginFail {
		t.Errorf("EventType = %q, want %q", entries[0].EventType, EventLoginFail)
	}
	if entries[0].UserID == nil {
		t.Error("UserID = nil, want resolved id for known email")
	}
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	svc, auditRepo := newTestAuthService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"no email", "", "admin123"},
		{"no password", database.DefaultAdminEmail, ""},
		{"neither", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(tt.email, tt.password, "10.0.0.1")
			if !errors.Is(err, ErrMissingCredentials) {
				t.Errorf("Login() error = %v, want ErrMissingCredentials", err)
			}
		})
	}

	entries, _ := auditRepo.ListRecent(50)
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3 (one per attempt)", len(entries))
	}
	for _, e := range entries {
		if e.EventType != EventLoginFail {
			t.Errorf("EventType = %q, want %q", e.EventType, EventLoginFail)
		}
		if e.UserID != nil {
			t.Errorf("UserID = %v, want nil before lookup", *e.UserID)
		}
	}
}
