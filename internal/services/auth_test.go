package services

import (
	"testing"
	"time"

	"github.com/IoneseiGabriel/DavaQuiz/internal/apperr"
	"github.com/IoneseiGabriel/DavaQuiz/internal/ratelimit"
	"github.com/IoneseiGabriel/DavaQuiz/internal/testhelpers"
)

func newAuthService(t *testing.T, maxFailed int) *AuthService {
	t.Helper()
	limiter := ratelimit.New(maxFailed, 15*time.Minute, 15*time.Minute, nil)
	return NewAuthService(testhelpers.SetupTestDB(t), "test-secret", time.Hour, limiter)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newAuthService(t, 5)

	token, err := svc.Register("host1", "password123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	token, err = svc.Login("host1", "password123", "10.0.0.1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	userID, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if userID == 0 {
		t.Fatal("expected a user id from the token")
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc := newAuthService(t, 5)

	if _, err := svc.Register("host1", "password123"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := svc.Register("host1", "other-password"); !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := newAuthService(t, 5)

	if _, err := svc.Register("host1", "password123"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, err := svc.Login("host1", "wrong", "10.0.0.1"); !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized for wrong password, got %v", err)
	}
	if _, err := svc.Login("nobody", "password123", "10.0.0.1"); !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized for unknown user, got %v", err)
	}
}

func TestAuthService_Login_RateLimitsFailedAttempts(t *testing.T) {
	svc := newAuthService(t, 3)
	ip := "10.0.0.4"

	if _, err := svc.Register("host1", "password123"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Login("host1", "wrong", ip); !apperr.IsKind(err, apperr.KindUnauthorized) {
			t.Fatalf("attempt %d: expected unauthorized, got %v", i, err)
		}
	}

	// The block applies even with correct credentials.
	_, err := svc.Login("host1", "password123", ip)
	if !apperr.IsKind(err, apperr.KindRateLimited) {
		t.Fatalf("expected rate-limited login, got %v", err)
	}

	// A different client IP is unaffected.
	if _, err := svc.Login("host1", "password123", "10.0.0.5"); err != nil {
		t.Fatalf("expected unrelated IP to log in, got %v", err)
	}
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := newAuthService(t, 5)

	if _, err := svc.ValidateToken("not-a-token"); !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
