package jwt

import (
	"errors"
	"testing"
	"time"
)

func newTestService(t *testing.T, duration time.Duration) *Service {
	t.Helper()

	service, err := NewService(Config{
		SecretKey:     "test-secret-key",
		TokenDuration: duration,
		Issuer:        "test-issuer",
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	return service
}

func TestNewService_RequiresSecret(t *testing.T) {
	if _, err := NewService(Config{}); err == nil {
		t.Error("NewService() with empty secret did not fail")
	}
}

func TestService_GenerateAndVerify(t *testing.T) {
	service := newTestService(t, time.Hour)

	token, err := service.Generate("user-1", "cliente@cartorio.com.br", "CLIENT")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := service.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.Email != "cliente@cartorio.com.br" {
		t.Errorf("Email = %q, want %q", claims.Email, "cliente@cartorio.com.br")
	}
	if claims.Role != "CLIENT" {
		t.Errorf("Role = %q, want %q", claims.Role, "CLIENT")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "test-issuer")
	}
}

func TestService_Verify_GarbageToken(t *testing.T) {
	service := newTestService(t, time.Hour)

	if _, err := service.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestService_Verify_WrongSecret(t *testing.T) {
	service := newTestService(t, time.Hour)

	other, err := NewService(Config{SecretKey: "another-secret"})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	token, err := other.Generate("user-1", "cliente@cartorio.com.br", "CLIENT")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := service.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestService_Verify_ExpiredToken(t *testing.T) {
	service := newTestService(t, time.Hour)

	expired, err := NewService(Config{
		SecretKey:     "test-secret-key",
		TokenDuration: -time.Minute,
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	token, err := expired.Generate("user-1", "cliente@cartorio.com.br", "CLIENT")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := service.Verify(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want ErrExpiredToken", err)
	}
}
