package auth

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("tablet-1", "kitchen")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.DeviceID != "tablet-1" || claims.Subject != "tablet-1" || claims.Label != "kitchen" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestGenerateRequiresDeviceID(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	if _, err := m.Generate("  ", ""); !errors.Is(err, ErrInvalidDeviceID) {
		t.Fatalf("expected ErrInvalidDeviceID, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, err := m.Generate("tablet-1", "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	other := NewJWTManager("other-secret", time.Hour)
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: expected ErrInvalidToken, got %v", err)
	}

	if _, err := m.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage: expected ErrInvalidToken, got %v", err)
	}

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired: expected ErrInvalidToken, got %v", err)
	}
}
