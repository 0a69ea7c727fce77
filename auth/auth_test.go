package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testService() *Service {
	return NewService([]byte("test-secret"))
}

func testInput() RegisterInput {
	return RegisterInput{
		StudentID:   "VU2026001",
		Name:        "Anjali Devi",
		Email:       "anjali@example.edu",
		Password:    "s3cret-pass",
		PhoneNumber: "+91-9000000001",
	}
}

func TestRegisterAndVerify(t *testing.T) {
	s := testService()
	ctx := context.Background()

	token, user, err := s.Register(ctx, testInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.StudentID != "VU2026001" || user.Name != "Anjali Devi" {
		t.Errorf("unexpected user: %+v", user)
	}

	id, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id.StudentID != "VU2026001" || id.Name != "Anjali Devi" {
		t.Errorf("unexpected identity: %+v", id)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s := testService()
	ctx := context.Background()
	if _, _, err := s.Register(ctx, testInput()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"same student id", func(in *RegisterInput) { in.Email = "other@example.edu" }},
		{"same email", func(in *RegisterInput) { in.StudentID = "VU2026002" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testInput()
			tt.mutate(&in)
			if _, _, err := s.Register(ctx, in); !errors.Is(err, ErrUserExists) {
				t.Errorf("expected ErrUserExists, got %v", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	s := testService()
	ctx := context.Background()
	if _, _, err := s.Register(ctx, testInput()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := s.Login(ctx, "VU2026001", "s3cret-pass"); err != nil {
		t.Errorf("Login with correct password: %v", err)
	}
	if _, _, err := s.Login(ctx, "VU2026001", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := s.Login(ctx, "VU9999999", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := IdentityFrom(ctx); ok {
		t.Error("empty context should carry no identity")
	}
	want := Identity{StudentID: "VU2026001", Name: "Anjali Devi"}
	got, ok := IdentityFrom(WithIdentity(ctx, want))
	if !ok || got != want {
		t.Errorf("IdentityFrom = %+v ok=%v, want %+v", got, ok, want)
	}
}

func TestVerifyFailures(t *testing.T) {
	s := testService()
	ctx := context.Background()
	token, _, err := s.Register(ctx, testInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("missing token", func(t *testing.T) {
		if _, err := s.Verify(""); !errors.Is(err, ErrMissingToken) {
			t.Errorf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := s.Verify("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService([]byte("different-secret"))
		if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		if _, err := s.Verify(token); err != nil {
			t.Fatalf("token should still be valid: %v", err)
		}
		s.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }
		if _, err := s.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken after expiry, got %v", err)
		}
	})
}
