package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	if _, err := NewTokenService("", time.Hour); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
	s, err := NewTokenService("s3cret", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ttl != DefaultAccessTTL {
		t.Errorf("ttl = %v, want %v", s.ttl, DefaultAccessTTL)
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	s, _ := NewTokenService("s3cret", time.Hour)
	want := Identity{Email: "admin@club.test", Role: "admin"}

	tok, err := s.Issue(want)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if d := time.Until(tok.Exp); d < 59*time.Minute || d > time.Hour {
		t.Errorf("expiry %v from now, want about one hour", d)
	}

	// Repeated verification within the window yields the same identity.
	for i := 0; i < 3; i++ {
		got, err := s.Verify(tok.Token)
		if err != nil {
			t.Fatalf("Verify #%d: %v", i, err)
		}
		if got != want {
			t.Fatalf("Verify #%d = %+v, want %+v", i, got, want)
		}
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s, _ := NewTokenService("s3cret", time.Hour)
	tok, err := s.WithClock(fixedClock(issued)).Issue(Identity{Email: "a@b.c", Role: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := s.WithClock(fixedClock(issued.Add(59 * time.Minute))).Verify(tok.Token); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}
	_, err = s.WithClock(fixedClock(issued.Add(time.Hour + time.Second))).Verify(tok.Token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	other, _ := NewTokenService("other-secret", time.Hour)
	tok, _ := other.Issue(Identity{Email: "a@b.c", Role: "admin"})

	s, _ := NewTokenService("s3cret", time.Hour)
	if _, err := s.Verify(tok.Token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	s, _ := NewTokenService("s3cret", time.Hour)
	userTok, _ := s.Issue(Identity{Email: "a@b.c", Role: "member"})
	adminTok, _ := s.Issue(Identity{Email: "a@b.c", Role: "admin"})

	// Splice the admin payload onto the member signature.
	u := strings.Split(userTok.Token, ".")
	a := strings.Split(adminTok.Token, ".")
	forged := strings.Join([]string{u[0], a[1], u[2]}, ".")
	if _, err := s.Verify(forged); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsMalformedTokens(t *testing.T) {
	s, _ := NewTokenService("s3cret", time.Hour)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@b.c", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@b.c", "role": "admin",
	}).SignedString([]byte("s3cret"))

	for name, raw := range map[string]string{
		"empty":    "",
		"garbage":  "not.a.token",
		"alg none": none,
		"no exp":   noExp,
	} {
		if _, err := s.Verify(raw); !errors.Is(err, ErrMalformedToken) {
			t.Errorf("%s: expected ErrMalformedToken, got %v", name, err)
		}
	}
}

func TestServerTokensExpireAfterOneHour(t *testing.T) {
	if DefaultAccessTTL != time.Hour {
		t.Fatalf("DefaultAccessTTL = %v, want 1h", DefaultAccessTTL)
	}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s, _ := NewTokenService("s3cret", DefaultAccessTTL)
	s = s.WithClock(fixedClock(now))

	tok, err := s.Issue(Identity{Email: "a@club.test", Role: "admin"})
	if err != nil {
		t.Fatal(err)
	}
	if want := now.Add(time.Hour); !tok.Exp.Equal(want) {
		t.Errorf("exp = %v, want %v", tok.Exp, want)
	}
	if _, err := s.WithClock(fixedClock(now.Add(59 * time.Minute))).Verify(tok.Token); err != nil {
		t.Errorf("verify inside the hour: %v", err)
	}
	if _, err := s.WithClock(fixedClock(now.Add(61 * time.Minute))).Verify(tok.Token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("verify after the hour = %v, want ErrTokenExpired", err)
	}
}
