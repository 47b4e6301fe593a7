package service

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateOTP_SixDigitsNoLeadingZero(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, expireAt, err := GenerateOTP(ResetOTPTTL)
		if err != nil {
			t.Fatalf("generate otp: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digit code, got %q", code)
		}
		if code[0] == '0' {
			t.Fatalf("expected no leading zero, got %q", code)
		}
		if code < "100000" || code > "999999" {
			t.Fatalf("code out of range: %q", code)
		}
		if expireAt.Before(time.Now().UTC()) {
			t.Fatalf("expected future expiry, got %v", expireAt)
		}
	}
}

func TestGenerateOTP_TTLApplied(t *testing.T) {
	start := time.Now().UTC()
	_, expireAt, err := GenerateOTP(VerifyOTPTTL)
	if err != nil {
		t.Fatalf("generate otp: %v", err)
	}
	if expireAt.Before(start.Add(23 * time.Hour)) {
		t.Fatalf("expected ~24h ttl, got %v", expireAt.Sub(start))
	}
	if expireAt.After(start.Add(25 * time.Hour)) {
		t.Fatalf("expected ~24h ttl, got %v", expireAt.Sub(start))
	}
}

func TestValidateOTP_Success(t *testing.T) {
	expireAt := time.Now().UTC().Add(time.Minute)
	if err := ValidateOTP("123456", expireAt, "123456"); err != nil {
		t.Fatalf("expected valid otp, got %v", err)
	}
}

func TestValidateOTP_NotRequested(t *testing.T) {
	if err := ValidateOTP("", time.Time{}, "123456"); !errors.Is(err, ErrOTPNotRequested) {
		t.Fatalf("expected ErrOTPNotRequested, got %v", err)
	}
}

func TestValidateOTP_Mismatch(t *testing.T) {
	expireAt := time.Now().UTC().Add(time.Minute)
	if err := ValidateOTP("123456", expireAt, "654321"); !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid, got %v", err)
	}
	if err := ValidateOTP("123456", expireAt, ""); !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid for empty code, got %v", err)
	}
}

func TestValidateOTP_Expired(t *testing.T) {
	expireAt := time.Now().UTC().Add(-time.Minute)
	if err := ValidateOTP("123456", expireAt, "123456"); !errors.Is(err, ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
}

func TestValidateOTP_ExpiryInstantIsExpired(t *testing.T) {
	// La expiración es inclusiva: en el instante exacto el código ya no vale.
	expireAt := time.Now().UTC()
	if err := ValidateOTP("123456", expireAt, "123456"); !errors.Is(err, ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired at expiry instant, got %v", err)
	}
}

func TestValidateOTP_MismatchBeforeExpiry(t *testing.T) {
	// Un código incorrecto sobre un OTP vencido reporta mismatch recién
	// después del chequeo de igualdad, nunca éxito.
	expireAt := time.Now().UTC().Add(-time.Minute)
	if err := ValidateOTP("123456", expireAt, "654321"); !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid, got %v", err)
	}
}
