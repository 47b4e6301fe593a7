package service

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"math/big"
	"strconv"
	"time"
)

// TTL de los códigos OTP según su propósito.
const (
	VerifyOTPTTL = 24 * time.Hour
	ResetOTPTTL  = 15 * time.Minute
)

var (
	ErrOTPNotRequested = errors.New("otp not requested")
	ErrOTPInvalid      = errors.New("otp invalid")
	ErrOTPExpired      = errors.New("otp expired")
)

// GenerateOTP produce un código decimal de 6 dígitos (100000-999999, uniforme,
// sin cero inicial) y su instante de expiración. Quien lo llama es responsable
// de persistir código y expiración juntos.
func GenerateOTP(ttl time.Duration) (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", time.Time{}, err
	}
	code := strconv.FormatInt(100000+n.Int64(), 10)
	return code, time.Now().UTC().Add(ttl), nil
}

// ValidateOTP compara el código recibido contra el almacenado. El orden de los
// chequeos sigue el contrato: sin código pendiente, luego igualdad exacta,
// luego expiración. La expiración es inclusiva: en el instante exacto de
// expireAt el código ya no vale. Si devuelve nil, quien llama debe limpiar
// código y expiración antes de persistir (uso único).
func ValidateOTP(stored string, expireAt time.Time, supplied string) error {
	if stored == "" {
		return ErrOTPNotRequested
	}
	if supplied == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return ErrOTPInvalid
	}
	if !time.Now().UTC().Before(expireAt) {
		return ErrOTPExpired
	}
	return nil
}
