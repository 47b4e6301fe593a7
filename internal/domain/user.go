package domain

import "time"

// User representa una cuenta registrada con sus códigos OTP pendientes.
// Un OTP vacío junto con expiración en cero significa que no hay código activo.
type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	IsAccountVerified bool      `json:"isAccountVerified"`
	VerifyOtp         string    `json:"-"`
	VerifyOtpExpireAt time.Time `json:"-"`
	ResetOtp          string    `json:"-"`
	ResetOtpExpireAt  time.Time `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
}
