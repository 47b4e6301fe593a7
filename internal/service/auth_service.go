package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/PranavThorat1432/MERN-Authentication-System/internal/domain"
	"github.com/PranavThorat1432/MERN-Authentication-System/internal/email"
	"github.com/PranavThorat1432/MERN-Authentication-System/internal/repository"
)

// AuthService coordina registro, login y los flujos de OTP.
type AuthService struct {
	logger      *zap.Logger
	users       repository.UserRepository
	emailSender email.Sender
	locks       AccountLocker
}

func NewAuthService(logger *zap.Logger, users repository.UserRepository, emailSender email.Sender, locks AccountLocker) *AuthService {
	if locks == nil {
		locks = NewMemoryAccountLocker()
	}
	return &AuthService{
		logger:      logger,
		users:       users,
		emailSender: emailSender,
		locks:       locks,
	}
}

var (
	ErrMissingFields      = errors.New("missing fields")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyVerified    = errors.New("account already verified")
	ErrEmailSendFailure   = errors.New("email send failed")
)

// Register crea una cuenta sin verificar. El correo de bienvenida es el único
// envío cuyo fallo se registra y se ignora: el alta no depende de él.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if name == "" || email == "" || password == "" {
		return domain.User{}, ErrMissingFields
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return domain.User{}, ErrDuplicateEmail
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashBytes),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	if err := s.emailSender.SendWelcome(ctx, email); err != nil {
		if s.logger != nil {
			s.logger.Warn("send welcome email failed", zap.Error(err), zap.String("email", email))
		}
	}

	return user, nil
}

// Authenticate valida credenciales. Email desconocido y contraseña incorrecta
// devuelven el mismo error para no filtrar qué cuentas existen.
func (s *AuthService) Authenticate(ctx context.Context, emailAddr, password string) (domain.User, error) {
	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.User{}, ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if user.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// SendVerifyOTP genera y envía el código de verificación de cuenta. Un fallo
// de envío sí se propaga: sin el código el usuario no puede verificar.
func (s *AuthService) SendVerifyOTP(ctx context.Context, userID string) error {
	user, err := s.getByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAccountVerified {
		return ErrAlreadyVerified
	}

	if release, ok := s.locks.Acquire(ctx, user.ID); ok {
		defer release()
	}

	code, expireAt, err := GenerateOTP(VerifyOTPTTL)
	if err != nil {
		return err
	}
	if err := s.users.SetVerifyOTP(ctx, user.ID, code, expireAt); err != nil {
		return err
	}

	if err := s.emailSender.SendVerifyOTP(ctx, user.Email, code); err != nil {
		if s.logger != nil {
			s.logger.Warn("send verify otp failed", zap.Error(err), zap.String("email", user.Email))
		}
		return ErrEmailSendFailure
	}
	return nil
}

// VerifyEmail consume el OTP de verificación y marca la cuenta como
// verificada. La transición es única: no existe el camino inverso.
func (s *AuthService) VerifyEmail(ctx context.Context, userID, code string) error {
	code = strings.TrimSpace(code)
	if userID == "" || code == "" {
		return ErrMissingFields
	}

	if release, ok := s.locks.Acquire(ctx, userID); ok {
		defer release()
	}

	user, err := s.getByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := ValidateOTP(user.VerifyOtp, user.VerifyOtpExpireAt, code); err != nil {
		return err
	}
	return s.users.MarkVerified(ctx, user.ID)
}

// SendResetOTP genera y envía el código de recuperación de contraseña.
func (s *AuthService) SendResetOTP(ctx context.Context, emailAddr string) error {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	if release, ok := s.locks.Acquire(ctx, user.ID); ok {
		defer release()
	}

	code, expireAt, err := GenerateOTP(ResetOTPTTL)
	if err != nil {
		return err
	}
	if err := s.users.SetResetOTP(ctx, user.ID, code, expireAt); err != nil {
		return err
	}

	if err := s.emailSender.SendResetOTP(ctx, user.Email, code); err != nil {
		if s.logger != nil {
			s.logger.Warn("send reset otp failed", zap.Error(err), zap.String("email", user.Email))
		}
		return ErrEmailSendFailure
	}
	return nil
}

// ResetPassword consume el OTP de recuperación y guarda la nueva contraseña.
func (s *AuthService) ResetPassword(ctx context.Context, emailAddr, code, newPassword string) error {
	emailAddr = normalizeEmail(emailAddr)
	code = strings.TrimSpace(code)
	newPassword = strings.TrimSpace(newPassword)
	if emailAddr == "" || code == "" || newPassword == "" {
		return ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	if release, ok := s.locks.Acquire(ctx, user.ID); ok {
		defer release()
	}

	// Releer bajo el lease: otro request pudo consumir el código mientras
	// esperábamos.
	user, err = s.getByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if err := ValidateOTP(user.ResetOtp, user.ResetOtpExpireAt, code); err != nil {
		return err
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, string(hashBytes))
}

// GetUserData devuelve los datos visibles de la cuenta autenticada.
func (s *AuthService) GetUserData(ctx context.Context, userID string) (domain.User, error) {
	return s.getByID(ctx, userID)
}

func (s *AuthService) getByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
