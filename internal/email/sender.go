package email

import (
	"context"
	"errors"
)

// Sender define la interfaz para el envío de correos del servicio.
type Sender interface {
	SendWelcome(ctx context.Context, toEmail string) error
	SendVerifyOTP(ctx context.Context, toEmail, code string) error
	SendResetOTP(ctx context.Context, toEmail, code string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendWelcome(_ context.Context, _ string) error {
	return s.err()
}

func (s *disabledSender) SendVerifyOTP(_ context.Context, _, _ string) error {
	return s.err()
}

func (s *disabledSender) SendResetOTP(_ context.Context, _, _ string) error {
	return s.err()
}

func (s *disabledSender) err() error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
