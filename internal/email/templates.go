package email

import (
	"html/template"
	"strings"
)

const (
	welcomeSubject = "Welcome to our website"
	verifySubject  = "Account verification OTP"
	resetSubject   = "Password reset OTP"
)

var verifyTemplate = template.Must(template.New("verify").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Verify your email</h2>
    <p>You are just one step away from verifying your account for this email: <b>{{.Email}}</b>.</p>
    <p>Use the OTP below to verify your account:</p>
    <p style="font-size: 24px; letter-spacing: 4px;"><b>{{.Otp}}</b></p>
    <p>This OTP is valid for 24 hours.</p>
  </body>
</html>
`))

var resetTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Forgot your password?</h2>
    <p>We received a password reset request for your account: <b>{{.Email}}</b>.</p>
    <p>Use the OTP below to reset your password:</p>
    <p style="font-size: 24px; letter-spacing: 4px;"><b>{{.Otp}}</b></p>
    <p>The password reset OTP is only valid for the next 15 minutes.</p>
  </body>
</html>
`))

type otpTemplateData struct {
	Email string
	Otp   string
}

func renderOTPBody(t *template.Template, toEmail, code string) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, otpTemplateData{Email: toEmail, Otp: code}); err != nil {
		return "", err
	}
	return b.String(), nil
}
