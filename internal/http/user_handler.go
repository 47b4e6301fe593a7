package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PranavThorat1432/MERN-Authentication-System/internal/service"
)

// UserHandler mantiene dependencias para los endpoints de cuentas.
//
// Todas las respuestas llevan el sobre {message, success}; los clientes
// deciden por el flag success, pero los fallos llevan además un status HTTP
// acorde.
type UserHandler struct {
	logger   *zap.Logger
	authServ *service.AuthService
	tokenSvc *service.TokenService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, authServ *service.AuthService, tokenSvc *service.TokenService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		authServ: authServ,
		tokenSvc: tokenSvc,
	}
}

// Register maneja POST /api/user/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "All Fields are required")
		return
	}

	user, err := h.authServ.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			fail(c, http.StatusBadRequest, "All Fields are required")
		case errors.Is(err, service.ErrDuplicateEmail):
			fail(c, http.StatusConflict, "User already exist")
		default:
			h.logger.Error("register failed", zap.Error(err))
			fail(c, http.StatusInternalServerError, "could not register user")
		}
		return
	}

	if !h.setSessionCookie(c, user.ID) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "success": true})
}

// Login maneja POST /api/user/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Email and Password are required")
		return
	}

	user, err := h.authServ.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			fail(c, http.StatusBadRequest, "Email and Password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			fail(c, http.StatusUnauthorized, "Invalid email or password")
		default:
			h.logger.Error("login failed", zap.Error(err))
			fail(c, http.StatusInternalServerError, "could not login")
		}
		return
	}

	if !h.setSessionCookie(c, user.ID) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged In", "success": true})
}

// Logout maneja POST /api/user/logout. Solo borra la cookie: el token en sí
// queda vigente hasta expirar, no hay lista de revocación del lado servidor.
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged Out", "success": true})
}

// SendVerifyOTP maneja POST /api/user/send-verify-otp.
func (h *UserHandler) SendVerifyOTP(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Not authorized, login again")
		return
	}

	if err := h.authServ.SendVerifyOTP(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			fail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrAlreadyVerified):
			fail(c, http.StatusConflict, "Account is already verified")
		case errors.Is(err, service.ErrEmailSendFailure):
			fail(c, http.StatusServiceUnavailable, "OTP email could not be delivered")
		default:
			h.logger.Error("send verify otp failed", zap.Error(err))
			fail(c, http.StatusInternalServerError, "could not send otp")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your email", "success": true})
}

// VerifyAccount maneja POST /api/user/verify-account.
func (h *UserHandler) VerifyAccount(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Not authorized, login again")
		return
	}

	var req struct {
		Otp string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.authServ.VerifyEmail(c.Request.Context(), userID, req.Otp); err != nil {
		h.renderOTPError(c, err, "could not verify otp")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully", "success": true})
}

// IsAuthenticated maneja POST /api/user/is-auth. Si el middleware dejó pasar
// el request, la sesión es válida; no hay nada más que chequear.
func (h *UserHandler) IsAuthenticated(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "User is Authenticated", "success": true})
}

// SendResetOTP maneja POST /api/user/send-reset-otp.
func (h *UserHandler) SendResetOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.authServ.SendResetOTP(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			fail(c, http.StatusBadRequest, "Email is required")
		case errors.Is(err, service.ErrUserNotFound):
			fail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrEmailSendFailure):
			fail(c, http.StatusServiceUnavailable, "OTP email could not be delivered")
		default:
			h.logger.Error("send reset otp failed", zap.Error(err))
			fail(c, http.StatusInternalServerError, "could not send otp")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your Email", "success": true})
}

// ResetPassword maneja POST /api/user/reset-password.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email"`
		Otp         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Email, OTP, and New-password are required")
		return
	}

	if err := h.authServ.ResetPassword(c.Request.Context(), req.Email, req.Otp, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			fail(c, http.StatusBadRequest, "Email, OTP, and New-password are required")
			return
		}
		h.renderOTPError(c, err, "could not reset password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully", "success": true})
}

// GetUserData maneja GET /api/user-details/data.
func (h *UserHandler) GetUserData(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Not authorized, login again")
		return
	}

	user, err := h.authServ.GetUserData(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("get user data failed", zap.Error(err))
		fail(c, http.StatusInternalServerError, "could not get user data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User data retrieved successfully",
		"success": true,
		"userData": gin.H{
			"name":              user.Name,
			"email":             user.Email,
			"isAccountVerified": user.IsAccountVerified,
		},
	})
}

func (h *UserHandler) renderOTPError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		fail(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, service.ErrUserNotFound):
		fail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrOTPNotRequested), errors.Is(err, service.ErrOTPInvalid):
		fail(c, http.StatusBadRequest, "Invalid OTP")
	case errors.Is(err, service.ErrOTPExpired):
		fail(c, http.StatusBadRequest, "OTP Expired")
	default:
		h.logger.Error(fallback, zap.Error(err))
		fail(c, http.StatusInternalServerError, fallback)
	}
}

func (h *UserHandler) setSessionCookie(c *gin.Context, userID string) bool {
	token, err := h.tokenSvc.Issue(userID)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		fail(c, http.StatusInternalServerError, "could not issue session")
		return false
	}
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, token, int(h.tokenSvc.TTL().Seconds()), "/", "", true, true)
	return true
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message, "success": false})
}
