package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/careerboard/careerboard-api/internal/models"
	"github.com/careerboard/careerboard-api/internal/services/mailer"
	"github.com/careerboard/careerboard-api/internal/token"
	"github.com/careerboard/careerboard-api/internal/utils"
)

type AuthHandler struct {
	DB     *gorm.DB
	Mailer mailer.Sender
	Signer *token.Signer

	JWTSecret         string
	AccessExpiresMin  int
	RefreshExpiresMin int
	VerifyTokenTTL    time.Duration
	BaseURL           string
}

type SignupReq struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AuthHandler) verificationURL(tok string) string {
	return strings.TrimRight(h.BaseURL, "/") + "/api/auth/verify-email?token=" + tok
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := strings.ToLower(strings.TrimSpace(req.Role))

	errs := FieldErrors{}
	if !utils.ValidFullName(fullName) {
		errs.Add("full_name", "Full name must be two words with alphabets only and one space between")
	}
	if email == "" {
		errs.Add("email", "Email is required")
	} else if !strings.Contains(email, "@") {
		errs.Add("email", "Invalid email format")
	}
	if !utils.ValidPassword(req.Password) {
		errs.Add("password", "Password must be 8+ chars with upper, lower, digit and special char")
	}
	if role != string(models.RoleApplicant) && role != string(models.RoleCompany) {
		errs.Add("role", "Role must be 'applicant' or 'company'")
	}
	if len(errs) > 0 {
		return validationFail(c, "Invalid data", errs)
	}

	var existing models.User
	if err := h.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		errs.Add("email", "Email already in use")
		return validationFail(c, "Invalid data", errs)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	pw, err := utils.HashPassword(req.Password)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to process password")
	}

	u := models.User{
		FullName: fullName,
		Email:    email,
		Password: pw,
		Role:     models.Role(role),
		IsActive: false,
	}
	if err := h.DB.Create(&u).Error; err != nil {
		if isUniqueViolation(err) {
			errs.Add("email", "Email already in use")
			return validationFail(c, "Invalid data", errs)
		}
		return fail(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	// Verification mail is best effort; the account exists either way and
	// the expired-token path can resend.
	subject, body := mailer.VerificationEmail(h.verificationURL(h.Signer.Issue(u.Email)))
	if err := h.Mailer.Send(u.Email, subject, body); err != nil {
		log.Println("Error sending verification email:", err)
	}

	return ok(c, fiber.StatusCreated, "Account created. Please verify your email.", fiber.Map{
		"id":        u.ID,
		"full_name": u.FullName,
		"email":     u.Email,
		"role":      u.Role,
	})
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	tok := c.Query("token")
	if tok == "" {
		return fail(c, fiber.StatusBadRequest, "Token missing", "Token is required")
	}

	email, err := h.Signer.Verify(tok, h.VerifyTokenTTL)
	switch {
	case err == nil:
		return h.activate(c, email)
	case errors.Is(err, token.ErrExpiredToken):
		return h.resendVerification(c, tok)
	default:
		return fail(c, fiber.StatusBadRequest, "Invalid token")
	}
}

func (h *AuthHandler) activate(c *fiber.Ctx, email string) error {
	var u models.User
	if err := h.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid token")
	}
	if u.IsActive {
		return ok(c, fiber.StatusOK, "Email already verified", nil)
	}
	if err := h.DB.Model(&u).Update("is_active", true).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to verify email")
	}
	return ok(c, fiber.StatusOK, "Email verified successfully", nil)
}

// resendVerification handles an authentic-but-expired token: the account is
// looked up from the stale payload, a fresh token is mailed out, and the
// caller gets a non-success response saying so.
func (h *AuthHandler) resendVerification(c *fiber.Ctx, tok string) error {
	email, err := h.Signer.Payload(tok)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid token")
	}
	var u models.User
	if err := h.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid token")
	}
	if u.IsActive {
		return ok(c, fiber.StatusOK, "Email already verified", nil)
	}

	subject, body := mailer.ReverificationEmail(h.verificationURL(h.Signer.Issue(u.Email)))
	if err := h.Mailer.Send(u.Email, subject, body); err != nil {
		log.Println("Error resending verification email:", err)
	}

	return fail(c, fiber.StatusBadRequest,
		"Token expired. A new verification email has been sent.",
		"Token expired, new verification email sent")
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := req.Password

	if email == "" || password == "" {
		return fail(c, fiber.StatusBadRequest, "Email and password are required",
			"Email and password must be provided")
	}

	var u models.User
	if err := h.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials",
			"Email or password is incorrect")
	}
	if !utils.CheckPassword(u.Password, password) {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials",
			"Email or password is incorrect")
	}
	if !u.IsActive {
		return fail(c, fiber.StatusUnauthorized, "Email is not verified",
			"Please verify your email before logging in")
	}

	access, err := utils.SignJWT(h.JWTSecret, u.ID.String(), string(u.Role), h.AccessExpiresMin)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to create token")
	}
	refresh, err := utils.SignRefreshJWT(h.JWTSecret, u.ID.String(), string(u.Role), h.RefreshExpiresMin)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to create token")
	}

	return ok(c, fiber.StatusOK, "Login successful", fiber.Map{
		"access":  access,
		"refresh": refresh,
		"user_id": u.ID,
		"role":    u.Role,
	})
}
