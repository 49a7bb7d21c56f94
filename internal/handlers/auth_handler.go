package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kuaforsistemi/salon-scheduler/internal/audit"
	"github.com/kuaforsistemi/salon-scheduler/internal/config"
	"github.com/kuaforsistemi/salon-scheduler/internal/models"
	"github.com/kuaforsistemi/salon-scheduler/internal/validators"
	"github.com/kuaforsistemi/salon-scheduler/internal/verification"
)

type AuthHandler struct {
	db          *gorm.DB
	config      *config.Config
	emailVerify *verification.Service
	phoneVerify *verification.Service
	audit       *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	emailVerify *verification.Service,
	phoneVerify *verification.Service,
	dispatcher *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:          db,
		config:      cfg,
		emailVerify: emailVerify,
		phoneVerify: phoneVerify,
		audit:       dispatcher,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	EmailOrPhone string `json:"email_or_phone" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

type SendCodeRequest struct {
	Recipient string `json:"recipient" binding:"required"`
}

type VerifyCodeRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Code      string `json:"code" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.PhoneNumber)

	if email == "" && phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_or_phone_required"})
		return
	}

	if email != "" {
		var count int64
		h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
			return
		}
		if !validators.IsEmailDomainValid(email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
			return
		}
	}

	if phone != "" {
		var count int64
		h.db.Model(&models.User{}).Where("phone_number = ?", phone).Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone_already_registered"})
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	id := strings.TrimSpace(req.EmailOrPhone)

	var user models.User
	if err := h.db.
		Where("email = ? OR phone_number = ?", strings.ToLower(id), id).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

// --------- Verification ---------

func (h *AuthHandler) SendEmailCode(c *gin.Context) {
	h.sendCode(c, h.emailVerify, "email")
}

func (h *AuthHandler) SendPhoneCode(c *gin.Context) {
	h.sendCode(c, h.phoneVerify, "phone_number")
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	h.verifyCode(c, h.emailVerify, "email", "email_verified")
}

func (h *AuthHandler) VerifyPhone(c *gin.Context) {
	h.verifyCode(c, h.phoneVerify, "phone_number", "phone_verified")
}

func (h *AuthHandler) sendCode(c *gin.Context, svc *verification.Service, column string) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var user models.User
	if err := h.db.Where(column+" = ?", req.Recipient).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	if err := svc.SendCode(c.Request.Context(), req.Recipient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_send_code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

func (h *AuthHandler) verifyCode(c *gin.Context, svc *verification.Service, column, flag string) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	ok, err := svc.VerifyCode(c.Request.Context(), req.Recipient, req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification_failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_or_expired_code"})
		return
	}

	var user models.User
	if err := h.db.Where(column+" = ?", req.Recipient).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	if err := h.db.Model(&user).Update(flag, true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification_failed"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: flag,
		Entity: "user",
	})

	c.JSON(http.StatusOK, gin.H{"message": "verified"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"phone": user.PhoneNumber,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":             user.ID,
		"name":           user.Name,
		"surname":        user.Surname,
		"email":          user.Email,
		"phone_number":   user.PhoneNumber,
		"email_verified": user.EmailVerified,
		"phone_verified": user.PhoneVerified,
	}
}
