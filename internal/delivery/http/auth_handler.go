package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradepulse/tradepulse/internal/delivery/http/dto"
	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/middleware"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	operatorRepo domain.OperatorRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(operatorRepo domain.OperatorRepository) *AuthHandler {
	return &AuthHandler{
		operatorRepo: operatorRepo,
	}
}

// Login handles operator login
// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if req.Username == "" || req.Password == "" {
		return BadRequestResponse(c, "Username and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	operator, err := h.operatorRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return UnauthorizedResponse(c, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(req.Password)); err != nil {
		return UnauthorizedResponse(c, "Invalid credentials")
	}

	token, err := middleware.GenerateJWT(operator.ID, operator.Username)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to generate token", err)
	}

	cookie := &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400, // 24 hours
	}
	c.SetCookie(cookie)

	return SuccessResponse(c, dto.LoginResponse{
		Token: token,
		Operator: &dto.OperatorOutput{
			ID:       operator.ID.String(),
			Username: operator.Username,
		},
	})
}

// Logout clears the session cookie
// POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie := &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1, // Delete cookie
	}
	c.SetCookie(cookie)

	return SuccessMessageResponse(c, "Logged out", nil)
}

// Register creates an additional operator account
// POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if req.Username == "" || req.Password == "" {
		return BadRequestResponse(c, "Username and password are required")
	}

	if len(req.Password) < 6 {
		return BadRequestResponse(c, "Password must be at least 6 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to hash password", err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	operator := &domain.Operator{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.operatorRepo.Create(ctx, operator); err != nil {
		return InternalServerErrorResponse(c, "Failed to create operator", err)
	}

	return CreatedResponse(c, map[string]string{
		"message":  "Operator registered successfully",
		"username": operator.Username,
	})
}

// Me returns the authenticated operator
// GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	operatorID, err := middleware.GetOperatorID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Operator not authenticated")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	operator, err := h.operatorRepo.GetByID(ctx, operatorID)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to get operator details", err)
	}

	return SuccessResponse(c, dto.OperatorOutput{
		ID:       operator.ID.String(),
		Username: operator.Username,
	})
}
