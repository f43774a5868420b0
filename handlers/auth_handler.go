package handlers

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEGoldTrack/database"
	"github.com/patiponrmutl/BEGoldTrack/models"
	"github.com/patiponrmutl/BEGoldTrack/slug"
)

/* ====================== Config & Helpers ====================== */

type AuthHandler struct {
	JWTSecret string
	Tracker   *database.Tracker
}

func NewAuthHandler(tracker *database.Tracker) *AuthHandler {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret" // กันล่มในเครื่อง dev (โปรดตั้งใน .env จริง)
	}
	return &AuthHandler{JWTSecret: secret, Tracker: tracker}
}

func (h *AuthHandler) signJWT(u *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      u.UserID,
		"slug":     u.Slug,
		"name":     u.Name,
		"is_admin": u.IsAdmin,
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

func userPayload(u *models.User) map[string]any {
	return map[string]any{
		"user_id":        u.UserID,
		"user_name_slug": u.Slug,
		"email":          u.Email,
		"name":           u.Name,
		"is_active":      u.IsActive,
		"is_admin":       u.IsAdmin,
	}
}

/* ====================== DTOs ====================== */

type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/* ====================== Handlers ====================== */

// POST /auth/register — สมัครเอง ได้บัญชีธรรมดา (is_admin = false เสมอ)
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	pass := strings.TrimSpace(req.Password)
	name := strings.TrimSpace(req.Name)
	if email == "" || pass == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	// ตรวจซ้ำ email
	if _, err := database.GetUserByEmail(email); err == nil {
		return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "EMAIL_EXISTS", "code": "EMAIL_EXISTS"})
	}

	u, err := database.CreateUser(email, pass, name, false)
	if err != nil {
		if errors.Is(err, slug.ErrConflict) {
			return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "SLUG_CONFLICT"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "CREATE_FAILED"})
	}

	token, err := h.signJWT(u, 7*24*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}

	// attendance เป็น best-effort — ล้มเหลวก็ไม่ทำให้สมัครพัง
	_ = database.RecordLogin(u.UserID)
	h.Tracker.SetUserID(u.UserID)

	return c.JSON(http.StatusCreated, map[string]any{"token": token, "user": userPayload(u)})
}

// GET /auth/check-email?email=...
func (h *AuthHandler) CheckEmail(c echo.Context) error {
	email := strings.TrimSpace(strings.ToLower(c.QueryParam("email")))
	if email == "" {
		return c.JSON(http.StatusOK, map[string]bool{"exists": false})
	}
	_, err := database.GetUserByEmail(email)
	return c.JSON(http.StatusOK, map[string]bool{"exists": err == nil})
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	u, err := database.GetUserByEmail(email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	token, err := h.signJWT(u, 7*24*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}

	_ = database.RecordLogin(u.UserID)
	h.Tracker.SetUserID(u.UserID)

	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": userPayload(u)})
}

// POST /auth/logout (ต้องผ่าน RequireAuth)
func (h *AuthHandler) Logout(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	_ = database.RecordLogout(uid)
	h.Tracker.ClearUserID(uid)
	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}

// GET /auth/me — identity ปัจจุบันของ session
func (h *AuthHandler) Me(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	u, err := database.GetUserByUserID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "USER_NOT_FOUND"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	return c.JSON(http.StatusOK, userPayload(u))
}
