package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEGoldTrack/database"
	"github.com/patiponrmutl/BEGoldTrack/models"
	"github.com/patiponrmutl/BEGoldTrack/slug"
)

// -----------------------------
// Handler & ctor
// -----------------------------

// UserHandler รองรับหน้า AdminPanel: ดู/สร้าง/เปิด-ปิดบัญชี
type UserHandler struct{}

func NewUserHandler() *UserHandler { return &UserHandler{} }

// -----------------------------
// Request payloads
// -----------------------------

type createUserReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`
}

type updateUserReq struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
}

// -----------------------------
// Handlers
// -----------------------------

// GET /admin/users
func (h *UserHandler) List(c echo.Context) error {
	users, err := database.GetAllUsers()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// POST /admin/users — is_admin ในคำขอเป็นตัวเลือกเดียวที่ต่างระหว่าง
// สร้างบัญชี admin กับบัญชีธรรมดา ที่เหลือ flow เดียวกันหมด
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	pass := strings.TrimSpace(req.Password)
	name := strings.TrimSpace(req.Name)
	if email == "" || pass == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	if _, err := database.GetUserByEmail(email); err == nil {
		return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "EMAIL_EXISTS"})
	}

	u, err := database.CreateUser(email, pass, name, req.IsAdmin)
	if err != nil {
		if errors.Is(err, slug.ErrConflict) {
			return echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "SLUG_CONFLICT"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "CREATE_FAILED"})
	}
	return c.JSON(http.StatusCreated, u)
}

// PUT /admin/users/:slug — แก้ email/name (updated_at ถูก stamp ในชั้น database เสมอ)
func (h *UserHandler) Update(c echo.Context) error {
	s := c.Param("slug")
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	updates := map[string]any{}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if email == "" {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
		}
		updates["email"] = email
	}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "NO_FIELDS"})
	}

	if err := database.UpdateUser(s, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "USER_NOT_FOUND"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}

// POST /admin/users/:slug/activate
func (h *UserHandler) Activate(c echo.Context) error {
	return h.setActive(c, true)
}

// POST /admin/users/:slug/deactivate
func (h *UserHandler) Deactivate(c echo.Context) error {
	return h.setActive(c, false)
}

func (h *UserHandler) setActive(c echo.Context, active bool) error {
	s := c.Param("slug")
	var err error
	if active {
		err = database.ActivateUser(s)
	} else {
		err = database.DeactivateUser(s)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "USER_NOT_FOUND"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok", "is_active": active})
}
