package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEGoldTrack/database"
	"github.com/patiponrmutl/BEGoldTrack/middlewares"
	"github.com/patiponrmutl/BEGoldTrack/models"
)

// UserRouteHandler คือ backend ของหน้า /:userSlug ฝั่ง FE
// ตัดสินผลลัพธ์ตามลำดับ: ไม่พบ slug → ยังไม่ล็อกอิน → ไม่ใช่เจ้าของ → redirect
//
// Lookup แยกเป็น field เพื่อให้ inject ตอนเทสต์ได้ (ค่า default คือ DB จริง)
type UserRouteHandler struct {
	JWTSecret string
	Lookup    func(slug string) (*models.User, error)
}

func NewUserRouteHandler() *UserRouteHandler {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}
	return &UserRouteHandler{JWTSecret: secret, Lookup: database.GetUserBySlug}
}

// GET /u/:userSlug (auth optional)
func (h *UserRouteHandler) Resolve(c echo.Context) error {
	s := c.Param("userSlug")

	u, err := h.Lookup(s)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// ไม่นับเป็น error — FE แสดงหน้า "User Not Found"
			return c.JSON(http.StatusNotFound, map[string]any{
				"error":          "USER_NOT_FOUND",
				"user_name_slug": s,
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}

	claims, err := middlewares.ParseBearer(c, h.JWTSecret)
	if err != nil {
		// ไม่มี session → FE เปิดหน้า login โดยชี้เป้าไปที่เจ้าของ slug
		return c.JSON(http.StatusUnauthorized, map[string]any{
			"error":          "LOGIN_REQUIRED",
			"target_user_id": u.UserID,
		})
	}

	if claims.Sub != u.UserID {
		// single-tenant: เข้าได้เฉพาะ slug ของตัวเอง
		return c.JSON(http.StatusForbidden, map[string]any{
			"error":   "ACCESS_DENIED",
			"message": "You can only access your own dashboard.",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{"redirect": "/dashboard"})
}
