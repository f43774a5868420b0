package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEGoldTrack/database"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// GET /dashboard — ข้อมูลหน้าแรกหลังล็อกอิน: โปรไฟล์ + ยอดทองรวม + ล็อกอินล่าสุด
func (h *DashboardHandler) Summary(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)

	u, err := database.GetUserByUserID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "USER_NOT_FOUND"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}

	entries, err := database.ListGoldEntries(uid)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	var total float64
	for _, e := range entries {
		total += e.Amount
	}

	logs, err := database.ListAttendanceLogs(uid)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	var lastLogin any
	for _, l := range logs {
		if l.LoginTimestamp != nil {
			lastLogin = l.LoginTimestamp
			break
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user":        userPayload(u),
		"gold_total":  total,
		"entry_count": len(entries),
		"last_login":  lastLogin,
	})
}
