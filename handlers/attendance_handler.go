package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/BEGoldTrack/database"
	"github.com/patiponrmutl/BEGoldTrack/models"
)

type AttendanceHandler struct{}

func NewAttendanceHandler() *AttendanceHandler { return &AttendanceHandler{} }

type attendanceLogDTO struct {
	models.AttendanceLog
	Duration string `json:"duration"`
}

// FormatDuration แปลงช่วง login→logout เป็น "XhYm" ขาดฝั่งใดฝั่งหนึ่งได้ "N/A"
// login กับ logout ถูกเก็บคนละแถวและไม่มีขั้นตอนจับคู่ ดังนั้นค่านี้จะเป็น
// N/A เกือบทั้งหมด — จะมีค่าจริงก็ต่อเมื่อแถวเดียวมี timestamp ครบสองฝั่ง
func FormatDuration(login, logout *time.Time) string {
	if login == nil || logout == nil {
		return "N/A"
	}
	d := logout.Sub(*login)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// GET /attendance/logs — ประวัติของ session ปัจจุบัน เรียง login ใหม่สุดก่อน
func (h *AttendanceHandler) List(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	logs, err := database.ListAttendanceLogs(uid)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}

	out := make([]attendanceLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, attendanceLogDTO{
			AttendanceLog: l,
			Duration:      FormatDuration(l.LoginTimestamp, l.LogoutTimestamp),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GET /attendance/stream — SSE: ประวัติชุดเต็มทุกครั้งที่มีเหตุการณ์ใหม่
func (h *AttendanceHandler) Stream(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	return streamJSON(c, "attendance:"+uid, func() (any, error) {
		return database.ListAttendanceLogs(uid)
	})
}
