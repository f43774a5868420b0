package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin → ผ่านเฉพาะ session ที่ is_admin = true
// (ระบบนี้มี capability เดียวคือ admin — ไม่มี role อื่น)
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, _ := c.Get("is_admin").(bool)
			if !isAdmin {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
			}
			return next(c)
		}
	}
}
