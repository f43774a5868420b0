package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Claims ที่เราคาดหวัง (ตามที่เซ็นใน auth_handler.go)
type Claims struct {
	Sub     string `json:"sub"` // user id (uuid จากตอน provision)
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// ดึง token จาก Authorization header
func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "MISSING_AUTH_HEADER"})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_AUTH_HEADER"})
	}
	return parts[1], nil
}

// ParseBearer ตรวจ JWT (HS256) จาก header แล้วคืน claims
// ใช้ทั้งใน RequireAuth และเส้นทาง /u/:userSlug ที่ auth เป็น optional
func ParseBearer(c echo.Context, secret string) (*Claims, error) {
	tok, err := extractBearer(c)
	if err != nil {
		return nil, err
	}
	token, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
		// ป้องกัน alg โดนสลับ
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN_METHOD"})
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN"})
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CLAIMS"})
	}
	// ตรวจ expiry (กัน lib ถูก config ปิด)
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "TOKEN_EXPIRED"})
	}
	return claims, nil
}

// RequireAuth ตรวจ session แล้วแนบ identity ไว้ใน context
// ทุก handler ที่อยู่หลัง middleware นี้อ่าน state จาก context เท่านั้น
// ไม่มีใครไป query token ซ้ำเอง
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ParseBearer(c, secret)
			if err != nil {
				return err
			}
			c.Set("user_id", claims.Sub)
			c.Set("user_slug", claims.Slug)
			c.Set("name", claims.Name)
			c.Set("is_admin", claims.IsAdmin)
			return next(c)
		}
	}
}
