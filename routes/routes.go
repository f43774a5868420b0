package routes

import (
	"os"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/BEGoldTrack/database"
	"github.com/patiponrmutl/BEGoldTrack/handlers"
	"github.com/patiponrmutl/BEGoldTrack/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, tracker *database.Tracker) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(tracker)
	usr := handlers.NewUserHandler()
	gold := handlers.NewGoldHandler()
	att := handlers.NewAttendanceHandler()
	dash := handlers.NewDashboardHandler()
	ur := handlers.NewUserRouteHandler()

	e.GET("/health", handlers.Health)

	// ===== Public Auth =====
	e.POST("/auth/register", auth.Register)
	e.POST("/auth/login", auth.Login)
	e.GET("/auth/check-email", auth.CheckEmail)

	// ===== หน้า /:userSlug ของ FE (auth เป็น optional ใน handler เอง) =====
	e.GET("/u/:userSlug", ur.Resolve)

	// ===== Protected Groups =====
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}
	authMW := middlewares.RequireAuth(secret)

	api := e.Group("", authMW)
	api.POST("/auth/logout", auth.Logout)
	api.GET("/auth/me", auth.Me)
	api.GET("/dashboard", dash.Summary)

	// Gold ledger (เห็นเฉพาะของตัวเอง)
	api.GET("/gold/entries", gold.List)
	api.POST("/gold/entries", gold.Create)
	api.PUT("/gold/entries/:id", gold.Update)
	api.DELETE("/gold/entries/:id", gold.Delete)
	api.GET("/gold/stream", gold.Stream)

	// Attendance history
	api.GET("/attendance/logs", att.List)
	api.GET("/attendance/stream", att.Stream)

	// ===== Admin routes (รองรับหน้า AdminPanel) =====
	admin := e.Group("/admin", authMW, middlewares.RequireAdmin())
	admin.GET("/users", usr.List)
	admin.POST("/users", usr.Create)
	admin.PUT("/users/:slug", usr.Update)
	admin.POST("/users/:slug/activate", usr.Activate)
	admin.POST("/users/:slug/deactivate", usr.Deactivate)
}
