package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEGoldTrack/database"
	"github.com/patiponrmutl/BEGoldTrack/models"
)

type GoldHandler struct{}

func NewGoldHandler() *GoldHandler { return &GoldHandler{} }

type goldEntryReq struct {
	Amount float64 `json:"amount"`
	Notes  string  `json:"notes"`
}

// GET /gold/entries — รายการของ session ปัจจุบัน เรียงใหม่สุดก่อน
func (h *GoldHandler) List(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	entries, err := database.ListGoldEntries(uid)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	if entries == nil {
		entries = []models.GoldEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

// POST /gold/entries
// validation ทำก่อนแตะ DB: amount ต้อง > 0 (ตามฟอร์มฝั่ง FE), notes ว่างได้
func (h *GoldHandler) Create(c echo.Context) error {
	var req goldEntryReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.Amount <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_AMOUNT"})
	}

	uid, _ := c.Get("user_id").(string)
	id, err := database.AddGoldEntry(uid, req.Amount, req.Notes)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": id})
}

// PUT /gold/entries/:id — แก้ได้เฉพาะรายการของตัวเอง และเฉพาะ amount/notes
func (h *GoldHandler) Update(c echo.Context) error {
	var req goldEntryReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.Amount <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_AMOUNT"})
	}

	entry, err := h.ownEntry(c)
	if err != nil {
		return err
	}
	if err := database.UpdateGoldEntry(entry.ID, req.Amount, req.Notes); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}

// DELETE /gold/entries/:id — ลบจริง (FE เป็นคน confirm ก่อนเรียก)
func (h *GoldHandler) Delete(c echo.Context) error {
	entry, err := h.ownEntry(c)
	if err != nil {
		return err
	}
	if err := database.DeleteGoldEntry(entry.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "deleted"})
}

// GET /gold/stream — SSE: ชุดรายการเต็มของ user ทุกครั้งที่มีการเปลี่ยนแปลง
func (h *GoldHandler) Stream(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	return streamJSON(c, "gold:"+uid, func() (any, error) {
		return database.ListGoldEntries(uid)
	})
}

// ownEntry โหลด entry ตาม :id แล้วเช็คว่า session เป็นเจ้าของ
func (h *GoldHandler) ownEntry(c echo.Context) (*models.GoldEntry, error) {
	entry, err := database.GetGoldEntry(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "ENTRY_NOT_FOUND"})
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	uid, _ := c.Get("user_id").(string)
	if entry.UserID != uid {
		return nil, echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
	}
	return entry, nil
}
