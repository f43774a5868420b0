package database

import (
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/patiponrmutl/BEGoldTrack/models"
	"github.com/patiponrmutl/BEGoldTrack/realtime"
)

func attendanceTopic(userID string) string { return "attendance:" + userID }

// insertAttendanceLog กันเคส key ชน: login กับ logout ของ user เดียวกัน
// อาจเกิดใน ms เดียวกัน (เช่น Cleanup ทันทีหลังล็อกอิน) ระบบเดิม overwrite
// แถวเดิมเงียบ ๆ — ที่นี่ขยับ key ไป ms ถัดไปแทน เพื่อไม่ให้เหตุการณ์หาย
func insertAttendanceLog(rec *models.AttendanceLog) error {
	var err error
	for i := 0; i < 3; i++ {
		err = DB.Create(rec).Error
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		ms, _ := strconv.ParseInt(rec.ID, 10, 64)
		rec.ID = strconv.FormatInt(ms+1, 10)
	}
	return err
}

// RecordLogin เขียนเหตุการณ์ล็อกอินเป็นแถวใหม่เสมอ key = epoch ms ตอนเรียก
// แถวนี้ไม่ถูกอัปเดตอีก และไม่มีการจับคู่กับ logout ที่ตามมา —
// ฝั่งอ่านต้องถือว่าแต่ละแถวคือเหตุการณ์เดี่ยว ๆ ไม่ใช่ช่วงเวลา
func RecordLogin(userID string) error {
	now := time.Now()
	rec := models.AttendanceLog{
		UserID:         userID,
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		LoginTimestamp: &now,
	}
	if err := insertAttendanceLog(&rec); err != nil {
		log.Printf("[attendance] record login for %q failed: %v", userID, err)
		return err
	}
	realtime.Default.Publish(attendanceTopic(userID))
	return nil
}

// RecordLogout เหมือน RecordLogin แต่ฝั่ง logout — แถวใหม่แยกต่างหากเช่นกัน
func RecordLogout(userID string) error {
	now := time.Now()
	rec := models.AttendanceLog{
		UserID:          userID,
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		LogoutTimestamp: &now,
	}
	if err := insertAttendanceLog(&rec); err != nil {
		log.Printf("[attendance] record logout for %q failed: %v", userID, err)
		return err
	}
	realtime.Default.Publish(attendanceTopic(userID))
	return nil
}

// ListAttendanceLogs คืนประวัติของ user เรียง login ใหม่สุดก่อน
// NULLS LAST เพื่อให้แถว logout-only (login เป็น null) ไปอยู่ท้ายรายการ
func ListAttendanceLogs(userID string) ([]models.AttendanceLog, error) {
	var logs []models.AttendanceLog
	if err := DB.Where("user_id = ?", userID).Order("login_timestamp DESC NULLS LAST").Find(&logs).Error; err != nil {
		log.Printf("[attendance] list for %q failed: %v", userID, err)
		return nil, err
	}
	return logs, nil
}

// Tracker จำ user ที่ยังล็อกอินอยู่ เพื่อเขียน logout ให้ตอน server ปิดตัว
// best-effort เท่านั้น: process ตายกะทันหันก็ไม่มีแถว logout
// (เทียบกับ beforeunload ของเบราว์เซอร์ในระบบเดิม)
type Tracker struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{active: make(map[string]struct{})}
}

func (t *Tracker) SetUserID(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active[id] = struct{}{}
}

func (t *Tracker) ClearUserID(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, id)
}

// Cleanup flush logout ของทุก user ที่ยังค้างอยู่ แล้วล้างรายการ
func (t *Tracker) Cleanup() {
	t.mu.Lock()
	ids := make([]string, 0, len(t.active))
	for id := range t.active {
		ids = append(ids, id)
	}
	t.active = make(map[string]struct{})
	t.mu.Unlock()

	for _, id := range ids {
		_ = RecordLogout(id) // error ถูก log ใน RecordLogout แล้ว
	}
}
