package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patiponrmutl/BEGoldTrack/models"
)

// แถว logout-only (login เป็น null) ต้องอยู่ท้ายรายการ ไม่ใช่นำหน้า
func TestListAttendanceLogs_NullLoginSortsLast(t *testing.T) {
	setupTestDB(t)

	t1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC)
	require.NoError(t, DB.Create(&models.AttendanceLog{UserID: "u1", ID: "1", LoginTimestamp: &t1}).Error)
	require.NoError(t, DB.Create(&models.AttendanceLog{UserID: "u1", ID: "2", LogoutTimestamp: &t2}).Error)
	require.NoError(t, DB.Create(&models.AttendanceLog{UserID: "u1", ID: "3", LoginTimestamp: &t2}).Error)

	logs, err := ListAttendanceLogs("u1")
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "3", logs[0].ID) // login ล่าสุดก่อน
	assert.Equal(t, "1", logs[1].ID)
	assert.Nil(t, logs[2].LoginTimestamp)
}

// login กับ logout ใน ms เดียวกันต้องไม่ชน primary key — key ขยับไป ms ถัดไป
func TestInsertAttendanceLog_SameMillisecondDoesNotCollide(t *testing.T) {
	setupTestDB(t)

	now := time.Now()
	first := models.AttendanceLog{UserID: "u1", ID: "1714550400000", LoginTimestamp: &now}
	require.NoError(t, insertAttendanceLog(&first))

	second := models.AttendanceLog{UserID: "u1", ID: "1714550400000", LogoutTimestamp: &now}
	require.NoError(t, insertAttendanceLog(&second))
	assert.Equal(t, "1714550400001", second.ID)

	logs, err := ListAttendanceLogs("u1")
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

// login/logout เขียนคนละแถวเสมอ และแต่ละแถวมี timestamp ฝั่งเดียว
func TestRecordLoginAndLogout_WriteSeparateRows(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, RecordLogin("u1"))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, RecordLogout("u1"))

	logs, err := ListAttendanceLogs("u1")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, l := range logs {
		oneSide := (l.LoginTimestamp != nil) != (l.LogoutTimestamp != nil)
		assert.True(t, oneSide, "row %s must carry exactly one timestamp", l.ID)
	}
}

func TestTracker_CleanupFlushesLogout(t *testing.T) {
	setupTestDB(t)

	tr := NewTracker()
	tr.SetUserID("u1")
	tr.Cleanup()

	logs, err := ListAttendanceLogs("u1")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.NotNil(t, logs[0].LogoutTimestamp)
	assert.Nil(t, logs[0].LoginTimestamp)

	// Cleanup ล้างรายการไปแล้ว — เรียกซ้ำต้องไม่เขียนเพิ่ม
	tr.Cleanup()
	logs, err = ListAttendanceLogs("u1")
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
