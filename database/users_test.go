package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestCreateUser_ProvisionsAccount(t *testing.T) {
	setupTestDB(t)

	u, err := CreateUser("john.doe@example.com", "secret123", "John Doe", false)
	require.NoError(t, err)
	assert.Equal(t, "john-doe", u.Slug)
	assert.NotEmpty(t, u.UserID)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsAdmin)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
}

func TestCreateUser_AdminFlagIsTheOnlyDifference(t *testing.T) {
	setupTestDB(t)

	u, err := CreateUser("boss@example.com", "pw", "Boss", true)
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
	assert.True(t, u.IsActive)
}

// ชื่อซ้ำ → probe ต่อท้าย -1, -2, ...
func TestCreateUser_SlugProbeSkipsTaken(t *testing.T) {
	setupTestDB(t)

	_, err := CreateUser("a@example.com", "pw", "John Doe", false)
	require.NoError(t, err)
	u2, err := CreateUser("b@example.com", "pw", "John Doe", false)
	require.NoError(t, err)
	assert.Equal(t, "john-doe-1", u2.Slug)
}

// deactivate → activate ต้องคืน is_active และ stamp updated_at ทุก transition
func TestDeactivateThenActivate_RestoresFlagAndStampsUpdatedAt(t *testing.T) {
	setupTestDB(t)

	u, err := CreateUser("john@example.com", "pw", "John Doe", false)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, DeactivateUser(u.Slug))
	afterOff, err := GetUserBySlug(u.Slug)
	require.NoError(t, err)
	assert.False(t, afterOff.IsActive)
	assert.True(t, afterOff.UpdatedAt.After(u.UpdatedAt))

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, ActivateUser(u.Slug))
	afterOn, err := GetUserBySlug(u.Slug)
	require.NoError(t, err)
	assert.True(t, afterOn.IsActive)
	assert.True(t, afterOn.UpdatedAt.After(afterOff.UpdatedAt))
}

func TestUpdateUser_StampsUpdatedAtAndProtectsIdentity(t *testing.T) {
	setupTestDB(t)

	u, err := CreateUser("john@example.com", "pw", "John Doe", false)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, UpdateUser(u.Slug, map[string]any{
		"name":    "Johnny",
		"slug":    "hijacked", // identity ต้องถูกตัดทิ้งก่อนเขียน
		"user_id": "hijacked-id",
	}))

	got, err := GetUserBySlug(u.Slug)
	require.NoError(t, err)
	assert.Equal(t, "Johnny", got.Name)
	assert.Equal(t, u.UserID, got.UserID)
	assert.True(t, got.UpdatedAt.After(u.UpdatedAt))
}

func TestUpdateUser_UnknownSlug(t *testing.T) {
	setupTestDB(t)

	err := UpdateUser("ghost", map[string]any{"name": "x"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
