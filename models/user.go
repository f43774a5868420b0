package models

import "time"

// บัญชีผู้ใช้ — key ด้วย slug (URL ส่วนตัวของแต่ละคน) slug ห้ามเปลี่ยนหลังสร้าง
type User struct {
	Slug         string    `json:"user_name_slug" gorm:"primaryKey;size:120"`
	UserID       string    `json:"user_id" gorm:"uniqueIndex;size:36;not null"` // uuid ออกตอน provision
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	Name         string    `json:"name" gorm:"size:120"`
	PasswordHash string    `json:"-" gorm:"not null"` // เก็บ bcrypt hash
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	IsAdmin      bool      `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
