package slug

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// จำนวนครั้งสูงสุดที่ยอม probe หา slug ว่าง (base, base-1, base-2, ...)
const maxProbes = 50

// ErrConflict คือหา slug ว่างไม่เจอภายใน maxProbes ครั้ง
var ErrConflict = errors.New("slug: no available slug after max probes")

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// Generate สร้าง slug จากชื่อ (ถ้ามี) หรือ local part ของอีเมล:
// lowercase → ตัดอักขระนอก [a-z0-9\s-] → ช่องว่างเป็น "-" → ยุบ "-" ซ้ำ → trim "-"
// ถ้าผลลัพธ์ว่าง (input เพี้ยนจนไม่เหลืออะไร) จะ fallback เป็น "user-<token>"
// ซึ่ง branch นั้นไม่ deterministic
func Generate(email, name string) string {
	base := name
	if base == "" {
		base = strings.SplitN(email, "@", 2)[0]
	}

	s := strings.ToLower(base)
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		return "user-" + uuid.NewString()[:8]
	}
	return s
}

// GenerateUnique probe ด้วย taken จนเจอ slug ที่ยังว่าง แล้วคืนค่านั้น
//
// check-then-use ตรงนี้ไม่ atomic: สมัครพร้อมกันสองคนด้วยชื่อเดียวกัน
// อาจเห็นค่าว่างตัวเดียวกันทั้งคู่ ชั้นกันสุดท้ายคือ unique index ที่ตาราง users
// (ดู database.CreateUser ซึ่งแปลง duplicate key เป็น ErrConflict)
func GenerateUnique(email, name string, taken func(string) (bool, error)) (string, error) {
	base := Generate(email, name)
	candidate := base
	for i := 1; i <= maxProbes; i++ {
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", ErrConflict
}
