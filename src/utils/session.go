package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sessionCookie = "fjs_session"

// SessionID คืน session id ของผู้ใช้จาก cookie, ไม่มีก็สร้างใหม่แล้ว set กลับ
//
// Session แค่ผูก draft ของ journey กับ browser เดียว — ไม่ใช่ authentication
func SessionID(c *fiber.Ctx) string {
	if sid := c.Cookies(sessionCookie); sid != "" {
		return sid
	}

	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return sid
}
