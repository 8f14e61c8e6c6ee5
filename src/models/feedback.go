package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback คือ submission ที่ commit แล้วหนึ่งรายการ
type Feedback struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Service        string             `bson:"service" json:"service"`
	Rating         int                `bson:"rating" json:"rating"`
	Comments       string             `bson:"comments" json:"comments"`
	ContactConsent bool               `bson:"contactConsent" json:"contactConsent"`
	FullName       *string            `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Email          *string            `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
	// soft delete: record ยังอยู่ใน collection แต่หายจาก listing ปกติ
	Deleted   bool       `bson:"deleted" json:"deleted"`
	DeletedAt *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
}

// FeedbackList คำตอบของหน้า list: รายการ active พร้อม total จาก snapshot เดียวกัน
type FeedbackList struct {
	Items []Feedback `json:"items"`
	Total int64      `json:"total"`
}

// FlashMessage is the one-shot outcome carried across the redirect that
// follows a commit. Read once, then gone.
type FlashMessage struct {
	Reference string `json:"reference,omitempty"`
	Submitted bool   `json:"submitted,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
