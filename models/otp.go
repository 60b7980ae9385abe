package models

import "time"

// OtpVerification is a one-time password challenge looked up by mobile number.
// A code is spent by flipping IsUsed, rows are never deleted.
type OtpVerification struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MobileNumber string    `gorm:"type:varchar(32);not null;index" json:"mobile_number"`
	OtpCode      string    `gorm:"type:varchar(12);not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	IsUsed       bool      `gorm:"not null;default:false" json:"is_used"`
}

func (OtpVerification) TableName() string {
	return "otp_verification"
}

func (o OtpVerification) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
