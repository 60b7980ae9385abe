package models

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	UserID          *uint         `gorm:"index" json:"user_id,omitempty"`
	User            *Account      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	RestaurantID    uint          `gorm:"not null;index" json:"restaurant_id"`
	Restaurant      Restaurant    `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TableType       string        `gorm:"type:varchar(50);not null" json:"table_type"`
	Date            string        `gorm:"type:varchar(10);not null" json:"date"`
	Time            string        `gorm:"type:varchar(8);not null" json:"time"`
	Guests          int           `gorm:"not null;check:guests > 0" json:"guests"`
	SpecialRequests *string       `gorm:"type:text" json:"special_requests,omitempty"`
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt       time.Time     `gorm:"not null" json:"created_at"`
}
