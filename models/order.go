package models

import (
	"time"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	UserID              *uint       `gorm:"index" json:"user_id,omitempty"`
	User                *Account    `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	RestaurantID        uint        `gorm:"not null;index" json:"restaurant_id"`
	Restaurant          Restaurant  `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	OrderType           OrderType   `gorm:"type:varchar(20);not null" json:"order_type"`
	Status              OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount         float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	ScheduledTime       *string     `gorm:"type:varchar(64)" json:"scheduled_time,omitempty"`
	SpecialInstructions *string     `gorm:"type:text" json:"special_instructions,omitempty"`
	CreatedAt           time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order_items,omitempty"`
}
