package models

import "time"

type TableImage struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TableType    string     `gorm:"type:varchar(50);not null" json:"table_type"`
	ImagePath    string     `gorm:"type:varchar(512);not null" json:"image_path"`
	ImageName    string     `gorm:"type:varchar(255);not null" json:"image_name"`
	UploadedAt   time.Time  `gorm:"not null;autoCreateTime" json:"uploaded_at"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
}
