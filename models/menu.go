package models

import "time"

// FoodItem is a menu entry. Names are unique per restaurant so seeding can rely on conflicts.
type FoodItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_food_items_restaurant_name,priority:1" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name         string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_food_items_restaurant_name,priority:2" json:"name"`
	Category     string     `gorm:"type:varchar(100);not null" json:"category"`
	Price        float64    `gorm:"type:decimal(10,2);not null;check:price >= 0" json:"price"`
	Description  string     `gorm:"type:text" json:"description"`
	Image        string     `gorm:"type:text" json:"image"`
	// Dietary is free text, comma separated (e.g. "gluten-free,healthy").
	Dietary     string    `gorm:"type:varchar(255)" json:"dietary"`
	ChefSpecial bool      `gorm:"not null;default:false" json:"chef_special"`
	Available   bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
