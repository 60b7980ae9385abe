package models

// OrderItem keeps the unit price captured when the order was placed.
type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// the order_id foreign key is declared on Order.OrderItems
	Order      Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	FoodItemID uint     `gorm:"not null;index" json:"food_item_id"`
	FoodItem   FoodItem `gorm:"foreignKey:FoodItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity   int      `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price      float64  `gorm:"type:decimal(10,2);not null" json:"price"`
}
