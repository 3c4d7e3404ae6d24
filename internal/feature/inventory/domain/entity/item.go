// Package entity defines the domain entities for the inventory feature.
package entity

import "time"

// Item represents a stocked inventory item (ingredients, packaging and the
// like), distinct from the sweets sold over the counter.
type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:1024" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Quantity    int       `gorm:"not null;default:0" json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName keeps the table name aligned with the API surface.
func (Item) TableName() string {
	return "inventory_items"
}
