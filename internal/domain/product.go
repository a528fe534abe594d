package domain

import "time"

// Product is a storefront catalog item (supplements, apparel, accessories).
type Product struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"index" json:"name"`
	Price     float64   `json:"price"` // price in BRL units
	Image     string    `gorm:"size:1024" json:"image"`
	Category  string    `gorm:"size:32" json:"category"` // 'supplement', 'apparel' or 'accessory'
	Stock     *int      `json:"stock,omitempty"`
	Status    string    `gorm:"size:16" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
