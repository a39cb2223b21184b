package model

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	CategoryID  *uint     `gorm:"index" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price" validate:"gte=0"`
	Cost        *float64  `gorm:"type:decimal(10,2)" json:"cost,omitempty"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	Threshold   int       `gorm:"not null;default:10" json:"threshold"` // reorder point
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Log history is owned by the product and cascades on delete
	Logs []InventoryLog `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
