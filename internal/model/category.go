package model

import "time"

// Category groups products. Deleting a category detaches its products
// (category_id set to NULL) instead of deleting them.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Products []Product `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
