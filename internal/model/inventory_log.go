package model

import "time"

// LogKind is the direction of a stock movement
type LogKind string

const (
	KindIn  LogKind = "in"
	KindOut LogKind = "out"
)

// InventoryLog is an append-only record of a single stock change.
// Entries are never updated or deleted except via product cascade.
type InventoryLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity" validate:"required,gt=0"` // always positive, direction in Kind
	Kind      LogKind   `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=in out"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
