package repository

import (
	"time"

	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/model"

	"gorm.io/gorm"
)

// ProductLogRow is one ledger entry joined with the acting user
type ProductLogRow struct {
	ID        uint          `json:"id"`
	Quantity  int           `json:"quantity"`
	Kind      model.LogKind `json:"type"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"created_at"`
	UserName  *string       `json:"user_name"`
}

// RecentLogRow is a ledger entry joined with product and actor names for the
// dashboard. System-originated entries (no user attached) carry "System".
type RecentLogRow struct {
	ID          uint          `json:"id"`
	ProductName string        `json:"product_name"`
	Quantity    int           `json:"quantity"`
	Kind        model.LogKind `json:"type"`
	CreatedAt   time.Time     `json:"created_at"`
	UserName    string        `json:"user_name"`
}

type InventoryLogRepository interface {
	FindByProduct(productID uint) ([]ProductLogRow, error)
	Recent(limit int) ([]RecentLogRow, error)
	CountByProduct(productID uint) (int64, error)
}

type inventoryLogRepo struct {
	db *gorm.DB
}

func NewInventoryLogRepo(db *gorm.DB) InventoryLogRepository {
	return &inventoryLogRepo{db}
}

func (r *inventoryLogRepo) FindByProduct(productID uint) ([]ProductLogRow, error) {
	rows := []ProductLogRow{}
	err := r.db.Model(&model.InventoryLog{}).
		Select(`inventory_logs.id, inventory_logs.quantity, inventory_logs.kind,
			inventory_logs.notes, inventory_logs.created_at, users.username AS user_name`).
		Joins("LEFT JOIN users ON users.id = inventory_logs.user_id").
		Where("inventory_logs.product_id = ?", productID).
		Order("inventory_logs.created_at DESC, inventory_logs.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *inventoryLogRepo) Recent(limit int) ([]RecentLogRow, error) {
	rows := []RecentLogRow{}
	err := r.db.Model(&model.InventoryLog{}).
		Select(`inventory_logs.id, products.name AS product_name, inventory_logs.quantity,
			inventory_logs.kind, inventory_logs.created_at,
			COALESCE(users.username, 'System') AS user_name`).
		Joins("JOIN products ON products.id = inventory_logs.product_id").
		Joins("LEFT JOIN users ON users.id = inventory_logs.user_id").
		Order("inventory_logs.created_at DESC, inventory_logs.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *inventoryLogRepo) CountByProduct(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.InventoryLog{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}
