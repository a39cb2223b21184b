package repository

import (
	"time"

	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/model"

	"gorm.io/gorm"
)

// ProductRow is a product joined with its category for list/detail views
type ProductRow struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Cost         *float64  `json:"cost"`
	Stock        int       `json:"stock"`
	Threshold    int       `json:"threshold"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CategoryID   *uint     `json:"category_id"`
	CategoryName *string   `json:"category_name"`
}

// CategoryCount is a per-category product tally for the dashboard
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// LowStockRow is a product at or under its reorder point
type LowStockRow struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
	Category  string `json:"category"`
}

type ProductRepository interface {
	FindByID(id uint) (*model.Product, error)
	FindRowByID(id uint) (*ProductRow, error)
	FindAllRows() ([]ProductRow, error)
	UpdateMetadata(product *model.Product) error
	Delete(id uint) error

	CountAll() (int64, error)
	CountLowStock() (int64, error)
	CountOutOfStock() (int64, error)
	TotalValue() (float64, error)
	CountByCategory() ([]CategoryCount, error)
	LowStock(limit int) ([]LowStockRow, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

const productRowSelect = `products.id, products.name, products.description, products.price,
	products.cost, products.stock, products.threshold, products.created_at, products.updated_at,
	categories.id AS category_id, categories.name AS category_name`

func (r *productRepo) FindRowByID(id uint) (*ProductRow, error) {
	var rows []ProductRow
	err := r.db.Model(&model.Product{}).
		Select(productRowSelect).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *productRepo) FindAllRows() ([]ProductRow, error) {
	rows := []ProductRow{}
	err := r.db.Model(&model.Product{}).
		Select(productRowSelect).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Order("products.name").
		Scan(&rows).Error
	return rows, err
}

// UpdateMetadata writes the editable columns only. Stock is owned by the
// ledger and must never be touched here.
func (r *productRepo) UpdateMetadata(product *model.Product) error {
	return r.db.Model(&model.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"category_id": product.CategoryID,
		"price":       product.Price,
		"cost":        product.Cost,
		"threshold":   product.Threshold,
	}).Error
}

func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepo) CountLowStock() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).
		Where("stock <= threshold AND stock > 0").
		Count(&count).Error
	return count, err
}

func (r *productRepo) CountOutOfStock() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("stock = 0").Count(&count).Error
	return count, err
}

func (r *productRepo) TotalValue() (float64, error) {
	var total float64
	err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(price * stock), 0)").
		Scan(&total).Error
	return total, err
}

// CountByCategory inner-joins categories, so uncategorized products are not
// represented here even though they count toward the product total.
func (r *productRepo) CountByCategory() ([]CategoryCount, error) {
	rows := []CategoryCount{}
	err := r.db.Model(&model.Product{}).
		Select("categories.name AS category, COUNT(products.id) AS count").
		Joins("JOIN categories ON categories.id = products.category_id").
		Group("categories.name").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// LowStock returns the most critically under-stocked products first,
// measured by how far stock has fallen below the reorder point.
func (r *productRepo) LowStock(limit int) ([]LowStockRow, error) {
	rows := []LowStockRow{}
	err := r.db.Model(&model.Product{}).
		Select("products.id, products.name, products.stock, products.threshold, categories.name AS category").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.stock <= products.threshold").
		Order("(products.threshold - products.stock) DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
