package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database. The pool is capped at one
// connection so concurrent transactions serialize instead of tripping
// sqlite's writer lock.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Product{}, &model.InventoryLog{},
	))
	return db
}

func createCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := model.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func createProduct(t *testing.T, db *gorm.DB, name string, categoryID *uint, price float64, stock, threshold int) *model.Product {
	t.Helper()
	product := model.Product{
		Name:       name,
		CategoryID: categoryID,
		Price:      price,
		Stock:      stock,
		Threshold:  threshold,
	}
	require.NoError(t, db.Create(&product).Error)
	// default:10 tags kick in on zero values; force the fixture's exact numbers
	require.NoError(t, db.Model(&product).Updates(map[string]interface{}{
		"stock":     stock,
		"threshold": threshold,
	}).Error)
	product.Stock = stock
	product.Threshold = threshold
	return &product
}

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{Username: username, Name: username, Role: model.RoleUser}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(&user).Error)
	return &user
}
