package service

import (
	"errors"
	"fmt"

	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/model"
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/repository"
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/ws"

	"gorm.io/gorm"
)

type InventoryService interface {
	ListProducts() ([]repository.ProductRow, error)
	GetProduct(id uint) (*repository.ProductRow, error)
	CreateProduct(req *model.CreateProductRequest, actorID *uint) (uint, error)
	UpdateProduct(id uint, req *model.UpdateProductRequest) error
	DeleteProduct(id uint) error
	AdjustStock(productID uint, req *model.StockAdjustmentRequest, actorID *uint) (int, error)
	ProductLogs(productID uint) ([]repository.ProductLogRow, error)
	ListCategories() ([]model.Category, error)
	CreateCategory(req *model.CreateCategoryRequest) (uint, error)
	DeleteCategory(id uint) error
}

type inventoryService struct {
	productRepo  repository.ProductRepository
	logRepo      repository.InventoryLogRepository
	categoryRepo repository.CategoryRepository
	db           *gorm.DB
	hub          *ws.Hub
}

func NewInventoryService(
	pRepo repository.ProductRepository,
	lRepo repository.InventoryLogRepository,
	cRepo repository.CategoryRepository,
	db *gorm.DB,
	hub *ws.Hub,
) InventoryService {
	return &inventoryService{
		productRepo:  pRepo,
		logRepo:      lRepo,
		categoryRepo: cRepo,
		db:           db,
		hub:          hub,
	}
}

func (s *inventoryService) ListProducts() ([]repository.ProductRow, error) {
	return s.productRepo.FindAllRows()
}

func (s *inventoryService) GetProduct(id uint) (*repository.ProductRow, error) {
	row, err := s.productRepo.FindRowByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return row, nil
}

// CreateProduct inserts the product and, when an initial stock is given,
// appends the opening ledger entry in the same transaction.
func (s *inventoryService) CreateProduct(req *model.CreateProductRequest, actorID *uint) (uint, error) {
	if err := validateStruct(req); err != nil {
		return 0, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fmt.Errorf("%w: category %d does not exist", ErrInvalidInput, *req.CategoryID)
			}
			return 0, err
		}
	}

	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		Threshold:   req.Threshold,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		if req.Stock > 0 {
			entry := model.InventoryLog{
				ProductID: product.ID,
				UserID:    actorID,
				Quantity:  req.Stock,
				Kind:      model.KindIn,
				Notes:     "Initial stock",
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.hub.Publish(map[string]interface{}{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
		"stock":      product.Stock,
	})

	return product.ID, nil
}

func (s *inventoryService) UpdateProduct(id uint, req *model.UpdateProductRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: category %d does not exist", ErrInvalidInput, *req.CategoryID)
			}
			return err
		}
	}

	// Metadata only: stock stays whatever the ledger last committed
	product.Name = req.Name
	product.Description = req.Description
	product.CategoryID = req.CategoryID
	product.Price = req.Price
	product.Cost = req.Cost
	product.Threshold = req.Threshold

	return s.productRepo.UpdateMetadata(product)
}

func (s *inventoryService) DeleteProduct(id uint) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.hub.Publish(map[string]interface{}{
		"type":       "product_deleted",
		"product_id": id,
		"name":       product.Name,
	})

	return nil
}

// AdjustStock applies one signed stock delta to a product and appends the
// matching ledger entry, both inside a single transaction. Lost updates are
// prevented by the guarded UPDATE on the stock column: a concurrent writer
// either sees the committed value or the guard fails and nothing is written.
func (s *inventoryService) AdjustStock(productID uint, req *model.StockAdjustmentRequest, actorID *uint) (int, error) {
	if err := validateStruct(req); err != nil {
		return 0, err
	}

	var newStock int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		var res *gorm.DB
		switch req.Kind {
		case model.KindIn:
			res = tx.Model(&model.Product{}).
				Where("id = ?", productID).
				Update("stock", gorm.Expr("stock + ?", req.Quantity))
		case model.KindOut:
			if product.Stock < req.Quantity {
				return ErrInsufficientStock
			}
			res = tx.Model(&model.Product{}).
				Where("id = ? AND stock >= ?", productID, req.Quantity).
				Update("stock", gorm.Expr("stock - ?", req.Quantity))
		default:
			return fmt.Errorf("%w: type must be 'in' or 'out'", ErrInvalidInput)
		}
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if req.Kind == model.KindIn {
				// Row vanished between the read and the update
				return ErrProductNotFound
			}
			// Guard lost against a concurrent withdrawal
			return ErrInsufficientStock
		}

		// Re-read inside the transaction: sees our own write, and the row
		// stays locked until commit
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			return err
		}
		newStock = product.Stock

		entry := model.InventoryLog{
			ProductID: productID,
			UserID:    actorID,
			Quantity:  req.Quantity,
			Kind:      req.Kind,
			Notes:     req.Notes,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return 0, err
	}

	s.hub.Publish(map[string]interface{}{
		"type":       "stock_adjusted",
		"product_id": productID,
		"movement":   req.Kind,
		"quantity":   req.Quantity,
		"new_stock":  newStock,
	})

	return newStock, nil
}

func (s *inventoryService) ProductLogs(productID uint) ([]repository.ProductLogRow, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.logRepo.FindByProduct(productID)
}

func (s *inventoryService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *inventoryService) CreateCategory(req *model.CreateCategoryRequest) (uint, error) {
	if err := validateStruct(req); err != nil {
		return 0, err
	}

	existing, err := s.categoryRepo.FindByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	if existing != nil {
		return 0, ErrCategoryExists
	}

	category := model.Category{Name: req.Name, Description: req.Description}
	if err := s.categoryRepo.Create(&category); err != nil {
		return 0, err
	}
	return category.ID, nil
}

// DeleteCategory removes the category; dependent products keep their rows
// with category_id nulled by the foreign key.
func (s *inventoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepo.Delete(id)
}
