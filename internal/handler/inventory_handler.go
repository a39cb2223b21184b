package handler

import (
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/model"
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GET /api/inventory/products
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// GET /api/inventory/products/:id
func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// POST /api/inventory/products
func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var req model.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	productID, err := h.service.CreateProduct(&req, actorID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":   "Product created successfully",
		"productId": productID,
	})
}

// PUT /api/inventory/products/:id
func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	var req model.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if err := h.service.UpdateProduct(id, &req); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product updated successfully"})
}

// DELETE /api/inventory/products/:id
func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// POST /api/inventory/products/:id/stock
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	var req model.StockAdjustmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	newStock, err := h.service.AdjustStock(id, &req, actorID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Stock updated successfully",
		"newStock": newStock,
	})
}

// GET /api/inventory/products/:id/logs
func (h *InventoryHandler) GetProductLogs(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	logs, err := h.service.ProductLogs(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(logs)
}

// GET /api/inventory/categories
func (h *InventoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(categories)
}

// POST /api/inventory/categories
func (h *InventoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req model.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	categoryID, err := h.service.CreateCategory(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Category created successfully",
		"categoryId": categoryID,
	})
}

// DELETE /api/inventory/categories/:id
func (h *InventoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid category ID"})
	}

	if err := h.service.DeleteCategory(id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
