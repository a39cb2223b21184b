package model

// Request payloads, validated at the handler/service boundary before any
// business logic runs.

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	CategoryID  *uint    `json:"category_id"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Cost        *float64 `json:"cost" validate:"omitempty,gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Threshold   int      `json:"threshold" validate:"gte=0"`
}

// UpdateProductRequest carries metadata only. Stock is never mutated through
// this path; all stock changes go through the ledger.
type UpdateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	CategoryID  *uint    `json:"category_id"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Cost        *float64 `json:"cost" validate:"omitempty,gte=0"`
	Threshold   int      `json:"threshold" validate:"gte=0"`
}

type StockAdjustmentRequest struct {
	Kind     LogKind `json:"type" validate:"required,oneof=in out"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Notes    string  `json:"notes"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
