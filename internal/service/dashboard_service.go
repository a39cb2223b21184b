package service

import (
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/repository"
)

// Dashboard is the inventory-health snapshot returned by GET /dashboard
type Dashboard struct {
	TotalProducts      int64                      `json:"totalProducts"`
	LowStockCount      int64                      `json:"lowStockCount"`
	OutOfStockCount    int64                      `json:"outOfStockCount"`
	TotalValue         float64                    `json:"totalValue"`
	RecentLogs         []repository.RecentLogRow  `json:"recentLogs"`
	ProductsByCategory []repository.CategoryCount `json:"productsByCategory"`
	LowStockProducts   []repository.LowStockRow   `json:"lowStockProducts"`
}

const (
	recentLogLimit = 10
	lowStockLimit  = 5
)

type DashboardService interface {
	GetDashboard() (*Dashboard, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	logRepo     repository.InventoryLogRepository
}

func NewDashboardService(pRepo repository.ProductRepository, lRepo repository.InventoryLogRepository) DashboardService {
	return &dashboardService{productRepo: pRepo, logRepo: lRepo}
}

// GetDashboard recomputes every figure from the current committed state.
// Nothing is cached; each call reflects the store at call time.
func (s *dashboardService) GetDashboard() (*Dashboard, error) {
	var (
		dash Dashboard
		err  error
	)

	if dash.TotalProducts, err = s.productRepo.CountAll(); err != nil {
		return nil, err
	}
	if dash.LowStockCount, err = s.productRepo.CountLowStock(); err != nil {
		return nil, err
	}
	if dash.OutOfStockCount, err = s.productRepo.CountOutOfStock(); err != nil {
		return nil, err
	}
	if dash.TotalValue, err = s.productRepo.TotalValue(); err != nil {
		return nil, err
	}
	if dash.RecentLogs, err = s.logRepo.Recent(recentLogLimit); err != nil {
		return nil, err
	}
	if dash.ProductsByCategory, err = s.productRepo.CountByCategory(); err != nil {
		return nil, err
	}
	if dash.LowStockProducts, err = s.productRepo.LowStock(lowStockLimit); err != nil {
		return nil, err
	}

	return &dash, nil
}
