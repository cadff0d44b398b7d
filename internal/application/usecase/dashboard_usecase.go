package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

// DashboardUseCase KPIs de la página principal.
type DashboardUseCase struct {
	levels        repository.InventoryLevelRepository
	notifications repository.NotificationRepository
	finance       repository.FinanceRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	levels repository.InventoryLevelRepository,
	notifications repository.NotificationRepository,
	finance repository.FinanceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{levels: levels, notifications: notifications, finance: finance, now: time.Now}
}

// Summary stock bajo, notificaciones sin leer, resultado del mes en curso y descuadres de stock.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	var out dto.DashboardSummaryDTO
	var err error
	if out.LowStockProducts, err = uc.levels.CountLow(ctx, entity.ItemTypeProduct); err != nil {
		return nil, err
	}
	if out.LowStockRawMaterials, err = uc.levels.CountLow(ctx, entity.ItemTypeRawMaterial); err != nil {
		return nil, err
	}
	if out.UnreadNotifications, err = uc.notifications.Count(ctx, true); err != nil {
		return nil, err
	}
	if out.StockDrift, err = uc.levels.CountDrift(ctx); err != nil {
		return nil, err
	}
	revenue, expenses, err := uc.finance.PeriodTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out.MonthRevenue = revenue
	out.MonthExpenses = expenses
	out.MonthProfit = revenue.Sub(expenses)
	out.DateLabel = from.Format("January 2006")
	return &out, nil
}
