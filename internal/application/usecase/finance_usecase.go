package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
	"github.com/jhoicas/mobile-inventory/pkg/logger"
)

// FinanceUseCase ventas y gastos.
type FinanceUseCase struct {
	repo    repository.FinanceRepository
	history repository.HistoryLogRepository
	log     *logger.Logger
	now     func() time.Time
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(repo repository.FinanceRepository, history repository.HistoryLogRepository, log *logger.Logger) *FinanceUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &FinanceUseCase{repo: repo, history: history, log: log.Named("finance"), now: time.Now}
}

// RecordSale registra una venta. amount debe ser > 0.
func (uc *FinanceUseCase) RecordSale(ctx context.Context, actor entity.Actor, in dto.FinanceEntryRequest) (*dto.FinanceEntryDTO, error) {
	date, err := uc.entryDate(in)
	if err != nil {
		return nil, err
	}
	s := &entity.Sale{
		Category:    strings.TrimSpace(in.Category),
		Amount:      in.Amount,
		Date:        date,
		ActorID:     actor.UserID,
		ActorName:   actor.Username,
		Description: strings.TrimSpace(in.Description),
	}
	if err := uc.repo.CreateSale(ctx, s); err != nil {
		return nil, err
	}
	uc.logHistory(ctx, actor, entity.LogTypeSaleRecorded)
	out := toFinanceDTO(s.ID, s.Category, s.Amount, s.Date, s.ActorName, s.ActorID, s.Description)
	return &out, nil
}

// RecordExpense registra un gasto. amount debe ser > 0.
func (uc *FinanceUseCase) RecordExpense(ctx context.Context, actor entity.Actor, in dto.FinanceEntryRequest) (*dto.FinanceEntryDTO, error) {
	date, err := uc.entryDate(in)
	if err != nil {
		return nil, err
	}
	e := &entity.Expense{
		Category:    strings.TrimSpace(in.Category),
		Amount:      in.Amount,
		Date:        date,
		ActorID:     actor.UserID,
		ActorName:   actor.Username,
		Description: strings.TrimSpace(in.Description),
	}
	if err := uc.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}
	uc.logHistory(ctx, actor, entity.LogTypeExpenseRecorded)
	out := toFinanceDTO(e.ID, e.Category, e.Amount, e.Date, e.ActorName, e.ActorID, e.Description)
	return &out, nil
}

// ListSales página de ventas, más recientes primero.
func (uc *FinanceUseCase) ListSales(ctx context.Context, page dto.PageRequest) (*dto.FinancePage, error) {
	page.Normalize()
	total, err := uc.repo.CountSales(ctx)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListSales(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.FinancePage{Items: make([]dto.FinanceEntryDTO, 0, len(list)), Total: decimal.Zero, Page: dto.NewPageResponse(page, total)}
	for _, s := range list {
		out.Items = append(out.Items, toFinanceDTO(s.ID, s.Category, s.Amount, s.Date, s.ActorName, s.ActorID, s.Description))
		out.Total = out.Total.Add(s.Amount)
	}
	return out, nil
}

// ListExpenses página de gastos, más recientes primero.
func (uc *FinanceUseCase) ListExpenses(ctx context.Context, page dto.PageRequest) (*dto.FinancePage, error) {
	page.Normalize()
	total, err := uc.repo.CountExpenses(ctx)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListExpenses(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.FinancePage{Items: make([]dto.FinanceEntryDTO, 0, len(list)), Total: decimal.Zero, Page: dto.NewPageResponse(page, total)}
	for _, e := range list {
		out.Items = append(out.Items, toFinanceDTO(e.ID, e.Category, e.Amount, e.Date, e.ActorName, e.ActorID, e.Description))
		out.Total = out.Total.Add(e.Amount)
	}
	return out, nil
}

func (uc *FinanceUseCase) entryDate(in dto.FinanceEntryRequest) (time.Time, error) {
	if !in.Amount.IsPositive() || strings.TrimSpace(in.Category) == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	return parseDay(in.Date, uc.now())
}

func (uc *FinanceUseCase) logHistory(ctx context.Context, actor entity.Actor, logType string) {
	if uc.history == nil {
		return
	}
	if err := uc.history.Create(ctx, actor.UserID, logType); err != nil {
		uc.log.Warn().Err(err).Str("log_type", logType).Msg("history log write failed")
	}
}

func toFinanceDTO(id int64, category string, amount decimal.Decimal, date time.Time, actor string, actorID int64, desc string) dto.FinanceEntryDTO {
	return dto.FinanceEntryDTO{
		ID:          id,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Actor:       actorName(actor, actorID),
		Description: desc,
	}
}
