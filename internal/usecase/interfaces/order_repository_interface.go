package interfaces

import (
	"context"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
)

// Read-side repositories backing the public status protocol. Missing rows are
// reported as zero-value entities with a nil error; callers check the ID (or
// the NumeroOS) instead of matching a storage-specific not-found error.

type IServiceOrderRepository interface {
	GetByNumeroOS(ctx context.Context, numeroOS int) (entities.ServiceOrder, error)
}

type IVehicleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
}

// IOrderItemsRepository groups the per-order reads the extended snapshot fans
// out over: labor lines, parts usage, the latest orçamento and the most recent
// visit reports. A limit of 0 means no limit.
type IOrderItemsRepository interface {
	ListServicesByOrderID(ctx context.Context, orderID string, limit int) ([]entities.ServiceLineItem, error)
	ListPartsByOrderID(ctx context.Context, orderID string) ([]entities.PartLineItem, error)
	GetLatestQuoteByOrderID(ctx context.Context, orderID string) (entities.Quote, error)
	ListReportsByOrderID(ctx context.Context, orderID string, limit int) ([]entities.VisitReport, error)
}
