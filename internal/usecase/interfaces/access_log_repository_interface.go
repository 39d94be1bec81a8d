package interfaces

import (
	"context"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/domain/entities"
)

// IAccessLogRepository appends to the write-only lookup audit trail.
type IAccessLogRepository interface {
	Append(ctx context.Context, entry entities.AccessLogEntry) error
}
